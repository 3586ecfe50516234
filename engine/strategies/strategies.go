package strategies

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tastybites/checkout/engine"
	"github.com/tastybites/checkout/ledger"
)

// Strategy settles a payment obligation for a given amount. Every variant
// performs exactly one settlement attempt per Settle call and returns a
// Payment record resolved to SUCCESS_P or FAILED_P. Retrying is the
// caller's decision; each retry is a new attempt with a new payment id.
//
// Meta carries method-specific data supplied by the session layer (card
// number, mobile transfer id). Strategies check presence only.
type Strategy interface {
	Name() engine.Method
	MetaValidation(meta map[string]string) error
	Settle(ctx context.Context, amount decimal.Decimal, meta map[string]string) (*engine.Payment, error)
}

type contextKey string

const contextLedgerKey contextKey = "ledger_key"

var mutex sync.RWMutex
var store = make(map[engine.Method]Strategy)

// Reg registers a strategy under its method name.
func Reg(s Strategy) {
	mutex.Lock()
	defer mutex.Unlock()
	if _, ok := store[s.Name()]; ok {
		panic("name strategy is registered")
	}
	store[s.Name()] = s
}

// Unreg removes a registered strategy (used by tests that re-register with
// different configuration).
func Unreg(m engine.Method) {
	mutex.Lock()
	defer mutex.Unlock()
	delete(store, m)
}

// Exist resolves a raw method name to a registered method, or UNKNOWN_METHOD.
func Exist(name string) engine.Method {
	mutex.RLock()
	defer mutex.RUnlock()
	if s, ok := store[engine.Method(name)]; ok {
		return s.Name()
	}
	return engine.UNKNOWN_METHOD
}

// Get returns the strategy registered under the method, or nil.
func Get(m engine.Method) Strategy {
	mutex.RLock()
	defer mutex.RUnlock()
	return store[m]
}

// SetLedgerContext carries the customer's ledger to the settling strategy.
// Only the balance variant reads it; the others never touch the ledger.
func SetLedgerContext(ctx context.Context, l *ledger.Ledger) context.Context {
	return context.WithValue(ctx, contextLedgerKey, l)
}

// LedgerFromContext returns the ledger set by SetLedgerContext, or nil.
func LedgerFromContext(ctx context.Context) *ledger.Ledger {
	l, _ := ctx.Value(contextLedgerKey).(*ledger.Ledger)
	return l
}
