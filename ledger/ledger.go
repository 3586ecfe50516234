package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tastybites/checkout"
	"github.com/tastybites/checkout/clock"
)

// Entry is an immutable record of one balance change.
type Entry struct {
	At      time.Time
	Delta   decimal.Decimal
	Balance decimal.Decimal
	Reason  string
}

// Ledger is a prepaid account: a non-negative balance plus an append-only
// history of balance-changing events. The balance always equals the running
// sum of all entry deltas since creation.
type Ledger struct {
	mu      sync.Mutex
	balance decimal.Decimal
	entries []Entry

	cl clock.Clock
	l  *zap.Logger
}

// New creates a ledger with a starting balance. A positive starting balance
// is recorded as the opening entry.
func New(initial decimal.Decimal, cl clock.Clock) *Ledger {
	if cl == nil {
		cl = clock.NewSystem()
	}
	l := &Ledger{
		balance: decimal.Zero,
		cl:      cl,
		l:       zap.L().Named("ledger"),
	}
	if initial.IsPositive() {
		l.append(initial, "initial balance")
	}
	return l
}

// Balance returns the current balance.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Credit increases the balance. Amount must be positive.
func (l *Ledger) Credit(amount decimal.Decimal, reason string) error {
	if !amount.IsPositive() {
		return checkout.ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.append(amount, reason)
	l.l.Debug("credit",
		zap.String("amount", amount.String()),
		zap.String("balance", l.balance.String()),
		zap.String("reason", reason),
	)
	return nil
}

// Debit decreases the balance. Amount must be positive. Returns
// ErrInsufficientFunds without any state change when balance < amount.
func (l *Ledger) Debit(amount decimal.Decimal, reason string) error {
	if !amount.IsPositive() {
		return checkout.ErrInvalidAmount
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balance.LessThan(amount) {
		l.l.Debug("debit rejected",
			zap.String("amount", amount.String()),
			zap.String("balance", l.balance.String()),
		)
		return checkout.ErrInsufficientFunds
	}
	l.append(amount.Neg(), reason)
	l.l.Debug("debit",
		zap.String("amount", amount.String()),
		zap.String("balance", l.balance.String()),
		zap.String("reason", reason),
	)
	return nil
}

// History returns entries in insertion order. The returned slice is a copy
// and is safe to range over repeatedly.
func (l *Ledger) History() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// append must be called with the mutex held.
func (l *Ledger) append(delta decimal.Decimal, reason string) {
	l.balance = l.balance.Add(delta)
	l.entries = append(l.entries, Entry{
		At:      l.cl.Now(),
		Delta:   delta,
		Balance: l.balance,
		Reason:  reason,
	})
}
