package balance

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tastybites/checkout"
	"github.com/tastybites/checkout/clock"
	"github.com/tastybites/checkout/engine"
	"github.com/tastybites/checkout/engine/strategies"
)

// Config wires the balance-debit strategy. IDs and Clock default to the
// engine's payment id generator and the system clock.
type Config struct {
	IDs   engine.IDGen
	Clock clock.Clock
}

// Strategy settles against the customer's prepaid ledger. The ledger arrives
// through the settle context; the strategy holds no reference beyond one
// attempt.
type Strategy struct {
	ids engine.IDGen
	cl  clock.Clock
	l   *zap.Logger
}

func New(cfg Config) *Strategy {
	if cfg.IDs == nil {
		cfg.IDs = engine.NewPaymentID
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.NewSystem()
	}
	return &Strategy{
		ids: cfg.IDs,
		cl:  cfg.Clock,
		l:   zap.L().Named("balance_strategy"),
	}
}

func (s *Strategy) Name() engine.Method {
	return engine.BALANCE
}

func (s *Strategy) MetaValidation(meta map[string]string) error {
	return nil
}

func (s *Strategy) Settle(ctx context.Context, amount decimal.Decimal, meta map[string]string) (*engine.Payment, error) {
	if !amount.IsPositive() {
		return nil, checkout.ErrInvalidAmount
	}
	led := strategies.LedgerFromContext(ctx)
	if led == nil {
		return nil, checkout.ErrLedgerRequired
	}

	p := &engine.Payment{
		PaymentID: s.ids(),
		Method:    engine.BALANCE,
		Amount:    amount,
		Status:    engine.PENDING_P,
		CreatedAt: s.cl.Now(),
	}

	switch err := led.Debit(amount, "payment "+p.PaymentID); err {
	case nil:
		p.Status = engine.SUCCESS_P
	case checkout.ErrInsufficientFunds:
		p.Status = engine.FAILED_P
		s.l.Info("settlement declined",
			zap.String("payment_id", p.PaymentID),
			zap.String("amount", amount.String()),
			zap.String("balance", led.Balance().String()),
		)
	default:
		return nil, err
	}
	return p, nil
}

var _ strategies.Strategy = (*Strategy)(nil)
