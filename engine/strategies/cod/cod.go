package cod

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tastybites/checkout"
	"github.com/tastybites/checkout/clock"
	"github.com/tastybites/checkout/engine"
	"github.com/tastybites/checkout/engine/strategies"
)

// Config wires the cash-on-delivery strategy.
type Config struct {
	IDs   engine.IDGen
	Clock clock.Clock
}

// Strategy settles immediately; the amount is collected at delivery, not at
// settlement time. It never touches the ledger.
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
		l:   zap.L().Named("cod_strategy"),
	}
}

func (s *Strategy) Name() engine.Method {
	return engine.CASH_ON_DELIVERY
}

func (s *Strategy) MetaValidation(meta map[string]string) error {
	return nil
}

func (s *Strategy) Settle(ctx context.Context, amount decimal.Decimal, meta map[string]string) (*engine.Payment, error) {
	if !amount.IsPositive() {
		return nil, checkout.ErrInvalidAmount
	}
	p := &engine.Payment{
		PaymentID: s.ids(),
		Method:    engine.CASH_ON_DELIVERY,
		Amount:    amount,
		Status:    engine.SUCCESS_P,
		CreatedAt: s.cl.Now(),
	}
	s.l.Debug("cash on delivery accepted",
		zap.String("payment_id", p.PaymentID),
		zap.String("amount", amount.String()),
	)
	return p, nil
}

var _ strategies.Strategy = (*Strategy)(nil)
