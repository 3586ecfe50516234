package mobile

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tastybites/checkout"
	"github.com/tastybites/checkout/clock"
	"github.com/tastybites/checkout/engine"
	"github.com/tastybites/checkout/engine/strategies"
	"github.com/tastybites/checkout/provider"
	"github.com/tastybites/checkout/provider/simulator"
)

const (
	MetaMobileID = "mobile_id"

	DefaultSuccessRate = 0.90
	DefaultDelay       = 1500 * time.Millisecond
)

// Config wires the mobile-transfer strategy. Auth defaults to a simulated
// gateway with the default success rate and delay.
type Config struct {
	Auth  provider.Authorizer
	IDs   engine.IDGen
	Clock clock.Clock
}

// Strategy settles through an external mobile-transfer authorization. It
// never touches the ledger.
type Strategy struct {
	auth provider.Authorizer
	ids  engine.IDGen
	cl   clock.Clock
	l    *zap.Logger
}

func New(cfg Config) *Strategy {
	if cfg.Auth == nil {
		cfg.Auth = simulator.New(simulator.Config{
			SuccessRate: DefaultSuccessRate,
			Delay:       DefaultDelay,
		})
	}
	if cfg.IDs == nil {
		cfg.IDs = engine.NewPaymentID
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.NewSystem()
	}
	return &Strategy{
		auth: cfg.Auth,
		ids:  cfg.IDs,
		cl:   cfg.Clock,
		l:    zap.L().Named("mobile_strategy"),
	}
}

func (s *Strategy) Name() engine.Method {
	return engine.MOBILE
}

func (s *Strategy) MetaValidation(meta map[string]string) error {
	if meta[MetaMobileID] == "" {
		return errors.New("mobile_id is required")
	}
	return nil
}

func (s *Strategy) Settle(ctx context.Context, amount decimal.Decimal, meta map[string]string) (*engine.Payment, error) {
	if !amount.IsPositive() {
		return nil, checkout.ErrInvalidAmount
	}

	p := &engine.Payment{
		PaymentID: s.ids(),
		Method:    engine.MOBILE,
		Amount:    amount,
		Status:    engine.PENDING_P,
		CreatedAt: s.cl.Now(),
	}

	auth, err := s.auth.Authorize(ctx, amount)
	if err != nil {
		p.Status = engine.FAILED_P
		s.l.Warn("mobile authorization failed",
			zap.String("payment_id", p.PaymentID),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return p, nil
	}
	if auth.Approved() {
		p.Status = engine.SUCCESS_P
	} else {
		p.Status = engine.FAILED_P
	}
	return p, nil
}

var _ strategies.Strategy = (*Strategy)(nil)
