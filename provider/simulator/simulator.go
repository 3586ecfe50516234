package simulator

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tastybites/checkout/provider"
)

// Config tunes the simulated rail. SuccessRate is the probability in [0, 1]
// that an authorization is approved; Delay models the network round-trip.
// Source makes outcomes reproducible in tests; when nil the gateway seeds
// from the wall clock.
type Config struct {
	SuccessRate float64
	Delay       time.Duration
	Source      mrand.Source
}

// Gateway simulates an external authorization rail: a processing delay
// followed by a probabilistic approve/decline. The delay wait is bounded by
// the context; cancellation aborts the attempt with the context's error.
type Gateway struct {
	cfg Config

	mu  sync.Mutex
	rnd *mrand.Rand

	l *zap.Logger
}

func New(cfg Config) *Gateway {
	src := cfg.Source
	if src == nil {
		src = mrand.NewSource(time.Now().UnixNano())
	}
	return &Gateway{
		cfg: cfg,
		rnd: mrand.New(src),
		l:   zap.L().Named("simulator"),
	}
}

// Authorize waits out the configured delay and resolves the attempt.
// It holds no locks while waiting.
func (g *Gateway) Authorize(ctx context.Context, amount decimal.Decimal) (*provider.Authorization, error) {
	if !amount.IsPositive() {
		return nil, errors.New("non-positive authorization amount")
	}

	if g.cfg.Delay > 0 {
		t := time.NewTimer(g.cfg.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			g.l.Warn("authorization cancelled",
				zap.String("amount", amount.String()),
				zap.Error(ctx.Err()),
			)
			return nil, errors.Wrap(ctx.Err(), "authorization cancelled")
		}
	}

	auth := &provider.Authorization{
		OperID: newOperID(),
		Status: provider.DECLINED,
	}
	if g.roll() < g.cfg.SuccessRate {
		auth.Status = provider.APPROVED
	}
	g.l.Debug("authorization resolved",
		zap.String("oper_id", auth.OperID),
		zap.String("status", auth.Status),
		zap.String("amount", amount.String()),
	)
	return auth, nil
}

func (g *Gateway) roll() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64()
}

func newOperID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "sim-00000000"
	}
	return "sim-" + hex.EncodeToString(b)
}

var _ provider.Authorizer = (*Gateway)(nil)
