package strategies

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastybites/checkout/engine"
	"github.com/tastybites/checkout/ledger"
)

type fakeStrategy struct {
	name engine.Method
}

func (s *fakeStrategy) Name() engine.Method                         { return s.name }
func (s *fakeStrategy) MetaValidation(meta map[string]string) error { return nil }
func (s *fakeStrategy) Settle(ctx context.Context, amount decimal.Decimal, meta map[string]string) (*engine.Payment, error) {
	return &engine.Payment{Method: s.name, Amount: amount, Status: engine.SUCCESS_P}, nil
}

func TestRegistry(t *testing.T) {
	s := &fakeStrategy{name: engine.Method("fake_for_registry")}
	Reg(s)
	defer Unreg(s.Name())

	assert.Equal(t, s.Name(), Exist("fake_for_registry"))
	assert.Equal(t, engine.UNKNOWN_METHOD, Exist("never_registered"))
	assert.Same(t, s, Get(s.Name()))
	assert.Nil(t, Get(engine.Method("never_registered")))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	s := &fakeStrategy{name: engine.Method("fake_for_dup")}
	Reg(s)
	defer Unreg(s.Name())

	require.Panics(t, func() { Reg(&fakeStrategy{name: s.name}) })
}

func TestLedgerContext(t *testing.T) {
	assert.Nil(t, LedgerFromContext(context.Background()))

	led := ledger.New(decimal.NewFromInt(500), nil)
	ctx := SetLedgerContext(context.Background(), led)
	assert.Same(t, led, LedgerFromContext(ctx))
}
