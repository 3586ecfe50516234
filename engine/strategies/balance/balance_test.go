package balance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastybites/checkout"
	"github.com/tastybites/checkout/clock"
	"github.com/tastybites/checkout/engine"
	"github.com/tastybites/checkout/engine/strategies"
	"github.com/tastybites/checkout/ledger"
)

func testStrategy() *Strategy {
	var n int
	return New(Config{
		IDs:   func() string { n++; return fmt.Sprintf("PAY-%03d", n) },
		Clock: clock.NewFixed(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
	})
}

func TestSettle_Success(t *testing.T) {
	led := ledger.New(decimal.NewFromInt(500), nil)
	ctx := strategies.SetLedgerContext(context.Background(), led)

	p, err := testStrategy().Settle(ctx, decimal.NewFromInt(350), nil)
	require.NoError(t, err)
	assert.Equal(t, engine.SUCCESS_P, p.Status)
	assert.Equal(t, engine.BALANCE, p.Method)
	assert.Equal(t, "PAY-001", p.PaymentID)
	assert.True(t, p.Amount.Equal(decimal.NewFromInt(350)))
	assert.True(t, led.Balance().Equal(decimal.NewFromInt(150)))
}

func TestSettle_InsufficientFunds(t *testing.T) {
	led := ledger.New(decimal.NewFromInt(100), nil)
	ctx := strategies.SetLedgerContext(context.Background(), led)

	p, err := testStrategy().Settle(ctx, decimal.NewFromInt(350), nil)
	require.NoError(t, err)
	assert.Equal(t, engine.FAILED_P, p.Status)
	assert.True(t, led.Balance().Equal(decimal.NewFromInt(100)), "failed settlement must not touch the ledger")
}

func TestSettle_FreshIDPerAttempt(t *testing.T) {
	led := ledger.New(decimal.NewFromInt(100), nil)
	ctx := strategies.SetLedgerContext(context.Background(), led)
	s := testStrategy()

	p1, err := s.Settle(ctx, decimal.NewFromInt(350), nil)
	require.NoError(t, err)
	p2, err := s.Settle(ctx, decimal.NewFromInt(350), nil)
	require.NoError(t, err)
	assert.NotEqual(t, p1.PaymentID, p2.PaymentID)
}

func TestSettle_MissingLedger(t *testing.T) {
	_, err := testStrategy().Settle(context.Background(), decimal.NewFromInt(10), nil)
	require.ErrorIs(t, err, checkout.ErrLedgerRequired)
}

func TestSettle_InvalidAmount(t *testing.T) {
	led := ledger.New(decimal.NewFromInt(100), nil)
	ctx := strategies.SetLedgerContext(context.Background(), led)

	_, err := testStrategy().Settle(ctx, decimal.Zero, nil)
	require.ErrorIs(t, err, checkout.ErrInvalidAmount)
	assert.Len(t, led.History(), 1)
}

func TestMetaValidation(t *testing.T) {
	require.NoError(t, testStrategy().MetaValidation(nil))
}
