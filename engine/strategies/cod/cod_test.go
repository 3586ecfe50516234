package cod

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastybites/checkout"
	"github.com/tastybites/checkout/engine"
)

func TestSettle_AlwaysSucceeds(t *testing.T) {
	s := New(Config{})
	for _, amount := range []int64{1, 350, 600, 100000} {
		p, err := s.Settle(context.Background(), decimal.NewFromInt(amount), nil)
		require.NoError(t, err)
		assert.Equal(t, engine.SUCCESS_P, p.Status)
		assert.Equal(t, engine.CASH_ON_DELIVERY, p.Method)
		assert.True(t, p.Amount.Equal(decimal.NewFromInt(amount)))
		assert.NotEmpty(t, p.PaymentID)
	}
}

func TestSettle_InvalidAmount(t *testing.T) {
	_, err := New(Config{}).Settle(context.Background(), decimal.Zero, nil)
	require.ErrorIs(t, err, checkout.ErrInvalidAmount)
}

func TestMetaValidation(t *testing.T) {
	require.NoError(t, New(Config{}).MetaValidation(nil))
}
