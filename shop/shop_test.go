package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastybites/checkout"
	"github.com/tastybites/checkout/engine"
)

func TestShop_NewOrderSequence(t *testing.T) {
	catalog, err := checkout.NewCatalog(item("Coke", 60))
	require.NoError(t, err)

	s := New("Tasty Bites", catalog, engine.NewSequencer(1000), DefaultConfig(), nil)
	c := s.Register("Asha", "9800000000", "12 Hill Road", d("500"))

	assert.True(t, c.Ledger().Balance().Equal(d("500")), "welcome bonus credited at registration")

	o1 := s.NewOrder(c)
	o2 := s.NewOrder(c)
	assert.Equal(t, int64(1001), o1.ID())
	assert.Equal(t, int64(1002), o2.ID())
	assert.Equal(t, PENDING_O, o1.Status())
	assert.Same(t, c, o1.Customer())
	assert.Equal(t, "Tasty Bites", s.Name())
	assert.Same(t, catalog, s.Catalog())
}
