package shop

import (
	"github.com/shopspring/decimal"

	"github.com/tastybites/checkout"
	"github.com/tastybites/checkout/clock"
	"github.com/tastybites/checkout/engine"
)

// Shop is one restaurant: its catalog, its order sequence and the delivery
// pricing applied to every order it opens.
type Shop struct {
	name    string
	catalog *checkout.Catalog
	seq     *engine.Sequencer
	cfg     Config
	cl      clock.Clock
}

func New(name string, catalog *checkout.Catalog, seq *engine.Sequencer, cfg Config, cl clock.Clock) *Shop {
	if cl == nil {
		cl = clock.NewSystem()
	}
	return &Shop{
		name:    name,
		catalog: catalog,
		seq:     seq,
		cfg:     cfg,
		cl:      cl,
	}
}

func (s *Shop) Name() string               { return s.name }
func (s *Shop) Catalog() *checkout.Catalog { return s.catalog }

// Register creates a customer with a fresh ledger holding the welcome bonus.
func (s *Shop) Register(name, phone, address string, welcome decimal.Decimal) *Customer {
	return NewCustomer(name, phone, address, welcome, s.cl)
}

// NewOrder opens a pending order for the customer with the next id in the
// sequence.
func (s *Shop) NewOrder(c *Customer) *Order {
	return NewOrder(s.seq.Next(), c, s.cfg, s.cl)
}
