package shop

import (
	"github.com/shopspring/decimal"

	"github.com/tastybites/checkout/clock"
	"github.com/tastybites/checkout/ledger"
)

// Customer is the session identity. Each customer exclusively owns one
// prepaid ledger, created at registration with the welcome bonus.
type Customer struct {
	Name    string
	Phone   string
	Address string

	wallet *ledger.Ledger
}

func NewCustomer(name, phone, address string, welcome decimal.Decimal, cl clock.Clock) *Customer {
	return &Customer{
		Name:    name,
		Phone:   phone,
		Address: address,
		wallet:  ledger.New(welcome, cl),
	}
}

func (c *Customer) Ledger() *ledger.Ledger {
	return c.wallet
}
