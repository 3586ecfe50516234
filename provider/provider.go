package provider

import (
	"context"

	"github.com/shopspring/decimal"
)

// Provider identifies the external rail an authorization went through.
type Provider string

func (p Provider) Match(in Provider) bool {
	return p == in
}

const (
	UNKNOWN_PROVIDER Provider = ""
	INTERNAL         Provider = "internal"
	SIMULATOR        Provider = "simulator"
)

const (
	APPROVED = "APPROVED"
	DECLINED = "DECLINED"
)

// Authorization is the result of one authorization request on an external
// rail: the rail-side operation id and its terminal status.
type Authorization struct {
	OperID string
	Status string
}

func (a *Authorization) Approved() bool {
	return a != nil && a.Status == APPROVED
}

// Authorizer is the boundary a card or mobile strategy settles against.
// A production implementation would call a real payment gateway; the
// simulator models one. Authorize performs exactly one authorization
// round-trip and never touches order or ledger state.
type Authorizer interface {
	Authorize(ctx context.Context, amount decimal.Decimal) (*Authorization, error)
}
