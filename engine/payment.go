package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Method is the payment method tag carried by a Payment record.
type Method string

func (m Method) Match(in Method) bool {
	return m == in
}

func (m Method) String() string { return string(m) }

const (
	UNKNOWN_METHOD   Method = ""
	BALANCE          Method = "balance"
	CARD             Method = "card"
	MOBILE           Method = "mobile"
	CASH_ON_DELIVERY Method = "cash_on_delivery"
)

// PaymentStatus is the resolution of one settlement attempt.
type PaymentStatus string

func (s PaymentStatus) Match(in PaymentStatus) bool {
	return s == in
}

const (
	PENDING_P PaymentStatus = "pending"
	SUCCESS_P PaymentStatus = "success"
	FAILED_P  PaymentStatus = "failed"
)

// Payment records one settlement attempt. A record is created per attempt
// with a fresh id and is immutable after the attempt resolves.
type Payment struct {
	PaymentID string
	Method    Method
	Amount    decimal.Decimal
	Status    PaymentStatus
	CreatedAt time.Time
}

// IDGen produces unique payment identifiers. Tests substitute a counter to
// get deterministic ids.
type IDGen func() string

// NewPaymentID is the default IDGen.
func NewPaymentID() string {
	return "PAY-" + uuid.NewString()
}
