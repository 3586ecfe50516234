package checkout

import "errors"

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrEmptyOrder        = errors.New("empty order")
	ErrOrderClosed       = errors.New("order closed")
	ErrNotFound          = errors.New("not found")
	ErrLedgerRequired    = errors.New("ledger required")
)
