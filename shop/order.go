package shop

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tastybites/checkout"
	"github.com/tastybites/checkout/clock"
	"github.com/tastybites/checkout/engine"
	"github.com/tastybites/checkout/engine/strategies"
)

type OrderStatus string

func (s OrderStatus) Match(in OrderStatus) bool {
	return s == in
}

const (
	PENDING_O   OrderStatus = "pending"
	CONFIRMED_O OrderStatus = "confirmed"
)

// Line is one distinct menu item and its aggregated quantity. An order
// holds at most one line per item name.
type Line struct {
	Item     checkout.MenuItem
	Quantity int
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Config is the delivery pricing applied by an order: the fee is waived when
// the subtotal is strictly above FreeDeliveryOver.
type Config struct {
	DeliveryFee      decimal.Decimal
	FreeDeliveryOver decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		DeliveryFee:      decimal.NewFromInt(50),
		FreeDeliveryOver: decimal.NewFromInt(500),
	}
}

// Order is the cart plus its settlement outcome. An order transitions from
// PENDING_O to CONFIRMED_O on the first successful settlement and never
// reverts. Failed attempts keep it pending and repeatable.
type Order struct {
	id        int64
	customer  *Customer
	createdAt time.Time
	lines     []Line
	cfg       Config
	payment   *engine.Payment
	status    OrderStatus

	l *zap.Logger
}

func NewOrder(id int64, customer *Customer, cfg Config, cl clock.Clock) *Order {
	if cl == nil {
		cl = clock.NewSystem()
	}
	return &Order{
		id:        id,
		customer:  customer,
		createdAt: cl.Now(),
		cfg:       cfg,
		status:    PENDING_O,
		l:         zap.L().Named("order").With(zap.Int64("order_id", id)),
	}
}

func (o *Order) ID() int64            { return o.id }
func (o *Order) Customer() *Customer  { return o.customer }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Status() OrderStatus  { return o.status }
func (o *Order) Empty() bool          { return len(o.lines) == 0 }

func (o *Order) Confirmed() bool {
	return o.status.Match(CONFIRMED_O)
}

// Payment returns the most recent settlement attempt, or nil.
func (o *Order) Payment() *engine.Payment {
	return o.payment
}

func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// AddItem merges into an existing line for the same item name, otherwise
// appends a new line.
func (o *Order) AddItem(item checkout.MenuItem, quantity int) error {
	if quantity <= 0 {
		return checkout.ErrInvalidQuantity
	}
	for i := range o.lines {
		if o.lines[i].Item.Name == item.Name {
			o.lines[i].Quantity += quantity
			return nil
		}
	}
	o.lines = append(o.lines, Line{Item: item, Quantity: quantity})
	return nil
}

// Subtotal is the sum over lines of price times quantity.
func (o *Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}

// Total adds the delivery fee unless the subtotal is strictly above the
// free-delivery threshold.
func (o *Order) Total() decimal.Decimal {
	sub := o.Subtotal()
	if o.freeDelivery(sub) {
		return sub
	}
	return sub.Add(o.cfg.DeliveryFee)
}

// freeDelivery is the single comparison used both for the total and the
// receipt, so the two cannot disagree on the boundary.
func (o *Order) freeDelivery(subtotal decimal.Decimal) bool {
	return subtotal.GreaterThan(o.cfg.FreeDeliveryOver)
}

// Checkout computes the total at the moment of call and asks the strategy to
// settle it, passing the customer's ledger through the context. The
// resulting attempt is retained; on success the order is confirmed.
func (o *Order) Checkout(ctx context.Context, s strategies.Strategy, meta map[string]string) (*engine.Payment, error) {
	if o.Empty() {
		return nil, checkout.ErrEmptyOrder
	}
	if o.Confirmed() {
		return nil, checkout.ErrOrderClosed
	}
	if err := s.MetaValidation(meta); err != nil {
		return nil, errors.Wrap(err, "meta validation")
	}

	ctx = strategies.SetLedgerContext(ctx, o.customer.Ledger())
	total := o.Total()

	p, err := s.Settle(ctx, total, meta)
	if err != nil {
		return nil, errors.Wrap(err, "settle")
	}
	o.payment = p

	if p.Status.Match(engine.SUCCESS_P) {
		o.status = CONFIRMED_O
		o.l.Info("order confirmed",
			zap.String("payment_id", p.PaymentID),
			zap.String("method", p.Method.String()),
			zap.String("total", total.String()),
		)
	} else {
		o.l.Info("settlement attempt failed",
			zap.String("payment_id", p.PaymentID),
			zap.String("method", p.Method.String()),
			zap.String("total", total.String()),
		)
	}
	return p, nil
}
