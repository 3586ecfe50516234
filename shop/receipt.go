package shop

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tastybites/checkout/engine"
)

type ReceiptLine struct {
	Name     string
	Quantity int
	Subtotal decimal.Decimal
}

// Receipt is a pure projection of an order: building it has no side effects
// and it can be rendered repeatedly.
type Receipt struct {
	OrderID   int64
	CreatedAt time.Time
	Status    OrderStatus

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string

	Lines        []ReceiptLine
	Subtotal     decimal.Decimal
	DeliveryFee  decimal.Decimal
	FreeDelivery bool
	Total        decimal.Decimal

	Payment *engine.Payment
}

// Receipt projects the order's current state.
func (o *Order) Receipt() *Receipt {
	sub := o.Subtotal()
	r := &Receipt{
		OrderID:         o.id,
		CreatedAt:       o.createdAt,
		Status:          o.status,
		CustomerName:    o.customer.Name,
		CustomerPhone:   o.customer.Phone,
		CustomerAddress: o.customer.Address,
		Subtotal:        sub,
		DeliveryFee:     o.cfg.DeliveryFee,
		FreeDelivery:    o.freeDelivery(sub),
		Total:           o.Total(),
		Payment:         o.payment,
	}
	for _, l := range o.lines {
		r.Lines = append(r.Lines, ReceiptLine{
			Name:     l.Item.Name,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		})
	}
	return r
}

const receiptTimeLayout = "02-01-2006 15:04:05"

func (r *Receipt) String() string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)
	thin := strings.Repeat("-", 50)

	b.WriteString(rule + "\n")
	b.WriteString("                ORDER RECEIPT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Order ID: %d\n", r.OrderID)
	fmt.Fprintf(&b, "Date: %s\n", r.CreatedAt.Format(receiptTimeLayout))
	fmt.Fprintf(&b, "Status: %s\n", strings.ToUpper(string(r.Status)))
	fmt.Fprintf(&b, "Customer: %s\n", r.CustomerName)
	fmt.Fprintf(&b, "Phone: %s\n", r.CustomerPhone)
	fmt.Fprintf(&b, "Address: %s\n", r.CustomerAddress)
	b.WriteString(thin + "\n")

	for _, l := range r.Lines {
		fmt.Fprintf(&b, "%s x %d = Rs. %s\n", l.Name, l.Quantity, l.Subtotal.StringFixed(2))
	}

	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "Subtotal: Rs. %s\n", r.Subtotal.StringFixed(2))
	if r.FreeDelivery {
		b.WriteString("Delivery Charge: FREE\n")
	} else {
		fmt.Fprintf(&b, "Delivery Charge: Rs. %s\n", r.DeliveryFee.StringFixed(2))
	}
	fmt.Fprintf(&b, "TOTAL: Rs. %s\n", r.Total.StringFixed(2))

	if r.Payment != nil {
		b.WriteString(thin + "\n")
		fmt.Fprintf(&b, "Payment ID: %s\n", r.Payment.PaymentID)
		fmt.Fprintf(&b, "Payment Status: %s\n", strings.ToUpper(string(r.Payment.Status)))
		fmt.Fprintf(&b, "Payment Time: %s\n", r.Payment.CreatedAt.Format(receiptTimeLayout))
	}

	b.WriteString(rule + "\n")
	b.WriteString("Estimated Delivery Time: 30-45 minutes\n")
	b.WriteString("Thank you for your order!\n")
	b.WriteString(rule + "\n")
	return b.String()
}
