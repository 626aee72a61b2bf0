// Package pricing holds the order summary that every discount rule mutates,
// plus the delivery fee rule. A Summary is built once per assembly call and
// threaded through the promotion pipeline by reference; it is never shared
// between calls.
package pricing

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/bookden/pricing-engine/internal/domain/catalog"
)

// ErrInvalidConfiguration is returned by rule constructors when a rule is
// built with a structurally invalid parameter. It is never returned from an
// Apply call.
var ErrInvalidConfiguration = errors.New("invalid rule configuration")

// LineItem wraps one product placed in the order together with its own
// discount and consumption state.
//
// PromotionConsumed marks an item already claimed by one promotion; consumed
// items are invisible to the matching logic of every later rule. Synthetic
// items appended by promotions (e.g. a free bonus book) are born consumed.
type LineItem struct {
	Product           catalog.Product
	Discount          decimal.Decimal
	PromotionConsumed bool
}

// NewLineItem creates an undiscounted, unconsumed line item for p.
func NewLineItem(p catalog.Product) *LineItem {
	return &LineItem{Product: p, Discount: decimal.Zero}
}

// InitialPrice is the product's undiscounted unit price.
func (li *LineItem) InitialPrice() decimal.Decimal {
	return li.Product.UnitPrice()
}

// FinalPrice is the price of this line after its own discount.
func (li *LineItem) FinalPrice() decimal.Decimal {
	return li.InitialPrice().Sub(li.Discount)
}

// Summary is the priced order under assembly. Items are only ever appended,
// never removed; ProductTotal and Total are derived on demand rather than
// stored.
type Summary struct {
	Items         []*LineItem
	DeliveryFee   decimal.Decimal
	OrderDiscount decimal.Decimal
}

// NewSummary builds the order skeleton: one line item per product in input
// order and the delivery fee computed from the original product list.
func NewSummary(products []catalog.Product) *Summary {
	items := make([]*LineItem, len(products))
	for i, p := range products {
		items[i] = NewLineItem(p)
	}
	return &Summary{
		Items:         items,
		DeliveryFee:   DeliveryFee(products),
		OrderDiscount: decimal.Zero,
	}
}

// ProductTotal sums the final price of every line item.
func (s *Summary) ProductTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, li := range s.Items {
		sum = sum.Add(li.FinalPrice())
	}
	return sum
}

// Total is the amount due: product total plus delivery fee minus the
// order-level discount. The engine does not clamp this at zero; rules that
// want a floor (e.g. fixed-amount codes) clamp their own contribution.
func (s *Summary) Total() decimal.Decimal {
	return s.ProductTotal().Add(s.DeliveryFee).Sub(s.OrderDiscount)
}
