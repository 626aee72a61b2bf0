// Package promocode holds the user-supplied promotion codes. At most one
// code participates in an order, applied before any automatic promotion.
package promocode

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/bookden/pricing-engine/internal/domain/catalog"
	"github.com/bookden/pricing-engine/internal/domain/pricing"
)

var hundred = decimal.NewFromInt(100)

// Code is a single caller-selected discount rule. Apply mutates the summary
// and must be invoked exactly once per order; no Code checks for repeat
// application.
type Code interface {
	// Describe returns a short human-readable description of the code.
	Describe() string
	Apply(s *pricing.Summary)
}

// FreeDelivery refunds the order's delivery fee through the order-level
// discount.
type FreeDelivery struct{}

// NewFreeDelivery creates the free-delivery code.
func NewFreeDelivery() FreeDelivery { return FreeDelivery{} }

// Describe implements Code.
func (FreeDelivery) Describe() string { return "free delivery" }

// Apply adds the current delivery fee to the order discount. Applying twice
// would refund the fee twice; the assembly pipeline guarantees one call.
func (FreeDelivery) Apply(s *pricing.Summary) {
	s.OrderDiscount = s.OrderDiscount.Add(s.DeliveryFee)
}

// FreeNamedBook makes one specific edition free: the earliest unconsumed
// line whose product matches the target title and format exactly.
type FreeNamedBook struct {
	title  string
	format catalog.Format
}

// NewFreeNamedBook creates a code targeting the given edition.
func NewFreeNamedBook(title string, format catalog.Format) FreeNamedBook {
	return FreeNamedBook{title: title, format: format}
}

// Describe implements Code.
func (c FreeNamedBook) Describe() string {
	return fmt.Sprintf("%q (%s edition) free", c.title, c.format)
}

// Apply consumes the first matching unconsumed item and sets its discount to
// the item's final price at match time, so a line that already carried a
// discount ends up discounted by its remaining price. No match is a no-op.
func (c FreeNamedBook) Apply(s *pricing.Summary) {
	for _, li := range s.Items {
		if li.PromotionConsumed || !catalog.MatchesBook(li.Product, c.title, c.format) {
			continue
		}
		li.Discount = li.FinalPrice()
		li.PromotionConsumed = true
		return
	}
}

// PercentOff discounts the whole order by a percentage of its total at
// application time.
type PercentOff struct {
	percent decimal.Decimal
}

// NewPercentOff validates that percent is within 0..100 and returns the code.
// The bound is checked against the parameter itself; an out-of-range value
// fails with ErrInvalidConfiguration.
func NewPercentOff(percent decimal.Decimal) (PercentOff, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return PercentOff{}, errors.Wrapf(pricing.ErrInvalidConfiguration,
			"percent must be within 0..100, got %s", percent)
	}
	return PercentOff{percent: percent}, nil
}

// Describe implements Code.
func (c PercentOff) Describe() string {
	return fmt.Sprintf("%s%% off the order total", c.percent)
}

// Apply adds percent of the summary's total, rounded to 2 decimal places, to
// the order discount. The total is read at call time, so effects of rules
// that already ran are included.
func (c PercentOff) Apply(s *pricing.Summary) {
	cut := s.Total().Mul(c.percent).Div(hundred).Round(2)
	s.OrderDiscount = s.OrderDiscount.Add(cut)
}

// FixedAmountOff discounts the order by a fixed amount, capped at the order
// total so this step alone never pushes the total below zero.
type FixedAmountOff struct {
	amount decimal.Decimal
}

// NewFixedAmountOff creates a fixed-amount code.
func NewFixedAmountOff(amount decimal.Decimal) FixedAmountOff {
	return FixedAmountOff{amount: amount}
}

// Describe implements Code.
func (c FixedAmountOff) Describe() string {
	return fmt.Sprintf("%s off the order total", c.amount)
}

// Apply adds min(amount, total-at-call-time) to the order discount.
func (c FixedAmountOff) Apply(s *pricing.Summary) {
	cut := decimal.Min(c.amount, s.Total())
	s.OrderDiscount = s.OrderDiscount.Add(cut)
}
