package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/bookden/pricing-engine/internal/domain/catalog"
)

var (
	// deliveryFreeThreshold is the order value at which delivery becomes free.
	deliveryFreeThreshold = decimal.NewFromInt(1000)
	// deliveryCharge is the flat fee below the threshold.
	deliveryCharge = decimal.NewFromInt(200)
)

// DeliveryFee computes the delivery fee for a product list. Orders without a
// single paper book ship nothing physical and are free. Otherwise the fee is
// flat below the free-delivery threshold, where the threshold compares the
// summed price of ALL products, electronic editions included.
//
// Pure function of the input list; it never looks at line item state.
func DeliveryFee(products []catalog.Product) decimal.Decimal {
	paperBooks := 0
	for _, p := range products {
		if catalog.IsPaperBook(p) {
			paperBooks++
		}
	}
	if paperBooks == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, p := range products {
		sum = sum.Add(p.UnitPrice())
	}
	if sum.LessThan(deliveryFreeThreshold) {
		return deliveryCharge
	}
	return decimal.Zero
}
