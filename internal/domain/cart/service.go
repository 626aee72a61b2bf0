// Package cart assembles priced orders. It owns the pipeline order, which is
// a correctness contract: promotion code first, then every automatic
// promotion in provider order, all mutating one fresh summary.
package cart

import (
	"github.com/bookden/pricing-engine/internal/domain/catalog"
	"github.com/bookden/pricing-engine/internal/domain/pricing"
	"github.com/bookden/pricing-engine/internal/domain/promocode"
	"github.com/bookden/pricing-engine/internal/domain/promotion"
)

// Service assembles orders against a fixed set of automatic promotions.
type Service struct {
	promotions promotion.Provider
}

// NewService creates a cart Service using the given promotion provider.
func NewService(promotions promotion.Provider) *Service {
	return &Service{promotions: promotions}
}

// AssembleOrder prices a cart. It builds one line item per product in input
// order, computes the delivery fee from the original product list, applies
// the promotion code when present, then applies each automatic promotion in
// provider order. The returned summary is freshly constructed per call and
// never shared, so concurrent callers need no coordination.
//
// There is no rollback: every rule mutates the same summary, and rules are
// total functions, so assembly itself cannot fail.
func (s *Service) AssembleOrder(products []catalog.Product, code promocode.Code) *pricing.Summary {
	summary := pricing.NewSummary(products)

	if code != nil {
		code.Apply(summary)
	}
	for _, promo := range s.promotions.ActivePromotions() {
		promo.Apply(summary)
	}
	return summary
}
