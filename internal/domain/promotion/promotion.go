// Package promotion holds the automatic promotions: rules evaluated for
// every order, independent of any user-supplied code.
package promotion

import (
	"fmt"

	"github.com/go-faster/errors"

	"github.com/bookden/pricing-engine/internal/domain/catalog"
	"github.com/bookden/pricing-engine/internal/domain/pricing"
)

// Promotion is an automatic discount/benefit rule. Apply mutates the summary
// in place and is a total function: an order that does not qualify is left
// untouched, never an error.
type Promotion interface {
	// Describe returns a short human-readable description of the rule.
	Describe() string
	Apply(s *pricing.Summary)
}

// TwoPaperBooksForFreeEbook grants one free electronic book once the order
// contains two unconsumed paper books. The paper books keep their price; the
// reward is appended as a separate fully-discounted line.
type TwoPaperBooksForFreeEbook struct {
	reward catalog.Book
}

// NewTwoPaperBooksForFreeEbook validates that the reward is an electronic
// edition and returns the configured rule. A paper reward is a configuration
// defect and fails with ErrInvalidConfiguration.
func NewTwoPaperBooksForFreeEbook(reward catalog.Book) (*TwoPaperBooksForFreeEbook, error) {
	if reward.Format != catalog.FormatElectronic {
		return nil, errors.Wrapf(pricing.ErrInvalidConfiguration,
			"reward %q must be an electronic book, got format %q", reward.Title, reward.Format)
	}
	return &TwoPaperBooksForFreeEbook{reward: reward}, nil
}

// Describe implements Promotion.
func (p *TwoPaperBooksForFreeEbook) Describe() string {
	return fmt.Sprintf("buy two paper books, get %q free", p.reward.Title)
}

// Apply scans items in order for unconsumed paper books. With fewer than two
// matches it does nothing at all; otherwise it consumes exactly the first two
// and appends the reward as a free, already-consumed line item.
func (p *TwoPaperBooksForFreeEbook) Apply(s *pricing.Summary) {
	matched := make([]*pricing.LineItem, 0, 2)
	for _, li := range s.Items {
		if li.PromotionConsumed || !catalog.IsPaperBook(li.Product) {
			continue
		}
		matched = append(matched, li)
		if len(matched) == 2 {
			break
		}
	}
	if len(matched) < 2 {
		return
	}

	for _, li := range matched {
		li.PromotionConsumed = true
	}
	s.Items = append(s.Items, &pricing.LineItem{
		Product:           p.reward,
		Discount:          p.reward.Price,
		PromotionConsumed: true,
	})
}
