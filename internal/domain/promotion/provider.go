package promotion

import (
	"github.com/shopspring/decimal"

	"github.com/bookden/pricing-engine/internal/domain/catalog"
)

// Provider supplies the active automatic promotions for order assembly.
// The returned order is the application order and is part of the pricing
// contract: an item consumed by an earlier rule is invisible to later ones.
type Provider interface {
	ActivePromotions() []Promotion
}

// StaticProvider returns a fixed, ordered promotion list.
type StaticProvider struct {
	promotions []Promotion
}

// NewStaticProvider creates a provider over the given promotions, applied in
// argument order.
func NewStaticProvider(promotions ...Promotion) *StaticProvider {
	return &StaticProvider{promotions: promotions}
}

// ActivePromotions implements Provider.
func (p *StaticProvider) ActivePromotions() []Promotion {
	return p.promotions
}

// DefaultRewardBook is the electronic book granted by the default paper-book
// promotion.
func DefaultRewardBook() catalog.Book {
	return catalog.Book{
		Title:  "The Go Programming Phrasebook",
		Author: "David Chisnall",
		Price:  decimal.NewFromInt(100),
		Format: catalog.FormatElectronic,
	}
}

// DefaultProvider builds the stock promotion set: one two-paper-books rule
// configured with the default electronic reward.
func DefaultProvider() (*StaticProvider, error) {
	twoForFree, err := NewTwoPaperBooksForFreeEbook(DefaultRewardBook())
	if err != nil {
		return nil, err
	}
	return NewStaticProvider(twoForFree), nil
}
