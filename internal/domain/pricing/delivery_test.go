package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bookden/pricing-engine/internal/domain/catalog"
)

func paperBook(title string, price int64) catalog.Book {
	return catalog.Book{Title: title, Author: "test", Price: decimal.NewFromInt(price), Format: catalog.FormatPaper}
}

func ebook(title string, price int64) catalog.Book {
	return catalog.Book{Title: title, Author: "test", Price: decimal.NewFromInt(price), Format: catalog.FormatElectronic}
}

func TestDeliveryFee(t *testing.T) {
	tests := []struct {
		name     string
		products []catalog.Product
		want     decimal.Decimal
	}{
		{
			name:     "empty order is free",
			products: nil,
			want:     decimal.Zero,
		},
		{
			name: "only electronic books is free",
			products: []catalog.Product{
				ebook("A", 400),
				ebook("B", 500),
			},
			want: decimal.Zero,
		},
		{
			name: "paper book below threshold is charged",
			products: []catalog.Product{
				paperBook("A", 50),
			},
			want: decimal.NewFromInt(200),
		},
		{
			name: "electronic prices count towards the threshold",
			products: []catalog.Product{
				paperBook("A", 100),
				ebook("B", 950),
			},
			want: decimal.Zero,
		},
		{
			name: "total just below threshold is charged",
			products: []catalog.Product{
				paperBook("A", 500),
				paperBook("B", 499),
			},
			want: decimal.NewFromInt(200),
		},
		{
			name: "total at threshold is free",
			products: []catalog.Product{
				paperBook("A", 500),
				paperBook("B", 500),
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeliveryFee(tt.products)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
