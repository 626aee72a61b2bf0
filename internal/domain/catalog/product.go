// Package catalog defines the sellable product model used by the pricing
// engine. Product is a closed sum type: every variant lives in this package
// and implements the unexported marker method, so rule code can type-switch
// exhaustively instead of poking at runtime type names.
package catalog

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Format distinguishes physical and electronic editions of a book.
type Format string

const (
	// FormatPaper is a physical printed edition.
	FormatPaper Format = "paper"
	// FormatElectronic is a downloadable edition.
	FormatElectronic Format = "electronic"
)

// ParseFormat converts a wire string into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPaper:
		return FormatPaper, nil
	case FormatElectronic:
		return FormatElectronic, nil
	default:
		return "", errors.Errorf("unknown book format %q", s)
	}
}

// Product is a sellable catalog entity. Implementations are immutable value
// types; line items hold them by interface value and never copy or modify
// their fields.
type Product interface {
	// DisplayName is the human-readable name shown on order lines.
	DisplayName() string
	// UnitPrice is the undiscounted price of a single unit.
	UnitPrice() decimal.Decimal

	product()
}

// Book is the one built-in product variant.
type Book struct {
	Title  string
	Author string
	Price  decimal.Decimal
	Format Format
}

func (b Book) DisplayName() string        { return b.Title }
func (b Book) UnitPrice() decimal.Decimal { return b.Price }
func (b Book) product()                   {}

// IsPaperBook reports whether p is a Book in the paper format. The delivery
// rule and the paper-book promotion both key off this predicate.
func IsPaperBook(p Product) bool {
	b, ok := p.(Book)
	return ok && b.Format == FormatPaper
}

// MatchesBook reports whether p is a Book with exactly the given title and
// format. Used by promotion codes that target one named edition.
func MatchesBook(p Product, title string, format Format) bool {
	b, ok := p.(Book)
	return ok && b.Title == title && b.Format == format
}
