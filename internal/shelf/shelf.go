// Package shelf is the in-memory demo catalog: the fixed set of books the
// HTTP catalog endpoint and the demo driver sell. It stands in for a real
// product store; the pricing engine itself never depends on it.
package shelf

import (
	_ "embed"
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/bookden/pricing-engine/internal/domain/catalog"
)

//go:embed books.json
var booksJSON []byte

// ErrNotFound is returned when a requested book is not on the shelf.
var ErrNotFound = errors.New("book not found")

type bookJSON struct {
	Title  string          `json:"title"`
	Author string          `json:"author"`
	Price  decimal.Decimal `json:"price"`
	Format string          `json:"format"`
}

// Shelf holds an ordered, read-only book list.
type Shelf struct {
	books []catalog.Book
}

// Load parses the embedded demo catalog.
func Load() (*Shelf, error) {
	var raw []bookJSON
	if err := json.Unmarshal(booksJSON, &raw); err != nil {
		return nil, errors.Wrap(err, "parse embedded catalog")
	}

	books := make([]catalog.Book, 0, len(raw))
	for _, b := range raw {
		format, err := catalog.ParseFormat(b.Format)
		if err != nil {
			return nil, errors.Wrapf(err, "book %q", b.Title)
		}
		books = append(books, catalog.Book{
			Title:  b.Title,
			Author: b.Author,
			Price:  b.Price,
			Format: format,
		})
	}
	return &Shelf{books: books}, nil
}

// List returns every book on the shelf in catalog order.
func (s *Shelf) List() []catalog.Book {
	out := make([]catalog.Book, len(s.books))
	copy(out, s.books)
	return out
}

// FindByTitle returns the first book with the given title and format.
func (s *Shelf) FindByTitle(title string, format catalog.Format) (catalog.Book, error) {
	for _, b := range s.books {
		if b.Title == title && b.Format == format {
			return b, nil
		}
	}
	return catalog.Book{}, errors.Wrapf(ErrNotFound, "%q (%s)", title, format)
}
