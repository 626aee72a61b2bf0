package promocode

import (
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/bookden/pricing-engine/internal/domain/catalog"
)

// ErrUnknownCode is returned by Resolve for a code string that was never
// registered.
var ErrUnknownCode = errors.New("unknown promotion code")

// Registry maps public code strings to constructed Code rules. Codes are
// registered at startup and only read afterwards; lookup is case-insensitive.
type Registry struct {
	codes map[string]Code
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{codes: make(map[string]Code)}
}

// Register binds name to c, replacing any previous binding.
func (r *Registry) Register(name string, c Code) {
	r.codes[normalize(name)] = c
}

// Resolve returns the Code registered under name, or ErrUnknownCode.
func (r *Registry) Resolve(name string) (Code, error) {
	c, ok := r.codes[normalize(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCode, "%q", name)
	}
	return c, nil
}

// Names returns the registered code names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.codes))
	for name := range r.codes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// DefaultRegistry seeds the stock promotion codes, one per built-in rule
// variant.
func DefaultRegistry() (*Registry, error) {
	halfOff, err := NewPercentOff(decimal.NewFromInt(50))
	if err != nil {
		return nil, errors.Wrap(err, "construct HALFPRICE")
	}

	r := NewRegistry()
	r.Register("FREESHIP", NewFreeDelivery())
	r.Register("HALFPRICE", halfOff)
	r.Register("TAKE150", NewFixedAmountOff(decimal.NewFromInt(150)))
	r.Register("GOPHERGIFT", NewFreeNamedBook("The Go Programming Language", catalog.FormatPaper))
	return r, nil
}
