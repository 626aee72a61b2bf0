package handler

import (
	"io"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bookden/pricing-engine/internal/domain/catalog"
	"github.com/bookden/pricing-engine/internal/domain/pricing"
	"github.com/bookden/pricing-engine/internal/domain/promocode"
)

// quoteRequest is the decoded POST /api/quote body.
type quoteRequest struct {
	books         []catalog.Book
	promotionCode string
}

// Quote prices a cart: it resolves the optional promotion code, assembles the
// order, and returns the priced summary under a fresh quote id.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	req, err := decodeQuoteRequest(r.Body)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.books) == 0 {
		writeError(w, r, http.StatusBadRequest, "items required")
		return
	}

	var code promocode.Code
	if req.promotionCode != "" {
		code, err = h.codes.Resolve(req.promotionCode)
		if err != nil {
			if errors.Is(err, promocode.ErrUnknownCode) {
				writeError(w, r, http.StatusUnprocessableEntity, "unknown promotion code")
				return
			}
			writeError(w, r, http.StatusInternalServerError, "resolve promotion code")
			return
		}
	}

	products := make([]catalog.Product, len(req.books))
	for i, b := range req.books {
		products[i] = b
	}
	summary := h.carts.AssembleOrder(products, code)

	quoteID := uuid.New().String()
	zctx.From(r.Context()).Info("quote assembled",
		zap.String("quote_id", quoteID),
		zap.Int("items", len(summary.Items)),
		zap.String("promotion_code", req.promotionCode),
		zap.String("total", summary.Total().String()),
	)

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		encodeQuote(e, quoteID, req.promotionCode, summary)
	})
}

func decodeQuoteRequest(body io.Reader) (quoteRequest, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return quoteRequest{}, errors.Wrap(err, "read body")
	}

	var req quoteRequest
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "items":
			return d.Arr(func(d *jx.Decoder) error {
				b, err := decodeBook(d)
				if err != nil {
					return err
				}
				req.books = append(req.books, b)
				return nil
			})
		case "promotion_code":
			code, err := d.Str()
			if err != nil {
				return err
			}
			req.promotionCode = code
			return nil
		default:
			return d.Skip()
		}
	}); err != nil {
		return quoteRequest{}, errors.Wrap(err, "malformed request body")
	}
	return req, nil
}

func decodeBook(d *jx.Decoder) (catalog.Book, error) {
	var b catalog.Book
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "title":
			v, err := d.Str()
			b.Title = v
			return err
		case "author":
			v, err := d.Str()
			b.Author = v
			return err
		case "price":
			v, err := decodeDecimal(d)
			if err != nil {
				return err
			}
			if v.IsNegative() {
				return errors.Errorf("price must not be negative, got %s", v)
			}
			b.Price = v
			return nil
		case "format":
			v, err := d.Str()
			if err != nil {
				return err
			}
			b.Format, err = catalog.ParseFormat(v)
			return err
		default:
			return d.Skip()
		}
	}); err != nil {
		return catalog.Book{}, err
	}

	if b.Title == "" {
		return catalog.Book{}, errors.New("item title required")
	}
	if b.Format == "" {
		return catalog.Book{}, errors.Errorf("item %q: format required", b.Title)
	}
	return b, nil
}

func encodeQuote(e *jx.Encoder, quoteID, code string, s *pricing.Summary) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(quoteID) })
		if code != "" {
			e.Field("promotion_code", func(e *jx.Encoder) { e.Str(code) })
		}
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, li := range s.Items {
					encodeLineItem(e, li)
				}
			})
		})
		e.Field("delivery_fee", func(e *jx.Encoder) { encodeDecimal(e, s.DeliveryFee) })
		e.Field("order_discount", func(e *jx.Encoder) { encodeDecimal(e, s.OrderDiscount) })
		e.Field("product_total", func(e *jx.Encoder) { encodeDecimal(e, s.ProductTotal()) })
		e.Field("total", func(e *jx.Encoder) { encodeDecimal(e, s.Total()) })
	})
}

func encodeLineItem(e *jx.Encoder, li *pricing.LineItem) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("name", func(e *jx.Encoder) { e.Str(li.Product.DisplayName()) })
		if b, ok := li.Product.(catalog.Book); ok {
			e.Field("author", func(e *jx.Encoder) { e.Str(b.Author) })
			e.Field("format", func(e *jx.Encoder) { e.Str(string(b.Format)) })
		}
		e.Field("price", func(e *jx.Encoder) { encodeDecimal(e, li.InitialPrice()) })
		e.Field("discount", func(e *jx.Encoder) { encodeDecimal(e, li.Discount) })
		e.Field("final_price", func(e *jx.Encoder) { encodeDecimal(e, li.FinalPrice()) })
		e.Field("promotion_applied", func(e *jx.Encoder) { e.Bool(li.PromotionConsumed) })
	})
}
