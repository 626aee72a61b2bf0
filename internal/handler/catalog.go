package handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// Catalog lists the demo shelf.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	books := h.shelf.List()

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Arr(func(e *jx.Encoder) {
			for _, b := range books {
				e.Obj(func(e *jx.Encoder) {
					e.Field("title", func(e *jx.Encoder) { e.Str(b.Title) })
					e.Field("author", func(e *jx.Encoder) { e.Str(b.Author) })
					e.Field("price", func(e *jx.Encoder) { encodeDecimal(e, b.Price) })
					e.Field("format", func(e *jx.Encoder) { e.Str(string(b.Format)) })
				})
			}
		})
	})
}

// Promotions lists the active automatic promotions and the accepted
// promotion code names.
func (h *Handler) Promotions(w http.ResponseWriter, r *http.Request) {
	promos := h.promotions.ActivePromotions()
	names := h.codes.Names()

	writeJSON(w, r, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.Field("automatic", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, p := range promos {
						e.Str(p.Describe())
					}
				})
			})
			e.Field("codes", func(e *jx.Encoder) {
				e.Arr(func(e *jx.Encoder) {
					for _, name := range names {
						e.Str(name)
					}
				})
			})
		})
	})
}
