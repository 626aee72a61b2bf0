// Package handler exposes the pricing engine over HTTP. Requests and
// responses are encoded by hand with go-faster/jx; the handlers stay thin and
// delegate all pricing decisions to the domain packages.
package handler

import (
	"net/http"

	"github.com/bookden/pricing-engine/internal/domain/cart"
	"github.com/bookden/pricing-engine/internal/domain/promocode"
	"github.com/bookden/pricing-engine/internal/domain/promotion"
	"github.com/bookden/pricing-engine/internal/shelf"
)

// Handler serves the quote, catalog, and promotion endpoints.
type Handler struct {
	carts      *cart.Service
	codes      *promocode.Registry
	promotions promotion.Provider
	shelf      *shelf.Shelf
}

// NewHandler constructs a Handler with the required domain dependencies.
func NewHandler(
	carts *cart.Service,
	codes *promocode.Registry,
	promotions promotion.Provider,
	sh *shelf.Shelf,
) *Handler {
	return &Handler{
		carts:      carts,
		codes:      codes,
		promotions: promotions,
		shelf:      sh,
	}
}

// Routes registers all API endpoints on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/quote", h.Quote)
	mux.HandleFunc("GET /api/catalog", h.Catalog)
	mux.HandleFunc("GET /api/promotions", h.Promotions)
}
