// Package integration exercises the full HTTP stack in-process: the real
// mux, middleware chain, and handlers behind an httptest server. There is no
// external state, so no containers are involved.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bookden/pricing-engine/internal/domain/cart"
	"github.com/bookden/pricing-engine/internal/domain/promocode"
	"github.com/bookden/pricing-engine/internal/domain/promotion"
	"github.com/bookden/pricing-engine/internal/handler"
	"github.com/bookden/pricing-engine/internal/shelf"
	"github.com/bookden/pricing-engine/pkg/health"
	"github.com/bookden/pricing-engine/pkg/httpmiddleware"
)

var (
	baseURL    string
	httpClient *http.Client
)

// Response types — defined locally to keep tests truly black-box (no
// assertions against internal encoders).

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type quoteRequest struct {
	Items         []quoteItem `json:"items"`
	PromotionCode string      `json:"promotion_code,omitempty"`
}

type quoteItem struct {
	Title  string  `json:"title"`
	Author string  `json:"author,omitempty"`
	Price  float64 `json:"price"`
	Format string  `json:"format"`
}

type quoteResponse struct {
	ID            string         `json:"id"`
	PromotionCode string         `json:"promotion_code"`
	Items         []itemResponse `json:"items"`
	DeliveryFee   float64        `json:"delivery_fee"`
	OrderDiscount float64        `json:"order_discount"`
	ProductTotal  float64        `json:"product_total"`
	Total         float64        `json:"total"`
}

type itemResponse struct {
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Discount         float64 `json:"discount"`
	FinalPrice       float64 `json:"final_price"`
	PromotionApplied bool    `json:"promotion_applied"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider, err := promotion.DefaultProvider()
	if err != nil {
		log.Fatalf("provider: %v", err)
	}
	registry, err := promocode.DefaultRegistry()
	if err != nil {
		log.Fatalf("registry: %v", err)
	}
	sh, err := shelf.Load()
	if err != nil {
		log.Fatalf("shelf: %v", err)
	}

	healthSvc := health.New()
	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)
	defer healthSvc.Stop()

	h := handler.NewHandler(cart.NewService(provider), registry, provider, sh)

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	h.Routes(mux)

	server := httptest.NewServer(httpmiddleware.Wrap(mux,
		httpmiddleware.Recovery(),
		httpmiddleware.CORS(httpmiddleware.CORSConfig{
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       86400,
		}),
		httpmiddleware.RateLimit(httpmiddleware.RateLimitConfig{
			Max:    1000,
			Window: time.Minute,
		}),
		httpmiddleware.RequestID(),
		httpmiddleware.InjectLogger(zap.NewNop()),
		httpmiddleware.LogRequests(),
	))
	defer server.Close()

	baseURL = server.URL
	httpClient = &http.Client{Timeout: 10 * time.Second}

	return m.Run()
}

// HTTP helpers.

func doGet(t *testing.T, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, baseURL+path, nil)
	if err != nil {
		t.Fatalf("create request: %v", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func doPost(t *testing.T, path string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, baseURL+path, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}
