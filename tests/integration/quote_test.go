package integration

import (
	"net/http"
	"testing"
)

func TestQuote_ElectronicOnlyCart(t *testing.T) {
	resp := doPost(t, "/api/quote", quoteRequest{
		Items: []quoteItem{
			{Title: "Book 1", Price: 100, Format: "electronic"},
			{Title: "Book 2", Price: 300, Format: "electronic"},
		},
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	quote := decodeJSON[quoteResponse](t, resp)
	if quote.ID == "" {
		t.Error("quote id missing")
	}
	if quote.DeliveryFee != 0 {
		t.Errorf("delivery fee: got %v, want 0", quote.DeliveryFee)
	}
	if quote.Total != 400 {
		t.Errorf("total: got %v, want 400", quote.Total)
	}
}

func TestQuote_PaperBooksGetRewardAndDeliveryFee(t *testing.T) {
	resp := doPost(t, "/api/quote", quoteRequest{
		Items: []quoteItem{
			{Title: "Book 1", Price: 100, Format: "electronic"},
			{Title: "Book 2", Price: 300, Format: "electronic"},
			{Title: "Book 3", Price: 50, Format: "paper"},
			{Title: "Book 4", Price: 60, Format: "paper"},
		},
	})
	defer resp.Body.Close()

	quote := decodeJSON[quoteResponse](t, resp)

	if len(quote.Items) != 5 {
		t.Fatalf("items: got %d, want 5 (reward appended)", len(quote.Items))
	}
	reward := quote.Items[4]
	if !reward.PromotionApplied || reward.FinalPrice != 0 {
		t.Errorf("reward item not free: %+v", reward)
	}
	if quote.DeliveryFee != 200 {
		t.Errorf("delivery fee: got %v, want 200", quote.DeliveryFee)
	}
	if quote.Total != 710 {
		t.Errorf("total: got %v, want 710", quote.Total)
	}
}

func TestQuote_PromotionCode(t *testing.T) {
	resp := doPost(t, "/api/quote", quoteRequest{
		Items: []quoteItem{
			{Title: "Book 1", Price: 300, Format: "paper"},
		},
		PromotionCode: "FREESHIP",
	})
	defer resp.Body.Close()

	quote := decodeJSON[quoteResponse](t, resp)
	if quote.OrderDiscount != 200 {
		t.Errorf("order discount: got %v, want 200", quote.OrderDiscount)
	}
	if quote.Total != 300 {
		t.Errorf("total: got %v, want 300", quote.Total)
	}
}

func TestQuote_UnknownPromotionCode(t *testing.T) {
	resp := doPost(t, "/api/quote", quoteRequest{
		Items:         []quoteItem{{Title: "Book 1", Price: 100, Format: "electronic"}},
		PromotionCode: "BOGUS",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	errResp := decodeJSON[errorResponse](t, resp)
	if errResp.Code != 422 {
		t.Errorf("error code: got %d, want 422", errResp.Code)
	}
}

func TestQuote_EmptyCart(t *testing.T) {
	resp := doPost(t, "/api/quote", quoteRequest{})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestCatalog_ListsShelf(t *testing.T) {
	resp := doGet(t, "/api/catalog")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	books := decodeJSON[[]quoteItem](t, resp)
	if len(books) == 0 {
		t.Fatal("catalog is empty")
	}
}

func TestPromotions_ListsRules(t *testing.T) {
	resp := doGet(t, "/api/promotions")
	defer resp.Body.Close()

	body := decodeJSON[struct {
		Automatic []string `json:"automatic"`
		Codes     []string `json:"codes"`
	}](t, resp)

	if len(body.Automatic) == 0 {
		t.Error("no automatic promotions listed")
	}
	if len(body.Codes) == 0 {
		t.Error("no promotion codes listed")
	}
}
