package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	api "github.com/marketmind/marketmind/internal/http"
	handler "github.com/marketmind/marketmind/internal/http/handlers"
	"github.com/marketmind/marketmind/internal/models"
	"github.com/marketmind/marketmind/internal/repo"
)

func seedBills(t *testing.T) {
	t.Helper()
	clearAllBills()
	for _, b := range []models.Bill{
		{ID: "INV-001", Date: "2025-02-27", CustomerName: "John Doe", Total: 105, Status: models.BillStatusPaid,
			Items: []models.BillItem{{Name: "Milk", Qty: 2, Price: 40, Total: 80}, {Name: "Bread", Qty: 1, Price: 25, Total: 25}}},
		{ID: "INV-002", Date: "2025-02-26", CustomerName: "Jane Smith", Total: 3200, Status: models.BillStatusPaid},
		{ID: "INV-003", Date: "2025-02-25", CustomerName: "Acme Corp", Total: 500, Status: models.BillStatusPending},
	} {
		if _, err := billRepo.Create(b); err != nil {
			t.Fatalf("failed to seed bill: %v", err)
		}
	}
}

func TestGetBillsHandler(t *testing.T) {
	seedBills(t)
	t.Cleanup(clearAllBills)
	r := api.NewRouter()

	t.Run("All bills", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/bills", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp handler.BillsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 3 {
			t.Errorf("expected 3 bills, got %d", len(resp.Data))
		}
	})

	t.Run("Search by customer", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/bills?term=jane", nil)
		var resp handler.BillsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 1 || resp.Data[0].ID != "INV-002" {
			t.Errorf("expected only INV-002, got %v", resp.Data)
		}
	})

	t.Run("Search by invoice id", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/bills?term=INV-003", nil)
		var resp handler.BillsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 1 || resp.Data[0].CustomerName != "Acme Corp" {
			t.Errorf("expected Acme Corp's bill, got %v", resp.Data)
		}
	})

	t.Run("Filter by status", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/bills?status=Pending", nil)
		var resp handler.BillsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 1 || resp.Data[0].ID != "INV-003" {
			t.Errorf("expected the pending bill, got %v", resp.Data)
		}
	})

	t.Run("Status All passes everything", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/bills?status=All", nil)
		var resp handler.BillsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 3 {
			t.Errorf("expected 3 bills, got %d", len(resp.Data))
		}
	})
}

func TestGetBillingSummaryHandler(t *testing.T) {
	seedBills(t)
	t.Cleanup(clearAllBills)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/bills/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var s repo.BillingSummary
	if err := json.NewDecoder(w.Body).Decode(&s); err != nil {
		t.Fatalf("error decoding summary: %v", err)
	}
	if s.TotalBills != 3 {
		t.Errorf("expected 3 bills, got %d", s.TotalBills)
	}
	if s.TotalBilled != 3805 {
		t.Errorf("expected total 3805, got %v", s.TotalBilled)
	}
	if s.PaidTotal != 3305 {
		t.Errorf("expected paid total 3305, got %v", s.PaidTotal)
	}
	if s.PendingTotal != 500 || s.PendingCount != 1 {
		t.Errorf("expected pending 500/1, got %v/%d", s.PendingTotal, s.PendingCount)
	}
}

func TestGetBillByIDHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllBills)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/bills/INV-999999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPrintBillHandler(t *testing.T) {
	seedBills(t)
	t.Cleanup(clearAllBills)
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/bills/INV-001/print", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected text/html content type, got %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{"INV-001", "John Doe", "Milk", "Bread", "105.00"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected printable bill to contain %q", want)
		}
	}
}
