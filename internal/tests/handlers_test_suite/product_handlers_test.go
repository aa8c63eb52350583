package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/marketmind/marketmind/internal/http"
	handler "github.com/marketmind/marketmind/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{
		Name:     "Milk",
		Category: "Dairy & Eggs",
		Price:    40.0,
		Quantity: 12,
		SKU:      "SKU1",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Id == 0 {
		t.Error("expected a generated id")
	}
	if resp.Name != "Milk" {
		t.Errorf("expected name 'Milk', got %v", resp.Name)
	}
	if resp.Status != "In Stock" {
		t.Errorf("expected 'In Stock' status, got %q", resp.Status)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and category",
			payload:        handler.ProductRequest{Price: 10, Quantity: 1},
			expectedErrors: []string{"Name", "Category"},
		},
		{
			name:           "Unknown category",
			payload:        handler.ProductRequest{Name: "Milk", Category: "Electronics", Price: 10, Quantity: 1},
			expectedErrors: []string{"Category"},
		},
		{
			name:           "Non-positive price",
			payload:        handler.ProductRequest{Name: "Milk", Category: "Dairy & Eggs", Price: 0, Quantity: 1},
			expectedErrors: []string{"Price"},
		},
		{
			name:           "Negative quantity",
			payload:        handler.ProductRequest{Name: "Milk", Category: "Dairy & Eggs", Price: 10, Quantity: -1},
			expectedErrors: []string{"Quantity"},
		},
		{
			name: "Manufacturing after expiry",
			payload: handler.ProductRequest{
				Name: "Milk", Category: "Dairy & Eggs", Price: 10, Quantity: 1,
				MfgDate: "2025-06-01", Expiry: "2025-01-01",
			},
			expectedErrors: []string{"Expiry"},
		},
		{
			name: "Malformed date",
			payload: handler.ProductRequest{
				Name: "Milk", Category: "Dairy & Eggs", Price: 10, Quantity: 1,
				Expiry: "01/06/2025",
			},
			expectedErrors: []string{"Expiry"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	badJSON := `{Name: "Invalid" Price: 100 "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(badJSON))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestCreateProductHandler_TrailingContent(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	// A second JSON value after the request object must be rejected.
	body := `{"name":"Milk","category":"Dairy & Eggs","price":40,"quantity":1}{"name":"Bread"}`
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestProductHandlers_RequireAuth(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a token, got %d", w.Code)
	}
}

func TestGetProductsHandler_Sorted(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	for _, p := range []handler.ProductRequest{
		{Name: "Yogurt", Category: "Dairy & Eggs", Price: 30, Quantity: 5},
		{Name: "Apples", Category: "Fruits & Vegetables", Price: 120, Quantity: 8},
	} {
		if w := createProduct(r, p); w.Code != http.StatusCreated {
			t.Fatalf("failed to create test product %q", p.Name)
		}
	}

	w := doJSON(r, http.MethodGet, "/products?sort=name", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var products []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Name != "Apples" || products[1].Name != "Yogurt" {
		t.Errorf("expected name order Apples, Yogurt; got %q, %q", products[0].Name, products[1].Name)
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Old Name", Category: "Other", Price: 100, Quantity: 1})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding create response: %v", err)
	}

	update := handler.ProductRequest{Name: "New Name", Category: "Snacks", Price: 200, Quantity: 2}
	uw := doJSON(r, http.MethodPut, fmt.Sprintf("/products/%d", created.Id), update)
	if uw.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", uw.Code)
	}

	var updated handler.ProductResponse
	if err := json.NewDecoder(uw.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding update response: %v", err)
	}
	if updated.Name != "New Name" || updated.Category != "Snacks" || updated.Price != 200 {
		t.Errorf("update not applied: %+v", updated)
	}
}

func TestUpdateProductHandler_NotFound(t *testing.T) {
	r := api.NewRouter()
	update := handler.ProductRequest{Name: "Ghost", Category: "Other", Price: 1, Quantity: 1}
	w := doJSON(r, http.MethodPut, "/products/999999", update)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Doomed", Category: "Other", Price: 1, Quantity: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	dw := doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.Id), nil)
	if dw.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", dw.Code)
	}

	gw := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", created.Id), nil)
	if gw.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", gw.Code)
	}
}

func TestDeleteProductHandler_RequiresAdministrator(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Guarded", Category: "Other", Price: 1, Quantity: 1})
	var created handler.ProductResponse
	json.NewDecoder(w.Body).Decode(&created)

	managerToken, err := generateToken(r, "clerk@shop.example", "secret")
	if err != nil {
		t.Fatalf("error generating manager token: %v", err)
	}

	dw := doJSONAs(r, managerToken, http.MethodDelete, fmt.Sprintf("/products/%d", created.Id), nil)
	if dw.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a manager, got %d", dw.Code)
	}

	// The product is still there.
	gw := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", created.Id), nil)
	if gw.Code != http.StatusOK {
		t.Errorf("expected product to survive the rejected delete, got %d", gw.Code)
	}

	// The administrator can delete it.
	dw = doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", created.Id), nil)
	if dw.Code != http.StatusNoContent {
		t.Errorf("expected 204 for an administrator, got %d", dw.Code)
	}
}

func TestFilterProductsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	products := []handler.ProductRequest{
		{Name: "Whole Milk", Category: "Dairy & Eggs", Price: 40, Quantity: 2, Expiry: "2030-03-01"},
		{Name: "Milk Powder", Category: "Dairy & Eggs", Price: 300, Quantity: 5, Expiry: "2030-01-20"},
		{Name: "Bread", Category: "Bakery", Price: 25, Quantity: 10},
	}
	for _, p := range products {
		if w := createProduct(r, p); w.Code != http.StatusCreated {
			t.Fatalf("failed to create test product: %v", p.Name)
		}
	}

	t.Run("Filter by search term", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products/search?q=milk", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 2 {
			t.Fatalf("expected 2 products containing 'milk', got %d", len(resp.Data))
		}
		// Default sort is by expiry ascending.
		if resp.Data[0].Name != "Milk Powder" {
			t.Errorf("expected earliest expiry first, got %q", resp.Data[0].Name)
		}
	})

	t.Run("Filter by category", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products/search?category=Bakery", nil)
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if len(resp.Data) != 1 || resp.Data[0].Name != "Bread" {
			t.Errorf("expected only Bread, got %v", resp.Data)
		}
	})

	t.Run("Filter with no match", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/products/search?q=xyz", nil)
		var resp handler.ProductsSearchResult
		json.NewDecoder(w.Body).Decode(&resp)
		if got := len(resp.Data); got != 0 {
			t.Errorf("expected empty result, got %d items", got)
		}
		if resp.Meta.TotalCount != 0 {
			t.Errorf("expected total count 0, got %d", resp.Meta.TotalCount)
		}
	})
}

func TestGetCategoriesHandler(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodGet, "/products/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var categories []string
	if err := json.NewDecoder(w.Body).Decode(&categories); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(categories) == 0 {
		t.Fatal("expected a non-empty category list")
	}
	found := false
	for _, c := range categories {
		if c == "Dairy & Eggs" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'Dairy & Eggs' in %v", categories)
	}
}

func TestExportProductsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	if w := createProduct(r, handler.ProductRequest{Name: "Milk", Category: "Dairy & Eggs", Price: 40, Quantity: 2, SKU: "SKU1"}); w.Code != http.StatusCreated {
		t.Fatalf("failed to create test product")
	}

	w := doJSON(r, http.MethodGet, "/products/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("expected text/csv content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("expected attachment disposition, got %q", cd)
	}

	body := w.Body.String()
	if !strings.HasPrefix(body, "Product Name,SKU,Category,") {
		t.Errorf("unexpected CSV header: %q", body)
	}
	if !strings.Contains(body, `"Milk","SKU1","Dairy & Eggs",40,2,"","",80.00`) {
		t.Errorf("expected Milk row in export, got %q", body)
	}
}
