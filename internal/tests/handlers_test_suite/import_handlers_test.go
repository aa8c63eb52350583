package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/marketmind/marketmind/internal/http"
	handler "github.com/marketmind/marketmind/internal/http/handlers"
)

func importCSV(r http.Handler, csvContent, query string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(csvContent, "products.csv")
	req := httptest.NewRequest(http.MethodPost, "/products/import"+query, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportProductsHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	csv := `Product Name,SKU,Category,Price,Quantity,Manufacturing Date,Expiry Date,Total Value
"Milk","SKU1","Dairy & Eggs",40,2,"","",80.00
"Bread","SKU2","Bakery",25,10,"2025-01-01","2025-01-05",250.00`

	w := importCSV(r, csv, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding result: %v", err)
	}
	if result.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}

	gw := doJSON(r, http.MethodGet, "/products", nil)
	var products []handler.ProductResponse
	json.NewDecoder(gw.Body).Decode(&products)
	if len(products) != 2 {
		t.Errorf("expected 2 products after import, got %d", len(products))
	}
}

func TestImportProductsHandler_RowErrors(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	csv := `Product Name,SKU,Category,Price,Quantity,Manufacturing Date,Expiry Date,Total Value
"","SKU1","Dairy & Eggs",40,2,"","",80.00
"Bread","SKU2","Bakery",-5,10,"","",0
"Eggs","SKU3","Dairy & Eggs",60,4,"","",240.00`

	w := importCSV(r, csv, "")
	var result handler.ImportProductsResult
	json.NewDecoder(w.Body).Decode(&result)

	if result.ImportedProductsCount != 1 {
		t.Errorf("expected 1 imported, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0].Description, "row 2") {
		t.Errorf("expected row number in error, got %q", result.Errors[0].Description)
	}
}

func TestImportProductsHandler_SkipAndUpdateModes(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	if w := createProduct(r, handler.ProductRequest{Name: "Milk", Category: "Dairy & Eggs", Price: 40, Quantity: 2}); w.Code != http.StatusCreated {
		t.Fatal("failed to seed product")
	}

	csv := `Product Name,SKU,Category,Price,Quantity,Manufacturing Date,Expiry Date,Total Value
"Milk","SKU9","Dairy & Eggs",55,7,"","",385.00`

	// Default mode skips existing names.
	w := importCSV(r, csv, "")
	var result handler.ImportProductsResult
	json.NewDecoder(w.Body).Decode(&result)
	if result.ImportedProductsCount != 0 {
		t.Errorf("expected skip mode to import nothing, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0].Description, "already exists") {
		t.Errorf("expected an 'already exists' error, got %v", result.Errors)
	}

	// Update mode overwrites the existing product.
	w = importCSV(r, csv, "?mode=update")
	json.NewDecoder(w.Body).Decode(&result)
	if result.ImportedProductsCount != 1 {
		t.Fatalf("expected update mode to import 1, got %d", result.ImportedProductsCount)
	}

	gw := doJSON(r, http.MethodGet, "/products", nil)
	var products []handler.ProductResponse
	json.NewDecoder(gw.Body).Decode(&products)
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].Price != 55 || products[0].Quantity != 7 || products[0].SKU != "SKU9" {
		t.Errorf("update mode did not overwrite: %+v", products[0])
	}
}

func TestImportProductsHandler_MissingFile(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/products/import", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a file, got %d", w.Code)
	}
}

func TestImportThenExportRoundTrip(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter()

	row := `"Paneer","SKU7","Dairy & Eggs",120,3,"2025-01-01","2025-01-15",360.00`
	csv := "Product Name,SKU,Category,Price,Quantity,Manufacturing Date,Expiry Date,Total Value\n" + row

	if w := importCSV(r, csv, ""); w.Code != http.StatusOK {
		t.Fatalf("import failed: %d", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/products/export", nil)
	if !strings.Contains(w.Body.String(), row) {
		t.Errorf("expected export to reproduce the imported row, got %q", w.Body.String())
	}
}
