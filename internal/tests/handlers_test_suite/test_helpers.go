package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/marketmind/marketmind/internal/auth"
	"github.com/marketmind/marketmind/internal/cart"
	api "github.com/marketmind/marketmind/internal/http"
	handler "github.com/marketmind/marketmind/internal/http/handlers"
	"github.com/marketmind/marketmind/internal/kv"
	"github.com/marketmind/marketmind/internal/repo"
)

var (
	token       string
	productRepo *repo.SnapshotProductRepository
	billRepo    *repo.SnapshotBillRepository
)

func init() {
	setupTestRepos()
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin@marketmind.test", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos() {
	store := kv.NewMemoryStore()

	productRepo = repo.NewSnapshotProductRepository(store)
	handler.SetProductRepo(productRepo)

	billRepo = repo.NewSnapshotBillRepository(store)
	handler.SetBillRepo(billRepo)

	handler.SetCartManager(cart.NewManager())
	handler.SetSessionService(auth.NewSessionService(store))
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllBills() {
	billRepo.Clear()
}

func generateToken(r http.Handler, email, password string) (string, error) {
	payload := handler.CredentialsRequest{Email: email, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	return doJSONAs(r, token, method, path, payload)
}

func doJSONAs(r http.Handler, tok, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+tok)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", p)
}

func createCart(r http.Handler) (handler.CartResponse, error) {
	w := doJSON(r, http.MethodPost, "/carts", nil)
	if w.Code != http.StatusCreated {
		return handler.CartResponse{}, fmt.Errorf("cart creation failed with %d", w.Code)
	}
	var resp handler.CartResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return handler.CartResponse{}, err
	}
	return resp, nil
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
