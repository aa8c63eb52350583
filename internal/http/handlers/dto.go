package handlers

import "github.com/marketmind/marketmind/internal/models"

type ProductRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	MfgDate  string  `json:"mfgDate,omitempty"`
	Expiry   string  `json:"expiry,omitempty"`
	SKU      string  `json:"sku,omitempty"`
}

type ProductResponse struct {
	Id       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	MfgDate  string  `json:"mfgDate,omitempty"`
	Expiry   string  `json:"expiry,omitempty"`
	SKU      string  `json:"sku,omitempty"`
	Status   string  `json:"status"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type BillsSearchResult struct {
	Data []models.Bill `json:"data"`
	Meta Meta          `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
}

type CartResponse struct {
	ID         string             `json:"id"`
	State      string             `json:"state"`
	Items      []CartItemResponse `json:"items"`
	ItemCount  int                `json:"item_count"`
	Total      float64            `json:"total"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
}

type CheckoutRequest struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
