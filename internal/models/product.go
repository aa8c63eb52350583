package models

// DateLayout is the wire format for product and bill dates.
const DateLayout = "2006-01-02"

// Product represents a catalog entry in the inventory system.
// Dates are YYYY-MM-DD strings; an empty string means "not set".
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	MfgDate  string  `json:"mfgDate,omitempty"`
	Expiry   string  `json:"expiry,omitempty"`
	SKU      string  `json:"sku,omitempty"`
}

// Categories is the fixed category list offered by the product form.
var Categories = []string{
	"Fruits & Vegetables",
	"Dairy & Eggs",
	"Meat & Fish",
	"Grains & Cereals",
	"Snacks",
	"Beverages",
	"Bakery",
	"Frozen Foods",
	"Spices & Condiments",
	"Personal Care",
	"Other",
}
