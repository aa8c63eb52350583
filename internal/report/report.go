package report

import (
	"math"
	"time"

	"github.com/marketmind/marketmind/internal/models"
)

// Classification thresholds. These are fixed policy, not configuration.
const (
	LowStockThreshold  = 5
	ExpiringSoonDays   = 30
	UrgentExpiryDays   = 7
	HighValueThreshold = 1000.0
)

// MaxExpiry is the sort key used for products without an expiry date,
// so they always sort after dated products.
const MaxExpiry = "9999-12-31"

// Summary holds the dashboard metrics derived from a product snapshot.
type Summary struct {
	TotalProducts     int      `json:"total_products"`
	TotalValue        float64  `json:"total_value"`
	LowStockCount     int      `json:"low_stock_count"`
	OutOfStockCount   int      `json:"out_of_stock_count"`
	ExpiringSoonCount int      `json:"expiring_soon_count"`
	ExpiredCount      int      `json:"expired_count"`
	AveragePrice      float64  `json:"average_price"`
	HighValueCount    int      `json:"high_value_count"`
	Categories        []string `json:"categories"`
}

// DaysUntilExpiry returns the number of calendar days until the product
// expires, rounding fractional days up. The bool is false when no expiry
// is set (or it cannot be parsed, which input validation prevents).
func DaysUntilExpiry(p models.Product, asOf time.Time) (int, bool) {
	if p.Expiry == "" {
		return 0, false
	}
	expiry, err := time.ParseInLocation(models.DateLayout, p.Expiry, asOf.Location())
	if err != nil {
		return 0, false
	}
	return int(math.Ceil(expiry.Sub(asOf).Hours() / 24)), true
}

// Expired reports whether the product's expiry date is strictly in the past.
func Expired(p models.Product, asOf time.Time) bool {
	if p.Expiry == "" {
		return false
	}
	expiry, err := time.ParseInLocation(models.DateLayout, p.Expiry, asOf.Location())
	if err != nil {
		return false
	}
	return expiry.Before(asOf)
}

// ExpiringSoon reports whether the product expires within ExpiringSoonDays,
// exclusive of already-past dates.
func ExpiringSoon(p models.Product, asOf time.Time) bool {
	days, ok := DaysUntilExpiry(p, asOf)
	return ok && days > 0 && days <= ExpiringSoonDays
}

// TotalValue is the inventory value: Σ price × quantity.
func TotalValue(products []models.Product) float64 {
	var sum float64
	for _, p := range products {
		sum += p.Price * float64(p.Quantity)
	}
	return sum
}

// LowStockCount counts products with quantity below LowStockThreshold.
func LowStockCount(products []models.Product) int {
	var n int
	for _, p := range products {
		if p.Quantity < LowStockThreshold {
			n++
		}
	}
	return n
}

// OutOfStockCount counts products with zero quantity.
func OutOfStockCount(products []models.Product) int {
	var n int
	for _, p := range products {
		if p.Quantity == 0 {
			n++
		}
	}
	return n
}

// ExpiringSoonCount counts products expiring within ExpiringSoonDays.
func ExpiringSoonCount(products []models.Product, asOf time.Time) int {
	var n int
	for _, p := range products {
		if ExpiringSoon(p, asOf) {
			n++
		}
	}
	return n
}

// ExpiredCount counts products whose expiry date is strictly in the past.
func ExpiredCount(products []models.Product, asOf time.Time) int {
	var n int
	for _, p := range products {
		if Expired(p, asOf) {
			n++
		}
	}
	return n
}

// AveragePrice is the total inventory value divided by the product count,
// zero for an empty snapshot.
func AveragePrice(products []models.Product) float64 {
	if len(products) == 0 {
		return 0
	}
	return TotalValue(products) / float64(len(products))
}

// HighValueCount counts products priced above HighValueThreshold.
func HighValueCount(products []models.Product) int {
	var n int
	for _, p := range products {
		if p.Price > HighValueThreshold {
			n++
		}
	}
	return n
}

// CategoryList returns the distinct non-empty categories in input order.
func CategoryList(products []models.Product) []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}

// Summarize computes all dashboard metrics for one product snapshot.
// An empty snapshot yields a zero-valued summary, never an error.
func Summarize(products []models.Product, asOf time.Time) Summary {
	return Summary{
		TotalProducts:     len(products),
		TotalValue:        TotalValue(products),
		LowStockCount:     LowStockCount(products),
		OutOfStockCount:   OutOfStockCount(products),
		ExpiringSoonCount: ExpiringSoonCount(products, asOf),
		ExpiredCount:      ExpiredCount(products, asOf),
		AveragePrice:      AveragePrice(products),
		HighValueCount:    HighValueCount(products),
		Categories:        CategoryList(products),
	}
}
