package repo

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/marketmind/marketmind/internal/models"
	"github.com/marketmind/marketmind/internal/report"
)

// Product sort keys for the catalog view. One key is active at a time.
const (
	SortByName     = "name"
	SortByExpiry   = "expiry"
	SortByQuantity = "quantity"
	SortByPrice    = "price"
)

// ProductFilter narrows the catalog view. An empty field means no filter.
type ProductFilter struct {
	Category string
	Search   string
}

func matchesProductFilter(p models.Product, pf ProductFilter) bool {
	if pf.Category != "" && p.Category != pf.Category {
		return false
	}
	if pf.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(pf.Search)) {
		return false
	}
	return true
}

// FilterProducts retains products matching the category and the
// case-insensitive name search, preserving input order.
func FilterProducts(products []models.Product, pf ProductFilter) []models.Product {
	filtered := []models.Product{}
	for _, p := range products {
		if matchesProductFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// expiryKey makes missing expiry dates sort last. YYYY-MM-DD strings
// order lexicographically the same as chronologically.
func expiryKey(p models.Product) string {
	if p.Expiry == "" {
		return report.MaxExpiry
	}
	return p.Expiry
}

var nameCollator = collate.New(language.English)

// SortProducts returns a copy of products ordered by the given key.
// Ties keep their relative input order. Unknown keys leave the order as is.
func SortProducts(products []models.Product, sortBy string) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch sortBy {
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return nameCollator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortByExpiry:
		sort.SliceStable(sorted, func(i, j int) bool {
			return expiryKey(sorted[i]) < expiryKey(sorted[j])
		})
	case SortByQuantity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Quantity < sorted[j].Quantity
		})
	case SortByPrice:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	}
	return sorted
}
