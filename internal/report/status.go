package report

import (
	"time"

	"github.com/marketmind/marketmind/internal/models"
)

// Stock status badges, in display-precedence order.
const (
	StatusExpired      = "Expired"
	StatusExpiringSoon = "Expiring Soon"
	StatusOutOfStock   = "Out of Stock"
	StatusLowStock     = "Low Stock"
	StatusInStock      = "In Stock"
)

// Expiry classifications.
const (
	ExpiryNone    = "no-expiry"
	ExpiryExpired = "expired"
	ExpiryUrgent  = "urgent"
	ExpirySoon    = "soon"
	ExpiryGood    = "good"
)

// StockStatus classifies a product for badge display. Expiry conditions
// take precedence over stock conditions: expired > expiring-soon >
// out-of-stock > low-stock > in-stock. The badge's expiring window is the
// urgent one (UrgentExpiryDays), tighter than the dashboard's 30-day count.
func StockStatus(p models.Product, asOf time.Time) string {
	if Expired(p, asOf) {
		return StatusExpired
	}
	if days, ok := DaysUntilExpiry(p, asOf); ok && days <= UrgentExpiryDays {
		return StatusExpiringSoon
	}
	if p.Quantity == 0 {
		return StatusOutOfStock
	}
	if p.Quantity < LowStockThreshold {
		return StatusLowStock
	}
	return StatusInStock
}

// ExpiryStatus classifies a product by expiry alone.
func ExpiryStatus(p models.Product, asOf time.Time) string {
	days, ok := DaysUntilExpiry(p, asOf)
	switch {
	case !ok:
		return ExpiryNone
	case Expired(p, asOf):
		return ExpiryExpired
	case days <= UrgentExpiryDays:
		return ExpiryUrgent
	case days <= ExpiringSoonDays:
		return ExpirySoon
	default:
		return ExpiryGood
	}
}
