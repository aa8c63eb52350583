package repo

import (
	"strings"

	"github.com/marketmind/marketmind/internal/models"
)

// BillStatusAll disables status filtering in a bill search.
const BillStatusAll = "All"

// BillFilter narrows the billing view. The term matches the invoice id or
// the customer name, case-insensitive.
type BillFilter struct {
	Term   string
	Status string
}

func matchesBillFilter(b models.Bill, bf BillFilter) bool {
	if bf.Term != "" {
		term := strings.ToLower(bf.Term)
		if !strings.Contains(strings.ToLower(b.ID), term) &&
			!strings.Contains(strings.ToLower(b.CustomerName), term) {
			return false
		}
	}
	if bf.Status != "" && bf.Status != BillStatusAll && b.Status != bf.Status {
		return false
	}
	return true
}

// FilterBills retains bills matching the term and status, preserving order.
func FilterBills(bills []models.Bill, bf BillFilter) []models.Bill {
	filtered := []models.Bill{}
	for _, b := range bills {
		if matchesBillFilter(b, bf) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// BillingSummary holds the billing dashboard aggregates.
type BillingSummary struct {
	TotalBills   int     `json:"total_bills"`
	TotalBilled  float64 `json:"total_billed"`
	PaidTotal    float64 `json:"paid_total"`
	PendingTotal float64 `json:"pending_total"`
	PendingCount int     `json:"pending_count"`
}

// SummarizeBills computes totals over the full ledger.
func SummarizeBills(bills []models.Bill) BillingSummary {
	s := BillingSummary{TotalBills: len(bills)}
	for _, b := range bills {
		s.TotalBilled += b.Total
		switch b.Status {
		case models.BillStatusPaid:
			s.PaidTotal += b.Total
		case models.BillStatusPending:
			s.PendingTotal += b.Total
			s.PendingCount++
		}
	}
	return s
}
