package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marketmind/marketmind/internal/export"
	"github.com/marketmind/marketmind/internal/repo"
)

// GetBillsHandler godoc
// @Summary Search the bill ledger
// @Description The term matches the invoice id or customer name,
// @Description case-insensitive. Status filters to Paid or Pending.
// @Tags bills
// @Produce json
// @Param term query string false "Search term"
// @Param status query string false "All|Paid|Pending"
// @Success 200 {object} BillsSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /bills [get]
// @Security BearerAuth
func GetBillsHandler(w http.ResponseWriter, r *http.Request) {
	bills, err := billRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch bills", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	filtered := repo.FilterBills(bills, repo.BillFilter{
		Term:   q.Get("term"),
		Status: q.Get("status"),
	})

	resp := BillsSearchResult{Data: filtered, Meta: Meta{TotalCount: len(filtered)}}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetBillingSummaryHandler godoc
// @Summary Billing dashboard aggregates over the full ledger
// @Tags bills
// @Produce json
// @Success 200 {object} repo.BillingSummary
// @Failure 500 {string} string "Internal error"
// @Router /bills/summary [get]
// @Security BearerAuth
func GetBillingSummaryHandler(w http.ResponseWriter, r *http.Request) {
	bills, err := billRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch bills", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, repo.SummarizeBills(bills)); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetBillByIDHandler godoc
// @Summary Get a bill by invoice id
// @Tags bills
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.Bill
// @Failure 404 {string} string "Not found"
// @Router /bills/{id} [get]
// @Security BearerAuth
func GetBillByIDHandler(w http.ResponseWriter, r *http.Request) {
	bill, err := billRepo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrBillNotFound) {
			http.Error(w, "bill not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch bill", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, bill); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// PrintBillHandler godoc
// @Summary Render a bill as a printable HTML document
// @Tags bills
// @Produce html
// @Param id path string true "Invoice ID"
// @Success 200 {string} string "HTML document"
// @Failure 404 {string} string "Not found"
// @Router /bills/{id}/print [get]
// @Security BearerAuth
func PrintBillHandler(w http.ResponseWriter, r *http.Request) {
	bill, err := billRepo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrBillNotFound) {
			http.Error(w, "bill not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch bill", http.StatusInternalServerError)
		return
	}

	doc, err := export.InvoiceHTML(bill)
	if err != nil {
		http.Error(w, "could not render invoice", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(doc)); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
