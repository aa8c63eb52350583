package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/marketmind/marketmind/internal/export"
)

// ExportProductsHandler godoc
// @Summary Export the full catalog as CSV
// @Description The download filename carries the current date. Columns
// @Description match the layout the importer accepts.
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {string} string "Internal error"
// @Router /products/export [get]
// @Security BearerAuth
func ExportProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("inventory-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write([]byte(export.ProductsCSV(products))); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}
