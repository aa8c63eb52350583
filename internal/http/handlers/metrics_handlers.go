package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/marketmind/marketmind/internal/report"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics derived from the current product snapshot
// @Tags metrics
// @Produce json
// @Success 200 {object} report.Summary
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	m := report.Summarize(products, time.Now())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(m); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
