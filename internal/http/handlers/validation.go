package handlers

import (
	"slices"
	"strings"

	"github.com/marketmind/marketmind/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateProduct enforces the product form rules: required name and
// category, positive price, non-negative quantity, well-formed optional
// dates with manufacturing on or before expiry.
func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Product name is required"})
	}
	if p.Category == "" {
		errs = append(errs, ProductValidationError{Field: "Category", Description: "Category is required"})
	} else if !slices.Contains(models.Categories, p.Category) {
		errs = append(errs, ProductValidationError{Field: "Category", Description: "Unknown category"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Valid price is required"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if p.MfgDate != "" && !validDate(p.MfgDate) {
		errs = append(errs, ProductValidationError{Field: "MfgDate", Description: "Manufacturing date must be YYYY-MM-DD"})
	}
	if p.Expiry != "" && !validDate(p.Expiry) {
		errs = append(errs, ProductValidationError{Field: "Expiry", Description: "Expiry date must be YYYY-MM-DD"})
	}
	if validDate(p.MfgDate) && validDate(p.Expiry) && p.MfgDate > p.Expiry {
		errs = append(errs, ProductValidationError{Field: "Expiry", Description: "Expiry date must be after manufacturing date"})
	}
	return errs
}
