package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/marketmind/marketmind/internal/models"
)

// csvHeader lists the export columns in order.
var csvHeader = []string{
	"Product Name",
	"SKU",
	"Category",
	"Price",
	"Quantity",
	"Manufacturing Date",
	"Expiry Date",
	"Total Value",
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ProductsCSV renders the catalog as delimited text: header row first,
// then one row per product. Text cells are quoted, numeric cells are
// bare, and the total value carries two decimals.
func ProductsCSV(products []models.Product) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))

	for _, p := range products {
		cells := []string{
			quote(p.Name),
			quote(p.SKU),
			quote(p.Category),
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.Itoa(p.Quantity),
			quote(p.MfgDate),
			quote(p.Expiry),
			fmt.Sprintf("%.2f", p.Price*float64(p.Quantity)),
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(cells, ","))
	}
	return b.String()
}
