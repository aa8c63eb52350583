package export

import (
	"html/template"
	"strings"

	"github.com/marketmind/marketmind/internal/models"
)

// invoiceTemplate is the printable bill document: header, customer and
// date info, line items, and the grand total.
var invoiceTemplate = template.Must(template.New("invoice").Parse(`<html>
  <head>
    <title>Invoice {{.ID}}</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 20px; }
      .invoice-header { text-align: center; margin-bottom: 30px; }
      .invoice-header h1 { margin: 0; color: #1e40af; }
      .bill-info { margin-bottom: 20px; display: flex; justify-content: space-between; }
      .bill-info-item label { font-weight: bold; color: #333; }
      table { width: 100%; border-collapse: collapse; margin: 20px 0; }
      th { background-color: #f3f4f6; padding: 10px; text-align: left; border: 1px solid #ddd; }
      td { padding: 10px; border: 1px solid #ddd; }
      .total-row { background-color: #dbeafe; font-weight: bold; font-size: 18px; }
      .footer { margin-top: 30px; text-align: center; color: #999; font-size: 12px; }
    </style>
  </head>
  <body>
    <div class="invoice-header">
      <h1>Marketmind</h1>
      <p>Invoice / Bill</p>
    </div>

    <div class="bill-info">
      <div class="bill-info-item">
        <label>Invoice Number:</label>
        <p>{{.ID}}</p>
        <label>Date:</label>
        <p>{{.Date}}</p>
      </div>
      <div class="bill-info-item">
        <label>Customer Name:</label>
        <p>{{.CustomerName}}</p>
        <label>Status:</label>
        <p>{{.Status}}</p>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th>Product</th>
          <th style="text-align: center;">Quantity</th>
          <th style="text-align: right;">Price</th>
          <th style="text-align: right;">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td>{{.Name}}</td>
          <td style="text-align: center;">{{.Qty}}</td>
          <td style="text-align: right;">&#8377;{{.Price}}</td>
          <td style="text-align: right;">&#8377;{{.Total}}</td>
        </tr>
        {{end}}
        <tr class="total-row">
          <td colspan="3" style="text-align: right;">Total Amount:</td>
          <td style="text-align: right;">&#8377;{{printf "%.2f" .Total}}</td>
        </tr>
      </tbody>
    </table>

    <div class="footer">
      <p>Thank you for your business!</p>
      <p>Powered by Marketmind</p>
    </div>
  </body>
</html>
`))

// InvoiceHTML renders a bill as a printable HTML document.
func InvoiceHTML(bill models.Bill) (string, error) {
	var b strings.Builder
	if err := invoiceTemplate.Execute(&b, bill); err != nil {
		return "", err
	}
	return b.String(), nil
}
