package models

// Bill statuses. There is no payment workflow; bills are created Paid.
const (
	BillStatusPaid    = "Paid"
	BillStatusPending = "Pending"
)

// BillItem is one invoice line: a snapshot of the cart entry and the
// product price at checkout time.
type BillItem struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
	Total float64 `json:"total"`
}

// Bill is an immutable record of a completed sale.
type Bill struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	CustomerName string     `json:"customerName"`
	PhoneNumber  string     `json:"phoneNumber,omitempty"`
	Items        []BillItem `json:"items"`
	Total        float64    `json:"total"`
	Status       string     `json:"status"`
}
