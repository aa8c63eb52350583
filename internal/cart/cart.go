package cart

import (
	"errors"
	"strings"
	"time"

	"github.com/marketmind/marketmind/internal/models"
)

// PageSize is the fixed display window for cart pagination.
const PageSize = 10

// State tracks one sales session. There is no completed state: a
// successful checkout ends with the whole session being discarded.
type State int

const (
	StateEmpty State = iota
	StateBuilding
	StateCheckoutPending
)

func (s State) String() string {
	switch s {
	case StateBuilding:
		return "Building"
	case StateCheckoutPending:
		return "CheckoutPending"
	default:
		return "Empty"
	}
}

var (
	// ErrInvalidQuantity is returned for add requests below one unit.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrEmptyCart blocks checkout of an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCustomerNameRequired blocks checkout without a customer name.
	ErrCustomerNameRequired = errors.New("customer name is required")
	// ErrCheckoutPending blocks cart edits while the checkout summary is open.
	ErrCheckoutPending = errors.New("checkout in progress")
)

// Item is one cart line: a snapshot of the product at add time plus the
// quantity being purchased (distinct from the product's stock quantity).
type Item struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart accumulates line items for a single sales session. It never
// touches product stock; there is no reservation.
type Cart struct {
	items []Item
	state State
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{items: []Item{}}
}

func (c *Cart) State() State { return c.state }

// Items returns a copy of the current cart lines.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Size() int { return len(c.items) }

// Add merges qty units of the product into the cart. Repeated adds for
// the same product increment the existing line instead of duplicating it.
func (c *Cart) Add(p models.Product, qty int) error {
	if c.state == StateCheckoutPending {
		return ErrCheckoutPending
	}
	if qty < 1 {
		return ErrInvalidQuantity
	}
	for i, item := range c.items {
		if item.ProductID == p.ID {
			c.items[i].Quantity += qty
			return nil
		}
	}
	c.items = append(c.items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Quantity:  qty,
	})
	c.state = StateBuilding
	return nil
}

// UpdateQuantity replaces the purchase quantity for a product already in
// the cart. A quantity of zero or below removes the line.
func (c *Cart) UpdateQuantity(productID int64, qty int) error {
	if c.state == StateCheckoutPending {
		return ErrCheckoutPending
	}
	if qty <= 0 {
		c.Remove(productID)
		return nil
	}
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items[i].Quantity = qty
			return nil
		}
	}
	return nil
}

// Remove deletes the line for productID; absent lines are a no-op.
func (c *Cart) Remove(productID int64) {
	if c.state == StateCheckoutPending {
		return
	}
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	if len(c.items) == 0 {
		c.state = StateEmpty
	}
}

// Total is Σ price × quantity over the current cart lines.
func (c *Cart) Total() float64 {
	var sum float64
	for _, item := range c.items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// BeginCheckout freezes the cart for the checkout summary.
func (c *Cart) BeginCheckout() error {
	if len(c.items) == 0 {
		return ErrEmptyCart
	}
	c.state = StateCheckoutPending
	return nil
}

// CancelCheckout reopens the cart for edits.
func (c *Cart) CancelCheckout() {
	if c.state == StateCheckoutPending {
		c.state = StateBuilding
	}
}

// Checkout builds the immutable bill snapshot. The invoice id is assigned
// by the bill store on append. The cart itself is left untouched so a
// failed persist can be retried; the caller discards the session once the
// bill is safely in the ledger.
func (c *Cart) Checkout(customerName, phoneNumber string, now time.Time) (models.Bill, error) {
	if len(c.items) == 0 {
		return models.Bill{}, ErrEmptyCart
	}
	if strings.TrimSpace(customerName) == "" {
		return models.Bill{}, ErrCustomerNameRequired
	}

	items := make([]models.BillItem, len(c.items))
	for i, item := range c.items {
		items[i] = models.BillItem{
			Name:  item.Name,
			Qty:   item.Quantity,
			Price: item.Price,
			Total: item.Price * float64(item.Quantity),
		}
	}
	return models.Bill{
		Date:         now.Format(models.DateLayout),
		CustomerName: customerName,
		PhoneNumber:  phoneNumber,
		Items:        items,
		Total:        c.Total(),
		Status:       models.BillStatusPaid,
	}, nil
}

// TotalPages is the number of display pages at the fixed page size.
func (c *Cart) TotalPages() int {
	return (len(c.items) + PageSize - 1) / PageSize
}

// Page returns the display window for a 1-based page number. Pages out of
// range yield an empty slice. Pure windowing, no domain semantics.
func (c *Cart) Page(page int) []Item {
	if page < 1 {
		return []Item{}
	}
	start := (page - 1) * PageSize
	if start >= len(c.items) {
		return []Item{}
	}
	end := start + PageSize
	if end > len(c.items) {
		end = len(c.items)
	}
	items := make([]Item, end-start)
	copy(items, c.items[start:end])
	return items
}
