package repo

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/marketmind/marketmind/internal/kv"
	"github.com/marketmind/marketmind/internal/models"
)

// SnapshotBillRepository is the persistence-backed bill ledger. When no
// snapshot exists it starts from the built-in sample bills.
type SnapshotBillRepository struct {
	store  kv.Store
	bills  []models.Bill
	lastID int64
}

// NewSnapshotBillRepository loads the persisted ledger, or the samples.
func NewSnapshotBillRepository(store kv.Store) *SnapshotBillRepository {
	r := &SnapshotBillRepository{store: store}
	r.load()
	return r
}

func (r *SnapshotBillRepository) load() {
	r.bills = sampleBills()

	raw, ok, err := r.store.Get(kv.BillsKey)
	if err != nil {
		log.Printf("error loading bills: %v", err)
		return
	}
	if !ok {
		return
	}
	var bills []models.Bill
	if err := json.Unmarshal([]byte(raw), &bills); err != nil {
		log.Printf("error loading bills: %v", err)
		return
	}
	r.bills = bills
}

func (r *SnapshotBillRepository) save() error {
	raw, err := json.Marshal(r.bills)
	if err != nil {
		return err
	}
	return r.store.Set(kv.BillsKey, string(raw))
}

// nextInvoiceID builds "INV-<millis>" ids, bumped when two checkouts land
// on the same millisecond.
func (r *SnapshotBillRepository) nextInvoiceID() string {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return fmt.Sprintf("INV-%d", id)
}

// Create appends a bill to the ledger, assigning an invoice id when the
// checkout left it empty, and persists the full ledger. A failed persist
// leaves the ledger unchanged.
func (r *SnapshotBillRepository) Create(bill models.Bill) (models.Bill, error) {
	if bill.ID == "" {
		bill.ID = r.nextInvoiceID()
	}
	r.bills = append(r.bills, bill)
	if err := r.save(); err != nil {
		r.bills = r.bills[:len(r.bills)-1]
		return models.Bill{}, err
	}
	return bill, nil
}

// GetAll retrieves a copy of all bills in creation order.
func (r *SnapshotBillRepository) GetAll() ([]models.Bill, error) {
	bills := make([]models.Bill, len(r.bills))
	copy(bills, r.bills)
	return bills, nil
}

// GetByID retrieves a bill by its invoice id.
func (r *SnapshotBillRepository) GetByID(id string) (models.Bill, error) {
	for _, b := range r.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Bill{}, ErrBillNotFound
}

func (r *SnapshotBillRepository) Clear() {
	r.bills = []models.Bill{}
	if err := r.save(); err != nil {
		log.Printf("error saving bills: %v", err)
	}
}

// sampleBills seeds the billing view the first time the app runs.
func sampleBills() []models.Bill {
	return []models.Bill{
		{
			ID:           "INV-001",
			Date:         "2025-02-27",
			CustomerName: "John Doe",
			Items: []models.BillItem{
				{Name: "Milk", Qty: 2, Price: 40, Total: 80},
				{Name: "Bread", Qty: 1, Price: 25, Total: 25},
			},
			Total:  105,
			Status: models.BillStatusPaid,
		},
		{
			ID:           "INV-002",
			Date:         "2025-02-26",
			CustomerName: "Jane Smith",
			Items: []models.BillItem{
				{Name: "Eggs", Qty: 50, Price: 60, Total: 3000},
				{Name: "Tomatoes", Qty: 20, Price: 10, Total: 200},
			},
			Total:  3200,
			Status: models.BillStatusPaid,
		},
	}
}
