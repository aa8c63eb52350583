package repo

import "github.com/marketmind/marketmind/internal/models"

// BillRepository defines the interface for the append-only bill ledger.
// Bills are never mutated after creation.
type BillRepository interface {
	Create(bill models.Bill) (models.Bill, error)
	GetAll() ([]models.Bill, error)
	GetByID(id string) (models.Bill, error)
}
