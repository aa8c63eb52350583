package repo

import "github.com/marketmind/marketmind/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int64) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int64) error
	GetByName(name string) (models.Product, error)
}
