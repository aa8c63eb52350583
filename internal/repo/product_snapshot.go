package repo

import (
	"encoding/json"
	"log"
	"time"

	"github.com/marketmind/marketmind/internal/kv"
	"github.com/marketmind/marketmind/internal/models"
)

// SnapshotProductRepository keeps the product collection in memory and
// rewrites the full snapshot to the injected store after every mutation.
// A missing or corrupt snapshot loads as an empty collection.
type SnapshotProductRepository struct {
	store    kv.Store
	products []models.Product
	lastID   int64
}

// NewSnapshotProductRepository loads the persisted snapshot, if any.
func NewSnapshotProductRepository(store kv.Store) *SnapshotProductRepository {
	r := &SnapshotProductRepository{store: store, products: []models.Product{}}
	r.load()
	return r
}

func (r *SnapshotProductRepository) load() {
	raw, ok, err := r.store.Get(kv.ProductsKey)
	if err != nil {
		log.Printf("error loading products: %v", err)
		return
	}
	if !ok {
		return
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		log.Printf("error loading products: %v", err)
		return
	}
	r.products = products
	for _, p := range products {
		if p.ID > r.lastID {
			r.lastID = p.ID
		}
	}
}

func (r *SnapshotProductRepository) save() error {
	raw, err := json.Marshal(r.products)
	if err != nil {
		return err
	}
	return r.store.Set(kv.ProductsKey, string(raw))
}

// nextID assigns timestamp-based ids, bumped when two creations land on
// the same millisecond so ids stay unique and monotonic.
func (r *SnapshotProductRepository) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

// Create adds a new product to the repository. A failed persist leaves
// the collection unchanged.
func (r *SnapshotProductRepository) Create(product models.Product) (models.Product, error) {
	product.ID = r.nextID()
	r.products = append(r.products, product)
	if err := r.save(); err != nil {
		r.products = r.products[:len(r.products)-1]
		return models.Product{}, err
	}
	return product, nil
}

// GetAll retrieves a copy of all products in insertion order.
func (r *SnapshotProductRepository) GetAll() ([]models.Product, error) {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

// GetByID retrieves a product by its ID.
func (r *SnapshotProductRepository) GetByID(id int64) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update replaces an existing product in full, keeping its id.
func (r *SnapshotProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			if err := r.save(); err != nil {
				return models.Product{}, err
			}
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product by id. Removal is immediate and irreversible.
func (r *SnapshotProductRepository) Delete(id int64) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return r.save()
		}
	}
	return ErrProductNotFound
}

// GetByName retrieves a product by exact name, used by the CSV importer.
func (r *SnapshotProductRepository) GetByName(name string) (models.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *SnapshotProductRepository) Clear() {
	r.products = []models.Product{}
	if err := r.save(); err != nil {
		log.Printf("error saving products: %v", err)
	}
}
