package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"estoque/internal/models"
)

// MemoryProductRepository is a session-scoped, in-memory implementation of
// ProductRepository. It keeps insertion order, which the dashboard's
// low-stock preview depends on.
type MemoryProductRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]models.Product
}

// NewMemoryProductRepository creates an empty in-memory repository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		items: make(map[string]models.Product),
	}
}

// GetAll returns all products in the order they were created.
func (r *MemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		productList = append(productList, r.items[id])
	}
	return productList, nil
}

// GetByID returns a copy of the product with the given id.
func (r *MemoryProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	return &product, nil
}

// Create appends a new product. An id is assigned when the caller left it
// empty; an existing id is kept so seeds stay stable across runs.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, ok := r.items[product.ID]; !ok {
		r.order = append(r.order, product.ID)
	}
	r.items[product.ID] = *product
	return nil
}

// Update replaces an existing product in place. Its position in the
// collection does not change.
func (r *MemoryProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, ErrProductNotFound)
	}
	r.items[product.ID] = *product
	return nil
}

// Delete removes a product by its id.
func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
