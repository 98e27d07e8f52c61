package repositories

import (
	"errors"

	"estoque/internal/models"
)

// ErrProductNotFound is returned when a referenced product id does not exist
// in the collection. Callers should match it with errors.Is.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// GetAll returns all products in insertion order.
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
