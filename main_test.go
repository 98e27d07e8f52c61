package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"estoque/internal/models"
	"estoque/internal/repositories"
	"estoque/internal/services"
	"estoque/internal/validation"
)

func TestSeedProducts(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	seedProducts(repo, zap.NewNop())

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 4)
	assert.Equal(t, "Wireless Headphones", products[0].Name)
	assert.Equal(t, "Smart Watch", products[3].Name)

	// The seeded collection drives the dashboard: only the Smart Watch
	// (3 of 5) is low on stock.
	service := services.NewInventoryService(repo, validation.NewFormValidator("en"), zap.NewNop())
	metrics, err := service.Metrics(0)
	assert.NoError(t, err)
	assert.Equal(t, 4, metrics.TotalProducts)
	assert.Equal(t, 78, metrics.TotalItems)
	assert.Equal(t, 1, metrics.LowStockCount)
	assert.Equal(t, "Smart Watch", metrics.LowStock[0].Product.Name)
	assert.Equal(t, 2, metrics.LowStock[0].Needed)
}

func TestLoadSeedFile(t *testing.T) {
	seed := `products:
  - name: Espresso Beans
    sku: EB-5000
    category: Food
    quantity: 12
    price: 14.5
    threshold: 4
  - name: Sparkling Water
    sku: SW-0100
    category: Beverages
    quantity: 2
    price: 1.99
    threshold: 6
    supplier: Aguas do Sul
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	repo := repositories.NewMemoryProductRepository()
	service := services.NewInventoryService(repo, validation.NewFormValidator("en"), zap.NewNop())
	assert.NoError(t, loadSeedFile(path, service))

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, models.CategoryFood, products[0].Category)
	assert.Equal(t, "Aguas do Sul", products[1].Supplier)

	metrics, err := service.Metrics(0)
	assert.NoError(t, err)
	assert.Equal(t, 1, metrics.LowStockCount)
	assert.Equal(t, 4, metrics.LowStock[0].Needed)
}

func TestLoadSeedFile_RejectsInvalidSeed(t *testing.T) {
	seed := `products:
  - name: X
    sku: AB
    category: Gadgets
    quantity: 1
    price: 0
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	repo := repositories.NewMemoryProductRepository()
	service := services.NewInventoryService(repo, validation.NewFormValidator("en"), zap.NewNop())
	assert.Error(t, loadSeedFile(path, service))

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, products)
}
