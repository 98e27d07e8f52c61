package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estoque/internal/models"
	"estoque/internal/repositories"
)

func TestMemoryProductRepository_CreateAssignsID(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	product := models.Product{Name: "Mouse", SKU: "MS-100", Quantity: 5, Price: 25.0}
	err := repo.Create(&product)
	assert.NoError(t, err)
	assert.NotEmpty(t, product.ID)

	// An explicit id is kept as-is.
	seeded := models.Product{ID: "seed-1", Name: "Keyboard", SKU: "KB-100"}
	err = repo.Create(&seeded)
	assert.NoError(t, err)
	assert.Equal(t, "seed-1", seeded.ID)
}

func TestMemoryProductRepository_InsertionOrder(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	for _, name := range []string{"first", "second", "third"} {
		err := repo.Create(&models.Product{Name: name, SKU: "SKU-" + name})
		assert.NoError(t, err)
	}

	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, []string{
		products[0].Name, products[1].Name, products[2].Name,
	})

	// Deleting from the middle keeps the remaining order.
	err = repo.Delete(products[1].ID)
	assert.NoError(t, err)

	products, err = repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, "first", products[0].Name)
	assert.Equal(t, "third", products[1].Name)

	// Updating does not move a product.
	products[0].Quantity = 99
	err = repo.Update(&products[0])
	assert.NoError(t, err)
	products, err = repo.GetAll()
	assert.NoError(t, err)
	assert.Equal(t, "first", products[0].Name)
	assert.Equal(t, 99, products[0].Quantity)
}

func TestMemoryProductRepository_GetByIDReturnsCopy(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	product := models.Product{Name: "Mouse", SKU: "MS-100", Quantity: 5}
	err := repo.Create(&product)
	assert.NoError(t, err)

	got, err := repo.GetByID(product.ID)
	assert.NoError(t, err)

	// Mutating the returned value must not alias the stored one.
	got.Quantity = 1000
	stored, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 5, stored.Quantity)
}

func TestMemoryProductRepository_NotFound(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	_, err := repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	err = repo.Update(&models.Product{ID: "missing"})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	err = repo.Delete("missing")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}
