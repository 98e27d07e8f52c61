package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estoque/internal/models"
)

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Office Supplies", models.CategoryOfficeSupplies.Label("en"))
	assert.Equal(t, "Material de Escritório", models.CategoryOfficeSupplies.Label("pt"))
	// Unknown locales and unknown categories fall back to the identifier.
	assert.Equal(t, "Furniture", models.CategoryFurniture.Label("de"))
	assert.Equal(t, "Misc", models.Category("Misc").Label("pt"))
}

func TestProductInputProduct(t *testing.T) {
	input := models.ProductInput{
		Name:     "Smart Watch",
		SKU:      "SW-4000",
		Category: models.CategoryElectronics,
		Quantity: 3,
		Price:    249.99,
	}
	product := input.Product("abc-123")
	assert.Equal(t, "abc-123", product.ID)
	assert.Equal(t, input.Name, product.Name)
	assert.Equal(t, input.Quantity, product.Quantity)
}
