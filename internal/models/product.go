package models

// Category is one value from the fixed set of product categories.
type Category string

const (
	CategoryElectronics    Category = "Electronics"
	CategoryClothing       Category = "Clothing"
	CategoryFood           Category = "Food"
	CategoryBeverages      Category = "Beverages"
	CategoryOfficeSupplies Category = "Office Supplies"
	CategoryFurniture      Category = "Furniture"
	CategoryOther          Category = "Other"
)

// Categories returns the closed category set in menu order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryClothing,
		CategoryFood,
		CategoryBeverages,
		CategoryOfficeSupplies,
		CategoryFurniture,
		CategoryOther,
	}
}

// categoryLabelsPT maps each category to its Brazilian Portuguese label.
// The set is semantically the same; only the display label changes.
var categoryLabelsPT = map[Category]string{
	CategoryElectronics:    "Eletrônicos",
	CategoryClothing:       "Vestuário",
	CategoryFood:           "Alimentos",
	CategoryBeverages:      "Bebidas",
	CategoryOfficeSupplies: "Material de Escritório",
	CategoryFurniture:      "Móveis",
	CategoryOther:          "Outros",
}

// Label returns the display label for the category in the given locale.
// Unknown locales fall back to the English identifier.
func (c Category) Label(locale string) string {
	if locale == "pt" {
		if label, ok := categoryLabelsPT[c]; ok {
			return label
		}
	}
	return string(c)
}

// Product represents a product held in inventory.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	SKU         string   `json:"sku"`
	Category    Category `json:"category"`
	Quantity    int      `json:"quantity"`
	Price       float64  `json:"price"`
	Threshold   int      `json:"threshold"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Description string   `json:"description,omitempty"`
	Supplier    string   `json:"supplier,omitempty"`
}

// ProductInput is the record a caller submits to create or update a product.
// The ID is never part of the input; it is assigned once at creation.
// Description and Supplier come from the registration form variant and are
// optional everywhere.
type ProductInput struct {
	Name        string   `json:"name" mapstructure:"name" validate:"required,min=2"`
	SKU         string   `json:"sku" mapstructure:"sku" validate:"required,min=3"`
	Category    Category `json:"category" mapstructure:"category" validate:"required,oneof=Electronics Clothing Food Beverages 'Office Supplies' Furniture Other"`
	Quantity    int      `json:"quantity" mapstructure:"quantity" validate:"gte=0"`
	Price       float64  `json:"price" mapstructure:"price" validate:"gte=0.01"`
	Threshold   int      `json:"threshold" mapstructure:"threshold" validate:"gte=0"`
	ImageURL    string   `json:"imageUrl" mapstructure:"imageUrl" validate:"omitempty"`
	Description string   `json:"description" mapstructure:"description" validate:"omitempty,max=500"`
	Supplier    string   `json:"supplier" mapstructure:"supplier" validate:"omitempty"`
}

// Product materializes the input as a stored product under the given id.
func (in ProductInput) Product(id string) Product {
	return Product{
		ID:          id,
		Name:        in.Name,
		SKU:         in.SKU,
		Category:    in.Category,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Threshold:   in.Threshold,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Supplier:    in.Supplier,
	}
}
