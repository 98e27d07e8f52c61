package services

import (
	"estoque/internal/models"
	"estoque/internal/repositories"
	"estoque/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StockDirection says which way a stock adjustment moves.
type StockDirection string

const (
	StockIncrease StockDirection = "increase"
	StockDecrease StockDirection = "decrease"
)

// InventoryService owns the product collection and the business rules around
// it: validated CRUD, clamped stock adjustments, and the derived dashboard
// metrics. All operations are synchronous and fail with either a
// *validation.ValidationError or repositories.ErrProductNotFound.
type InventoryService struct {
	repo     repositories.ProductRepository
	validate *validation.FormValidator
	logger   *zap.Logger
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repositories.ProductRepository, validate *validation.FormValidator, logger *zap.Logger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		repo:     repo,
		validate: validate,
		logger:   logger,
	}
}

// AddProduct validates the input, assigns a fresh id and appends the product
// to the collection. The stored product is returned.
func (s *InventoryService) AddProduct(input models.ProductInput) (*models.Product, error) {
	if err := s.checkInput(&input); err != nil {
		return nil, err
	}

	product := input.Product(uuid.New().String())
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}

	s.logger.Info("product added",
		zap.String("id", product.ID),
		zap.String("name", product.Name),
		zap.String("sku", product.SKU),
	)
	return &product, nil
}

// UpdateProduct replaces every field except the id. The id must reference an
// existing product; otherwise the collection is left untouched.
func (s *InventoryService) UpdateProduct(id string, input models.ProductInput) (*models.Product, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, err
	}
	if err := s.checkInput(&input); err != nil {
		return nil, err
	}

	product := input.Product(id)
	if err := s.repo.Update(&product); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", zap.String("id", id), zap.String("name", product.Name))
	return &product, nil
}

// DeleteProduct removes a product and returns it, so the caller can report
// what was deleted.
func (s *InventoryService) DeleteProduct(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(id); err != nil {
		return nil, err
	}

	s.logger.Info("product removed", zap.String("id", id), zap.String("name", product.Name))
	return product, nil
}

// AdjustStock moves a product's quantity by delta in the given direction.
// Delta must be a positive integer. A decrease clamps at zero rather than
// failing when delta exceeds the current stock; an increase has no upper
// bound.
func (s *InventoryService) AdjustStock(id string, delta int, direction StockDirection) (*models.Product, error) {
	if delta <= 0 {
		return nil, validation.NewFieldError("delta", "Adjustment quantity must be a positive number.")
	}
	if direction != StockIncrease && direction != StockDecrease {
		return nil, validation.NewFieldError("direction", "Operation must be either increase or decrease.")
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	switch direction {
	case StockIncrease:
		product.Quantity += delta
	case StockDecrease:
		product.Quantity -= delta
		if product.Quantity < 0 {
			product.Quantity = 0
		}
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	s.logger.Info("stock adjusted",
		zap.String("id", id),
		zap.String("direction", string(direction)),
		zap.Int("delta", delta),
		zap.Int("quantity", product.Quantity),
	)
	return product, nil
}

// ListProducts returns the whole collection in insertion order.
func (s *InventoryService) ListProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// Metrics recomputes the dashboard aggregates from the current collection.
// Low stock uses a non-strict comparison: a product exactly at its threshold
// is flagged. The low-stock list is capped to previewSize entries in
// collection order; previewSize <= 0 selects the default preview of 5.
func (s *InventoryService) Metrics(previewSize int) (*models.DashboardMetrics, error) {
	if previewSize <= 0 {
		previewSize = models.DefaultLowStockPreview
	}

	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	metrics := &models.DashboardMetrics{
		TotalProducts: len(products),
		LowStock:      []models.LowStockItem{},
	}
	for _, p := range products {
		metrics.TotalItems += p.Quantity
		metrics.InventoryValue += p.Price * float64(p.Quantity)
		if p.Quantity <= p.Threshold {
			metrics.LowStockCount++
			if len(metrics.LowStock) < previewSize {
				needed := p.Threshold - p.Quantity
				if needed < 0 {
					needed = 0
				}
				metrics.LowStock = append(metrics.LowStock, models.LowStockItem{
					Product: p,
					Needed:  needed,
				})
			}
		}
	}
	return metrics, nil
}

// checkInput runs the form validator and re-checks the store invariants, so
// a caller bypassing the validator still cannot break the collection:
// negative counts are clamped and a below-minimum price is rejected.
func (s *InventoryService) checkInput(input *models.ProductInput) error {
	if s.validate != nil {
		if err := s.validate.ValidateProduct(input); err != nil {
			return err
		}
	}
	if input.Quantity < 0 {
		input.Quantity = 0
	}
	if input.Threshold < 0 {
		input.Threshold = 0
	}
	if input.Price < 0.01 {
		return validation.NewFieldError("price", "Price must be greater than 0.")
	}
	return nil
}
