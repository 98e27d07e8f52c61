package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"estoque/internal/handlers"
	"estoque/internal/models"
	"estoque/internal/repositories"
	"estoque/internal/services"
	"estoque/internal/validation"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables.
	viper.SetDefault("INVENTORY_LOCALE", "en")
	viper.SetDefault("DASHBOARD_PREVIEW", models.DefaultLowStockPreview)
	viper.SetDefault("SEED_FILE", "")
	viper.AutomaticEnv()

	locale := viper.GetString("INVENTORY_LOCALE")
	preview := viper.GetInt("DASHBOARD_PREVIEW")
	seedFile := viper.GetString("SEED_FILE")

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	// --- Initialize Repository ---
	// The collection is session-scoped: it lives in memory for the duration
	// of the run and is not persisted anywhere.
	productRepo := repositories.NewMemoryProductRepository()

	// --- Initialize Validator and Service ---
	formValidator := validation.NewFormValidator(locale)
	inventoryService := services.NewInventoryService(productRepo, formValidator, logger)

	// --- Seed the collection ---
	if seedFile != "" {
		if err := loadSeedFile(seedFile, inventoryService); err != nil {
			logger.Fatal("failed to load seed file", zap.String("path", seedFile), zap.Error(err))
		}
		logger.Info("seeded products from file", zap.String("path", seedFile))
	} else {
		seedProducts(productRepo, logger)
	}

	// --- Run the console UI ---
	consoleHandler := handlers.NewConsoleHandler(inventoryService, os.Stdin, os.Stdout, locale, preview)
	if err := consoleHandler.Run(); err != nil {
		logger.Fatal("console session failed", zap.Error(err))
	}
	logger.Info("session ended")
}

// loadSeedFile reads initial products from a YAML file (key "products") and
// adds them through the service, so seeds go through the same validation as
// user input.
func loadSeedFile(path string, service *services.InventoryService) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading seed file: %w", err)
	}

	var inputs []models.ProductInput
	if err := v.UnmarshalKey("products", &inputs); err != nil {
		return fmt.Errorf("decoding seed file: %w", err)
	}
	for _, input := range inputs {
		if _, err := service.AddProduct(input); err != nil {
			return fmt.Errorf("seeding product %q: %w", input.Name, err)
		}
	}
	return nil
}

// seedProducts populates the repository with the built-in sample set.
// Seed IDs are set explicitly so they stay stable across runs.
func seedProducts(repo repositories.ProductRepository, logger *zap.Logger) {
	products := []models.Product{
		{
			ID:        "1",
			Name:      "Wireless Headphones",
			SKU:       "WH-1000",
			Category:  models.CategoryElectronics,
			Quantity:  25,
			Price:     149.99,
			Threshold: 5,
			ImageURL:  "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:        "2",
			Name:      "Ergonomic Chair",
			SKU:       "EC-2000",
			Category:  models.CategoryFurniture,
			Quantity:  8,
			Price:     299.99,
			Threshold: 3,
			ImageURL:  "https://images.unsplash.com/photo-1596079890744-c1a0462d0975?q=80&w=2071&auto=format&fit=crop",
		},
		{
			ID:        "3",
			Name:      "Premium Notebook",
			SKU:       "NB-3000",
			Category:  models.CategoryOfficeSupplies,
			Quantity:  42,
			Price:     19.99,
			Threshold: 10,
			ImageURL:  "https://images.unsplash.com/photo-1531346680769-a1e79e0fb1fa?q=80&w=2070&auto=format&fit=crop",
		},
		{
			ID:        "4",
			Name:      "Smart Watch",
			SKU:       "SW-4000",
			Category:  models.CategoryElectronics,
			Quantity:  3,
			Price:     249.99,
			Threshold: 5,
			ImageURL:  "https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=1999&auto=format&fit=crop",
		},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			logger.Warn("error seeding product", zap.String("name", products[i].Name), zap.Error(err))
			continue
		}
		logger.Info("seeded product", zap.String("name", products[i].Name), zap.String("id", products[i].ID))
	}
}
