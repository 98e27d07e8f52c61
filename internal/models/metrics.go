package models

// DefaultLowStockPreview bounds the low-stock list shown on the dashboard.
const DefaultLowStockPreview = 5

// DefaultThreshold is the reorder boundary suggested when none is given.
const DefaultThreshold = 5

// LowStockItem is a product flagged as low stock together with the number of
// units needed to get back to its threshold.
type LowStockItem struct {
	Product Product `json:"product"`
	Needed  int     `json:"needed"`
}

// DashboardMetrics holds the aggregates derived from the product collection.
// It is recomputed from scratch on every read and never stored.
type DashboardMetrics struct {
	TotalProducts  int            `json:"totalProducts"`
	TotalItems     int            `json:"totalItems"`
	LowStockCount  int            `json:"lowStockCount"`
	InventoryValue float64        `json:"inventoryValue"`
	LowStock       []LowStockItem `json:"lowStock"`
}
