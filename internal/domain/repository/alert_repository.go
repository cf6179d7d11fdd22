package repository

import (
	"context"
	"time"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
)

// StockLevelRow is one joined inventory row considered for alerting: a product
// with recent sales activity, its stock in one warehouse, and the sales volume
// over the lookback window.
type StockLevelRow struct {
	ProductID     string
	ProductName   string
	SKU           string
	ProductType   string
	WarehouseID   int64
	WarehouseName string
	CurrentStock  int64
	UnitsSold     int64
}

// AlertRepository is the read-model port behind the low-stock alert query.
type AlertRepository interface {
	// ActiveStockLevels returns inventory rows for the company's products that
	// sold at least once since `since`, optionally filtered to one warehouse
	// (warehouseID == 0 means all warehouses).
	ActiveStockLevels(ctx context.Context, companyID, warehouseID int64, since time.Time) ([]StockLevelRow, error)
	// PrimarySupplier returns the primary supplier of a product, or (nil, nil).
	PrimarySupplier(ctx context.Context, productID string) (*entity.Supplier, error)
}

// ThresholdRepository reads the per-product-type low-stock thresholds.
type ThresholdRepository interface {
	All(ctx context.Context) (map[string]int64, error)
}
