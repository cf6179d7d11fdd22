package usecase

import (
	"context"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, handing it
// repositories bound to that transaction. Guarantees the product+inventory
// write commits or rolls back as a unit, and that row locks taken inside fn
// are held until commit or rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		warehouseRepo repository.WarehouseRepository,
	) error) error
}

// ThresholdCache caches the product-type threshold table for the alert query.
// Get returns (nil, nil) on a miss; cache failures are never fatal.
type ThresholdCache interface {
	Get(ctx context.Context) (map[string]int64, error)
	Set(ctx context.Context, thresholds map[string]int64) error
}
