package repository

import (
	"context"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
)

// InventoryRepository defines the persistence port for InventoryRecord (DIP).
// Used inside transactions to guarantee product+inventory atomicity.
type InventoryRepository interface {
	Create(ctx context.Context, rec *entity.InventoryRecord) error
	// Get returns (nil, nil) when no record exists for the pair.
	Get(ctx context.Context, productID string, warehouseID int64) (*entity.InventoryRecord, error)
	// GetForUpdate locks the row for the rest of the transaction
	// (SELECT ... FOR UPDATE). Returns (nil, nil) when absent.
	GetForUpdate(ctx context.Context, productID string, warehouseID int64) (*entity.InventoryRecord, error)
	SetQuantity(ctx context.Context, productID string, warehouseID, quantity int64) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.InventoryRecord, error)
}
