package repository

import (
	"context"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
)

// WarehouseRepository defines the persistence port for Warehouse (DIP).
type WarehouseRepository interface {
	// GetActive returns the warehouse when it exists and is not soft-deleted;
	// (nil, nil) otherwise.
	GetActive(ctx context.Context, id int64) (*entity.Warehouse, error)
}
