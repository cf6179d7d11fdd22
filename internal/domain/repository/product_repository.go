package repository

import (
	"context"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
)

// ProductRepository defines the persistence port for Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetBySKU is the unlocked lookup, for read paths outside a transaction.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetBySKUForUpdate looks a product up by its normalized SKU and takes an
	// exclusive row lock on any match (SELECT ... FOR UPDATE), so a concurrent
	// request for the same SKU blocks instead of racing ahead. Returns
	// (nil, nil) when no product exists. Only valid inside a transaction.
	GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Product, error)
}
