package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
)

// SetQuantityUseCase sets the quantity of an existing inventory record. This
// is the update path the 409 Conflict response of the upsert points at; it
// never creates records.
type SetQuantityUseCase struct {
	tx  TxRunner
	log zerolog.Logger
}

// NewSetQuantityUseCase builds the use case.
func NewSetQuantityUseCase(tx TxRunner, log zerolog.Logger) *SetQuantityUseCase {
	return &SetQuantityUseCase{tx: tx, log: log}
}

// Execute locks the (product, warehouse) record and sets its quantity.
// Returns domain.ErrNotFound when no record exists for the pair.
func (uc *SetQuantityUseCase) Execute(ctx context.Context, productID string, warehouseID, quantity int64) error {
	if quantity < 0 {
		verr := &domain.ValidationError{}
		verr.Add("quantity", "must not be negative")
		return verr
	}
	err := uc.tx.Run(ctx, func(
		_ repository.ProductRepository,
		inventory repository.InventoryRepository,
		_ repository.WarehouseRepository,
	) error {
		rec, err := inventory.GetForUpdate(ctx, productID, warehouseID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		return inventory.SetQuantity(ctx, productID, warehouseID, quantity)
	})
	if err != nil {
		return err
	}
	uc.log.Info().
		Str("product_id", productID).
		Int64("warehouse_id", warehouseID).
		Int64("quantity", quantity).
		Msg("inventory quantity set")
	return nil
}
