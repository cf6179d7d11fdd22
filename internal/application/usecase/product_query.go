package usecase

import (
	"context"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/dto"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
)

// ProductQueryUseCase read-side product lookup with per-warehouse inventory.
type ProductQueryUseCase struct {
	products  repository.ProductRepository
	inventory repository.InventoryRepository
}

// NewProductQueryUseCase builds the use case over pool-bound repositories.
func NewProductQueryUseCase(products repository.ProductRepository, inventory repository.InventoryRepository) *ProductQueryUseCase {
	return &ProductQueryUseCase{products: products, inventory: inventory}
}

// GetByID returns the product with its inventory lines, or (nil, nil) when it
// does not exist.
func (uc *ProductQueryUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	records, err := uc.inventory.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	lines := make([]dto.InventoryLineResponse, 0, len(records))
	for _, rec := range records {
		lines = append(lines, dto.InventoryLineResponse{
			WarehouseID: rec.WarehouseID,
			Quantity:    rec.Quantity,
			UpdatedAt:   rec.UpdatedAt,
		})
	}
	return &dto.ProductResponse{
		ID:        product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
		Inventory: lines,
	}, nil
}
