package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrAttachRequest input for the product create-or-attach endpoint.
// Pointer fields keep "field missing" distinguishable from "field invalid".
type CreateOrAttachRequest struct {
	SKU             *string          `json:"sku"`
	Name            *string          `json:"name"`
	Price           *decimal.Decimal `json:"price"`
	WarehouseID     *int64           `json:"warehouse_id"`
	InitialQuantity *int64           `json:"initial_quantity"`
	// ProductType groups products for stock-threshold configuration. Optional.
	ProductType *string `json:"product_type"`
}

// CreateOrAttachResponse echoes the committed state. Outcome discriminates a
// new product ("created") from a new-warehouse attachment ("attached").
type CreateOrAttachResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	WarehouseID int64           `json:"warehouse_id"`
	Quantity    int64           `json:"quantity_on_hand"`
	Outcome     string          `json:"outcome"`
}

// InventoryLineResponse stock of the product in one warehouse.
type InventoryLineResponse struct {
	WarehouseID int64     `json:"warehouse_id"`
	Quantity    int64     `json:"quantity_on_hand"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductResponse product detail with per-warehouse inventory.
type ProductResponse struct {
	ID        string                  `json:"id"`
	SKU       string                  `json:"sku"`
	Name      string                  `json:"name"`
	Price     decimal.Decimal         `json:"price"`
	CreatedAt time.Time               `json:"created_at"`
	Inventory []InventoryLineResponse `json:"inventory"`
}

// SetQuantityRequest input for the inventory quantity update endpoint.
type SetQuantityRequest struct {
	Quantity *int64 `json:"quantity"`
}
