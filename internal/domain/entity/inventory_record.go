package entity

import "time"

// InventoryRecord is the stock of one product in one warehouse. At most one
// record exists per (product, warehouse) pair; the storage layer enforces the
// pair uniqueness and the non-negative quantity.
type InventoryRecord struct {
	ID          string
	ProductID   string
	WarehouseID int64
	Quantity    int64
	UpdatedAt   time.Time
}
