package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable SKU. SKU is globally unique and stored uppercase;
// Price is shared across warehouses (business-rule assumption from the
// reviewed endpoint, pending confirmation). Stock lives per warehouse in
// InventoryRecord.
type Product struct {
	ID          string
	CompanyID   int64
	SKU         string
	Name        string
	ProductType string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
