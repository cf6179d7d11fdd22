package entity

// Supplier contact attached to a low-stock alert (primary supplier only).
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail string
}

// LowStockAlert is a read model row: a product whose current stock in a
// warehouse sits below the threshold for its product type.
// DaysUntilStockout is nil when the product had no sales in the lookback
// window (no projection possible).
type LowStockAlert struct {
	ProductID         string
	ProductName       string
	SKU               string
	ProductType       string
	WarehouseID       int64
	WarehouseName     string
	CurrentStock      int64
	Threshold         int64
	DaysUntilStockout *int64
	Supplier          *Supplier
}
