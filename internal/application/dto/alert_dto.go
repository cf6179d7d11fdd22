package dto

// SupplierResponse primary supplier contact on an alert.
type SupplierResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
}

// LowStockAlertResponse one alert row, ordered by urgency.
type LowStockAlertResponse struct {
	ProductID         string            `json:"product_id"`
	ProductName       string            `json:"product_name"`
	SKU               string            `json:"sku"`
	WarehouseID       int64             `json:"warehouse_id"`
	WarehouseName     string            `json:"warehouse_name"`
	CurrentStock      int64             `json:"current_stock"`
	Threshold         int64             `json:"threshold"`
	DaysUntilStockout *int64            `json:"days_until_stockout"`
	Supplier          *SupplierResponse `json:"supplier"`
}

// LowStockAlertsResponse paginated alert listing. TotalAlerts counts every
// alert before paging so clients can size their pagination.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlertResponse `json:"alerts"`
	TotalAlerts int                     `json:"total_alerts"`
}
