package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo read-only queries behind the low-stock alert listing.
type AlertRepo struct {
	pool *pgxpool.Pool
}

// NewAlertRepository builds the alert read-model adapter.
func NewAlertRepository(pool *pgxpool.Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// ActiveStockLevels joins current inventory with warehouse names and the
// units sold since `since`, restricted to products with at least one sale in
// the window. warehouseID == 0 means all warehouses.
func (r *AlertRepo) ActiveStockLevels(ctx context.Context, companyID, warehouseID int64, since time.Time) ([]repository.StockLevelRow, error) {
	const query = `
	SELECT
	    p.id, p.name, p.sku, p.product_type,
	    i.warehouse_id, w.name,
	    i.quantity,
	    COALESCE(SUM(s.quantity), 0) AS units_sold
	FROM products p
	JOIN inventory  i ON i.product_id  = p.id
	JOIN warehouses w ON w.id          = i.warehouse_id
	LEFT JOIN sales s ON s.product_id  = p.id
	                 AND s.warehouse_id = i.warehouse_id
	                 AND s.sale_date   >= $2
	WHERE p.company_id = $1
	  AND ($3 = 0 OR i.warehouse_id = $3)
	  AND EXISTS (
	      SELECT 1 FROM sales rs
	      WHERE rs.product_id = p.id AND rs.sale_date >= $2
	  )
	GROUP BY p.id, p.name, p.sku, p.product_type, i.warehouse_id, w.name, i.quantity
	ORDER BY p.sku, i.warehouse_id`

	rows, err := r.pool.Query(ctx, query, companyID, since, warehouseID)
	if err != nil {
		return nil, wrapErr("query stock levels", err)
	}
	defer rows.Close()

	var results []repository.StockLevelRow
	for rows.Next() {
		var row repository.StockLevelRow
		if err := rows.Scan(
			&row.ProductID, &row.ProductName, &row.SKU, &row.ProductType,
			&row.WarehouseID, &row.WarehouseName, &row.CurrentStock, &row.UnitsSold,
		); err != nil {
			return nil, wrapErr("scan stock level", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PrimarySupplier returns the primary supplier of a product, or (nil, nil).
func (r *AlertRepo) PrimarySupplier(ctx context.Context, productID string) (*entity.Supplier, error) {
	const query = `
	SELECT s.id, s.name, s.contact_email
	FROM suppliers s
	JOIN product_suppliers ps ON ps.supplier_id = s.id
	WHERE ps.product_id = $1 AND ps.is_primary
	LIMIT 1`
	var s entity.Supplier
	err := r.pool.QueryRow(ctx, query, productID).Scan(&s.ID, &s.Name, &s.ContactEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get primary supplier", err)
	}
	return &s, nil
}
