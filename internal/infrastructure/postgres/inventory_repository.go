package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implements InventoryRepository over PostgreSQL (pool or tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the inventory persistence adapter. Pass a
// pool or a tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserts an inventory record. A duplicate (product, warehouse) pair
// maps to domain.ErrDuplicate via the pair unique constraint.
func (r *InventoryRepo) Create(ctx context.Context, rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, product_id, warehouse_id, quantity, last_updated)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, rec.ID, rec.ProductID, rec.WarehouseID, rec.Quantity, rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapErr("insert inventory record", err)
	}
	return nil
}

// Get returns the record for a (product, warehouse) pair, or (nil, nil).
func (r *InventoryRepo) Get(ctx context.Context, productID string, warehouseID int64) (*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, last_updated
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	return r.scanOne(ctx, query, productID, warehouseID)
}

// GetForUpdate locks the record row for the rest of the transaction.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID string, warehouseID int64) (*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, last_updated
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	return r.scanOne(ctx, query, productID, warehouseID)
}

// SetQuantity overwrites the quantity of an existing record.
func (r *InventoryRepo) SetQuantity(ctx context.Context, productID string, warehouseID, quantity int64) error {
	query := `
		UPDATE inventory SET quantity = $3, last_updated = now()
		WHERE product_id = $1 AND warehouse_id = $2`
	cmd, err := r.q.Exec(ctx, query, productID, warehouseID, quantity)
	if err != nil {
		return wrapErr("set inventory quantity", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByProduct returns all inventory records of a product.
func (r *InventoryRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, last_updated
		FROM inventory WHERE product_id = $1 ORDER BY warehouse_id`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, wrapErr("list inventory records", err)
	}
	defer rows.Close()
	var list []*entity.InventoryRecord
	for rows.Next() {
		var rec entity.InventoryRecord
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt); err != nil {
			return nil, wrapErr("scan inventory record", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

func (r *InventoryRepo) scanOne(ctx context.Context, query, productID string, warehouseID int64) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&rec.ID, &rec.ProductID, &rec.WarehouseID, &rec.Quantity, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get inventory record", err)
	}
	return &rec, nil
}
