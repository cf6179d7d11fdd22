package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
)

var _ repository.ThresholdRepository = (*ThresholdRepo)(nil)

// ThresholdRepo reads the per-product-type low-stock thresholds.
type ThresholdRepo struct {
	pool *pgxpool.Pool
}

// NewThresholdRepository builds the threshold adapter.
func NewThresholdRepository(pool *pgxpool.Pool) *ThresholdRepo {
	return &ThresholdRepo{pool: pool}
}

// All returns the configured thresholds keyed by product type.
func (r *ThresholdRepo) All(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT product_type, threshold_quantity FROM stock_thresholds`)
	if err != nil {
		return nil, wrapErr("query thresholds", err)
	}
	defer rows.Close()

	thresholds := make(map[string]int64)
	for rows.Next() {
		var productType string
		var quantity int64
		if err := rows.Scan(&productType, &quantity); err != nil {
			return nil, wrapErr("scan threshold", err)
		}
		thresholds[productType] = quantity
	}
	return thresholds, rows.Err()
}
