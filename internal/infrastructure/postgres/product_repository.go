package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository over PostgreSQL (pool or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product persistence adapter. Pass a pool or
// a tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create inserts a product. A duplicate SKU maps to domain.ErrDuplicate via
// the unique constraint, the backstop for any race lost despite the row lock.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, sku, name, product_type, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.CompanyID, product.SKU, product.Name,
		product.ProductType, product.Price, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return wrapErr("insert product", err)
	}
	return nil
}

// GetByID returns a product by id, or (nil, nil) when absent.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, company_id, sku, name, product_type, price, created_at, updated_at
		FROM products WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetBySKU returns a product by its normalized SKU, or (nil, nil) when absent.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT id, company_id, sku, name, product_type, price, created_at, updated_at
		FROM products WHERE sku = $1`
	return r.scanOne(ctx, query, sku)
}

// GetBySKUForUpdate locks the product row for the rest of the transaction so
// the existence decision and the following write happen under the same lock.
func (r *ProductRepo) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT id, company_id, sku, name, product_type, price, created_at, updated_at
		FROM products WHERE sku = $1
		FOR UPDATE`
	return r.scanOne(ctx, query, sku)
}

func (r *ProductRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.ProductType, &p.Price, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get product", err)
	}
	return &p, nil
}
