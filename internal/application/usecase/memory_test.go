package usecase_test

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/usecase"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
)

// memStore is an in-memory stand-in for the relational store. The TxRunner
// mutex models the row-lock serialization of concurrent upserts; the unique
// keys of the maps model the storage constraints.
type memStore struct {
	mu         sync.Mutex
	products   map[string]*entity.Product         // keyed by normalized SKU
	inventory  map[string]*entity.InventoryRecord // keyed by productID|warehouseID
	warehouses map[int64]*entity.Warehouse

	failInventoryCreate error // when set, inventory.Create fails with it
}

func newMemStore(warehouseIDs ...int64) *memStore {
	s := &memStore{
		products:   make(map[string]*entity.Product),
		inventory:  make(map[string]*entity.InventoryRecord),
		warehouses: make(map[int64]*entity.Warehouse),
	}
	for _, id := range warehouseIDs {
		s.warehouses[id] = &entity.Warehouse{ID: id, CompanyID: 1, Name: "wh", CreatedAt: time.Now()}
	}
	return s
}

func (s *memStore) softDelete(warehouseID int64) {
	now := time.Now()
	s.warehouses[warehouseID].DeletedAt = &now
}

func (s *memStore) productCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

func (s *memStore) inventoryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inventory)
}

func invKey(productID string, warehouseID int64) string {
	return productID + "|" + strconv.FormatInt(warehouseID, 10)
}

func (s *memStore) clone() (map[string]*entity.Product, map[string]*entity.InventoryRecord) {
	products := make(map[string]*entity.Product, len(s.products))
	for k, v := range s.products {
		products[k] = v
	}
	inventory := make(map[string]*entity.InventoryRecord, len(s.inventory))
	for k, v := range s.inventory {
		inventory[k] = v
	}
	return products, inventory
}

// memTxRunner serializes "transactions" with the store mutex and rolls the
// maps back when the callback fails, mirroring commit/rollback semantics.
type memTxRunner struct {
	store *memStore
	// blindLookup simulates a transaction whose SKU lookup misses even
	// though the row exists (the TOCTOU window): the insert then hits the
	// unique constraint, like a race lost at commit time.
	blindLookup bool
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	warehouseRepo repository.WarehouseRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	products, inventory := r.store.clone()
	err := fn(
		&memProductRepo{store: r.store, blindLookup: r.blindLookup},
		&memInventoryRepo{store: r.store},
		&memWarehouseRepo{store: r.store},
	)
	if err != nil {
		r.store.products = products
		r.store.inventory = inventory
		return err
	}
	return nil
}

// Repos below assume the store mutex is held by the TxRunner.

type memProductRepo struct {
	store       *memStore
	blindLookup bool
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	if _, exists := r.store.products[p.SKU]; exists {
		return domain.ErrDuplicate
	}
	r.store.products[p.SKU] = p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return r.store.products[sku], nil
}

func (r *memProductRepo) GetBySKUForUpdate(_ context.Context, sku string) (*entity.Product, error) {
	if r.blindLookup {
		return nil, nil
	}
	return r.store.products[sku], nil
}

type memInventoryRepo struct {
	store *memStore
}

func (r *memInventoryRepo) Create(_ context.Context, rec *entity.InventoryRecord) error {
	if r.store.failInventoryCreate != nil {
		return r.store.failInventoryCreate
	}
	key := invKey(rec.ProductID, rec.WarehouseID)
	if _, exists := r.store.inventory[key]; exists {
		return domain.ErrDuplicate
	}
	r.store.inventory[key] = rec
	return nil
}

func (r *memInventoryRepo) Get(_ context.Context, productID string, warehouseID int64) (*entity.InventoryRecord, error) {
	return r.store.inventory[invKey(productID, warehouseID)], nil
}

func (r *memInventoryRepo) GetForUpdate(ctx context.Context, productID string, warehouseID int64) (*entity.InventoryRecord, error) {
	return r.Get(ctx, productID, warehouseID)
}

func (r *memInventoryRepo) SetQuantity(_ context.Context, productID string, warehouseID, quantity int64) error {
	rec, ok := r.store.inventory[invKey(productID, warehouseID)]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Quantity = quantity
	rec.UpdatedAt = time.Now()
	return nil
}

func (r *memInventoryRepo) ListByProduct(_ context.Context, productID string) ([]*entity.InventoryRecord, error) {
	var list []*entity.InventoryRecord
	for _, rec := range r.store.inventory {
		if rec.ProductID == productID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type memWarehouseRepo struct {
	store *memStore
}

func (r *memWarehouseRepo) GetActive(_ context.Context, id int64) (*entity.Warehouse, error) {
	w, ok := r.store.warehouses[id]
	if !ok || w.DeletedAt != nil {
		return nil, nil
	}
	return w, nil
}

// lockedProductRepo is the pool-bound read-side counterpart: it takes the
// store mutex per call instead of relying on an open transaction.
type lockedProductRepo struct {
	store *memStore
}

func (r *lockedProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&memProductRepo{store: r.store}).Create(ctx, p)
}

func (r *lockedProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&memProductRepo{store: r.store}).GetByID(ctx, id)
}

func (r *lockedProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return (&memProductRepo{store: r.store}).GetBySKU(ctx, sku)
}

func (r *lockedProductRepo) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Product, error) {
	return r.GetBySKU(ctx, sku)
}

var _ usecase.TxRunner = (*memTxRunner)(nil)
var _ repository.ProductRepository = (*memProductRepo)(nil)
var _ repository.ProductRepository = (*lockedProductRepo)(nil)
var _ repository.InventoryRepository = (*memInventoryRepo)(nil)
var _ repository.WarehouseRepository = (*memWarehouseRepo)(nil)
