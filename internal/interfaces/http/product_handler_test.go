package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/usecase"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
	httpapi "github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/interfaces/http"
)

// fakeStore implements the repository ports and the TxRunner in one struct;
// handler tests only need status mapping, not rollback fidelity.
type fakeStore struct {
	mu         sync.Mutex
	products   map[string]*entity.Product
	inventory  map[string]*entity.InventoryRecord
	warehouses map[int64]*entity.Warehouse
	// blind makes SKU lookups miss, modeling the window where a competing
	// insert is not yet visible and only the unique constraint catches it.
	blind bool
}

func newFakeStore(warehouseIDs ...int64) *fakeStore {
	s := &fakeStore{
		products:   make(map[string]*entity.Product),
		inventory:  make(map[string]*entity.InventoryRecord),
		warehouses: make(map[int64]*entity.Warehouse),
	}
	for _, id := range warehouseIDs {
		s.warehouses[id] = &entity.Warehouse{ID: id, CreatedAt: time.Now()}
	}
	return s
}

func pairKey(productID string, warehouseID int64) string {
	return fmt.Sprintf("%s|%d", productID, warehouseID)
}

func (s *fakeStore) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	warehouseRepo repository.WarehouseRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s, invRepoView{s}, s)
}

func (s *fakeStore) Create(_ context.Context, p *entity.Product) error {
	if _, ok := s.products[p.SKU]; ok {
		return domain.ErrDuplicate
	}
	s.products[p.SKU] = p
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	if s.blind {
		return nil, nil
	}
	return s.products[sku], nil
}

func (s *fakeStore) GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Product, error) {
	return s.GetBySKU(ctx, sku)
}

func (s *fakeStore) CreateRecord(rec *entity.InventoryRecord) error {
	key := pairKey(rec.ProductID, rec.WarehouseID)
	if _, ok := s.inventory[key]; ok {
		return domain.ErrDuplicate
	}
	s.inventory[key] = rec
	return nil
}

// InventoryRepository

func (s *fakeStore) Get(_ context.Context, productID string, warehouseID int64) (*entity.InventoryRecord, error) {
	return s.inventory[pairKey(productID, warehouseID)], nil
}

func (s *fakeStore) GetForUpdate(ctx context.Context, productID string, warehouseID int64) (*entity.InventoryRecord, error) {
	return s.Get(ctx, productID, warehouseID)
}

func (s *fakeStore) SetQuantity(_ context.Context, productID string, warehouseID, quantity int64) error {
	rec, ok := s.inventory[pairKey(productID, warehouseID)]
	if !ok {
		return domain.ErrNotFound
	}
	rec.Quantity = quantity
	return nil
}

func (s *fakeStore) ListByProduct(_ context.Context, productID string) ([]*entity.InventoryRecord, error) {
	var list []*entity.InventoryRecord
	for _, rec := range s.inventory {
		if rec.ProductID == productID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (s *fakeStore) GetActive(_ context.Context, id int64) (*entity.Warehouse, error) {
	w, ok := s.warehouses[id]
	if !ok || w.DeletedAt != nil {
		return nil, nil
	}
	return w, nil
}

// Create on fakeStore satisfies ProductRepository; InventoryRepository.Create
// is disambiguated through this adapter.
type invRepoView struct{ *fakeStore }

func (v invRepoView) Create(_ context.Context, rec *entity.InventoryRecord) error {
	return v.fakeStore.CreateRecord(rec)
}

func storeRunner(store *fakeStore) runnerFunc {
	return func(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		warehouseRepo repository.WarehouseRepository,
	) error) error {
		store.mu.Lock()
		defer store.mu.Unlock()
		return fn(store, invRepoView{store}, store)
	}
}

func newTestApp(store *fakeStore) *fiber.App {
	return appWithRunner(store, storeRunner(store))
}

func appWithRunner(store *fakeStore, runner usecase.TxRunner) *fiber.App {
	app := fiber.New()
	httpapi.Router(app, httpapi.RouterDeps{
		Upsert:       usecase.NewCreateOrAttachUseCase(runner, store, 1, zerolog.Nop()),
		ProductQuery: usecase.NewProductQueryUseCase(store, invRepoView{store}),
		SetQuantity:  usecase.NewSetQuantityUseCase(runner, zerolog.Nop()),
		Alerts:       usecase.NewLowStockAlertsUseCase(emptyAlertRepo{}, emptyThresholdRepo{}, nil, zerolog.Nop()),
	})
	return app
}

type runnerFunc func(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	warehouseRepo repository.WarehouseRepository,
) error) error

func (f runnerFunc) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	warehouseRepo repository.WarehouseRepository,
) error) error {
	return f(ctx, fn)
}

type emptyAlertRepo struct{}

func (emptyAlertRepo) ActiveStockLevels(context.Context, int64, int64, time.Time) ([]repository.StockLevelRow, error) {
	return nil, nil
}

func (emptyAlertRepo) PrimarySupplier(context.Context, string) (*entity.Supplier, error) {
	return nil, nil
}

type emptyThresholdRepo struct{}

func (emptyThresholdRepo) All(context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

const widgetBody = `{"name":"Widget","sku":"w-100","price":9.99,"warehouse_id":1,"initial_quantity":50}`

func TestCreateEndpoint_FreshSKU(t *testing.T) {
	app := newTestApp(newFakeStore(1, 2))

	resp := postJSON(t, app, "/api/products", widgetBody)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "created", body["outcome"])
	assert.Equal(t, "W-100", body["sku"])
	assert.Equal(t, float64(50), body["quantity_on_hand"])
	assert.Equal(t, "/api/products/"+body["id"].(string), resp.Header.Get("Location"))
}

func TestCreateEndpoint_AttachSecondWarehouse(t *testing.T) {
	app := newTestApp(newFakeStore(1, 2))
	postJSON(t, app, "/api/products", widgetBody)

	resp := postJSON(t, app, "/api/products",
		`{"name":"Widget","sku":"W-100","price":9.99,"warehouse_id":2,"initial_quantity":10}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "attached", decodeBody(t, resp)["outcome"])
}

func TestCreateEndpoint_DuplicateConflict(t *testing.T) {
	app := newTestApp(newFakeStore(1))
	first := decodeBody(t, postJSON(t, app, "/api/products", widgetBody))

	resp := postJSON(t, app, "/api/products", widgetBody)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "CONFLICT", body["code"])
	assert.Equal(t, first["id"], body["product_id"])
	assert.Equal(t, fmt.Sprintf("/api/products/%s/inventory/1", first["id"]), body["update_path"])
}

func TestCreateEndpoint_ValidationListsAllFields(t *testing.T) {
	app := newTestApp(newFakeStore(1))

	resp := postJSON(t, app, "/api/products", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Len(t, body["fields"], 5)
}

func TestCreateEndpoint_UnknownWarehouse(t *testing.T) {
	app := newTestApp(newFakeStore(1))

	resp := postJSON(t, app, "/api/products",
		`{"name":"Widget","sku":"w-100","price":9.99,"warehouse_id":9,"initial_quantity":50}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "WAREHOUSE_NOT_FOUND", decodeBody(t, resp)["code"])
}

func TestCreateEndpoint_MalformedBody(t *testing.T) {
	app := newTestApp(newFakeStore(1))

	resp := postJSON(t, app, "/api/products", `{"price": "not-a-number"`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeBody(t, resp)["code"])
}

func TestGetProductEndpoint(t *testing.T) {
	app := newTestApp(newFakeStore(1))
	created := decodeBody(t, postJSON(t, app, "/api/products", widgetBody))

	req := httptest.NewRequest(fiber.MethodGet, "/api/products/"+created["id"].(string), nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "W-100", body["sku"])
	assert.Len(t, body["inventory"], 1)

	req = httptest.NewRequest(fiber.MethodGet, "/api/products/missing", nil)
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSetQuantityEndpoint(t *testing.T) {
	store := newFakeStore(1)
	app := newTestApp(store)
	created := decodeBody(t, postJSON(t, app, "/api/products", widgetBody))
	id := created["id"].(string)

	put := func(path, body string) *http.Response {
		req := httptest.NewRequest(fiber.MethodPut, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		return resp
	}

	resp := put("/api/products/"+id+"/inventory/1", `{"quantity":75}`)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int64(75), store.inventory[pairKey(id, 1)].Quantity)

	resp = put("/api/products/"+id+"/inventory/1", `{"quantity":-1}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = put("/api/products/"+id+"/inventory/2", `{"quantity":5}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = put("/api/products/"+id+"/inventory/1", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAlertsEndpoint(t *testing.T) {
	app := newTestApp(newFakeStore(1))

	req := httptest.NewRequest(fiber.MethodGet, "/api/companies/1/alerts/low-stock", nil)
	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), decodeBody(t, resp)["total_alerts"])

	req = httptest.NewRequest(fiber.MethodGet, "/api/companies/0/alerts/low-stock", nil)
	resp, err = app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func failingRunner(err error) runnerFunc {
	return func(context.Context, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		warehouseRepo repository.WarehouseRepository,
	) error) error {
		return err
	}
}

func TestCreateEndpoint_TransientStorageFailure(t *testing.T) {
	store := newFakeStore(1)
	cause := fmt.Errorf("set lock_timeout: %w", domain.ErrTransientStorage)
	app := appWithRunner(store, failingRunner(cause))

	resp := postJSON(t, app, "/api/products", widgetBody)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "TRANSIENT", body["code"])
}

func TestCreateEndpoint_UnexpectedFailure(t *testing.T) {
	store := newFakeStore(1)
	app := appWithRunner(store, failingRunner(errors.New("connection pool closed")))

	resp := postJSON(t, app, "/api/products", widgetBody)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "INTERNAL", body["code"])
	// The storage failure detail must never reach the client.
	assert.NotContains(t, body["message"], "pool")
}

func TestCreateEndpoint_ConflictWithUnknownWinner(t *testing.T) {
	store := newFakeStore(1)
	app := newTestApp(store)
	postJSON(t, app, "/api/products", widgetBody)

	// Lookups go blind: the duplicate is only caught by the insert, and the
	// winner cannot be re-read afterwards.
	store.blind = true

	resp := postJSON(t, app, "/api/products", widgetBody)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "CONFLICT", body["code"])
	assert.NotContains(t, body, "product_id")
	assert.NotContains(t, body, "update_path")
}

func TestRateLimit_BurstExceeded(t *testing.T) {
	app := fiber.New()
	app.Use(httpapi.RateLimit(1, 2))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil), 2000)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", decodeBody(t, resp)["code"])
}
