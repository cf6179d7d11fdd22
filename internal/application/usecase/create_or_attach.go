package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/dto"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
)

const maxSKULength = 50

// maxPrice is the upper bound for product prices (NUMERIC(8,2) in storage).
var maxPrice = decimal.RequireFromString("999999.99")

var skuUpper = cases.Upper(language.Und)

// NormalizeSKU trims and uppercases a SKU so case variants collide on the
// unique constraint. Every lookup and write goes through this first.
func NormalizeSKU(sku string) string {
	return skuUpper.String(strings.TrimSpace(sku))
}

// Outcome discriminates how a create-or-attach request landed.
type Outcome string

const (
	OutcomeCreated  Outcome = "created"
	OutcomeAttached Outcome = "attached"
)

// createOrAttachInput is the validated, normalized form of the request.
type createOrAttachInput struct {
	SKU         string
	Name        string
	Price       decimal.Decimal
	WarehouseID int64
	Quantity    int64
	ProductType string
}

// CreateOrAttachUseCase is the product-inventory upsert: it either creates a
// new product with its first inventory record, or attaches an inventory
// record for an existing product to a new warehouse. SKU uniqueness is
// serialized by a row lock taken before the existence decision, with the
// storage unique constraints as the backstop for any race lost anyway.
type CreateOrAttachUseCase struct {
	tx        TxRunner
	products  repository.ProductRepository
	companyID int64
	log       zerolog.Logger
}

// NewCreateOrAttachUseCase builds the use case. products must be a pool-bound
// repository (used only for the best-effort conflict re-read outside the
// transaction).
func NewCreateOrAttachUseCase(tx TxRunner, products repository.ProductRepository, companyID int64, log zerolog.Logger) *CreateOrAttachUseCase {
	return &CreateOrAttachUseCase{tx: tx, products: products, companyID: companyID, log: log}
}

// Execute runs one atomic create-or-attach. Failure categories:
// *domain.ValidationError, domain.ErrWarehouseNotFound, *domain.ConflictError,
// domain.ErrTransientStorage (wrapped), anything else is internal.
func (uc *CreateOrAttachUseCase) Execute(ctx context.Context, req dto.CreateOrAttachRequest) (*dto.CreateOrAttachResponse, error) {
	in, verr := uc.validate(req)
	if verr != nil {
		uc.audit("rejected", "", verr.Error(), nil)
		return nil, verr
	}

	var (
		product *entity.Product
		record  *entity.InventoryRecord
		outcome Outcome
	)
	err := uc.tx.Run(ctx, func(
		products repository.ProductRepository,
		inventory repository.InventoryRepository,
		warehouses repository.WarehouseRepository,
	) error {
		wh, err := warehouses.GetActive(ctx, in.WarehouseID)
		if err != nil {
			return err
		}
		if !wh.Active() {
			return domain.ErrWarehouseNotFound
		}

		// Lock-then-decide: the row lock must be taken before branching on
		// existence, so an identical concurrent request blocks here instead
		// of also taking the create path.
		existing, err := products.GetBySKUForUpdate(ctx, in.SKU)
		if err != nil {
			return err
		}

		if existing != nil {
			rec, err := inventory.Get(ctx, existing.ID, in.WarehouseID)
			if err != nil {
				return err
			}
			if rec != nil {
				return &domain.ConflictError{ProductID: existing.ID, SKU: in.SKU, WarehouseID: in.WarehouseID}
			}
			record = newInventoryRecord(existing.ID, in.WarehouseID, in.Quantity)
			if err := inventory.Create(ctx, record); err != nil {
				if errors.Is(err, domain.ErrDuplicate) {
					return &domain.ConflictError{ProductID: existing.ID, SKU: in.SKU, WarehouseID: in.WarehouseID}
				}
				return err
			}
			product = existing
			outcome = OutcomeAttached
			return nil
		}

		now := time.Now().UTC()
		product = &entity.Product{
			ID:          uuid.New().String(),
			CompanyID:   uc.companyID,
			SKU:         in.SKU,
			Name:        in.Name,
			ProductType: in.ProductType,
			Price:       in.Price,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := products.Create(ctx, product); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				// A concurrent request won the race between the lookup and
				// this insert; same observable outcome as the pre-checked
				// duplicate.
				return &domain.ConflictError{SKU: in.SKU, WarehouseID: in.WarehouseID}
			}
			return err
		}
		record = newInventoryRecord(product.ID, in.WarehouseID, in.Quantity)
		if err := inventory.Create(ctx, record); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return &domain.ConflictError{ProductID: product.ID, SKU: in.SKU, WarehouseID: in.WarehouseID}
			}
			return err
		}
		outcome = OutcomeCreated
		return nil
	})
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) && conflict.ProductID == "" {
			// Race lost at commit: the winner's row is visible now.
			if winner, lerr := uc.products.GetBySKU(ctx, in.SKU); lerr == nil && winner != nil {
				conflict.ProductID = winner.ID
			}
		}
		uc.audit("rejected", in.SKU, err.Error(), &in.WarehouseID)
		return nil, err
	}

	uc.log.Info().
		Str("outcome", string(outcome)).
		Str("product_id", product.ID).
		Str("sku", in.SKU).
		Int64("warehouse_id", in.WarehouseID).
		Int64("quantity", in.Quantity).
		Msg("product upsert")

	return &dto.CreateOrAttachResponse{
		ID:          product.ID,
		SKU:         product.SKU,
		Name:        product.Name,
		Price:       product.Price,
		WarehouseID: record.WarehouseID,
		Quantity:    record.Quantity,
		Outcome:     string(outcome),
	}, nil
}

// validate checks every field and aggregates all violations (never fail-fast),
// keeping "missing" and "out of range" reasons distinct.
func (uc *CreateOrAttachUseCase) validate(req dto.CreateOrAttachRequest) (createOrAttachInput, *domain.ValidationError) {
	var in createOrAttachInput
	verr := &domain.ValidationError{}

	switch {
	case req.SKU == nil:
		verr.Add("sku", "is required")
	default:
		in.SKU = NormalizeSKU(*req.SKU)
		if in.SKU == "" {
			verr.Add("sku", "must not be empty")
		} else if utf8.RuneCountInString(in.SKU) > maxSKULength {
			// Character count, not bytes: the column is VARCHAR(50).
			verr.Add("sku", "must be at most 50 characters")
		}
	}

	switch {
	case req.Name == nil:
		verr.Add("name", "is required")
	default:
		in.Name = strings.TrimSpace(*req.Name)
		if in.Name == "" {
			verr.Add("name", "must not be empty")
		}
	}

	switch {
	case req.Price == nil:
		verr.Add("price", "is required")
	case !req.Price.IsPositive():
		verr.Add("price", "must be greater than zero")
	case req.Price.GreaterThan(maxPrice):
		verr.Add("price", "must not exceed 999999.99")
	default:
		in.Price = *req.Price
	}

	switch {
	case req.WarehouseID == nil:
		verr.Add("warehouse_id", "is required")
	case *req.WarehouseID <= 0:
		verr.Add("warehouse_id", "must be a positive integer")
	default:
		in.WarehouseID = *req.WarehouseID
	}

	if req.ProductType != nil {
		in.ProductType = strings.TrimSpace(*req.ProductType)
	}

	switch {
	case req.InitialQuantity == nil:
		verr.Add("initial_quantity", "is required")
	case *req.InitialQuantity < 0:
		verr.Add("initial_quantity", "must not be negative")
	default:
		in.Quantity = *req.InitialQuantity
	}

	if verr.HasErrors() {
		return createOrAttachInput{}, verr
	}
	return in, nil
}

func (uc *CreateOrAttachUseCase) audit(outcome, sku, reason string, warehouseID *int64) {
	ev := uc.log.Info().Str("outcome", outcome).Str("reason", reason)
	if sku != "" {
		ev = ev.Str("sku", sku)
	}
	if warehouseID != nil {
		ev = ev.Int64("warehouse_id", *warehouseID)
	}
	ev.Msg("product upsert")
}

func newInventoryRecord(productID string, warehouseID, quantity int64) *entity.InventoryRecord {
	return &entity.InventoryRecord{
		ID:          uuid.New().String(),
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		UpdatedAt:   time.Now().UTC(),
	}
}
