package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/dto"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/entity"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain/repository"
)

const (
	// recentDays is the sales lookback window for "recent activity" and the
	// stockout projection.
	recentDays = 30
	// defaultThreshold applies to product types with no configured threshold.
	defaultThreshold = 10

	defaultAlertLimit = 100
	maxAlertLimit     = 500
)

// LowStockAlertsUseCase builds the low-stock alert listing: products with
// recent sales whose stock in a warehouse sits below the threshold for their
// product type, sorted by urgency (known stockout days first, ascending).
type LowStockAlertsUseCase struct {
	alerts     repository.AlertRepository
	thresholds repository.ThresholdRepository
	cache      ThresholdCache
	log        zerolog.Logger
	now        func() time.Time
}

// NewLowStockAlertsUseCase builds the use case. cache may be nil, in which
// case the threshold table is read from storage on every call.
func NewLowStockAlertsUseCase(alerts repository.AlertRepository, thresholds repository.ThresholdRepository, cache ThresholdCache, log zerolog.Logger) *LowStockAlertsUseCase {
	return &LowStockAlertsUseCase{
		alerts:     alerts,
		thresholds: thresholds,
		cache:      cache,
		log:        log,
		now:        time.Now,
	}
}

// Execute lists alerts for a company, optionally filtered to one warehouse
// (warehouseID == 0 means all). limit defaults to 100 and caps at 500.
func (uc *LowStockAlertsUseCase) Execute(ctx context.Context, companyID, warehouseID int64, limit, offset int) (*dto.LowStockAlertsResponse, error) {
	if limit <= 0 {
		limit = defaultAlertLimit
	}
	if limit > maxAlertLimit {
		limit = maxAlertLimit
	}
	if offset < 0 {
		offset = 0
	}

	since := uc.now().AddDate(0, 0, -recentDays)
	rows, err := uc.alerts.ActiveStockLevels(ctx, companyID, warehouseID, since)
	if err != nil {
		return nil, err
	}

	thresholds, err := uc.thresholdMap(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]entity.LowStockAlert, 0)
	for _, row := range rows {
		threshold, ok := thresholds[row.ProductType]
		if !ok {
			threshold = defaultThreshold
		}
		if row.CurrentStock >= threshold {
			continue
		}

		alert := entity.LowStockAlert{
			ProductID:         row.ProductID,
			ProductName:       row.ProductName,
			SKU:               row.SKU,
			ProductType:       row.ProductType,
			WarehouseID:       row.WarehouseID,
			WarehouseName:     row.WarehouseName,
			CurrentStock:      row.CurrentStock,
			Threshold:         threshold,
			DaysUntilStockout: stockoutDays(row.CurrentStock, row.UnitsSold),
		}
		alert.Supplier, err = uc.alerts.PrimarySupplier(ctx, row.ProductID)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}

	// Urgency order: known stockout days ascending, unknown last.
	sort.SliceStable(alerts, func(i, j int) bool {
		di, dj := alerts[i].DaysUntilStockout, alerts[j].DaysUntilStockout
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})

	total := len(alerts)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	page := make([]dto.LowStockAlertResponse, 0, end-offset)
	for _, alert := range alerts[offset:end] {
		page = append(page, alertResponse(alert))
	}

	return &dto.LowStockAlertsResponse{
		Alerts:      page,
		TotalAlerts: total,
	}, nil
}

func alertResponse(a entity.LowStockAlert) dto.LowStockAlertResponse {
	out := dto.LowStockAlertResponse{
		ProductID:         a.ProductID,
		ProductName:       a.ProductName,
		SKU:               a.SKU,
		WarehouseID:       a.WarehouseID,
		WarehouseName:     a.WarehouseName,
		CurrentStock:      a.CurrentStock,
		Threshold:         a.Threshold,
		DaysUntilStockout: a.DaysUntilStockout,
	}
	if a.Supplier != nil {
		out.Supplier = &dto.SupplierResponse{
			ID:           a.Supplier.ID,
			Name:         a.Supplier.Name,
			ContactEmail: a.Supplier.ContactEmail,
		}
	}
	return out
}

// thresholdMap serves the threshold table through the cache when one is
// wired; cache failures degrade to a storage read, never to an error.
func (uc *LowStockAlertsUseCase) thresholdMap(ctx context.Context) (map[string]int64, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err != nil {
			uc.log.Warn().Err(err).Msg("threshold cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}
	thresholds, err := uc.thresholds.All(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, thresholds); err != nil {
			uc.log.Warn().Err(err).Msg("threshold cache write failed")
		}
	}
	return thresholds, nil
}

// stockoutDays projects days until stockout from average daily sales over the
// lookback window. nil when the product had no sales in the window.
func stockoutDays(stock, unitsSold int64) *int64 {
	if unitsSold <= 0 {
		return nil
	}
	avgDaily := float64(unitsSold) / float64(recentDays)
	days := int64(float64(stock) / avgDaily)
	return &days
}
