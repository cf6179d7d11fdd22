package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/dto"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/usecase"
)

// AlertHandler handles the low-stock alert listing.
type AlertHandler struct {
	alerts *usecase.LowStockAlertsUseCase
}

// NewAlertHandler builds the handler.
func NewAlertHandler(alerts *usecase.LowStockAlertsUseCase) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// LowStock godoc
// @Summary      List low-stock alerts for a company
// @Tags         alerts
// @Produce      json
// @Param        company_id    path   int  true   "Company ID"
// @Param        warehouse_id  query  int  false  "Filter to one warehouse"
// @Param        limit         query  int  false  "Page size (default 100, max 500)"
// @Param        offset        query  int  false  "Page offset"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID, err := c.ParamsInt("company_id")
	if err != nil || companyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "company_id must be a positive integer",
		})
	}
	warehouseID := c.QueryInt("warehouse_id", 0)
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	out, err := h.alerts.Execute(c.UserContext(), int64(companyID), int64(warehouseID), limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
