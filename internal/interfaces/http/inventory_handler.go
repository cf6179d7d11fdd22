package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/dto"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/usecase"
)

// InventoryHandler handles quantity updates on existing inventory records.
type InventoryHandler struct {
	setQuantity *usecase.SetQuantityUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(setQuantity *usecase.SetQuantityUseCase) *InventoryHandler {
	return &InventoryHandler{setQuantity: setQuantity}
}

// SetQuantity godoc
// @Summary      Set the stock quantity of a product in a warehouse
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id            path  string  true  "Product ID"
// @Param        warehouse_id  path  int     true  "Warehouse ID"
// @Param        body          body  dto.SetQuantityRequest  true  "New quantity"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/inventory/{warehouse_id} [put]
func (h *InventoryHandler) SetQuantity(c *fiber.Ctx) error {
	productID := c.Params("id")
	warehouseID, err := c.ParamsInt("warehouse_id")
	if err != nil || warehouseID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "warehouse_id must be a positive integer",
		})
	}
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "request body is not valid JSON for this endpoint",
		})
	}
	if in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "quantity is required",
		})
	}
	if err := h.setQuantity.Execute(c.UserContext(), productID, int64(warehouseID), *in.Quantity); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
