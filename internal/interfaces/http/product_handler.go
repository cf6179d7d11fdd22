package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/dto"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/usecase"
)

// ProductHandler handles the product create-or-attach and lookup endpoints.
type ProductHandler struct {
	upsert *usecase.CreateOrAttachUseCase
	query  *usecase.ProductQueryUseCase
}

// NewProductHandler builds the handler.
func NewProductHandler(upsert *usecase.CreateOrAttachUseCase, query *usecase.ProductQueryUseCase) *ProductHandler {
	return &ProductHandler{upsert: upsert, query: query}
}

// Create godoc
// @Summary      Create a product or attach it to a new warehouse
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrAttachRequest  true  "Product data"
// @Success      201   {object}  dto.CreateOrAttachResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ConflictResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrAttachRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "request body is not valid JSON for this endpoint",
		})
	}
	out, err := h.upsert.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Location(fmt.Sprintf("/api/products/%s", out.ID))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get a product with its per-warehouse inventory
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "Product ID"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.query.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "product not found"})
	}
	return c.JSON(out)
}
