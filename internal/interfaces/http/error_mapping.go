package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/dto"
	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/domain"
)

// writeError maps every domain failure category to exactly one HTTP status
// and a machine-readable code. Unanticipated errors get a generic 500 body;
// raw storage or driver messages never reach the client.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "invalid request",
			Fields:  verr.Fields,
		})
	}

	if errors.Is(err, domain.ErrWarehouseNotFound) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "WAREHOUSE_NOT_FOUND",
			Message: "warehouse does not exist or is inactive",
		})
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		body := dto.ConflictResponse{
			Code:    "CONFLICT",
			Message: "product already exists for this SKU; use the update path for quantity changes",
		}
		// The id can be unknown when a race was lost at commit and the winner
		// could not be re-read; an update path with an empty id is useless.
		if conflict.ProductID != "" {
			body.ProductID = conflict.ProductID
			body.UpdatePath = fmt.Sprintf("/api/products/%s/inventory/%d", conflict.ProductID, conflict.WarehouseID)
		}
		return c.Status(fiber.StatusConflict).JSON(body)
	}

	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "resource not found",
		})
	}

	if errors.Is(err, domain.ErrTransientStorage) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "TRANSIENT",
			Message: "temporary storage failure, safe to retry",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "internal server error",
	})
}
