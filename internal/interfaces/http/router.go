package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	Upsert       *usecase.CreateOrAttachUseCase
	ProductQuery *usecase.ProductQueryUseCase
	SetQuantity  *usecase.SetQuantityUseCase
	Alerts       *usecase.LowStockAlertsUseCase
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Upsert, deps.ProductQuery)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)

	inventoryHandler := NewInventoryHandler(deps.SetQuantity)
	products.Put("/:id/inventory/:warehouse_id", inventoryHandler.SetQuantity)

	alertHandler := NewAlertHandler(deps.Alerts)
	api.Get("/companies/:company_id/alerts/low-stock", alertHandler.LowStock)
}
