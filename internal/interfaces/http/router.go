package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicolljireth/inventario-joyeria/internal/application/usecase"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store       repository.ItemRepository
	QueryUC     *usecase.QueryUseCase
	EditUC      *usecase.EditUseCase
	AlertUC     *usecase.AlertUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario: vista y guardado de la tabla completa
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Store, deps.QueryUC, deps.EditUC)
	inventory.Get("/", inventoryHandler.List)
	inventory.Put("/", inventoryHandler.Save)

	// Alertas de stock bajo
	alerts := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.Store, deps.AlertUC)
	alerts.Get("/low-stock", alertHandler.LowStock)
	alerts.Post("/send", alertHandler.Send)
	alerts.Get("/history", alertHandler.History)

	// Analítica
	analytics := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.Store, deps.AnalyticsUC)
	analytics.Get("/summary", analyticsHandler.Summary)
}
