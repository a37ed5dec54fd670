package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicolljireth/inventario-joyeria/internal/application/usecase"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/repository"
)

// AnalyticsHandler expone el resumen de valorización del inventario.
type AnalyticsHandler struct {
	store       repository.ItemRepository
	analyticsUC *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(store repository.ItemRepository, analyticsUC *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{store: store, analyticsUC: analyticsUC}
}

// Summary godoc
// @Summary      Resumen de valorización del inventario
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AnalyticsSummaryResponse
// @Router       /api/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	items, _ := h.store.Load()
	return c.JSON(h.analyticsUC.Summary(items))
}
