package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicolljireth/inventario-joyeria/internal/application/dto"
	"github.com/nicolljireth/inventario-joyeria/internal/application/usecase"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/repository"
)

// AlertHandler expone el stock bajo y el despacho de la alerta por correo.
// El stock bajo siempre se deriva de la tabla completa, no de la vista
// filtrada.
type AlertHandler struct {
	store   repository.ItemRepository
	alertUC *usecase.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(store repository.ItemRepository, alertUC *usecase.AlertUseCase) *AlertHandler {
	return &AlertHandler{store: store, alertUC: alertUC}
}

// LowStock godoc
// @Summary      Productos en o bajo su stock mínimo
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.LowStockResponse
// @Router       /api/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	items, loadErr := h.store.Load()
	low := h.alertUC.LowStock(items)
	return c.JSON(dto.LowStockResponse{
		Items:   toItemDTOs(low),
		Total:   len(low),
		Report:  h.alertUC.FormatReport(low),
		Warning: loadWarning(loadErr),
	})
}

// Send godoc
// @Summary      Enviar la alerta de stock bajo por correo
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.SendAlertResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/alerts/send [post]
func (h *AlertHandler) Send(c *fiber.Ctx) error {
	items, _ := h.store.Load()
	out, err := h.alertUC.SendAlert(items)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "NOTIFICATION_FAILED", Message: err.Error()})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de alertas despachadas en la sesión
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  dto.AlertHistoryResponse
// @Router       /api/alerts/history [get]
func (h *AlertHandler) History(c *fiber.Ctx) error {
	return c.JSON(h.alertUC.History())
}
