package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nicolljireth/inventario-joyeria/internal/application/dto"
	"github.com/nicolljireth/inventario-joyeria/internal/application/usecase"
	"github.com/nicolljireth/inventario-joyeria/internal/domain"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/entity"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/repository"
)

// InventoryHandler maneja la vista filtrada/ordenada y el guardado de la
// tabla editada.
type InventoryHandler struct {
	store   repository.ItemRepository
	queryUC *usecase.QueryUseCase
	editUC  *usecase.EditUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(store repository.ItemRepository, queryUC *usecase.QueryUseCase, editUC *usecase.EditUseCase) *InventoryHandler {
	return &InventoryHandler{store: store, queryUC: queryUC, editUC: editUC}
}

// List godoc
// @Summary      Vista del inventario (filtrada y ordenada)
// @Tags         inventory
// @Produce      json
// @Param        search     query  string  false  "Subcadena a buscar en Nombre"
// @Param        sort_by    query  string  false  "Nombre | Cantidad | Precio_COP | Stock_Minimo"  default(Nombre)
// @Param        ascending  query  bool    false  "Orden ascendente"  default(true)
// @Success      200  {object}  dto.InventoryListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	search := c.Query("search", "")
	sortBy := c.Query("sort_by", usecase.SortByNombre)
	ascending := c.QueryBool("ascending", true)

	items, loadErr := h.store.Load()
	view, err := h.queryUC.Display(items, search, sortBy, ascending)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_SORT_FIELD", Message: "sort_by debe ser Nombre, Cantidad, Precio_COP o Stock_Minimo",
		})
	}
	return c.JSON(dto.InventoryListResponse{
		Items:   toItemDTOs(view),
		Total:   len(view),
		Warning: loadWarning(loadErr),
	})
}

// Save godoc
// @Summary      Guardar la tabla editada (reconciliación + sobrescritura completa)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveInventoryRequest  true  "Tabla editada"
// @Success      200   {object}  dto.InventoryListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/inventory [put]
func (h *InventoryHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	items, err := h.editUC.Reconcile(in.Columns, in.Rows)
	if err != nil {
		var missingErr *domain.MissingColumnsError
		if errors.As(err, &missingErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COLUMNS", Message: missingErr.Error()})
		}
		var dupErr *domain.DuplicateIDError
		if errors.As(err, &dupErr) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_ID", Message: dupErr.Error()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	if err := h.store.Save(items); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SAVE_ERROR", Message: err.Error()})
	}

	// Recarga fresca tras la invalidación de la caché por el guardado.
	fresh, loadErr := h.store.Load()
	return c.JSON(dto.InventoryListResponse{
		Items:   toItemDTOs(fresh),
		Total:   len(fresh),
		Warning: loadWarning(loadErr),
	})
}

// loadWarning traduce las condiciones no fatales de carga al campo warning
// de la respuesta. La tabla vacía se sigue renderizando en ambos casos.
func loadWarning(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func toItemDTOs(items []*entity.InventoryItem) []dto.ItemDTO {
	out := make([]dto.ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ItemDTO{
			ID:          it.ID,
			Nombre:      it.Nombre,
			Cantidad:    it.Cantidad,
			PrecioCOP:   it.PrecioCOP,
			StockMinimo: it.StockMinimo,
			BajoStock:   it.LowStock(),
		})
	}
	return out
}
