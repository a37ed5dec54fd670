package usecase

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/nicolljireth/inventario-joyeria/internal/domain"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/entity"
)

// EditUseCase reconcilia la tabla editada por el usuario contra el esquema
// requerido antes de persistir. No escribe: devuelve la tabla coercionada
// y el llamador decide guardarla.
type EditUseCase struct{}

// NewEditUseCase construye el caso de uso de edición.
func NewEditUseCase() *EditUseCase {
	return &EditUseCase{}
}

// Reconcile valida y coerciona la tabla editada.
//
//   - Cualquiera de las cinco columnas requeridas ausente →
//     domain.MissingColumnsError enumerando exactamente las faltantes;
//     no se guarda nada. Columnas extra se toleran y se descartan.
//   - Cantidad, Precio_COP y Stock_Minimo se coercionan a entero: celdas
//     no numéricas, vacías o ausentes (filas insertadas/borradas en la
//     grilla) quedan en 0. Política deliberadamente lossy; se preserva
//     tal cual. Negativos se recortan a 0 para sostener el invariante >= 0.
//   - Un ID no vacío repetido → domain.DuplicateIDError.
func (uc *EditUseCase) Reconcile(columns []string, rows []map[string]any) ([]*entity.InventoryItem, error) {
	required := entity.RequiredColumns()

	present := make(map[string]bool, len(columns))
	for _, col := range columns {
		present[col] = true
	}
	var missing []string
	for _, col := range required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.MissingColumnsError{Missing: missing, Required: required}
	}

	items := make([]*entity.InventoryItem, 0, len(rows))
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		it := &entity.InventoryItem{
			ID:          strings.TrimSpace(cast.ToString(row["ID"])),
			Nombre:      cast.ToString(row["Nombre"]),
			Cantidad:    coerceNonNegative(row["Cantidad"]),
			PrecioCOP:   coerceNonNegative(row["Precio_COP"]),
			StockMinimo: coerceNonNegative(row["Stock_Minimo"]),
		}
		if it.ID != "" {
			if seen[it.ID] {
				return nil, &domain.DuplicateIDError{ID: it.ID}
			}
			seen[it.ID] = true
		}
		items = append(items, it)
	}
	return items, nil
}

// coerceNonNegative replica la coerción lossy de la grilla: lo que no
// parsea como número termina en 0, y los negativos también.
func coerceNonNegative(v any) int {
	n := cast.ToInt(v)
	if n < 0 {
		return 0
	}
	return n
}
