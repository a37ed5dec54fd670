package usecase

import (
	"sort"
	"strings"

	"github.com/nicolljireth/inventario-joyeria/internal/domain"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/entity"
)

// Campos ordenables de la vista de inventario (nombres de columna).
const (
	SortByNombre      = "Nombre"
	SortByCantidad    = "Cantidad"
	SortByPrecioCOP   = "Precio_COP"
	SortByStockMinimo = "Stock_Minimo"
)

// QueryUseCase filtrado y ordenamiento en memoria para la vista de
// inventario. Opera siempre sobre copias: la tabla fuente nunca se muta.
type QueryUseCase struct{}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase() *QueryUseCase {
	return &QueryUseCase{}
}

// FilterByName filtra por subcadena en Nombre, sin distinguir mayúsculas.
// Aguja vacía conserva todas las filas en su orden; un Nombre vacío nunca
// coincide con una aguja no vacía.
func (uc *QueryUseCase) FilterByName(items []*entity.InventoryItem, needle string) []*entity.InventoryItem {
	out := make([]*entity.InventoryItem, 0, len(items))
	if needle == "" {
		return append(out, items...)
	}
	n := strings.ToLower(needle)
	for _, it := range items {
		if it.Nombre == "" {
			continue
		}
		if strings.Contains(strings.ToLower(it.Nombre), n) {
			out = append(out, it)
		}
	}
	return out
}

// SortBy ordena por el campo indicado con orden estable: los empates
// conservan el orden original tanto ascendente como descendente.
// Campo desconocido → domain.ErrInvalidInput.
func (uc *QueryUseCase) SortBy(items []*entity.InventoryItem, field string, ascending bool) ([]*entity.InventoryItem, error) {
	var less func(a, b *entity.InventoryItem) bool
	switch field {
	case SortByNombre:
		less = func(a, b *entity.InventoryItem) bool { return a.Nombre < b.Nombre }
	case SortByCantidad:
		less = func(a, b *entity.InventoryItem) bool { return a.Cantidad < b.Cantidad }
	case SortByPrecioCOP:
		less = func(a, b *entity.InventoryItem) bool { return a.PrecioCOP < b.PrecioCOP }
	case SortByStockMinimo:
		less = func(a, b *entity.InventoryItem) bool { return a.StockMinimo < b.StockMinimo }
	default:
		return nil, domain.ErrInvalidInput
	}

	out := make([]*entity.InventoryItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out, nil
}

// Display compone la vista de la tabla: primero filtra, luego ordena.
func (uc *QueryUseCase) Display(items []*entity.InventoryItem, search, sortBy string, ascending bool) ([]*entity.InventoryItem, error) {
	return uc.SortBy(uc.FilterByName(items, search), sortBy, ascending)
}
