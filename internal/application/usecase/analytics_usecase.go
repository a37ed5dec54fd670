package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/nicolljireth/inventario-joyeria/internal/application/dto"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/entity"
)

// AnalyticsUseCase agrega métricas de valorización sobre la tabla en
// memoria: conteos, unidades y valor total del inventario en COP.
type AnalyticsUseCase struct{}

// NewAnalyticsUseCase construye el caso de uso de analítica.
func NewAnalyticsUseCase() *AnalyticsUseCase {
	return &AnalyticsUseCase{}
}

// Summary calcula el resumen sobre la tabla dada. El valor total es
// Σ Cantidad × Precio_COP con aritmética decimal.
func (uc *AnalyticsUseCase) Summary(items []*entity.InventoryItem) *dto.AnalyticsSummaryResponse {
	total := decimal.Zero
	units := 0
	low := 0
	for _, it := range items {
		valor := decimal.NewFromInt(int64(it.Cantidad)).Mul(decimal.NewFromInt(int64(it.PrecioCOP)))
		total = total.Add(valor)
		units += it.Cantidad
		if it.LowStock() {
			low++
		}
	}
	return &dto.AnalyticsSummaryResponse{
		TotalItems:    len(items),
		TotalUnits:    units,
		LowStockCount: low,
		TotalValueCOP: total,
	}
}
