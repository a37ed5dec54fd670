package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemDTO una fila del inventario en respuestas HTTP.
type ItemDTO struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Cantidad    int    `json:"cantidad"`
	PrecioCOP   int    `json:"precio_cop"`
	StockMinimo int    `json:"stock_minimo"`
	BajoStock   bool   `json:"bajo_stock"`
}

// InventoryListResponse vista filtrada/ordenada del inventario.
// Warning informa condiciones no fatales de carga (archivo ausente o
// ilegible) junto con la tabla vacía.
type InventoryListResponse struct {
	Items   []ItemDTO `json:"items"`
	Total   int       `json:"total"`
	Warning string    `json:"warning,omitempty"`
}

// SaveInventoryRequest tabla editada tal como la envía la grilla: lista de
// columnas presentes y filas como objetos con valores aún sin coercionar.
type SaveInventoryRequest struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// LowStockResponse subconjunto en o bajo el umbral mínimo, con la vista
// previa del reporte de alerta.
type LowStockResponse struct {
	Items   []ItemDTO `json:"items"`
	Total   int       `json:"total"`
	Report  string    `json:"report,omitempty"`
	Warning string    `json:"warning,omitempty"`
}

// SendAlertResponse resultado del despacho de la alerta por correo.
type SendAlertResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
	AlertID string `json:"alert_id,omitempty"`
}

// AlertHistoryEntryDTO un despacho exitoso registrado en la sesión.
type AlertHistoryEntryDTO struct {
	ID        string    `json:"id"`
	SentAt    time.Time `json:"sent_at"`
	Receptor  string    `json:"receptor"`
	ItemCount int       `json:"item_count"`
}

// AlertHistoryResponse historial de alertas despachadas.
type AlertHistoryResponse struct {
	Items []AlertHistoryEntryDTO `json:"items"`
	Total int                    `json:"total"`
}

// AnalyticsSummaryResponse resumen de valorización del inventario.
type AnalyticsSummaryResponse struct {
	TotalItems    int             `json:"total_items"`
	TotalUnits    int             `json:"total_units"`
	LowStockCount int             `json:"low_stock_count"`
	TotalValueCOP decimal.Decimal `json:"total_value_cop"`
}
