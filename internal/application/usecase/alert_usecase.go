package usecase

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nicolljireth/inventario-joyeria/internal/application/dto"
	"github.com/nicolljireth/inventario-joyeria/internal/application/ports"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/entity"
)

const (
	alertSubject = "ALERTA INVENTARIO"
	reportHeader = "ALERTA: Stock bajo en los siguientes productos:\n\n"
)

// AlertUseCase evalúa el stock bajo sobre la tabla sin filtrar, arma el
// reporte de alerta y lo despacha por el puerto de correo. Cada despacho
// exitoso queda registrado en un historial en memoria de la sesión.
type AlertUseCase struct {
	mailer   ports.AlertMailer
	receptor string
	printer  *message.Printer

	mu      sync.Mutex
	history []dto.AlertHistoryEntryDTO
}

// NewAlertUseCase construye el caso de uso de alertas.
func NewAlertUseCase(mailer ports.AlertMailer, receptor string) *AlertUseCase {
	return &AlertUseCase{
		mailer:   mailer,
		receptor: receptor,
		printer:  message.NewPrinter(language.English),
	}
}

// LowStock devuelve las filas con Cantidad <= Stock_Minimo, ascendente por
// Cantidad con empates en orden original. No muta la tabla fuente.
func (uc *AlertUseCase) LowStock(items []*entity.InventoryItem) []*entity.InventoryItem {
	out := make([]*entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.LowStock() {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Cantidad < out[j].Cantidad
	})
	return out
}

// FormatReport produce el reporte de texto plano de la alerta. Conjunto
// vacío → cadena vacía (el llamador no debe intentar enviar nada).
func (uc *AlertUseCase) FormatReport(lowStock []*entity.InventoryItem) string {
	if len(lowStock) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(reportHeader)
	for _, it := range lowStock {
		fmt.Fprintf(&b, "%s - Stock: %d / Min: %d / $%s\n",
			it.Nombre, it.Cantidad, it.StockMinimo, uc.formatPrecio(it.PrecioCOP))
	}
	return b.String()
}

// formatPrecio agrupa los miles con punto desde 1.000 (el locale es de
// CLDR recién agrupa desde 10.000, por eso se agrupa en inglés y se
// sustituye la coma).
func (uc *AlertUseCase) formatPrecio(precio int) string {
	return strings.ReplaceAll(uc.printer.Sprintf("%d", precio), ",", ".")
}

// SendAlert recalcula el stock bajo sobre la tabla completa y despacha el
// reporte con asunto "ALERTA INVENTARIO". Con el conjunto vacío no toca el
// relay y responde sent=false. Un fallo del relay se devuelve como
// domain.ErrNotificationFailed (ya envuelto por el adaptador), sin reintento.
func (uc *AlertUseCase) SendAlert(items []*entity.InventoryItem) (*dto.SendAlertResponse, error) {
	low := uc.LowStock(items)
	if len(low) == 0 {
		return &dto.SendAlertResponse{
			Sent:    false,
			Message: "todo el inventario está en buen nivel de stock; nada que enviar",
		}, nil
	}

	if err := uc.mailer.Send(alertSubject, uc.FormatReport(low)); err != nil {
		return nil, err
	}

	entry := dto.AlertHistoryEntryDTO{
		ID:        uuid.New().String(),
		SentAt:    time.Now(),
		Receptor:  uc.receptor,
		ItemCount: len(low),
	}
	uc.mu.Lock()
	uc.history = append(uc.history, entry)
	uc.mu.Unlock()

	return &dto.SendAlertResponse{
		Sent:    true,
		Message: "correo enviado correctamente",
		AlertID: entry.ID,
	}, nil
}

// History devuelve los despachos exitosos de la sesión, del más reciente
// al más antiguo.
func (uc *AlertUseCase) History() *dto.AlertHistoryResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := make([]dto.AlertHistoryEntryDTO, 0, len(uc.history))
	for i := len(uc.history) - 1; i >= 0; i-- {
		items = append(items, uc.history[i])
	}
	return &dto.AlertHistoryResponse{Items: items, Total: len(items)}
}
