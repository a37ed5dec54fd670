package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicolljireth/inventario-joyeria/internal/application/usecase"
	"github.com/nicolljireth/inventario-joyeria/internal/domain"
	"github.com/nicolljireth/inventario-joyeria/internal/domain/entity"
	"github.com/nicolljireth/inventario-joyeria/internal/infrastructure/csvstore"
	apphttp "github.com/nicolljireth/inventario-joyeria/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// mailerFalso cuenta envíos y puede simular el fallo del relay.
type mailerFalso struct {
	llamadas int
	err      error
}

func (m *mailerFalso) Send(subject, body string) error {
	m.llamadas++
	return m.err
}

// buildTestApp arma la aplicación Fiber completa sobre un CSV temporal y un
// mailer falso. Devuelve también la caché para observar invalidaciones.
func buildTestApp(t *testing.T, mail *mailerFalso) (*fiber.App, *csvstore.CachedStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventario.csv")
	store := csvstore.NewCachedStore(csvstore.NewStore(path))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:       store,
		QueryUC:     usecase.NewQueryUseCase(),
		EditUC:      usecase.NewEditUseCase(),
		AlertUC:     usecase.NewAlertUseCase(mail, "receptor@example.com"),
		AnalyticsUC: usecase.NewAnalyticsUseCase(),
	})
	return app, store, path
}

func seedInventario(t *testing.T, store *csvstore.CachedStore) {
	t.Helper()
	require.NoError(t, store.Save([]*entity.InventoryItem{
		{ID: "1", Nombre: "Anillo", Cantidad: 2, PrecioCOP: 50000, StockMinimo: 5},
		{ID: "2", Nombre: "Collar", Cantidad: 10, PrecioCOP: 120000, StockMinimo: 3},
		{ID: "3", Nombre: "Pulsera", Cantidad: 7, PrecioCOP: 35000, StockMinimo: 2},
	}))
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

type listBody struct {
	Items []struct {
		ID        string `json:"id"`
		Nombre    string `json:"nombre"`
		Cantidad  int    `json:"cantidad"`
		BajoStock bool   `json:"bajo_stock"`
	} `json:"items"`
	Total   int    `json:"total"`
	Warning string `json:"warning"`
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/inventory
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltradoYOrdenado(t *testing.T) {
	app, store, _ := buildTestApp(t, &mailerFalso{})
	seedInventario(t, store)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/?search=l&sort_by=Cantidad&ascending=false", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body listBody
	decodeBody(t, resp, &body)
	// "l" coincide con Anillo, Collar y Pulsera; descendente por Cantidad
	require.Equal(t, 3, body.Total)
	assert.Equal(t, "Collar", body.Items[0].Nombre)
	assert.Equal(t, "Anillo", body.Items[2].Nombre)
	assert.True(t, body.Items[2].BajoStock)
	assert.Empty(t, body.Warning)
}

// Archivo ausente: la vista vacía se renderiza igual y warning informa.
func TestList_ArchivoAusente(t *testing.T) {
	app, _, _ := buildTestApp(t, &mailerFalso{})

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body listBody
	decodeBody(t, resp, &body)
	assert.Equal(t, 0, body.Total)
	assert.NotEmpty(t, body.Warning, "el usuario debe enterarse de la fuente ausente")
}

func TestList_CampoDeOrdenInvalido(t *testing.T) {
	app, store, _ := buildTestApp(t, &mailerFalso{})
	seedInventario(t, store)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory/?sort_by=Color", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "INVALID_SORT_FIELD", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// PUT /api/inventory
// ──────────────────────────────────────────────────────────────────────────────

func TestSave_ReconciliaYRecarga(t *testing.T) {
	app, store, _ := buildTestApp(t, &mailerFalso{})
	seedInventario(t, store)

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/", map[string]any{
		"columns": entity.RequiredColumns(),
		"rows": []map[string]any{
			{"ID": "1", "Nombre": "Anillo", "Cantidad": "abc", "Precio_COP": 50000, "Stock_Minimo": 5},
		},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body listBody
	decodeBody(t, resp, &body)
	require.Equal(t, 1, body.Total, "el guardado sobrescribe la tabla completa")
	assert.Equal(t, 0, body.Items[0].Cantidad, `"abc" debe quedar en 0, no rechazarse`)
}

func TestSave_ColumnaFaltanteRechazada(t *testing.T) {
	app, store, path := buildTestApp(t, &mailerFalso{})
	seedInventario(t, store)

	resp := doJSON(t, app, http.MethodPut, "/api/inventory/", map[string]any{
		"columns": []string{"ID", "Nombre", "Cantidad", "Stock_Minimo"},
		"rows":    []map[string]any{{"ID": "9", "Nombre": "Nueva", "Cantidad": 1, "Stock_Minimo": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "MISSING_COLUMNS", body["code"])
	assert.Contains(t, body["message"], "Precio_COP")

	// Sin guardado parcial: el archivo conserva las tres filas originales.
	items, err := csvstore.NewStore(path).Load()
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestSave_IDDuplicadoRechazado(t *testing.T) {
	app, store, _ := buildTestApp(t, &mailerFalso{})
	seedInventario(t, store)

	fila := map[string]any{"ID": "1", "Nombre": "Anillo", "Cantidad": 1, "Precio_COP": 1, "Stock_Minimo": 1}
	resp := doJSON(t, app, http.MethodPut, "/api/inventory/", map[string]any{
		"columns": entity.RequiredColumns(),
		"rows":    []map[string]any{fila, fila},
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "DUPLICATE_ID", body["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStock_Reporte(t *testing.T) {
	app, store, _ := buildTestApp(t, &mailerFalso{})
	seedInventario(t, store)

	resp := doJSON(t, app, http.MethodGet, "/api/alerts/low-stock", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Total  int    `json:"total"`
		Report string `json:"report"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t,
		"ALERTA: Stock bajo en los siguientes productos:\n\nAnillo - Stock: 2 / Min: 5 / $50.000\n",
		body.Report)
}

func TestSendAlert_Despacho(t *testing.T) {
	mail := &mailerFalso{}
	app, store, _ := buildTestApp(t, mail)
	seedInventario(t, store)

	resp := doJSON(t, app, http.MethodPost, "/api/alerts/send", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Sent    bool   `json:"sent"`
		AlertID string `json:"alert_id"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Sent)
	assert.NotEmpty(t, body.AlertID)
	assert.Equal(t, 1, mail.llamadas)

	histResp := doJSON(t, app, http.MethodGet, "/api/alerts/history", nil)
	var hist struct {
		Total int `json:"total"`
	}
	decodeBody(t, histResp, &hist)
	assert.Equal(t, 1, hist.Total)
}

// Tabla sin stock bajo: el relay no se toca y la respuesta lo dice.
func TestSendAlert_SinStockBajo(t *testing.T) {
	mail := &mailerFalso{}
	app, store, _ := buildTestApp(t, mail)
	require.NoError(t, store.Save([]*entity.InventoryItem{
		{ID: "1", Nombre: "Collar", Cantidad: 10, PrecioCOP: 120000, StockMinimo: 3},
	}))

	resp := doJSON(t, app, http.MethodPost, "/api/alerts/send", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Sent bool `json:"sent"`
	}
	decodeBody(t, resp, &body)
	assert.False(t, body.Sent)
	assert.Equal(t, 0, mail.llamadas)
}

func TestSendAlert_FalloDelRelay(t *testing.T) {
	mail := &mailerFalso{err: fmt.Errorf("%w: conexión rechazada", domain.ErrNotificationFailed)}
	app, store, _ := buildTestApp(t, mail)
	seedInventario(t, store)

	resp := doJSON(t, app, http.MethodPost, "/api/alerts/send", nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "NOTIFICATION_FAILED", body["code"])
	assert.Contains(t, body["message"], "conexión rechazada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Analítica
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalyticsSummary(t *testing.T) {
	app, store, _ := buildTestApp(t, &mailerFalso{})
	seedInventario(t, store)

	resp := doJSON(t, app, http.MethodGet, "/api/analytics/summary", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		TotalItems    int    `json:"total_items"`
		TotalUnits    int    `json:"total_units"`
		LowStockCount int    `json:"low_stock_count"`
		TotalValueCOP string `json:"total_value_cop"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 3, body.TotalItems)
	assert.Equal(t, 19, body.TotalUnits)
	assert.Equal(t, 1, body.LowStockCount)
	// 2*50000 + 10*120000 + 7*35000 = 1545000
	assert.Equal(t, "1545000", body.TotalValueCOP)
}
