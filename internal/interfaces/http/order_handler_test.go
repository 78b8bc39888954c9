package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-api/internal/application/orders"
	"github.com/jhoicas/retail-api/internal/infrastructure/httpclient"
	apphttp "github.com/jhoicas/retail-api/internal/interfaces/http"
	"github.com/jhoicas/retail-api/pkg/logger"
)

// buildOrdersApp construye la app del servicio de órdenes sobre fakes en memoria.
func buildOrdersApp(repo *memOrderRepo, reducer orders.StockReducer) *fiber.App {
	uc := orders.NewPlaceOrderUseCase(&memOrderTxRunner{repo: repo}, reducer, logger.Nop())
	app := fiber.New()
	apphttp.OrderRoutes(app, uc)
	return app
}

const validOrderBody = `{
	"cart": [
		{"id": "1001", "name": "Apple Airpods Pro", "price": 249.99, "quantity": 2, "imageUrl": "http://img/1001"},
		{"id": "1012", "name": "Sony Earbuds", "price": 79.99, "quantity": 1, "imageUrl": "http://img/1012"}
	],
	"shippingDetails": {"name": "Ana", "address": "Calle 1", "city": "Bogotá", "zip": "110111"},
	"total": 579.97
}`

func postOrder(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/orders-service/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Orden válida → 200 con orderId ORD-, estado received y el total como número.
func TestPlaceOrder_OK(t *testing.T) {
	repo := &memOrderRepo{}
	app := buildOrdersApp(repo, &fakeReducer{})

	resp := postOrder(t, app, validOrderBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	orderID, _ := body["orderId"].(string)
	assert.True(t, strings.HasPrefix(orderID, "ORD-"), "orderId debe llevar prefijo ORD-: %v", body["orderId"])
	assert.Equal(t, "received", body["status"])
	assert.InDelta(t, 579.97, body["total"], 0.001, "total debe ser un número JSON")

	require.Len(t, repo.orders, 1)
	require.Len(t, repo.items, 2)
}

// Campo total ausente → 422 con el campo señalado en el detalle.
func TestPlaceOrder_422SinTotal(t *testing.T) {
	body := `{
		"cart": [{"id": "1001", "name": "X", "price": 1.0, "quantity": 1, "imageUrl": "http://img"}],
		"shippingDetails": {"name": "Ana", "address": "Calle 1", "city": "Bogotá", "zip": "110111"}
	}`
	app := buildOrdersApp(&memOrderRepo{}, &fakeReducer{})

	resp := postOrder(t, app, body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out struct {
		Code    string `json:"code"`
		Details []struct {
			Field string `json:"field"`
			Error string `json:"error"`
		} `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
	require.NotEmpty(t, out.Details)
	assert.Equal(t, "total", out.Details[0].Field)
}

// quantity como string → 422 con error de tipo señalando el campo.
func TestPlaceOrder_422QuantityNoNumerica(t *testing.T) {
	body := `{
		"cart": [{"id": "1001", "name": "X", "price": 1.0, "quantity": "dos", "imageUrl": "http://img"}],
		"shippingDetails": {"name": "Ana", "address": "Calle 1", "city": "Bogotá", "zip": "110111"},
		"total": 2.0
	}`
	app := buildOrdersApp(&memOrderRepo{}, &fakeReducer{})

	resp := postOrder(t, app, body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	raw := new(strings.Builder)
	_, _ = io.Copy(raw, resp.Body)
	assert.Contains(t, raw.String(), "quantity", "el detalle debe señalar el campo quantity")
}

// quantity cero o negativa → 422.
func TestPlaceOrder_422QuantityNoPositiva(t *testing.T) {
	body := `{
		"cart": [{"id": "1001", "name": "X", "price": 1.0, "quantity": 0, "imageUrl": "http://img"}],
		"shippingDetails": {"name": "Ana", "address": "Calle 1", "city": "Bogotá", "zip": "110111"},
		"total": 0
	}`
	app := buildOrdersApp(&memOrderRepo{}, &fakeReducer{})

	resp := postOrder(t, app, body)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

// Fallo de persistencia local → 500 y nada escrito; no se llama a inventario.
func TestPlaceOrder_500FalloDeBD(t *testing.T) {
	repo := &memOrderRepo{failCreate: true}
	reducer := &fakeReducer{}
	app := buildOrdersApp(repo, reducer)

	resp := postOrder(t, app, validOrderBody)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, repo.orders)
	assert.Zero(t, reducer.calls)
}

// Escenario D de punta a punta: peer de inventario inalcanzable (cliente HTTP
// real contra un puerto cerrado) → la orden igual responde 200 y queda guardada.
func TestPlaceOrder_PeerInalcanzable(t *testing.T) {
	repo := &memOrderRepo{}
	reducer := httpclient.NewInventoryClient(
		"http://127.0.0.1:1/inventory-service/reduce", 200*time.Millisecond, logger.Nop())
	app := buildOrdersApp(repo, reducer)

	resp := postOrder(t, app, validOrderBody)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode, "el peer caído no debe fallar la orden")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	orderID, _ := body["orderId"].(string)
	assert.True(t, strings.HasPrefix(orderID, "ORD-"))
	require.Len(t, repo.orders, 1, "la orden debe estar en el libro")
}

// GET de órdenes devuelve las cabeceras guardadas.
func TestListOrders_Handler(t *testing.T) {
	repo := &memOrderRepo{}
	app := buildOrdersApp(repo, &fakeReducer{})

	resp := postOrder(t, app, validOrderBody)
	resp.Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/orders-service/orders", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer listResp.Body.Close()

	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "received", list[0]["status"])
}
