package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-api/internal/application/catalog"
	"github.com/jhoicas/retail-api/internal/domain/entity"
	apphttp "github.com/jhoicas/retail-api/internal/interfaces/http"
)

func buildProductsApp(repo *memProductRepo) *fiber.App {
	app := fiber.New()
	apphttp.ProductRoutes(app, catalog.NewCatalogUseCase(repo))
	return app
}

func TestProducts_List(t *testing.T) {
	repo := &memProductRepo{products: []entity.Product{
		{ID: "1001", Name: "Apple Airpods Pro", Price: decimal.NewFromFloat(249.99)},
		{ID: "1002", Name: "Asus ROG Laptop", Price: decimal.NewFromFloat(1299.00)},
	}}
	app := buildProductsApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/products-service/products", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "1001", list[0]["id"])
	assert.InDelta(t, 249.99, list[0]["price"], 0.001, "price debe ser un número JSON")
}

func TestProducts_GetByID(t *testing.T) {
	repo := &memProductRepo{products: []entity.Product{
		{ID: "1001", Name: "Apple Airpods Pro", Price: decimal.NewFromFloat(249.99)},
	}}
	app := buildProductsApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/products-service/products/1001", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Apple Airpods Pro", out["name"])

	req = httptest.NewRequest(http.MethodGet, "/products-service/products/9999", nil)
	notFound, err := app.Test(req, -1)
	require.NoError(t, err)
	defer notFound.Body.Close()
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
}
