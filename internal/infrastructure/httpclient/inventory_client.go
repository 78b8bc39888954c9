package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/retail-api/internal/application/orders"
	"github.com/jhoicas/retail-api/internal/domain/entity"
	"github.com/jhoicas/retail-api/pkg/logger"
)

var _ orders.StockReducer = (*InventoryClient)(nil)

// InventoryClient adaptador HTTP hacia POST /inventory-service/reduce.
// La llamada lleva un timeout acotado; cualquier fallo de transporte o estado
// no exitoso se devuelve como error para que el coordinador aplique su política
// (registrar y continuar).
type InventoryClient struct {
	reduceURL  string
	httpClient *http.Client
	log        *logger.Logger
}

// NewInventoryClient construye el cliente. reduceURL es configurable por despliegue.
func NewInventoryClient(reduceURL string, timeout time.Duration, log *logger.Logger) *InventoryClient {
	return &InventoryClient{
		reduceURL: reduceURL,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
		log: log,
	}
}

// wire types: el contrato del servicio de inventario.
type reduceItem struct {
	ID       string `json:"id"`
	Quantity int64  `json:"quantity"`
}

type updatedItem struct {
	ProductID     string `json:"product_id"`
	NewStockLevel int64  `json:"new_stock_level"`
}

type reduceResponse struct {
	Status       string        `json:"status"`
	UpdatedItems []updatedItem `json:"updated_items"`
}

// Reduce envía el batch de deducciones y devuelve los resultados por ítem.
func (c *InventoryClient) Reduce(ctx context.Context, items []entity.ReductionItem) ([]entity.ReductionOutcome, error) {
	payload := make([]reduceItem, 0, len(items))
	for _, item := range items {
		payload = append(payload, reduceItem{ID: item.ProductID, Quantity: item.Quantity})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal reduce payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.reduceURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build reduce request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug().Str("url", c.reduceURL).Int("items", len(items)).Msg("llamando al servicio de inventario")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call inventory service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Leer algo del cuerpo para el log; el caller solo necesita el error.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("inventory service returned %d: %s", resp.StatusCode, string(raw))
	}

	var out reduceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode reduce response: %w", err)
	}

	outcomes := make([]entity.ReductionOutcome, 0, len(out.UpdatedItems))
	for _, u := range out.UpdatedItems {
		outcomes = append(outcomes, entity.ReductionOutcome{
			ProductID:     u.ProductID,
			NewStockLevel: u.NewStockLevel,
		})
	}
	return outcomes, nil
}
