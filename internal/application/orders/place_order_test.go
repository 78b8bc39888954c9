package orders_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-api/internal/application/dto"
	"github.com/jhoicas/retail-api/internal/application/orders"
	"github.com/jhoicas/retail-api/internal/domain/entity"
	"github.com/jhoicas/retail-api/internal/domain/repository"
	"github.com/jhoicas/retail-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memOrderRepo libro de órdenes en memoria.
type memOrderRepo struct {
	orders     []entity.Order
	items      []entity.OrderItem
	failCreate bool
}

func (r *memOrderRepo) Create(order *entity.Order) error {
	if r.failCreate {
		return errors.New("fallo de base de datos inyectado")
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memOrderRepo) CreateItem(item *entity.OrderItem) error {
	r.items = append(r.items, *item)
	return nil
}

func (r *memOrderRepo) List() ([]entity.Order, error) {
	return append([]entity.Order(nil), r.orders...), nil
}

// memOrderTxRunner con semántica de snapshot: si fn falla no queda nada escrito.
type memOrderTxRunner struct {
	repo *memOrderRepo
}

func (t *memOrderTxRunner) Run(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	ordersSnap := len(t.repo.orders)
	itemsSnap := len(t.repo.items)
	if err := fn(t.repo); err != nil {
		t.repo.orders = t.repo.orders[:ordersSnap]
		t.repo.items = t.repo.items[:itemsSnap]
		return err
	}
	return nil
}

// fakeReducer registra lo que recibe y devuelve lo configurado.
type fakeReducer struct {
	received []entity.ReductionItem
	outcomes []entity.ReductionOutcome
	err      error
	calls    int
}

func (f *fakeReducer) Reduce(ctx context.Context, items []entity.ReductionItem) ([]entity.ReductionOutcome, error) {
	f.calls++
	f.received = items
	return f.outcomes, f.err
}

func validRequest() dto.PlaceOrderRequest {
	price1 := decimal.NewFromFloat(249.99)
	price2 := decimal.NewFromFloat(79.99)
	qty1 := int64(2)
	qty2 := int64(1)
	total := decimal.NewFromFloat(579.97)
	return dto.PlaceOrderRequest{
		Cart: []dto.CartItemDTO{
			{ID: "1001", Name: "Apple Airpods Pro", Price: &price1, Quantity: &qty1, ImageURL: "http://img/1001"},
			{ID: "1012", Name: "Sony Earbuds", Price: &price2, Quantity: &qty2, ImageURL: "http://img/1012"},
		},
		ShippingDetails: &dto.ShippingDetailsDTO{Name: "Ana", Address: "Calle 1", City: "Bogotá", Zip: "110111"},
		Total:           &total,
	}
}

func newUseCase(repo *memOrderRepo, reducer *fakeReducer) *orders.PlaceOrderUseCase {
	return orders.NewPlaceOrderUseCase(&memOrderTxRunner{repo: repo}, reducer, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso feliz: la orden se guarda completa (cabecera + una línea por ítem del
// carrito) y la respuesta lleva id con prefijo ORD-, estado received y el total enviado.
func TestPlace_GuardaOrdenYConfirma(t *testing.T) {
	repo := &memOrderRepo{}
	reducer := &fakeReducer{}
	uc := newUseCase(repo, reducer)

	in := validRequest()
	out, err := uc.Place(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.OrderID, "ORD-"), "el id debe llevar el prefijo ORD-")
	assert.Equal(t, entity.OrderStatusReceived, out.Status)
	assert.True(t, out.Total.Equal(*in.Total), "el total debe ser el enviado")

	require.Len(t, repo.orders, 1, "exactamente una orden")
	require.Len(t, repo.items, 2, "una línea por ítem del carrito")
	assert.Equal(t, out.OrderID, repo.orders[0].ID)
	for _, item := range repo.items {
		assert.Equal(t, out.OrderID, item.OrderID)
	}
	// Snapshot de precio: la línea guarda el precio al momento de la compra.
	assert.True(t, repo.items[0].Price.Equal(decimal.NewFromFloat(249.99)))
}

// La reducción solo recibe id y cantidad; precio y nombre no viajan a inventario.
func TestPlace_ReduccionSoloIDYCantidad(t *testing.T) {
	repo := &memOrderRepo{}
	reducer := &fakeReducer{}
	uc := newUseCase(repo, reducer)

	_, err := uc.Place(context.Background(), validRequest())
	require.NoError(t, err)

	require.Equal(t, 1, reducer.calls)
	require.Len(t, reducer.received, 2)
	assert.Equal(t, entity.ReductionItem{ProductID: "1001", Quantity: 2}, reducer.received[0])
	assert.Equal(t, entity.ReductionItem{ProductID: "1012", Quantity: 1}, reducer.received[1])
}

// Si la escritura local falla, el request aborta completo: error al caller y
// ninguna llamada a inventario.
func TestPlace_FalloDePersistenciaAbortaTodo(t *testing.T) {
	repo := &memOrderRepo{failCreate: true}
	reducer := &fakeReducer{}
	uc := newUseCase(repo, reducer)

	out, err := uc.Place(context.Background(), validRequest())
	require.Error(t, err)
	assert.Nil(t, out)
	assert.Empty(t, repo.orders, "nada debe quedar escrito")
	assert.Empty(t, repo.items)
	assert.Zero(t, reducer.calls, "no debe llamarse a inventario si la orden no se guardó")
}

// Escenario D: el peer de inventario falla pero la orden ya confirmada se
// mantiene y el caller recibe éxito (brecha de consistencia eventual por diseño).
func TestPlace_PeerCaidoConfirmaIgual(t *testing.T) {
	repo := &memOrderRepo{}
	reducer := &fakeReducer{err: errors.New("connection refused")}
	uc := newUseCase(repo, reducer)

	out, err := uc.Place(context.Background(), validRequest())
	require.NoError(t, err, "el fallo del peer no debe fallar la orden")

	assert.True(t, strings.HasPrefix(out.OrderID, "ORD-"))
	assert.Equal(t, entity.OrderStatusReceived, out.Status)
	require.Len(t, repo.orders, 1, "la orden debe quedar guardada igual")
}

// IDs únicos entre llamadas (también bajo relojes corridos: el id es aleatorio).
func TestPlace_IDsUnicos(t *testing.T) {
	repo := &memOrderRepo{}
	uc := newUseCase(repo, &fakeReducer{})

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		out, err := uc.Place(context.Background(), validRequest())
		require.NoError(t, err)
		assert.False(t, seen[out.OrderID], "id repetido: %s", out.OrderID)
		seen[out.OrderID] = true
	}
}

func TestListOrders(t *testing.T) {
	repo := &memOrderRepo{}
	uc := newUseCase(repo, &fakeReducer{})

	_, err := uc.Place(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = uc.Place(context.Background(), validRequest())
	require.NoError(t, err)

	list, err := uc.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, entity.OrderStatusReceived, list[0].Status)
}
