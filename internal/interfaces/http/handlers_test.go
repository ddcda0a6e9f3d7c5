package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/analytics"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/seed"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
	"github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/memory"
	"github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/ecommerce-backoffice/internal/interfaces/http"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de prueba: router completo sobre repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	app   *fiber.App
	clock *clock.FakeClock
	token string
}

func newTestEnv(t *testing.T, seeded bool) *testEnv {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewFake(testNow)
	if seeded {
		_, err := seed.NewInitializer(store, clk).Run(context.Background(), store.Categories)
		require.NoError(t, err)
	}

	dashboard := analytics.NewDashboardUseCase(store.Products, store.Customers, store.Orders, clk)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:  usecase.NewCategoryUseCase(store.Categories, clk, nil, nil),
		ProductUC:   usecase.NewProductUseCase(store.Products, store.Categories, clk, nil),
		CustomerUC:  usecase.NewCustomerUseCase(store.Customers, clk, nil, nil),
		OrderUC:     usecase.NewOrderUseCase(store.Orders, store.Customers, clk, nil),
		UserUC:      usecase.NewUserUseCase(store.Users, clk, nil),
		DashboardUC: dashboard,
		ReportUC:    analytics.NewReportUseCase(dashboard, pdf.NewMarotoReportGenerator("Dashboard")),
		JWTSecret:   testJWTSecret,
	})
	return &testEnv{app: app, clock: clk, token: tokenForRole(t, "admin")}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", e.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	return decode[dto.ErrorResponse](t, resp).Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorias_CrudCompleto(t *testing.T) {
	env := newTestEnv(t, false)

	resp := env.do(t, http.MethodPost, "/api/categories", fiber.Map{"name": "Toys", "description": "Juguetes"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.CategoryResponse](t, resp)
	assert.True(t, created.Active)
	assert.True(t, testNow.Equal(created.CreatedDate))

	env.clock.Advance(time.Hour)
	resp = env.do(t, http.MethodPut, "/api/categories/1", fiber.Map{"name": "Toys & Games", "active": false})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.CategoryResponse](t, resp)
	assert.Equal(t, "Toys & Games", updated.Name)
	assert.False(t, updated.Active)
	require.NotNil(t, updated.UpdatedDate)
	assert.True(t, testNow.Add(time.Hour).Equal(*updated.UpdatedDate))

	resp = env.do(t, http.MethodDelete, "/api/categories/1", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodDelete, "/api/categories/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, resp))
}

func TestCategorias_NombreDuplicadoRetorna409(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodPost, "/api/categories", fiber.Map{"name": "Books"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errorCode(t, resp))
}

func TestCategorias_PadrePropioRetorna400(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodPut, "/api/categories/1", fiber.Map{"name": "Electronics", "parent_category_id": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestCategorias_ActivasYSubcategorias(t *testing.T) {
	env := newTestEnv(t, true)

	active := decode[[]dto.CategoryResponse](t, env.do(t, http.MethodGet, "/api/categories/active", nil))
	assert.Len(t, active, 7)

	subs := decode[[]dto.CategoryResponse](t, env.do(t, http.MethodGet, "/api/categories/1/subcategories", nil))
	require.Len(t, subs, 2)
	names := []string{subs[0].Name, subs[1].Name}
	assert.ElementsMatch(t, []string{"Smartphones", "Laptops"}, names)
}

func TestCategorias_ListaPaginadaConBusqueda(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodGet, "/api/categories?page=0&size=2&sort=name,desc&q=clothing", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[dto.CategoryListResponse](t, resp)
	assert.Equal(t, 3, page.Page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Women's Clothing", page.Items[0].Name)
	assert.True(t, page.Page.HasMore())
}

func TestCategorias_OrdenPorCampoDesconocidoRetorna400(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodGet, "/api/categories?sort=password", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CrearConPrecioInvalido(t *testing.T) {
	env := newTestEnv(t, false)

	resp := env.do(t, http.MethodPost, "/api/products", fiber.Map{"name": "Gratis", "sku": "FREE", "price": "0"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestProductos_SkuDuplicado(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodPost, "/api/products", fiber.Map{"name": "Otro", "sku": "BOOK-JAVA", "price": "10"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestProductos_StockBajoYActualizarStock(t *testing.T) {
	env := newTestEnv(t, true)

	low := decode[[]dto.ProductResponse](t, env.do(t, http.MethodGet, "/api/products/low-stock?threshold=25", nil))
	require.Len(t, low, 1)
	assert.Equal(t, "MACBOOK-PRO", low[0].SKU)

	resp := env.do(t, http.MethodPatch, "/api/products/1/stock", fiber.Map{"stock_quantity": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decode[dto.ProductResponse](t, resp).StockQuantity)

	low = decode[[]dto.ProductResponse](t, env.do(t, http.MethodGet, "/api/products/low-stock", nil))
	require.Len(t, low, 1)
	assert.Equal(t, "IPHONE-15", low[0].SKU)
}

func TestProductos_StockSinCantidadRetorna400(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodPatch, "/api/products/1/stock", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProductos_PorCategoria(t *testing.T) {
	env := newTestEnv(t, true)

	list := decode[[]dto.ProductResponse](t, env.do(t, http.MethodGet, "/api/products/by-category/1", nil))
	assert.Len(t, list, 3)
}

func TestProductos_IDNoNumericoRetorna400(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClientes_BuscarPorEmail(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodGet, "/api/customers/by-email?email=jane.smith@example.com", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Smith", decode[dto.CustomerResponse](t, resp).LastName)

	resp = env.do(t, http.MethodGet, "/api/customers/by-email?email=nadie@example.com", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientes_EmailInvalidoRetorna400(t *testing.T) {
	env := newTestEnv(t, false)

	resp := env.do(t, http.MethodPost, "/api/customers", fiber.Map{"first_name": "A", "last_name": "B", "email": "sin-arroba"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestClientes_CuerpoMalformadoRetorna400(t *testing.T) {
	env := newTestEnv(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString("{no es json"))
	req.Header.Set("Authorization", env.token)
	req.Header.Set("Content-Type", "application/json")
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos
// ──────────────────────────────────────────────────────────────────────────────

func TestPedidos_CrearEnviarYEntregar(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodPost, "/api/orders", fiber.Map{"customer_id": 1, "total_amount": "250.00", "notes": "urgente"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, "PENDING", order.Status)
	assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, order.OrderNumber)

	env.clock.Advance(24 * time.Hour)
	resp = env.do(t, http.MethodPatch, "/api/orders/3/status", fiber.Map{"status": "SHIPPED"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	shipped := decode[dto.OrderResponse](t, resp)
	require.NotNil(t, shipped.ShippedDate)
	assert.True(t, testNow.Add(24*time.Hour).Equal(*shipped.ShippedDate))
	assert.Nil(t, shipped.DeliveredDate)

	env.clock.Advance(24 * time.Hour)
	resp = env.do(t, http.MethodPatch, "/api/orders/3/status", fiber.Map{"status": "DELIVERED"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	delivered := decode[dto.OrderResponse](t, resp)
	require.NotNil(t, delivered.DeliveredDate)

	revenue := decode[dto.RevenueResponse](t, env.do(t, http.MethodGet, "/api/orders/revenue", nil))
	assert.Equal(t, "250", revenue.TotalRevenue.String())

	count := decode[dto.CountResponse](t, env.do(t, http.MethodGet, "/api/orders/count?status=pending", nil))
	assert.Equal(t, "PENDING", count.Status)
	assert.Equal(t, int64(2), count.Count)
}

func TestPedidos_ClienteInexistenteRetorna400(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodPost, "/api/orders", fiber.Map{"customer_id": 99, "total_amount": "10"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPedidos_EstadoDesconocidoRetorna400(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodPatch, "/api/orders/1/status", fiber.Map{"status": "LOST"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPedidos_PorRangoDeFechas(t *testing.T) {
	env := newTestEnv(t, true)

	list := decode[[]dto.OrderResponse](t, env.do(t, http.MethodGet,
		"/api/orders/by-date?from=2024-06-01T00:00:00Z&to=2024-06-02T00:00:00Z", nil))
	assert.Len(t, list, 2)

	resp := env.do(t, http.MethodGet, "/api/orders/by-date?from=2024-06-02T00:00:00Z&to=2024-06-01T00:00:00Z", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/orders/by-date?from=ayer&to=hoy", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPedidos_PorClienteYEstado(t *testing.T) {
	env := newTestEnv(t, true)

	byCustomer := decode[[]dto.OrderResponse](t, env.do(t, http.MethodGet, "/api/orders/by-customer/2", nil))
	require.Len(t, byCustomer, 1)
	assert.Equal(t, "Second order", byCustomer[0].Notes)

	byStatus := decode[[]dto.OrderResponse](t, env.do(t, http.MethodGet, "/api/orders/by-status/PENDING", nil))
	assert.Len(t, byStatus, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuarios_CrearYRegistrarUltimoIngreso(t *testing.T) {
	env := newTestEnv(t, false)

	resp := env.do(t, http.MethodPost, "/api/users", fiber.Map{"username": "admin", "email": "admin@shop.com"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/users", fiber.Map{"username": "otro", "email": "ADMIN@shop.com"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	env.clock.Advance(time.Minute)
	resp = env.do(t, http.MethodPost, "/api/users/last-login", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	user := decode[dto.UserResponse](t, env.do(t, http.MethodGet, "/api/users/1", nil))
	require.NotNil(t, user.LastLoginDate)
	assert.True(t, testNow.Add(time.Minute).Equal(*user.LastLoginDate))
}

func TestUsuarios_UltimoIngresoDeDesconocidoEsNoOp(t *testing.T) {
	env := newTestEnv(t, false)

	resp := env.do(t, http.MethodPost, "/api/users/last-login", fiber.Map{"username": "fantasma"})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_Resumen(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[dto.DashboardSummaryDTO](t, resp)
	assert.True(t, summary.TotalRevenue.IsZero())
	assert.Equal(t, int64(2), summary.PendingOrders)
	assert.Equal(t, 6, summary.TotalProducts)
	assert.Equal(t, 2, summary.TotalCustomers)
	assert.Len(t, summary.RecentOrders, 2)
	assert.Empty(t, summary.LowStockProducts)
}

func TestDashboard_ReportePDF(t *testing.T) {
	env := newTestEnv(t, true)

	resp := env.do(t, http.MethodGet, "/api/dashboard/report.pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestRutas_SinTokenRetorna401(t *testing.T) {
	env := newTestEnv(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRutas_RolNoAdminRetorna403(t *testing.T) {
	env := newTestEnv(t, false)
	env.token = tokenForRole(t, "viewer")

	resp := env.do(t, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
