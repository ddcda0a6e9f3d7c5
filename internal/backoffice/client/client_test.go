package client_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/analytics"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/seed"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice"
	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice/client"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/memory"
	"github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/ecommerce-backoffice/internal/interfaces/http"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
	pkgjwt "github.com/jhoicas/ecommerce-backoffice/pkg/jwt"
)

const testSecret = "client-test-secret"

// fiberTransport entrega cada request directamente a la app Fiber, sin abrir sockets.
type fiberTransport struct {
	app *fiber.App
}

func (f fiberTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return f.app.Test(req, -1)
}

// newClient arma el servicio completo en memoria y un cliente autenticado contra él.
func newClient(t *testing.T, seeded bool, role string) *client.Client {
	t.Helper()
	store := memory.NewStore()
	clk := clock.NewFake(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
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
		JWTSecret:   testSecret,
	})

	token := ""
	if role != "" {
		var err error
		token, err = pkgjwt.Generate(testSecret, "admin", role, "client-test", 60)
		require.NoError(t, err)
	}
	return client.New("http://backoffice.test/", token,
		client.WithHTTPClient(&http.Client{Transport: fiberTransport{app: app}}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorias_AltaDesdeLaVista(t *testing.T) {
	c := newClient(t, false, "admin")
	ctx := context.Background()
	notifier := &backoffice.RecordingNotifier{}
	lookups := backoffice.Lookups{backoffice.LookupCategories: backoffice.NewCategoryLookup(c, notifier)}
	view, err := backoffice.NewView[dto.CategoryResponse, dto.CategoryRequest](backoffice.Categories, c.Categories(), lookups,
		backoffice.ViewConfig{PageSize: 20, Location: time.UTC, Notifier: notifier})
	require.NoError(t, err)
	require.NoError(t, view.Mount(ctx))
	assert.Empty(t, view.State().Rows)

	require.NoError(t, view.Set("name", "Electronics"))
	require.NoError(t, view.Set("description", "Gadgets"))
	created, err := view.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, created.Active)

	st := view.State()
	require.Len(t, st.Rows, 1)
	assert.Equal(t, []string{"Electronics", "Gadgets", "", "Yes", "Jun 1, 2024, 10:00:00 AM", "Edit"}, st.Rows[0].Cells)
	assert.Equal(t, []backoffice.Option{{ID: created.ID, Label: "Electronics"}}, st.Lookups[backoffice.LookupCategories])
	assert.Empty(t, notifier.Events())

	require.NoError(t, view.Set("name", "Electronics"))
	_, err = view.Submit(ctx)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "Electronics", view.State().Draft["name"], "el borrador se conserva")
	assert.Equal(t, []string{"create category"}, notifier.Ops())
}

func TestProductos_StockBajoApareceEnElDashboard(t *testing.T) {
	c := newClient(t, true, "admin")
	ctx := context.Background()
	lookups := backoffice.Lookups{backoffice.LookupCategories: backoffice.NewCategoryLookup(c, nil)}
	view, err := backoffice.NewView[dto.ProductResponse, dto.ProductRequest](backoffice.Products, c.Products(), lookups,
		backoffice.ViewConfig{PageSize: 50, Location: time.UTC})
	require.NoError(t, err)
	require.NoError(t, view.Mount(ctx))
	assert.Len(t, view.State().Rows, 6)

	for field, raw := range map[string]string{
		"name": "Widget", "sku": "WIDGET-1", "price": "9.99", "stock_quantity": "5", "category_id": "1",
	} {
		require.NoError(t, view.Set(field, raw), field)
	}
	_, err = view.Submit(ctx)
	require.NoError(t, err)

	rows := view.State().Rows
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"Widget", "WIDGET-1", "$9.99", "5", "Electronics"}, rows[6].Cells[:5])

	data := backoffice.NewDashboard(c, 0, backoffice.DefaultLowStockThreshold, nil).Load(ctx)
	require.True(t, data.LowStock.OK())
	require.Len(t, data.LowStock.Value, 1)
	assert.Equal(t, "WIDGET-1", data.LowStock.Value[0].SKU)
	assert.Equal(t, 7, data.Products.Value.Total)
}

func TestPedidos_EnvioReduceLosPendientes(t *testing.T) {
	c := newClient(t, true, "admin")
	ctx := context.Background()
	dashboard := backoffice.NewDashboard(c, 0, backoffice.DefaultLowStockThreshold, nil)

	before := dashboard.Load(ctx)
	require.True(t, before.PendingOrders.OK())
	assert.Equal(t, int64(2), before.PendingOrders.Value)
	assert.Len(t, before.RecentOrders.Value, 2)

	lookups := backoffice.Lookups{backoffice.LookupCustomers: backoffice.NewCustomerLookup(c, nil)}
	view, err := backoffice.NewView[dto.OrderResponse, dto.OrderRequest](backoffice.Orders, c.Orders(), lookups,
		backoffice.ViewConfig{PageSize: 20, Location: time.UTC})
	require.NoError(t, err)
	require.NoError(t, view.Mount(ctx))
	rows := view.State().Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "John Doe", rows[0].Cells[1])
	assert.Equal(t, "-", rows[0].Cells[5])

	require.NoError(t, view.Edit(rows[0].ID))
	assert.ErrorIs(t, view.EditField("customer_id", "2"), backoffice.ErrUnknownField)
	require.NoError(t, view.EditField("status", "shipped"))
	require.NoError(t, view.Save(ctx))

	shipped := view.State().Rows[0]
	assert.Equal(t, "SHIPPED", shipped.Cells[3])
	assert.Equal(t, "Jun 1, 2024, 10:00:00 AM", shipped.Cells[5])

	after := dashboard.Load(ctx)
	assert.Equal(t, int64(1), after.PendingOrders.Value)
}

func TestReporteDelDashboard(t *testing.T) {
	c := newClient(t, true, "admin")

	raw, err := c.DashboardReport(context.Background())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Traducción de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestErrores_SeComparanConLosDeDominio(t *testing.T) {
	c := newClient(t, true, "admin")
	ctx := context.Background()
	categories := c.Categories()

	created, err := categories.Create(ctx, dto.CategoryRequest{Name: "Garden"})
	require.NoError(t, err)
	require.NoError(t, categories.Delete(ctx, created.ID))

	err = categories.Delete(ctx, created.ID)
	assert.True(t, client.IsNotFound(err))
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)

	_, err = categories.Create(ctx, dto.CategoryRequest{Name: "Books"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	_, err = c.Products().Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.LowStockProducts(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestErrores_SinTokenYRolInsuficiente(t *testing.T) {
	_, err := newClient(t, true, "").ActiveCategories(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = newClient(t, true, "viewer").ActiveCategories(context.Background())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
