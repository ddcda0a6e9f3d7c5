package backoffice_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice"
)

type categoryView = backoffice.View[dto.CategoryResponse, dto.CategoryRequest]

func newCategoryView(t *testing.T, gw *fakeCategories, n backoffice.Notifier) *categoryView {
	t.Helper()
	lookups := backoffice.Lookups{backoffice.LookupCategories: backoffice.NewCategoryLookup(gw, n)}
	view, err := backoffice.NewView[dto.CategoryResponse, dto.CategoryRequest](backoffice.Categories, gw, lookups,
		backoffice.ViewConfig{PageSize: 10, Location: time.UTC, Notifier: n})
	require.NoError(t, err)
	return view
}

func TestView_FaltaLookup(t *testing.T) {
	_, err := backoffice.NewView[dto.CategoryResponse, dto.CategoryRequest](backoffice.Categories, &fakeCategories{}, nil, backoffice.ViewConfig{})
	assert.Error(t, err)
}

func TestView_MountCargaLookupsAntesQueLaGrilla(t *testing.T) {
	gw := &fakeCategories{}
	gw.seed("Electronics", "Books")
	view := newCategoryView(t, gw, nil)

	require.NoError(t, view.Mount(context.Background()))
	assert.Equal(t, []string{"active", "list"}, gw.Calls())

	st := view.State()
	assert.Equal(t, []string{"Category Name", "Description", "Parent Category", "Active", "Created Date", "Actions"}, st.Headers)
	require.Len(t, st.Rows, 2)
	assert.Equal(t, []string{"Electronics", "", "", "Yes", "Mar 5, 2024, 2:07:09 PM", "Edit"}, st.Rows[0].Cells)
	assert.Len(t, st.Lookups[backoffice.LookupCategories], 2)
}

func TestView_AltaEjecutaCallbackYDespuesEfectos(t *testing.T) {
	gw := &fakeCategories{}
	view := newCategoryView(t, gw, nil)
	ctx := context.Background()
	require.NoError(t, view.Mount(ctx))

	var callsAtCallback []string
	view.OnCreated(func(dto.CategoryResponse) { callsAtCallback = gw.Calls() })

	require.NoError(t, view.Set("name", "Electronics"))
	_, err := view.Submit(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"active", "list", "create"}, callsAtCallback, "el callback corre antes del refresh")
	assert.Equal(t, []string{"active", "list", "create", "list", "active"}, gw.Calls())

	st := view.State()
	require.Len(t, st.Rows, 1)
	assert.Equal(t, "Electronics", st.Rows[0].Cells[0])
	assert.Equal(t, "", st.Draft["name"])
	assert.Len(t, st.Lookups[backoffice.LookupCategories], 1)
}

func TestView_EdicionYBorrado(t *testing.T) {
	gw := &fakeCategories{}
	gw.seed("Electronics", "Books")
	view := newCategoryView(t, gw, nil)
	ctx := context.Background()
	require.NoError(t, view.Mount(ctx))

	var outcomes []backoffice.Outcome
	view.OnChanged(func(s backoffice.DialogState[dto.CategoryResponse]) { outcomes = append(outcomes, s.Outcome) })

	require.NoError(t, view.Edit(2))
	require.NoError(t, view.EditField("parent_category_id", "1"))
	require.NoError(t, view.Save(ctx))

	st := view.State()
	assert.False(t, st.Dialog.Open)
	assert.Equal(t, "Electronics", st.Rows[1].Cells[2], "la grilla muestra el padre por nombre")

	require.NoError(t, view.Edit(1))
	require.NoError(t, view.Delete(ctx, false))
	assert.True(t, view.State().Dialog.Open, "sin confirmación sigue abierto")
	require.NoError(t, view.Delete(ctx, true))

	st = view.State()
	require.Len(t, st.Rows, 1)
	assert.Equal(t, "Books", st.Rows[0].Cells[0])
	assert.Equal(t, "Unknown", st.Rows[0].Cells[2], "padre borrado")
	assert.Equal(t, []backoffice.Outcome{backoffice.OutcomeUpdated, backoffice.OutcomeDeleted}, outcomes)
}

func TestView_OpcionesDePadreExcluyenLaCategoriaEditada(t *testing.T) {
	gw := &fakeCategories{}
	gw.seed("Electronics", "Books", "Music")
	view := newCategoryView(t, gw, nil)
	require.NoError(t, view.Mount(context.Background()))

	assert.Len(t, view.Options("parent_category_id"), 3)

	require.NoError(t, view.Edit(2))
	options := view.Options("parent_category_id")
	require.Len(t, options, 2)
	for _, o := range options {
		assert.NotEqual(t, int64(2), o.ID)
	}
	assert.Nil(t, view.Options("name"))
}

func TestView_FalloDeGuardadoMantieneDialogo(t *testing.T) {
	gw := &fakeCategories{}
	gw.seed("Electronics")
	notifier := &backoffice.RecordingNotifier{}
	view := newCategoryView(t, gw, notifier)
	ctx := context.Background()
	require.NoError(t, view.Mount(ctx))

	require.NoError(t, view.Edit(1))
	require.NoError(t, view.EditField("name", "Electrónica"))
	gw.failUpdate = errors.New("503")

	assert.Error(t, view.Save(ctx))
	st := view.State()
	assert.True(t, st.Dialog.Open)
	assert.Equal(t, "Electrónica", st.Dialog.Values["name"])
	assert.Equal(t, "Electronics", st.Rows[0].Cells[0], "sin mutación optimista")
	assert.Equal(t, []string{"update category"}, notifier.Ops())
}

func TestView_EditFueraDeVentana(t *testing.T) {
	view := newCategoryView(t, &fakeCategories{}, nil)
	require.NoError(t, view.Mount(context.Background()))
	assert.ErrorIs(t, view.Edit(42), backoffice.ErrNotInWindow)
}

func TestView_FalloDeListadoSeNotifica(t *testing.T) {
	gw := &fakeCategories{failList: errors.New("sin red")}
	notifier := &backoffice.RecordingNotifier{}
	view := newCategoryView(t, gw, notifier)

	assert.Error(t, view.Mount(context.Background()))
	assert.Equal(t, []string{"list category"}, notifier.Ops())
	assert.Empty(t, view.State().Rows)
}

// ─── Lista de clientes compartida entre vistas ───────────────────────────────

func TestView_MutacionDeClienteRecargaLaListaDelPedido(t *testing.T) {
	ctx := context.Background()
	customers := &fakeCustomers{}
	orders := &fakeOrders{items: []dto.OrderResponse{
		{ID: 7, OrderNumber: "ORD-0000007", CustomerID: 1, Status: "PENDING", OrderDate: testNow},
	}}
	lookups := backoffice.Lookups{backoffice.LookupCustomers: backoffice.NewCustomerLookup(customers, nil)}
	cfg := backoffice.ViewConfig{PageSize: 10, Location: time.UTC}

	orderView, err := backoffice.NewView[dto.OrderResponse, dto.OrderRequest](backoffice.Orders, orders, lookups, cfg)
	require.NoError(t, err)
	customerView, err := backoffice.NewView[dto.CustomerResponse, dto.CustomerRequest](backoffice.Customers, customers, lookups, cfg)
	require.NoError(t, err)

	require.NoError(t, orderView.Mount(ctx))
	require.NoError(t, customerView.Mount(ctx))
	assert.Equal(t, 1, customers.ActiveFetches())
	assert.Equal(t, backoffice.UnknownLabel, orderView.State().Rows[0].Cells[1])

	require.NoError(t, customerView.Set("first_name", "Ana"))
	require.NoError(t, customerView.Set("last_name", "Ruiz"))
	require.NoError(t, customerView.Set("email", "a@x.io"))
	created, err := customerView.Submit(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, customers.ActiveFetches())
	assert.Len(t, orderView.State().Lookups[backoffice.LookupCustomers], 1)
	assert.Equal(t, "Ana Ruiz", orderView.State().Rows[0].Cells[1])

	require.NoError(t, customerView.Edit(created.ID))
	require.NoError(t, customerView.EditField("active", "false"))
	require.NoError(t, customerView.Save(ctx))

	assert.Equal(t, 3, customers.ActiveFetches())
	assert.Empty(t, orderView.State().Lookups[backoffice.LookupCustomers])
	assert.Equal(t, backoffice.UnknownLabel, orderView.State().Rows[0].Cells[1])
}

func TestView_FaltaLookupRecargadaPorEfectos(t *testing.T) {
	_, err := backoffice.NewView[dto.CustomerResponse, dto.CustomerRequest](backoffice.Customers, &fakeCustomers{}, backoffice.Lookups{},
		backoffice.ViewConfig{})
	assert.Error(t, err)
}
