package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/infrastructure/memory"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
)

func newProductUC(t *testing.T) (*usecase.ProductUseCase, int64, *recordingPublisher) {
	t.Helper()
	store := memory.NewStore()
	category := &entity.Category{Name: "Books", Active: true, CreatedDate: testNow}
	require.NoError(t, store.Categories.Create(context.Background(), category))
	events := &recordingPublisher{}
	return usecase.NewProductUseCase(store.Products, store.Categories, clock.NewFake(testNow), events), category.ID, events
}

func productRequest(sku string, stock int) dto.ProductRequest {
	return dto.ProductRequest{Name: "Producto " + sku, SKU: sku, Price: decimal.RequireFromString("19.90"), StockQuantity: stock}
}

func TestProductUseCase_Validaciones(t *testing.T) {
	uc, _, _ := newProductUC(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*dto.ProductRequest)
	}{
		{"sin nombre", func(r *dto.ProductRequest) { r.Name = "" }},
		{"sin sku", func(r *dto.ProductRequest) { r.SKU = "" }},
		{"precio bajo el mínimo", func(r *dto.ProductRequest) { r.Price = decimal.RequireFromString("0.009") }},
		{"stock negativo", func(r *dto.ProductRequest) { r.StockQuantity = -1 }},
		{"categoría inexistente", func(r *dto.ProductRequest) { r.CategoryID = ptr(int64(99)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := productRequest("SKU-1", 1)
			tt.mutate(&in)
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestProductUseCase_PrecioMinimoAceptado(t *testing.T) {
	uc, categoryID, events := newProductUC(t)

	in := productRequest("CHEAP", 0)
	in.Price = entity.MinProductPrice
	in.CategoryID = &categoryID
	got, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.New(1, -2)))
	assert.True(t, got.Active)
	assert.Len(t, events.actions(), 1)
}

func TestProductUseCase_SkuDuplicado(t *testing.T) {
	uc, _, _ := newProductUC(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, productRequest("SKU-1", 1))
	require.NoError(t, err)
	_, err = uc.Create(ctx, productRequest("SKU-1", 2))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	second, err := uc.Create(ctx, productRequest("SKU-2", 2))
	require.NoError(t, err)
	_, err = uc.Update(ctx, second.ID, productRequest("SKU-1", 2))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUseCase_StockYConsultas(t *testing.T) {
	uc, categoryID, _ := newProductUC(t)
	ctx := context.Background()

	for i, stock := range []int{50, 5, 10, 0} {
		in := productRequest(string(rune('A'+i)), stock)
		if i%2 == 0 {
			in.CategoryID = &categoryID
		}
		_, err := uc.Create(ctx, in)
		require.NoError(t, err)
	}

	low, err := uc.GetLowStock(ctx, 10)
	require.NoError(t, err)
	require.Len(t, low, 3)
	assert.Equal(t, []int{0, 5, 10}, []int{low[0].StockQuantity, low[1].StockQuantity, low[2].StockQuantity})

	_, err = uc.GetLowStock(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	byCategory, err := uc.GetByCategory(ctx, categoryID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	updated, err := uc.UpdateStock(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.StockQuantity)
	assert.NotNil(t, updated.UpdatedDate)

	_, err = uc.UpdateStock(ctx, 1, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.UpdateStock(ctx, 404, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_ActivosExcluyeInactivos(t *testing.T) {
	uc, _, _ := newProductUC(t)
	ctx := context.Background()

	a, err := uc.Create(ctx, productRequest("A", 1))
	require.NoError(t, err)
	_, err = uc.Create(ctx, productRequest("B", 1))
	require.NoError(t, err)

	in := productRequest("A", 1)
	in.Active = ptr(false)
	_, err = uc.Update(ctx, a.ID, in)
	require.NoError(t, err)

	active, err := uc.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "B", active[0].SKU)
}
