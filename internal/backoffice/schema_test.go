package backoffice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice"
)

func TestSchema_SetFieldRechazaValoresFueraDeLimite(t *testing.T) {
	base := backoffice.ProductSchema.Empty()

	tests := []struct {
		name  string
		field string
		raw   string
	}{
		{"nombre largo", "name", strings.Repeat("x", 201)},
		{"sku largo", "sku", strings.Repeat("s", 51)},
		{"precio negativo", "price", "-1"},
		{"precio con tres decimales", "price", "1.999"},
		{"precio no numérico", "price", "diez"},
		{"stock negativo", "stock_quantity", "-3"},
		{"stock decimal", "stock_quantity", "1.5"},
		{"stock desbordado", "stock_quantity", "3000000000"},
		{"categoría cero", "category_id", "0"},
		{"categoría no numérica", "category_id", "abc"},
		{"activo inválido", "active", "quizás"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := backoffice.ProductSchema.SetField(base, tt.field, tt.raw)
			assert.ErrorIs(t, err, backoffice.ErrOutOfBounds)
			assert.Equal(t, base, got, "el borrador no cambia")
		})
	}
}

func TestSchema_SetFieldAceptaLimites(t *testing.T) {
	v := backoffice.ProductSchema.Empty()
	var err error

	v, err = backoffice.ProductSchema.SetField(v, "name", strings.Repeat("á", 200))
	require.NoError(t, err)
	v, err = backoffice.ProductSchema.SetField(v, "price", "9.99")
	require.NoError(t, err)
	v, err = backoffice.ProductSchema.SetField(v, "stock_quantity", "0")
	require.NoError(t, err)
	v, err = backoffice.ProductSchema.SetField(v, "category_id", "")
	require.NoError(t, err)

	assert.Equal(t, "9.99", v["price"])
	assert.Equal(t, "0", v["stock_quantity"])
}

func TestSchema_SetFieldNoMutaElOriginal(t *testing.T) {
	original := backoffice.CategorySchema.Empty()
	next, err := backoffice.CategorySchema.SetField(original, "name", "Books")
	require.NoError(t, err)
	assert.Equal(t, "", original["name"])
	assert.Equal(t, "Books", next["name"])
}

func TestSchema_CampoDesconocido(t *testing.T) {
	_, err := backoffice.CategorySchema.SetField(backoffice.Values{}, "color", "rojo")
	assert.ErrorIs(t, err, backoffice.ErrUnknownField)
}

func TestSchema_EnumSinDistinguirMayusculas(t *testing.T) {
	_, err := backoffice.OrderSchema.SetField(backoffice.Values{}, "status", "shipped")
	assert.NoError(t, err)
	_, err = backoffice.OrderSchema.SetField(backoffice.Values{}, "status", "LOST")
	assert.ErrorIs(t, err, backoffice.ErrOutOfBounds)
}

func TestSchema_EstadosDePedidoSeleccionables(t *testing.T) {
	assert.Equal(t, []string{"PENDING", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED"}, backoffice.OrderStatuses)

	_, err := backoffice.OrderSchema.SetField(backoffice.Values{}, "status", "CONFIRMED")
	assert.ErrorIs(t, err, backoffice.ErrOutOfBounds)
}

func TestSchema_EmptyYForUpdate(t *testing.T) {
	empty := backoffice.OrderSchema.Empty()
	assert.Contains(t, empty, "customer_id")
	assert.NotContains(t, empty, "status", "status solo se edita")

	update := backoffice.OrderSchema.ForUpdate(backoffice.Values{
		"customer_id": "1", "total_amount": "10", "status": "PENDING", "notes": "n",
	})
	assert.Equal(t, backoffice.Values{"status": "PENDING", "notes": "n"}, update)
}

func TestReference_VacioEsNil(t *testing.T) {
	id, err := backoffice.Reference("")
	require.NoError(t, err)
	assert.Nil(t, id, "ninguna referencia, nunca 0")

	id, err = backoffice.Reference("7")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(7), *id)

	_, err = backoffice.Reference("0")
	assert.ErrorIs(t, err, backoffice.ErrOutOfBounds)
}
