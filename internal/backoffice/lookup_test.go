package backoffice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-backoffice/internal/backoffice"
)

func TestLookup_Etiquetas(t *testing.T) {
	gw := &fakeCategories{}
	gw.seed("Electronics", "Books")
	lookup := backoffice.NewCategoryLookup(gw, nil)
	require.NoError(t, lookup.Reload(context.Background()))

	known, unknown := int64(2), int64(99)
	assert.Equal(t, "Books", lookup.Label(&known))
	assert.Equal(t, "Unknown", lookup.Label(&unknown))
	assert.Equal(t, "", lookup.Label(nil))

	assert.Equal(t, []backoffice.Option{{ID: 1, Label: "Electronics"}}, lookup.OptionsExcluding(2))
	assert.Len(t, lookup.Options(), 2, "OptionsExcluding no altera la lista")
}

func TestLookup_FalloDejaListaVaciaYNotifica(t *testing.T) {
	gw := &fakeCategories{}
	gw.seed("Electronics")
	notifier := &backoffice.RecordingNotifier{}
	lookup := backoffice.NewCategoryLookup(gw, notifier)
	ctx := context.Background()

	require.NoError(t, lookup.Reload(ctx))
	require.Len(t, lookup.Options(), 1)

	gw.failActive = errors.New("sin red")
	assert.Error(t, lookup.Reload(ctx))
	assert.Empty(t, lookup.Options())
	id := int64(1)
	assert.Equal(t, "Unknown", lookup.Label(&id), "nunca falla al etiquetar")
	assert.Equal(t, []string{"lookup categories"}, notifier.Ops())
}

func TestLookup_ReemplazaListaCompleta(t *testing.T) {
	gw := &fakeCategories{}
	gw.seed("A", "B")
	lookup := backoffice.NewCategoryLookup(gw, nil)
	ctx := context.Background()
	require.NoError(t, lookup.Reload(ctx))

	gw.items[0].Active = false
	require.NoError(t, lookup.Reload(ctx))
	assert.Equal(t, []backoffice.Option{{ID: 2, Label: "B"}}, lookup.Options())
}
