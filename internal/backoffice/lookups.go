package backoffice

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/dto"
)

// Nombres de las listas de lookup.
const (
	LookupCategories = "categories"
	LookupCustomers  = "customers"
)

// CategoryDirectory consulta de categorías activas.
type CategoryDirectory interface {
	ActiveCategories(ctx context.Context) ([]dto.CategoryResponse, error)
}

// CustomerDirectory consulta de clientes activos.
type CustomerDirectory interface {
	ActiveCustomers(ctx context.Context) ([]dto.CustomerResponse, error)
}

// NewCategoryLookup lista de categorías activas etiquetadas por nombre.
func NewCategoryLookup(src CategoryDirectory, n Notifier) *Lookup {
	return NewLookup(LookupCategories, src.ActiveCategories,
		func(c dto.CategoryResponse) int64 { return c.ID },
		func(c dto.CategoryResponse) string { return c.Name },
		n)
}

// NewCustomerLookup lista de clientes activos etiquetados por nombre completo.
func NewCustomerLookup(src CustomerDirectory, n Notifier) *Lookup {
	return NewLookup(LookupCustomers, src.ActiveCustomers,
		func(c dto.CustomerResponse) int64 { return c.ID },
		dto.CustomerResponse.FullName,
		n)
}

func labelIn(lookups Lookups, name string, id *int64) string {
	if id == nil {
		return ""
	}
	if l, ok := lookups[name]; ok {
		return l.Label(id)
	}
	return UnknownLabel
}

func idText(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func boolText(b bool) string {
	return strconv.FormatBool(b)
}

func bound(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}
