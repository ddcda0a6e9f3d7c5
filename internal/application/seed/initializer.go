// Package seed carga el catálogo de ejemplo cuando la base está vacía.
package seed

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/usecase"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/entity"
	"github.com/jhoicas/ecommerce-backoffice/internal/domain/repository"
	"github.com/jhoicas/ecommerce-backoffice/pkg/clock"
	"github.com/shopspring/decimal"
)

// Repositories repositorios atados a la misma transacción.
type Repositories struct {
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Customers  repository.CustomerRepository
	Orders     repository.OrderRepository
}

// TxRunner ejecuta fn dentro de una transacción; si fn falla no queda nada persistido.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// Initializer carga los datos de ejemplo.
type Initializer struct {
	tx    TxRunner
	clock clock.Clock
}

// NewInitializer construye el inicializador.
func NewInitializer(tx TxRunner, clk clock.Clock) *Initializer {
	return &Initializer{tx: tx, clock: clk}
}

type categorySeed struct {
	name, description, parent string
}

type productSeed struct {
	name, description, sku, price string
	stock                         int
	category                      string
}

var (
	sampleCategories = []categorySeed{
		{"Electronics", "Electronic devices and gadgets", ""},
		{"Clothing", "Apparel and fashion items", ""},
		{"Books", "Books and publications", ""},
		{"Smartphones", "Mobile phones and accessories", "Electronics"},
		{"Laptops", "Portable computers", "Electronics"},
		{"Men's Clothing", "Clothing for men", "Clothing"},
		{"Women's Clothing", "Clothing for women", "Clothing"},
	}
	sampleProducts = []productSeed{
		{"iPhone 15", "Latest iPhone model", "IPHONE-15", "999.99", 50, "Electronics"},
		{"MacBook Pro", "Professional laptop", "MACBOOK-PRO", "1999.99", 25, "Electronics"},
		{"Samsung Galaxy", "Android smartphone", "SAMSUNG-GALAXY", "799.99", 30, "Electronics"},
		{"Men's T-Shirt", "Cotton t-shirt for men", "TSHIRT-MEN", "29.99", 100, "Men's Clothing"},
		{"Women's Dress", "Elegant dress for women", "DRESS-WOMEN", "89.99", 75, "Women's Clothing"},
		{"Programming Book", "Learn Java programming", "BOOK-JAVA", "49.99", 200, "Books"},
	}
	sampleCustomers = []entity.Customer{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Phone: "+1234567890",
			Address: "123 Main St", City: "New York", State: "NY", PostalCode: "10001", Country: "USA"},
		{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Phone: "+0987654321",
			Address: "456 Oak Ave", City: "Los Angeles", State: "CA", PostalCode: "90210", Country: "USA"},
	}
	// Un pedido por cliente de ejemplo, en el mismo orden.
	sampleOrders = []struct{ total, address, notes string }{
		{"1029.98", "123 Main St, New York, NY 10001", "First order"},
		{"119.98", "456 Oak Ave, Los Angeles, CA 90210", "Second order"},
	}
)

// Run carga los datos de ejemplo si no hay categorías. Devuelve true si sembró.
func (i *Initializer) Run(ctx context.Context, categories repository.CategoryRepository) (bool, error) {
	n, err := categories.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: contar categorías: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if err := i.tx.RunInTx(ctx, i.load); err != nil {
		return false, fmt.Errorf("seed: %w", err)
	}
	return true, nil
}

func (i *Initializer) load(ctx context.Context, repos Repositories) error {
	now := i.clock.Now()

	ids := make(map[string]int64, len(sampleCategories))
	for _, s := range sampleCategories {
		c := &entity.Category{Name: s.name, Description: s.description, Active: true, CreatedDate: now}
		if s.parent != "" {
			parentID := ids[s.parent]
			c.ParentCategoryID = &parentID
		}
		if err := repos.Categories.Create(ctx, c); err != nil {
			return fmt.Errorf("categoría %q: %w", s.name, err)
		}
		ids[s.name] = c.ID
	}

	for _, s := range sampleProducts {
		categoryID := ids[s.category]
		p := &entity.Product{
			Name:          s.name,
			Description:   s.description,
			SKU:           s.sku,
			Price:         decimal.RequireFromString(s.price),
			StockQuantity: s.stock,
			CategoryID:    &categoryID,
			Active:        true,
			CreatedDate:   now,
		}
		if err := repos.Products.Create(ctx, p); err != nil {
			return fmt.Errorf("producto %q: %w", s.sku, err)
		}
	}

	for idx, tmpl := range sampleCustomers {
		c := tmpl
		c.Active = true
		c.CreatedDate = now
		if err := repos.Customers.Create(ctx, &c); err != nil {
			return fmt.Errorf("cliente %q: %w", c.Email, err)
		}
		o := sampleOrders[idx]
		order := &entity.Order{
			OrderNumber:     usecase.NewOrderNumber(),
			CustomerID:      c.ID,
			TotalAmount:     decimal.RequireFromString(o.total),
			Status:          entity.OrderPending,
			ShippingAddress: o.address,
			BillingAddress:  o.address,
			Notes:           o.notes,
			OrderDate:       now,
			CreatedDate:     now,
		}
		if err := repos.Orders.Create(ctx, order); err != nil {
			return fmt.Errorf("pedido de %q: %w", c.Email, err)
		}
	}
	return nil
}
