package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ecommerce-backoffice/internal/application/seed"
)

var _ seed.TxRunner = (*TxRunner)(nil)

// TxRunner corre la carga inicial en una sola transacción: o quedan todos los datos o ninguno.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInTx entrega a fn repositorios atados a la transacción. Un error de fn hace rollback.
func (r *TxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context, repos seed.Repositories) error) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, seed.Repositories{
			Categories: NewCategoryRepository(tx),
			Products:   NewProductRepository(tx),
			Customers:  NewCustomerRepository(tx),
			Orders:     NewOrderRepository(tx),
		})
	})
	if err != nil {
		return fmt.Errorf("postgres: transacción: %w", err)
	}
	return nil
}
