package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexusgestion/admin-api/internal/application/seed"
	"github.com/nexusgestion/admin-api/internal/domain/repository"
)

// Ensure TxRunner implements seed.TxRunner.
var _ seed.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	usuarioRepo repository.UsuarioRepository,
	rolRepo repository.RolRepository,
	permisoRepo repository.PermisoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	clienteRepo := NewClienteRepository(tx)
	usuarioRepo := NewUsuarioRepository(tx)
	rolRepo := NewRolRepository(tx)
	permisoRepo := NewPermisoRepository(tx)

	if err := fn(clienteRepo, usuarioRepo, rolRepo, permisoRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
