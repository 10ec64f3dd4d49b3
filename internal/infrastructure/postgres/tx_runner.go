package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/channelry/merchant-api/internal/application/auth"
	"github.com/channelry/merchant-api/internal/application/catalog"
	"github.com/channelry/merchant-api/internal/domain/repository"
)

// Ensure TxRunner implements catalog.TxRunner and auth.SignupTxRunner.
var _ catalog.TxRunner = (*TxRunner)(nil)
var _ auth.SignupTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de catálogo atados a la
// tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	listingRepo repository.ListingRepository,
	menuRepo repository.MenuRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invRepo := NewInventoryRepository(tx)
	listingRepo := NewListingRepository(tx)
	menuRepo := NewMenuRepository(tx)

	if err := fn(invRepo, listingRepo, menuRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSignup inicia una transacción con repos de merchant y usuario (alta de cuenta).
func (r *TxRunner) RunSignup(ctx context.Context, fn func(
	merchantRepo repository.MerchantRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	merchantRepo := NewMerchantRepository(tx)
	userRepo := NewUserRepository(tx)

	if err := fn(merchantRepo, userRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
