package pgsql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the Postgres implementation of the repositories Store.
type Store struct {
	pool *pgxpool.Pool
}

var _ portsrepo.Store = (*Store)(nil)

// NewStore wraps an open pool. Close releases the pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Repositories returns repositories that run each statement on its own.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return newRepositoryProvider(s.pool)
}

// InTx runs fn in a read-committed transaction. Locking reads inside fn use
// FOR UPDATE, so concurrent writers to the same rows serialize.
func (s *Store) InTx(ctx context.Context, fn portsrepo.TxFunc) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() {
		if rerr := tx.Rollback(ctx); rerr != nil && !errors.Is(rerr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "Failed to rollback transaction", slog.String("error", rerr.Error()))
		}
	}()

	if err := fn(newRepositoryProvider(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() {
	database.ClosePgxPool(s.pool)
}
