package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"eventlane/internal/domain"
)

type txCtxKey struct{}

// queryer is satisfied by both *sql.DB and *sql.Tx, letting repositories join
// a transaction carried by the context.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// q returns the transaction from ctx when present, the bare pool otherwise.
func q(ctx context.Context, db *sql.DB) queryer {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

type txManager struct {
	DB *sql.DB
}

// NewTxManager returns a domain.TxManager over db. Repository calls made with
// the context passed to fn run inside the same transaction, so row locks taken
// with SELECT ... FOR UPDATE hold until commit.
func NewTxManager(db *sql.DB) domain.TxManager {
	return &txManager{DB: db}
}

func (m *txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
