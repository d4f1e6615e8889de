package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// Transactor runs a unit of work inside one database transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(executor SQLExecutor) error) error
}

type sqlTransactor struct {
	db *sql.DB
}

// NewTransactor wraps a connection pool.
func NewTransactor(db *sql.DB) Transactor {
	return &sqlTransactor{db: db}
}

// InTx commits when fn returns nil and rolls back otherwise.
func (t *sqlTransactor) InTx(ctx context.Context, fn func(executor SQLExecutor) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", ErrDatabaseError, err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing transaction: %v", ErrDatabaseError, err)
	}
	return nil
}
