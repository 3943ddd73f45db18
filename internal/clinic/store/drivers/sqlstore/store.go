package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
)

type Store struct {
	db *sql.DB
	d  Dialect
	q  *Queries
}

// New wraps an open pool. The Store takes ownership and closes db on Close.
func New(db *sql.DB, d Dialect) *Store {
	return &Store{db: db, d: d, q: newQueries(db, d)}
}

// DB exposes the pool for driver-level setup.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ApplyMigrations() error {
	if s.d.Migrate == nil {
		return fmt.Errorf("sqlstore: %s dialect has no migrations", s.d.Name)
	}
	return s.d.Migrate(s.db)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx, s.d), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Patients() store.Patients         { return &patientsRepo{q: s.q} }
func (s *Store) Doctors() store.Doctors           { return &doctorsRepo{q: s.q} }
func (s *Store) Admins() store.Admins             { return &adminsRepo{q: s.q} }
func (s *Store) Appointments() store.Appointments { return &appointmentsRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

func errAlreadyExists(cause error) error {
	return fmt.Errorf("%w: %v", store.ErrAlreadyExists, cause)
}
