package sqlstore

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
)

type txStore struct {
	tx *sql.Tx
	q  *Queries
}

func newTx(tx *sql.Tx, d Dialect) *txStore {
	return &txStore{tx: tx, q: newQueries(tx, d)}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the owning Store closes the pool.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Patients() store.Patients         { return &patientsRepo{q: t.q} }
func (t *txStore) Doctors() store.Doctors           { return &doctorsRepo{q: t.q} }
func (t *txStore) Admins() store.Admins             { return &adminsRepo{q: t.q} }
func (t *txStore) Appointments() store.Appointments { return &appointmentsRepo{q: t.q} }
