package sqlite_test

import (
	"testing"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/sqlite"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/storetest"
	"github.com/stretchr/testify/require"
)

func newMemoryStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStoreContract(t *testing.T) {
	storetest.Run(t, newMemoryStore)
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	s := newMemoryStore(t)
	require.NoError(t, s.ApplyMigrations())
}

func TestNewStore_File(t *testing.T) {
	path := t.TempDir() + "/clinic.db"

	s, err := sqlite.NewStore("file:" + path + "?_pragma=busy_timeout(5000)")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Close())

	// Reopening sees the schema that is already there.
	s, err = sqlite.NewStore("file:" + path)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Close())
}
