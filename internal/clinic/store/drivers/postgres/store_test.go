package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/postgres"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/storetest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "postgres:16-alpine"
	postgresUser  = "clinic"
	postgresPass  = "clinic"
)

// startPostgres runs a throwaway server and returns its base URL without a
// database name.
func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in -short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPass,
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://%s:%s@%s:%s", postgresUser, postgresPass, host, port.Port())
}

func TestStoreContract(t *testing.T) {
	base := startPostgres(t)

	admin, err := postgres.NewStore(context.Background(), base+"/postgres?sslmode=disable", postgres.PoolConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = admin.Close() })

	n := 0
	storetest.Run(t, func(t *testing.T) store.Store {
		n++
		name := fmt.Sprintf("clinic_%d", n)
		_, err := admin.DB().ExecContext(context.Background(), "CREATE DATABASE "+name)
		require.NoError(t, err)

		s, err := postgres.NewStore(context.Background(), base+"/"+name+"?sslmode=disable", postgres.PoolConfig{MaxOpenConns: 8})
		require.NoError(t, err)
		require.NoError(t, s.ApplyMigrations())
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}
