package clinic_test

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/clinic/internal/clinic/app"
	"github.com/aussiebroadwan/clinic/pkg/clinicsdk"
	"github.com/stretchr/testify/require"
)

/*
 * Helpers for the clinic end-to-end tests. Each test gets a fresh
 * application on a temporary SQLite file served over a real listener.
 */

const (
	jwtSecret = "e2e-secret-0123456789abcdef012345"

	adminEmail    = "root@clinic.test"
	adminPassword = "Admin123!"
)

// setupClinic starts the full application and returns an SDK client for it.
func setupClinic(t *testing.T, env map[string]string) *clinicsdk.Client {
	t.Helper()

	// Keep the default suite clear of the production limits.
	defaults := map[string]string{
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
	}
	for k, v := range defaults {
		if _, ok := env[k]; !ok {
			t.Setenv(k, v)
		}
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	dir := t.TempDir()
	t.Setenv("JWT_SECRET_KEY", jwtSecret)
	t.Setenv("ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DATABASE_FILE", filepath.Join(dir, "clinic.db"))
	t.Setenv("PEPPER_FILE", filepath.Join(dir, "pepper"))
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("ARGON2_MEMORY_KIB", "1024")
	t.Setenv("ARGON2_ITERATIONS", "1")

	cfg, err := app.LoadConfig()
	require.NoError(t, err)

	application, err := app.New(cfg)
	require.NoError(t, err)

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Shutdown()
	})

	return clinicsdk.NewClient(srv.URL)
}

// requireAPIError asserts err is an *APIError with the given status and
// message.
func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var apiErr *clinicsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, apiErr.Error())
	if message != "" {
		require.Equal(t, message, apiErr.Message)
	}
}
