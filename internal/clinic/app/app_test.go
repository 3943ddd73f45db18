package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_SQLite(t *testing.T) {
	dir := t.TempDir()

	cfg := validConfig()
	cfg.Env = "test"
	cfg.DatabaseFile = filepath.Join(dir, "clinic.db")
	cfg.PepperFile = filepath.Join(dir, "secrets", "pepper")
	cfg.BcryptCost = 4
	cfg.Argon2MemoryKiB = 1024
	cfg.Argon2Iterations = 1
	cfg.LogLevel = "error"

	application, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	require.FileExists(t, cfg.PepperFile)

	for _, path := range []string{"/livez", "/readyz"} {
		rec := httptest.NewRecorder()
		application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	application.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/doctors", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestNew_BadPepperDir(t *testing.T) {
	dir := t.TempDir()

	cfg := validConfig()
	cfg.DatabaseFile = filepath.Join(dir, "clinic.db")
	// A directory where the pepper file should be cannot be read as one.
	cfg.PepperFile = dir
	cfg.LogLevel = "error"

	_, err := New(cfg)
	require.ErrorContains(t, err, "pepper")
}
