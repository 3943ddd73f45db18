package service

import (
	"testing"

	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/internal/clinic/store/drivers/sqlite"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testTokens = jwtx.IssuerConfig{
	Secret:   []byte("0123456789abcdef0123456789abcdef"),
	Issuer:   "clinic-test",
	Audience: []string{"clinic-test-users"},
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	return s
}

// fastArgon keeps the scheme but drops the cost so tests stay quick.
func fastArgon() *cryptox.Argon2Hasher {
	return &cryptox.Argon2Hasher{Pepper: "test-pepper", Memory: 1024, Iterations: 1, Parallelism: 1}
}

func newAuthService(t *testing.T, s store.Store, mode AdminPasswordStorage) *AuthService {
	t.Helper()

	issuer, err := jwtx.NewIssuer(testTokens)
	require.NoError(t, err)

	return &AuthService{
		Store:          s,
		Tokens:         issuer,
		PatientHasher:  fastArgon(),
		DoctorHasher:   cryptox.NewBcryptHasher(bcrypt.MinCost),
		AdminPasswords: mode,
	}
}
