package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/stretchr/testify/require"
)

func TestParseAdminPasswordStorage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    AdminPasswordStorage
		wantErr bool
	}{
		{in: "plaintext", want: AdminPasswordPlaintext},
		{in: " Hashed ", want: AdminPasswordHashed},
		{in: "", wantErr: true},
		{in: "bcrypt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAdminPasswordStorage(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRegisterAndLoginPatient(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := newAuthService(t, s, AdminPasswordPlaintext)

	p, err := svc.RegisterPatient(ctx, RegisterPatientInput{
		FirstName:   "Ann",
		LastName:    "Lee",
		PhoneNumber: "555-0100",
		Email:       "ann@x.com",
		Password:    "pw1",
	})
	require.NoError(t, err)
	require.Equal(t, "Ann Lee", p.Name)

	stored, err := s.Patients().GetPatientByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotEqual(t, "pw1", stored.PasswordHash)
	require.Contains(t, stored.PasswordHash, "$argon2id$")

	login, err := svc.LoginPatient(ctx, "ann@x.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, "Ann Lee", login.Name)
	require.Equal(t, "ann@x.com", login.Email)
	require.NotEmpty(t, login.Token.Value)

	claims, err := testTokens.NewVerifier().Verify(login.Token.Value)
	require.NoError(t, err)
	require.Equal(t, "ann@x.com", claims.Subject)
	require.Equal(t, "Ann Lee", claims.Name)
	require.Empty(t, claims.Role, "plain patient login carries no role")
	require.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	require.NotEmpty(t, claims.ID)
}

func TestRegisterPatient_DuplicateEmailAnyCase(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, newTestStore(t), AdminPasswordPlaintext)

	in := RegisterPatientInput{FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Password: "pw1"}
	_, err := svc.RegisterPatient(ctx, in)
	require.NoError(t, err)

	for _, email := range []string{"ann@x.com", "ANN@X.COM", "Ann@x.com"} {
		in.Email = email
		_, err = svc.RegisterPatient(ctx, in)
		require.ErrorIs(t, err, ErrEmailExists, email)
	}
}

func TestLoginPatient_Failures(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, newTestStore(t), AdminPasswordPlaintext)

	_, err := svc.RegisterPatient(ctx, RegisterPatientInput{FirstName: "Ann", LastName: "Lee", Email: "ann@x.com", Password: "pw1"})
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.LoginPatient(ctx, "nobody@x.com", "pw1")
		require.ErrorIs(t, err, ErrUnknownEmail)
		require.True(t, IsUnauthorized(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.LoginPatient(ctx, "ann@x.com", "pw2")
		require.ErrorIs(t, err, ErrPasswordMismatch)
		require.True(t, IsUnauthorized(err))
	})

	t.Run("email casing ignored", func(t *testing.T) {
		_, err := svc.LoginPatient(ctx, "ANN@x.com", "pw1")
		require.NoError(t, err)
	})
}

func TestDoctorRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, newTestStore(t), AdminPasswordPlaintext)

	d, err := svc.RegisterDoctor(ctx, RegisterDoctorInput{
		Name:           "Smith",
		Specialization: "Cardiology",
		Email:          "smith@clinic.test",
		Password:       "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "Dr. Smith", d.Name)
	require.Contains(t, d.PasswordHash, "$2")

	login, err := svc.LoginDoctor(ctx, "smith@clinic.test", "secret")
	require.NoError(t, err)
	require.Equal(t, d.ID, login.ID)

	claims, err := testTokens.NewVerifier().Verify(login.Token.Value)
	require.NoError(t, err)
	require.Equal(t, domain.RoleDoctor.String(), claims.Role)
	require.NotNil(t, claims.DoctorID)
	require.Equal(t, d.ID, *claims.DoctorID)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "smith@clinic.test", password: "nope"},
		{name: "unknown email", email: "jones@clinic.test", password: "secret"},
		{name: "email is case sensitive", email: "SMITH@clinic.test", password: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LoginDoctor(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestRegisterDoctor_KeepsExistingTitle(t *testing.T) {
	svc := newAuthService(t, newTestStore(t), AdminPasswordPlaintext)

	d, err := svc.RegisterDoctor(context.Background(), RegisterDoctorInput{Name: "Dr. Smith", Email: "s@x.com", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "Dr. Smith", d.Name)
}

func TestAdminAuth_Plaintext(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := newAuthService(t, s, AdminPasswordPlaintext)

	a, err := svc.RegisterAdmin(ctx, RegisterAdminInput{Name: "Root", Email: "root@clinic.test", Password: "hunter2"})
	require.NoError(t, err)

	_, err = svc.RegisterAdmin(ctx, RegisterAdminInput{Name: "Root", Email: "ROOT@clinic.test", Password: "x"})
	require.ErrorIs(t, err, ErrEmailExists)

	login, err := svc.AdminAuthLogin(ctx, "Root@Clinic.test", "hunter2")
	require.NoError(t, err)
	require.Equal(t, a.ID, login.ID)

	claims, err := testTokens.NewVerifier().Verify(login.Token.Value)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin.String(), claims.Role)

	_, err = svc.AdminAuthLogin(ctx, "root@clinic.test", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AdminAuthLogin(ctx, "ghost@clinic.test", "hunter2")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// The hashed admin login cannot read a plaintext password.
	_, err = svc.LoginAdmin(ctx, "root@clinic.test", "hunter2")
	require.ErrorIs(t, err, ErrMisconfigured)
	require.False(t, IsUnauthorized(err))
}

func TestAdminAuth_Hashed(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := newAuthService(t, s, AdminPasswordHashed)

	_, err := svc.RegisterAdmin(ctx, RegisterAdminInput{Name: "Root", Email: "root@clinic.test", Password: "hunter2"})
	require.NoError(t, err)

	stored, err := s.Admins().GetAdminByEmail(ctx, "root@clinic.test")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", stored.Password)

	_, err = svc.AdminAuthLogin(ctx, "root@clinic.test", "hunter2")
	require.NoError(t, err)

	login, err := svc.LoginAdmin(ctx, "root@clinic.test", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "Root", login.Name)

	_, err = svc.LoginAdmin(ctx, "root@clinic.test", "nope")
	require.ErrorIs(t, err, ErrPasswordMismatch)

	_, err = svc.LoginAdmin(ctx, "nobody@clinic.test", "hunter2")
	require.ErrorIs(t, err, ErrUnknownEmail)

	_, err = svc.AdminAuthLogin(ctx, "root@clinic.test", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
