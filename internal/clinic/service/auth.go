package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/cryptox"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// AdminPasswordStorage selects how /api/AdminAuth stores and checks admin
// passwords.
type AdminPasswordStorage string

const (
	// AdminPasswordPlaintext stores the password as supplied. Accounts made
	// this way cannot use the hashed admin-login endpoint.
	AdminPasswordPlaintext AdminPasswordStorage = "plaintext"

	// AdminPasswordHashed stores an argon2id hash, the same scheme as
	// patients.
	AdminPasswordHashed AdminPasswordStorage = "hashed"
)

// ParseAdminPasswordStorage accepts "plaintext" or "hashed".
func ParseAdminPasswordStorage(s string) (AdminPasswordStorage, error) {
	switch m := AdminPasswordStorage(strings.ToLower(strings.TrimSpace(s))); m {
	case AdminPasswordPlaintext, AdminPasswordHashed:
		return m, nil
	default:
		return "", fmt.Errorf("unknown admin password storage %q", s)
	}
}

type AuthService struct {
	Store  store.Store
	Tokens *jwtx.Issuer

	// PatientHasher is also used for admins.
	PatientHasher cryptox.Hasher
	DoctorHasher  cryptox.Hasher

	AdminPasswords AdminPasswordStorage
}

type RegisterPatientInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Password    string
}

type RegisterDoctorInput struct {
	Name           string
	Specialization string
	Contact        string
	Email          string
	Password       string
}

type RegisterAdminInput struct {
	Name     string
	Email    string
	Password string
}

// Login is the outcome of a successful login.
type Login struct {
	Token jwtx.Token
	ID    int64
	Name  string
	Email string
}

// RegisterPatient creates a patient account. The email must not already be
// registered under any casing.
func (s *AuthService) RegisterPatient(ctx context.Context, in RegisterPatientInput) (domain.Patient, error) {
	l := slogx.FromContext(ctx)

	exists, err := s.Store.Patients().PatientEmailExists(ctx, in.Email)
	if err != nil {
		return domain.Patient{}, err
	}
	if exists {
		return domain.Patient{}, ErrEmailExists
	}

	hash, err := s.PatientHasher.Hash(in.Password)
	if err != nil {
		return domain.Patient{}, err
	}

	p := domain.Patient{
		Name:         in.FirstName + " " + in.LastName,
		Contact:      in.PhoneNumber,
		Email:        in.Email,
		PasswordHash: hash,
	}

	p.ID, err = s.Store.Patients().CreatePatient(ctx, p)
	if err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Patient{}, ErrEmailExists
		}
		return domain.Patient{}, err
	}

	l.Info("patient registered", slog.Int64("patient_id", p.ID))
	return p, nil
}

// LoginPatient verifies a patient's password and issues a token with no
// role claim.
func (s *AuthService) LoginPatient(ctx context.Context, email, password string) (Login, error) {
	l := slogx.FromContext(ctx)

	p, err := s.Store.Patients().GetPatientByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("patient login unknown email")
			return Login{}, ErrUnknownEmail
		}
		return Login{}, err
	}

	if err := s.verify(s.PatientHasher, password, p.PasswordHash); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			l.Info("patient login wrong password", slog.Int64("patient_id", p.ID))
		}
		return Login{}, err
	}

	tok, err := s.Tokens.Issue(jwtx.Principal{Email: p.Email, Name: p.Name})
	if err != nil {
		return Login{}, err
	}

	return Login{Token: tok, ID: p.ID, Name: p.Name, Email: p.Email}, nil
}

// LoginAdmin verifies an admin against a hashed password with the patient
// scheme and issues an Admin token.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (Login, error) {
	l := slogx.FromContext(ctx)

	a, err := s.Store.Admins().GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("admin login unknown email")
			return Login{}, ErrUnknownEmail
		}
		return Login{}, err
	}

	if err := s.verify(s.PatientHasher, password, a.Password); err != nil {
		if errors.Is(err, ErrMisconfigured) {
			l.Error("admin has no hashed password; registered through plaintext storage?",
				slog.Int64("admin_id", a.ID))
		}
		return Login{}, err
	}

	return s.issueAdmin(a)
}

// LoginDoctor verifies a doctor by exact email and bcrypt password. Both
// failure causes collapse to ErrInvalidCredentials.
func (s *AuthService) LoginDoctor(ctx context.Context, email, password string) (Login, error) {
	l := slogx.FromContext(ctx)

	d, err := s.Store.Doctors().GetDoctorByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Login{}, ErrInvalidCredentials
		}
		return Login{}, err
	}

	if err := s.verify(s.DoctorHasher, password, d.PasswordHash); err != nil {
		if errors.Is(err, ErrPasswordMismatch) {
			l.Info("doctor login wrong password", slog.Int64("doctor_id", d.ID))
			return Login{}, ErrInvalidCredentials
		}
		return Login{}, err
	}

	doctorID := d.ID
	tok, err := s.Tokens.Issue(jwtx.Principal{
		Email:    d.Email,
		Name:     d.Name,
		Role:     domain.RoleDoctor.String(),
		DoctorID: &doctorID,
	})
	if err != nil {
		return Login{}, err
	}

	return Login{Token: tok, ID: d.ID, Name: d.Name, Email: d.Email}, nil
}

// RegisterDoctor titles the name and stores a bcrypt hash. Doctor emails
// are not checked for uniqueness.
func (s *AuthService) RegisterDoctor(ctx context.Context, in RegisterDoctorInput) (domain.Doctor, error) {
	hash, err := s.DoctorHasher.Hash(in.Password)
	if err != nil {
		return domain.Doctor{}, err
	}

	d := domain.Doctor{
		Name:           domain.NormalizeDoctorName(in.Name),
		Specialization: in.Specialization,
		Contact:        in.Contact,
		Email:          in.Email,
		PasswordHash:   hash,
	}

	d.ID, err = s.Store.Doctors().CreateDoctor(ctx, d)
	if err != nil {
		return domain.Doctor{}, err
	}

	slogx.FromContext(ctx).Info("doctor registered", slog.Int64("doctor_id", d.ID))
	return d, nil
}

// RegisterAdmin creates an admin, storing the password according to
// AdminPasswords.
func (s *AuthService) RegisterAdmin(ctx context.Context, in RegisterAdminInput) (domain.Admin, error) {
	exists, err := s.Store.Admins().AdminEmailExists(ctx, in.Email)
	if err != nil {
		return domain.Admin{}, err
	}
	if exists {
		return domain.Admin{}, ErrEmailExists
	}

	stored := in.Password
	if s.AdminPasswords == AdminPasswordHashed {
		if stored, err = s.PatientHasher.Hash(in.Password); err != nil {
			return domain.Admin{}, err
		}
	}

	a := domain.Admin{Name: in.Name, Email: in.Email, Password: stored}
	a.ID, err = s.Store.Admins().CreateAdmin(ctx, a)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Admin{}, ErrEmailExists
		}
		return domain.Admin{}, err
	}

	slogx.FromContext(ctx).Info("admin registered",
		slog.Int64("admin_id", a.ID),
		slog.String("password_storage", string(s.AdminPasswords)),
	)
	return a, nil
}

// AdminAuthLogin checks an admin registered through RegisterAdmin. Unknown
// email and wrong password are indistinguishable.
func (s *AuthService) AdminAuthLogin(ctx context.Context, email, password string) (Login, error) {
	a, err := s.Store.Admins().GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Login{}, ErrInvalidCredentials
		}
		return Login{}, err
	}

	switch s.AdminPasswords {
	case AdminPasswordHashed:
		if err := s.verify(s.PatientHasher, password, a.Password); err != nil {
			if errors.Is(err, ErrPasswordMismatch) {
				return Login{}, ErrInvalidCredentials
			}
			return Login{}, err
		}
	default:
		if subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) != 1 {
			return Login{}, ErrInvalidCredentials
		}
	}

	return s.issueAdmin(a)
}

func (s *AuthService) issueAdmin(a domain.Admin) (Login, error) {
	tok, err := s.Tokens.Issue(jwtx.Principal{
		Email: a.Email,
		Name:  a.Name,
		Role:  domain.RoleAdmin.String(),
	})
	if err != nil {
		return Login{}, err
	}
	return Login{Token: tok, ID: a.ID, Name: a.Name, Email: a.Email}, nil
}

// verify maps hasher errors onto service errors.
func (s *AuthService) verify(h cryptox.Hasher, password, stored string) error {
	err := h.Verify(password, stored)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, cryptox.ErrMismatch):
		return ErrPasswordMismatch
	case errors.Is(err, cryptox.ErrMalformedHash):
		return fmt.Errorf("%w: %v", ErrMisconfigured, err)
	default:
		return err
	}
}
