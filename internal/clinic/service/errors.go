package service

import "errors"

var (
	// Conflict
	ErrEmailExists = errors.New("email_exists")

	// Unauthorized
	ErrUnknownEmail       = errors.New("unknown_email")
	ErrPasswordMismatch   = errors.New("password_mismatch")
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrMisconfigured wraps a stored credential the configured scheme
	// cannot read. It is a server error, never a failed login.
	ErrMisconfigured = errors.New("credential_misconfigured")

	ErrNotFound        = errors.New("not_found")
	ErrDoctorNotFound  = errors.New("doctor_not_found")
	ErrPatientNotFound = errors.New("patient_not_found")
	ErrInvalidInput    = errors.New("invalid_input")
)

// IsUnauthorized reports whether err is one of the failed-login errors.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnknownEmail) ||
		errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrInvalidCredentials)
}
