package cryptox

import (
	"errors"
)

var (
	// ErrMismatch is returned by Verify when the plaintext does not produce
	// the stored representation.
	ErrMismatch = errors.New("cryptox: password does not match")

	// ErrMalformedHash is returned by Verify when the stored representation
	// cannot be parsed by the scheme. It indicates corrupt data or a
	// misconfigured scheme, never a wrong password.
	ErrMalformedHash = errors.New("cryptox: malformed password hash")
)

// Hasher turns a plaintext password into a storable representation and
// checks candidates against it.
type Hasher interface {
	// Hash returns a self-describing representation including salt and
	// parameters.
	Hash(password string) (string, error)

	// Verify returns nil on a match, ErrMismatch on a wrong password and an
	// error wrapping ErrMalformedHash when the stored value is unreadable.
	Verify(password, encoded string) error
}
