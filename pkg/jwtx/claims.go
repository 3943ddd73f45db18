package jwtx

import (
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the fixed lifetime of an issued token. There is no
// refresh flow, clients log in again once it lapses.
const DefaultTokenTTL = time.Hour

// Claims are the access-token claims shared by every principal kind.
// Subject carries the principal's email address.
type Claims struct {
	jwt.RegisteredClaims

	// Display name of the principal
	Name string `json:"name,omitempty"`

	// Role is "Patient", "Doctor" or "Admin". The plain patient login leaves
	// it unset.
	Role string `json:"role,omitempty"`

	// DoctorID is only present on tokens issued at doctor login.
	DoctorID *int64 `json:"doctor_id,omitempty"`
}

// NewClaims builds minimally-correct claims for the given subject.
func NewClaims(
	subject, name, role string,
	doctorID *int64,
	ttl time.Duration,
	issuer string,
	audience []string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Name:     name,
		Role:     role,
		DoctorID: doctorID,
	}
}

// NewJTI returns a fresh random identifier for the "jti" claim.
func NewJTI() string {
	return uuid.NewString()
}

// HasRole reports whether the claims carry one of the given roles.
func (c *Claims) HasRole(roles ...string) bool {
	return c.Role != "" && slices.Contains(roles, c.Role)
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateAudience checks if at least one expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil // nothing to enforce
	}

	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}

	return ErrAudience
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	return c.ValidateExpiryAt(time.Now().UTC())
}

// ValidateExpiryAt is ValidateExpiry against an explicit instant.
func (c *Claims) ValidateExpiryAt(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
