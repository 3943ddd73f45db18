package jwtx

import (
	"errors"
	"fmt"
	"time"
)

// IssuerConfig carries everything needed to mint and check tokens. It is
// built once from process configuration and passed explicitly.
type IssuerConfig struct {
	Secret   []byte
	Issuer   string
	Audience []string
	TTL      time.Duration
}

// Principal is the authenticated party a token is issued for.
type Principal struct {
	Email    string
	Name     string
	Role     string
	DoctorID *int64
}

// Token is a signed token and the instant it stops being accepted.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Issuer mints signed tokens for authenticated principals.
type Issuer struct {
	signer   Signer
	issuer   string
	audience []string
	ttl      time.Duration

	// now is swapped in tests.
	now func() time.Time
}

// NewIssuer returns an HS256 issuer. A zero TTL selects DefaultTokenTTL.
func NewIssuer(cfg IssuerConfig) (*Issuer, error) {
	signer := NewSignerHS256(cfg.Secret)
	if err := signer.Validate(); err != nil {
		return nil, err
	}
	if cfg.Issuer == "" {
		return nil, errors.New("jwtx: issuer is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &Issuer{
		signer:   signer,
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// NewVerifier returns a verifier accepting exactly what this config issues.
func (cfg IssuerConfig) NewVerifier() *HS256Verifier {
	return NewVerifierHS256(cfg.Secret, cfg.Issuer, cfg.Audience)
}

// Issue signs a fresh token for p. Every call yields a distinct jti.
func (i *Issuer) Issue(p Principal) (Token, error) {
	if p.Email == "" {
		return Token{}, errors.New("jwtx: principal email is required")
	}

	now := i.now().UTC().Truncate(time.Second)
	claims := NewClaims(p.Email, p.Name, p.Role, p.DoctorID, i.ttl, i.issuer, i.audience, now)

	raw, err := i.signer.Sign(claims)
	if err != nil {
		return Token{}, fmt.Errorf("jwtx: issue: %w", err)
	}

	return Token{Value: raw, ExpiresAt: claims.ExpiresAt.Time}, nil
}
