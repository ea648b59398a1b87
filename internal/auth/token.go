package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/reservel/pkg/reservation"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultTokenTTL = 5 * time.Minute
	bearerPrefix    = "Bearer "
)

var (
	// ErrInvalidToken is returned when a token cannot be verified.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidAuthConfig is returned for unusable keys or issuers.
	ErrInvalidAuthConfig = errors.New("invalid auth config")
)

// Claims are the JWT claims carried by principal tokens. Subject is the principal.
type Claims struct {
	jwt.RegisteredClaims
}

// Issuer mints HS256 principal tokens.
type Issuer struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	nowFn      func() time.Time
}

// IssuerOption configures an Issuer.
type IssuerOption func(*Issuer)

// WithTokenTTL overrides the token lifetime.
func WithTokenTTL(ttl time.Duration) IssuerOption {
	return func(issuer *Issuer) {
		if ttl > 0 {
			issuer.ttl = ttl
		}
	}
}

// WithIssuerClock overrides the clock used for iat/exp.
func WithIssuerClock(now func() time.Time) IssuerOption {
	return func(issuer *Issuer) {
		if now != nil {
			issuer.nowFn = now
		}
	}
}

// NewIssuer validates the key and issuer name.
func NewIssuer(signingKey []byte, issuerName string, options ...IssuerOption) (*Issuer, error) {
	if len(signingKey) == 0 {
		return nil, fmt.Errorf("%w: signing key is required", ErrInvalidAuthConfig)
	}
	if strings.TrimSpace(issuerName) == "" {
		return nil, fmt.Errorf("%w: issuer is required", ErrInvalidAuthConfig)
	}
	issuer := &Issuer{signingKey: signingKey, issuer: issuerName, ttl: defaultTokenTTL, nowFn: time.Now}
	for _, option := range options {
		if option != nil {
			option(issuer)
		}
	}
	return issuer, nil
}

// Issue returns a signed token asserting principal.
func (issuer *Issuer) Issue(principal reservation.Principal) (string, error) {
	if principal.IsZero() {
		return "", fmt.Errorf("%w: principal is required", reservation.ErrInvalidInput)
	}
	now := issuer.nowFn().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer.issuer,
			Subject:   principal.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(issuer.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(issuer.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verifier checks HS256 principal tokens.
type Verifier struct {
	signingKey []byte
	issuer     string
	nowFn      func() time.Time
}

// NewVerifier validates the key and issuer name.
func NewVerifier(signingKey []byte, issuerName string) (*Verifier, error) {
	if len(signingKey) == 0 {
		return nil, fmt.Errorf("%w: signing key is required", ErrInvalidAuthConfig)
	}
	if strings.TrimSpace(issuerName) == "" {
		return nil, fmt.Errorf("%w: issuer is required", ErrInvalidAuthConfig)
	}
	return &Verifier{signingKey: signingKey, issuer: issuerName, nowFn: time.Now}, nil
}

// Verify parses the token and returns the principal it asserts.
func (verifier *Verifier) Verify(rawToken string) (reservation.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		strings.TrimSpace(rawToken),
		claims,
		func(*jwt.Token) (interface{}, error) { return verifier.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(verifier.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(verifier.nowFn),
	)
	if err != nil {
		return reservation.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return reservation.Principal{}, ErrInvalidToken
	}
	principal, err := reservation.NewPrincipal(claims.Subject)
	if err != nil {
		return reservation.Principal{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return principal, nil
}

// BearerValue formats a token for an authorization header or metadata entry.
func BearerValue(token string) string {
	return bearerPrefix + token
}

// ParseBearer extracts the token from a "Bearer <token>" value.
func ParseBearer(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) <= len(bearerPrefix) || !strings.EqualFold(trimmed[:len(bearerPrefix)], bearerPrefix) {
		return "", fmt.Errorf("%w: expected bearer token", ErrInvalidToken)
	}
	return strings.TrimSpace(trimmed[len(bearerPrefix):]), nil
}
