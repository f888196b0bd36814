// Package auth signs and verifies access tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// clockSkew tolerated when checking exp and iat.
const clockSkew = 5 * time.Second

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Subject is the principal carried by an access token. Role is kept as a
// plain string so this package stays free of domain types.
type Subject struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// JWTManager issues and verifies HS256 access tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a manager. Config validation guarantees the secret
// is at least 32 bytes.
func NewJWTManager(secret, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// AccessTTL is also used as the session cookie max-age.
func (m *JWTManager) AccessTTL() time.Duration {
	return m.accessTTL
}

// GenerateAccessToken signs a token whose subject is the user id.
func (m *JWTManager) GenerateAccessToken(sub Subject) (string, error) {
	if sub.UserID == uuid.Nil {
		return "", errors.New("generate token: empty user id")
	}

	issued := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sub.UserID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(m.accessTTL)),
		},
		Email: sub.Email,
		Role:  sub.Role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, issuer and expiry. Failures wrap
// ErrTokenExpired or ErrTokenInvalid.
func (m *JWTManager) ValidateAccessToken(raw string) (Subject, error) {
	if raw == "" {
		return Subject{}, fmt.Errorf("%w: empty", ErrTokenInvalid)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(m.now),
	)

	var claims accessClaims
	if _, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Subject{}, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return Subject{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return Subject{}, fmt.Errorf("%w: bad subject %q", ErrTokenInvalid, claims.Subject)
	}

	return Subject{UserID: userID, Email: claims.Email, Role: claims.Role}, nil
}
