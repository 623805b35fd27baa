// Package token is the JWT capability the auth service consumes:
// issue a token for a subject with an expiry, validate a token and
// extract its subject. Tokens are HS256-signed.
package token

import (
	"errors"
	"fmt"
	"time"

	"parkgate/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

type Manager struct {
	secret []byte
	expiry time.Duration
	clock  clock.Clock
}

func NewManager(secret string, expiry time.Duration, clk clock.Clock) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token secret cannot be empty")
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("token expiry must be positive, got: %s", expiry)
	}
	if clk == nil {
		clk = clock.System(time.UTC)
	}
	return &Manager{
		secret: []byte(secret),
		expiry: expiry,
		clock:  clk,
	}, nil
}

// Issue creates a signed token for subject, expiring after the
// configured duration.
func (m *Manager) Issue(subject string) (string, error) {
	now := m.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		ID:        uuid.NewString(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate parses and verifies raw, returning the token subject.
// Expired tokens return ErrExpired; everything else that fails
// verification returns ErrInvalid.
func (m *Manager) Validate(raw string) (string, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.clock.Now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalid
	}

	return claims.Subject, nil
}
