// Package session issues and resolves login sessions. A session is an HS256
// JWT carried in an HttpOnly cookie; when a Store is configured the token's
// session id must also be live in the store, which makes logout revoke it.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "storefront_session"

var ErrNoSession = errors.New("no session")

// Store keeps the set of live session ids.
type Store interface {
	Put(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Lookup(ctx context.Context, sessionID string) (userID string, ok bool, err error)
	Delete(ctx context.Context, sessionID string) error
}

type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store

	// SecureCookie marks the session cookie HTTPS-only.
	SecureCookie bool
}

// NewManager returns a Manager signing with secret. A nil store gives
// stateless sessions that live until they expire.
func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, store: store}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue starts a session for userID and returns its signed token.
func (m *Manager) Issue(ctx context.Context, userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		SessionID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	if m.store != nil {
		if err := m.store.Put(ctx, claims.SessionID, userID, m.ttl); err != nil {
			return "", fmt.Errorf("failed to store session: %w", err)
		}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Resolve returns the user id of a live session, or ErrNoSession.
func (m *Manager) Resolve(ctx context.Context, token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", ErrNoSession
	}
	if m.store == nil {
		return claims.Subject, nil
	}

	userID, ok, err := m.store.Lookup(ctx, claims.SessionID)
	if err != nil {
		return "", fmt.Errorf("failed to look up session: %w", err)
	}
	if !ok || userID != claims.Subject {
		return "", ErrNoSession
	}
	return userID, nil
}

// Revoke ends the session behind token. Invalid, expired or already revoked
// tokens are not an error.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if m.store == nil || token == "" {
		return nil
	}
	claims, err := m.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.SessionID)
}

func (m *Manager) parse(token string, opts ...jwt.ParserOption) (*Claims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
