package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestManager_IssueResolveRevoke(t *testing.T) {
	_, client := setupTestRedis(t)
	m := NewManager("secret", time.Hour, NewRedisStore(client))
	ctx := context.Background()

	token, err := m.Issue(ctx, "u1")
	require.NoError(t, err)

	userID, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)

	require.NoError(t, m.Revoke(ctx, token))
	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// revoking twice is fine
	assert.NoError(t, m.Revoke(ctx, token))
}

func TestManager_RevokeIsIdempotentForGarbage(t *testing.T) {
	_, client := setupTestRedis(t)
	m := NewManager("secret", time.Hour, NewRedisStore(client))

	assert.NoError(t, m.Revoke(context.Background(), ""))
	assert.NoError(t, m.Revoke(context.Background(), "not-a-jwt"))
}

func TestManager_SessionExpiresInRedis(t *testing.T) {
	mr, client := setupTestRedis(t)
	m := NewManager("secret", time.Hour, NewRedisStore(client))
	ctx := context.Background()

	token, err := m.Issue(ctx, "u1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)
	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_RejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	other := NewManager("other-secret", time.Hour, nil)
	token, err := other.Issue(ctx, "u1")
	require.NoError(t, err)

	_, err = NewManager("secret", time.Hour, nil).Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{SessionID: "s1", RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("secret", time.Hour, nil).Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestManager_StatelessWithoutStore(t *testing.T) {
	m := NewManager("secret", time.Hour, nil)
	ctx := context.Background()

	token, err := m.Issue(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, m.Revoke(ctx, token))

	userID, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}
