package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/auth"
)

func newTestSessionStore(t *testing.T, ttl time.Duration) (auth.SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSessionStore(client, ttl), mr
}

func TestSessionCreateAndResolve(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestSessionStore(t, time.Hour)

	accountID := uuid.New()
	token, err := store.Create(ctx, accountID)
	require.NoError(t, err)
	assert.Len(t, token, 64, "token should be 32 random bytes, hex encoded")

	resolved, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, accountID, resolved)
}

func TestSessionTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestSessionStore(t, time.Hour)

	accountID := uuid.New()
	first, err := store.Create(ctx, accountID)
	require.NoError(t, err)
	second, err := store.Create(ctx, accountID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestSessionStore(t, time.Minute)

	token, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	mr.FastForward(time.Minute + time.Second)

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestSessionResolveUnknownToken(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestSessionStore(t, time.Hour)

	_, err := store.Resolve(ctx, "nonexistent")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)

	_, err = store.Resolve(ctx, "")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestSessionResolveCorruptRecord(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestSessionStore(t, time.Hour)

	require.NoError(t, mr.Set(sessionKeyPrefix+"badtoken", "not-a-uuid"))

	_, err := store.Resolve(ctx, "badtoken")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestSessionDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestSessionStore(t, time.Hour)

	token, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, token))
	require.NoError(t, store.Delete(ctx, token))
	require.NoError(t, store.Delete(ctx, ""))

	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}
