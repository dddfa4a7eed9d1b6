package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"portfolio-backend/internal/domains/auth"
)

const sessionKeyPrefix = "session:"

// redisSessionStore keeps session records in redis with a native TTL.
// Sessions live out-of-process, so they survive application restarts within
// the expiry window; redis expiry is the single source of truth for session
// lifetime.
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) auth.SessionStore {
	return &redisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

// generateToken returns a 256-bit random token, hex encoded.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func (s *redisSessionStore) Create(ctx context.Context, accountID uuid.UUID) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	key := sessionKeyPrefix + token
	if err := s.client.Set(ctx, key, accountID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return token, nil
}

func (s *redisSessionStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, auth.ErrSessionNotFound
	}

	val, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, auth.ErrSessionNotFound
		}
		return uuid.Nil, fmt.Errorf("resolve session: %w", err)
	}

	accountID, err := uuid.Parse(val)
	if err != nil {
		// A corrupt record is treated as no session at all.
		return uuid.Nil, auth.ErrSessionNotFound
	}

	return accountID, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
