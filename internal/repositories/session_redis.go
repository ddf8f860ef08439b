package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eqsense/internal/models/db_models"
	"eqsense/pkg/utils"
)

const redisSessionKeyPrefix = "eq:session:"

// RedisSessionStore persists sessions as JSON values with a server-side TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &RedisSessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return redisSessionKeyPrefix + id
}

func (s *RedisSessionStore) Save(ctx context.Context, session *db_models.AssessmentSession) error {
	session.ExpiresAt = time.Now().Add(s.ttl)

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}
	if err := s.client.Set(ctx, sessionKey(session.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*db_models.AssessmentSession, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, utils.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}

	var session db_models.AssessmentSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSessionStore, err)
	}
	return nil
}
