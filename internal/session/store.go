package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jcastror/elfogon-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when no session exists for a token.
var ErrNotFound = errors.New("session not found")

// Store persists sessions keyed by token. Implementations must treat a
// session value as opaque: load, save whole, delete.
type Store interface {
	Load(ctx context.Context, token string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, token string) error
}

const keyPrefix = "session:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a Store backed by Redis. Sessions expire after ttl;
// every save refreshes the expiry, so active visitors keep their cart.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Load(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Error("Failed to load session from redis", err, map[string]interface{}{
			"token": token,
		})
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		logger.Error("Failed to decode session payload", err, map[string]interface{}{
			"token": token,
		})
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *redisStore) Save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+sess.Token, data, s.ttl).Err(); err != nil {
		logger.Error("Failed to save session to redis", err, map[string]interface{}{
			"token": sess.Token,
		})
		return err
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		logger.Error("Failed to delete session from redis", err, map[string]interface{}{
			"token": token,
		})
		return err
	}
	return nil
}
