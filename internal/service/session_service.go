package service

import (
	"context"
	"encoding/json"
	"time"

	"edusync_gateway/internal/model"
	"edusync_gateway/internal/util"

	"github.com/go-redis/redis/v8"
)

// SessionStore owns the lifecycle of login sessions: created once after a
// successful login, looked up on every authenticated request, and removed
// on sign-out or token expiry.
type SessionStore interface {
	Init(ctx context.Context, sess *model.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Clear(ctx context.Context, id string) error
}

const sessionKeyPrefix = "session:"

type RedisSessionStore struct {
	RDB        *redis.Client
	DefaultTTL time.Duration
}

func NewRedisSessionStore(rdb *redis.Client, defaultTTL time.Duration) *RedisSessionStore {
	if defaultTTL <= 0 {
		defaultTTL = 24 * time.Hour
	}
	return &RedisSessionStore{RDB: rdb, DefaultTTL: defaultTTL}
}

func (s *RedisSessionStore) Init(ctx context.Context, sess *model.Session, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.DefaultTTL
	}
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.RDB.Set(ctx, sessionKeyPrefix+sess.ID, payload, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, id string) (*model.Session, error) {
	payload, err := s.RDB.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var sess model.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisSessionStore) Clear(ctx context.Context, id string) error {
	return s.RDB.Del(ctx, sessionKeyPrefix+id).Err()
}
