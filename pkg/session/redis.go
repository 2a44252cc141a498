package session

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/daireno/pkg/errors"
	"github.com/matzehuels/daireno/pkg/observability"
)

const (
	redisStoreName = "redis"

	// DefaultKeyPrefix namespaces session keys in a shared Redis database.
	DefaultKeyPrefix = "daireno:session:"
)

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string // defaults to DefaultKeyPrefix

	// ConnectAttempts is how often the initial ping is tried, with the
	// delay between tries starting at ConnectDelay and doubling. Zero means
	// one attempt.
	ConnectAttempts int
	ConnectDelay    time.Duration
}

// RedisStore keeps sessions in Redis with native key expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if cfg.ConnectDelay <= 0 {
		cfg.ConnectDelay = 250 * time.Millisecond
	}
	ping := func() error { return client.Ping(ctx).Err() }
	if err := retry(ctx, cfg.ConnectAttempts, cfg.ConnectDelay, ping); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to redis at %s", cfg.Addr)
	}
	return NewRedisStoreFromClient(client, cfg.KeyPrefix), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if stderrors.Is(err, redis.Nil) {
		observability.Session().OnLoad(ctx, redisStoreName, sessionID, false, nil)
		return nil, nil
	}
	if err != nil {
		err = errors.Wrap(errors.ErrCodeInternal, err, "redis get")
		observability.Session().OnLoad(ctx, redisStoreName, sessionID, false, err)
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		err = errors.Wrap(errors.ErrCodeInternal, err, "parse session")
		observability.Session().OnLoad(ctx, redisStoreName, sessionID, false, err)
		return nil, err
	}
	if sess.IsExpired() {
		observability.Session().OnLoad(ctx, redisStoreName, sessionID, false, nil)
		return nil, nil
	}
	observability.Session().OnLoad(ctx, redisStoreName, sessionID, true, nil)
	return &sess, nil
}

func (s *RedisStore) Set(ctx context.Context, sess *Session) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, sess.ID)
	}
	data, err := json.Marshal(sess)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeInternal, err, "marshal session")
		observability.Session().OnSave(ctx, redisStoreName, sess.ID, err)
		return err
	}
	if err := s.client.Set(ctx, s.key(sess.ID), data, ttl).Err(); err != nil {
		err = errors.Wrap(errors.ErrCodeInternal, err, "redis set")
		observability.Session().OnSave(ctx, redisStoreName, sess.ID, err)
		return err
	}
	observability.Session().OnSave(ctx, redisStoreName, sess.ID, nil)
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "redis del")
	}
	return nil
}

// Cleanup is a no-op; Redis expires keys itself.
func (s *RedisStore) Cleanup(context.Context) error { return nil }

func (s *RedisStore) Close() error { return s.client.Close() }

var _ Store = (*RedisStore)(nil)
