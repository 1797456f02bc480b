package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

func sessionKey(token string) string {
	return "session:" + token
}

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(token), userID, ttl).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	return userID, err
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

type memorySession struct {
	userID    string
	expiresAt time.Time
}

// MemorySessionStore keeps sessions in process memory. Entries are dropped
// lazily when read after expiry.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	now      func() time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memorySession),
		now:      time.Now,
	}
}

func (s *MemorySessionStore) Set(_ context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionKey(token)] = memorySession{userID: userID, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := sessionKey(token)
	sess, ok := s.sessions[key]
	if !ok {
		return "", ErrSessionNotFound
	}
	if !s.now().Before(sess.expiresAt) {
		delete(s.sessions, key)
		return "", ErrSessionNotFound
	}
	return sess.userID, nil
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey(token))
	return nil
}

func (s *MemorySessionStore) Ping(context.Context) error { return nil }
