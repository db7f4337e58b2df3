// Package session keeps each caller's transient view state: the record being
// inspected or the panel that is open, plus the last list filter and sort.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"

	"civicpulse/triage"
)

// View is the state a portal restores when the caller comes back.
type View struct {
	triage.Selection
	Query     triage.ComplaintQuery `json:"query"`
	Sort      triage.SortKey        `json:"sort,omitempty"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type Store interface {
	Get(ctx context.Context, userID string) (View, bool, error)
	Put(ctx context.Context, userID string, v View) error
	Delete(ctx context.Context, userID string) error
}

// New returns a Redis store when rdb is set and an in-process store otherwise.
func New(rdb *redis.Client, ttl time.Duration) Store {
	if rdb != nil {
		return NewRedisStore(rdb, ttl)
	}
	return NewMemoryStore(ttl)
}

const keyPrefix = "civicpulse:session:"

type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: rdb, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, userID string) (View, bool, error) {
	var v View
	raw, err := s.redis.Get(ctx, keyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil
	}
	if err != nil {
		return v, false, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, err
	}
	return v, true, nil
}

// Put stores v and restarts its expiry.
func (s *RedisStore) Put(ctx context.Context, userID string, v View) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, keyPrefix+userID, b, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, userID string) error {
	return s.redis.Del(ctx, keyPrefix+userID).Err()
}

// maxMemoryViews bounds the in-process store; the least recently used view
// is evicted past it.
const maxMemoryViews = 10000

// MemoryStore is the single-process fallback, an expiring LRU.
type MemoryStore struct {
	views *expirable.LRU[string, View]
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return newMemoryStore(maxMemoryViews, ttl)
}

func newMemoryStore(size int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{views: expirable.NewLRU[string, View](size, nil, ttl)}
}

func (s *MemoryStore) Get(_ context.Context, userID string) (View, bool, error) {
	v, ok := s.views.Get(userID)
	return v, ok, nil
}

// Put stores v and restarts its expiry.
func (s *MemoryStore) Put(_ context.Context, userID string, v View) error {
	s.views.Add(userID, v)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	s.views.Remove(userID)
	return nil
}

// Len reports how many views are held.
func (s *MemoryStore) Len() int { return s.views.Len() }
