package session

import (
	"context"
	"sync"
	"time"

	"github.com/angelmondragon/orderchat-backend/pkg/logger"
	"github.com/angelmondragon/orderchat-backend/pkg/redis"
)

// SnapshotStore persists serialized session snapshots. A nil store
// disables persistence entirely.
type SnapshotStore interface {
	Get(ctx context.Context, sessionID string) ([]byte, bool, error)
	Set(ctx context.Context, sessionID string, payload []byte) error
}

// Registry owns the live sessions for this process. The in-memory map is
// authoritative; the snapshot store is write-through with lazy restore so
// sessions survive restarts.
type Registry struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	snapshots SnapshotStore
	logg      *logger.Logger
}

// NewRegistry builds a registry; snapshots may be nil.
func NewRegistry(snapshots SnapshotStore, logg *logger.Logger) *Registry {
	return &Registry{
		sessions:  make(map[string]*Session),
		snapshots: snapshots,
		logg:      logg,
	}
}

// GetOrCreate returns the live session for id, restoring it from the
// snapshot store when possible, or creating a fresh one.
func (r *Registry) GetOrCreate(ctx context.Context, id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sess, ok := r.sessions[id]; ok {
		return sess
	}

	if r.snapshots != nil {
		payload, found, err := r.snapshots.Get(ctx, id)
		if err != nil && r.logg != nil {
			r.logg.Warn(r.logg.WithSessionID(ctx, id), "session snapshot read failed")
		}
		if found {
			if sess, err := RestoreSnapshot(id, payload); err == nil {
				r.sessions[id] = sess
				return sess
			} else if r.logg != nil {
				r.logg.Warn(r.logg.WithSessionID(ctx, id), "session snapshot corrupt, starting fresh")
			}
		}
	}

	sess := New(id)
	r.sessions[id] = sess
	return sess
}

// Persist writes the session snapshot through to the store, when one is
// configured. Persistence failures are logged, never surfaced: the live
// session stays authoritative.
func (r *Registry) Persist(ctx context.Context, sess *Session) {
	if r.snapshots == nil || sess == nil {
		return
	}
	payload, err := sess.MarshalSnapshot()
	if err != nil {
		if r.logg != nil {
			r.logg.Error(r.logg.WithSessionID(ctx, sess.ID), "session snapshot marshal failed", err)
		}
		return
	}
	if err := r.snapshots.Set(ctx, sess.ID, payload); err != nil && r.logg != nil {
		r.logg.Warn(r.logg.WithSessionID(ctx, sess.ID), "session snapshot write failed")
	}
}

// RedisSnapshotStore keeps snapshots in Redis with a TTL.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotStore wraps the shared Redis client.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

func (s *RedisSnapshotStore) Get(ctx context.Context, sessionID string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, s.client.SessionKey(sessionID))
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(raw), true, nil
}

func (s *RedisSnapshotStore) Set(ctx context.Context, sessionID string, payload []byte) error {
	return s.client.Set(ctx, s.client.SessionKey(sessionID), string(payload), s.ttl)
}
