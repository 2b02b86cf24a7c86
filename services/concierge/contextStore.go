package concierge

import (
	"context"
	"encoding/json"
	"time"

	"silesiagrand/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "concierge:session:"

// TranscriptStore mirrors settled session snapshots so a session can be picked up again
// after it was evicted from memory or the process restarted.
type TranscriptStore interface {
	Load(ctx context.Context, sessionID string) (*models.SessionSnapshot, error)
	Save(ctx context.Context, snap models.SessionSnapshot) error
}

type RedisTranscriptStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTranscriptStore(client *redis.Client, ttl time.Duration) *RedisTranscriptStore {
	return &RedisTranscriptStore{client: client, ttl: ttl}
}

// Load returns ErrSessionNotFound when nothing is stored under sessionID.
func (s *RedisTranscriptStore) Load(ctx context.Context, sessionID string) (*models.SessionSnapshot, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var snap models.SessionSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *RedisTranscriptStore) Save(ctx context.Context, snap models.SessionSnapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+snap.ID, b, s.ttl).Err()
}

// NopTranscriptStore keeps nothing; sessions live only as long as the process.
type NopTranscriptStore struct{}

func (NopTranscriptStore) Load(context.Context, string) (*models.SessionSnapshot, error) {
	return nil, ErrSessionNotFound
}

func (NopTranscriptStore) Save(context.Context, models.SessionSnapshot) error { return nil }
