// Package cache keeps transposed render snapshots in Redis so repeated
// views of the same song in the same key skip the engine.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmelo/cifrabot/internal/utils"
	redisClient "github.com/go-redis/redis/v8"
)

const snapshotTTL = 24 * time.Hour

// Snapshot is one cached rendering: a song's content transposed into a
// key.
type Snapshot struct {
	SongID     string    `json:"song_id"`
	Key        string    `json:"key"`
	Content    string    `json:"content"`
	RenderedAt time.Time `json:"rendered_at"`
}

type Manager struct {
	client *redisClient.Client
}

// NewManager connects using the REDIS_* environment variables.
func NewManager() (*Manager, error) {
	env, err := utils.LoadEnv([]string{"REDIS_URL", "REDIS_PASSWORD"})
	if err != nil {
		return nil, fmt.Errorf("failed to load redis env: %w", err)
	}
	opt, err := redisClient.ParseURL(fmt.Sprintf("rediss://default:%s@%s", env["REDIS_PASSWORD"], env["REDIS_URL"]))
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &Manager{client: redisClient.NewClient(opt)}, nil
}

func snapshotKey(songID, key string) string {
	return fmt.Sprintf("cifra:%s:%s", songID, key)
}

// GetSnapshot returns the cached snapshot, or nil on a miss.
func (m *Manager) GetSnapshot(ctx context.Context, songID, key string) (*Snapshot, error) {
	data, err := m.client.Get(ctx, snapshotKey(songID, key)).Bytes()
	if err != nil {
		if err == redisClient.Nil {
			return nil, nil
		}
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SetSnapshot stores a snapshot with a TTL.
func (m *Manager) SetSnapshot(ctx context.Context, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return m.client.Set(ctx, snapshotKey(snap.SongID, snap.Key), data, snapshotTTL).Err()
}

// Invalidate drops every cached key of one song, called after its
// content changes.
func (m *Manager) Invalidate(ctx context.Context, songID string) error {
	keys, err := m.client.Keys(ctx, snapshotKey(songID, "*")).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return m.client.Del(ctx, keys...).Err()
}
