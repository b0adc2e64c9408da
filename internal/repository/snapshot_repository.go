package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/suryakamal494/timetable-workspace-api/internal/models"
)

// SnapshotRepository persists workspace grid snapshots in Redis so an editing
// session survives process restarts. A nil client degrades to a no-op store;
// sessions then live only in memory.
type SnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotRepository constructs a snapshot repository with the given TTL.
func NewSnapshotRepository(client *redis.Client, ttl time.Duration) *SnapshotRepository {
	return &SnapshotRepository{client: client, ttl: ttl}
}

func snapshotKey(workspaceID string) string {
	return "workspace:snapshot:" + workspaceID
}

// Load returns the stored snapshot for a workspace, reporting whether one
// exists.
func (r *SnapshotRepository) Load(ctx context.Context, workspaceID string) ([]models.TimetableEntry, bool, error) {
	if r.client == nil {
		return nil, false, nil
	}

	raw, err := r.client.Get(ctx, snapshotKey(workspaceID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", snapshotKey(workspaceID), err)
	}

	var entries []models.TimetableEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("unmarshal snapshot for %s: %w", workspaceID, err)
	}
	return entries, true, nil
}

// Save stores the snapshot, refreshing its TTL.
func (r *SnapshotRepository) Save(ctx context.Context, workspaceID string, entries []models.TimetableEntry) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal snapshot for %s: %w", workspaceID, err)
	}

	if err := r.client.Set(ctx, snapshotKey(workspaceID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", snapshotKey(workspaceID), err)
	}
	return nil
}

// Delete removes the stored snapshot.
func (r *SnapshotRepository) Delete(ctx context.Context, workspaceID string) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, snapshotKey(workspaceID)).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", snapshotKey(workspaceID), err)
	}
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *SnapshotRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
