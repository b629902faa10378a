package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"monitor-srv/internal/model"
)

// Snapshots must outlive the gap between collector passes, so the TTL sits
// well above the idle polling interval.
const snapshotTTL = 10 * time.Minute

func snapshotKey(entityID string) string {
	return fmt.Sprintf("metrics:snapshot:%s", entityID)
}

func (r *implCacheRepository) GetSnapshot(ctx context.Context, entityID string) (model.EntityMetrics, error) {
	data, err := r.redis.Get(ctx, snapshotKey(entityID))
	if err != nil {
		return model.EntityMetrics{}, err
	}

	var m model.EntityMetrics
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		r.l.Errorf(ctx, "metrics.repository.redis.GetSnapshot: Failed to unmarshal snapshot: %v", err)
		return model.EntityMetrics{}, err
	}
	return m, nil
}

func (r *implCacheRepository) SaveSnapshot(ctx context.Context, m model.EntityMetrics) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, snapshotKey(m.EntityID), data, snapshotTTL); err != nil {
		r.l.Errorf(ctx, "metrics.repository.redis.SaveSnapshot: Failed to save snapshot: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) DeleteSnapshot(ctx context.Context, entityID string) error {
	if err := r.redis.Delete(ctx, snapshotKey(entityID)); err != nil {
		r.l.Errorf(ctx, "metrics.repository.redis.DeleteSnapshot: Failed to delete snapshot: %v", err)
		return err
	}
	return nil
}
