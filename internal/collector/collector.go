package collector

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"monitor-srv/internal/comparison"
	"monitor-srv/internal/metrics"
	"monitor-srv/internal/model"
)

// Start runs the poll loop until ctx is cancelled. Rounds run strictly one
// after another: the timer is re-armed only after a round finishes, so a
// slow round never overlaps the next one.
func (c *Collector) Start(ctx context.Context) {
	go func() {
		c.l.Infof(ctx, "collector: started, interval %v", c.refreshUC.Interval())

		timer := time.NewTimer(c.refreshUC.Interval())
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				c.l.Infof(ctx, "collector: stopped")
				return
			case <-timer.C:
				c.collect(ctx)
				// Re-read the interval so a live-refresh mode flip takes
				// effect on the very next round.
				timer.Reset(c.refreshUC.Interval())
			}
		}
	}()
}

// collect runs one collection round. Per-entity failures are logged and
// skipped, the round itself never fails.
func (c *Collector) collect(ctx context.Context) {
	startTime := time.Now()

	entities, err := c.watchlistUC.ListAll(ctx)
	if err != nil {
		c.l.Errorf(ctx, "collector: listing watched entities failed, skipping round: %v", err)
		return
	}
	if len(entities) == 0 {
		return
	}

	refreshed, stale, failed := c.refreshEntities(ctx, entities)
	c.recomputePairs(ctx, entities)

	c.l.Infof(ctx, "collector: round over %d entities: %d refreshed (%d stale), %d failed in %v",
		len(entities), refreshed, stale, failed, time.Since(startTime))
}

func (c *Collector) refreshEntities(ctx context.Context, entities []model.WatchedEntity) (refreshed, stale, failed int) {
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)

	for i := range entities {
		entity := entities[i]

		g.Go(func() error {
			out, err := c.metricsUC.EntityMetrics(gctx, model.Scope{}, metrics.EntityMetricsInput{
				EntityID:     entity.EntityID,
				ForceRefresh: true,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				failed++
				c.l.Warnf(gctx, "collector: refresh failed for entity %s: %v", entity.EntityID, err)
			case out.Stale:
				refreshed++
				stale++
			default:
				refreshed++
			}
			return nil
		})
	}

	_ = g.Wait()
	return refreshed, stale, failed
}

// recomputePairs rebuilds the standing comparison for every pinned pair.
// A pair mirrored on both rows is computed once per round.
func (c *Collector) recomputePairs(ctx context.Context, entities []model.WatchedEntity) {
	done := make(map[string]struct{})

	for _, entity := range entities {
		if entity.PinnedPairWith == nil || *entity.PinnedPairWith == "" {
			continue
		}

		key := pairKey(entity.EntityID, *entity.PinnedPairWith)
		if _, ok := done[key]; ok {
			continue
		}
		done[key] = struct{}{}

		out, err := c.comparisonUC.Compare(ctx, model.Scope{}, comparison.CompareInput{
			EntityIDA: entity.EntityID,
			EntityIDB: *entity.PinnedPairWith,
		})
		if err != nil {
			c.l.Warnf(ctx, "collector: pair (%s, %s) recompute failed: %v", entity.EntityID, *entity.PinnedPairWith, err)
			continue
		}

		prev, seen := c.lastWinner[key]
		if seen && winnerChanged(prev, out.Result.Winner) {
			c.l.Infof(ctx, "collector: sentiment lead changed for pair (%s, %s): now %s",
				entity.EntityID, *entity.PinnedPairWith, winnerLabel(out.Result.Winner))
		}
		c.lastWinner[key] = out.Result.Winner
	}

	// Forget pairs that are no longer pinned.
	for key := range c.lastWinner {
		if _, ok := done[key]; !ok {
			delete(c.lastWinner, key)
		}
	}
}

func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

func winnerChanged(prev, cur *string) bool {
	if prev == nil && cur == nil {
		return false
	}
	if prev == nil || cur == nil {
		return true
	}
	return *prev != *cur
}

func winnerLabel(w *string) string {
	if w == nil {
		return "tie"
	}
	return *w
}
