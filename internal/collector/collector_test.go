package collector

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"monitor-srv/internal/comparison"
	"monitor-srv/internal/liverefresh"
	"monitor-srv/internal/metrics"
	"monitor-srv/internal/model"
	"monitor-srv/internal/watchlist"
	"monitor-srv/pkg/log"
)

type fakeWatchlistUC struct {
	watchlist.UseCase

	mu       sync.Mutex
	entities []model.WatchedEntity
	listErr  error
	calls    int
}

func (f *fakeWatchlistUC) ListAll(context.Context) ([]model.WatchedEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}

	out := make([]model.WatchedEntity, len(f.entities))
	copy(out, f.entities)
	return out, nil
}

type fakeCollectMetrics struct {
	metrics.UseCase

	mu        sync.Mutex
	refreshed []string
	failFor   map[string]error
	staleFor  map[string]bool
}

func (f *fakeCollectMetrics) EntityMetrics(_ context.Context, _ model.Scope, input metrics.EntityMetricsInput) (metrics.EntityMetricsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !input.ForceRefresh {
		return metrics.EntityMetricsOutput{}, errors.New("collector must force refresh")
	}
	if err := f.failFor[input.EntityID]; err != nil {
		return metrics.EntityMetricsOutput{}, err
	}

	f.refreshed = append(f.refreshed, input.EntityID)
	return metrics.EntityMetricsOutput{
		Metrics: model.EntityMetrics{EntityID: input.EntityID},
		Stale:   f.staleFor[input.EntityID],
	}, nil
}

func (f *fakeCollectMetrics) refreshedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.refreshed))
	copy(out, f.refreshed)
	sort.Strings(out)
	return out
}

type fakePairComparison struct {
	comparison.UseCase

	mu         sync.Mutex
	pairs      [][2]string
	winner     map[string]string // pair key to winning entity id, "" is a tie
	compareErr error
}

func (f *fakePairComparison) Compare(_ context.Context, _ model.Scope, input comparison.CompareInput) (comparison.CompareOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.compareErr != nil {
		return comparison.CompareOutput{}, f.compareErr
	}

	f.pairs = append(f.pairs, [2]string{input.EntityIDA, input.EntityIDB})

	out := comparison.CompareOutput{}
	if w := f.winner[pairKey(input.EntityIDA, input.EntityIDB)]; w != "" {
		winner := w
		out.Result.Winner = &winner
	}
	return out, nil
}

type fakeInterval struct {
	liverefresh.UseCase

	d time.Duration
}

func (f *fakeInterval) Interval() time.Duration { return f.d }

func testCollector(t *testing.T) (*Collector, *fakeWatchlistUC, *fakeCollectMetrics, *fakePairComparison) {
	t.Helper()

	l := log.Init(log.ZapConfig{Level: "error"})
	watch := &fakeWatchlistUC{}
	metricsUC := &fakeCollectMetrics{failFor: map[string]error{}, staleFor: map[string]bool{}}
	compUC := &fakePairComparison{winner: map[string]string{}}

	c := New(l, watch, metricsUC, compUC, &fakeInterval{d: 10 * time.Millisecond}, Config{Concurrency: 2})

	return c, watch, metricsUC, compUC
}

func watched(entityID string, pairWith *string) model.WatchedEntity {
	return model.WatchedEntity{
		ID:             "watch-" + entityID,
		EntityID:       entityID,
		Name:           entityID,
		PinnedPairWith: pairWith,
	}
}

func strPtr(s string) *string { return &s }

func TestCollectRefreshesAllEntities(t *testing.T) {
	c, watch, metricsUC, _ := testCollector(t)
	watch.entities = []model.WatchedEntity{
		watched("phone-a", nil),
		watched("phone-b", nil),
		watched("phone-c", nil),
	}

	c.collect(context.Background())

	got := metricsUC.refreshedIDs()
	want := []string{"phone-a", "phone-b", "phone-c"}
	if len(got) != len(want) {
		t.Fatalf("refreshed %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("refreshed %v, want %v", got, want)
		}
	}
}

func TestCollectCountsFailuresAndStale(t *testing.T) {
	c, _, metricsUC, _ := testCollector(t)
	metricsUC.failFor["phone-b"] = errors.New("review service down")
	metricsUC.staleFor["phone-c"] = true

	entities := []model.WatchedEntity{
		watched("phone-a", nil),
		watched("phone-b", nil),
		watched("phone-c", nil),
	}

	refreshed, stale, failed := c.refreshEntities(context.Background(), entities)
	if refreshed != 2 || stale != 1 || failed != 1 {
		t.Errorf("got refreshed=%d stale=%d failed=%d, want 2/1/1", refreshed, stale, failed)
	}

	got := metricsUC.refreshedIDs()
	if len(got) != 2 || got[0] != "phone-a" || got[1] != "phone-c" {
		t.Errorf("refreshed %v, want the two healthy entities", got)
	}
}

func TestCollectListFailureSkipsRound(t *testing.T) {
	c, watch, metricsUC, _ := testCollector(t)
	watch.listErr = errors.New("postgres down")

	c.collect(context.Background())

	if got := metricsUC.refreshedIDs(); len(got) != 0 {
		t.Errorf("failed round still refreshed %v", got)
	}
}

func TestRecomputePairsDedupesMirroredPair(t *testing.T) {
	c, _, _, compUC := testCollector(t)

	entities := []model.WatchedEntity{
		watched("phone-a", strPtr("phone-b")),
		watched("phone-b", strPtr("phone-a")),
		watched("phone-c", nil),
	}

	c.recomputePairs(context.Background(), entities)

	if len(compUC.pairs) != 1 {
		t.Fatalf("mirrored pair compared %d times, want 1", len(compUC.pairs))
	}
	if got := compUC.pairs[0]; got != [2]string{"phone-a", "phone-b"} {
		t.Errorf("compared %v, want first row's orientation", got)
	}
}

func TestRecomputePairsTracksLeadChanges(t *testing.T) {
	c, _, _, compUC := testCollector(t)
	ctx := context.Background()

	entities := []model.WatchedEntity{watched("phone-a", strPtr("phone-b"))}
	key := pairKey("phone-a", "phone-b")

	compUC.winner[key] = "phone-a"
	c.recomputePairs(ctx, entities)
	if got := c.lastWinner[key]; got == nil || *got != "phone-a" {
		t.Fatalf("got winner %v, want phone-a", got)
	}

	compUC.winner[key] = "phone-b"
	c.recomputePairs(ctx, entities)
	if got := c.lastWinner[key]; got == nil || *got != "phone-b" {
		t.Fatalf("lead change not recorded, got %v", got)
	}

	// Tie clears the verdict.
	compUC.winner[key] = ""
	c.recomputePairs(ctx, entities)
	if got := c.lastWinner[key]; got != nil {
		t.Fatalf("got winner %v after tie, want nil", *got)
	}

	// Unpinning forgets the pair entirely.
	c.recomputePairs(ctx, []model.WatchedEntity{watched("phone-a", nil)})
	if _, ok := c.lastWinner[key]; ok {
		t.Error("unpinned pair still tracked")
	}
}

func TestRecomputePairsSurvivesCompareFailure(t *testing.T) {
	c, _, _, compUC := testCollector(t)
	compUC.compareErr = errors.New("snapshot missing")

	entities := []model.WatchedEntity{
		watched("phone-a", strPtr("phone-b")),
	}

	c.recomputePairs(context.Background(), entities)

	if len(c.lastWinner) != 0 {
		t.Errorf("failed recompute recorded a verdict: %v", c.lastWinner)
	}
}

func TestStartPollsOnInterval(t *testing.T) {
	c, watch, _, _ := testCollector(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.Start(ctx)

	deadline := time.Now().Add(time.Second)
	for {
		watch.mu.Lock()
		calls := watch.calls
		watch.mu.Unlock()
		if calls >= 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("collector ran %d rounds within a second, want at least 2", calls)
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
}
