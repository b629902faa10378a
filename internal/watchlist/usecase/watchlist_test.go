package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"monitor-srv/internal/metrics"
	"monitor-srv/internal/model"
	"monitor-srv/internal/watchlist"
	"monitor-srv/internal/watchlist/repository"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/paginator"
)

type fakeWatchRepo struct {
	mu      sync.Mutex
	rows    []model.WatchedEntity
	nextSeq int
}

func (f *fakeWatchRepo) Create(ctx context.Context, opt repository.CreateOptions) (model.WatchedEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextSeq++
	w := model.WatchedEntity{
		ID:             fmt.Sprintf("watch-%d", f.nextSeq),
		EntityID:       opt.EntityID,
		Name:           opt.Name,
		Platform:       opt.Platform,
		CreatedBy:      opt.CreatedBy,
		PinnedPairWith: opt.PinnedPairWith,
		CreatedAt:      time.Now(),
	}
	f.rows = append(f.rows, w)
	return w, nil
}

func (f *fakeWatchRepo) GetByID(ctx context.Context, id string) (model.WatchedEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.rows {
		if w.ID == id {
			return w, nil
		}
	}
	return model.WatchedEntity{}, repository.ErrNotFound
}

func (f *fakeWatchRepo) GetByEntityID(ctx context.Context, entityID string) (model.WatchedEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.rows {
		if w.EntityID == entityID {
			return w, nil
		}
	}
	return model.WatchedEntity{}, repository.ErrNotFound
}

func (f *fakeWatchRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.WatchedEntity, paginator.Paginator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Newest first, like the SQL ordering.
	ordered := make([]model.WatchedEntity, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		ordered = append(ordered, f.rows[i])
	}

	total := int64(len(ordered))
	start := opt.Offset
	if start > total {
		start = total
	}
	end := start + opt.Limit
	if end > total {
		end = total
	}
	page := ordered[start:end]

	return page, paginator.Paginator{
		Total:       total,
		Count:       int64(len(page)),
		PerPage:     opt.Limit,
		CurrentPage: int(opt.Offset/opt.Limit) + 1,
	}, nil
}

func (f *fakeWatchRepo) ListAll(ctx context.Context) ([]model.WatchedEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.WatchedEntity(nil), f.rows...), nil
}

func (f *fakeWatchRepo) UpdatePinnedPair(ctx context.Context, opt repository.UpdatePinnedPairOptions) (model.WatchedEntity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == opt.ID {
			f.rows[i].PinnedPairWith = opt.PinnedPairWith
			return f.rows[i], nil
		}
	}
	return model.WatchedEntity{}, repository.ErrNotFound
}

func (f *fakeWatchRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeMetricsUC struct {
	metrics.UseCase

	mu          sync.Mutex
	invalidated []string
}

func (f *fakeMetricsUC) Invalidate(ctx context.Context, sc model.Scope, entityID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, entityID)
	return nil
}

func testWatchlist() (watchlist.UseCase, *fakeWatchRepo, *fakeMetricsUC) {
	repo := &fakeWatchRepo{}
	metricsUC := &fakeMetricsUC{}
	l := log.Init(log.ZapConfig{Level: "error"})
	return New(l, repo, metricsUC), repo, metricsUC
}

func TestAddValidation(t *testing.T) {
	uc, _, _ := testWatchlist()
	ctx := context.Background()
	self := "phone-a"

	tests := []struct {
		name  string
		input watchlist.AddInput
		want  error
	}{
		{"missing entity", watchlist.AddInput{Name: "Phone A"}, watchlist.ErrEntityIDRequired},
		{"missing name", watchlist.AddInput{EntityID: "phone-a"}, watchlist.ErrNameRequired},
		{"self pair", watchlist.AddInput{EntityID: "phone-a", Name: "Phone A", PinnedPairWith: &self}, watchlist.ErrSelfPair},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Add(ctx, model.Scope{}, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("error mismatch: got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestAddAndDetail(t *testing.T) {
	uc, _, _ := testWatchlist()
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	created, err := uc.Add(ctx, sc, watchlist.AddInput{
		EntityID: "phone-a",
		Name:     "Phone A",
		Platform: "shopee",
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created.CreatedBy != "user-1" {
		t.Errorf("CreatedBy mismatch: got %s, want user-1", created.CreatedBy)
	}

	got, err := uc.Detail(ctx, sc, created.ID)
	if err != nil {
		t.Fatalf("Detail failed: %v", err)
	}
	if got.EntityID != "phone-a" || got.Name != "Phone A" {
		t.Errorf("Detail mismatch: got %+v", got)
	}

	if _, err := uc.Detail(ctx, sc, "missing"); !errors.Is(err, watchlist.ErrNotFound) {
		t.Errorf("error mismatch: got %v, want %v", err, watchlist.ErrNotFound)
	}
}

func TestAddDuplicate(t *testing.T) {
	uc, _, _ := testWatchlist()
	ctx := context.Background()

	input := watchlist.AddInput{EntityID: "phone-a", Name: "Phone A"}
	if _, err := uc.Add(ctx, model.Scope{}, input); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := uc.Add(ctx, model.Scope{}, input); !errors.Is(err, watchlist.ErrAlreadyWatched) {
		t.Errorf("error mismatch: got %v, want %v", err, watchlist.ErrAlreadyWatched)
	}
}

func TestListPagination(t *testing.T) {
	uc, _, _ := testWatchlist()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if _, err := uc.Add(ctx, model.Scope{}, watchlist.AddInput{
			EntityID: fmt.Sprintf("phone-%d", i),
			Name:     fmt.Sprintf("Phone %d", i),
		}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	out, err := uc.List(ctx, model.Scope{}, watchlist.ListInput{
		Paginate: paginator.PaginateQuery{Page: 2, Limit: 2},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out.Entities) != 2 {
		t.Fatalf("page size mismatch: got %d, want 2", len(out.Entities))
	}
	if out.Paginator.Total != 5 || out.Paginator.CurrentPage != 2 {
		t.Errorf("paginator mismatch: got %+v", out.Paginator)
	}
	// Newest first: page 2 of limit 2 holds the third and second adds.
	if out.Entities[0].EntityID != "phone-3" || out.Entities[1].EntityID != "phone-2" {
		t.Errorf("page content mismatch: got %s, %s", out.Entities[0].EntityID, out.Entities[1].EntityID)
	}

	all, err := uc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("ListAll size mismatch: got %d, want 5", len(all))
	}
}

func TestPinAndUnpin(t *testing.T) {
	uc, _, _ := testWatchlist()
	ctx := context.Background()

	created, err := uc.Add(ctx, model.Scope{}, watchlist.AddInput{EntityID: "phone-a", Name: "Phone A"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if _, err := uc.PinPair(ctx, model.Scope{}, watchlist.PinPairInput{ID: created.ID}); !errors.Is(err, watchlist.ErrPairTargetRequired) {
		t.Errorf("error mismatch: got %v, want %v", err, watchlist.ErrPairTargetRequired)
	}
	if _, err := uc.PinPair(ctx, model.Scope{}, watchlist.PinPairInput{ID: created.ID, PairWith: "phone-a"}); !errors.Is(err, watchlist.ErrSelfPair) {
		t.Errorf("error mismatch: got %v, want %v", err, watchlist.ErrSelfPair)
	}
	if _, err := uc.PinPair(ctx, model.Scope{}, watchlist.PinPairInput{ID: "missing", PairWith: "phone-b"}); !errors.Is(err, watchlist.ErrNotFound) {
		t.Errorf("error mismatch: got %v, want %v", err, watchlist.ErrNotFound)
	}

	pinned, err := uc.PinPair(ctx, model.Scope{}, watchlist.PinPairInput{ID: created.ID, PairWith: "phone-b"})
	if err != nil {
		t.Fatalf("PinPair failed: %v", err)
	}
	if pinned.PinnedPairWith == nil || *pinned.PinnedPairWith != "phone-b" {
		t.Errorf("PinnedPairWith mismatch: got %v, want phone-b", pinned.PinnedPairWith)
	}

	unpinned, err := uc.UnpinPair(ctx, model.Scope{}, created.ID)
	if err != nil {
		t.Fatalf("UnpinPair failed: %v", err)
	}
	if unpinned.PinnedPairWith != nil {
		t.Errorf("PinnedPairWith should be cleared, got %v", *unpinned.PinnedPairWith)
	}
}

func TestRemoveInvalidatesSnapshot(t *testing.T) {
	uc, _, metricsUC := testWatchlist()
	ctx := context.Background()

	created, err := uc.Add(ctx, model.Scope{}, watchlist.AddInput{EntityID: "phone-a", Name: "Phone A"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := uc.Remove(ctx, model.Scope{}, created.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	metricsUC.mu.Lock()
	invalidated := append([]string(nil), metricsUC.invalidated...)
	metricsUC.mu.Unlock()
	if len(invalidated) != 1 || invalidated[0] != "phone-a" {
		t.Errorf("invalidated mismatch: got %v, want [phone-a]", invalidated)
	}

	if err := uc.Remove(ctx, model.Scope{}, created.ID); !errors.Is(err, watchlist.ErrNotFound) {
		t.Errorf("error mismatch: got %v, want %v", err, watchlist.ErrNotFound)
	}
}
