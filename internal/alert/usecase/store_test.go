package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"monitor-srv/internal/alert"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/paginator"
	"monitor-srv/pkg/reviewsrv"
)

type fakeAlertSrv struct {
	reviewsrv.IReview

	mu         sync.Mutex
	serverList []model.Alert
	nextID     int64
	listErr    error
	markErr    error
	resolveErr error
	createErr  error
	deleteErr  error
	deleted    []int64
}

func (f *fakeAlertSrv) ListAlerts(ctx context.Context) ([]model.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.Alert(nil), f.serverList...), nil
}

func (f *fakeAlertSrv) MarkAlertRead(ctx context.Context, alertID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	for i := range f.serverList {
		if f.serverList[i].ID == alertID {
			f.serverList[i].IsRead = true
			return nil
		}
	}
	return reviewsrv.ErrAlertNotFound
}

func (f *fakeAlertSrv) ResolveAlert(ctx context.Context, alertID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resolveErr != nil {
		return f.resolveErr
	}
	for i := range f.serverList {
		if f.serverList[i].ID == alertID {
			f.serverList[i].IsResolved = true
			return nil
		}
	}
	return reviewsrv.ErrAlertNotFound
}

func (f *fakeAlertSrv) CreateAlert(ctx context.Context, input reviewsrv.CreateAlertInput) (*model.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := model.Alert{
		ID:        f.nextID,
		EntityID:  input.EntityID,
		Type:      input.Type,
		Severity:  input.Severity,
		Title:     input.Title,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}
	f.serverList = append(f.serverList, created)
	return &created, nil
}

// DeleteAlert only records the call. The list endpoint keeps returning
// the id until the test mutates serverList, which is how a lagging
// server behaves between delete and list.
func (f *fakeAlertSrv) DeleteAlert(ctx context.Context, alertID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, alertID)
	return nil
}

func (f *fakeAlertSrv) setList(alerts ...model.Alert) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.serverList = append([]model.Alert(nil), alerts...)
}

func (f *fakeAlertSrv) deletedIDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.deleted...)
}

type fakeNotifier struct {
	mu        sync.Mutex
	published []model.Alert
}

func (f *fakeNotifier) PublishCrisis(ctx context.Context, a model.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, a)
	return nil
}

func (f *fakeNotifier) publishedIDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int64, 0, len(f.published))
	for _, a := range f.published {
		ids = append(ids, a.ID)
	}
	return ids
}

func testStore(cfg Config) (alert.UseCase, *fakeAlertSrv, *fakeNotifier) {
	srv := &fakeAlertSrv{nextID: 100}
	notifier := &fakeNotifier{}
	l := log.Init(log.ZapConfig{Level: "error"})
	return New(l, srv, notifier, cfg), srv, notifier
}

func serverAlert(id int64, severity string, read, resolved bool) model.Alert {
	return model.Alert{
		ID:         id,
		EntityID:   "phone-a",
		Type:       "sentiment_drop",
		Severity:   severity,
		Title:      "alert",
		IsRead:     read,
		IsResolved: resolved,
		CreatedAt:  time.Now(),
	}
}

func listAll(t *testing.T, uc alert.UseCase) alert.ListOutput {
	t.Helper()
	out, err := uc.List(context.Background(), model.Scope{}, alert.ListInput{
		Paginate: paginator.PaginateQuery{Page: 1, Limit: 50},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	return out
}

func hasAlert(out alert.ListOutput, id int64) bool {
	for _, a := range out.Alerts {
		if a.ID == id {
			return true
		}
	}
	return false
}

func TestRefreshPopulatesStore(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.setList(
		serverAlert(1, model.AlertSeverityInfo, false, false),
		serverAlert(2, model.AlertSeverityWarning, true, false),
		serverAlert(3, model.AlertSeverityInfo, true, true),
	)

	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	out := listAll(t, uc)
	if len(out.Alerts) != 3 {
		t.Fatalf("alert count mismatch: got %d, want 3", len(out.Alerts))
	}
	if out.UnreadCount != 1 {
		t.Errorf("UnreadCount mismatch: got %d, want 1", out.UnreadCount)
	}
	if out.RefreshedAt.IsZero() {
		t.Error("RefreshedAt should be set after refresh")
	}
	if out.Paginator.Total != 3 {
		t.Errorf("Paginator.Total mismatch: got %d, want 3", out.Paginator.Total)
	}
}

func TestRefreshFailureKeepsLocalView(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.setList(serverAlert(1, model.AlertSeverityInfo, false, false))
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	srv.mu.Lock()
	srv.listErr = errors.New("boom")
	srv.mu.Unlock()

	if err := uc.Refresh(ctx); !errors.Is(err, alert.ErrRefreshFailed) {
		t.Errorf("error mismatch: got %v, want %v", err, alert.ErrRefreshFailed)
	}

	out := listAll(t, uc)
	if len(out.Alerts) != 1 || out.Alerts[0].ID != 1 {
		t.Errorf("local view should survive a failed refresh, got %v", out.Alerts)
	}
}

func TestListStatusFilter(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.setList(
		serverAlert(1, model.AlertSeverityInfo, false, false),
		serverAlert(2, model.AlertSeverityInfo, true, true),
		serverAlert(3, model.AlertSeverityInfo, false, false),
	)
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	tests := []struct {
		status string
		want   int
	}{
		{alert.StatusActive, 2},
		{alert.StatusResolved, 1},
		{alert.StatusAll, 3},
		{"", 3},
	}
	for _, tt := range tests {
		t.Run("status_"+tt.status, func(t *testing.T) {
			out, err := uc.List(ctx, model.Scope{}, alert.ListInput{
				Status:   tt.status,
				Paginate: paginator.PaginateQuery{Page: 1, Limit: 50},
			})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if len(out.Alerts) != tt.want {
				t.Errorf("filtered count mismatch: got %d, want %d", len(out.Alerts), tt.want)
			}
		})
	}

	if _, err := uc.List(ctx, model.Scope{}, alert.ListInput{Status: "bogus"}); !errors.Is(err, alert.ErrInvalidStatus) {
		t.Errorf("error mismatch: got %v, want %v", err, alert.ErrInvalidStatus)
	}
}

func TestListPagination(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	alerts := make([]model.Alert, 0, 7)
	for i := int64(1); i <= 7; i++ {
		alerts = append(alerts, serverAlert(i, model.AlertSeverityInfo, false, false))
	}
	srv.setList(alerts...)
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	out, err := uc.List(ctx, model.Scope{}, alert.ListInput{
		Paginate: paginator.PaginateQuery{Page: 2, Limit: 3},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out.Alerts) != 3 {
		t.Fatalf("page size mismatch: got %d, want 3", len(out.Alerts))
	}
	if out.Alerts[0].ID != 4 {
		t.Errorf("page start mismatch: got id %d, want 4", out.Alerts[0].ID)
	}
	if out.Paginator.Total != 7 || out.Paginator.CurrentPage != 2 {
		t.Errorf("paginator mismatch: got %+v", out.Paginator)
	}

	// Past the last page comes back empty, not an error.
	out, err = uc.List(ctx, model.Scope{}, alert.ListInput{
		Paginate: paginator.PaginateQuery{Page: 9, Limit: 3},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out.Alerts) != 0 {
		t.Errorf("overflow page should be empty, got %d alerts", len(out.Alerts))
	}
}

func TestMarkReadConfirm(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.setList(serverAlert(1, model.AlertSeverityInfo, false, false))
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	updated, err := uc.MarkRead(ctx, model.Scope{}, 1)
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if !updated.IsRead {
		t.Error("returned alert should be read")
	}

	out := listAll(t, uc)
	if !out.Alerts[0].IsRead {
		t.Error("store view should show the alert as read")
	}
	if out.UnreadCount != 0 {
		t.Errorf("UnreadCount mismatch: got %d, want 0", out.UnreadCount)
	}
	if got := uc.UnreadCount(ctx, model.Scope{}); got != 0 {
		t.Errorf("UnreadCount projection mismatch: got %d, want 0", got)
	}

	impl := uc.(*implUseCase)
	impl.mu.Lock()
	pendingLen := len(impl.pending)
	impl.mu.Unlock()
	if pendingLen != 0 {
		t.Errorf("pending markers should be cleared after confirmation, got %d", pendingLen)
	}

	// The fake flipped the server copy on success, so a refresh keeps it.
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if out := listAll(t, uc); !out.Alerts[0].IsRead {
		t.Error("read flag should survive a refresh once the server confirmed")
	}
}

func TestMarkReadFailureKeepsOptimisticUntilRefresh(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.setList(serverAlert(1, model.AlertSeverityInfo, false, false))
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	srv.mu.Lock()
	srv.markErr = errors.New("boom")
	srv.mu.Unlock()

	if _, err := uc.MarkRead(ctx, model.Scope{}, 1); !errors.Is(err, alert.ErrMutationFailed) {
		t.Fatalf("error mismatch: got %v, want %v", err, alert.ErrMutationFailed)
	}

	// Optimistic flip stays until authoritative state comes back.
	if out := listAll(t, uc); !out.Alerts[0].IsRead {
		t.Error("optimistic read flag should stay after a failed mutation")
	}

	srv.mu.Lock()
	srv.markErr = nil
	srv.mu.Unlock()
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if out := listAll(t, uc); out.Alerts[0].IsRead {
		t.Error("refresh should restore the server truth after a failed mutation")
	}
}

func TestMarkReadNotFound(t *testing.T) {
	uc, _, _ := testStore(Config{})
	if _, err := uc.MarkRead(context.Background(), model.Scope{}, 42); !errors.Is(err, alert.ErrAlertNotFound) {
		t.Errorf("error mismatch: got %v, want %v", err, alert.ErrAlertNotFound)
	}
}

func TestResolveConfirm(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.setList(
		serverAlert(1, model.AlertSeverityInfo, false, false),
		serverAlert(2, model.AlertSeverityInfo, false, false),
	)
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	updated, err := uc.Resolve(ctx, model.Scope{}, 1)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !updated.IsResolved {
		t.Error("returned alert should be resolved")
	}

	out, err := uc.List(ctx, model.Scope{}, alert.ListInput{
		Status:   alert.StatusActive,
		Paginate: paginator.PaginateQuery{Page: 1, Limit: 50},
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(out.Alerts) != 1 || out.Alerts[0].ID != 2 {
		t.Errorf("active view mismatch after resolve: got %v", out.Alerts)
	}
}

func TestCreateSwapsProvisionalForServerRecord(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	created, err := uc.Create(ctx, model.Scope{}, alert.CreateInput{
		EntityID: "phone-a",
		Type:     "manual",
		Title:    "check this",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("confirmed create should carry the server id, got %d", created.ID)
	}
	if created.Severity != model.AlertSeverityInfo {
		t.Errorf("severity default mismatch: got %s, want %s", created.Severity, model.AlertSeverityInfo)
	}

	out := listAll(t, uc)
	if len(out.Alerts) != 1 {
		t.Fatalf("alert count mismatch: got %d, want 1", len(out.Alerts))
	}
	if out.Alerts[0].Provisional() {
		t.Errorf("store should hold the server record, got id %d", out.Alerts[0].ID)
	}
	if deleted := srv.deletedIDs(); len(deleted) != 0 {
		t.Errorf("no deletes expected, got %v", deleted)
	}
}

func TestCreateFailureKeepsProvisionalUntilRefresh(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.mu.Lock()
	srv.createErr = errors.New("boom")
	srv.mu.Unlock()

	if _, err := uc.Create(ctx, model.Scope{}, alert.CreateInput{
		EntityID: "phone-a",
		Title:    "check this",
	}); !errors.Is(err, alert.ErrMutationFailed) {
		t.Fatalf("error mismatch: got %v, want %v", err, alert.ErrMutationFailed)
	}

	out := listAll(t, uc)
	if len(out.Alerts) != 1 || !out.Alerts[0].Provisional() {
		t.Fatalf("provisional should stay visible after a failed create, got %v", out.Alerts)
	}

	// The marker was cleared on failure, so the next authoritative list
	// drops the orphaned record.
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if out := listAll(t, uc); len(out.Alerts) != 0 {
		t.Errorf("failed create should vanish on refresh, got %v", out.Alerts)
	}
}

func TestCreateValidation(t *testing.T) {
	uc, _, _ := testStore(Config{})
	ctx := context.Background()

	tests := []struct {
		name  string
		input alert.CreateInput
		want  error
	}{
		{"missing entity", alert.CreateInput{Title: "t"}, alert.ErrEntityIDRequired},
		{"missing title", alert.CreateInput{EntityID: "phone-a"}, alert.ErrTitleRequired},
		{"bad severity", alert.CreateInput{EntityID: "phone-a", Title: "t", Severity: "urgent"}, alert.ErrInvalidSeverity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Create(ctx, model.Scope{}, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("error mismatch: got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDeleteHiddenThroughStaleRefresh(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.setList(
		serverAlert(7, model.AlertSeverityInfo, false, false),
		serverAlert(8, model.AlertSeverityInfo, false, false),
	)
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if err := uc.Delete(ctx, model.Scope{}, 7); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := srv.deletedIDs(); len(got) != 1 || got[0] != 7 {
		t.Fatalf("deleted ids mismatch: got %v, want [7]", got)
	}

	// The server list still contains id 7. It must stay hidden.
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	out := listAll(t, uc)
	if hasAlert(out, 7) {
		t.Error("deleted alert resurfaced from a stale server list")
	}
	if !hasAlert(out, 8) {
		t.Error("unrelated alert went missing")
	}

	// Once the server stops listing the id, the marker retires and the
	// alert stays gone.
	srv.setList(serverAlert(8, model.AlertSeverityInfo, false, false))
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if out := listAll(t, uc); hasAlert(out, 7) {
		t.Error("deleted alert resurfaced after the server dropped it")
	}

	impl := uc.(*implUseCase)
	impl.mu.Lock()
	pendingLen := len(impl.pending)
	impl.mu.Unlock()
	if pendingLen != 0 {
		t.Errorf("delete marker should retire once the server omits the id, got %d pending", pendingLen)
	}
}

func TestDeleteGraceExpiry(t *testing.T) {
	uc, srv, _ := testStore(Config{DeleteGrace: 10 * time.Millisecond})
	ctx := context.Background()

	srv.setList(serverAlert(7, model.AlertSeverityInfo, false, false))
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if err := uc.Delete(ctx, model.Scope{}, 7); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	time.Sleep(30 * time.Millisecond)

	// The grace window ran out while the server still lists the id, so
	// the server wins and the alert comes back.
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if out := listAll(t, uc); !hasAlert(out, 7) {
		t.Error("alert should reappear after the delete grace expires")
	}
}

func TestDeleteFailureRestoredByRefresh(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.setList(serverAlert(7, model.AlertSeverityInfo, false, false))
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	srv.mu.Lock()
	srv.deleteErr = errors.New("boom")
	srv.mu.Unlock()

	if err := uc.Delete(ctx, model.Scope{}, 7); !errors.Is(err, alert.ErrMutationFailed) {
		t.Fatalf("error mismatch: got %v, want %v", err, alert.ErrMutationFailed)
	}

	// Optimistically gone right now, back after the next refresh.
	if out := listAll(t, uc); hasAlert(out, 7) {
		t.Error("alert should be optimistically removed")
	}
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if out := listAll(t, uc); !hasAlert(out, 7) {
		t.Error("refresh should restore an alert whose delete failed")
	}
}

func TestDeleteProvisionalSkipsRemote(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.mu.Lock()
	srv.createErr = errors.New("boom")
	srv.mu.Unlock()
	_, _ = uc.Create(ctx, model.Scope{}, alert.CreateInput{EntityID: "phone-a", Title: "t"})

	out := listAll(t, uc)
	if len(out.Alerts) != 1 || !out.Alerts[0].Provisional() {
		t.Fatalf("expected one provisional alert, got %v", out.Alerts)
	}

	if err := uc.Delete(ctx, model.Scope{}, out.Alerts[0].ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := srv.deletedIDs(); len(got) != 0 {
		t.Errorf("provisional delete should not reach the server, got %v", got)
	}
	if out := listAll(t, uc); len(out.Alerts) != 0 {
		t.Errorf("provisional should be gone, got %v", out.Alerts)
	}
}

func TestRefreshReappliesPendingIntent(t *testing.T) {
	uc, srv, _ := testStore(Config{})
	ctx := context.Background()

	srv.setList(serverAlert(1, model.AlertSeverityInfo, false, false))
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	// Simulate a mark-read still in flight when a refresh lands.
	impl := uc.(*implUseCase)
	impl.mu.Lock()
	impl.setPendingLocked(1, model.AlertMutationRead, nil)
	impl.mu.Unlock()

	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	out := listAll(t, uc)
	if !out.Alerts[0].IsRead {
		t.Error("pending read intent should be re-applied over the server list")
	}

	impl.mu.Lock()
	_, stillPending := impl.pending[pendingKey{alertID: 1, kind: model.AlertMutationRead}]
	impl.mu.Unlock()
	if !stillPending {
		t.Error("marker should stay while the server disagrees")
	}

	// Once the server reflects the flag the marker retires.
	srv.setList(serverAlert(1, model.AlertSeverityInfo, true, false))
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	impl.mu.Lock()
	_, stillPending = impl.pending[pendingKey{alertID: 1, kind: model.AlertMutationRead}]
	impl.mu.Unlock()
	if stillPending {
		t.Error("marker should retire once the server confirms the flag")
	}
}

func TestCrisisNotificationPublishedOnce(t *testing.T) {
	uc, srv, notifier := testStore(Config{})
	ctx := context.Background()

	srv.setList(
		serverAlert(1, model.AlertSeverityCritical, false, false),
		serverAlert(2, model.AlertSeverityWarning, false, false),
		serverAlert(3, model.AlertSeverityCritical, false, true),
	)
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if got := notifier.publishedIDs(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("published mismatch: got %v, want [1]", got)
	}

	// Seeing the same alert again does not re-publish.
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if got := notifier.publishedIDs(); len(got) != 1 {
		t.Errorf("repeat refresh should not re-publish, got %v", got)
	}

	// A new critical alert fans out on its first appearance.
	srv.setList(
		serverAlert(1, model.AlertSeverityCritical, false, false),
		serverAlert(4, model.AlertSeverityCritical, false, false),
	)
	if err := uc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if got := notifier.publishedIDs(); len(got) != 2 || got[1] != 4 {
		t.Errorf("published mismatch: got %v, want [1 4]", got)
	}
}

func TestNilNotifierIsAllowed(t *testing.T) {
	srv := &fakeAlertSrv{nextID: 100}
	l := log.Init(log.ZapConfig{Level: "error"})
	uc := New(l, srv, nil, Config{})

	srv.setList(serverAlert(1, model.AlertSeverityCritical, false, false))
	if err := uc.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
}
