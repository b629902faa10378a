package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"monitor-srv/internal/liverefresh"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/reviewsrv"
)

type fakeReviewSrv struct {
	reviewsrv.IReview

	mu        sync.Mutex
	triggered []string
	failFor   map[string]error
}

func (f *fakeReviewSrv) TriggerAnalysis(ctx context.Context, entityID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[entityID]; ok {
		return err
	}
	f.triggered = append(f.triggered, entityID)
	return nil
}

func (f *fakeReviewSrv) triggerOrder() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.triggered...)
}

func testController(cfg Config) (liverefresh.UseCase, *fakeReviewSrv) {
	srv := &fakeReviewSrv{}
	l := log.Init(log.ZapConfig{Level: "error"})
	return New(l, srv, cfg), srv
}

func TestActivateFromIdle(t *testing.T) {
	uc, srv := testController(Config{Window: time.Second})
	defer uc.Stop()

	ctx := context.Background()
	before := time.Now()

	out, err := uc.Activate(ctx, model.Scope{}, liverefresh.ActivateInput{EntityIDs: []string{"phone-a"}})
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if !out.Activated {
		t.Error("Activated mismatch: got false, want true")
	}
	if out.State.Mode != model.RefreshModeActive {
		t.Errorf("Mode mismatch: got %s, want %s", out.State.Mode, model.RefreshModeActive)
	}
	if out.State.ActivatedAt == nil || out.State.AutoRevertAt == nil {
		t.Fatal("ActivatedAt/AutoRevertAt should be set while active")
	}
	if out.State.AutoRevertAt.Before(before.Add(time.Second)) {
		t.Errorf("AutoRevertAt too early: got %s", out.State.AutoRevertAt)
	}
	if got := srv.triggerOrder(); len(got) != 1 || got[0] != "phone-a" {
		t.Errorf("triggers mismatch: got %v, want [phone-a]", got)
	}
}

func TestReactivateDoesNotExtendWindow(t *testing.T) {
	uc, srv := testController(Config{Window: time.Second})
	defer uc.Stop()

	ctx := context.Background()

	first, err := uc.Activate(ctx, model.Scope{}, liverefresh.ActivateInput{EntityIDs: []string{"phone-a"}})
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	second, err := uc.Activate(ctx, model.Scope{}, liverefresh.ActivateInput{EntityIDs: []string{"phone-b"}})
	if err != nil {
		t.Fatalf("re-Activate failed: %v", err)
	}
	if second.Activated {
		t.Error("Activated mismatch: got true, want false on re-activation")
	}
	if !second.State.AutoRevertAt.Equal(*first.State.AutoRevertAt) {
		t.Errorf("AutoRevertAt changed: got %s, want %s", second.State.AutoRevertAt, first.State.AutoRevertAt)
	}
	if got := second.State.Subjects; len(got) != 1 || got[0] != "phone-a" {
		t.Errorf("Subjects mismatch: got %v, want [phone-a]", got)
	}
	// The absorbed batch must not dispatch any trigger.
	if got := srv.triggerOrder(); len(got) != 1 {
		t.Errorf("triggers mismatch: got %v, want [phone-a]", got)
	}
}

func TestAutoRevertAfterWindow(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	uc, _ := testController(Config{Window: 60 * time.Millisecond})
	defer uc.Stop()

	ctx := context.Background()
	if _, err := uc.Activate(ctx, model.Scope{}, liverefresh.ActivateInput{EntityIDs: []string{"phone-a"}}); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	st := uc.State(ctx, model.Scope{})
	if st.Mode != model.RefreshModeIdle {
		t.Errorf("Mode mismatch: got %s, want %s", st.Mode, model.RefreshModeIdle)
	}
	if st.ActivatedAt != nil || st.AutoRevertAt != nil {
		t.Error("timestamps should be cleared after revert")
	}
	if len(st.Subjects) != 0 {
		t.Errorf("Subjects should be cleared, got %v", st.Subjects)
	}
}

func TestStaggeredDispatch(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	uc, srv := testController(Config{Window: time.Second, TriggerStagger: 50 * time.Millisecond})
	defer uc.Stop()

	ctx := context.Background()
	batch := []string{"x", "y", "z"}
	if _, err := uc.Activate(ctx, model.Scope{}, liverefresh.ActivateInput{EntityIDs: batch}); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	// Only the first trigger fires synchronously.
	if got := srv.triggerOrder(); len(got) != 1 {
		t.Fatalf("immediate triggers mismatch: got %v, want [x]", got)
	}

	time.Sleep(300 * time.Millisecond)

	got := srv.triggerOrder()
	if len(got) != 3 {
		t.Fatalf("trigger count mismatch: got %d, want 3", len(got))
	}
	for i, want := range batch {
		if got[i] != want {
			t.Errorf("trigger[%d] mismatch: got %s, want %s", i, got[i], want)
		}
	}

	// Still one shared window for the whole batch.
	st := uc.State(ctx, model.Scope{})
	if st.Mode != model.RefreshModeActive {
		t.Errorf("Mode mismatch: got %s, want %s", st.Mode, model.RefreshModeActive)
	}
}

func TestTriggerFailureRevertsImmediately(t *testing.T) {
	uc, srv := testController(Config{Window: time.Minute})
	defer uc.Stop()
	srv.failFor = map[string]error{"phone-a": errors.New("boom")}

	ctx := context.Background()
	_, err := uc.Activate(ctx, model.Scope{}, liverefresh.ActivateInput{EntityIDs: []string{"phone-a"}})
	if !errors.Is(err, liverefresh.ErrTriggerFailed) {
		t.Fatalf("error mismatch: got %v, want ErrTriggerFailed", err)
	}

	st := uc.State(ctx, model.Scope{})
	if st.Mode != model.RefreshModeIdle {
		t.Errorf("Mode mismatch: got %s, want %s after failed trigger", st.Mode, model.RefreshModeIdle)
	}
}

func TestStaggeredTriggerFailureRevertsBatch(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	uc, srv := testController(Config{Window: time.Minute, TriggerStagger: 20 * time.Millisecond})
	defer uc.Stop()
	srv.failFor = map[string]error{"y": errors.New("boom")}

	ctx := context.Background()
	if _, err := uc.Activate(ctx, model.Scope{}, liverefresh.ActivateInput{EntityIDs: []string{"x", "y", "z"}}); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	st := uc.State(ctx, model.Scope{})
	if st.Mode != model.RefreshModeIdle {
		t.Errorf("Mode mismatch: got %s, want %s after mid-batch failure", st.Mode, model.RefreshModeIdle)
	}
	// Dispatch stops at the failed subject.
	if got := srv.triggerOrder(); len(got) != 1 || got[0] != "x" {
		t.Errorf("triggers mismatch: got %v, want [x]", got)
	}
}

func TestEarlyCompletionRevertsWhenAllSubjectsDone(t *testing.T) {
	uc, _ := testController(Config{Window: time.Minute, TriggerStagger: time.Millisecond})
	defer uc.Stop()

	ctx := context.Background()
	if _, err := uc.Activate(ctx, model.Scope{}, liverefresh.ActivateInput{EntityIDs: []string{"x", "y"}}); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	uc.NotifyCompleted(ctx, "x")
	if st := uc.State(ctx, model.Scope{}); st.Mode != model.RefreshModeActive {
		t.Fatalf("Mode mismatch: got %s, want active while y is pending", st.Mode)
	}

	// Completion signals for unknown subjects are ignored.
	uc.NotifyCompleted(ctx, "stranger")
	if st := uc.State(ctx, model.Scope{}); st.Mode != model.RefreshModeActive {
		t.Fatalf("Mode mismatch: got %s, want active after unrelated completion", st.Mode)
	}

	uc.NotifyCompleted(ctx, "y")
	if st := uc.State(ctx, model.Scope{}); st.Mode != model.RefreshModeIdle {
		t.Errorf("Mode mismatch: got %s, want idle after all completions", st.Mode)
	}
}

func TestDeactivate(t *testing.T) {
	uc, _ := testController(Config{Window: time.Minute})
	defer uc.Stop()

	ctx := context.Background()
	if err := uc.Deactivate(ctx, model.Scope{}); err != nil {
		t.Fatalf("Deactivate while idle should be a no-op, got %v", err)
	}

	if _, err := uc.Activate(ctx, model.Scope{}, liverefresh.ActivateInput{EntityIDs: []string{"x"}}); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if err := uc.Deactivate(ctx, model.Scope{}); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
	if st := uc.State(ctx, model.Scope{}); st.Mode != model.RefreshModeIdle {
		t.Errorf("Mode mismatch: got %s, want idle after deactivate", st.Mode)
	}
}

func TestIntervalFollowsMode(t *testing.T) {
	uc, _ := testController(Config{
		Window:         time.Minute,
		IdleInterval:   60 * time.Second,
		ActiveInterval: 5 * time.Second,
	})
	defer uc.Stop()

	if got := uc.Interval(); got != 60*time.Second {
		t.Errorf("idle Interval mismatch: got %s, want 60s", got)
	}

	ctx := context.Background()
	if _, err := uc.Activate(ctx, model.Scope{}, liverefresh.ActivateInput{EntityIDs: []string{"x"}}); err != nil {
		t.Fatalf("Activate failed: %v", err)
	}
	if got := uc.Interval(); got != 5*time.Second {
		t.Errorf("active Interval mismatch: got %s, want 5s", got)
	}

	if err := uc.Deactivate(ctx, model.Scope{}); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
	if got := uc.Interval(); got != 60*time.Second {
		t.Errorf("Interval mismatch after revert: got %s, want 60s", got)
	}
}

func TestActivateValidation(t *testing.T) {
	uc, _ := testController(Config{})
	defer uc.Stop()

	ctx := context.Background()
	for _, input := range []liverefresh.ActivateInput{
		{},
		{EntityIDs: []string{""}},
	} {
		if _, err := uc.Activate(ctx, model.Scope{}, input); !errors.Is(err, liverefresh.ErrNoSubjects) {
			t.Errorf("error mismatch for %v: got %v, want ErrNoSubjects", input.EntityIDs, err)
		}
	}
}
