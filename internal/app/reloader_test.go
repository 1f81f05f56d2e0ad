package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/five82/roster/internal/records"
	"github.com/five82/roster/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 100; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
	if got := calculateBackoff(0, 0); got != defaultReloadInterval {
		t.Errorf("calculateBackoff(0, 0) = %v, want %v", got, defaultReloadInterval)
	}
}

type countingSource struct {
	recs  []records.Record
	err   error
	loads atomic.Int32
}

func (s *countingSource) Load(ctx context.Context) ([]records.Record, error) {
	s.loads.Add(1)
	return s.recs, s.err
}

func (s *countingSource) Path() string { return "" }
func (s *countingSource) Name() string { return "fake" }

func TestReload_UpdatesStore(t *testing.T) {
	var store state.Store
	src := &countingSource{recs: []records.Record{{ID: "1", Name: "Ann"}}}

	if err := reload(context.Background(), &store, src); err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	snap := store.Snapshot()
	if len(snap.Records) != 1 || snap.Source != "fake" {
		t.Fatalf("snapshot = %#v, want one record from fake", snap)
	}

	src.err = errors.New("disk gone")
	if err := reload(context.Background(), &store, src); err == nil {
		t.Fatal("reload returned nil error, want disk gone")
	}
	snap = store.Snapshot()
	if len(snap.Records) != 1 || snap.ConsecutiveFailures != 1 {
		t.Fatalf("snapshot after failure = %#v, want old records and 1 failure", snap)
	}
}

func TestStartReloader_SampleSourceIsStatic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store state.Store
	src := &countingSource{}
	StartReloader(ctx, &store, src, 10*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	if n := src.loads.Load(); n != 0 {
		t.Fatalf("source loaded %d times, want 0 for a pathless source", n)
	}
}

func writeRoster(t *testing.T, path, name string) {
	t.Helper()
	body := "patients:\n  - id: \"1\"\n    name: " + name + "\n    dob: \"01-01-1950\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func waitFor(t *testing.T, store *state.Store, cond func(state.Snapshot) bool) state.Snapshot {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap := store.Snapshot()
		if cond(snap) {
			return snap
		}
		time.Sleep(20 * time.Millisecond)
	}
	snap := store.Snapshot()
	t.Fatalf("condition not met before deadline; last snapshot %#v", snap)
	return snap
}

func TestStartReloader_PicksUpChanges(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "patients.yaml")
	writeRoster(t, path, "Ann")

	var store state.Store
	src := records.NewFileSource(path)
	if err := reload(ctx, &store, src); err != nil {
		t.Fatalf("initial reload: %v", err)
	}

	StartReloader(ctx, &store, src, 50*time.Millisecond)

	// Make sure the new contents differ in size so the poll fallback sees it
	// even on filesystems with coarse modification times.
	writeRoster(t, path, "Bartholomew")
	snap := waitFor(t, &store, func(s state.Snapshot) bool {
		return len(s.Records) == 1 && s.Records[0].Name == "Bartholomew"
	})
	if snap.Generation < 2 {
		t.Fatalf("Generation = %d, want >= 2", snap.Generation)
	}
}

func TestStartReloader_BrokenFileKeepsRecords(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	path := filepath.Join(t.TempDir(), "patients.yaml")
	writeRoster(t, path, "Ann")

	var store state.Store
	src := records.NewFileSource(path)
	if err := reload(ctx, &store, src); err != nil {
		t.Fatalf("initial reload: %v", err)
	}

	StartReloader(ctx, &store, src, 50*time.Millisecond)

	if err := os.WriteFile(path, []byte("patients: [ {{{ not yaml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	snap := waitFor(t, &store, func(s state.Snapshot) bool {
		return s.ConsecutiveFailures > 0
	})
	if len(snap.Records) != 1 || snap.Records[0].Name != "Ann" {
		t.Fatalf("records = %#v, want previous data kept", snap.Records)
	}
	if snap.LastError == nil {
		t.Fatal("LastError = nil, want parse error")
	}

	writeRoster(t, path, "Cleopatra")
	waitFor(t, &store, func(s state.Snapshot) bool {
		return s.ConsecutiveFailures == 0 && len(s.Records) == 1 && s.Records[0].Name == "Cleopatra"
	})
}
