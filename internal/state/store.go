package state

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/five82/roster/internal/records"
)

// Snapshot is the latest roster available to the UI.
type Snapshot struct {
	Records []records.Record
	// Source names where the records came from (a path or "sample roster").
	Source string
	// Generation increases on every successful load so readers can tell
	// whether Records changed since they last looked.
	Generation  uint64
	LastLoaded  time.Time
	LastAttempt time.Time
	LastError   error
	// ConsecutiveFailures counts reloads that failed since the last success.
	ConsecutiveFailures int
}

// IsStale reports whether the displayed records have failed to refresh
// more than once in a row.
func (s Snapshot) IsStale() bool {
	return s.ConsecutiveFailures >= 2
}

// HasRecords reports whether any load has succeeded yet.
func (s Snapshot) HasRecords() bool {
	return s.Generation > 0
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of a load. When err is non-nil the previous
// records are kept and only the error and attempt time change.
func (s *Store) Update(recs []records.Record, source string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot.LastAttempt = now
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Records = cloneRecords(recs)
	s.snapshot.Source = source
	s.snapshot.Generation++
	s.snapshot.LastLoaded = now
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

// Generation returns the current generation without copying records.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Generation
}

func cloneRecords(recs []records.Record) []records.Record {
	if len(recs) == 0 {
		return nil
	}
	return slices.Clone(recs)
}
