package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/patternview/internal/report"
)

// Snapshot represents the latest load state available to the UI.
type Snapshot struct {
	Source      string
	Patterns    []report.Pattern
	Loaded      bool
	Failed      bool // the loader gave up; LastError holds the final error
	LastUpdated time.Time
	LastError   error
	Attempts    int
}

// Pending reports whether the report is still being fetched.
func (s Snapshot) Pending() bool {
	return !s.Loaded && !s.Failed
}

// Store coordinates the loader goroutine and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin resets the store for a new load from source.
func (s *Store) Begin(source string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{Source: source, LastUpdated: time.Now()}
}

// Update records the outcome of one load attempt. When err is non-nil the
// previous data is kept but the error is recorded for visibility.
func (s *Store) Update(patterns []report.Pattern, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Attempts++
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		return
	}

	s.snapshot.Patterns = report.Clone(patterns)
	s.snapshot.Loaded = true
	s.snapshot.Failed = false
	s.snapshot.LastError = nil
}

// Fail marks the load as abandoned with err.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
	}
	s.snapshot.Failed = true
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Patterns = report.Clone(s.snapshot.Patterns)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
