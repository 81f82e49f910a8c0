// Package state owns the handoff between catalog ingestion and the UI.
package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/tansell/skugrid/internal/catalog"
)

// Snapshot represents the outcome of the one-shot catalog ingestion as the
// UI sees it. Until Loaded flips true (or Err is set) the UI stays in its
// loading phase and runs no query or render operations.
type Snapshot struct {
	Records  []catalog.Record
	Loaded   bool
	Err      error
	LoadedAt time.Time
}

// Store coordinates the handoff from the ingestion goroutine to the UI.
// Ingestion is the only writer and completes at most once; afterwards the
// record sequence is read-only shared state.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Complete records the ingestion outcome. On error the store stays
// unloaded forever: there is no fallback data and no retry, the failure is
// surfaced instead. A second call after success is ignored.
func (s *Store) Complete(records []catalog.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Loaded {
		return
	}
	if err != nil {
		s.snapshot.Err = err
		s.snapshot.LoadedAt = time.Now()
		return
	}
	s.snapshot.Records = records
	s.snapshot.Loaded = true
	s.snapshot.Err = nil
	s.snapshot.LoadedAt = time.Now()
}

// Snapshot returns a copy of the current snapshot. The record slice header
// is cloned; the records themselves are immutable.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if len(s.snapshot.Records) > 0 {
		snap.Records = make([]catalog.Record, len(s.snapshot.Records))
		copy(snap.Records, s.snapshot.Records)
	}
	if s.snapshot.Err != nil {
		snap.Err = fmt.Errorf("%w", s.snapshot.Err)
	}
	return snap
}
