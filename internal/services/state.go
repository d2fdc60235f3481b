// Package services holds the application core: the shared state object and the
// two use-case services that own all mutation of it.
package services

import (
	"sync"

	"github.com/doeshing/factlog/internal/domain"
	"github.com/doeshing/factlog/internal/ports"
)

// State is the process-wide application state: the record collection and the
// command-run log, both newest-first. It is constructed once at startup from
// the persisted mirror and only mutated through RecordService and Engine.
type State struct {
	mu      sync.Mutex
	records []domain.Record
	runs    []domain.CommandRun
}

// LoadState builds the in-memory state from the store. Loads fail soft, so a
// corrupted or absent mirror yields empty collections rather than an error.
func LoadState(store ports.StateStore) *State {
	return &State{
		records: store.LoadRecords(),
		runs:    store.LoadCommandRuns(),
	}
}

// Records returns a copy of the record collection, newest-first.
func (s *State) Records() []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out
}

// FindRecord looks up a record by id.
func (s *State) FindRecord(id string) (domain.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Record{}, false
}

// PrependRecord inserts a freshly created record at the head.
func (s *State) PrependRecord(r domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]domain.Record{r}, s.records...)
}

// RemoveRecord deletes the record with the given id and reports whether it was
// present.
func (s *State) RemoveRecord(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Runs returns a copy of the command-run log, newest-first.
func (s *State) Runs() []domain.CommandRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CommandRun, len(s.runs))
	copy(out, s.runs)
	return out
}

// PrependRun inserts a run at the head and evicts the oldest entries beyond
// limit.
func (s *State) PrependRun(run domain.CommandRun, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = append([]domain.CommandRun{run}, s.runs...)
	if limit > 0 && len(s.runs) > limit {
		s.runs = s.runs[:limit]
	}
}

// PruneRunsFor drops every run whose RecordID matches id, keeping the log
// consistent with live records after a cascade delete.
func (s *State) PruneRunsFor(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.runs[:0]
	removed := 0
	for _, run := range s.runs {
		if run.RecordID == id {
			removed++
			continue
		}
		kept = append(kept, run)
	}
	s.runs = kept
	return removed
}
