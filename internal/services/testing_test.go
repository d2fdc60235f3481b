package services

import (
	"fmt"
	"time"

	"github.com/doeshing/factlog/internal/domain"
	"github.com/doeshing/factlog/internal/pkg/logger"
	"github.com/doeshing/factlog/internal/ports"
)

// stubStore is an in-memory StateStore that records what was saved.
type stubStore struct {
	records []domain.Record
	runs    []domain.CommandRun

	recordSaves int
	runSaves    int

	saveRecordsErr error
	saveRunsErr    error
}

func (s *stubStore) LoadRecords() []domain.Record { return s.records }

func (s *stubStore) SaveRecords(records []domain.Record) error {
	if s.saveRecordsErr != nil {
		return s.saveRecordsErr
	}
	s.records = records
	s.recordSaves++
	return nil
}

func (s *stubStore) LoadCommandRuns() []domain.CommandRun { return s.runs }

func (s *stubStore) SaveCommandRuns(runs []domain.CommandRun) error {
	if s.saveRunsErr != nil {
		return s.saveRunsErr
	}
	s.runs = runs
	s.runSaves++
	return nil
}

func (s *stubStore) Close() error { return nil }

var _ ports.StateStore = (*stubStore)(nil)

// newFixture wires a RecordService and Engine over a fresh stub store with a
// deterministic clock and id sequence.
func newFixture() (*RecordService, *Engine, *stubStore) {
	store := &stubStore{}
	state := LoadState(store)
	log := logger.NewStd(false)

	seq := 0
	nextID := func() string {
		seq++
		return fmt.Sprintf("id-%04d", seq)
	}
	tick := 0
	now := func() time.Time {
		tick++
		return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC).Add(time.Duration(tick) * time.Second)
	}

	records := &RecordService{State: state, Store: store, Logger: log, Now: now, NewID: nextID}
	engine := &Engine{State: state, Store: store, Logger: log, Now: now, NewID: nextID}
	return records, engine, store
}
