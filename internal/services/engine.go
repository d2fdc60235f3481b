package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/factlog/internal/domain"
	"github.com/doeshing/factlog/internal/ports"
)

// Engine executes named commands against the record collection and maintains
// the bounded command-run log. The engine never fails on dispatch: unknown
// commands, missing records, and empty record sets all produce successful runs
// whose output describes the situation.
type Engine struct {
	State        *State
	Store        ports.StateStore
	Logger       ports.Logger
	HistoryLimit int

	// Now and NewID are overridable for tests; nil means time.Now / uuid.
	Now   func() time.Time
	NewID func() string
}

// Run dispatches command, records the outcome as an immutable CommandRun,
// prepends it to the history, evicts entries beyond the limit, and persists.
// The returned error only ever reflects a persistence failure.
func (e *Engine) Run(command, recordID string) (domain.CommandRun, error) {
	run := domain.CommandRun{
		ID:        e.newID(),
		Command:   command,
		StartedAt: e.now(),
	}

	switch command {
	case domain.CommandCheck:
		// RecordID is only recorded when the target resolved at execution
		// time; a not-found check stays a global log entry.
		if record, ok := e.lookup(recordID); ok {
			run.RecordID = record.ID
			run.Output = domain.CheckComposite(record.Value).Verdict()
		} else {
			run.Output = notFoundMessage(recordID)
		}
	case domain.CommandCheckAll:
		// Global command: a supplied record id is ignored and not recorded.
		run.Output = e.checkAll()
	default:
		run.Output = "Unknown command: " + command
	}

	e.State.PrependRun(run, e.historyLimit())
	if err := e.Store.SaveCommandRuns(e.State.Runs()); err != nil {
		return domain.CommandRun{}, err
	}
	e.Logger.Debug("command executed", map[string]interface{}{"command": command, "run_id": run.ID})
	return run, nil
}

// History returns the run log, newest-first, already truncated.
func (e *Engine) History() []domain.CommandRun {
	return e.State.Runs()
}

// LatestOutput returns the output of the most recent run, or false if the
// history is empty.
func (e *Engine) LatestOutput() (string, bool) {
	runs := e.State.Runs()
	if len(runs) == 0 {
		return "", false
	}
	return runs[0].Output, true
}

// lookup resolves the target record; a blank id never resolves.
func (e *Engine) lookup(recordID string) (domain.Record, bool) {
	if recordID == "" {
		return domain.Record{}, false
	}
	return e.State.FindRecord(recordID)
}

// notFoundMessage describes a failed lookup, for example a record deleted
// since the UI rendered it. This is a successful run's output, not an error.
func notFoundMessage(recordID string) string {
	if recordID == "" {
		return "Record not found: no record id provided"
	}
	return "Record not found: " + recordID
}

// checkAll applies the composite check to every current record, one line per
// record in list order (newest-first), blank-line separated. Zero records
// yields an empty output.
func (e *Engine) checkAll() string {
	records := e.State.Records()
	lines := make([]string, 0, len(records))
	for _, r := range records {
		res := domain.CheckComposite(r.Value)
		lines = append(lines, fmt.Sprintf("%s (%d) → %s", r.ID, r.Value, res.Verdict()))
	}
	return strings.Join(lines, "\n\n")
}

func (e *Engine) historyLimit() int {
	if e.HistoryLimit > 0 {
		return e.HistoryLimit
	}
	return domain.HistoryLimit
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) newID() string {
	if e.NewID != nil {
		return e.NewID()
	}
	return uuid.NewString()
}
