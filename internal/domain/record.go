// Package domain defines core business entities and value objects for factlog.
//
// The domain layer is independent of infrastructure concerns and represents pure
// business logic and data structures: the numeric records users create, the
// immutable log of command runs executed against them, and the composite-number
// check itself.
package domain

import (
	"strings"
	"time"
)

// Record is a user-created numeric entry. The ID is assigned once at creation
// and never reused, even after the record is deleted.
type Record struct {
	ID        string    `json:"id"`
	Label     string    `json:"label,omitempty"`
	Value     int64     `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// HasLabel reports whether the record carries a label. Labels are trimmed at
// creation and an empty string means absent.
func (r Record) HasLabel() bool {
	return r.Label != ""
}

// CommandRun is one execution of a named command. It is computed once and
// immutable afterwards; RecordID is a weak back reference that may stop
// resolving once the record is deleted.
type CommandRun struct {
	ID        string    `json:"id"`
	RecordID  string    `json:"record_id,omitempty"`
	Command   string    `json:"command"`
	Output    string    `json:"output"`
	StartedAt time.Time `json:"started_at"`
}

// Recognized command names. Any other name is accepted by the engine and
// produces an "unknown command" output instead of an error.
const (
	CommandCheck    = "check"
	CommandCheckAll = "check:all"
)

// HistoryLimit is the maximum number of command runs retained, oldest evicted
// first.
const HistoryLimit = 200

// NormalizeLabel trims surrounding whitespace so that blank labels collapse to
// absent.
func NormalizeLabel(label string) string {
	return strings.TrimSpace(label)
}
