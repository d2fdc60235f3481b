package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/factlog/internal/domain"
	"github.com/doeshing/factlog/internal/ports"
)

// RecordService owns the record collection: create, delete (with cascade over
// the command-run log), search, list, and export. Every mutation is persisted
// synchronously.
type RecordService struct {
	State  *State
	Store  ports.StateStore
	Logger ports.Logger

	// Now and NewID are overridable for tests; nil means time.Now / uuid.
	Now   func() time.Time
	NewID func() string
}

// Create validates valueText as an integer, builds the record, prepends it to
// the collection, and persists. The label is trimmed; blank collapses to
// absent. A non-integer value is the only hard error in the system.
func (s *RecordService) Create(label, valueText string) (domain.Record, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(valueText), 10, 64)
	if err != nil {
		return domain.Record{}, domain.NewValidationError("value", strconv.Quote(valueText)+" is not an integer")
	}

	record := domain.Record{
		ID:        s.newID(),
		Label:     domain.NormalizeLabel(label),
		Value:     value,
		CreatedAt: s.now(),
	}
	s.State.PrependRecord(record)
	if err := s.Store.SaveRecords(s.State.Records()); err != nil {
		return domain.Record{}, err
	}
	s.Logger.Debug("record created", map[string]interface{}{"id": record.ID, "value": record.Value})
	return record, nil
}

// Delete removes the record with the given id and cascades over the run log,
// pruning every run that referenced it. Deleting an absent id is a no-op, so
// retries from the UI are harmless.
func (s *RecordService) Delete(id string) error {
	if !s.State.RemoveRecord(id) {
		return nil
	}
	pruned := s.State.PruneRunsFor(id)
	if err := s.Store.SaveRecords(s.State.Records()); err != nil {
		return err
	}
	if err := s.Store.SaveCommandRuns(s.State.Runs()); err != nil {
		return err
	}
	s.Logger.Debug("record deleted", map[string]interface{}{"id": id, "runs_pruned": pruned})
	return nil
}

// List returns all records, newest-first.
func (s *RecordService) List() []domain.Record {
	return s.State.Records()
}

// Search filters records by case-insensitive substring match against the
// label, the decimal form of the value, and the id. A record matches if any
// field contains the query. Blank queries return the full list unfiltered.
func (s *RecordService) Search(query string) []domain.Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.List()
	}
	var matched []domain.Record
	for _, r := range s.State.Records() {
		if strings.Contains(strings.ToLower(r.Label), q) ||
			strings.Contains(strconv.FormatInt(r.Value, 10), q) ||
			strings.Contains(strings.ToLower(r.ID), q) {
			matched = append(matched, r)
		}
	}
	return matched
}

// ExportJSON serializes the current record collection as indented JSON. Pure
// formatting, no persistence side effect.
func (s *RecordService) ExportJSON() (string, error) {
	records := s.State.Records()
	if records == nil {
		records = []domain.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *RecordService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *RecordService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
