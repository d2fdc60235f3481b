// Package store provides the persistence adapters for the two application
// collections. Both backends speak the same soft-fail contract: a load never
// returns an error, a missing or unparseable payload degrades to empty.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/natefinch/atomic"

	"github.com/doeshing/factlog/internal/domain"
	"github.com/doeshing/factlog/internal/ports"
)

// Logical keys for the two persisted collections.
const (
	recordsKey     = "records"
	commandRunsKey = "commands"
)

// FileStore keeps one JSON document per collection key under the data dir.
// Saves replace the whole document atomically.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a store rooted at dir (created lazily on first save).
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// LoadRecords implements ports.StateStore.
func (f *FileStore) LoadRecords() []domain.Record {
	var records []domain.Record
	f.load(recordsKey, &records)
	return records
}

// SaveRecords implements ports.StateStore.
func (f *FileStore) SaveRecords(records []domain.Record) error {
	return f.save(recordsKey, records)
}

// LoadCommandRuns implements ports.StateStore.
func (f *FileStore) LoadCommandRuns() []domain.CommandRun {
	var runs []domain.CommandRun
	f.load(commandRunsKey, &runs)
	return runs
}

// SaveCommandRuns implements ports.StateStore.
func (f *FileStore) SaveCommandRuns(runs []domain.CommandRun) error {
	return f.save(commandRunsKey, runs)
}

// Close implements ports.StateStore. The file store holds no open handles.
func (f *FileStore) Close() error {
	return nil
}

// Dir exposes the backing directory path.
func (f *FileStore) Dir() string {
	return f.dir
}

// load reads the document for key into out, best-effort. Absent or malformed
// data leaves out untouched, so callers get an empty collection.
func (f *FileStore) load(key string, out interface{}) {
	data, err := os.ReadFile(f.pathFor(key))
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, out)
}

func (f *FileStore) save(key string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return atomic.WriteFile(f.pathFor(key), bytes.NewReader(data))
}

func (f *FileStore) pathFor(key string) string {
	return filepath.Join(f.dir, key+".json")
}

var _ ports.StateStore = (*FileStore)(nil)
