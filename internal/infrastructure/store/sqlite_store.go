package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/doeshing/factlog/internal/domain"
	"github.com/doeshing/factlog/internal/ports"
)

// SQLiteStore persists the collections as JSON documents in a key-value table
// inside a SQLite database. The wire shape is identical to FileStore, so the
// backends are interchangeable.
type SQLiteStore struct {
	db   *sql.DB
	dir  string
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) <dir>/factlog.db. If the database cannot
// be opened or initialized, the store degrades to file-backed operation.
func NewSQLiteStore(dir string) *SQLiteStore {
	path := filepath.Join(dir, "factlog.db")
	_ = os.MkdirAll(dir, 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{dir: dir, path: path}
	}
	store := &SQLiteStore{db: db, dir: dir, path: path}
	if err := store.init(); err != nil {
		_ = db.Close()
		return &SQLiteStore{dir: dir, path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	return err
}

// LoadRecords implements ports.StateStore.
func (s *SQLiteStore) LoadRecords() []domain.Record {
	if s.db == nil {
		return NewFileStore(s.dir).LoadRecords()
	}
	var records []domain.Record
	s.load(recordsKey, &records)
	return records
}

// SaveRecords implements ports.StateStore.
func (s *SQLiteStore) SaveRecords(records []domain.Record) error {
	if s.db == nil {
		return NewFileStore(s.dir).SaveRecords(records)
	}
	return s.save(recordsKey, records)
}

// LoadCommandRuns implements ports.StateStore.
func (s *SQLiteStore) LoadCommandRuns() []domain.CommandRun {
	if s.db == nil {
		return NewFileStore(s.dir).LoadCommandRuns()
	}
	var runs []domain.CommandRun
	s.load(commandRunsKey, &runs)
	return runs
}

// SaveCommandRuns implements ports.StateStore.
func (s *SQLiteStore) SaveCommandRuns(runs []domain.CommandRun) error {
	if s.db == nil {
		return NewFileStore(s.dir).SaveCommandRuns(runs)
	}
	return s.save(commandRunsKey, runs)
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) load(key string, out interface{}) {
	var value string
	err := s.db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&value)
	if err != nil {
		return
	}
	_ = json.Unmarshal([]byte(value), out)
}

func (s *SQLiteStore) save(key string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(data))
	return err
}

var _ ports.StateStore = (*SQLiteStore)(nil)
