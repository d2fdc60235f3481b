// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The application depends on these abstractions rather
// than on concrete storage or CLI implementations.
package ports

import (
	"context"

	"github.com/doeshing/factlog/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.factlog/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// StateStore persists the two application collections under independent keys.
//
// Loads fail soft: absent, malformed, or foreign data yields an empty slice,
// never an error, so a corrupted file cannot abort startup. Saves fully
// overwrite the prior value for that key. There is no transactional guarantee
// across the two keys.
type StateStore interface {
	LoadRecords() []domain.Record
	SaveRecords([]domain.Record) error
	LoadCommandRuns() []domain.CommandRun
	SaveCommandRuns([]domain.CommandRun) error
	Close() error
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
