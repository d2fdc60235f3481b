package domain

// Storage backend names accepted in the config file.
const (
	StorageBackendFile   = "file"
	StorageBackendSQLite = "sqlite"
)

// GetStorageBackend returns the configured backend, defaulting to the file
// store for empty or unrecognized values.
func (c *Config) GetStorageBackend() string {
	if c.Storage.Backend == StorageBackendSQLite {
		return StorageBackendSQLite
	}
	return StorageBackendFile
}

// GetHistoryLimit returns the maximum number of command runs to retain.
func (c *Config) GetHistoryLimit() int {
	if c.History.Limit <= 0 {
		return HistoryLimit
	}
	return c.History.Limit
}
