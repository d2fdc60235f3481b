package domain

// Config mirrors ~/.factlog/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Storage             StorageSettings `yaml:"storage"`
	History             HistorySettings `yaml:"history"`
}

// StorageSettings selects the persistence backend and its location.
type StorageSettings struct {
	// Backend is "file" or "sqlite".
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir"`
}

// HistorySettings bounds the command-run log.
type HistorySettings struct {
	Limit int `yaml:"limit"`
}
