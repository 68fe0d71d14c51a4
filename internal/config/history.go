package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment variables configuring the run-history store.
const (
	EnvHistoryDriver = "C2T_HISTORY_DRIVER"
	EnvHistoryDB     = "C2T_HISTORY_DB"
	EnvHistoryDSN    = "C2T_HISTORY_DSN"
)

// HistoryConfig selects the backend for the run-history store.
type HistoryConfig struct {
	Driver string // "sqlite3" or "postgres"
	Path   string // sqlite database file
	DSN    string // postgres connection string
}

// HistoryFromEnv resolves the history store configuration. The default is a
// sqlite database under the user config directory.
func HistoryFromEnv() (HistoryConfig, error) {
	driver := strings.TrimSpace(os.Getenv(EnvHistoryDriver))
	if driver == "" {
		driver = "sqlite3"
	}

	switch driver {
	case "sqlite3":
		path := strings.TrimSpace(os.Getenv(EnvHistoryDB))
		if path == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return HistoryConfig{}, fmt.Errorf("cannot resolve user config dir: %w", err)
			}
			path = filepath.Join(base, "clip-whisper", "history.db")
		}
		return HistoryConfig{Driver: "sqlite3", Path: path}, nil
	case "postgres":
		dsn := strings.TrimSpace(os.Getenv(EnvHistoryDSN))
		if dsn == "" {
			return HistoryConfig{}, fmt.Errorf("%s is required when %s=postgres", EnvHistoryDSN, EnvHistoryDriver)
		}
		return HistoryConfig{Driver: "postgres", DSN: dsn}, nil
	default:
		return HistoryConfig{}, fmt.Errorf("unsupported history driver %q", driver)
	}
}
