//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"clip-whisper/internal/api/server"
	"clip-whisper/internal/app/repository"
	"clip-whisper/internal/app/repository/pg"
	"clip-whisper/internal/app/repository/sqlite"
	"clip-whisper/internal/config"
)

// provideHistoryDAO opens the run-history store selected by the environment.
func provideHistoryDAO(cfg config.HistoryConfig) (repository.TranscriptionDAO, error) {
	if cfg.Driver == "postgres" {
		return pg.NewPostgresDB(cfg.DSN)
	}
	return sqlite.NewSQLiteDB(cfg.Path)
}

// provideProvidersConfig loads the optional providers.yaml.
func provideProvidersConfig() (*config.ProvidersConfig, error) {
	return config.LoadProvidersIfPresent(config.DefaultProvidersPath())
}

// InitializeHistoryDAO builds the run-history store from environment config.
func InitializeHistoryDAO() (repository.TranscriptionDAO, error) {
	wire.Build(config.HistoryFromEnv, provideHistoryDAO)
	return nil, nil
}

// InitializeServer builds the HTTP server with its history store and provider
// file configuration.
func InitializeServer(cfg server.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(config.HistoryFromEnv, provideHistoryDAO, provideProvidersConfig, server.NewServer)
	return nil, nil
}
