package main

import (
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/config"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/logging"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/session"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/storage"
)

func loadConfigOrExit() *config.LoadedConfig {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Missing or invalid battle configuration", err, logging.Fields{
			"hint": "set " + constants.EnvConfigPath + " to a JSON or YAML file with a 'character_list' array, or unset it to use the built-in roster",
		})
	}
	return cfg
}

func createRepositoryOrExit(dsn string) storage.Repository {
	db, err := storage.OpenAndMigrate(dsn)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, logging.Fields{constants.LogFieldDSN: dsn})
	}
	return storage.NewSQLiteRepository(db)
}

func newSessionStore(cfg *config.LoadedConfig) *session.Store {
	return session.NewStore(session.Options{
		Chart:   cfg.Chart(),
		LogTail: cfg.LogTail,
		Policy:  session.TTLPolicy{Finished: cfg.SessionTTL, Idle: cfg.IdleTTL},
	})
}
