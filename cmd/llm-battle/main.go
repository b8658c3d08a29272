package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/api"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/constants"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/game"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/logging"
	"github.com/oscar-fern-labs/llm-pokemon-battle/internal/version"
)

func main() {
	cfg := loadConfigOrExit()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	logging.Info("Configuration loaded", logging.Fields{
		constants.LogFieldSource: cfg.Source,
		constants.LogFieldCount:  len(cfg.Characters),
		"version":                version.Version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog := game.NewCatalog(cfg.Characters)
	store := newSessionStore(cfg)
	// Background reaper: drops finished battles past their TTL and active
	// ones nobody has touched for a while.
	store.StartReaper(ctx, cfg.ReapInterval)

	repo := createRepositoryOrExit(cfg.DatabaseDSN)

	handler := api.NewHandler(api.Options{
		Catalog:    catalog,
		Chart:      cfg.Chart(),
		Store:      store,
		Archive:    repo,
		AIMaxTurns: cfg.AIMaxTurns,
	})
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: api.NewRouter(handler),
	}
	if err := serve(ctx, srv); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
