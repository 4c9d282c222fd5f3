package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/wordtiles/internal/api"
	"github.com/mcoot/wordtiles/internal/config"
	"github.com/mcoot/wordtiles/internal/factory"
	"github.com/mcoot/wordtiles/internal/web"
)

func main() {
	srvCfg, err := config.LoadServer(".env")
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: srvCfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ruleset, err := config.LoadRuleset(srvCfg.RulesetPath)
	if err != nil {
		logger.Error("failed to load ruleset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create application factory
	app, err := factory.New(factory.FromServerConfig(srvCfg, ruleset, logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close application", slog.String("error", err.Error()))
		}
	}()

	logger.Info("application ready",
		slog.String("storage", srvCfg.StorageType),
		slog.Int("board_size", ruleset.BoardSize),
		slog.Int("tray_capacity", ruleset.TrayCapacity),
	)

	// API under /api/v1, pages everywhere else
	router := mux.NewRouter()
	api.Register(router, api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		BoardService:   app.BoardService,
	})
	web.Register(router, web.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		BoardService:   app.BoardService,
		BoardSize:      ruleset.BoardSize,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = srvCfg.Host
	serverConfig.Port = srvCfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}
