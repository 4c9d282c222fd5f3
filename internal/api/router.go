package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/handler"
	"github.com/mcoot/wordtiles/internal/api/middleware"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	BoardService   *board.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	Register(r, cfg)
	return r
}

// Register mounts the API under /api/v1 on an existing router
func Register(r *mux.Router, cfg RouterConfig) {
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BoardService)

	// Create middleware
	tokenMiddleware := middleware.GameToken(cfg.GameController)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Reads and game creation are public
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)

	// Mutations require the owner token
	owned := api.PathPrefix("/games/{id}").Subrouter()
	owned.Use(tokenMiddleware)
	owned.HandleFunc("", gameHandler.Abandon).Methods(http.MethodDelete)
	owned.HandleFunc("/placements", gameHandler.Place).Methods(http.MethodPost)
	owned.HandleFunc("/placements/{tile_id}", gameHandler.Remove).Methods(http.MethodDelete)
	owned.HandleFunc("/recall", gameHandler.Recall).Methods(http.MethodPost)
	owned.HandleFunc("/submit", gameHandler.Submit).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
