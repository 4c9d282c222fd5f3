package web

//go:generate go run github.com/a-h/templ/cmd/templ generate -path templates

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/web/handler"
	"github.com/mcoot/wordtiles/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	BoardService   *board.Service
	// BoardSize is preselected in the new game form
	BoardSize int
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	Register(r, cfg)
	return r
}

// Register mounts the web pages on an existing router
func Register(r *mux.Router, cfg RouterConfig) {
	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	ownerMiddleware := middleware.Owner(cfg.GameController)
	optionalOwnerMiddleware := middleware.OptionalOwner(cfg.GameController)

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.GameController, cfg.BoardSize)
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.BoardService, cfg.Logger)

	pages := r.NewRoute().Subrouter()
	pages.Use(recoveryMiddleware)
	pages.Use(loggingMiddleware)
	pages.Use(flashMiddleware)

	// Public pages
	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)

	view := pages.PathPrefix("/games/{id}").Subrouter()
	view.Use(optionalOwnerMiddleware)
	view.HandleFunc("", gameHandler.View).Methods(http.MethodGet)

	// Moves require the owner cookie
	owned := pages.PathPrefix("/games/{id}").Subrouter()
	owned.Use(ownerMiddleware)
	owned.HandleFunc("/place", gameHandler.Place).Methods(http.MethodPost)
	owned.HandleFunc("/remove", gameHandler.Remove).Methods(http.MethodPost)
	owned.HandleFunc("/recall", gameHandler.Recall).Methods(http.MethodPost)
	owned.HandleFunc("/submit", gameHandler.Submit).Methods(http.MethodPost)
	owned.HandleFunc("/abandon", gameHandler.Abandon).Methods(http.MethodPost)
}
