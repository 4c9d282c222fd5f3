package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/web/middleware"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
	"github.com/mcoot/wordtiles/internal/web/templates/pages"
)

// GameHandler handles game pages and actions
type GameHandler struct {
	gameController game.ControllerInterface
	boardService   *board.Service
	logger         *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController game.ControllerInterface, boardService *board.Service, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		boardService:   boardService,
		logger:         logger,
	}
}

// Create starts a game and hands the owner token to this browser
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var opts game.NewGameOptions
	if size := r.FormValue("board_size"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			middleware.SetFlash(w, "error", "Board size must be a number")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		opts.BoardSize = n
	}

	created, err := h.gameController.CreateGame(r.Context(), opts)
	if err != nil {
		middleware.SetFlash(w, "error", errorMessage(err))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	middleware.SetGameToken(w, created.Game.ID, created.Token)
	http.Redirect(w, r, gamePath(created.Game.ID), http.StatusSeeOther)
}

// View renders the game page
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			middleware.SetFlash(w, "error", "Game not found")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.GameData{
		PageData: layout.PageData{
			Title: "Game " + string(g.ID),
			Flash: middleware.GetFlash(r.Context()),
		},
		Game:  response.GameStateFromModel(g, h.boardService),
		Owner: middleware.IsOwner(r.Context()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Game(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Place puts a tray tile on the board. The tile is picked by tile_id or,
// failing that, by letter.
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	col, colErr := strconv.Atoi(r.FormValue("col"))
	row, rowErr := strconv.Atoi(r.FormValue("row"))
	if colErr != nil || rowErr != nil {
		h.redirectWithError(w, r, id, model.ErrInvalidPosition)
		return
	}
	at := model.At(col, row)

	var err error
	if tileID := r.FormValue("tile_id"); tileID != "" {
		_, err = h.gameController.PlaceTile(r.Context(), id, model.TileID(tileID), at)
	} else {
		letter := []rune(strings.TrimSpace(r.FormValue("letter")))
		if len(letter) != 1 {
			err = model.ErrInvalidLetter
		} else {
			_, err = h.gameController.PlaceLetter(r.Context(), id, letter[0], at)
		}
	}
	if err != nil {
		h.redirectWithError(w, r, id, err)
		return
	}

	http.Redirect(w, r, gamePath(id), http.StatusSeeOther)
}

// Remove takes a pending tile back to the tray
func (h *GameHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if _, err := h.gameController.RemoveTile(r.Context(), id, model.TileID(r.FormValue("tile_id"))); err != nil {
		h.redirectWithError(w, r, id, err)
		return
	}

	http.Redirect(w, r, gamePath(id), http.StatusSeeOther)
}

// Recall returns every pending tile to the tray
func (h *GameHandler) Recall(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if _, err := h.gameController.RecallTiles(r.Context(), id); err != nil {
		h.redirectWithError(w, r, id, err)
		return
	}

	http.Redirect(w, r, gamePath(id), http.StatusSeeOther)
}

// Submit validates and scores the pending word
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	result, err := h.gameController.SubmitTurn(r.Context(), id)
	if err != nil {
		h.redirectWithError(w, r, id, err)
		return
	}

	if result.Verdict.Accepted() {
		middleware.SetFlash(w, "success", response.AcceptMessage(result.Turn.Score))
	} else {
		middleware.SetFlash(w, "error", response.RejectMessage(result.Verdict.Reason))
	}
	http.Redirect(w, r, gamePath(id), http.StatusSeeOther)
}

// Abandon ends the game
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.gameController.AbandonGame(r.Context(), id); err != nil {
		h.redirectWithError(w, r, id, err)
		return
	}

	middleware.SetFlash(w, "info", "Game abandoned")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *GameHandler) redirectWithError(w http.ResponseWriter, r *http.Request, id model.GameID, err error) {
	msg := errorMessage(err)
	if msg == internalErrorMessage {
		h.logger.Error("game action failed",
			slog.String("game_id", string(id)),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	middleware.SetFlash(w, "error", msg)
	http.Redirect(w, r, gamePath(id), http.StatusSeeOther)
}

const internalErrorMessage = "Something went wrong. Please try again."

// errorMessage turns a controller error into text for the player
func errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return "Game not found"
	case errors.Is(err, model.ErrGameAbandoned):
		return "This game has been abandoned"
	case errors.Is(err, model.ErrInvalidPosition):
		return "That square is not on the board"
	case errors.Is(err, model.ErrCellOccupied):
		return "That square is already taken"
	case errors.Is(err, model.ErrInvalidLetter):
		return "Letter must be A-Z"
	case errors.Is(err, model.ErrTileNotInTray):
		return "That tile is not in your tray"
	case errors.Is(err, model.ErrTileNotPending):
		return "That tile was not placed this turn"
	case errors.Is(err, model.ErrInvalidBoardSize):
		return "Board size must be odd and between 5 and 25"
	default:
		return internalErrorMessage
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

func gamePath(id model.GameID) string {
	return "/games/" + string(id)
}
