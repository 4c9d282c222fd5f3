package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/services/board"
	"github.com/mcoot/wordtiles/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
	boardService   *board.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface, boardService *board.Service) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		boardService:   boardService,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	created, err := h.gameController.CreateGame(r.Context(), game.NewGameOptions{
		BoardSize:    req.BoardSize,
		TrayCapacity: req.TrayCapacity,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.CreateGameResponse{
		Game:  response.GameStateFromModel(created.Game, h.boardService),
		Token: created.Token,
	}
	response.JSON(w, http.StatusCreated, resp)
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.gameController.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListFromModel(summaries))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g, h.boardService))
}

// Place handles POST /api/v1/games/{id}/placements
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	at := model.At(req.Col, req.Row)

	var (
		g   *model.Game
		err error
	)
	switch {
	case req.TileID != "":
		g, err = h.gameController.PlaceTile(r.Context(), gameID(r), model.TileID(req.TileID), at)
	case utf8.RuneCountInString(req.Letter) == 1:
		letter, _ := utf8.DecodeRuneInString(req.Letter)
		g, err = h.gameController.PlaceLetter(r.Context(), gameID(r), letter, at)
	case req.Letter != "":
		err = model.ErrInvalidLetter
	default:
		err = NewInvalidRequestError("tile_id or letter is required")
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g, h.boardService))
}

// Remove handles DELETE /api/v1/games/{id}/placements/{tile_id}
func (h *GameHandler) Remove(w http.ResponseWriter, r *http.Request) {
	tileID := model.TileID(mux.Vars(r)["tile_id"])

	g, err := h.gameController.RemoveTile(r.Context(), gameID(r), tileID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g, h.boardService))
}

// Recall handles POST /api/v1/games/{id}/recall
func (h *GameHandler) Recall(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.RecallTiles(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameStateFromModel(g, h.boardService))
}

// Submit handles POST /api/v1/games/{id}/submit.
// A rejected placement is still a 200; the verdict is in the body.
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.SubmitTurn(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitResponseFromResult(result, h.boardService))
}

// Abandon handles DELETE /api/v1/games/{id}
func (h *GameHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.AbandonGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}
