// Package pages holds the full web pages
package pages

import (
	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
)

// HomeData is the data for the home page
type HomeData struct {
	layout.PageData
	Games     []model.GameSummary
	BoardSize int // Preselected in the new game form
}

// GameData is the data for the game page
type GameData struct {
	layout.PageData
	Game response.GameState
	// Owner is set when the visitor holds the game's token
	Owner bool
}

// Playable reports whether the move controls should be shown
func (d GameData) Playable() bool {
	return d.Owner && d.Game.State == string(model.GameStateActive)
}

func boardSizes() []int {
	var sizes []int
	for size := model.MinBoardSize; size <= model.MaxBoardSize; size += 2 {
		sizes = append(sizes, size)
	}
	return sizes
}
