// Package components holds the pieces of the game page
package components

import (
	"strconv"

	"github.com/mcoot/wordtiles/internal/services/board"
)

func cellClass(cell board.CellView) string {
	class := "cell cell-" + string(cell.State) + " bonus-" + cell.Bonus
	if cell.Center {
		class += " cell-center"
	}
	return class
}

func gamePath(id, action string) string {
	return "/games/" + id + "/" + action
}

// Highest col or row the place form accepts
func maxIndex(size int) string {
	return strconv.Itoa(size - 1)
}
