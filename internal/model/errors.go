package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound  = errors.New("game not found")
	ErrGameAbandoned = errors.New("game has been abandoned")

	// Placement errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidLetter   = errors.New("invalid letter")

	// Tile errors
	ErrTileNotInTray        = errors.New("tile is not in the tray")
	ErrTileNotPending       = errors.New("tile is not pending on the board")
	ErrTrayCapacityExceeded = errors.New("tray capacity exceeded")

	// Auth errors
	ErrInvalidToken = errors.New("invalid game token")

	// Ruleset errors
	ErrInvalidBoardSize = errors.New("unsupported board size")
	ErrInvalidRuleset   = errors.New("invalid ruleset")
)
