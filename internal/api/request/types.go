package request

// CreateGameRequest is the request body for starting a game.
// Zero values fall back to the server's ruleset.
type CreateGameRequest struct {
	BoardSize    int `json:"board_size,omitempty"`
	TrayCapacity int `json:"tray_capacity,omitempty"`
}

// PlaceRequest is the request body for placing a tile.
// Either TileID or Letter picks the tile; TileID wins when both are set.
type PlaceRequest struct {
	TileID string `json:"tile_id,omitempty"`
	Letter string `json:"letter,omitempty"`
	Col    int    `json:"col"`
	Row    int    `json:"row"`
}
