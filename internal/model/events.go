package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameCreated   EventType = "game_created"
	EventTilePlaced    EventType = "tile_placed"
	EventTileRemoved   EventType = "tile_removed"
	EventTilesRecalled EventType = "tiles_recalled"
	EventTurnAccepted  EventType = "turn_accepted"
	EventTurnRejected  EventType = "turn_rejected"
	EventBagExhausted  EventType = "bag_exhausted"
	EventGameAbandoned EventType = "game_abandoned"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	GameID    GameID    `json:"game_id"`
	Payload   any       `json:"payload,omitempty"` // Type-specific data
}

// GameCreatedPayload contains data for game created events
type GameCreatedPayload struct {
	BoardSize    int `json:"board_size"`
	TrayCapacity int `json:"tray_capacity"`
	BagRemaining int `json:"bag_remaining"`
}

// TilePlacedPayload contains data for tile placed events
type TilePlacedPayload struct {
	TileID TileID     `json:"tile_id"`
	Letter string     `json:"letter"`
	At     Coordinate `json:"at"`
}

// TileRemovedPayload contains data for tile removed events
type TileRemovedPayload struct {
	TileID TileID `json:"tile_id"`
}

// TilesRecalledPayload contains data for tiles recalled events
type TilesRecalledPayload struct {
	Count int `json:"count"`
}

// TurnAcceptedPayload contains data for turn accepted events
type TurnAcceptedPayload struct {
	Turn       TurnRecord `json:"turn"`
	TotalScore int        `json:"total_score"`
}

// TurnRejectedPayload contains data for turn rejected events
type TurnRejectedPayload struct {
	Reason RejectReason `json:"reason"`
}

// BagExhaustedPayload contains data for bag exhausted events
type BagExhaustedPayload struct {
	TrayRemaining int `json:"tray_remaining"`
}

// GameAbandonedPayload contains data for game abandoned events
type GameAbandonedPayload struct {
	Reason string `json:"reason"`
}
