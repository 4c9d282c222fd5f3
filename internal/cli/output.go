package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcoot/wordtiles/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		o.printf("%s\n", msg)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.CreateGameResponse:
		o.printGameState(v.Game)
		o.printf("\nOwner token saved for game %s\n", v.Game.ID)
	case response.GameState:
		o.printGameState(v)
	case response.SubmitResponse:
		o.printSubmit(v)
	case response.GameList:
		o.printGameList(v)
	case HealthResult:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGameState(g response.GameState) {
	o.printf("Game: %s\n", g.ID)
	o.printf("State: %s\n", g.State)
	o.printf("Score: %d\n", g.Score)
	o.printf("Tiles in bag: %d\n", g.BagRemaining)
	if g.Prompt != "" {
		o.printf("%s\n", g.Prompt)
	}

	o.printf("\n%s\n", RenderBoard(g.Board))

	tiles := make([]string, len(g.Tray))
	for i, t := range g.Tray {
		tiles[i] = fmt.Sprintf("%s:%s(%d)", t.ID, t.Letter, t.Points)
	}
	o.printf("Tray (%d/%d): %s\n", len(g.Tray), g.TrayCapacity, strings.Join(tiles, " "))
	if g.Pending > 0 {
		o.printf("Placed this turn: %d\n", g.Pending)
	}

	if len(g.Turns) > 0 {
		o.printf("\nWords:\n")
		for _, t := range g.Turns {
			o.printf("  %d. %s (%d pts)\n", t.Number, t.Word, t.Score)
		}
	}
}

func (o *Output) printSubmit(s response.SubmitResponse) {
	o.printf("%s\n", s.Message)
	if s.Accepted {
		o.printf("Word: %s\n", s.Word)
		o.printf("Total score: %d\n", s.TotalScore)
	}
	if s.BagExhausted {
		o.printf("The bag is empty\n")
	}
	o.printf("\n")
	o.printGameState(s.Game)
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		o.printf("No games\n")
		return
	}
	o.printf("%-24s %-10s %6s %6s %4s\n", "ID", "STATE", "SCORE", "TURNS", "BAG")
	for _, g := range l.Games {
		o.printf("%-24s %-10s %6d %6d %4d\n", g.ID, g.State, g.Score, g.TurnsPlayed, g.BagRemaining)
	}
}
