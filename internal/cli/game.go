package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
)

// tokenOverride replaces the stored owner token when set
var tokenOverride string

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.PersistentFlags().StringVar(&tokenOverride, "token", "", "Owner token to use instead of the saved one")

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGamePlaceCmd())
	cmd.AddCommand(newGameRemoveCmd())
	cmd.AddCommand(newGameRecallCmd())
	cmd.AddCommand(newGameSubmitCmd())
	cmd.AddCommand(newGameAbandonCmd())

	return cmd
}

func gamePath(id string, parts ...string) string {
	path := "/api/v1/games/" + url.PathEscape(id)
	for _, p := range parts {
		path += "/" + url.PathEscape(p)
	}
	return path
}

// ownerToken finds the token for a game this CLI can move in
func ownerToken(id string) (string, error) {
	if tokenOverride != "" {
		return tokenOverride, nil
	}
	token, ok := tokens.Get(id)
	if !ok {
		return "", fmt.Errorf("no token saved for game %s (pass --token if it was created elsewhere)", id)
	}
	return token, nil
}

func newGameNewCmd() *cobra.Command {
	var req request.CreateGameRequest

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.CreateGameResponse

			if err := client.Post("/api/v1/games", "", req, &result); err != nil {
				return err
			}
			if err := tokens.Set(result.Game.ID, result.Token); err != nil {
				return fmt.Errorf("game %s created but its token could not be saved: %w", result.Game.ID, err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.BoardSize, "size", 0, "Board size (odd, 5-25; default from server)")
	cmd.Flags().IntVar(&req.TrayCapacity, "tray", 0, "Tray capacity (default from server)")

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List games on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the board, tray and score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameState

			if err := client.Get(gamePath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

// parsePlaceArgs reads <tile> <col> <row>. A single character is a letter,
// anything longer is a tile ID.
func parsePlaceArgs(args []string) (request.PlaceRequest, error) {
	var req request.PlaceRequest

	if utf8.RuneCountInString(args[0]) == 1 {
		req.Letter = args[0]
	} else {
		req.TileID = args[0]
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return req, fmt.Errorf("invalid col: %w", err)
	}
	row, err := strconv.Atoi(args[2])
	if err != nil {
		return req, fmt.Errorf("invalid row: %w", err)
	}
	req.Col = col
	req.Row = row
	return req, nil
}

func newGamePlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <id> <letter|tile-id> <col> <row>",
		Short: "Place a tile from your tray",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parsePlaceArgs(args[1:])
			if err != nil {
				return err
			}
			token, err := ownerToken(args[0])
			if err != nil {
				return err
			}

			var result response.GameState
			if err := client.Post(gamePath(args[0], "placements"), token, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id> <tile-id>",
		Short: "Take a tile placed this turn back to the tray",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := ownerToken(args[0])
			if err != nil {
				return err
			}

			var result response.GameState
			if err := client.Delete(gamePath(args[0], "placements", args[1]), token, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameRecallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recall <id>",
		Short: "Take every tile placed this turn back to the tray",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := ownerToken(args[0])
			if err != nil {
				return err
			}

			var result response.GameState
			if err := client.Post(gamePath(args[0], "recall"), token, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <id>",
		Short: "Submit the tiles placed this turn as a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := ownerToken(args[0])
			if err != nil {
				return err
			}

			var result response.SubmitResponse
			if err := client.Post(gamePath(args[0], "submit"), token, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newGameAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <id>",
		Short: "Abandon a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := ownerToken(args[0])
			if err != nil {
				return err
			}

			if err := client.Delete(gamePath(args[0]), token, nil); err != nil {
				return err
			}
			if err := tokens.Delete(args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Game %s abandoned", args[0]))
			return nil
		},
	}
}
