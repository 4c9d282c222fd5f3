package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordtiles/internal/api"
	"github.com/mcoot/wordtiles/internal/api/apierr"
	"github.com/mcoot/wordtiles/internal/factory"
	"github.com/mcoot/wordtiles/internal/services/game"
	"github.com/mcoot/wordtiles/internal/testutil"
)

// runCLI executes the root command against a live test API
func runCLI(t *testing.T, server *httptest.Server, tokenFile string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", server.URL, "--tokens", tokenFile}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	// Deals "TTIHCAA" as tiles t1 to t7
	app := factory.NewTestAppWithRuleset(testutil.Ruleset("AAACHITT"))
	server := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: app.GameController,
		BoardService:   app.BoardService,
	}))
	t.Cleanup(server.Close)
	return server
}

func TestTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tokens.yaml")

	store, err := LoadTokenStore(path)
	require.NoError(t, err)
	_, ok := store.Get("game-1")
	assert.False(t, ok)

	require.NoError(t, store.Set("game-1", "gt_one"))
	require.NoError(t, store.Set("game-2", "gt_two"))

	reloaded, err := LoadTokenStore(path)
	require.NoError(t, err)
	token, ok := reloaded.Get("game-1")
	assert.True(t, ok)
	assert.Equal(t, "gt_one", token)

	require.NoError(t, reloaded.Delete("game-1"))
	require.NoError(t, reloaded.Delete("unknown"))

	reloaded, err = LoadTokenStore(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"game-2": "gt_two"}, reloaded.Tokens)
}

func TestParsePlaceArgs(t *testing.T) {
	req, err := parsePlaceArgs([]string{"h", "6", "7"})
	require.NoError(t, err)
	assert.Equal(t, "h", req.Letter)
	assert.Empty(t, req.TileID)
	assert.Equal(t, 6, req.Col)
	assert.Equal(t, 7, req.Row)

	req, err = parsePlaceArgs([]string{"t4", "0", "1"})
	require.NoError(t, err)
	assert.Equal(t, "t4", req.TileID)
	assert.Empty(t, req.Letter)

	_, err = parsePlaceArgs([]string{"h", "x", "7"})
	assert.ErrorContains(t, err, "invalid col")
	_, err = parsePlaceArgs([]string{"h", "6", "y"})
	assert.ErrorContains(t, err, "invalid row")
}

func TestClientReturnsAPIError(t *testing.T) {
	server := newAPIServer(t)
	c := NewClient(server.URL + "/")

	err := c.Get("/api/v1/games/missing", nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, apierr.CodeGameNotFound, apiErr.Code)
}

func TestPlayWordThroughCLI(t *testing.T) {
	server := newAPIServer(t)
	tokenFile := filepath.Join(t.TempDir(), "tokens.yaml")

	out, err := runCLI(t, server, tokenFile, "game", "new")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Game: game-1")
	assert.Contains(t, out, "Owner token saved")

	store, err := LoadTokenStore(tokenFile)
	require.NoError(t, err)
	_, ok := store.Get("game-1")
	require.True(t, ok)

	out, err = runCLI(t, server, tokenFile, "game", "place", "game-1", "h", "6", "7")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Placed this turn: 1")

	out, err = runCLI(t, server, tokenFile, "game", "place", "game-1", "t3", "7", "7")
	require.NoError(t, err, out)

	out, err = runCLI(t, server, tokenFile, "-o", "text", "game", "submit", "game-1")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Word accepted! +15 points")
	assert.Contains(t, out, "Word: HI")
	assert.Contains(t, out, "The bag is empty")

	out, err = runCLI(t, server, tokenFile, "game", "list")
	require.NoError(t, err, out)
	assert.Contains(t, out, "game-1")

	out, err = runCLI(t, server, tokenFile, "game", "abandon", "game-1")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Game game-1 abandoned")

	store, err = LoadTokenStore(tokenFile)
	require.NoError(t, err)
	assert.Empty(t, store.Tokens)
}

func TestMovesNeedSavedToken(t *testing.T) {
	server := newAPIServer(t)
	tokenFile := filepath.Join(t.TempDir(), "tokens.yaml")

	_, err := runCLI(t, server, tokenFile, "game", "recall", "game-1")
	assert.ErrorContains(t, err, "no token saved for game game-1")

	_, err = runCLI(t, server, tokenFile, "game", "--token", "gt_wrong", "recall", "game-1")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestJSONOutput(t *testing.T) {
	server := newAPIServer(t)
	tokenFile := filepath.Join(t.TempDir(), "tokens.yaml")

	out, err := runCLI(t, server, tokenFile, "-o", "json", "health")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, strings.TrimSpace(out))
}

func TestRenderBoardMarksTiles(t *testing.T) {
	app := factory.NewTestAppWithRuleset(testutil.Ruleset("AAACHITT"))
	created, err := app.GameController.CreateGame(t.Context(), game.NewGameOptions{BoardSize: 5})
	require.NoError(t, err)

	rendered := RenderBoard(app.BoardService.Snapshot(created.Game.Board, created.Game.Pending))
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	// Header plus one line per row
	assert.Len(t, lines, 6)
	assert.Contains(t, lines[3], "*")
}
