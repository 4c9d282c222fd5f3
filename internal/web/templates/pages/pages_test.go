package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordtiles/internal/api/response"
	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/layout"
)

func renderGame(t *testing.T, data GameData) (string, *goquery.Document) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Game(data).Render(context.Background(), &buf))
	html := buf.String()
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(html))
	require.NoError(t, err)
	return html, doc
}

func TestGamePageEscapesText(t *testing.T) {
	html, doc := renderGame(t, GameData{
		PageData: layout.PageData{
			Title: "<Game>",
			Flash: &layout.FlashMessage{Type: "error", Message: "<b>bad</b>"},
		},
		Game: response.GameState{
			ID:     "g1",
			State:  string(model.GameStateActive),
			Prompt: "<script>alert(1)</script>",
		},
	})

	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, html, "&lt;b&gt;bad&lt;/b&gt;")
	assert.Equal(t, 0, doc.Find("#prompt script").Length())
	assert.Equal(t, 0, doc.Find(".flash b").Length())
	assert.Equal(t, "<b>bad</b>", doc.Find(".flash.flash-error").Text())
	assert.Equal(t, "<Game> - Word Tiles", doc.Find("title").Text())
}

func TestGamePageHidesControlsFromVisitors(t *testing.T) {
	game := response.GameState{
		ID:    "g1",
		State: string(model.GameStateActive),
		Tray:  []response.Tile{{ID: "t1", Letter: "A", Points: 1}},
	}

	_, doc := renderGame(t, GameData{Game: game, Owner: true})
	assert.Equal(t, 1, doc.Find("form#place").Length())
	assert.Equal(t, "/games/g1/place", doc.Find("form#place").AttrOr("action", ""))

	_, doc = renderGame(t, GameData{Game: game})
	assert.Equal(t, 0, doc.Find("form#place").Length())
	assert.Equal(t, 1, doc.Find("#tray span[data-tile-id=t1]").Length())
}

func TestGamePageShowsAbandoned(t *testing.T) {
	_, doc := renderGame(t, GameData{
		Game:  response.GameState{ID: "g1", State: string(model.GameStateAbandoned)},
		Owner: true,
	})
	assert.Equal(t, 1, doc.Find("#abandoned").Length())
	assert.Equal(t, 0, doc.Find("form#submit").Length())
}

func TestHomePageOffersEveryBoardSize(t *testing.T) {
	var buf bytes.Buffer
	data := HomeData{BoardSize: 9}
	require.NoError(t, Home(data).Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	options := doc.Find("select[name=board_size] option")
	assert.Equal(t, len(boardSizes()), options.Length())
	assert.Equal(t, "5 x 5", options.First().Text())
	assert.Equal(t, "25 x 25", options.Last().Text())
	assert.Equal(t, "9", doc.Find("option[selected]").AttrOr("value", ""))
}
