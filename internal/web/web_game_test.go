package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerSeesControls(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	rr := ts.get("/games/" + id)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "table#board")
	assertContainsElement(t, doc, "form#place")
	assertContainsElement(t, doc, "form#submit")
	assertContainsElement(t, doc, "form#abandon")
	// Nothing pending yet
	assertNotContainsElement(t, doc, "form#recall")
	assertContainsText(t, doc, "#prompt", "first word")
	assertContainsText(t, doc, "#score", "Score: 0")
	assertContainsText(t, doc, "#bag", "Tiles in bag: 1")

	assert.Equal(t, 7, doc.Find("#tray span[data-tile-id]").Length())
	assert.Equal(t, 225, doc.Find("table#board td").Length())
	assertContainsElement(t, doc, `td.cell-center[data-col="7"][data-row="7"]`)
}

func TestVisitorSeesReadOnlyBoard(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	// A different browser has no owner cookie
	ts.cookies = newCookieJar()
	rr := ts.get("/games/" + id)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "table#board")
	assertContainsElement(t, doc, "#tray")
	assertNotContainsElement(t, doc, "form#place")
	assertNotContainsElement(t, doc, "form#submit")
	assertNotContainsElement(t, doc, "form#abandon")
}

func TestPlaceShowsPendingTile(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	// t4 is H
	ts.place(id, "t4", "6", "7")

	doc := parseHTML(ts.get("/games/" + id).Body)
	cell := doc.Find(`td[data-col="6"][data-row="7"]`)
	require.Equal(t, 1, cell.Length())
	assert.True(t, cell.HasClass("cell-pending"))
	assert.Equal(t, "H", cell.Find(".letter").Text())
	assert.Equal(t, "t4", cell.Find("input[name=tile_id]").AttrOr("value", ""))

	assert.Equal(t, 6, doc.Find("#tray span[data-tile-id]").Length())
	assertNotContainsElement(t, doc, `#tray span[data-tile-id="t4"]`)
	assertContainsElement(t, doc, "form#recall")
}

func TestPlaceByLetter(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	rr := ts.post("/games/"+id+"/place", url.Values{"letter": {"c"}, "col": {"7"}, "row": {"7"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertNotContainsElement(t, doc, ".flash-error")
	assert.Equal(t, "C", doc.Find(`td[data-col="7"][data-row="7"] .letter`).Text())
}

func TestSubmitWordScores(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	// H on a plain square, I on the center: (4 + 1) * 3
	ts.place(id, "t4", "6", "7")
	ts.place(id, "t3", "7", "7")

	rr := ts.post("/games/"+id+"/submit", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-success", "Word accepted! +15 points")
	assertContainsText(t, doc, "#score", "Score: 15")
	assertContainsText(t, doc, "#bag", "Tiles in bag: 0")
	assertNotContainsElement(t, doc, "#prompt")

	assert.True(t, doc.Find(`td[data-col="7"][data-row="7"]`).HasClass("cell-confirmed"))
	assertContainsText(t, doc, "table#turns tbody", "HI")
	assertContainsText(t, doc, "table#turns tbody", "15")
}

func TestSubmitRejectionShowsReason(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	ts.place(id, "t4", "0", "0")
	ts.place(id, "t3", "1", "0")

	rr := ts.post("/games/"+id+"/submit", nil)
	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "The first word must be placed through the center square!")

	// Tiles went back to the tray
	assert.Equal(t, 7, doc.Find("#tray span[data-tile-id]").Length())
	assertNotContainsElement(t, doc, "td.cell-pending")
}

func TestSubmitNothingPlaced(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	rr := ts.post("/games/"+id+"/submit", nil)
	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "No tiles placed!")
}

func TestRemoveTile(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")
	ts.place(id, "t4", "6", "7")

	rr := ts.post("/games/"+id+"/remove", url.Values{"tile_id": {"t4"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertNotContainsElement(t, doc, "td.cell-pending")
	assertContainsElement(t, doc, `#tray span[data-tile-id="t4"]`)
}

func TestRecallTiles(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")
	ts.place(id, "t4", "6", "7")
	ts.place(id, "t3", "7", "7")

	rr := ts.post("/games/"+id+"/recall", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertNotContainsElement(t, doc, "td.cell-pending")
	assert.Equal(t, 7, doc.Find("#tray span[data-tile-id]").Length())
}

func TestAbandonGame(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	rr := ts.post("/games/"+id+"/abandon", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-info", "Game abandoned")
	assertContainsText(t, doc, `tr[data-game-id="`+id+`"]`, "abandoned")

	doc = parseHTML(ts.get("/games/" + id).Body)
	assertContainsElement(t, doc, "#abandoned")
	assertNotContainsElement(t, doc, "form#place")
}

func TestPlayAfterAbandonShowsError(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")
	ts.post("/games/"+id+"/abandon", nil)

	rr := ts.post("/games/"+id+"/place", url.Values{"tile_id": {"t1"}, "col": {"7"}, "row": {"7"}})
	require.Equal(t, "/games/"+id, rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "This game has been abandoned")
}

func TestVisitorCannotPlace(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	ts.cookies = newCookieJar()
	rr := ts.post("/games/"+id+"/place", url.Values{"tile_id": {"t1"}, "col": {"7"}, "row": {"7"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/games/"+id, rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "Only the player who started this game can do that")
	assertNotContainsElement(t, doc, "td.cell-pending")
}

func TestForgedCookieCannotSubmit(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	ts.cookies = newCookieJar()
	ts.cookies.cookies["wt_"+id] = &http.Cookie{Name: "wt_" + id, Value: "gt_forged"}

	rr := ts.post("/games/"+id+"/abandon", nil)
	require.Equal(t, "/games/"+id, rr.Header().Get("Location"))

	g, err := ts.app.GameController.GetGame(t.Context(), "game-1")
	require.NoError(t, err)
	assert.Equal(t, "active", string(g.State))
}

func TestPlaceErrors(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{"off the board", url.Values{"tile_id": {"t1"}, "col": {"15"}, "row": {"0"}}, "That square is not on the board"},
		{"missing column", url.Values{"tile_id": {"t1"}, "row": {"0"}}, "That square is not on the board"},
		{"unknown tile", url.Values{"tile_id": {"t99"}, "col": {"0"}, "row": {"0"}}, "That tile is not in your tray"},
		{"letter not held", url.Values{"letter": {"Z"}, "col": {"0"}, "row": {"0"}}, "That tile is not in your tray"},
		{"not a letter", url.Values{"letter": {"7"}, "col": {"0"}, "row": {"0"}}, "Letter must be A-Z"},
		{"two letters", url.Values{"letter": {"AB"}, "col": {"0"}, "row": {"0"}}, "Letter must be A-Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newWebTestServer(t)
			id := ts.createGame("")

			rr := ts.post("/games/"+id+"/place", tt.form)
			require.Equal(t, http.StatusSeeOther, rr.Code)

			doc := parseHTML(ts.followRedirect(rr).Body)
			assertContainsText(t, doc, ".flash-error", tt.want)
		})
	}
}

func TestPlaceOnOccupiedSquare(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")
	ts.place(id, "t4", "7", "7")

	rr := ts.post("/games/"+id+"/place", url.Values{"tile_id": {"t3"}, "col": {"7"}, "row": {"7"}})
	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "That square is already taken")
}

func TestBoardCellsCarryBonusClass(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	doc := parseHTML(ts.get("/games/" + id).Body)
	corner := doc.Find(`td[data-col="0"][data-row="0"]`)
	assert.True(t, corner.HasClass("bonus-triple_word"))
	assert.Equal(t, "TW", corner.Text())

	doubleLetter := doc.Find(`td[data-col="2"][data-row="6"]`)
	assert.True(t, doubleLetter.HasClass("bonus-double_letter"))
	assert.True(t, doubleLetter.HasClass("cell-empty"))
	assert.Equal(t, "Double Letter", doubleLetter.AttrOr("title", ""))

	assert.True(t, doc.Find(`td[data-col="8"][data-row="6"]`).HasClass("bonus-double_word"))
	assert.True(t, doc.Find(`td[data-col="1"][data-row="0"]`).HasClass("bonus-none"))

	assert.Equal(t, "14", doc.Find(`form#place input[name=col]`).AttrOr("max", ""))
	assert.Equal(t, "14", doc.Find(`form#place input[name=row]`).AttrOr("max", ""))
	assert.Equal(t, 7, doc.Find(`form#place select[name=tile_id] option`).Length())
}
