package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordtiles/internal/factory"
	"github.com/mcoot/wordtiles/internal/testutil"
	"github.com/mcoot/wordtiles/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired.
// Games deal "TTIHCAA" as tiles t1 to t7.
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	app := factory.NewTestAppWithRuleset(testutil.Ruleset("AAACHITT"))
	router := web.NewRouter(web.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: app.GameController,
		BoardService:   app.BoardService,
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// Helper functions for common test operations

// createGame starts a game through the form and returns its ID
func (ts *webTestServer) createGame(boardSize string) string {
	ts.t.Helper()
	form := url.Values{}
	if boardSize != "" {
		form.Set("board_size", boardSize)
	}
	rr := ts.post("/games", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after game creation")

	location := rr.Header().Get("Location")
	require.True(ts.t, strings.HasPrefix(location, "/games/"), "Expected redirect to game page, got %q", location)
	return strings.TrimPrefix(location, "/games/")
}

// place puts a tile down and expects to land back on the game page
func (ts *webTestServer) place(gameID, tileID, col, row string) {
	ts.t.Helper()
	form := url.Values{"tile_id": {tileID}, "col": {col}, "row": {row}}
	rr := ts.post("/games/"+gameID+"/place", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code)
	require.Equal(ts.t, "/games/"+gameID, rr.Header().Get("Location"))
}

// followRedirect follows a redirect and returns the response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}

func TestHomePageWithoutGames(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form#new-game")
	assertContainsElement(t, doc, "#no-games")
	assertNotContainsElement(t, doc, "table#games")
	// 15 is preselected
	require.Equal(t, "15", doc.Find("select[name=board_size] option[selected]").AttrOr("value", ""))
}

func TestHomePageListsGames(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.createGame("")

	doc := parseHTML(ts.get("/").Body)
	assertNotContainsElement(t, doc, "#no-games")
	row := doc.Find(`tr[data-game-id="` + id + `"]`)
	require.Equal(t, 1, row.Length())
	require.Equal(t, "/games/"+id, row.Find("a").AttrOr("href", ""))
}

func TestCreateGameSetsOwnerCookie(t *testing.T) {
	ts := newWebTestServer(t)
	ts.app.MockRandom.QueueString("secretsecretsecretsecretsecret00")

	id := ts.createGame("9")

	cookie, ok := ts.cookies.cookies["wt_"+id]
	require.True(t, ok, "Expected owner cookie for the new game")
	require.Equal(t, "gt_secretsecretsecretsecretsecret00", cookie.Value)
	require.Equal(t, "/games/"+id, cookie.Path)
	require.True(t, cookie.HttpOnly)

	doc := parseHTML(ts.get("/games/" + id).Body)
	require.Equal(t, 9, doc.Find("table#board tr").Length())
}

func TestCreateGameRejectsBadBoardSize(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/games", url.Values{"board_size": {"4"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "Board size must be odd")
	assertContainsElement(t, doc, "#no-games")
}

func TestCreateGameRejectsNonNumericBoardSize(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/games", url.Values{"board_size": {"big"}})
	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "Board size must be a number")
}

func TestUnknownGameRedirectsHome(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/games/missing")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "Game not found")
}

func TestFlashShownOnce(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/games/missing")
	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsElement(t, doc, ".flash")

	doc = parseHTML(ts.get("/").Body)
	assertNotContainsElement(t, doc, ".flash")
}
