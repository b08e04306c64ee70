package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardRendersFullGrid(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")

	rr := ts.get("/board")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)

	require.Equal(t, 400, doc.Find(".tile").Length(), "Expected a 20x20 grid")
	assertContainsElement(t, doc, "#tile-0-0")
	assertContainsElement(t, doc, "#tile-19-19")
	assertNotContainsElement(t, doc, ".tile-owned")
	assertNotContainsElement(t, doc, ".buy-panel")
}

func TestSelectAndBuyTile(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")

	ts.selectTile(3, 7)
	rr := ts.get("/board")
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "#tile-3-7.tile-selected")
	assertContainsElement(t, doc, ".buy-panel")

	rr = ts.post("/board/buy", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	followed := ts.followRedirect(rr)
	doc = parseHTML(followed.Body)
	assertContainsText(t, doc, ".flash", "Tile purchased!")
	assertContainsText(t, doc, "#money", "Money: $900")
	assertContainsElement(t, doc, "#tile-3-7.tile-self")
	// Selection cleared after purchase
	assertNotContainsElement(t, doc, ".tile-selected")
	assertNotContainsElement(t, doc, ".buy-panel")
}

func TestBuyWithoutSelection(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")

	rr := ts.post("/board/buy", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	followed := ts.followRedirect(rr)
	doc := parseHTML(followed.Body)
	assertContainsText(t, doc, ".flash", "Select a tile first")
	assertContainsText(t, doc, "#money", "Money: $1000")
}

func TestCannotSelectTileOwnedByOther(t *testing.T) {
	ts := newWebTestServer(t)

	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")
	ts.selectTile(0, 0)
	rr := ts.post("/board/buy", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	// Bob in a fresh browser
	ts.cookies = newCookieJar()
	ts.registerPlayer("bob", "password2", "b1b2c3d4e5f60718")

	rr = ts.get("/board")
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "#tile-0-0.tile-owned")

	form := url.Values{"row": {"0"}, "col": {"0"}}
	rr = ts.post("/board/select", form)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	followed := ts.followRedirect(rr)
	doc = parseHTML(followed.Body)
	assertContainsText(t, doc, ".flash", "That tile is owned by another player")
	assertNotContainsElement(t, doc, ".tile-selected")
}

func TestPurchasesVisibleAcrossPlayers(t *testing.T) {
	ts := newWebTestServer(t)

	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")
	ts.selectTile(5, 5)
	ts.post("/board/buy", nil)

	ts.cookies = newCookieJar()
	ts.registerPlayer("bob", "password2", "b1b2c3d4e5f60718")

	rr := ts.get("/board")
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "#tile-5-5.tile-owned")
	assertContainsText(t, doc, "#leaderboard", "alice")
	assertContainsText(t, doc, "#leaderboard", "bob")
	assertContainsText(t, doc, "#leaderboard", "$900")
}

func TestCameraControls(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")

	rr := ts.get("/board")
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".camera-info", "Camera: (0, 0) Zoom: 1.00")

	rr = ts.post("/board/camera", url.Values{"command": {"pan_up"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	doc = parseHTML(ts.get("/board").Body)
	assertContainsText(t, doc, ".camera-info", "Camera: (0, 50)")

	ts.post("/board/camera", url.Values{"command": {"pan_right"}})
	doc = parseHTML(ts.get("/board").Body)
	assertContainsText(t, doc, ".camera-info", "Camera: (-50, 50)")

	ts.post("/board/camera", url.Values{"command": {"zoom_in"}})
	doc = parseHTML(ts.get("/board").Body)
	assertContainsText(t, doc, ".camera-info", "Zoom: 1.10")

	ts.post("/board/camera", url.Values{"command": {"zoom_out"}})
	ts.post("/board/camera", url.Values{"command": {"zoom_out"}})
	doc = parseHTML(ts.get("/board").Body)
	assertContainsText(t, doc, ".camera-info", "Zoom: 0.90")
}

func TestInsufficientFunds(t *testing.T) {
	ts := newWebTestServer(t)
	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")

	// Spend the full starting balance
	for col := 0; col < 10; col++ {
		ts.selectTile(0, col)
		rr := ts.post("/board/buy", nil)
		require.Equal(t, http.StatusSeeOther, rr.Code)
	}

	doc := parseHTML(ts.get("/board").Body)
	assertContainsText(t, doc, "#money", "Money: $0")

	ts.selectTile(1, 0)
	rr := ts.post("/board/buy", nil)
	followed := ts.followRedirect(rr)
	doc = parseHTML(followed.Body)
	assertContainsText(t, doc, ".flash", "Not enough money to buy this tile")
	assertContainsText(t, doc, "#money", "Money: $0")
	assertNotContainsElement(t, doc, "#tile-1-0.tile-self")
}
