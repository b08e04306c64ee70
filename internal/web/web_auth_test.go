package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStartScreenModes(t *testing.T) {
	ts := newWebTestServer(t)

	// Initial mode offers both paths
	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, `a[href="/?mode=register"]`)
	assertContainsElement(t, doc, `a[href="/?mode=login"]`)
	assertContainsElement(t, doc, `form[action="/reset"]`)
	assertNotContainsElement(t, doc, `form[action="/auth/login"]`)

	// Login mode shows the login form
	rr = ts.get("/?mode=login")
	doc = parseHTML(rr.Body)
	assertContainsElement(t, doc, `form[action="/auth/login"]`)
	assertNotContainsElement(t, doc, `form[action="/auth/register"]`)

	// Register mode shows the registration form
	rr = ts.get("/?mode=register")
	doc = parseHTML(rr.Body)
	assertContainsElement(t, doc, `form[action="/auth/register"]`)

	// Unknown modes fall back to the initial screen
	rr = ts.get("/?mode=bogus")
	doc = parseHTML(rr.Body)
	assertContainsElement(t, doc, `a[href="/?mode=register"]`)
}

func TestRegisterAndViewBoard(t *testing.T) {
	ts := newWebTestServer(t)

	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")

	rr := ts.get("/board")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#money", "Money: $1000")
	assertContainsText(t, doc, ".nav-player", "alice")
	assertContainsText(t, doc, "#leaderboard", "alice")
}

func TestRegisterValidation(t *testing.T) {
	ts := newWebTestServer(t)

	// Username too short
	rr := ts.post("/auth/register", url.Values{"username": {"ab"}, "password": {"password1"}})
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Username must be at least 3 characters")
	require.False(t, ts.cookies.hasSession())

	// Password too short
	rr = ts.post("/auth/register", url.Values{"username": {"alice"}, "password": {"short"}})
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Password must be at least 6 characters")
	require.False(t, ts.cookies.hasSession())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ts := newWebTestServer(t)

	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")

	// Second registration from a fresh browser
	ts.cookies = newCookieJar()
	ts.app.MockRandom.QueueHex("b1b2c3d4e5f60718")
	rr := ts.post("/auth/register", url.Values{"username": {"alice"}, "password": {"otherpassword"}})
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Username already exists")
	require.False(t, ts.cookies.hasSession())
}

func TestLogin(t *testing.T) {
	ts := newWebTestServer(t)

	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")

	// Log out, then back in
	rr := ts.post("/auth/logout", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.False(t, ts.cookies.hasSession())

	rr = ts.post("/auth/login", url.Values{"username": {"alice"}, "password": {"password1"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/board", rr.Header().Get("Location"))
	require.True(t, ts.cookies.hasSession())
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ts := newWebTestServer(t)

	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")
	ts.cookies = newCookieJar()

	// Wrong password
	rr := ts.post("/auth/login", url.Values{"username": {"alice"}, "password": {"wrong"}})
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Invalid username or password")

	// Unknown username gets the same message
	rr = ts.post("/auth/login", url.Values{"username": {"nobody"}, "password": {"password1"}})
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Invalid username or password")
	require.False(t, ts.cookies.hasSession())
}

func TestBoardRequiresAuth(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/board")
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/?next=/board", rr.Header().Get("Location"))
}

func TestResetClearsAccountsAndSessions(t *testing.T) {
	ts := newWebTestServer(t)

	ts.registerPlayer("alice", "password1", "a1b2c3d4e5f60718")

	rr := ts.post("/reset", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.False(t, ts.cookies.hasSession())

	followed := ts.followRedirect(rr)
	doc := parseHTML(followed.Body)
	assertContainsText(t, doc, ".flash", "All game data has been reset")

	// Account is gone
	rr = ts.post("/auth/login", url.Values{"username": {"alice"}, "password": {"password1"}})
	require.Equal(t, http.StatusOK, rr.Code)
	doc = parseHTML(rr.Body)
	assertContainsText(t, doc, ".form-error", "Invalid username or password")

	// Username can be registered again
	ts.registerPlayer("alice", "password1", "c1b2c3d4e5f60718")
}
