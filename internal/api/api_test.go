package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmccay/cityblocks/internal/api"
	"github.com/tmccay/cityblocks/internal/factory"
	"github.com/tmccay/cityblocks/internal/testutil"
)

// apiTestServer provides a test server for API testing
type apiTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
}

func newAPITestServer(t *testing.T) *apiTestServer {
	t.Helper()

	logger := testutil.NopLogger()
	app := factory.NewTestApp()
	t.Cleanup(app.Close)

	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		AuthService:        app.AuthService,
		WorldService:       app.WorldService,
		BoardController:    app.BoardController,
		LeaderboardService: app.LeaderboardService,
		Storage:            app.Storage,
	})

	return &apiTestServer{
		t:       t,
		handler: router,
		app:     app,
	}
}

// request makes a JSON request with an optional bearer token
func (ts *apiTestServer) request(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// decode unmarshals a response body into a map
func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	return result
}

// errorCode extracts the error code from an error response
func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, rr)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected an error object in response")
	code, _ := errObj["code"].(string)
	return code
}

// register creates a player and returns the session token
func (ts *apiTestServer) register(username, password, hexAddress string) string {
	ts.t.Helper()
	ts.app.MockRandom.QueueHex(hexAddress)
	rr := ts.request(http.MethodPost, "/api/v1/players/register", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(ts.t, http.StatusCreated, rr.Code)
	body := decode(ts.t, rr)
	token, _ := body["session_token"].(string)
	require.NotEmpty(ts.t, token)
	return token
}

func TestHealth(t *testing.T) {
	ts := newAPITestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestRegister(t *testing.T) {
	ts := newAPITestServer(t)

	ts.app.MockRandom.QueueHex("a1b2c3d4e5f60718")
	rr := ts.request(http.MethodPost, "/api/v1/players/register", "", map[string]string{
		"username": "alice",
		"password": "password1",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	body := decode(t, rr)
	player := body["player"].(map[string]any)
	require.Equal(t, "0xa1b2c3d4e5f60718", player["id"])
	require.Equal(t, "alice", player["username"])
	require.NotEmpty(t, body["session_token"])
}

func TestRegisterValidation(t *testing.T) {
	ts := newAPITestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players/register", "", map[string]string{
		"username": "ab",
		"password": "password1",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "USERNAME_TOO_SHORT", errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/players/register", "", map[string]string{
		"username": "alice",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "PASSWORD_TOO_SHORT", errorCode(t, rr))
}

func TestRegisterDuplicate(t *testing.T) {
	ts := newAPITestServer(t)
	ts.register("alice", "password1", "a1b2c3d4e5f60718")

	ts.app.MockRandom.QueueHex("b1b2c3d4e5f60718")
	rr := ts.request(http.MethodPost, "/api/v1/players/register", "", map[string]string{
		"username": "alice",
		"password": "otherpassword",
	})
	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, "USERNAME_EXISTS", errorCode(t, rr))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ts := newAPITestServer(t)
	ts.register("alice", "password1", "a1b2c3d4e5f60718")

	// Wrong password
	rr := ts.request(http.MethodPost, "/api/v1/players/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rr))

	// Unknown username gives the same code
	rr = ts.request(http.MethodPost, "/api/v1/players/login", "", map[string]string{
		"username": "nobody",
		"password": "password1",
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rr))
}

func TestGetMe(t *testing.T) {
	ts := newAPITestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	token := ts.register("alice", "password1", "a1b2c3d4e5f60718")
	rr = ts.request(http.MethodGet, "/api/v1/players/me", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode(t, rr)
	require.Equal(t, "alice", body["username"])
}

func TestLogoutInvalidatesToken(t *testing.T) {
	ts := newAPITestServer(t)
	token := ts.register("alice", "password1", "a1b2c3d4e5f60718")

	rr := ts.request(http.MethodPost, "/api/v1/players/logout", token, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetWorld(t *testing.T) {
	ts := newAPITestServer(t)
	token := ts.register("alice", "password1", "a1b2c3d4e5f60718")

	rr := ts.request(http.MethodGet, "/api/v1/world", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode(t, rr)
	tiles := body["tiles"].([]any)
	require.Len(t, tiles, 20)
	require.Len(t, tiles[0].([]any), 20)
	require.Equal(t, float64(1000), body["my_balance"])

	firstTile := tiles[0].([]any)[0].(map[string]any)
	require.Equal(t, "tile-0-0", firstTile["id"])
	roads := firstTile["roads"].(map[string]any)
	require.Equal(t, true, roads["top"])
}

func TestDirectPurchase(t *testing.T) {
	ts := newAPITestServer(t)
	token := ts.register("alice", "password1", "a1b2c3d4e5f60718")

	rr := ts.request(http.MethodPost, "/api/v1/world/purchase", token, map[string]int{"row": 3, "col": 7})
	require.Equal(t, http.StatusOK, rr.Code)

	body := decode(t, rr)
	require.Equal(t, float64(900), body["my_balance"])
	tile := body["tiles"].([]any)[3].([]any)[7].(map[string]any)
	require.Equal(t, "0xa1b2c3d4e5f60718", tile["owner"])

	// Buying your own tile is rejected
	rr = ts.request(http.MethodPost, "/api/v1/world/purchase", token, map[string]int{"row": 3, "col": 7})
	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, "ALREADY_OWNER", errorCode(t, rr))

	// Out-of-bounds positions are rejected
	rr = ts.request(http.MethodPost, "/api/v1/world/purchase", token, map[string]int{"row": 20, "col": 0})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "INVALID_POSITION", errorCode(t, rr))
}

func TestInsufficientFunds(t *testing.T) {
	ts := newAPITestServer(t)
	token := ts.register("alice", "password1", "a1b2c3d4e5f60718")

	for col := 0; col < 10; col++ {
		rr := ts.request(http.MethodPost, "/api/v1/world/purchase", token, map[string]int{"row": 0, "col": col})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := ts.request(http.MethodPost, "/api/v1/world/purchase", token, map[string]int{"row": 1, "col": 0})
	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, "INSUFFICIENT_FUNDS", errorCode(t, rr))
}

func TestBoardSelectAndPurchase(t *testing.T) {
	ts := newAPITestServer(t)
	token := ts.register("alice", "password1", "a1b2c3d4e5f60718")

	// Purchasing without a selection is rejected
	rr := ts.request(http.MethodPost, "/api/v1/board/purchase", token, nil)
	require.Equal(t, http.StatusConflict, rr.Code)
	require.Equal(t, "NO_SELECTION", errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/board/select", token, map[string]int{"row": 5, "col": 5})
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode(t, rr)
	selected := body["selected"].(map[string]any)
	require.Equal(t, float64(5), selected["row"])

	rr = ts.request(http.MethodPost, "/api/v1/board/purchase", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body = decode(t, rr)
	require.Equal(t, float64(900), body["my_balance"])

	// Selection cleared after purchase
	rr = ts.request(http.MethodGet, "/api/v1/board/view", token, nil)
	body = decode(t, rr)
	require.Nil(t, body["selected"])
}

func TestBoardCamera(t *testing.T) {
	ts := newAPITestServer(t)
	token := ts.register("alice", "password1", "a1b2c3d4e5f60718")

	rr := ts.request(http.MethodPost, "/api/v1/board/camera", token, map[string]string{"command": "pan_up"})
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode(t, rr)
	require.Equal(t, float64(50), body["camera_y"])

	rr = ts.request(http.MethodPost, "/api/v1/board/camera", token, map[string]string{"command": "zoom_in"})
	body = decode(t, rr)
	require.InDelta(t, 1.1, body["zoom"].(float64), 0.0001)

	rr = ts.request(http.MethodPost, "/api/v1/board/camera", token, map[string]string{"command": "sideways"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "INVALID_REQUEST", errorCode(t, rr))
}

func TestLeaderboard(t *testing.T) {
	ts := newAPITestServer(t)
	aliceToken := ts.register("alice", "password1", "a1b2c3d4e5f60718")
	ts.register("bob", "password2", "b1b2c3d4e5f60718")

	rr := ts.request(http.MethodPost, "/api/v1/world/purchase", aliceToken, map[string]int{"row": 0, "col": 0})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/leaderboard", aliceToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	require.Equal(t, "bob", entries[0]["username"])
	require.Equal(t, float64(1), entries[0]["rank"])
	require.Equal(t, "alice", entries[1]["username"])
	require.Equal(t, float64(900), entries[1]["balance"])
	require.Equal(t, true, entries[1]["is_current"])
}

func TestResetRequiresConfirmation(t *testing.T) {
	ts := newAPITestServer(t)
	token := ts.register("alice", "password1", "a1b2c3d4e5f60718")

	rr := ts.request(http.MethodDelete, "/api/v1/world", token, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "INVALID_REQUEST", errorCode(t, rr))

	rr = ts.request(http.MethodDelete, "/api/v1/world?confirm=true", token, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	// All sessions are invalidated by the reset
	rr = ts.request(http.MethodGet, "/api/v1/players/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// The username is free again
	ts.register("alice", "password1", "c1b2c3d4e5f60718")
}
