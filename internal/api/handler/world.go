package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tmccay/cityblocks/internal/api/middleware"
	"github.com/tmccay/cityblocks/internal/api/request"
	"github.com/tmccay/cityblocks/internal/api/response"
	"github.com/tmccay/cityblocks/internal/model"
	"github.com/tmccay/cityblocks/internal/services/auth"
	"github.com/tmccay/cityblocks/internal/services/board"
	"github.com/tmccay/cityblocks/internal/services/leaderboard"
	"github.com/tmccay/cityblocks/internal/services/world"
	"github.com/tmccay/cityblocks/internal/storage"
)

// WorldHandler handles world and leaderboard endpoints
type WorldHandler struct {
	worldService       *world.Service
	authService        *auth.Service
	boardController    *board.Controller
	leaderboardService *leaderboard.Service
	storage            storage.Storage
}

// NewWorldHandler creates a new world handler
func NewWorldHandler(worldService *world.Service, authService *auth.Service, boardController *board.Controller, leaderboardService *leaderboard.Service, storage storage.Storage) *WorldHandler {
	return &WorldHandler{
		worldService:       worldService,
		authService:        authService,
		boardController:    boardController,
		leaderboardService: leaderboardService,
		storage:            storage,
	}
}

// Get handles GET /api/v1/world
func (h *WorldHandler) Get(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	current, err := h.worldService.Load(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WorldFromModel(current, player.ID))
}

// Purchase handles POST /api/v1/world/purchase, a direct purchase at a
// given position without going through a selection
func (h *WorldHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	next, err := h.worldService.Purchase(r.Context(), player.ID, pos)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WorldFromModel(next, player.ID))
}

// Reset handles DELETE /api/v1/world. The confirm=true query parameter
// is required; a reset wipes every account and all game progress.
func (h *WorldHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		WriteError(w, NewInvalidRequestError("reset requires confirm=true"))
		return
	}

	if err := h.worldService.Reset(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	h.authService.InvalidateAllSessions()
	h.boardController.ClearAll()

	response.NoContent(w)
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *WorldHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	current, err := h.worldService.Load(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.storage.ListPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	entries := h.leaderboardService.Project(current.PlayerMoney, leaderboard.Directory(players), player.ID)
	response.JSON(w, http.StatusOK, response.LeaderboardFromEntries(entries))
}
