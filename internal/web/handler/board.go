package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tmccay/cityblocks/internal/model"
	"github.com/tmccay/cityblocks/internal/services/board"
	"github.com/tmccay/cityblocks/internal/services/leaderboard"
	"github.com/tmccay/cityblocks/internal/services/world"
	"github.com/tmccay/cityblocks/internal/storage"
	"github.com/tmccay/cityblocks/internal/web/middleware"
	"github.com/tmccay/cityblocks/internal/web/sse"
	"github.com/tmccay/cityblocks/internal/web/templates/layout"
	"github.com/tmccay/cityblocks/internal/web/templates/pages"
)

// BoardHandler handles the board page and its actions
type BoardHandler struct {
	worldService       *world.Service
	boardController    *board.Controller
	leaderboardService *leaderboard.Service
	storage            storage.Storage
	hub                *sse.Hub
	logger             *slog.Logger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(worldService *world.Service, boardController *board.Controller, leaderboardService *leaderboard.Service, storage storage.Storage, hub *sse.Hub, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		worldService:       worldService,
		boardController:    boardController,
		leaderboardService: leaderboardService,
		storage:            storage,
		hub:                hub,
		logger:             logger,
	}
}

// View renders the board page
func (h *BoardHandler) View(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	// Loading seeds the world and the player's starting balance on
	// first visit
	worldState, err := h.worldService.Load(r.Context(), player.ID)
	if err != nil {
		h.logger.Error("failed to load world", slog.Any("error", err))
		middleware.SetFlash(w, "error", "Failed to load the world")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	players, err := h.storage.ListPlayers(r.Context())
	if err != nil {
		h.logger.Error("failed to list players", slog.Any("error", err))
		middleware.SetFlash(w, "error", "Failed to load the world")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	entries := h.leaderboardService.Project(worldState.PlayerMoney, leaderboard.Directory(players), player.ID)

	data := pages.BoardData{
		PageData: layout.PageData{
			Title:  "Board",
			Player: player,
			Flash:  middleware.GetFlash(r.Context()),
		},
		World:   worldState,
		View:    h.boardController.View(player.ID),
		Entries: entries,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Board(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Select handles tile selection
func (h *BoardHandler) Select(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/board", http.StatusSeeOther)
		return
	}

	row, err := strconv.Atoi(r.FormValue("row"))
	if err != nil {
		middleware.SetFlash(w, "error", "Invalid tile")
		http.Redirect(w, r, "/board", http.StatusSeeOther)
		return
	}
	col, err := strconv.Atoi(r.FormValue("col"))
	if err != nil {
		middleware.SetFlash(w, "error", "Invalid tile")
		http.Redirect(w, r, "/board", http.StatusSeeOther)
		return
	}

	pos := model.Position{Row: row, Col: col}
	if _, err := h.boardController.Select(r.Context(), player.ID, pos); err != nil {
		switch {
		case errors.Is(err, model.ErrTileUnavailable):
			middleware.SetFlash(w, "info", "That tile is owned by another player")
		case errors.Is(err, model.ErrInvalidPosition):
			middleware.SetFlash(w, "error", "Invalid tile")
		default:
			middleware.SetFlash(w, "error", "Could not select tile")
		}
	}

	http.Redirect(w, r, "/board", http.StatusSeeOther)
}

// Camera handles pan and zoom commands
func (h *BoardHandler) Camera(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/board", http.StatusSeeOther)
		return
	}

	var err error
	switch command := r.FormValue("command"); command {
	case "pan_up":
		_, err = h.boardController.Pan(player.ID, board.DirectionUp)
	case "pan_down":
		_, err = h.boardController.Pan(player.ID, board.DirectionDown)
	case "pan_left":
		_, err = h.boardController.Pan(player.ID, board.DirectionLeft)
	case "pan_right":
		_, err = h.boardController.Pan(player.ID, board.DirectionRight)
	case "zoom_in":
		h.boardController.ZoomIn(player.ID)
	case "zoom_out":
		h.boardController.ZoomOut(player.ID)
	default:
		middleware.SetFlash(w, "error", "Unknown camera command")
	}
	if err != nil {
		middleware.SetFlash(w, "error", "Unknown camera command")
	}

	http.Redirect(w, r, "/board", http.StatusSeeOther)
}

// Buy handles purchase of the selected tile
func (h *BoardHandler) Buy(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())

	_, _, err := h.boardController.ConfirmPurchase(r.Context(), player.ID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoSelection):
			middleware.SetFlash(w, "error", "Select a tile first")
		case errors.Is(err, model.ErrAlreadyOwner):
			middleware.SetFlash(w, "info", "You already own this tile")
		case errors.Is(err, model.ErrInsufficientFunds):
			middleware.SetFlash(w, "error", "Not enough money to buy this tile")
		case errors.Is(err, model.ErrInvalidPosition):
			middleware.SetFlash(w, "error", "Invalid tile")
		default:
			h.logger.Error("purchase failed", slog.Any("error", err))
			middleware.SetFlash(w, "error", "Purchase failed: changes were not saved")
		}
		http.Redirect(w, r, "/board", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Tile purchased!")
	http.Redirect(w, r, "/board", http.StatusSeeOther)
}

// Events streams world updates over SSE
func (h *BoardHandler) Events(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	sse.ServeSSE(w, r, h.hub, player.ID)
}
