package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tmccay/cityblocks/internal/api/middleware"
	"github.com/tmccay/cityblocks/internal/api/request"
	"github.com/tmccay/cityblocks/internal/api/response"
	"github.com/tmccay/cityblocks/internal/model"
	"github.com/tmccay/cityblocks/internal/services/board"
)

// BoardHandler handles board view-state endpoints
type BoardHandler struct {
	boardController *board.Controller
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardController *board.Controller) *BoardHandler {
	return &BoardHandler{
		boardController: boardController,
	}
}

// View handles GET /api/v1/board/view
func (h *BoardHandler) View(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())
	view := h.boardController.View(player.ID)
	response.JSON(w, http.StatusOK, response.BoardViewFromModel(view))
}

// Select handles POST /api/v1/board/select
func (h *BoardHandler) Select(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	view, err := h.boardController.Select(r.Context(), player.ID, pos)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BoardViewFromModel(view))
}

// Camera handles POST /api/v1/board/camera
func (h *BoardHandler) Camera(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CameraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	var view board.View
	var err error
	switch req.Command {
	case "pan_up":
		view, err = h.boardController.Pan(player.ID, board.DirectionUp)
	case "pan_down":
		view, err = h.boardController.Pan(player.ID, board.DirectionDown)
	case "pan_left":
		view, err = h.boardController.Pan(player.ID, board.DirectionLeft)
	case "pan_right":
		view, err = h.boardController.Pan(player.ID, board.DirectionRight)
	case "zoom_in":
		view = h.boardController.ZoomIn(player.ID)
	case "zoom_out":
		view = h.boardController.ZoomOut(player.ID)
	default:
		WriteError(w, NewInvalidRequestError("unknown camera command"))
		return
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BoardViewFromModel(view))
}

// Purchase handles POST /api/v1/board/purchase, buying the currently
// selected tile
func (h *BoardHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	next, _, err := h.boardController.ConfirmPurchase(r.Context(), player.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WorldFromModel(next, player.ID))
}
