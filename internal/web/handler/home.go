package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tmccay/cityblocks/internal/services/auth"
	"github.com/tmccay/cityblocks/internal/services/board"
	"github.com/tmccay/cityblocks/internal/services/world"
	"github.com/tmccay/cityblocks/internal/web/middleware"
	"github.com/tmccay/cityblocks/internal/web/sse"
	"github.com/tmccay/cityblocks/internal/web/templates/layout"
	"github.com/tmccay/cityblocks/internal/web/templates/pages"
)

// HomeHandler handles the start screen and the game data reset action
type HomeHandler struct {
	authService     *auth.Service
	worldService    *world.Service
	boardController *board.Controller
	broadcaster     *sse.Broadcaster
	logger          *slog.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(authService *auth.Service, worldService *world.Service, boardController *board.Controller, broadcaster *sse.Broadcaster, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{
		authService:     authService,
		worldService:    worldService,
		boardController: boardController,
		broadcaster:     broadcaster,
		logger:          logger,
	}
}

// Home renders the start screen. Authenticated players are sent straight
// to the board.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayer(r.Context())
	if player != nil {
		http.Redirect(w, r, "/board", http.StatusSeeOther)
		return
	}

	flash := middleware.GetFlash(r.Context())
	mode := pages.ParseStartMode(r.URL.Query().Get("mode"))

	data := pages.StartData{
		PageData: layout.PageData{
			Title: "Start",
			Flash: flash,
		},
		Mode: mode,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Start(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Reset wipes all accounts and game progress. The start screen gates this
// behind a browser confirmation dialog.
func (h *HomeHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.worldService.Reset(r.Context()); err != nil {
		h.logger.Error("reset failed", slog.Any("error", err))
		middleware.SetFlash(w, "error", "Failed to reset game data")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.authService.InvalidateAllSessions()
	h.boardController.ClearAll()
	h.broadcaster.BroadcastReset()

	// Clear this browser's session cookie too
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "All game data has been reset")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
