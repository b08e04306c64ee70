package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tmccay/cityblocks/internal/api/handler"
	"github.com/tmccay/cityblocks/internal/api/middleware"
	"github.com/tmccay/cityblocks/internal/services/auth"
	"github.com/tmccay/cityblocks/internal/services/board"
	"github.com/tmccay/cityblocks/internal/services/leaderboard"
	"github.com/tmccay/cityblocks/internal/services/world"
	"github.com/tmccay/cityblocks/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	WorldService       *world.Service
	BoardController    *board.Controller
	LeaderboardService *leaderboard.Service
	Storage            storage.Storage
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	worldHandler := handler.NewWorldHandler(cfg.WorldService, cfg.AuthService, cfg.BoardController, cfg.LeaderboardService, cfg.Storage)
	boardHandler := handler.NewBoardHandler(cfg.BoardController)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for registering/logging in)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/logout", playerHandler.Logout).Methods(http.MethodPost)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)

	// World routes (all require auth)
	worldRoutes := api.PathPrefix("/world").Subrouter()
	worldRoutes.Use(authMiddleware)
	worldRoutes.HandleFunc("", worldHandler.Get).Methods(http.MethodGet)
	worldRoutes.HandleFunc("", worldHandler.Reset).Methods(http.MethodDelete)
	worldRoutes.HandleFunc("/purchase", worldHandler.Purchase).Methods(http.MethodPost)

	// Leaderboard (requires auth for the is_current flag)
	leaderboardRoutes := api.PathPrefix("/leaderboard").Subrouter()
	leaderboardRoutes.Use(authMiddleware)
	leaderboardRoutes.HandleFunc("", worldHandler.Leaderboard).Methods(http.MethodGet)

	// Board view-state routes (all require auth)
	boardRoutes := api.PathPrefix("/board").Subrouter()
	boardRoutes.Use(authMiddleware)
	boardRoutes.HandleFunc("/view", boardHandler.View).Methods(http.MethodGet)
	boardRoutes.HandleFunc("/select", boardHandler.Select).Methods(http.MethodPost)
	boardRoutes.HandleFunc("/camera", boardHandler.Camera).Methods(http.MethodPost)
	boardRoutes.HandleFunc("/purchase", boardHandler.Purchase).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
