package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tmccay/cityblocks/internal/services/auth"
	"github.com/tmccay/cityblocks/internal/services/board"
	"github.com/tmccay/cityblocks/internal/services/leaderboard"
	"github.com/tmccay/cityblocks/internal/services/world"
	"github.com/tmccay/cityblocks/internal/storage"
	"github.com/tmccay/cityblocks/internal/web/handler"
	"github.com/tmccay/cityblocks/internal/web/middleware"
	"github.com/tmccay/cityblocks/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	WorldService       *world.Service
	BoardController    *board.Controller
	LeaderboardService *leaderboard.Service
	Storage            storage.Storage
	Hub                *sse.Hub
	Broadcaster        *sse.Broadcaster
	StaticDir          string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler(cfg.AuthService, cfg.WorldService, cfg.BoardController, cfg.Broadcaster, cfg.Logger)
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	boardHandler := handler.NewBoardHandler(cfg.WorldService, cfg.BoardController, cfg.LeaderboardService, cfg.Storage, cfg.Hub, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth for showing player info in nav)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	public.HandleFunc("/reset", homeHandler.Reset).Methods(http.MethodPost)

	// Auth actions (no auth required)
	authRoutes := r.PathPrefix("/auth").Subrouter()
	authRoutes.Use(flashMiddleware)
	authRoutes.Use(optionalAuthMiddleware)
	authRoutes.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	authRoutes.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	authRoutes.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected routes (require auth)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)
	protected.HandleFunc("/board", boardHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/board/select", boardHandler.Select).Methods(http.MethodPost)
	protected.HandleFunc("/board/camera", boardHandler.Camera).Methods(http.MethodPost)
	protected.HandleFunc("/board/buy", boardHandler.Buy).Methods(http.MethodPost)
	protected.HandleFunc("/board/events", boardHandler.Events).Methods(http.MethodGet)

	return r
}
