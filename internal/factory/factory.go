package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/tmccay/cityblocks/internal/dependencies/clock"
	"github.com/tmccay/cityblocks/internal/dependencies/random"
	"github.com/tmccay/cityblocks/internal/services/auth"
	"github.com/tmccay/cityblocks/internal/services/board"
	"github.com/tmccay/cityblocks/internal/services/leaderboard"
	"github.com/tmccay/cityblocks/internal/services/world"
	"github.com/tmccay/cityblocks/internal/storage"
	"github.com/tmccay/cityblocks/internal/storage/memory"
	redisstorage "github.com/tmccay/cityblocks/internal/storage/redis"
	"github.com/tmccay/cityblocks/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WorldService       *world.Service
	AuthService        *auth.Service
	LeaderboardService *leaderboard.Service
	BoardController    *board.Controller

	// SSE
	Hub         *sse.Hub
	Broadcaster *sse.Broadcaster
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	// Create services
	worldService := world.New(store, clk, logger)
	authService := auth.New(store, clk, rnd, authCfg)
	leaderboardService := leaderboard.New()
	boardController := board.NewController(worldService, logger)

	// SSE hub with a broadcaster listening for world changes
	hub := sse.NewHub(logger)
	go hub.Run()
	broadcaster := sse.NewBroadcaster(hub, store, leaderboardService, logger)
	worldService.Subscribe(broadcaster.OnWorldUpdate)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		WorldService:       worldService,
		AuthService:        authService,
		LeaderboardService: leaderboardService,
		BoardController:    boardController,
		Hub:                hub,
		Broadcaster:        broadcaster,
	}
}

// Close shuts down background components
func (a *App) Close() {
	a.Hub.Close()
}
