package world

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tmccay/cityblocks/internal/dependencies/clock"
	"github.com/tmccay/cityblocks/internal/model"
	"github.com/tmccay/cityblocks/internal/storage"
)

// Listener is notified with the new snapshot after every successful
// world mutation
type Listener func(*model.World)

// Service owns the world snapshot: the tile grid and the balance map.
// Every mutation follows the same discipline: load the snapshot, build
// a fresh copy, persist the whole copy, then notify listeners. Earlier
// snapshots handed out to callers are never mutated.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	// mu serializes the read-modify-replace-write cycle within this
	// process. Writers in other processes are last-write-wins.
	mu        sync.Mutex
	listeners []Listener
	listenMu  sync.RWMutex
}

// New creates a new world Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Load returns the persisted world, synthesizing a fresh one if no
// snapshot exists. The invoking player is seeded with the starting
// balance if not already present. Absence of a snapshot is a normal
// path, not a failure.
func (s *Service) Load(ctx context.Context, playerID model.PlayerID) (*model.World, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx, playerID)
}

// EnsureSeeded idempotently adds a starting balance entry for the
// player, persisting only when an entry was added
func (s *Service) EnsureSeeded(ctx context.Context, playerID model.PlayerID) (*model.World, error) {
	return s.Load(ctx, playerID)
}

// Purchase attempts to buy the tile at the given position for the
// player. It fails without touching state when the position is off the
// grid, the player already owns the tile, or the player's balance is
// below the tile cost. On success the tile's owner is reassigned, the
// cost is debited, and the new snapshot is persisted and broadcast.
func (s *Service) Purchase(ctx context.Context, playerID model.PlayerID, pos model.Position) (*model.World, error) {
	s.mu.Lock()

	current, err := s.loadLocked(ctx, playerID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	tile, err := current.TileAt(pos)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if tile.OwnedBy(playerID) {
		s.mu.Unlock()
		return nil, model.ErrAlreadyOwner
	}
	if current.Balance(playerID) < model.TileCost {
		s.mu.Unlock()
		return nil, model.ErrInsufficientFunds
	}

	next := current.Clone()
	next.Tiles[pos.Row][pos.Col].Owner = playerID
	next.PlayerMoney[playerID] -= model.TileCost
	next.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveWorld(ctx, next); err != nil {
		s.mu.Unlock()
		s.logger.Error("failed to save world snapshot",
			slog.String("player_id", string(playerID)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("saving world snapshot: %w", err)
	}
	s.mu.Unlock()

	s.logger.Info("tile purchased",
		slog.String("player_id", string(playerID)),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
		slog.Int("balance", next.Balance(playerID)),
	)

	s.notify(next)
	return next, nil
}

// Reset clears all persisted state: the world snapshot, the player
// directory and all credentials
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Reset(ctx); err != nil {
		s.logger.Error("failed to reset game data", slog.String("error", err.Error()))
		return fmt.Errorf("resetting game data: %w", err)
	}

	s.logger.Info("game data reset")
	return nil
}

// Subscribe registers a listener for world changes. Listeners are
// called synchronously with the new snapshot after each successful
// mutation and must not block.
func (s *Service) Subscribe(listener Listener) {
	s.listenMu.Lock()
	s.listeners = append(s.listeners, listener)
	s.listenMu.Unlock()
}

// loadLocked implements Load; callers must hold s.mu
func (s *Service) loadLocked(ctx context.Context, playerID model.PlayerID) (*model.World, error) {
	current, err := s.storage.GetWorld(ctx)
	if errors.Is(err, model.ErrWorldNotFound) {
		fresh := model.NewWorld(s.clock.Now())
		fresh.PlayerMoney[playerID] = model.StartingBalance
		if err := s.storage.SaveWorld(ctx, fresh); err != nil {
			return nil, fmt.Errorf("saving world snapshot: %w", err)
		}
		s.logger.Info("world initialized",
			slog.String("player_id", string(playerID)),
			slog.Int("grid_size", model.GridSize),
		)
		return fresh, nil
	}
	if err != nil {
		return nil, err
	}

	if current.Seeded(playerID) {
		return current, nil
	}

	next := current.Clone()
	next.PlayerMoney[playerID] = model.StartingBalance
	next.UpdatedAt = s.clock.Now()
	if err := s.storage.SaveWorld(ctx, next); err != nil {
		return nil, fmt.Errorf("saving world snapshot: %w", err)
	}

	s.logger.Info("player seeded",
		slog.String("player_id", string(playerID)),
		slog.Int("balance", model.StartingBalance),
	)
	return next, nil
}

// notify fans the new snapshot out to listeners
func (s *Service) notify(world *model.World) {
	s.listenMu.RLock()
	listeners := s.listeners
	s.listenMu.RUnlock()

	for _, listener := range listeners {
		listener(world)
	}
}
