package storage

import (
	"context"

	"github.com/tmccay/cityblocks/internal/model"
)

// Storage defines the interface for data persistence.
//
// Three independently keyed blob families are persisted: player profiles,
// registered players (credentials, with a username index), and the single
// world snapshot. World writes are whole-snapshot, last-write-wins.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// World operations
	SaveWorld(ctx context.Context, world *model.World) error
	GetWorld(ctx context.Context) (*model.World, error)

	// Reset clears all persisted state: world, players and credentials
	Reset(ctx context.Context) error
}
