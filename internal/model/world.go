package model

import "time"

// World constants
const (
	// GridSize is the fixed extent of the tile grid (GridSize x GridSize)
	GridSize = 20

	// TileCost is the fixed price of purchasing a tile
	TileCost = 100

	// StartingBalance is the balance seeded for a newly seen player
	StartingBalance = 1000
)

// World is the full game state: the tile grid plus per-player balances.
// The grid is replaced wholesale on every mutation, never patched in
// place, so callers holding a *World see an immutable snapshot.
type World struct {
	PlayerMoney map[PlayerID]int `json:"playerMoney"`
	Tiles       [][]Tile         `json:"tiles"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// NewWorld synthesizes a fresh world: a GridSize x GridSize grid of
// unowned tiles with all four road flags set, and an empty balance map.
func NewWorld(now time.Time) *World {
	tiles := make([][]Tile, GridSize)
	for row := range tiles {
		tiles[row] = make([]Tile, GridSize)
		for col := range tiles[row] {
			tiles[row][col] = Tile{
				ID:    TileID(row, col),
				Roads: Roads{Top: true, Right: true, Bottom: true, Left: true},
			}
		}
	}
	return &World{
		PlayerMoney: make(map[PlayerID]int),
		Tiles:       tiles,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// InBounds reports whether the position lies on the grid
func (w *World) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < len(w.Tiles) &&
		pos.Col >= 0 && pos.Col < len(w.Tiles[pos.Row])
}

// TileAt returns the tile at the given position
func (w *World) TileAt(pos Position) (Tile, error) {
	if !w.InBounds(pos) {
		return Tile{}, ErrInvalidPosition
	}
	return w.Tiles[pos.Row][pos.Col], nil
}

// Balance returns the balance for a player, zero if the player has
// never been seeded
func (w *World) Balance(id PlayerID) int {
	return w.PlayerMoney[id]
}

// Seeded reports whether the player has a balance entry
func (w *World) Seeded(id PlayerID) bool {
	_, ok := w.PlayerMoney[id]
	return ok
}

// Clone returns a deep copy of the world. Mutations build a clone and
// persist it so earlier snapshots stay untouched.
func (w *World) Clone() *World {
	money := make(map[PlayerID]int, len(w.PlayerMoney))
	for id, balance := range w.PlayerMoney {
		money[id] = balance
	}
	tiles := make([][]Tile, len(w.Tiles))
	for row := range w.Tiles {
		tiles[row] = make([]Tile, len(w.Tiles[row]))
		copy(tiles[row], w.Tiles[row])
	}
	return &World{
		PlayerMoney: money,
		Tiles:       tiles,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
