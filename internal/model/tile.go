package model

import "fmt"

// Position identifies a tile on the grid
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Roads holds the four decorative road-edge flags of a tile.
// They are set once at grid initialization and never mutated.
type Roads struct {
	Top    bool `json:"top"`
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
}

// Tile is a single cell of the world grid
type Tile struct {
	ID       string   `json:"id"`
	Roads    Roads    `json:"roads"`
	Owner    PlayerID `json:"owner"`    // empty = unowned
	Building string   `json:"building"` // reserved for future use, always empty
}

// TileID returns the stable identifier for the tile at the given position
func TileID(row, col int) string {
	return fmt.Sprintf("tile-%d-%d", row, col)
}

// Owned reports whether the tile has an owner
func (t Tile) Owned() bool {
	return t.Owner != ""
}

// OwnedBy reports whether the tile is owned by the given player
func (t Tile) OwnedBy(id PlayerID) bool {
	return t.Owner != "" && t.Owner == id
}
