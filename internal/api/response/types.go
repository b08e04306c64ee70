package response

import (
	"time"

	"github.com/tmccay/cityblocks/internal/model"
	"github.com/tmccay/cityblocks/internal/services/auth"
	"github.com/tmccay/cityblocks/internal/services/board"
	"github.com/tmccay/cityblocks/internal/services/leaderboard"
)

// Player represents a player in API responses
type Player struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		Username:  p.Username,
		CreatedAt: p.CreatedAt,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Roads describes which edges of a tile carry a road
type Roads struct {
	Top    bool `json:"top"`
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
}

// Tile represents one tile of the world grid
type Tile struct {
	ID       string `json:"id"`
	Roads    Roads  `json:"roads"`
	Owner    string `json:"owner,omitempty"`
	Building string `json:"building,omitempty"`
}

// TileFromModel converts a model.Tile
func TileFromModel(t model.Tile) Tile {
	return Tile{
		ID: t.ID,
		Roads: Roads{
			Top:    t.Roads.Top,
			Right:  t.Roads.Right,
			Bottom: t.Roads.Bottom,
			Left:   t.Roads.Left,
		},
		Owner:    string(t.Owner),
		Building: t.Building,
	}
}

// World represents the shared world snapshot, with the requesting
// player's balance lifted out for convenience
type World struct {
	Tiles     [][]Tile       `json:"tiles"`
	Balances  map[string]int `json:"balances"`
	MyBalance int            `json:"my_balance"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// WorldFromModel converts a model.World for the given player
func WorldFromModel(w *model.World, playerID model.PlayerID) World {
	tiles := make([][]Tile, len(w.Tiles))
	for r := range w.Tiles {
		tiles[r] = make([]Tile, len(w.Tiles[r]))
		for c := range w.Tiles[r] {
			tiles[r][c] = TileFromModel(w.Tiles[r][c])
		}
	}

	balances := make(map[string]int, len(w.PlayerMoney))
	for id, money := range w.PlayerMoney {
		balances[string(id)] = money
	}

	return World{
		Tiles:     tiles,
		Balances:  balances,
		MyBalance: w.Balance(playerID),
		UpdatedAt: w.UpdatedAt,
	}
}

// LeaderboardEntry represents one ranked leaderboard row
type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	PlayerID  string `json:"player_id"`
	Username  string `json:"username"`
	Balance   int    `json:"balance"`
	IsCurrent bool   `json:"is_current"`
}

// LeaderboardFromEntries converts leaderboard entries
func LeaderboardFromEntries(entries []leaderboard.Entry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			Rank:      e.Rank,
			PlayerID:  string(e.PlayerID),
			Username:  e.Username,
			Balance:   e.Balance,
			IsCurrent: e.IsCurrent,
		}
	}
	return out
}

// Position is a grid coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BoardView represents a player's transient view state
type BoardView struct {
	CameraX  int       `json:"camera_x"`
	CameraY  int       `json:"camera_y"`
	Zoom     float64   `json:"zoom"`
	Selected *Position `json:"selected"`
}

// BoardViewFromModel converts a board.View
func BoardViewFromModel(v board.View) BoardView {
	view := BoardView{
		CameraX: v.CameraX,
		CameraY: v.CameraY,
		Zoom:    v.Zoom,
	}
	if v.Selected != nil {
		view.Selected = &Position{Row: v.Selected.Row, Col: v.Selected.Col}
	}
	return view
}
