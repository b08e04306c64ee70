package model

import "time"

// PlayerID uniquely identifies a player across the system.
// IDs are address-like strings ("0x" + hex) generated at registration
// and immutable afterwards.
type PlayerID string

// Player is a public player profile as seen by the directory and the
// leaderboard
type Player struct {
	ID        PlayerID
	Username  string
	CreatedAt time.Time
}

// RegisteredPlayer extends Player with authentication data
// Stored separately for security (credential hash never in memory with session)
type RegisteredPlayer struct {
	PlayerID     PlayerID
	Username     string // login username (immutable, unique)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
