package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// World errors
	ErrWorldNotFound     = errors.New("world not found")
	ErrInvalidPosition   = errors.New("invalid grid position")
	ErrAlreadyOwner      = errors.New("tile is already owned by this player")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// Board interaction errors
	ErrNoSelection     = errors.New("no tile is selected")
	ErrTileUnavailable = errors.New("tile is owned by another player")
)
