package redis

import (
	"fmt"

	"github.com/tmccay/cityblocks/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "cityblocks"

// Key generation functions for each entity type

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player IDs
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// worldKey returns the Redis key for the world snapshot
func worldKey() string {
	return fmt.Sprintf("%s:world", keyPrefix)
}
