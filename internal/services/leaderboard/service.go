package leaderboard

import (
	"sort"

	"github.com/tmccay/cityblocks/internal/model"
)

// UnknownUsername labels balance entries whose player id has no
// directory profile
const UnknownUsername = "Unknown Player"

// Entry is one ranked row of the leaderboard
type Entry struct {
	Rank      int
	PlayerID  model.PlayerID
	Username  string
	Balance   int
	IsCurrent bool
}

// Service projects the balance map and player directory into a ranked
// leaderboard. It is a pure function of its inputs and is recomputed on
// every call; the row count is bounded by the registered-player count,
// so no caching is warranted.
type Service struct{}

// New creates a new leaderboard Service
func New() *Service {
	return &Service{}
}

// Project produces the ranked leaderboard for the given balances.
// Ordering is descending by balance; ties break by ascending player id
// so the projection is deterministic. Ranks are the contiguous 1-based
// positions in that order.
func (s *Service) Project(balances map[model.PlayerID]int, directory map[model.PlayerID]*model.Player, current model.PlayerID) []Entry {
	entries := make([]Entry, 0, len(balances))
	for id, balance := range balances {
		username := UnknownUsername
		if player, ok := directory[id]; ok {
			username = player.Username
		}
		entries = append(entries, Entry{
			PlayerID:  id,
			Username:  username,
			Balance:   balance,
			IsCurrent: id == current,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// Directory builds a lookup map from a player listing
func Directory(players []*model.Player) map[model.PlayerID]*model.Player {
	directory := make(map[model.PlayerID]*model.Player, len(players))
	for _, player := range players {
		directory[player.ID] = player
	}
	return directory
}
