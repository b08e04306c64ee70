package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tmccay/cityblocks/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func (s *ServiceSuite) directory() map[model.PlayerID]*model.Player {
	return Directory([]*model.Player{
		{ID: "0xaaa", Username: "alice"},
		{ID: "0xbbb", Username: "bob"},
		{ID: "0xccc", Username: "carol"},
	})
}

func (s *ServiceSuite) TestOrderedDescendingByBalance() {
	balances := map[model.PlayerID]int{
		"0xaaa": 500,
		"0xbbb": 900,
		"0xccc": 700,
	}

	entries := s.service.Project(balances, s.directory(), "0xaaa")

	s.Require().Len(entries, 3)
	s.Equal("bob", entries[0].Username)
	s.Equal("carol", entries[1].Username)
	s.Equal("alice", entries[2].Username)
	for i := 1; i < len(entries); i++ {
		s.GreaterOrEqual(entries[i-1].Balance, entries[i].Balance)
	}
}

func (s *ServiceSuite) TestRanksAreContiguous() {
	balances := map[model.PlayerID]int{
		"0xaaa": 100,
		"0xbbb": 300,
		"0xccc": 200,
	}

	entries := s.service.Project(balances, s.directory(), "")

	for i, entry := range entries {
		s.Equal(i+1, entry.Rank)
	}
}

func (s *ServiceSuite) TestTieBrokenByPlayerID() {
	balances := map[model.PlayerID]int{
		"0xccc": 500,
		"0xaaa": 500,
		"0xbbb": 500,
	}

	entries := s.service.Project(balances, s.directory(), "")

	s.Equal(model.PlayerID("0xaaa"), entries[0].PlayerID)
	s.Equal(model.PlayerID("0xbbb"), entries[1].PlayerID)
	s.Equal(model.PlayerID("0xccc"), entries[2].PlayerID)
}

func (s *ServiceSuite) TestUnknownPlayerSentinel() {
	balances := map[model.PlayerID]int{
		"0xdead": 1000,
	}

	entries := s.service.Project(balances, s.directory(), "")

	s.Require().Len(entries, 1)
	s.Equal(UnknownUsername, entries[0].Username)
}

func (s *ServiceSuite) TestCurrentPlayerFlag() {
	balances := map[model.PlayerID]int{
		"0xaaa": 900,
		"0xbbb": 800,
	}

	entries := s.service.Project(balances, s.directory(), "0xbbb")

	s.False(entries[0].IsCurrent)
	s.True(entries[1].IsCurrent)
}

func (s *ServiceSuite) TestEmptyBalances() {
	entries := s.service.Project(nil, s.directory(), "0xaaa")
	s.Empty(entries)
}
