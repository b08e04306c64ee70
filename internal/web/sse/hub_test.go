package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tmccay/cityblocks/internal/testutil"
)

type HubTestSuite struct {
	suite.Suite
	hub *Hub
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

func (s *HubTestSuite) SetupTest() {
	s.hub = NewHub(testutil.NopLogger())
	go s.hub.Run()
}

func (s *HubTestSuite) TearDownTest() {
	s.hub.Close()
}

func (s *HubTestSuite) receive(client *Client) string {
	select {
	case msg := <-client.send:
		return string(msg)
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for message")
		return ""
	}
}

func (s *HubTestSuite) TestRegisterUnregister() {
	client := NewClient(s.hub, "0xabc123")
	s.hub.Register(client)
	s.Equal(1, s.hub.ClientCount())

	s.hub.Unregister(client)
	s.Equal(0, s.hub.ClientCount())

	// Channel is closed on unregister
	_, ok := <-client.send
	s.False(ok)
}

func (s *HubTestSuite) TestBroadcastReachesAllClients() {
	alice := NewClient(s.hub, "0xaaa")
	bob := NewClient(s.hub, "0xbbb")
	s.hub.Register(alice)
	s.hub.Register(bob)

	s.hub.BroadcastEvent("world-update", "<div>updated</div>")

	for _, client := range []*Client{alice, bob} {
		msg := s.receive(client)
		s.Contains(msg, "event: world-update\n")
		s.Contains(msg, "data: <div>updated</div>\n")
	}
}

func (s *HubTestSuite) TestBroadcastWithNoClients() {
	// Should not block or panic
	s.hub.BroadcastEvent("world-update", "nobody home")
	s.Equal(0, s.hub.ClientCount())
}

func (s *HubTestSuite) TestCloseDisconnectsClients() {
	client := NewClient(s.hub, "0xabc")
	s.hub.Register(client)

	s.hub.Close()

	select {
	case _, ok := <-client.send:
		s.False(ok)
	case <-time.After(time.Second):
		s.FailNow("client channel not closed on hub shutdown")
	}

	// Restart for TearDownTest's Close
	s.hub = NewHub(testutil.NopLogger())
	go s.hub.Run()
}

func (s *HubTestSuite) TestFormatSSEMessage() {
	msg := string(formatSSEMessage("world-update", "hello"))
	s.Equal("event: world-update\ndata: hello\n\n", msg)
}

func (s *HubTestSuite) TestFormatSSEMessageMultiline() {
	msg := string(formatSSEMessage("world-update", "line1\nline2\r\nline3"))
	s.Equal("event: world-update\ndata: line1\ndata: line2\ndata: line3\n\n", msg)

	lines := strings.Split(strings.TrimSuffix(msg, "\n\n"), "\n")
	s.Len(lines, 4)
}

func (s *HubTestSuite) TestFormatSSEMessageEmptyData() {
	msg := string(formatSSEMessage("ping", ""))
	s.Equal("event: ping\ndata: \n\n", msg)
}

func (s *HubTestSuite) TestWrapForOOBSwap() {
	html := WrapForOOBSwap("leaderboard", "<ol></ol>")
	s.Equal(`<div id="leaderboard" hx-swap-oob="true"><ol></ol></div>`, html)
}
