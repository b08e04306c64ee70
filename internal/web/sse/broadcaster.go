package sse

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/tmccay/cityblocks/internal/model"
	"github.com/tmccay/cityblocks/internal/services/leaderboard"
	"github.com/tmccay/cityblocks/internal/storage"
	"github.com/tmccay/cityblocks/internal/web/templates/partials"
)

// Broadcaster forwards world changes to connected SSE clients.
// It subscribes to the world service's change notifications and pushes
// a re-rendered leaderboard fragment as an HTMX out-of-band swap.
type Broadcaster struct {
	hub         *Hub
	storage     storage.Storage
	leaderboard *leaderboard.Service
	logger      *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub, storage storage.Storage, leaderboard *leaderboard.Service, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:         hub,
		storage:     storage,
		leaderboard: leaderboard,
		logger:      logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// OnWorldUpdate handles a world change notification. The leaderboard is
// broadcast unpersonalized (no current-player highlight); clients
// refresh for a personalized view.
func (b *Broadcaster) OnWorldUpdate(world *model.World) {
	ctx := context.Background()

	players, err := b.storage.ListPlayers(ctx)
	if err != nil {
		b.logger.Error("sse failed to list players", slog.Any("error", err))
		return
	}

	entries := b.leaderboard.Project(world.PlayerMoney, leaderboard.Directory(players), "")

	var buf bytes.Buffer
	if err := partials.Leaderboard(entries).Render(ctx, &buf); err != nil {
		b.logger.Error("sse failed to render leaderboard", slog.Any("error", err))
		return
	}

	html := WrapForOOBSwap("leaderboard", buf.String())
	b.hub.BroadcastEvent("world-update", html)
}

// BroadcastReset tells all clients the game data was reset; clients
// navigate back to the start screen
func (b *Broadcaster) BroadcastReset() {
	b.hub.BroadcastEvent("reset", `<script>window.location.href = "/";</script>`)
}

// WrapForOOBSwap wraps HTML in a div with hx-swap-oob for out-of-band swaps
func WrapForOOBSwap(id, html string) string {
	return `<div id="` + id + `" hx-swap-oob="true">` + html + `</div>`
}
