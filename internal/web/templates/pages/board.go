package pages

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/tmccay/cityblocks/internal/model"
	"github.com/tmccay/cityblocks/internal/services/board"
	"github.com/tmccay/cityblocks/internal/services/leaderboard"
	"github.com/tmccay/cityblocks/internal/web/templates/layout"
	"github.com/tmccay/cityblocks/internal/web/templates/partials"
)

// BoardData holds data for the board page
type BoardData struct {
	layout.PageData
	World   *model.World
	View    board.View
	Entries []leaderboard.Entry
}

// Board renders the tile grid, camera controls, purchase panel and
// leaderboard for the current player
func Board(data BoardData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		playerID := data.Player.ID
		balance := data.World.Balance(playerID)

		var b strings.Builder
		b.WriteString(`<div class="board-page" hx-ext="sse" sse-connect="/board/events">`)

		if err := writeString(ctx, w, &b); err != nil {
			return err
		}
		if err := partials.MoneyBadge(balance).Render(ctx, w); err != nil {
			return err
		}

		b.WriteString(fmt.Sprintf(
			`<div class="camera-info">Camera: (%d, %d) Zoom: %.2f</div>`,
			data.View.CameraX, data.View.CameraY, data.View.Zoom,
		))

		b.WriteString(`<div class="camera-controls">`)
		for _, dir := range []board.Direction{board.DirectionUp, board.DirectionDown, board.DirectionLeft, board.DirectionRight} {
			b.WriteString(fmt.Sprintf(
				`<form method="post" action="/board/camera"><input type="hidden" name="command" value="pan_%s"><button type="submit">%s</button></form>`,
				dir, dir,
			))
		}
		b.WriteString(`<form method="post" action="/board/camera"><input type="hidden" name="command" value="zoom_in"><button type="submit">+</button></form>`)
		b.WriteString(`<form method="post" action="/board/camera"><input type="hidden" name="command" value="zoom_out"><button type="submit">-</button></form>`)
		b.WriteString(`</div>`)

		b.WriteString(fmt.Sprintf(
			`<div class="board-viewport"><div class="board-grid" style="transform: translate(%dpx, %dpx) scale(%.2f)">`,
			data.View.CameraX, data.View.CameraY, data.View.Zoom,
		))
		for row := range data.World.Tiles {
			for col := range data.World.Tiles[row] {
				tile := data.World.Tiles[row][col]
				class := tileClass(tile, playerID, data.View.Selected, row, col)
				b.WriteString(fmt.Sprintf(
					`<form method="post" action="/board/select" class="tile-form"><input type="hidden" name="row" value="%d"><input type="hidden" name="col" value="%d"><button type="submit" id="%s" class="%s"></button></form>`,
					row, col, tile.ID, class,
				))
			}
		}
		b.WriteString(`</div></div>`)

		if data.View.Selected != nil {
			b.WriteString(`<div class="buy-panel"><form method="post" action="/board/buy">`)
			if balance >= model.TileCost {
				b.WriteString(fmt.Sprintf(`<button type="submit" class="buy-button">Buy Tile ($%d)</button>`, model.TileCost))
			} else {
				b.WriteString(fmt.Sprintf(`<button type="submit" class="buy-button" disabled>Buy Tile ($%d)</button>`, model.TileCost))
			}
			b.WriteString(`</form></div>`)
		}

		if err := writeString(ctx, w, &b); err != nil {
			return err
		}
		if err := partials.Leaderboard(data.Entries).Render(ctx, w); err != nil {
			return err
		}

		// SSE out-of-band swaps replace #leaderboard on world-update events
		b.WriteString(`<div sse-swap="world-update" hx-swap="none"></div>`)
		b.WriteString(`</div>`)
		return writeString(ctx, w, &b)
	})
	return layout.Page(data.PageData, body)
}

// tileClass derives the CSS classes for one tile
func tileClass(tile model.Tile, playerID model.PlayerID, selected *model.Position, row, col int) string {
	class := "tile"
	switch {
	case selected != nil && selected.Row == row && selected.Col == col:
		class += " tile-selected"
	case tile.OwnedBy(playerID):
		class += " tile-self"
	case tile.Owned():
		class += " tile-owned"
	}
	return class
}

// writeString flushes the builder to the writer and resets it
func writeString(_ context.Context, w io.Writer, b *strings.Builder) error {
	_, err := io.WriteString(w, b.String())
	b.Reset()
	return err
}
