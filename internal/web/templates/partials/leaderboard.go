package partials

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/tmccay/cityblocks/internal/services/leaderboard"
)

// Leaderboard renders the ranked leaderboard panel. The fragment id is
// stable so SSE out-of-band swaps can replace it in place.
func Leaderboard(entries []leaderboard.Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div id="leaderboard" class="leaderboard"><h2>Leaderboard</h2><ol class="leaderboard-list">`)
		for _, entry := range entries {
			class := "leaderboard-row"
			if entry.IsCurrent {
				class += " leaderboard-current"
			}
			b.WriteString(fmt.Sprintf(
				`<li class="%s"><span class="rank">#%d</span><span class="name">%s</span><span class="balance">$%d</span></li>`,
				class, entry.Rank, html.EscapeString(entry.Username), entry.Balance,
			))
		}
		b.WriteString(`</ol></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// MoneyBadge renders the current player's balance display
func MoneyBadge(balance int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="money" class="money-badge">Money: $%d</div>`, balance)
		return err
	})
}
