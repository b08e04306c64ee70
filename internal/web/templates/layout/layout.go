package layout

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/tmccay/cityblocks/internal/model"
)

// FlashMessage is a one-shot message shown at the top of the next page
type FlashMessage struct {
	Type    string // "info", "success", "error"
	Message string
}

// PageData holds data common to every page
type PageData struct {
	Title  string
	Player *model.Player
	Flash  *FlashMessage
}

// Page wraps a body component in the shared HTML shell: head with HTMX
// and its SSE extension, nav bar with session state, and flash banner
func Page(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + html.EscapeString(data.Title) + ` - Cityblocks</title>`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
		b.WriteString(`<script src="https://unpkg.com/htmx.org@1.9.12/dist/ext/sse.js"></script>`)
		b.WriteString(`<link rel="stylesheet" href="/static/style.css">`)
		b.WriteString(`</head><body>`)

		b.WriteString(`<nav class="navbar"><a class="brand" href="/">Cityblocks</a>`)
		if data.Player != nil {
			b.WriteString(`<span class="nav-player">` + html.EscapeString(data.Player.Username) + `</span>`)
			b.WriteString(`<form method="post" action="/auth/logout" class="nav-logout">`)
			b.WriteString(`<button type="submit">Logout</button></form>`)
		}
		b.WriteString(`</nav>`)

		if data.Flash != nil {
			b.WriteString(`<div class="flash flash-` + html.EscapeString(data.Flash.Type) + `">`)
			b.WriteString(html.EscapeString(data.Flash.Message))
			b.WriteString(`</div>`)
		}

		b.WriteString(`<main>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}
