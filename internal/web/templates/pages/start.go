package pages

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/tmccay/cityblocks/internal/web/templates/layout"
)

// StartMode is the start screen's categorical state
type StartMode string

// Start screen modes; any mode can return to StartModeInitial
const (
	StartModeInitial  StartMode = "initial"
	StartModeLogin    StartMode = "login"
	StartModeRegister StartMode = "register"
)

// ParseStartMode maps a query value to a StartMode, defaulting to initial
func ParseStartMode(value string) StartMode {
	switch StartMode(value) {
	case StartModeLogin:
		return StartModeLogin
	case StartModeRegister:
		return StartModeRegister
	default:
		return StartModeInitial
	}
}

// StartData holds data for the start screen
type StartData struct {
	layout.PageData
	Mode     StartMode
	Error    string
	Username string // retained form value after a failed submit
}

// Start renders the start screen in one of its three modes
func Start(data StartData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<div class="start-screen"><div class="start-card">`)
		b.WriteString(`<h1>Welcome to Cityblocks</h1>`)
		b.WriteString(`<p class="tagline">Build, manage, and compete in this city building game</p>`)

		switch data.Mode {
		case StartModeLogin:
			writeAuthForm(&b, "/auth/login", "Login", data)
		case StartModeRegister:
			writeAuthForm(&b, "/auth/register", "Register", data)
		default:
			b.WriteString(`<div class="start-actions">`)
			b.WriteString(`<a class="button" href="/?mode=register">Create New Account</a>`)
			b.WriteString(`<a class="button" href="/?mode=login">Login to Existing Account</a>`)
			b.WriteString(`</div>`)
		}

		b.WriteString(`<form method="post" action="/reset" class="reset-form" `)
		b.WriteString(`onsubmit="return confirm('Are you sure you want to reset all game data? This will remove all accounts and game progress.')">`)
		b.WriteString(`<button type="submit" class="button-danger">Reset All Game Data</button></form>`)

		b.WriteString(`</div></div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
	return layout.Page(data.PageData, body)
}

func writeAuthForm(b *strings.Builder, action, label string, data StartData) {
	b.WriteString(`<form method="post" action="` + action + `" class="auth-form">`)
	b.WriteString(`<input type="text" name="username" placeholder="Username" value="` + html.EscapeString(data.Username) + `">`)
	b.WriteString(`<input type="password" name="password" placeholder="Password">`)
	if data.Error != "" {
		b.WriteString(`<p class="form-error">` + html.EscapeString(data.Error) + `</p>`)
	}
	b.WriteString(`<button type="submit">` + label + `</button>`)
	b.WriteString(`<a class="back-link" href="/">Back</a>`)
	b.WriteString(`</form>`)
}
