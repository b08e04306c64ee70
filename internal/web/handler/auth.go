package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tmccay/cityblocks/internal/services/auth"
	"github.com/tmccay/cityblocks/internal/web/middleware"
	"github.com/tmccay/cityblocks/internal/web/templates/layout"
	"github.com/tmccay/cityblocks/internal/web/templates/pages"
)

// AuthHandler handles login, registration and logout
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderStartError(w, r, pages.StartModeLogin, "Invalid form data", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if username == "" || password == "" {
		h.renderStartError(w, r, pages.StartModeLogin, "Username and password are required", username)
		return
	}

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		// Unknown usernames and wrong passwords get the same message
		h.renderStartError(w, r, pages.StartModeLogin, "Invalid username or password", username)
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Welcome back, "+session.Player.Username+"!")
	redirectAfterAuth(w, r, next)
}

// Register handles registration form submission
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderStartError(w, r, pages.StartModeRegister, "Invalid form data", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	session, err := h.authService.Register(r.Context(), username, password)
	if err != nil {
		h.renderStartError(w, r, pages.StartModeRegister, registerErrorMessage(err), username)
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Welcome, "+session.Player.Username+"!")
	redirectAfterAuth(w, r, next)
}

// Logout handles logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session"); err == nil {
		h.authService.Logout(cookie.Value)
	}

	// Clear session cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func registerErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrUsernameTooShort):
		return "Username must be at least 3 characters"
	case errors.Is(err, auth.ErrPasswordTooShort):
		return "Password must be at least 6 characters"
	case errors.Is(err, auth.ErrUsernameExists):
		return "Username already exists"
	default:
		return "Registration failed"
	}
}

func redirectAfterAuth(w http.ResponseWriter, r *http.Request, next string) {
	if next != "" && strings.HasPrefix(next, "/") {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/board", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderStartError(w http.ResponseWriter, r *http.Request, mode pages.StartMode, errorMsg, username string) {
	data := pages.StartData{
		PageData: layout.PageData{
			Title: "Start",
		},
		Mode:     mode,
		Error:    errorMsg,
		Username: username,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Start(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
