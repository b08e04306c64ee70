package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tmccay/cityblocks/internal/model"
	"github.com/tmccay/cityblocks/internal/services/auth"
	"github.com/tmccay/cityblocks/internal/services/board"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidPosition    = "INVALID_POSITION"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeWorldNotFound      = "WORLD_NOT_FOUND"
	CodeAlreadyOwner       = "ALREADY_OWNER"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeNoSelection        = "NO_SELECTION"
	CodeTileUnavailable    = "TILE_UNAVAILABLE"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeUsernameTooShort   = "USERNAME_TOO_SHORT"
	CodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrWorldNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeWorldNotFound, "World not found"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid tile position"}}
	case errors.Is(err, model.ErrAlreadyOwner):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyOwner, "You already own this tile"}}
	case errors.Is(err, model.ErrInsufficientFunds):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientFunds, "Insufficient funds"}}
	case errors.Is(err, model.ErrNoSelection):
		return &httpError{http.StatusConflict, APIError{CodeNoSelection, "No tile selected"}}
	case errors.Is(err, model.ErrTileUnavailable):
		return &httpError{http.StatusConflict, APIError{CodeTileUnavailable, "Tile is owned by another player"}}
	case errors.Is(err, board.ErrInvalidDirection):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Invalid pan direction"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, auth.ErrUsernameTooShort):
		return &httpError{http.StatusBadRequest, APIError{CodeUsernameTooShort, "Username must be at least 3 characters"}}
	case errors.Is(err, auth.ErrPasswordTooShort):
		return &httpError{http.StatusBadRequest, APIError{CodePasswordTooShort, "Password must be at least 6 characters"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
