package handler

import (
	"net/http"

	"github.com/tmccay/cityblocks/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeInvalidPosition    = apierr.CodeInvalidPosition
	CodeUnauthorized       = apierr.CodeUnauthorized
	CodePlayerNotFound     = apierr.CodePlayerNotFound
	CodeWorldNotFound      = apierr.CodeWorldNotFound
	CodeAlreadyOwner       = apierr.CodeAlreadyOwner
	CodeInsufficientFunds  = apierr.CodeInsufficientFunds
	CodeNoSelection        = apierr.CodeNoSelection
	CodeTileUnavailable    = apierr.CodeTileUnavailable
	CodeUsernameExists     = apierr.CodeUsernameExists
	CodeUsernameTooShort   = apierr.CodeUsernameTooShort
	CodePasswordTooShort   = apierr.CodePasswordTooShort
	CodeInvalidCredentials = apierr.CodeInvalidCredentials
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
