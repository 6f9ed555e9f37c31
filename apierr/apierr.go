package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind categorizes application errors for HTTP status mapping.
type Kind int

const (
	// Internal represents an unclassified server-side error (HTTP 500).
	Internal Kind = iota
	// InvalidInput indicates the request was malformed (HTTP 400).
	InvalidInput
	// UpstreamTimeout indicates a live upstream call exceeded its bound (HTTP 504).
	UpstreamTimeout
	// Upstream indicates any other failure from a live dependency (HTTP 502).
	Upstream
)

// Error carries a category, user-facing message, and original cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an Error of the given kind keeping the cause for logs.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Render writes err as a JSON error response with the status the kind maps
// to. Unclassified errors become a generic 500.
func Render(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred"})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case InvalidInput:
		status = http.StatusBadRequest
	case UpstreamTimeout:
		status = http.StatusGatewayTimeout
	case Upstream:
		status = http.StatusBadGateway
	case Internal:
		// 500 Internal Server Error
	}

	c.JSON(status, gin.H{"error": appErr.Message})
}
