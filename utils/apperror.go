package utils

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorKind is the closed set of error classes the API can return. Handlers
// classify failures into one of these kinds; RespondError maps the kind to an
// HTTP status so no handler invents its own status code.
type ErrorKind int

const (
	ErrValidation ErrorKind = iota
	ErrUnauthorized
	ErrForbidden
	ErrNotFound
	ErrConflict
	ErrInternal
)

func (k ErrorKind) status() int {
	switch k {
	case ErrValidation:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes the JSON error payload for the given kind. For internal
// errors the underlying cause is logged and the client only sees the message.
func RespondError(c *gin.Context, kind ErrorKind, message string, cause error) {
	if kind == ErrInternal && cause != nil {
		log.Printf("internal error: %s: %v", message, cause)
	}
	c.JSON(kind.status(), gin.H{"error": message})
}
