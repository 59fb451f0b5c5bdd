// Package apperr is the error vocabulary shared by all controllers. Every
// store-layer failure is converted into one of these kinds before it reaches
// the wire, so a request can never crash the process with an unhandled error.
package apperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
	KindAuth
	KindInvalidState
	KindInternal
)

type Error struct {
	Kind     Kind
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Validation carries every violation found, not just the first.
func Validation(messages ...string) *Error {
	return &Error{Kind: KindValidation, Messages: messages}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Messages: []string{message}}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Messages: []string{message}}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Messages: []string{message}}
}

func InvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Messages: []string{message}}
}

func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Messages: []string{message}}
}

func (e *Error) status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict, KindInvalidState:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as JSON. Validation errors answer with a "messages"
// array, everything else with a single "message" string.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Internal("unexpected error")
	}
	if e.Kind == KindValidation {
		c.JSON(e.status(), gin.H{"messages": e.Messages})
		return
	}
	c.JSON(e.status(), gin.H{"message": e.Error()})
}
