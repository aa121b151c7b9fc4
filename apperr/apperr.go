// Package apperr defines the error taxonomy shared by services and handlers.
// File: apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by how it is reported to clients.
type Kind uint8

const (
	Unexpected Kind = iota
	Validation
	Unauthenticated
	InvalidToken
	InvalidCredentials
	NotFound
	Conflict
	UnsupportedType
	TooLarge
	ExternalService
)

var kindNames = map[Kind]string{
	Unexpected:         "unexpected",
	Validation:         "validation",
	Unauthenticated:    "unauthenticated",
	InvalidToken:       "invalid token",
	InvalidCredentials: "invalid credentials",
	NotFound:           "not found",
	Conflict:           "conflict",
	UnsupportedType:    "unsupported type",
	TooLarge:           "too large",
	ExternalService:    "external service",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Error is a classified application error. Message is safe to show to
// clients; Err carries the underlying cause for server-side logs.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ------------------- constructors -------------------

// Validationf reports malformed or missing input for field.
func Validationf(field, format string, args ...any) *Error {
	return &Error{Kind: Validation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Required reports a missing required field.
func Required(field string) *Error {
	return &Error{Kind: Validation, Field: field, Message: fmt.Sprintf("field %s is required", field)}
}

// NotFoundf reports a missing entity, e.g. NotFoundf("Competition").
func NotFoundf(entity string) *Error {
	return &Error{Kind: NotFound, Message: entity + " not found"}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

func External(message string, err error) *Error {
	return &Error{Kind: ExternalService, Message: message, Err: err}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// ------------------- inspection -------------------

// KindOf returns the Kind of the first *Error in err's chain, or Unexpected.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Unexpected
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// PublicMessage returns the client-facing text for err. Unexpected errors
// never leak their detail.
func PublicMessage(err error, fallback string) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != Unexpected && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// Status maps a Kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case Validation, UnsupportedType, TooLarge:
		return http.StatusBadRequest
	case Unauthenticated, InvalidToken, InvalidCredentials:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
