// Package apierr defines the errors rendered to API clients. Every error carries
// an HTTP status code and a short human readable detail; the code field is only
// used for matching and logging and never leaves the process.
package apierr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeUnprocessable = "UNPROCESSABLE"
	CodeInternalError = "INTERNAL_ERROR"
	CodeUnavailable   = "UNAVAILABLE"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrConflict is returned when a request contradicts the current state of a resource.
	// It is surfaced as a client error.
	ErrConflict = New(fiber.StatusBadRequest, CodeConflict, "request conflicts with the current state of the resource")

	// ErrUnprocessable is returned when request parameters are missing or malformed.
	ErrUnprocessable = New(fiber.StatusUnprocessableEntity, CodeUnprocessable, "some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "Internal Server Error")

	// ErrUnavailable is returned when a backing dependency cannot be reached.
	ErrUnavailable = New(fiber.StatusServiceUnavailable, CodeUnavailable, "service unavailable")
)

// Violation describes a single invalid request parameter.
type Violation struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type Error struct {
	StatusCode int
	Code       string
	Detail     string
	Violations []Violation
}

func New(statusCode int, code string, detail string) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       code,
		Detail:     detail,
	}
}

// Msg returns a copy of e with its detail replaced.
func (e Error) Msg(format string, parts ...any) *Error {
	e.Detail = fmt.Sprintf(format, parts...)
	return &e
}

func NewViolations(violations []Violation) *Error {
	// copy ErrUnprocessable as e
	e := *ErrUnprocessable
	e.Violations = violations
	return &e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// Is reports whether target is an *Error of the same code, so copies made by
// Msg still match their sentinel with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Body is the JSON body rendered for e.
func (e *Error) Body() fiber.Map {
	if len(e.Violations) > 0 {
		return fiber.Map{"detail": e.Violations}
	}
	return fiber.Map{"detail": e.Detail}
}
