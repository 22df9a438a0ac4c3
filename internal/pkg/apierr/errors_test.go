package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, CodeConflict, "request conflicts with the current state of the resource")
	changedE := e.Msg("%s", "changed")
	if e.Detail == "changed" {
		t.Errorf("Expected immutable error with detail not equal to 'changed', got '%s'", e.Detail)
	}
	if changedE.Detail != "changed" {
		t.Errorf("Expected immutable error with detail equal to 'changed', got '%s'", changedE.Detail)
	}
}

func TestIsMatchesCopies(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrNotFound.Msg("Activity not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, 404, e.StatusCode)
	assert.Equal(t, "Activity not found", e.Detail)
}

func TestBody(t *testing.T) {
	assert.Equal(t, "Already signed up", ErrConflict.Msg("Already signed up").Body()["detail"])

	v := NewViolations([]Violation{{Loc: []string{"query", "email"}, Msg: "email is a required field", Type: "required"}})
	assert.Equal(t, 422, v.StatusCode)
	assert.Len(t, v.Body()["detail"], 1)
	assert.Nil(t, ErrUnprocessable.Violations, "sentinel must stay untouched")
}
