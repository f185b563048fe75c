package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := DaoError{
		Message: "error message",
	}
	assert.Equal(t, "error message", err.Error())
	err.Wrap(errors.New("wrapped error"))
	assert.Equal(t, "error message: wrapped error", err.Error())
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &DaoError{Message: "Failed to store asset", Err: inner, Upstream: true}
	assert.ErrorIs(t, err, inner)

	var daoErr *DaoError
	assert.True(t, errors.As(error(err), &daoErr))
	assert.True(t, daoErr.Upstream)
}

func TestConstructors(t *testing.T) {
	v := NewValidationError("bad")
	assert.True(t, v.BadValidation)
	assert.False(t, v.NotFound)
	assert.Equal(t, "bad", v.Error())

	n := NewNotFoundError("missing")
	assert.True(t, n.NotFound)
	assert.False(t, n.BadValidation)
}
