package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsErrorCode(t *testing.T) {
	err := NewPostNotFoundError("abc")
	assert.True(t, IsErrorCode(err, ErrPostNotFound))
	assert.False(t, IsErrorCode(err, ErrNotFound))
	assert.False(t, IsErrorCode(errors.New("plain"), ErrPostNotFound))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(NewAppError(ErrPermissionDenied, "denied", nil)))
	assert.True(t, IsAuthError(NewUnauthorizedError("no token")))
	assert.False(t, IsAuthError(NewAppError(ErrDatabase, "down", nil)))
	assert.False(t, IsAuthError(errors.New("plain")))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewWriteError("create", "post", cause)
	assert.Equal(t, "could not create post: root cause", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestAppErrorToHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, AppErrorToHTTPStatus(ErrPostNotFound))
	assert.Equal(t, 403, AppErrorToHTTPStatus(ErrPermissionDenied))
	assert.Equal(t, 409, AppErrorToHTTPStatus(ErrUserAlreadyExists))
	assert.Equal(t, 500, AppErrorToHTTPStatus("SOMETHING_ELSE"))
}
