package api

import (
	"errors"

	"github.com/skillsync/skillsync/internal/common"
)

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
)

// Error is a backend failure normalized to a single user-facing message,
// taken from the response body's "message" or "detail" field, or the
// calling operation's fallback when the body carries neither.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is lets errors.Is(err, common.ErrUnauthorized) match 401 responses without
// callers inspecting the status code.
func (e *Error) Is(target error) bool {
	return target == common.ErrUnauthorized && e.Status == 401
}
