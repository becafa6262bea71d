// Package session persists the client's session material (bearer token and
// cached user record) across process restarts.
package session

import (
	"context"
)

// Logical keys stored in the session table.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Repository is scoped durable key-value storage for session material.
// Get returns (nil, nil) for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
