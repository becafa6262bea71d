// Package common defines shared constants and sentinel errors used across
// the SkillSync client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Auth errors (invalid or malformed credential).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Generic flow-control errors.
	ErrUnauthorized = errors.New("unauthorized")
)
