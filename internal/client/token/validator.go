// Package token inspects bearer tokens locally: decoding embedded claims and
// checking expiry without contacting the backend. The client holds no signing
// key, so the signature is deliberately not verified here; authenticity is
// established by the backend's validate-token call during bootstrap.
//
// Every function fails closed: malformed input yields false or an error,
// never a panic.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/skillsync/skillsync/internal/common"
)

// nowFn is a test seam for the wall clock.
var nowFn = time.Now

// Claims are the token assertions the client cares about: subject identity
// plus the registered expiry.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id,omitempty"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
}

// UserInfo is the identity triple embedded in a token.
type UserInfo struct {
	ID    string
	Email string
	Name  string
}

// Decode parses the token's claims without verifying the signature.
// Empty or malformed tokens yield common.ErrInvalidToken.
func Decode(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, common.ErrInvalidToken
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}

// IsValid reports whether the token decodes and has not expired. A token
// whose exp equals the current second counts as expired, and a token with
// no exp claim is never valid.
func IsValid(tokenString string) bool {
	claims, err := Decode(tokenString)
	if err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Unix() > nowFn().Unix()
}

// ExtractUser returns the identity embedded in the token. The subject claim
// wins over the custom id claim when both are present.
func ExtractUser(tokenString string) (*UserInfo, error) {
	claims, err := Decode(tokenString)
	if err != nil {
		return nil, err
	}

	id := claims.Subject
	if id == "" {
		id = claims.UserID
	}
	return &UserInfo{ID: id, Email: claims.Email, Name: claims.Name}, nil
}
