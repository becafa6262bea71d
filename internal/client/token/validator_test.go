package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/skillsync/skillsync/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("unit-test-secret")

// signToken builds a real HS256 token; the validator never checks the
// signature, but parseable input has to look like the genuine article.
func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	require.NoError(t, err)
	return s
}

func expAt(ts time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(ts)}
}

func TestIsValid_FutureExpiry(t *testing.T) {
	tok := signToken(t, Claims{RegisteredClaims: expAt(time.Now().Add(time.Hour))})
	assert.True(t, IsValid(tok))
}

func TestIsValid_PastExpiry(t *testing.T) {
	tok := signToken(t, Claims{RegisteredClaims: expAt(time.Now().Add(-time.Hour))})
	assert.False(t, IsValid(tok))
}

func TestIsValid_ExpiryAtNowCountsAsExpired(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	nowFn = func() time.Time { return now }
	t.Cleanup(func() { nowFn = time.Now })

	tok := signToken(t, Claims{RegisteredClaims: expAt(now)})
	assert.False(t, IsValid(tok), "exp == now must be treated as expired")

	tok = signToken(t, Claims{RegisteredClaims: expAt(now.Add(time.Second))})
	assert.True(t, IsValid(tok))
}

func TestIsValid_MissingExpClaim(t *testing.T) {
	tok := signToken(t, Claims{UserID: "42"})
	assert.False(t, IsValid(tok))
}

func TestIsValid_MalformedInput(t *testing.T) {
	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d", "!!.!!.!!"} {
		assert.False(t, IsValid(tok), "token %q", tok)
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("not-a-token")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = Decode("")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestDecode_Claims(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	tok := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Email: "jane@example.com",
		Name:  "Jane",
	})

	claims, err := Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
}

func TestExtractUser_SubjectWinsOverCustomID(t *testing.T) {
	tok := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-7"},
		UserID:           "custom-9",
		Email:            "jane@example.com",
		Name:             "Jane",
	})

	u, err := ExtractUser(tok)
	require.NoError(t, err)
	assert.Equal(t, &UserInfo{ID: "sub-7", Email: "jane@example.com", Name: "Jane"}, u)
}

func TestExtractUser_FallsBackToCustomID(t *testing.T) {
	tok := signToken(t, Claims{UserID: "custom-9"})

	u, err := ExtractUser(tok)
	require.NoError(t, err)
	assert.Equal(t, "custom-9", u.ID)
}

func TestExtractUser_Malformed(t *testing.T) {
	_, err := ExtractUser("broken")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
