package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("test-secret")
	token, expiresAt, err := m.Issue(User{ID: "12", Email: "sec@union.example", FullName: "Sam", Faculty: "Science"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
	assert.Equal(t, User{ID: "12", Email: "sec@union.example", FullName: "Sam", Faculty: "Science", Role: RoleAuthenticated}, claims.User())
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("a").Issue(User{ID: "1"})
	require.NoError(t, err)

	_, err = NewTokenManager("b").Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("s")
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.Issue(User{ID: "1"})
	require.NoError(t, err)

	_, err = NewTokenManager("s").Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenManager_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Role: RoleAuthenticated})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("s").Parse(signed)
	assert.Error(t, err)
}

func TestClaims_AnonIsNotAdmin(t *testing.T) {
	c := &Claims{Role: "anon"}
	assert.False(t, c.IsAdmin())
}
