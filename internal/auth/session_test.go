package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SaveReadClear(t *testing.T) {
	store := NewSessionStore("0123456789abcdef0123456789abcdef", false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", nil)
	err := SaveSession(rec, req, store, &Session{AccessToken: "tok", ExpiresAt: time.Now().Add(30 * time.Minute)})
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	next := httptest.NewRequest(http.MethodGet, "/api/v1/admin/news", nil)
	next.AddCookie(cookies[0])
	assert.Equal(t, "tok", SessionToken(next, store))

	rec = httptest.NewRecorder()
	require.NoError(t, ClearSession(rec, next, store))
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)
}

func TestSessionToken_ForeignCookie(t *testing.T) {
	store := NewSessionStore("0123456789abcdef0123456789abcdef", false)
	other := NewSessionStore("fedcba9876543210fedcba9876543210", false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	require.NoError(t, SaveSession(rec, req, other, &Session{AccessToken: "forged", ExpiresAt: time.Now().Add(time.Hour)}))

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(rec.Result().Cookies()[0])
	assert.Empty(t, SessionToken(next, store))
}
