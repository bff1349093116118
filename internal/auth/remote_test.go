package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRemote(t *testing.T, handler http.HandlerFunc) (*RemoteProvider, *TokenManager) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	tokens := NewTokenManager("shared-secret")
	return NewRemoteProvider(srv.URL, "anon-key", "https://union.example/admin/reset-password", tokens), tokens
}

func TestRemoteProvider_SignIn(t *testing.T) {
	var tokens *TokenManager
	var p *RemoteProvider
	p, tokens = newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "pres@union.example", body["email"])

		token, _, err := tokens.Issue(User{ID: "uuid-1", Email: body["email"]})
		require.NoError(t, err)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": token,
			"expires_in":   3600,
			"user": map[string]interface{}{
				"id":            "uuid-1",
				"email":         body["email"],
				"role":          "authenticated",
				"user_metadata": map[string]string{"full_name": "Pat Ode"},
			},
		})
	})

	session, err := p.SignIn(context.Background(), "pres@union.example", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, "Pat Ode", session.User.FullName)
	assert.Equal(t, RoleAuthenticated, session.User.Role)
}

func TestRemoteProvider_SignInInvalidCredentials(t *testing.T) {
	p, _ := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	})

	_, err := p.SignIn(context.Background(), "x@union.example", "wrongpw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRemoteProvider_SignInServiceDown(t *testing.T) {
	p, _ := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := p.SignIn(context.Background(), "x@union.example", "secret1")
	assert.ErrorIs(t, err, ErrRemote)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestRemoteProvider_SignUpSendsProfile(t *testing.T) {
	var got struct {
		Email string  `json:"email"`
		Data  Profile `json:"data"`
	}
	p, _ := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":"uuid-2","email":"new@union.example","role":"authenticated","user_metadata":{"full_name":"Nia","faculty":"Law"}}`))
	})

	user, err := p.SignUp(context.Background(), "new@union.example", "secret1", Profile{FullName: "Nia", Faculty: "Law"})
	require.NoError(t, err)
	assert.Equal(t, Profile{FullName: "Nia", Faculty: "Law"}, got.Data)
	assert.Equal(t, "uuid-2", user.ID)
	assert.Equal(t, "Law", user.Faculty)
}

func TestRemoteProvider_SignUpSessionShape(t *testing.T) {
	p, _ := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"access_token":"t","user":{"id":"uuid-3","email":"s@union.example"}}`))
	})

	user, err := p.SignUp(context.Background(), "s@union.example", "secret1", Profile{})
	require.NoError(t, err)
	assert.Equal(t, "uuid-3", user.ID)
}

func TestRemoteProvider_SignUpEmailTaken(t *testing.T) {
	p, _ := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`))
	})

	_, err := p.SignUp(context.Background(), "dup@union.example", "secret1", Profile{})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRemoteProvider_RequestPasswordReset(t *testing.T) {
	p, _ := newRemote(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/recover", r.URL.Path)
		assert.Equal(t, "https://union.example/admin/reset-password", r.URL.Query().Get("redirect_to"))
		w.Write([]byte(`{}`))
	})

	assert.NoError(t, p.RequestPasswordReset(context.Background(), "pres@union.example"))
	assert.ErrorIs(t, p.ConfirmPasswordReset(context.Background(), "pres@union.example", "123456", "newpass"), ErrUnsupported)
}
