package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestRegister_Success(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/register", r.URL.Path)

		var creds credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "a@x.com", creds.Email)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(AuthResult{ID: "u-1", Email: creds.Email, Token: "tok"})
	})

	res, err := c.Register(context.Background(), "a@x.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "u-1", res.ID)
	assert.Equal(t, "tok", res.Token)
}

func TestRegister_Conflict(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(apiError{Error: "user already exists"})
	})

	_, err := c.Register(context.Background(), "a@x.com", "hunter2")
	assert.True(t, errors.Is(err, common.ErrorAlreadyExists))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(apiError{Error: "invalid email or password"})
	})

	_, err := c.Login(context.Background(), "a@x.com", "wrong")
	assert.True(t, errors.Is(err, common.ErrorInvalidCredentials))
}

func TestLogin_ServerError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(apiError{Error: "internal error"})
	})

	_, err := c.Login(context.Background(), "a@x.com", "hunter2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal error")
}

func TestMe(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(apiError{Error: "unauthenticated"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u-1"})
	})

	id, err := c.Me(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "u-1", id)

	_, err = c.Me(context.Background(), "bad")
	assert.True(t, errors.Is(err, common.ErrorInvalidCredentials))
}
