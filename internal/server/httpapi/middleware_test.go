package httpapi

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/stretchr/testify/assert"
)

func TestAuthFromContext_Default(t *testing.T) {
	actx := AuthFromContext(context.Background())
	assert.False(t, actx.Authenticated)
	assert.Empty(t, actx.UserID)
}

func TestAuthFromContext_RoundTrip(t *testing.T) {
	want := auth.Context{Authenticated: true, UserID: "u-1"}
	ctx := context.WithValue(context.Background(), authContextKey, want)
	assert.Equal(t, want, AuthFromContext(ctx))
}

func TestRequestIDFromContext_Default(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
