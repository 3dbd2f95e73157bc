package auth

import "strings"

// Context is the per-request authentication state derived from the
// Authorization header. When Authenticated is false, UserID is empty.
type Context struct {
	Authenticated bool
	UserID        string
}

// Guard turns the value of an Authorization header into a Context.
// The process-wide secret is fixed at construction.
type Guard struct {
	secretKey []byte
}

func NewGuard(secretKey []byte) *Guard {
	return &Guard{secretKey: secretKey}
}

// AuthenticateRequest never fails: every missing, malformed, expired, or
// tampered credential collapses into an unauthenticated Context, so requests
// without valid auth still reach public routes.
//
// The header is split on whitespace and the second field is taken as the
// candidate token; the scheme word itself is not inspected.
func (g *Guard) AuthenticateRequest(authHeader string) Context {
	if authHeader == "" {
		return Context{}
	}

	parts := strings.Fields(authHeader)
	if len(parts) < 2 {
		return Context{}
	}

	userID, err := GetUserIDFromToken(parts[1], g.secretKey)
	if err != nil {
		return Context{}
	}

	return Context{Authenticated: true, UserID: userID}
}
