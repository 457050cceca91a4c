// Package auth provides email/password authentication with in-memory
// session tokens backed by the persistence gateway's user records.
package auth

import (
	"context"
	"time"
)

// Identity describes a signed-in planner user.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}

// Session is a live sign-in. The token is opaque and expires after the
// configured TTL.
type Session struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}

// Provider defines the authentication surface the planner depends on.
type Provider interface {
	SignUp(ctx context.Context, email, password, displayName string) (*Identity, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (*Identity, error)

	// OnAuthStateChange registers a listener invoked with the identity on
	// sign-in and nil on sign-out. The returned function unsubscribes.
	OnAuthStateChange(fn func(*Identity)) func()
}
