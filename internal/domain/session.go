package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// ErrSignInSuperseded reports a credential exchange whose result
	// arrived after the gate had already moved on; the result is
	// discarded without touching gate state.
	ErrSignInSuperseded = errors.New("sign-in superseded")

	// ErrIdentityUnavailable wraps unexpected identity collaborator
	// failures behind a generic, user-safe message.
	ErrIdentityUnavailable = errors.New("identity service unavailable")
)

// AuthState is the auth gate's position in its lifecycle.
type AuthState int

const (
	// AuthStateLoading covers process start until session restoration
	// has completed.
	AuthStateLoading AuthState = iota
	AuthStateAnonymous
	AuthStateAuthenticating
	AuthStateAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthStateLoading:
		return "loading"
	case AuthStateAnonymous:
		return "anonymous"
	case AuthStateAuthenticating:
		return "authenticating"
	case AuthStateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Identity is what the external identity collaborator vouches for.
type Identity struct {
	Email string
}

// Session is the authenticated identity held by the auth gate, valid
// until explicit sign-out or process restart.
type Session struct {
	Token     string
	Email     string
	CreatedAt time.Time
}

// IdentityProvider is the external identity collaborator. The gate
// never validates credentials itself.
type IdentityProvider interface {
	// SignIn exchanges credentials for an identity, or fails with
	// ErrInvalidCredentials.
	SignIn(ctx context.Context, email, password string) (*Identity, error)

	// SignOut tears down the provider-side session. Never fails in a
	// way the gate cares about.
	SignOut(ctx context.Context) error

	// CurrentIdentity reports a pre-existing session at startup, so the
	// gate can restore state without a fresh credential prompt.
	CurrentIdentity(ctx context.Context) (*Identity, bool, error)
}
