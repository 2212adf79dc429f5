package identity

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
)

// StaticProvider is a single-tenant identity collaborator backed by one
// configured credential pair. It stands in for a real identity service;
// the auth gate only ever talks to the domain.IdentityProvider contract.
type StaticProvider struct {
	email        string
	password     string
	restoreEmail string
	logger       *slog.Logger
}

// NewStaticProvider creates a provider that accepts exactly the given
// credentials. restoreEmail, when non-empty, simulates a pre-existing
// session reported by CurrentIdentity at startup.
func NewStaticProvider(email, password, restoreEmail string, logger *slog.Logger) *StaticProvider {
	return &StaticProvider{
		email:        email,
		password:     password,
		restoreEmail: restoreEmail,
		logger:       logger,
	}
}

// SignIn validates the credentials against the configured pair.
func (p *StaticProvider) SignIn(ctx context.Context, email, password string) (*domain.Identity, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(p.email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(p.password)) == 1
	if !emailOK || !passOK {
		p.logger.WarnContext(ctx, "Sign-in rejected",
			slog.String("email", email),
		)
		return nil, domain.ErrInvalidCredentials
	}

	p.logger.InfoContext(ctx, "Sign-in accepted",
		slog.String("email", email),
	)
	return &domain.Identity{Email: email}, nil
}

// SignOut has nothing provider-side to tear down.
func (p *StaticProvider) SignOut(ctx context.Context) error {
	return nil
}

// CurrentIdentity reports the configured restore session, if any.
func (p *StaticProvider) CurrentIdentity(ctx context.Context) (*domain.Identity, bool, error) {
	if p.restoreEmail == "" {
		return nil, false, nil
	}
	return &domain.Identity{Email: p.restoreEmail}, true, nil
}
