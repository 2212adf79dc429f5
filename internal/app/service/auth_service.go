package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
	"github.com/mrops-br/inventory-dashboard-api/internal/pkg/clock"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// AuthGate owns the binary session state that gates catalog access.
// It starts in the loading state until Restore has consulted the
// identity collaborator, then moves between anonymous, authenticating,
// and authenticated. Gate state and catalog state are independent.
type AuthGate struct {
	provider domain.IdentityProvider
	clock    clock.Clock
	tracer   trace.Tracer
	logger   *slog.Logger

	signInCounter metric.Int64Counter

	mu      sync.Mutex
	state   domain.AuthState
	session *domain.Session
	// generation invalidates in-flight credential exchanges: a sign-in
	// result is only committed if no sign-out or newer attempt happened
	// while it was pending.
	generation uint64
}

// NewAuthGate creates a gate in the loading state.
func NewAuthGate(
	provider domain.IdentityProvider,
	clk clock.Clock,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *AuthGate {
	signInCounter, _ := meter.Int64Counter(
		"auth.signin.attempts",
		metric.WithDescription("Total number of sign-in attempts"),
	)

	return &AuthGate{
		provider:      provider,
		clock:         clk,
		tracer:        tracer,
		logger:        logger,
		signInCounter: signInCounter,
		state:         domain.AuthStateLoading,
	}
}

// Restore consults the identity collaborator for a pre-existing session
// and resolves the initial loading state. It is called once at startup.
func (g *AuthGate) Restore(ctx context.Context) {
	ctx, span := g.tracer.Start(ctx, "AuthGate.Restore")
	defer span.End()

	identity, ok, err := g.currentIdentitySafe(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil || !ok {
		g.state = domain.AuthStateAnonymous
		if err != nil {
			span.RecordError(err)
			g.logger.WarnContext(ctx, "Session restoration failed, starting anonymous",
				slog.String("error", err.Error()),
			)
		}
		span.SetStatus(codes.Ok, "No session to restore")
		return
	}

	g.session = g.newSession(identity.Email)
	g.state = domain.AuthStateAuthenticated

	g.logger.InfoContext(ctx, "Session restored",
		slog.String("email", identity.Email),
	)
	span.SetStatus(codes.Ok, "Session restored")
}

// SignIn exchanges credentials with the identity collaborator. On
// success the gate becomes authenticated and holds the new session; on
// failure it returns to anonymous and the reason is surfaced. A result
// arriving after the gate has moved on is discarded.
func (g *AuthGate) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	ctx, span := g.tracer.Start(ctx, "AuthGate.SignIn")
	defer span.End()

	span.SetAttributes(attribute.String("auth.email", email))

	g.mu.Lock()
	g.generation++
	gen := g.generation
	g.state = domain.AuthStateAuthenticating
	g.session = nil
	g.mu.Unlock()

	g.logger.InfoContext(ctx, "Signing in",
		slog.String("email", email),
	)

	identity, err := g.signInSafe(ctx, email, password)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.generation != gen {
		// A sign-out or newer attempt won the race; this response is
		// stale and must not touch gate state.
		span.SetStatus(codes.Error, "Sign-in superseded")
		g.logger.WarnContext(ctx, "Discarding stale sign-in response",
			slog.String("email", email),
		)
		g.recordSignIn(ctx, "superseded")
		return nil, domain.ErrSignInSuperseded
	}

	if err != nil {
		g.state = domain.AuthStateAnonymous
		span.RecordError(err)
		span.SetStatus(codes.Error, "Sign-in failed")
		g.logger.WarnContext(ctx, "Sign-in failed",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		g.recordSignIn(ctx, "failure")
		return nil, err
	}

	g.session = g.newSession(identity.Email)
	g.state = domain.AuthStateAuthenticated

	g.logger.InfoContext(ctx, "Sign-in succeeded",
		slog.String("email", identity.Email),
	)
	g.recordSignIn(ctx, "success")

	span.SetStatus(codes.Ok, "Sign-in succeeded")
	session := *g.session
	return &session, nil
}

// SignOut clears the session and returns the gate to anonymous.
// It succeeds unconditionally; provider-side errors are only logged.
func (g *AuthGate) SignOut(ctx context.Context) {
	ctx, span := g.tracer.Start(ctx, "AuthGate.SignOut")
	defer span.End()

	g.mu.Lock()
	g.generation++
	g.session = nil
	g.state = domain.AuthStateAnonymous
	g.mu.Unlock()

	if err := g.provider.SignOut(ctx); err != nil {
		span.RecordError(err)
		g.logger.WarnContext(ctx, "Identity provider sign-out failed",
			slog.String("error", err.Error()),
		)
	}

	g.logger.InfoContext(ctx, "Signed out")
	span.SetStatus(codes.Ok, "Signed out")
}

// State reports the gate's current state and a copy of the session, if
// one is held.
func (g *AuthGate) State() (domain.AuthState, *domain.Session) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session == nil {
		return g.state, nil
	}
	session := *g.session
	return g.state, &session
}

// Authorize reports whether the given bearer token matches the live
// session. Advisory gating only, not a security boundary.
func (g *AuthGate) Authorize(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state == domain.AuthStateAuthenticated &&
		g.session != nil &&
		token != "" &&
		token == g.session.Token
}

func (g *AuthGate) newSession(email string) *domain.Session {
	return &domain.Session{
		Token:     uuid.New().String(),
		Email:     email,
		CreatedAt: g.clock.Now(),
	}
}

func (g *AuthGate) recordSignIn(ctx context.Context, result string) {
	g.signInCounter.Add(ctx, 1,
		metric.WithAttributes(attribute.String("result", result)),
	)
}

// signInSafe calls the collaborator, converting a panic into a generic
// error so the gate stays usable.
func (g *AuthGate) signInSafe(ctx context.Context, email, password string) (identity *domain.Identity, err error) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.ErrorContext(ctx, "Identity provider panicked during sign-in",
				slog.Any("panic", r),
			)
			identity = nil
			err = domain.ErrIdentityUnavailable
		}
	}()
	return g.provider.SignIn(ctx, email, password)
}

func (g *AuthGate) currentIdentitySafe(ctx context.Context) (identity *domain.Identity, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.ErrorContext(ctx, "Identity provider panicked during restore",
				slog.Any("panic", r),
			)
			identity, ok, err = nil, false, domain.ErrIdentityUnavailable
		}
	}()
	return g.provider.CurrentIdentity(ctx)
}
