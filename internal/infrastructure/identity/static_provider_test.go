package identity

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
)

func newTestProvider(restoreEmail string) *StaticProvider {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStaticProvider("admin@example.com", "admin123", restoreEmail, logger)
}

func TestSignIn_AcceptsConfiguredCredentials(t *testing.T) {
	p := newTestProvider("")

	identity, err := p.SignIn(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", identity.Email)
}

func TestSignIn_RejectsBadCredentials(t *testing.T) {
	p := newTestProvider("")
	ctx := context.Background()

	_, err := p.SignIn(ctx, "admin@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = p.SignIn(ctx, "other@example.com", "admin123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestCurrentIdentity(t *testing.T) {
	ctx := context.Background()

	_, ok, err := newTestProvider("").CurrentIdentity(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	identity, ok, err := newTestProvider("admin@example.com").CurrentIdentity(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", identity.Email)
}
