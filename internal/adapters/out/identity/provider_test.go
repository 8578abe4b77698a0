package identity_test

import (
	"context"
	"testing"

	"quotation/internal/adapters/out/identity"
	"quotation/internal/core/domain/model/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextProvider(t *testing.T) {
	_, err := identity.ContextProvider{}.Current(context.Background())
	require.ErrorIs(t, err, identity.ErrUnauthenticated)

	id, _ := access.NewIdentity("u-1", "ops@example.com", access.RoleAdmin)
	got, err := identity.ContextProvider{}.Current(access.WithIdentity(context.Background(), id))

	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestStaticProvider(t *testing.T) {
	_, err := identity.StaticProvider{}.Current(context.Background())
	require.ErrorIs(t, err, identity.ErrUnauthenticated)

	id, _ := access.NewIdentity("system", "", access.RoleAdmin)
	got, err := identity.StaticProvider{Identity: id}.Current(context.Background())

	require.NoError(t, err)
	assert.True(t, got.IsAdmin())
}
