// Package identity resolves the caller of a core operation.
package identity

import (
	"context"
	"errors"

	"quotation/internal/core/domain/model/access"
	"quotation/internal/core/ports"
)

// ErrUnauthenticated is returned when the context carries no identity.
var ErrUnauthenticated = errors.New("no authenticated identity")

var (
	_ ports.IdentityProvider = ContextProvider{}
	_ ports.IdentityProvider = StaticProvider{}
)

// ContextProvider reads the identity placed in the request context by the
// inbound adapter.
type ContextProvider struct{}

func (ContextProvider) Current(ctx context.Context) (access.Identity, error) {
	id, ok := access.FromContext(ctx)
	if !ok {
		return access.Identity{}, ErrUnauthenticated
	}
	return id, nil
}

// StaticProvider always answers with the same identity. Background jobs use
// it to act as the system administrator.
type StaticProvider struct {
	Identity access.Identity
}

func (p StaticProvider) Current(context.Context) (access.Identity, error) {
	if p.Identity.UserID == "" {
		return access.Identity{}, ErrUnauthenticated
	}
	return p.Identity, nil
}
