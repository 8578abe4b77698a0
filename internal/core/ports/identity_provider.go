package ports

import (
	"context"

	"quotation/internal/core/domain/model/access"
)

// IdentityProvider resolves the caller of an operation.
type IdentityProvider interface {
	// Current returns the authenticated caller or an error when there is none.
	Current(ctx context.Context) (access.Identity, error)
}
