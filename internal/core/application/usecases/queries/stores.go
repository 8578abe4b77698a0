// Package queries contains the read side of the quotation service: quote
// listings, pricing previews, printable documents and status summaries.
// Queries never change state.
package queries

import (
	"context"

	"quotation/internal/core/application/lifecycle"
)

// StoreProvider hands out the lifecycle store of the caller in ctx.
type StoreProvider interface {
	StoreFor(ctx context.Context) (*lifecycle.Store, error)
}

// RefreshingStoreProvider can also reload the caller's store from storage.
type RefreshingStoreProvider interface {
	StoreProvider
	Refresh(ctx context.Context) (*lifecycle.Store, error)
}
