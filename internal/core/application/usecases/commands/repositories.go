// Package commands contains the operations that change quote state.
// Every command is built through its constructor and checked by its handler
// before any store is touched.
package commands

import (
	"context"

	"quotation/internal/core/application/lifecycle"
)

// StoreProvider hands out the lifecycle store of the caller in ctx.
// lifecycle.Sessions is the production implementation.
type StoreProvider interface {
	StoreFor(ctx context.Context) (*lifecycle.Store, error)
}

// RefreshingStoreProvider can also reload the caller's store from storage.
type RefreshingStoreProvider interface {
	StoreProvider
	Refresh(ctx context.Context) (*lifecycle.Store, error)
}
