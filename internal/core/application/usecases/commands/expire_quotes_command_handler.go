package commands

import (
	"context"
)

// ExpireQuotesCommandHandler reloads the caller's store and expires overdue
// quotes. It is meant to run with an administrator identity.
type ExpireQuotesCommandHandler struct {
	stores RefreshingStoreProvider
}

func NewExpireQuotesCommandHandler(stores RefreshingStoreProvider) ExpireQuotesCommandHandler {
	return ExpireQuotesCommandHandler{stores: stores}
}

// Handle returns the numbers of the quotes that were expired.
func (h ExpireQuotesCommandHandler) Handle(ctx context.Context, command ExpireQuotesCommand) ([]string, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	store, err := h.stores.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return store.ExpireOverdue(ctx, command.At())
}
