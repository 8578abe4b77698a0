package queries

import (
	"context"
	"slices"

	"quotation/internal/core/domain/model/quote"
)

type ListQuotesQueryHandler struct {
	stores RefreshingStoreProvider
}

func NewListQuotesQueryHandler(stores RefreshingStoreProvider) ListQuotesQueryHandler {
	return ListQuotesQueryHandler{stores: stores}
}

// Handle reloads the caller's store from storage, so a listing always shows
// changes made by other sessions, then filters it.
func (h ListQuotesQueryHandler) Handle(ctx context.Context, query ListQuotesQuery) ([]*quote.Quote, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	store, err := h.stores.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	withOwner := store.Owner().IsAdmin()
	search := query.Search()
	statuses := query.Statuses()
	return slices.DeleteFunc(store.Quotes(), func(q *quote.Quote) bool {
		if len(statuses) > 0 && !slices.Contains(statuses, q.Status()) {
			return true
		}
		return !q.Matches(search, withOwner)
	}), nil
}
