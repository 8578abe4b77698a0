package queries

import (
	"context"

	"quotation/internal/core/domain/services"
	"quotation/internal/pkg/errs"
)

type GetQuoteDocumentQueryHandler struct {
	stores StoreProvider
}

func NewGetQuoteDocumentQueryHandler(stores StoreProvider) GetQuoteDocumentQueryHandler {
	return GetQuoteDocumentQueryHandler{stores: stores}
}

// Handle returns an errs.ObjectNotFoundError when the caller cannot see the quote.
func (h GetQuoteDocumentQueryHandler) Handle(ctx context.Context, query GetQuoteDocumentQuery) (services.Document, error) {
	if err := query.Validate(); err != nil {
		return services.Document{}, err
	}

	store, err := h.stores.StoreFor(ctx)
	if err != nil {
		return services.Document{}, err
	}

	q, ok := store.Find(query.QuoteNo())
	if !ok {
		return services.Document{}, errs.NewObjectNotFoundError("quoteNo", query.QuoteNo())
	}
	return services.BuildDocument(q)
}
