package commands

import (
	"context"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/pkg/errs"
)

// VoidQuoteCommandHandler voids quotes through the caller's store.
type VoidQuoteCommandHandler struct {
	stores StoreProvider
}

func NewVoidQuoteCommandHandler(stores StoreProvider) VoidQuoteCommandHandler {
	return VoidQuoteCommandHandler{stores: stores}
}

// Handle returns the voided quote. Voiding an already voided quote fails
// with an errs.ErrValueIsInvalid error and leaves the quote unchanged.
func (h VoidQuoteCommandHandler) Handle(ctx context.Context, command VoidQuoteCommand) (*quote.Quote, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	store, err := h.stores.StoreFor(ctx)
	if err != nil {
		return nil, err
	}

	voided, err := store.Void(ctx, command.QuoteNo(), command.Reason())
	if err != nil {
		return nil, err
	}
	if voided == nil {
		return nil, errs.NewObjectNotFoundError("quoteNo", command.QuoteNo())
	}
	return voided, nil
}
