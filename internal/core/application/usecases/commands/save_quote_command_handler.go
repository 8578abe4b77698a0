package commands

import (
	"context"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/domain/services"
)

// SaveQuoteResult holds either the stored quote or the reasons it was not stored.
type SaveQuoteResult struct {
	Quote      *quote.Quote
	Violations []services.Violation
}

// SaveQuoteCommandHandler prices, validates and persists quotes.
type SaveQuoteCommandHandler struct {
	stores StoreProvider
}

func NewSaveQuoteCommandHandler(stores StoreProvider) SaveQuoteCommandHandler {
	return SaveQuoteCommandHandler{stores: stores}
}

// Handle persists the quote. Validation failures are reported in the result,
// not as an error; nothing is stored in that case.
func (h SaveQuoteCommandHandler) Handle(ctx context.Context, command SaveQuoteCommand) (SaveQuoteResult, error) {
	if err := command.Validate(); err != nil {
		return SaveQuoteResult{}, err
	}

	if command.Status() == quote.Active {
		if violations := services.Validate(command.Form(), command.Items()); len(violations) > 0 {
			return SaveQuoteResult{Violations: violations}, nil
		}
	}

	store, err := h.stores.StoreFor(ctx)
	if err != nil {
		return SaveQuoteResult{}, err
	}

	draft, err := store.NewDraft(command.Form(), command.Items())
	if err != nil {
		return SaveQuoteResult{}, err
	}

	status := command.Status()
	saved, err := store.Persist(ctx, draft, &status)
	if err != nil {
		return SaveQuoteResult{}, err
	}

	return SaveQuoteResult{Quote: saved}, nil
}
