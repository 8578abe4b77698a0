package commands

import (
	"context"
	"errors"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/domain/services"
	"quotation/internal/pkg/errs"
)

var errQuoteIncomplete = errors.New("quote is incomplete")

// UpdateQuoteResult holds either the updated quote or the reasons an Active
// quote was rejected.
type UpdateQuoteResult struct {
	Quote      *quote.Quote
	Violations []services.Violation
}

// UpdateQuoteCommandHandler merges partial changes into stored quotes.
type UpdateQuoteCommandHandler struct {
	stores StoreProvider
}

func NewUpdateQuoteCommandHandler(stores StoreProvider) UpdateQuoteCommandHandler {
	return UpdateQuoteCommandHandler{stores: stores}
}

// Handle returns the updated quote, or an errs.ObjectNotFoundError when the
// caller cannot see a quote with that number. A merge that leaves the quote
// Active is validated like a save; violations come back in the result and
// nothing is stored.
func (h UpdateQuoteCommandHandler) Handle(ctx context.Context, command UpdateQuoteCommand) (UpdateQuoteResult, error) {
	if err := command.Validate(); err != nil {
		return UpdateQuoteResult{}, err
	}

	store, err := h.stores.StoreFor(ctx)
	if err != nil {
		return UpdateQuoteResult{}, err
	}

	update := quote.Update{
		Status:     command.Status(),
		VoidReason: command.VoidReason(),
		Form:       command.Form(),
	}
	if items := command.Items(); items != nil {
		priced, totals := services.Enrich(quote.NormalizeItems(items))
		update.Items = priced
		update.Totals = &totals
	}

	var violations []services.Violation
	updated, err := store.UpdateChecked(ctx, command.QuoteNo(), update, func(merged *quote.Quote) error {
		if merged.Status() != quote.Active {
			return nil
		}
		violations = services.Validate(merged.Form(), quote.Inputs(merged.Items()))
		if len(violations) > 0 {
			return errQuoteIncomplete
		}
		return nil
	})
	if errors.Is(err, errQuoteIncomplete) {
		return UpdateQuoteResult{Violations: violations}, nil
	}
	if err != nil {
		return UpdateQuoteResult{}, err
	}
	if updated == nil {
		return UpdateQuoteResult{}, errs.NewObjectNotFoundError("quoteNo", command.QuoteNo())
	}
	return UpdateQuoteResult{Quote: updated}, nil
}
