package commands

import "context"

// ReserveQuoteNumberCommandHandler advances the shared counter.
type ReserveQuoteNumberCommandHandler struct {
	stores StoreProvider
}

func NewReserveQuoteNumberCommandHandler(stores StoreProvider) ReserveQuoteNumberCommandHandler {
	return ReserveQuoteNumberCommandHandler{stores: stores}
}

// Handle returns a quote number no other caller will receive.
func (h ReserveQuoteNumberCommandHandler) Handle(ctx context.Context, command ReserveQuoteNumberCommand) (string, error) {
	if err := command.Validate(); err != nil {
		return "", err
	}

	store, err := h.stores.StoreFor(ctx)
	if err != nil {
		return "", err
	}
	return store.NextQuoteNumber(), nil
}
