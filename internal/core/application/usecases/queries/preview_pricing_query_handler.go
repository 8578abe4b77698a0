package queries

import (
	"context"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/domain/services"
)

type PreviewPricingQueryHandler struct{}

func NewPreviewPricingQueryHandler() PreviewPricingQueryHandler {
	return PreviewPricingQueryHandler{}
}

func (h PreviewPricingQueryHandler) Handle(_ context.Context, query PreviewPricingQuery) (PreviewPricingResponse, error) {
	if err := query.Validate(); err != nil {
		return PreviewPricingResponse{}, err
	}

	items, totals := services.Enrich(quote.NormalizeItems(query.Items()))
	return PreviewPricingResponse{
		Items:       items,
		Totals:      totals,
		TransitTime: services.TransitTime(query.Mode()),
	}, nil
}
