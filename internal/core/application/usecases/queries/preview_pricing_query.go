package queries

import (
	"errors"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/pkg/guard"
)

var ErrPreviewPricingQueryIsNotConstructed = errors.New(
	"PreviewPricingQuery must be created via NewPreviewPricingQuery constructor",
)

// PreviewPricingQuery prices items without storing anything. It backs the
// live totals shown while a quote is being edited.
type PreviewPricingQuery struct {
	items []quote.Item
	mode  quote.ModeOfService

	guard guard.ConstructorGuard
}

func NewPreviewPricingQuery(items []quote.Item, mode quote.ModeOfService) PreviewPricingQuery {
	return PreviewPricingQuery{
		items: append([]quote.Item{}, items...),
		mode:  mode,
		guard: guard.NewConstructorGuard(),
	}
}

func (q PreviewPricingQuery) Validate() error {
	return q.guard.Validate(ErrPreviewPricingQueryIsNotConstructed)
}

func (q PreviewPricingQuery) Items() []quote.Item {
	return append([]quote.Item{}, q.items...)
}

func (q PreviewPricingQuery) Mode() quote.ModeOfService {
	return q.mode
}

// PreviewPricingResponse holds unrounded values; adapters round for display.
type PreviewPricingResponse struct {
	Items       []quote.PricedItem
	Totals      quote.Totals
	TransitTime string
}
