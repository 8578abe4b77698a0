package queries_test

import (
	"context"
	"testing"

	"quotation/internal/core/application/usecases/queries"
	"quotation/internal/core/domain/model/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewPricingQueryHandler(t *testing.T) {
	skipped := carton()
	skipped.IsSelected = false
	query := queries.NewPreviewPricingQuery([]quote.Item{carton(), skipped}, quote.ServiceAir)

	response, err := queries.NewPreviewPricingQueryHandler().Handle(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, response.Items, 2)
	assert.Equal(t, "Item 1 of 2", response.Items[0].ItemNumber)
	assert.InDelta(t, 0.006, response.Items[0].CBM, 1e-12)
	assert.InDelta(t, 1.2, response.Items[0].VolumetricWeight, 1e-12)
	assert.InDelta(t, 2.0, response.Items[0].BilledWeight, 1e-12)
	assert.InDelta(t, 60.0, response.Totals.Subtotal, 1e-9)
	assert.Equal(t, 1, response.Totals.SelectedCount)
	assert.Equal(t, "10-15 Working Days", response.TransitTime)
}

func TestPreviewPricingQueryHandler_NoItems(t *testing.T) {
	response, err := queries.NewPreviewPricingQueryHandler().
		Handle(context.Background(), queries.NewPreviewPricingQuery(nil, quote.ServiceUnset))

	require.NoError(t, err)
	assert.Empty(t, response.Items)
	assert.Equal(t, quote.Totals{}, response.Totals)
	assert.Empty(t, response.TransitTime)
}

func TestPreviewPricingQuery_NotConstructed(t *testing.T) {
	_, err := queries.NewPreviewPricingQueryHandler().Handle(context.Background(), queries.PreviewPricingQuery{})

	require.ErrorIs(t, err, queries.ErrPreviewPricingQueryIsNotConstructed)
}
