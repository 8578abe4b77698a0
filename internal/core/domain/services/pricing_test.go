package services_test

import (
	"math"
	"testing"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func scenarioItem() quote.Item {
	return quote.Item{
		ID:             1,
		Description:    "Carton",
		Quantity:       2,
		Length:         10,
		Breadth:        20,
		Height:         30,
		ActualWeight:   2,
		RatePerKg:      10,
		PackingCharge:  5,
		HandlingCharge: 5,
		IsSelected:     true,
	}
}

func TestComputeVolume(t *testing.T) {
	assert.InDelta(t, 0.006, services.ComputeVolume(10, 20, 30), 1e-12)
	assert.Zero(t, services.ComputeVolume(0, 20, 30))
	assert.Zero(t, services.ComputeVolume(10, 0, 30))
	assert.Zero(t, services.ComputeVolume(10, 20, math.NaN()))
}

func TestComputeVolumetricWeight(t *testing.T) {
	assert.InDelta(t, 1.2, services.ComputeVolumetricWeight(10, 20, 30), 1e-12)
	assert.Zero(t, services.ComputeVolumetricWeight(10, 20, 0))
}

func TestComputeBilledWeight(t *testing.T) {
	tests := []struct {
		name               string
		actual, volumetric float64
		want               float64
	}{
		{"both zero", 0, 0, 0},
		{"actual wins", 2, 1.2, 2},
		{"volumetric wins", 1, 4.5, 4.5},
		{"only volumetric", 0, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ComputeBilledWeight(tt.actual, tt.volumetric)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, tt.actual)
			assert.GreaterOrEqual(t, got, tt.volumetric)
		})
	}
}

func TestPriceItem(t *testing.T) {
	t.Run("should price the reference carton", func(t *testing.T) {
		p := services.PriceItem(scenarioItem())

		assert.InDelta(t, 0.006, p.CBM, 1e-12)
		assert.InDelta(t, 1.2, p.VolumetricWeight, 1e-12)
		assert.InDelta(t, 2, p.BilledWeight, 1e-12)
		assert.InDelta(t, 30, p.UnitCost, 1e-9)
		assert.InDelta(t, 60, p.LineTotal, 1e-9)
		assert.False(t, p.RequiresPhoto)
		assert.Equal(t, "Carton", p.Description)
	})

	t.Run("should flag irregular items for photos", func(t *testing.T) {
		item := scenarioItem()
		item.Category = quote.CategoryIrregular

		assert.True(t, services.PriceItem(item).RequiresPhoto)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		once := services.PriceItem(scenarioItem())
		twice := services.PriceItem(once.Item)

		assert.Equal(t, once, twice)
	})
}

func TestPriceItems(t *testing.T) {
	first := scenarioItem()
	second := scenarioItem()
	second.ID = 2
	second.Quantity = 1

	priced := services.PriceItems([]quote.Item{first, second})

	assert.Len(t, priced, 2)
	assert.Equal(t, int64(1), priced[0].ID)
	assert.Equal(t, int64(2), priced[1].ID)
	assert.InDelta(t, 30, priced[1].LineTotal, 1e-9)
}

func TestAggregateTotals(t *testing.T) {
	t.Run("should be zero for no items", func(t *testing.T) {
		assert.Equal(t, quote.Totals{}, services.AggregateTotals(nil))
	})

	t.Run("should only fold selected items", func(t *testing.T) {
		unselected := scenarioItem()
		unselected.IsSelected = false
		priced := services.PriceItems([]quote.Item{scenarioItem(), unselected})

		totals := services.AggregateTotals(priced)

		assert.InDelta(t, 60, totals.Subtotal, 1e-9)
		assert.InDelta(t, totals.Subtotal, totals.GrandTotal, 0)
		assert.InDelta(t, 0.012, totals.TotalCBM, 1e-12)
		assert.InDelta(t, 4, totals.TotalBilledWeight, 1e-12)
		assert.Equal(t, 1, totals.SelectedCount)
	})
}

func TestEnrich(t *testing.T) {
	priced, totals := services.Enrich([]quote.Item{scenarioItem()})

	assert.Len(t, priced, 1)
	assert.InDelta(t, 60, totals.GrandTotal, 1e-9)
}

func TestTransitTime(t *testing.T) {
	assert.Equal(t, "10-15 Working Days", services.TransitTime(quote.ServiceAir))
	assert.Equal(t, "40-45 Working Days", services.TransitTime(quote.ServiceSea))
	assert.Empty(t, services.TransitTime(quote.ServiceUnset))
}
