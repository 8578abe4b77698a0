package services

import (
	"math"

	"quotation/internal/core/domain/model/quote"
)

const (
	// VolumetricDivisor converts cm³ to volumetric kg.
	VolumetricDivisor = 5000
	cm3PerM3          = 1_000_000
)

// ComputeVolume returns the volume in m³ of an item measured in cm.
// A zero (or NaN) dimension yields 0.
func ComputeVolume(length, breadth, height float64) float64 {
	if !measured(length, breadth, height) {
		return 0
	}
	return length * breadth * height / cm3PerM3
}

// ComputeVolumetricWeight returns the dimensional weight in kg.
// A zero (or NaN) dimension yields 0.
func ComputeVolumetricWeight(length, breadth, height float64) float64 {
	if !measured(length, breadth, height) {
		return 0
	}
	return length * breadth * height / VolumetricDivisor
}

// ComputeBilledWeight returns the greater of actual and volumetric weight.
func ComputeBilledWeight(actual, volumetric float64) float64 {
	if isBlank(actual) && isBlank(volumetric) {
		return 0
	}
	return max(actual, volumetric)
}

// PriceItem derives the pricing fields of item.
//
//	unitCost  = billedWeight*rate + packing + handling + duty
//	lineTotal = unitCost * quantity
func PriceItem(item quote.Item) quote.PricedItem {
	cbm := ComputeVolume(item.Length, item.Breadth, item.Height)
	volumetric := ComputeVolumetricWeight(item.Length, item.Breadth, item.Height)
	billed := ComputeBilledWeight(item.ActualWeight, volumetric)
	unitCost := billed*item.RatePerKg + item.PackingCharge + item.HandlingCharge + item.Duty

	return quote.PricedItem{
		Item:             item,
		CBM:              cbm,
		VolumetricWeight: volumetric,
		BilledWeight:     billed,
		UnitCost:         unitCost,
		LineTotal:        unitCost * float64(item.Quantity),
		RequiresPhoto:    item.Category == quote.CategoryIrregular,
	}
}

// PriceItems prices every item, preserving order.
func PriceItems(items []quote.Item) []quote.PricedItem {
	priced := make([]quote.PricedItem, len(items))
	for i, item := range items {
		priced[i] = PriceItem(item)
	}
	return priced
}

// AggregateTotals folds the selected items into quote totals.
func AggregateTotals(items []quote.PricedItem) quote.Totals {
	var totals quote.Totals
	for _, item := range items {
		if !item.IsSelected {
			continue
		}
		quantity := float64(item.Quantity)
		totals.Subtotal += item.LineTotal
		totals.TotalCBM += item.CBM * quantity
		totals.TotalBilledWeight += item.BilledWeight * quantity
		totals.SelectedCount++
	}
	totals.GrandTotal = totals.Subtotal
	return totals
}

// Enrich prices items and aggregates their totals in one pass.
func Enrich(items []quote.Item) ([]quote.PricedItem, quote.Totals) {
	priced := PriceItems(items)
	return priced, AggregateTotals(priced)
}

// TransitTime is the advertised door to door time for mode.
func TransitTime(mode quote.ModeOfService) string {
	switch mode {
	case quote.ServiceAir:
		return "10-15 Working Days"
	case quote.ServiceSea:
		return "40-45 Working Days"
	default:
		return ""
	}
}

func measured(dims ...float64) bool {
	for _, d := range dims {
		if isBlank(d) {
			return false
		}
	}
	return true
}

func isBlank(v float64) bool {
	return v == 0 || math.IsNaN(v)
}
