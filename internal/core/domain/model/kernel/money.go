package kernel

import (
	"github.com/shopspring/decimal"
)

// CurrencyCode is the single currency quotes are issued in.
const CurrencyCode = "AED"

// DisplayPlaces is the number of decimal places used on printed documents.
const DisplayPlaces = 2

// RoundForDisplay rounds v half away from zero to DisplayPlaces decimals.
// Pricing keeps full float precision; only documents and API views round.
func RoundForDisplay(v float64) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(DisplayPlaces).Float64()
	return rounded
}

// FormatCurrency renders v as "AED 1234.50".
func FormatCurrency(v float64) string {
	return CurrencyCode + " " + decimal.NewFromFloat(v).StringFixed(DisplayPlaces)
}

// FormatAmount renders v with DisplayPlaces decimals and no currency code.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(DisplayPlaces)
}
