package quote

import "fmt"

// Category classifies an item for handling.
type Category string

const (
	CategoryUnset     Category = ""
	CategoryGeneral   Category = "General"
	CategoryFragile   Category = "Fragile"
	CategoryIrregular Category = "Irregular/Furniture"
)

// PackageType is the packing requested for an item.
type PackageType string

const (
	PackageUnset   PackageType = ""
	PackageNormal  PackageType = "Normal"
	PackageCrate   PackageType = "Crate"
	PackageSpecial PackageType = "Special"
)

// Item is a shipment line as entered by the surveyor. Dimensions are in cm,
// weights in kg and charges in AED.
type Item struct {
	ID                 int64       `json:"id"`
	ItemNumber         string      `json:"itemNumber"`
	Description        string      `json:"description"`
	Quantity           int         `json:"quantity"`
	Category           Category    `json:"category"`
	PackageType        PackageType `json:"packageType"`
	Length             float64     `json:"length"`
	Breadth            float64     `json:"breadth"`
	Height             float64     `json:"height"`
	ActualWeight       float64     `json:"actualWeight"`
	Value              float64     `json:"value"`
	RatePerKg          float64     `json:"ratePerKg"`
	PackingCharge      float64     `json:"packingCharge"`
	HandlingCharge     float64     `json:"handlingCharge"`
	Duty               float64     `json:"duty"`
	IsSelected         bool        `json:"isSelected"`
	PhotoBeforePacking string      `json:"photoBeforePacking,omitempty"`
	PhotoAfterPacking  string      `json:"photoAfterPacking,omitempty"`
}

// PricedItem is an Item with its derived pricing fields. Values of this type
// are produced by the pricing engine only; derived fields are never edited.
type PricedItem struct {
	Item

	CBM              float64 `json:"cbm"`
	VolumetricWeight float64 `json:"volumetricWeight"`
	BilledWeight     float64 `json:"billedWeight"`
	UnitCost         float64 `json:"unitCost"`
	LineTotal        float64 `json:"lineTotal"`
	RequiresPhoto    bool    `json:"requiresPhoto"`
}

// Totals aggregates the selected priced items of a quote.
// GrandTotal currently equals Subtotal; there is no tax or discount layer.
type Totals struct {
	Subtotal          float64 `json:"subtotal"`
	GrandTotal        float64 `json:"grandTotal"`
	TotalCBM          float64 `json:"totalCBM"`
	TotalBilledWeight float64 `json:"totalBilledWeight"`
	SelectedCount     int     `json:"selectedCount"`
}

// DefaultItem returns the blank item added at position index. The rate is
// seeded from the previous line so surveyors don't retype it.
func DefaultItem(index int, seedRate float64, id int64) Item {
	return Item{
		ID:         id,
		ItemNumber: fmt.Sprintf("Item %d", index+1),
		Quantity:   1,
		RatePerKg:  seedRate,
		IsSelected: true,
	}
}

// NormalizeItems relabels items as "Item i of n" in their current order.
func NormalizeItems(items []Item) []Item {
	normalized := make([]Item, len(items))
	for i, item := range items {
		item.ItemNumber = fmt.Sprintf("Item %d of %d", i+1, len(items))
		normalized[i] = item
	}
	return normalized
}

// Inputs strips the derived fields from priced items.
func Inputs(items []PricedItem) []Item {
	inputs := make([]Item, len(items))
	for i, item := range items {
		inputs[i] = item.Item
	}
	return inputs
}
