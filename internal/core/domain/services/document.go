package services

import (
	"fmt"
	"strings"

	"quotation/internal/core/domain/model/kernel"
	"quotation/internal/core/domain/model/quote"
)

// TermsAndConditions are printed at the end of every quote document.
var TermsAndConditions = []string{
	"The charges specified include expenses up to the designated destination.",
	"No physical presence of the consignee with the original passport is mandated for clearance at the port of destination.",
	"Payment should be made in full (100%) in advance or at the time of invoicing. An initial payment of 20% of the quoted amount is required prior to the commencement of packing.",
	"Any variation in the volume or actual weight of the cargo after packing will result in an adjustment to the quoted amount.",
	"Custom duties will apply to electronics, brand-new furniture, and other expensive items based on the item's cost/invoice value. Any unforeseen duties incurred shall be borne by the customer.",
	"Both the actual weight and volumetric weight will be recorded upon collection. The greater of these two weights is considered as the chargeable weight on the invoice.",
	"For oversized cargo exceeding standard dimensions, additional handling charges may apply.",
	"Basic insurance is included in the quote for up to AED 20/kg. For valuable items or comprehensive/full insurance coverage, customer is recommended to obtain 3rd party insurance.",
	"Fragile items are shipped under the customer responsibility. Wooden box packaging is recommended for fragile cargo to ensure its safety during transit. Customer is recommended adhering to industry standards for packaging. Failure to meet packaging requirements may impact the safety and handling of your shipment.",
	"Delivery times quoted are tentative and vary based on the destination. Delivery time may change depending upon clearance procedures.",
	"ST Courier will not be liable or responsible for loss, damage, or delay caused by events beyond our control, such as delays in customs clearance procedures or those of other regulatory agencies or of natural calamity.",
	"To cancel a shipment, please notify us at least 48 hours before the scheduled departure. A cancellation fee of 10% of the total invoice value, plus packing and documentation charges, will be applicable. Return delivery charges are extra.",
	"If the shipment is rejected or returned for any reason, applicable penalties shall be borne by the customer.",
	"Complaints or damage claims will not be accepted after 48 hours of accepted delivery. If eligible, the maximum compensation amount is limited to AED 20 per kg.",
	"ST Courier will not be liable for goods seized by customs authorities due to violations of import/export regulations. Customers are responsible for complying with all relevant laws and regulations.",
	"Certain goods are prohibited for shipment, including hazardous materials, illegal substances, and items restricted by international regulations. ST Courier reserves the right to refuse shipment of prohibited goods.",
	"The provided quotation is valid for a period of 2 weeks from the current date. ST Courier reserves the right to withdraw the quotation.",
}

// Document is the printable view of a quote. Numbers are rounded to two
// decimals; layout is left to the renderer.
type Document struct {
	QuoteNo     string         `json:"quoteNo"`
	Date        string         `json:"date"`
	ValidUntil  string         `json:"validUntil"`
	Status      string         `json:"status"`
	VoidReason  string         `json:"voidReason,omitempty"`
	BillTo      []string       `json:"billTo"`
	Shipment    []string       `json:"shipment"`
	TransitTime string         `json:"transitTime,omitempty"`
	Inclusions  []string       `json:"inclusions"`
	Items       []DocumentLine `json:"items"`
	Totals      DocumentTotals `json:"totals"`
	Notes       string         `json:"notes,omitempty"`
	Terms       []string       `json:"terms"`
}

// DocumentLine is one row of the items table.
type DocumentLine struct {
	ItemNumber       string  `json:"itemNumber"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	PackageType      string  `json:"packageType"`
	Dimensions       string  `json:"dimensions"`
	Quantity         int     `json:"quantity"`
	CBM              float64 `json:"cbm"`
	ActualWeight     float64 `json:"actualWeight"`
	VolumetricWeight float64 `json:"volumetricWeight"`
	BilledWeight     float64 `json:"billedWeight"`
	Value            float64 `json:"value"`
	RatePerKg        float64 `json:"ratePerKg"`
	PackingCharge    float64 `json:"packingCharge"`
	HandlingCharge   float64 `json:"handlingCharge"`
	Duty             float64 `json:"duty"`
	UnitCost         float64 `json:"unitCost"`
	LineTotal        float64 `json:"lineTotal"`
	RequiresPhoto    bool    `json:"requiresPhoto"`
	Selected         bool    `json:"selected"`
}

type DocumentTotals struct {
	Subtotal          float64 `json:"subtotal"`
	GrandTotal        float64 `json:"grandTotal"`
	TotalCBM          float64 `json:"totalCBM"`
	TotalBilledWeight float64 `json:"totalBilledWeight"`
	SelectedCount     int     `json:"selectedCount"`
	SubtotalText      string  `json:"subtotalText"`
	GrandTotalText    string  `json:"grandTotalText"`
}

// BuildDocument renders q as a Document. Every item is listed, selected or not.
func BuildDocument(q *quote.Quote) (Document, error) {
	if err := q.Validate(); err != nil {
		return Document{}, err
	}

	form := q.Form()
	transit := form.TransitTime
	if transit == "" {
		transit = TransitTime(form.ModeOfService)
	}

	shipment := []string{
		"Service: " + string(form.ModeOfService),
		"Goods: " + string(form.TypeOfGoods),
		fmt.Sprintf("Destination: %s, %s, %s", form.DeliveryLocation, form.DeliveryCity, form.DeliveryCountry),
	}
	if transit != "" {
		shipment = append(shipment, "Transit Time: "+transit)
	}

	var billTo []string
	for _, line := range []string{form.Name, form.ContactNumber, form.Email, "Pickup: " + form.PickupLocation} {
		if strings.TrimSpace(line) != "" {
			billTo = append(billTo, line)
		}
	}

	items := q.Items()
	lines := make([]DocumentLine, len(items))
	for i, item := range items {
		lines[i] = DocumentLine{
			ItemNumber:       item.ItemNumber,
			Description:      item.Description,
			Category:         string(item.Category),
			PackageType:      string(item.PackageType),
			Dimensions:       fmt.Sprintf("%gx%gx%g cm", item.Length, item.Breadth, item.Height),
			Quantity:         item.Quantity,
			CBM:              kernel.RoundForDisplay(item.CBM),
			ActualWeight:     kernel.RoundForDisplay(item.ActualWeight),
			VolumetricWeight: kernel.RoundForDisplay(item.VolumetricWeight),
			BilledWeight:     kernel.RoundForDisplay(item.BilledWeight),
			Value:            kernel.RoundForDisplay(item.Value),
			RatePerKg:        kernel.RoundForDisplay(item.RatePerKg),
			PackingCharge:    kernel.RoundForDisplay(item.PackingCharge),
			HandlingCharge:   kernel.RoundForDisplay(item.HandlingCharge),
			Duty:             kernel.RoundForDisplay(item.Duty),
			UnitCost:         kernel.RoundForDisplay(item.UnitCost),
			LineTotal:        kernel.RoundForDisplay(item.LineTotal),
			RequiresPhoto:    item.RequiresPhoto,
			Selected:         item.IsSelected,
		}
	}

	totals := q.Totals()
	return Document{
		QuoteNo:     q.Number(),
		Date:        q.Date(),
		ValidUntil:  q.ValidUntil(),
		Status:      q.Status().String(),
		VoidReason:  q.VoidReason(),
		BillTo:      billTo,
		Shipment:    shipment,
		TransitTime: transit,
		Inclusions:  form.Inclusions,
		Items:       lines,
		Totals: DocumentTotals{
			Subtotal:          kernel.RoundForDisplay(totals.Subtotal),
			GrandTotal:        kernel.RoundForDisplay(totals.GrandTotal),
			TotalCBM:          kernel.RoundForDisplay(totals.TotalCBM),
			TotalBilledWeight: kernel.RoundForDisplay(totals.TotalBilledWeight),
			SelectedCount:     totals.SelectedCount,
			SubtotalText:      kernel.FormatCurrency(totals.Subtotal),
			GrandTotalText:    kernel.FormatCurrency(totals.GrandTotal),
		},
		Notes: form.Notes,
		Terms: append([]string{}, TermsAndConditions...),
	}, nil
}
