package http

import (
	"time"

	"quotation/internal/core/domain/model/kernel"
	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/domain/services"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ViolationsResponse is returned with 422 when a quote fails business validation.
type ViolationsResponse struct {
	Code       int                  `json:"code"`
	Message    string               `json:"message"`
	Violations []services.Violation `json:"violations"`
}

type FormRequest struct {
	Name             string   `json:"name"             validate:"max=200"`
	ContactNumber    string   `json:"contactNumber"    validate:"max=40"`
	Email            string   `json:"email"            validate:"max=200"`
	WhatsApp         string   `json:"whatsapp"         validate:"max=40"`
	PickupLocation   string   `json:"pickupLocation"   validate:"max=500"`
	DeliveryLocation string   `json:"deliveryLocation" validate:"max=500"`
	DeliveryCity     string   `json:"deliveryCity"     validate:"max=200"`
	DeliveryCountry  string   `json:"deliveryCountry"  validate:"max=200"`
	ModeOfService    string   `json:"modeOfService"    validate:"omitempty,oneof='Sea Freight' 'Air Freight'"`
	TypeOfGoods      string   `json:"typeOfGoods"      validate:"omitempty,oneof='Personal Goods' 'Commercial'"`
	TransitTime      string   `json:"transitTime"`
	QuoteNo          string   `json:"quoteNo"          validate:"omitempty,startswith=Q-DXB-"`
	Date             string   `json:"date"             validate:"omitempty,datetime=2006-01-02"`
	ValidUntil       string   `json:"validUntil"       validate:"omitempty,datetime=2006-01-02"`
	Surveyor         string   `json:"surveyor"`
	Inclusions       []string `json:"inclusions"       validate:"dive,required"`
	PaymentMethod    string   `json:"paymentMethod"    validate:"omitempty,oneof='Cash' 'Card' 'Bank Transfer' 'Payment Link'"`
	PaymentStatus    string   `json:"paymentStatus"    validate:"omitempty,oneof='Pending' 'Partial' 'Completed'"`
	Notes            string   `json:"notes"`
}

func (f FormRequest) toForm() quote.Form {
	form := quote.Form{
		Name:             f.Name,
		ContactNumber:    f.ContactNumber,
		Email:            f.Email,
		WhatsApp:         f.WhatsApp,
		PickupLocation:   f.PickupLocation,
		DeliveryLocation: f.DeliveryLocation,
		DeliveryCity:     f.DeliveryCity,
		DeliveryCountry:  f.DeliveryCountry,
		ModeOfService:    quote.ModeOfService(f.ModeOfService),
		TypeOfGoods:      quote.GoodsType(f.TypeOfGoods),
		TransitTime:      f.TransitTime,
		QuoteNo:          f.QuoteNo,
		Date:             f.Date,
		ValidUntil:       f.ValidUntil,
		Surveyor:         f.Surveyor,
		Inclusions:       append([]string{}, f.Inclusions...),
		PaymentMethod:    quote.PaymentMethod(f.PaymentMethod),
		PaymentStatus:    quote.PaymentStatus(f.PaymentStatus),
		Notes:            f.Notes,
	}
	if form.DeliveryCountry == "" {
		form.DeliveryCountry = quote.DefaultCountry
	}
	if form.PaymentStatus == "" {
		form.PaymentStatus = quote.PaymentPending
	}
	return form
}

// ItemRequest carries the editable fields of an item. Quantity and rate are
// left to business validation so that their errors come back as violations.
type ItemRequest struct {
	ID                 int64   `json:"id"`
	Description        string  `json:"description"        validate:"max=500"`
	Quantity           int     `json:"quantity"`
	Category           string  `json:"category"           validate:"omitempty,oneof=General Fragile Irregular/Furniture"`
	PackageType        string  `json:"packageType"        validate:"omitempty,oneof=Normal Crate Special"`
	Length             float64 `json:"length"             validate:"gte=0"`
	Breadth            float64 `json:"breadth"            validate:"gte=0"`
	Height             float64 `json:"height"             validate:"gte=0"`
	ActualWeight       float64 `json:"actualWeight"       validate:"gte=0"`
	Value              float64 `json:"value"              validate:"gte=0"`
	RatePerKg          float64 `json:"ratePerKg"`
	PackingCharge      float64 `json:"packingCharge"      validate:"gte=0"`
	HandlingCharge     float64 `json:"handlingCharge"     validate:"gte=0"`
	Duty               float64 `json:"duty"               validate:"gte=0"`
	IsSelected         *bool   `json:"isSelected"`
	PhotoBeforePacking string  `json:"photoBeforePacking"`
	PhotoAfterPacking  string  `json:"photoAfterPacking"`
}

func toItems(requests []ItemRequest, now time.Time) []quote.Item {
	items := make([]quote.Item, len(requests))
	for i, r := range requests {
		id := r.ID
		if id == 0 {
			id = now.UnixMilli() + int64(i)
		}
		selected := true
		if r.IsSelected != nil {
			selected = *r.IsSelected
		}
		items[i] = quote.Item{
			ID:                 id,
			Description:        r.Description,
			Quantity:           r.Quantity,
			Category:           quote.Category(r.Category),
			PackageType:        quote.PackageType(r.PackageType),
			Length:             r.Length,
			Breadth:            r.Breadth,
			Height:             r.Height,
			ActualWeight:       r.ActualWeight,
			Value:              r.Value,
			RatePerKg:          r.RatePerKg,
			PackingCharge:      r.PackingCharge,
			HandlingCharge:     r.HandlingCharge,
			Duty:               r.Duty,
			IsSelected:         selected,
			PhotoBeforePacking: r.PhotoBeforePacking,
			PhotoAfterPacking:  r.PhotoAfterPacking,
		}
	}
	return items
}

type PreviewRequest struct {
	ModeOfService string        `json:"modeOfService" validate:"omitempty,oneof='Sea Freight' 'Air Freight'"`
	Items         []ItemRequest `json:"items"         validate:"dive"`
}

type PreviewResponse struct {
	Items       []PricedItemResponse `json:"items"`
	Totals      TotalsResponse       `json:"totals"`
	TransitTime string               `json:"transitTime"`
}

// SaveQuoteRequest creates a quote, or re-saves one when formData.quoteNo is set.
type SaveQuoteRequest struct {
	Status   string        `json:"status"   validate:"omitempty,oneof=Draft Active"`
	FormData FormRequest   `json:"formData"`
	Items    []ItemRequest `json:"items"    validate:"dive"`
}

// UpdateQuoteRequest is a partial update; absent fields are kept.
type UpdateQuoteRequest struct {
	Status     *string       `json:"status"     validate:"omitempty,oneof=Draft Active Converted Expired Voided"`
	VoidReason *string       `json:"voidReason" validate:"omitempty,max=1000"`
	FormData   *FormRequest  `json:"formData"`
	Items      []ItemRequest `json:"items"      validate:"omitempty,dive"`
}

type VoidQuoteRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

type QuoteNumberResponse struct {
	QuoteNo string `json:"quoteNo"`
}

type PricedItemResponse struct {
	quote.Item

	CBM              float64 `json:"cbm"`
	VolumetricWeight float64 `json:"volumetricWeight"`
	BilledWeight     float64 `json:"billedWeight"`
	UnitCost         float64 `json:"unitCost"`
	LineTotal        float64 `json:"lineTotal"`
	RequiresPhoto    bool    `json:"requiresPhoto"`
}

type TotalsResponse struct {
	Subtotal          float64 `json:"subtotal"`
	GrandTotal        float64 `json:"grandTotal"`
	TotalCBM          float64 `json:"totalCBM"`
	TotalBilledWeight float64 `json:"totalBilledWeight"`
	SelectedCount     int     `json:"selectedCount"`
}

type QuoteResponse struct {
	ID         string               `json:"id,omitempty"`
	QuoteNo    string               `json:"quoteNo"`
	Date       string               `json:"date"`
	ValidUntil string               `json:"validUntil"`
	Status     string               `json:"status"`
	VoidReason string               `json:"voidReason,omitempty"`
	OwnerLabel string               `json:"ownerLabel,omitempty"`
	FormData   quote.Form           `json:"formData"`
	Items      []PricedItemResponse `json:"items"`
	Totals     TotalsResponse       `json:"totals"`
	CreatedAt  *time.Time           `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time           `json:"updatedAt,omitempty"`
}

type SummaryResponse struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

func toPricedItemResponses(items []quote.PricedItem) []PricedItemResponse {
	responses := make([]PricedItemResponse, len(items))
	for i, item := range items {
		responses[i] = PricedItemResponse{
			Item:             item.Item,
			CBM:              kernel.RoundForDisplay(item.CBM),
			VolumetricWeight: kernel.RoundForDisplay(item.VolumetricWeight),
			BilledWeight:     kernel.RoundForDisplay(item.BilledWeight),
			UnitCost:         kernel.RoundForDisplay(item.UnitCost),
			LineTotal:        kernel.RoundForDisplay(item.LineTotal),
			RequiresPhoto:    item.RequiresPhoto,
		}
	}
	return responses
}

func toTotalsResponse(t quote.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:          kernel.RoundForDisplay(t.Subtotal),
		GrandTotal:        kernel.RoundForDisplay(t.GrandTotal),
		TotalCBM:          kernel.RoundForDisplay(t.TotalCBM),
		TotalBilledWeight: kernel.RoundForDisplay(t.TotalBilledWeight),
		SelectedCount:     t.SelectedCount,
	}
}

func toQuoteResponse(q *quote.Quote) QuoteResponse {
	meta := q.Meta()
	response := QuoteResponse{
		QuoteNo:    q.Number(),
		Date:       q.Date(),
		ValidUntil: q.ValidUntil(),
		Status:     q.Status().String(),
		VoidReason: q.VoidReason(),
		OwnerLabel: q.Owner().Label,
		FormData:   q.Form(),
		Items:      toPricedItemResponses(q.Items()),
		Totals:     toTotalsResponse(q.Totals()),
	}
	if !meta.RecordID.IsZero() {
		response.ID = meta.RecordID.String()
	}
	if !meta.CreatedAt.IsZero() {
		response.CreatedAt = &meta.CreatedAt
	}
	if !meta.UpdatedAt.IsZero() {
		response.UpdatedAt = &meta.UpdatedAt
	}
	return response
}
