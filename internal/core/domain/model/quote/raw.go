package quote

import "time"

// RawQuote is the loosely-typed shape quotes are stored in. Every field may be
// missing (nil) in records written by older versions of the application.
// A RawQuote is never used as a Quote directly; it is normalised first.
type RawQuote struct {
	QuoteNo    *string    `json:"quoteNo,omitempty"`
	Date       *string    `json:"date,omitempty"`
	ValidUntil *string    `json:"validUntil,omitempty"`
	FormData   *RawForm   `json:"formData,omitempty"`
	Items      []RawItem  `json:"items,omitempty"`
	Totals     *Totals    `json:"totals,omitempty"`
	Status     *string    `json:"status,omitempty"`
	VoidReason *string    `json:"voidReason,omitempty"`
	ID         *string    `json:"id,omitempty"`
	UserID     *string    `json:"userId,omitempty"`
	OwnerEmail *string    `json:"ownerEmail,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// RawForm is the stored form snapshot with optional fields.
type RawForm struct {
	Name             *string  `json:"name,omitempty"`
	ContactNumber    *string  `json:"contactNumber,omitempty"`
	Email            *string  `json:"email,omitempty"`
	WhatsApp         *string  `json:"whatsapp,omitempty"`
	PickupLocation   *string  `json:"pickupLocation,omitempty"`
	DeliveryLocation *string  `json:"deliveryLocation,omitempty"`
	DeliveryCity     *string  `json:"deliveryCity,omitempty"`
	DeliveryCountry  *string  `json:"deliveryCountry,omitempty"`
	ModeOfService    *string  `json:"modeOfService,omitempty"`
	TypeOfGoods      *string  `json:"typeOfGoods,omitempty"`
	TransitTime      *string  `json:"transitTime,omitempty"`
	QuoteNo          *string  `json:"quoteNo,omitempty"`
	Date             *string  `json:"date,omitempty"`
	ValidUntil       *string  `json:"validUntil,omitempty"`
	Surveyor         *string  `json:"surveyor,omitempty"`
	Inclusions       []string `json:"inclusions,omitempty"`
	PaymentMethod    *string  `json:"paymentMethod,omitempty"`
	PaymentStatus    *string  `json:"paymentStatus,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// RawItem is a stored item. Derived pricing fields are decoded but ignored.
type RawItem struct {
	ID                 *int64   `json:"id,omitempty"`
	ItemNumber         *string  `json:"itemNumber,omitempty"`
	Description        *string  `json:"description,omitempty"`
	Quantity           *float64 `json:"quantity,omitempty"`
	Category           *string  `json:"category,omitempty"`
	PackageType        *string  `json:"packageType,omitempty"`
	Length             *float64 `json:"length,omitempty"`
	Breadth            *float64 `json:"breadth,omitempty"`
	Height             *float64 `json:"height,omitempty"`
	ActualWeight       *float64 `json:"actualWeight,omitempty"`
	Value              *float64 `json:"value,omitempty"`
	RatePerKg          *float64 `json:"ratePerKg,omitempty"`
	PackingCharge      *float64 `json:"packingCharge,omitempty"`
	HandlingCharge     *float64 `json:"handlingCharge,omitempty"`
	Duty               *float64 `json:"duty,omitempty"`
	IsSelected         *bool    `json:"isSelected,omitempty"`
	PhotoBeforePacking *string  `json:"photoBeforePacking,omitempty"`
	PhotoAfterPacking  *string  `json:"photoAfterPacking,omitempty"`

	CBM              *float64 `json:"cbm,omitempty"`
	VolumetricWeight *float64 `json:"volumetricWeight,omitempty"`
	BilledWeight     *float64 `json:"billedWeight,omitempty"`
	UnitCost         *float64 `json:"unitCost,omitempty"`
	LineTotal        *float64 `json:"lineTotal,omitempty"`
	RequiresPhoto    *bool    `json:"requiresPhoto,omitempty"`
}

// ToRaw converts a canonical quote into its stored shape.
func ToRaw(q *Quote) RawQuote {
	raw := RawQuote{
		QuoteNo:    ptr(q.number),
		Date:       ptr(q.date),
		ValidUntil: ptr(q.validUntil),
		FormData:   formToRaw(q.form),
		Items:      make([]RawItem, len(q.items)),
		Totals:     ptr(q.totals),
		Status:     ptr(q.status.String()),
	}
	if q.voidReason != "" {
		raw.VoidReason = ptr(q.voidReason)
	}
	if !q.meta.RecordID.IsZero() {
		raw.ID = ptr(q.meta.RecordID.String())
	}
	if q.owner.ID != "" {
		raw.UserID = ptr(q.owner.ID)
	}
	if q.owner.Label != "" {
		raw.OwnerEmail = ptr(q.owner.Label)
	}
	if !q.meta.CreatedAt.IsZero() {
		raw.CreatedAt = ptr(q.meta.CreatedAt)
	}
	if !q.meta.UpdatedAt.IsZero() {
		raw.UpdatedAt = ptr(q.meta.UpdatedAt)
	}
	for i, item := range q.items {
		raw.Items[i] = itemToRaw(item)
	}
	return raw
}

func formToRaw(f Form) *RawForm {
	return &RawForm{
		Name:             ptr(f.Name),
		ContactNumber:    ptr(f.ContactNumber),
		Email:            ptr(f.Email),
		WhatsApp:         ptr(f.WhatsApp),
		PickupLocation:   ptr(f.PickupLocation),
		DeliveryLocation: ptr(f.DeliveryLocation),
		DeliveryCity:     ptr(f.DeliveryCity),
		DeliveryCountry:  ptr(f.DeliveryCountry),
		ModeOfService:    ptr(string(f.ModeOfService)),
		TypeOfGoods:      ptr(string(f.TypeOfGoods)),
		TransitTime:      ptr(f.TransitTime),
		QuoteNo:          ptr(f.QuoteNo),
		Date:             ptr(f.Date),
		ValidUntil:       ptr(f.ValidUntil),
		Surveyor:         ptr(f.Surveyor),
		Inclusions:       append([]string{}, f.Inclusions...),
		PaymentMethod:    ptr(string(f.PaymentMethod)),
		PaymentStatus:    ptr(string(f.PaymentStatus)),
		Notes:            ptr(f.Notes),
	}
}

func itemToRaw(item PricedItem) RawItem {
	quantity := float64(item.Quantity)
	raw := RawItem{
		ID:               ptr(item.ID),
		ItemNumber:       ptr(item.ItemNumber),
		Description:      ptr(item.Description),
		Quantity:         &quantity,
		Category:         ptr(string(item.Category)),
		PackageType:      ptr(string(item.PackageType)),
		Length:           ptr(item.Length),
		Breadth:          ptr(item.Breadth),
		Height:           ptr(item.Height),
		ActualWeight:     ptr(item.ActualWeight),
		Value:            ptr(item.Value),
		RatePerKg:        ptr(item.RatePerKg),
		PackingCharge:    ptr(item.PackingCharge),
		HandlingCharge:   ptr(item.HandlingCharge),
		Duty:             ptr(item.Duty),
		IsSelected:       ptr(item.IsSelected),
		CBM:              ptr(item.CBM),
		VolumetricWeight: ptr(item.VolumetricWeight),
		BilledWeight:     ptr(item.BilledWeight),
		UnitCost:         ptr(item.UnitCost),
		LineTotal:        ptr(item.LineTotal),
		RequiresPhoto:    ptr(item.RequiresPhoto),
	}
	if item.PhotoBeforePacking != "" {
		raw.PhotoBeforePacking = ptr(item.PhotoBeforePacking)
	}
	if item.PhotoAfterPacking != "" {
		raw.PhotoAfterPacking = ptr(item.PhotoAfterPacking)
	}
	return raw
}

func ptr[T any](v T) *T {
	return &v
}
