package quote

import (
	"slices"
	"time"
)

// ModeOfService is the freight mode quoted.
type ModeOfService string

const (
	ServiceUnset ModeOfService = ""
	ServiceSea   ModeOfService = "Sea Freight"
	ServiceAir   ModeOfService = "Air Freight"
)

// GoodsType distinguishes household moves from trade shipments.
type GoodsType string

const (
	GoodsUnset      GoodsType = ""
	GoodsPersonal   GoodsType = "Personal Goods"
	GoodsCommercial GoodsType = "Commercial"
)

type PaymentMethod string

const (
	PaymentMethodUnset PaymentMethod = ""
	PaymentCash        PaymentMethod = "Cash"
	PaymentCard        PaymentMethod = "Card"
	PaymentBank        PaymentMethod = "Bank Transfer"
	PaymentLink        PaymentMethod = "Payment Link"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPartial   PaymentStatus = "Partial"
	PaymentCompleted PaymentStatus = "Completed"
)

const (
	// DateLayout is the layout of Form.Date and Form.ValidUntil.
	DateLayout = "2006-01-02"
	// DefaultCountry is the delivery country preselected on new quotes.
	DefaultCountry = "India"
	// ValidityDays is how long a new quote stays valid.
	ValidityDays = 7
)

// InclusionOptions are the services a quote may include.
var InclusionOptions = []string{
	"Door to door service",
	"Packing",
	"Customs clearance at Origin",
	"Customs clearance at Destination",
	"Insurance",
	"Fumigation",
	"Certificate of Origin",
}

// Form is the customer and shipment snapshot captured with a quote.
type Form struct {
	Name             string        `json:"name"`
	ContactNumber    string        `json:"contactNumber"`
	Email            string        `json:"email"`
	WhatsApp         string        `json:"whatsapp"`
	PickupLocation   string        `json:"pickupLocation"`
	DeliveryLocation string        `json:"deliveryLocation"`
	DeliveryCity     string        `json:"deliveryCity"`
	DeliveryCountry  string        `json:"deliveryCountry"`
	ModeOfService    ModeOfService `json:"modeOfService"`
	TypeOfGoods      GoodsType     `json:"typeOfGoods"`
	TransitTime      string        `json:"transitTime"`
	QuoteNo          string        `json:"quoteNo"`
	Date             string        `json:"date"`
	ValidUntil       string        `json:"validUntil"`
	Surveyor         string        `json:"surveyor"`
	Inclusions       []string      `json:"inclusions"`
	PaymentMethod    PaymentMethod `json:"paymentMethod"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	Notes            string        `json:"notes"`
}

// DefaultForm returns an empty form dated now and valid for ValidityDays.
func DefaultForm(now time.Time) Form {
	today := now.UTC()
	return Form{
		DeliveryCountry: DefaultCountry,
		Date:            today.Format(DateLayout),
		ValidUntil:      today.AddDate(0, 0, ValidityDays).Format(DateLayout),
		Inclusions:      []string{},
		PaymentStatus:   PaymentPending,
	}
}

// ToggleInclusion adds or removes option, keeping the list free of duplicates.
func (f Form) ToggleInclusion(option string, checked bool) Form {
	inclusions := slices.Clone(f.Inclusions)
	if checked {
		if !slices.Contains(inclusions, option) {
			inclusions = append(inclusions, option)
		}
	} else {
		inclusions = slices.DeleteFunc(inclusions, func(s string) bool { return s == option })
	}
	if inclusions == nil {
		inclusions = []string{}
	}
	f.Inclusions = inclusions
	return f
}

func (f Form) clone() Form {
	f.Inclusions = slices.Clone(f.Inclusions)
	if f.Inclusions == nil {
		f.Inclusions = []string{}
	}
	return f
}
