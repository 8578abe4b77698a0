package services

import (
	"fmt"
	"regexp"
	"strings"

	"quotation/internal/core/domain/model/quote"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-()\s]{6,}$`)
)

// Violation is a single failed rule, addressed by a dotted field path.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateForm checks the customer and shipment fields. Violations are
// returned in a fixed order; an empty result means the form is valid.
func ValidateForm(f quote.Form) []Violation {
	var v []Violation

	if blank(f.Name) {
		v = append(v, Violation{"name", "Customer name is required."})
	}
	if blank(f.ContactNumber) {
		v = append(v, Violation{"contactNumber", "Contact number is required."})
	}
	if f.ContactNumber != "" && !phonePattern.MatchString(f.ContactNumber) {
		v = append(v, Violation{"contactNumber", "Enter a valid phone number."})
	}
	if f.Email != "" && !emailPattern.MatchString(f.Email) {
		v = append(v, Violation{"email", "Enter a valid email address."})
	}
	if blank(f.PickupLocation) {
		v = append(v, Violation{"pickupLocation", "Pickup location is required."})
	}
	if blank(string(f.ModeOfService)) {
		v = append(v, Violation{"modeOfService", "Select a mode of service."})
	}
	if blank(string(f.TypeOfGoods)) {
		v = append(v, Violation{"typeOfGoods", "Select the type of goods."})
	}
	if blank(f.DeliveryLocation) {
		v = append(v, Violation{"deliveryLocation", "Delivery location is required."})
	}
	if blank(f.DeliveryCity) {
		v = append(v, Violation{"deliveryCity", "Delivery city is required."})
	}

	return v
}

// ValidateItems checks that something is selected and that each item is complete.
func ValidateItems(items []quote.Item) []Violation {
	var v []Violation

	selected := false
	for _, item := range items {
		if item.IsSelected {
			selected = true
			break
		}
	}
	if !selected {
		v = append(v, Violation{"items", "Select at least one item for the quote."})
	}

	for i, item := range items {
		if blank(item.Description) {
			v = append(v, Violation{
				fmt.Sprintf("items.%d.description", i),
				fmt.Sprintf("Item %d requires a description.", i+1),
			})
		}
		if item.Quantity <= 0 {
			v = append(v, Violation{
				fmt.Sprintf("items.%d.quantity", i),
				fmt.Sprintf("Item %d quantity must be greater than zero.", i+1),
			})
		}
		if item.RatePerKg < 0 {
			v = append(v, Violation{
				fmt.Sprintf("items.%d.ratePerKg", i),
				fmt.Sprintf("Item %d rate cannot be negative.", i+1),
			})
		}
	}

	return v
}

// Validate runs the form rules followed by the item rules.
func Validate(f quote.Form, items []quote.Item) []Violation {
	return append(ValidateForm(f), ValidateItems(items)...)
}

// Summarize joins the distinct messages, in first-seen order, one per line.
func Summarize(violations []Violation) string {
	seen := make(map[string]struct{}, len(violations))
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		if _, ok := seen[v.Message]; ok {
			continue
		}
		seen[v.Message] = struct{}{}
		messages = append(messages, v.Message)
	}
	return strings.Join(messages, "\n")
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
