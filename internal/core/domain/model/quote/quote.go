package quote

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"quotation/internal/core/domain/model/kernel"
	"quotation/internal/pkg/errs"
)

var (
	// ErrQuoteIsNotConstructed is returned when a Quote was not built by NewQuote or RestoreQuote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote constructor")
)

// Owner identifies the user a quote belongs to in a multi-tenant store.
type Owner struct {
	ID    string
	Label string
}

// Meta is the metadata assigned by the backing store.
type Meta struct {
	RecordID  kernel.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Quote is the aggregate root of a freight quotation: a priced snapshot of
// the customer form and items under a unique quote number.
//
// Invariants:
//   - the quote number is never empty
//   - the status is a valid Status
//   - a Voided quote carries a non-empty void reason
//   - a Voided quote is never changed again
type Quote struct {
	number     string
	date       string
	validUntil string
	form       Form
	items      []PricedItem
	totals     Totals
	status     Status
	voidReason string
	owner      Owner
	meta       Meta

	isConstructed bool
}

// NewQuote wraps a priced draft snapshot. The quote number, issue date and
// validity are taken from the form. Voided quotes cannot be created directly.
//
//	items, totals := services.Enrich(draftItems)
//	q, err := quote.NewQuote(form, items, totals, quote.Draft)
func NewQuote(form Form, items []PricedItem, totals Totals, status Status) (*Quote, error) {
	if status == Voided {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			errors.New("a quote cannot be created as Voided"),
		)
	}

	return RestoreQuote(RestoreParams{
		Number:     form.QuoteNo,
		Date:       form.Date,
		ValidUntil: form.ValidUntil,
		Form:       form,
		Items:      items,
		Totals:     totals,
		Status:     status,
	})
}

// RestoreParams carries every field of a stored quote.
type RestoreParams struct {
	Number     string
	Date       string
	ValidUntil string
	Form       Form
	Items      []PricedItem
	Totals     Totals
	Status     Status
	VoidReason string
	Owner      Owner
	Meta       Meta
}

// RestoreQuote rebuilds a quote from already-canonical data, checking invariants.
func RestoreQuote(p RestoreParams) (*Quote, error) {
	q := &Quote{
		date:       p.Date,
		validUntil: p.ValidUntil,
		form:       p.Form.clone(),
		items:      clonePriced(p.Items),
		totals:     p.Totals,
		owner:      p.Owner,
		meta:       p.Meta,

		isConstructed: true,
	}

	if err := errors.Join(
		q.setNumber(p.Number),
		q.setStatus(p.Status, p.VoidReason),
	); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate ensures the quote was built through a constructor.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

func (q *Quote) Number() string {
	return q.number
}

// Date is the issue date, formatted with DateLayout.
func (q *Quote) Date() string {
	return q.date
}

func (q *Quote) ValidUntil() string {
	return q.validUntil
}

// Form returns a copy of the customer and shipment snapshot.
func (q *Quote) Form() Form {
	return q.form.clone()
}

// Items returns a copy of the ordered priced items.
func (q *Quote) Items() []PricedItem {
	return clonePriced(q.items)
}

func (q *Quote) Totals() Totals {
	return q.totals
}

func (q *Quote) Status() Status {
	return q.status
}

// VoidReason is empty unless the quote is Voided.
func (q *Quote) VoidReason() string {
	return q.voidReason
}

func (q *Quote) Owner() Owner {
	return q.owner
}

func (q *Quote) Meta() Meta {
	return q.meta
}

// IsPastValidity reports whether the validity date lies before the day of now.
// Quotes with an unparsable validity date are never considered past it.
func (q *Quote) IsPastValidity(now time.Time) bool {
	validUntil, err := time.Parse(DateLayout, q.validUntil)
	if err != nil {
		return false
	}
	today, _ := time.Parse(DateLayout, now.UTC().Format(DateLayout))
	return validUntil.Before(today)
}

// Matches reports whether term occurs, ignoring case, in the quote number,
// customer name or contact number. withOwner also searches the owner label.
// A blank term matches every quote.
func (q *Quote) Matches(term string, withOwner bool) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	fields := []string{q.number, q.form.Name, q.form.ContactNumber}
	if withOwner {
		fields = append(fields, q.owner.Label)
	}
	return slices.ContainsFunc(fields, func(field string) bool {
		return strings.Contains(strings.ToLower(field), term)
	})
}

// Update is a partial change to a quote. Nil fields are left untouched;
// Form, Items and Totals replace the current value wholesale.
type Update struct {
	Status     *Status
	VoidReason *string
	Form       *Form
	Items      []PricedItem
	Totals     *Totals
	OwnerLabel *string
}

// Apply returns a new quote with u merged in. The receiver is not modified.
// Status changes must follow the lifecycle; Voided quotes reject every update.
func (q *Quote) Apply(u Update) (*Quote, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	next := q.status
	if u.Status != nil {
		next = *u.Status
	}
	if err := q.status.CanTransitionTo(next); err != nil {
		return nil, err
	}

	merged := q.clone()
	if u.Form != nil {
		merged.form = u.Form.clone()
	}
	if u.Items != nil {
		merged.items = clonePriced(u.Items)
	}
	if u.Totals != nil {
		merged.totals = *u.Totals
	}
	if u.OwnerLabel != nil {
		merged.owner.Label = *u.OwnerLabel
	}

	reason := q.voidReason
	if u.VoidReason != nil {
		reason = *u.VoidReason
	}
	if err := merged.setStatus(next, reason); err != nil {
		return nil, err
	}

	return merged, nil
}

// Void moves the quote to Voided with the given reason.
func (q *Quote) Void(reason string) (*Quote, error) {
	status := Voided
	return q.Apply(Update{Status: &status, VoidReason: &reason})
}

// WithStatus returns a copy of the quote in status, following the lifecycle.
func (q *Quote) WithStatus(status Status) (*Quote, error) {
	return q.Apply(Update{Status: &status})
}

// WithStorage returns a copy carrying the owner and metadata assigned by the store.
func (q *Quote) WithStorage(owner Owner, meta Meta) *Quote {
	c := q.clone()
	c.owner = owner
	c.meta = meta
	return c
}

func (q *Quote) clone() *Quote {
	c := *q
	c.form = q.form.clone()
	c.items = clonePriced(q.items)
	return &c
}

func (q *Quote) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("quoteNo")
	}
	q.number = number
	return nil
}

func (q *Quote) setStatus(status Status, voidReason string) error {
	if err := status.Validate(); err != nil {
		return err
	}

	reason := strings.TrimSpace(voidReason)
	if status == Voided && reason == "" {
		return errs.NewValueIsRequiredErrorWithCause(
			"voidReason",
			fmt.Errorf("a reason is required to void quote %s", q.number),
		)
	}
	if status != Voided {
		reason = ""
	}

	q.status = status
	q.voidReason = reason
	return nil
}

func clonePriced(items []PricedItem) []PricedItem {
	if items == nil {
		return []PricedItem{}
	}
	return slices.Clone(items)
}
