package services

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"quotation/internal/core/domain/model/kernel"
	"quotation/internal/core/domain/model/quote"
)

// DefaultVoidReason is recorded for stored Voided quotes that lost their reason.
const DefaultVoidReason = "No reason recorded"

// Migrator turns stored, possibly partial records into canonical quotes.
// Stored derived fields are ignored; every item is re-priced.
type Migrator struct {
	now    func() time.Time
	logger *slog.Logger
}

// NewMigrator returns a Migrator. now supplies the date used for missing form
// dates and item ids; pass nil to use time.Now.
func NewMigrator(now func() time.Time, logger *slog.Logger) *Migrator {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Migrator{now: now, logger: logger.With("component", "Migrator")}
}

// Migrate normalises raw records. Records that still cannot satisfy the quote
// invariants are skipped and logged. Migrating already-migrated data is a no-op.
func (m *Migrator) Migrate(raws []quote.RawQuote) []*quote.Quote {
	now := m.now()
	quotes := make([]*quote.Quote, 0, len(raws))
	for i, raw := range raws {
		q, err := m.migrateOne(raw, i, now)
		if err != nil {
			m.logger.Warn("skipping stored quote", "index", i, "error", err)
			continue
		}
		quotes = append(quotes, q)
	}
	return quotes
}

// MigrateOne normalises a single record as if it were at position index.
func (m *Migrator) MigrateOne(raw quote.RawQuote, index int) (*quote.Quote, error) {
	return m.migrateOne(raw, index, m.now())
}

func (m *Migrator) migrateOne(raw quote.RawQuote, index int, now time.Time) (*quote.Quote, error) {
	form := migrateForm(raw.FormData, now)

	items := make([]quote.Item, len(raw.Items))
	for i, ri := range raw.Items {
		items[i] = migrateItem(ri, i, now)
	}
	priced, totals := Enrich(quote.NormalizeItems(items))

	number := quote.FormatNumber(index + 1)
	if raw.QuoteNo != nil && strings.TrimSpace(*raw.QuoteNo) != "" {
		number = *raw.QuoteNo
	}
	if strings.TrimSpace(form.QuoteNo) == "" {
		form.QuoteNo = number
	}

	status := quote.Active
	if raw.Status != nil {
		if parsed, err := quote.ParseStatus(*raw.Status); err == nil {
			status = parsed
		}
	}
	reason := valueOr(raw.VoidReason, "")
	if status == quote.Voided && reason == "" {
		reason = DefaultVoidReason
	}

	var meta quote.Meta
	if raw.ID != nil {
		if id, err := kernel.UUIDFromString(*raw.ID); err == nil {
			meta.RecordID = id
		}
	}
	meta.CreatedAt = valueOr(raw.CreatedAt, time.Time{})
	meta.UpdatedAt = valueOr(raw.UpdatedAt, time.Time{})

	return quote.RestoreQuote(quote.RestoreParams{
		Number:     number,
		Date:       valueOr(raw.Date, form.Date),
		ValidUntil: valueOr(raw.ValidUntil, form.ValidUntil),
		Form:       form,
		Items:      priced,
		Totals:     totals,
		Status:     status,
		VoidReason: reason,
		Owner: quote.Owner{
			ID:    valueOr(raw.UserID, ""),
			Label: valueOr(raw.OwnerEmail, ""),
		},
		Meta: meta,
	})
}

func migrateForm(raw *quote.RawForm, now time.Time) quote.Form {
	f := quote.DefaultForm(now)
	if raw == nil {
		return f
	}

	f.Name = valueOr(raw.Name, f.Name)
	f.ContactNumber = valueOr(raw.ContactNumber, f.ContactNumber)
	f.Email = valueOr(raw.Email, f.Email)
	f.WhatsApp = valueOr(raw.WhatsApp, f.WhatsApp)
	f.PickupLocation = valueOr(raw.PickupLocation, f.PickupLocation)
	f.DeliveryLocation = valueOr(raw.DeliveryLocation, f.DeliveryLocation)
	f.DeliveryCity = valueOr(raw.DeliveryCity, f.DeliveryCity)
	f.DeliveryCountry = valueOr(raw.DeliveryCountry, f.DeliveryCountry)
	f.ModeOfService = quote.ModeOfService(valueOr(raw.ModeOfService, string(f.ModeOfService)))
	f.TypeOfGoods = quote.GoodsType(valueOr(raw.TypeOfGoods, string(f.TypeOfGoods)))
	f.TransitTime = valueOr(raw.TransitTime, f.TransitTime)
	f.QuoteNo = valueOr(raw.QuoteNo, f.QuoteNo)
	f.Date = valueOr(raw.Date, f.Date)
	f.ValidUntil = valueOr(raw.ValidUntil, f.ValidUntil)
	f.Surveyor = valueOr(raw.Surveyor, f.Surveyor)
	f.PaymentMethod = quote.PaymentMethod(valueOr(raw.PaymentMethod, string(f.PaymentMethod)))
	f.PaymentStatus = quote.PaymentStatus(valueOr(raw.PaymentStatus, string(f.PaymentStatus)))
	f.Notes = valueOr(raw.Notes, f.Notes)
	if raw.Inclusions != nil {
		f.Inclusions = append([]string{}, raw.Inclusions...)
	}

	return f
}

func migrateItem(raw quote.RawItem, index int, now time.Time) quote.Item {
	item := quote.DefaultItem(index, valueOr(raw.RatePerKg, 0), now.UnixMilli()+int64(index))

	item.ID = valueOr(raw.ID, item.ID)
	item.ItemNumber = valueOr(raw.ItemNumber, item.ItemNumber)
	item.Description = valueOr(raw.Description, item.Description)
	if raw.Quantity != nil {
		item.Quantity = int(math.Round(*raw.Quantity))
	}
	item.Category = quote.Category(valueOr(raw.Category, string(item.Category)))
	item.PackageType = quote.PackageType(valueOr(raw.PackageType, string(item.PackageType)))
	item.Length = valueOr(raw.Length, item.Length)
	item.Breadth = valueOr(raw.Breadth, item.Breadth)
	item.Height = valueOr(raw.Height, item.Height)
	item.ActualWeight = valueOr(raw.ActualWeight, item.ActualWeight)
	item.Value = valueOr(raw.Value, item.Value)
	item.PackingCharge = valueOr(raw.PackingCharge, item.PackingCharge)
	item.HandlingCharge = valueOr(raw.HandlingCharge, item.HandlingCharge)
	item.Duty = valueOr(raw.Duty, item.Duty)
	item.IsSelected = valueOr(raw.IsSelected, item.IsSelected)
	item.PhotoBeforePacking = valueOr(raw.PhotoBeforePacking, "")
	item.PhotoAfterPacking = valueOr(raw.PhotoAfterPacking, "")

	return item
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
