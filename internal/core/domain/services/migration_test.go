package services_test

import (
	"testing"
	"time"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var migrationNow = time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

func newMigrator() *services.Migrator {
	return services.NewMigrator(func() time.Time { return migrationNow }, nil)
}

func ptr[T any](v T) *T {
	return &v
}

func TestMigrator_Migrate(t *testing.T) {
	t.Run("should fill defaults for an empty record", func(t *testing.T) {
		quotes := newMigrator().Migrate([]quote.RawQuote{{}, {}})

		require.Len(t, quotes, 2)
		q := quotes[1]
		assert.Equal(t, "Q-DXB-00002", q.Number())
		assert.Equal(t, quote.Active, q.Status())
		assert.Equal(t, "2025-03-10", q.Date())
		assert.Equal(t, "2025-03-17", q.ValidUntil())
		assert.Equal(t, quote.DefaultCountry, q.Form().DeliveryCountry)
		assert.Equal(t, "Q-DXB-00002", q.Form().QuoteNo)
		assert.Empty(t, q.Items())
	})

	t.Run("should re-price items and ignore stored derived fields", func(t *testing.T) {
		raw := quote.RawQuote{
			QuoteNo: ptr("Q-DXB-00007"),
			Items: []quote.RawItem{{
				Description:    ptr("Carton"),
				Quantity:       ptr(2.0),
				Length:         ptr(10.0),
				Breadth:        ptr(20.0),
				Height:         ptr(30.0),
				ActualWeight:   ptr(2.0),
				RatePerKg:      ptr(10.0),
				PackingCharge:  ptr(5.0),
				HandlingCharge: ptr(5.0),
				LineTotal:      ptr(9999.0),
			}, {
				Description: ptr("Lamp"),
				IsSelected:  ptr(false),
			}},
			Totals: &quote.Totals{Subtotal: 1},
		}

		q, err := newMigrator().MigrateOne(raw, 0)

		require.NoError(t, err)
		items := q.Items()
		require.Len(t, items, 2)
		assert.InDelta(t, 60, items[0].LineTotal, 1e-9)
		assert.Equal(t, "Item 1 of 2", items[0].ItemNumber)
		assert.Equal(t, "Item 2 of 2", items[1].ItemNumber)
		assert.True(t, items[0].IsSelected)
		assert.Equal(t, 1, items[1].Quantity)
		assert.Equal(t, migrationNow.UnixMilli()+1, items[1].ID)
		assert.InDelta(t, 60, q.Totals().Subtotal, 1e-9)
		assert.Equal(t, 1, q.Totals().SelectedCount)
	})

	t.Run("should keep a stored form value over the default", func(t *testing.T) {
		raw := quote.RawQuote{FormData: &quote.RawForm{
			DeliveryCountry: ptr("Kenya"),
			Inclusions:      []string{"Packing"},
		}}

		q, err := newMigrator().MigrateOne(raw, 0)

		require.NoError(t, err)
		assert.Equal(t, "Kenya", q.Form().DeliveryCountry)
		assert.Equal(t, []string{"Packing"}, q.Form().Inclusions)
		assert.Equal(t, quote.PaymentPending, q.Form().PaymentStatus)
	})

	t.Run("should default unknown statuses to Active", func(t *testing.T) {
		q, err := newMigrator().MigrateOne(quote.RawQuote{Status: ptr("Archived")}, 0)

		require.NoError(t, err)
		assert.Equal(t, quote.Active, q.Status())
	})

	t.Run("should give reasonless voided quotes a reason", func(t *testing.T) {
		q, err := newMigrator().MigrateOne(quote.RawQuote{Status: ptr("Voided")}, 0)

		require.NoError(t, err)
		assert.Equal(t, quote.Voided, q.Status())
		assert.Equal(t, services.DefaultVoidReason, q.VoidReason())
	})

	t.Run("should keep owner and record metadata", func(t *testing.T) {
		created := migrationNow.Add(-time.Hour)
		raw := quote.RawQuote{
			ID:         ptr("8b7f1d2e-5b3a-4c4f-9a51-0d5e8f6c2a10"),
			UserID:     ptr("u-1"),
			OwnerEmail: ptr("ops@example.com"),
			CreatedAt:  &created,
		}

		q, err := newMigrator().MigrateOne(raw, 0)

		require.NoError(t, err)
		assert.Equal(t, "8b7f1d2e-5b3a-4c4f-9a51-0d5e8f6c2a10", q.Meta().RecordID.String())
		assert.Equal(t, created, q.Meta().CreatedAt)
		assert.Equal(t, quote.Owner{ID: "u-1", Label: "ops@example.com"}, q.Owner())
	})

	t.Run("should number records with a blank quote number by position", func(t *testing.T) {
		quotes := newMigrator().Migrate([]quote.RawQuote{
			{QuoteNo: ptr("  "), FormData: &quote.RawForm{QuoteNo: ptr("")}},
			{QuoteNo: ptr("")},
		})

		require.Len(t, quotes, 2)
		assert.Equal(t, "Q-DXB-00001", quotes[0].Number())
		assert.Equal(t, "Q-DXB-00001", quotes[0].Form().QuoteNo)
		assert.Equal(t, "Q-DXB-00002", quotes[1].Number())
	})
}

func TestMigrator_Idempotent(t *testing.T) {
	m := newMigrator()
	raws := []quote.RawQuote{
		{},
		{
			QuoteNo:    ptr("Q-DXB-00042"),
			Status:     ptr("voided"),
			VoidReason: ptr("duplicate"),
			FormData:   &quote.RawForm{Name: ptr("Asha"), ModeOfService: ptr("Air Freight")},
			Items: []quote.RawItem{
				{Description: ptr("Sofa"), Quantity: ptr(1.0), Length: ptr(200.0), Breadth: ptr(90.0), Height: ptr(80.0), RatePerKg: ptr(12.5)},
				{ID: ptr(int64(77)), ItemNumber: ptr("legacy"), Category: ptr("Irregular/Furniture")},
			},
		},
	}

	once := m.Migrate(raws)
	again := make([]quote.RawQuote, len(once))
	for i, q := range once {
		again[i] = quote.ToRaw(q)
	}
	twice := m.Migrate(again)

	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, once[i], twice[i])
	}
}
