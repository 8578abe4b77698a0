package commands_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"quotation/internal/adapters/out/identity"
	"quotation/internal/adapters/out/postgres"
	"quotation/internal/core/application/lifecycle"
	"quotation/internal/core/application/usecases/commands"
	"quotation/internal/core/domain/model/access"
	"quotation/internal/core/domain/model/quote"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

// newSessions opens a private in-memory SQLite database and returns the
// session registry on top of it.
func newSessions(t *testing.T) (*lifecycle.Sessions, *gorm.DB) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.AutoMigrate(db))

	sessions, err := lifecycle.NewSessions(identity.ContextProvider{}, lifecycle.Config{
		UoWFactory: postgres.NewGormUnitOfWorkFactory(db),
		Now:        func() time.Time { return testNow },
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return sessions, db
}

func asUser(t *testing.T, userID string, role access.Role) context.Context {
	t.Helper()
	id, err := access.NewIdentity(userID, userID+"@example.com", role)
	require.NoError(t, err)
	return access.WithIdentity(context.Background(), id)
}

func completeForm() quote.Form {
	f := quote.DefaultForm(testNow)
	f.Name = "Asha Menon"
	f.ContactNumber = "+971 50 123 4567"
	f.PickupLocation = "Al Barsha"
	f.ModeOfService = quote.ServiceAir
	f.TypeOfGoods = quote.GoodsPersonal
	f.DeliveryLocation = "Kakkanad"
	f.DeliveryCity = "Kochi"
	return f
}

func carton() quote.Item {
	item := quote.DefaultItem(0, 10, 1)
	item.Description = "Carton"
	item.Quantity = 2
	item.Length, item.Breadth, item.Height = 10, 20, 30
	item.ActualWeight = 2
	item.PackingCharge, item.HandlingCharge = 5, 5
	return item
}

// saveQuote stores a quote through the save handler and fails the test on
// violations.
func saveQuote(t *testing.T, ctx context.Context, sessions *lifecycle.Sessions, form quote.Form, status quote.Status) *quote.Quote {
	t.Helper()
	cmd, err := commands.NewSaveQuoteCommand(form, []quote.Item{carton()}, status)
	require.NoError(t, err)
	result, err := commands.NewSaveQuoteCommandHandler(sessions).Handle(ctx, cmd)
	require.NoError(t, err)
	require.Empty(t, result.Violations)
	return result.Quote
}
