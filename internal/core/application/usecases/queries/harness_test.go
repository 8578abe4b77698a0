package queries_test

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
	"quotation/internal/core/domain/model/access"
	"quotation/internal/core/domain/model/quote"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

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

func carton() quote.Item {
	item := quote.DefaultItem(0, 10, 1)
	item.Description = "Carton"
	item.Quantity = 2
	item.Length, item.Breadth, item.Height = 10, 20, 30
	item.ActualWeight = 2
	item.PackingCharge, item.HandlingCharge = 5, 5
	return item
}

// persist stores a quote in status for the caller in ctx, going through
// Draft first when a later status is wanted.
func persist(t *testing.T, ctx context.Context, sessions *lifecycle.Sessions, status quote.Status) *quote.Quote {
	t.Helper()

	store, err := sessions.StoreFor(ctx)
	require.NoError(t, err)

	form := quote.DefaultForm(testNow)
	form.Name = "Asha Menon"
	form.ModeOfService = quote.ServiceSea
	draft, err := store.NewDraft(form, []quote.Item{carton()})
	require.NoError(t, err)

	saved, err := store.Persist(ctx, draft, nil)
	require.NoError(t, err)
	if status == quote.Draft {
		return saved
	}

	if status != quote.Voided {
		active := quote.Active
		saved, err = store.Persist(ctx, saved, &active)
		require.NoError(t, err)
		if status == quote.Active {
			return saved
		}
	}

	updated, err := store.UpdateStatus(ctx, saved.Number(), quote.Update{Status: &status, VoidReason: ptr("test")})
	require.NoError(t, err)
	require.NotNil(t, updated)
	return updated
}

func ptr[T any](v T) *T {
	return &v
}
