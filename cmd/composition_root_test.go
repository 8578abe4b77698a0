package cmd_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"quotation/cmd"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_WiresSQLite(t *testing.T) {
	cfg := cmd.Config{
		DBDriver:       cmd.DriverSQLite,
		DBDSN:          filepath.Join(t.TempDir(), "quotes.db"),
		ExpirySchedule: "0 0 * * * *",
		SystemUserID:   "system",
	}

	db, err := cmd.OpenDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})
	assert.True(t, db.Migrator().HasTable("quotes"))
	assert.True(t, db.Migrator().HasTable("quote_counters"))

	root, err := cmd.NewCompositionRoot(cfg, db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	server := root.CreateServer()
	require.NotNil(t, server)
	require.NoError(t, server.Register(echo.New()))

	jobManager := root.CreateJobManager()
	require.NoError(t, jobManager.StartAll())
	jobManager.StopAll()
}

func TestCompositionRoot_RequiresSystemUser(t *testing.T) {
	_, err := cmd.NewCompositionRoot(cmd.Config{}, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
}
