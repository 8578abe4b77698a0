package cmd

import (
	"fmt"
	"log/slog"

	httpin "quotation/internal/adapters/in/http"
	"quotation/internal/adapters/out/identity"
	"quotation/internal/adapters/out/postgres"
	"quotation/internal/core/application/lifecycle"
	"quotation/internal/core/application/usecases/commands"
	"quotation/internal/core/application/usecases/queries"
	"quotation/internal/core/domain/model/access"
	"quotation/internal/core/domain/model/quote"
	"quotation/internal/jobs"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg    Config
	gormDB *gorm.DB
	logger *slog.Logger

	// sessions serves HTTP callers; systemSessions acts for the background
	// jobs. Both share one quote counter.
	sessions       *lifecycle.Sessions
	systemSessions *lifecycle.Sessions
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	storeCfg := lifecycle.Config{
		Counter:    quote.NewCounter(),
		UoWFactory: uowFactory,
		Logger:     logger,
	}

	sessions, err := lifecycle.NewSessions(identity.ContextProvider{}, storeCfg)
	if err != nil {
		return CompositionRoot{}, err
	}

	system, err := access.NewIdentity(cfg.SystemUserID, cfg.SystemUserEmail, access.RoleAdmin)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("system identity: %w", err)
	}
	systemSessions, err := lifecycle.NewSessions(identity.StaticProvider{Identity: system}, storeCfg)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:            cfg,
		gormDB:         gormDB,
		logger:         logger,
		sessions:       sessions,
		systemSessions: systemSessions,
	}, nil
}

// OpenDatabase connects with the configured driver and migrates the schema.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		dialector = gormpostgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.DBDriver, err)
	}
	if cfg.DBDriver == DriverSQLite {
		// One writer at a time keeps SQLite from reporting "database is locked".
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return nil, dbErr
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err = postgres.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return db, nil
}

func (c *CompositionRoot) CreateReserveQuoteNumberCommandHandler() commands.ReserveQuoteNumberCommandHandler {
	return commands.NewReserveQuoteNumberCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateSaveQuoteCommandHandler() commands.SaveQuoteCommandHandler {
	return commands.NewSaveQuoteCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateUpdateQuoteCommandHandler() commands.UpdateQuoteCommandHandler {
	return commands.NewUpdateQuoteCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateVoidQuoteCommandHandler() commands.VoidQuoteCommandHandler {
	return commands.NewVoidQuoteCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateExpireQuotesCommandHandler() commands.ExpireQuotesCommandHandler {
	return commands.NewExpireQuotesCommandHandler(c.systemSessions)
}

func (c *CompositionRoot) CreateListQuotesQueryHandler() queries.ListQuotesQueryHandler {
	return queries.NewListQuotesQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreatePreviewPricingQueryHandler() queries.PreviewPricingQueryHandler {
	return queries.NewPreviewPricingQueryHandler()
}

func (c *CompositionRoot) CreateGetQuoteDocumentQueryHandler() queries.GetQuoteDocumentQueryHandler {
	return queries.NewGetQuoteDocumentQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateGetQuoteSummaryQueryHandler() queries.GetQuoteSummaryQueryHandler {
	return queries.NewGetQuoteSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		ReserveNumber:  c.CreateReserveQuoteNumberCommandHandler(),
		SaveQuote:      c.CreateSaveQuoteCommandHandler(),
		UpdateQuote:    c.CreateUpdateQuoteCommandHandler(),
		VoidQuote:      c.CreateVoidQuoteCommandHandler(),
		ListQuotes:     c.CreateListQuotesQueryHandler(),
		PreviewPricing: c.CreatePreviewPricingQueryHandler(),
		GetDocument:    c.CreateGetQuoteDocumentQueryHandler(),
		GetSummary:     c.CreateGetQuoteSummaryQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireQuotesCommandHandler(), c.cfg.ExpirySchedule, c.logger)
}
