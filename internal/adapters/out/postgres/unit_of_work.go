// Package postgres wires the GORM repositories into a Unit of Work so that a
// quote write and the counter bump it implies commit or fail together.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	saved, err := uow.QuoteRepository().Upsert(ctx, record)
//	if err != nil {
//	    _ = uow.Rollback(ctx)
//	    return err
//	}
//	if err = uow.CounterRepository().Raise(ctx, next); err != nil {
//	    _ = uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork holds its own transaction; goroutines must not share one.
// The same code runs on PostgreSQL and on SQLite.
package postgres

import (
	"context"

	"quotation/internal/adapters/out/postgres/counterrepo"
	"quotation/internal/adapters/out/postgres/quoterepo"
	"quotation/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)

// GormUnitOfWorkFactory creates UnitOfWork instances on a shared connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a unit of work with no transaction started.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// AutoMigrate creates or updates the tables used by the repositories.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&quoterepo.QuoteDTO{}, &counterrepo.CounterDTO{})
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling Begin twice does not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx

	return nil
}

// Commit finalises the transaction; it returns gorm.ErrInvalidTransaction if
// none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction; it returns gorm.ErrInvalidTransaction if
// none is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// QuoteRepository runs inside the active transaction, or directly on the
// connection pool when none was started.
func (uow *GormUnitOfWork) QuoteRepository() ports.QuoteRepository {
	return quoterepo.NewGormQuoteRepository(uow.conn())
}

func (uow *GormUnitOfWork) CounterRepository() ports.CounterRepository {
	return counterrepo.NewGormCounterRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
