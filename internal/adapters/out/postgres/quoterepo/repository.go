package quoterepo

import (
	"context"
	"errors"
	"strings"

	"quotation/internal/core/ports"
	"quotation/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.QuoteRepository = (*GormQuoteRepository)(nil)

// GormQuoteRepository implements ports.QuoteRepository using GORM.
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a repository on db, which may be a transaction.
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// LoadAll returns the records matching filter, newest first.
func (r *GormQuoteRepository) LoadAll(ctx context.Context, filter ports.OwnerFilter) ([]ports.QuoteRecord, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Order("quote_no DESC")
	if !filter.All() {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}

	var dtos []QuoteDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]ports.QuoteRecord, len(dtos))
	for i, dto := range dtos {
		records[i] = toRecord(dto)
	}
	return records, nil
}

// FindByQuoteNo loads one record. On postgres the row is read FOR UPDATE so a
// surrounding transaction holds it until commit.
func (r *GormQuoteRepository) FindByQuoteNo(ctx context.Context, quoteNo string) (ports.QuoteRecord, error) {
	dto, err := r.lookup(r.db.WithContext(ctx), quoteNo)
	if err != nil {
		return ports.QuoteRecord{}, err
	}
	return toRecord(dto), nil
}

// Upsert inserts record or overwrites the row with the same quote number.
// The row id, owner and creation time of an existing row are kept.
func (r *GormQuoteRepository) Upsert(ctx context.Context, record ports.QuoteRecord) (ports.QuoteRecord, error) {
	if strings.TrimSpace(record.QuoteNo) == "" {
		return ports.QuoteRecord{}, errs.NewValueIsRequiredError("quoteNo")
	}

	dto, err := fromRecord(record)
	if err != nil {
		return ports.QuoteRecord{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	db := r.db.WithContext(ctx)
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "quote_no"}},
		DoUpdates: clause.AssignmentColumns([]string{"owner_label", "status", "payload", "updated_at"}),
	}).Create(&dto).Error
	if err != nil {
		return ports.QuoteRecord{}, err
	}

	var stored QuoteDTO
	if err = db.First(&stored, "quote_no = ?", record.QuoteNo).Error; err != nil {
		return ports.QuoteRecord{}, err
	}
	return toRecord(stored), nil
}

// Update applies the non-nil fields of update to the row with quoteNo.
func (r *GormQuoteRepository) Update(
	ctx context.Context,
	quoteNo string,
	update ports.QuoteRecordUpdate,
) (ports.QuoteRecord, error) {
	db := r.db.WithContext(ctx)

	dto, err := r.lookup(db, quoteNo)
	if err != nil {
		return ports.QuoteRecord{}, err
	}

	if update.Status != nil {
		dto.Status = *update.Status
	}
	if update.OwnerLabel != nil {
		dto.OwnerLabel = *update.OwnerLabel
	}
	if update.Payload != nil {
		dto.Payload = *update.Payload
	}

	if err = db.Save(&dto).Error; err != nil {
		return ports.QuoteRecord{}, err
	}
	return toRecord(dto), nil
}

func (r *GormQuoteRepository) lookup(db *gorm.DB, quoteNo string) (QuoteDTO, error) {
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto QuoteDTO
	if err := db.First(&dto, "quote_no = ?", quoteNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuoteDTO{}, errs.NewObjectNotFoundError("quoteNo", quoteNo)
		}
		return QuoteDTO{}, err
	}
	return dto, nil
}
