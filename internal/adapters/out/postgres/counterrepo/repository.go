package counterrepo

import (
	"context"

	"quotation/internal/core/ports"
	"quotation/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.CounterRepository = (*GormCounterRepository)(nil)

// GormCounterRepository implements ports.CounterRepository using GORM.
type GormCounterRepository struct {
	db *gorm.DB
}

func NewGormCounterRepository(db *gorm.DB) *GormCounterRepository {
	return &GormCounterRepository{db: db}
}

// Get returns the stored next sequence, or 0 if nothing was stored yet.
func (r *GormCounterRepository) Get(ctx context.Context) (int, error) {
	var dto CounterDTO
	result := r.db.WithContext(ctx).Where("id = ?", counterRowID).Limit(1).Find(&dto)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, nil
	}
	return dto.NextSequence, nil
}

// Raise stores value unless a greater sequence is already stored.
// The conditional update keeps concurrent writers from lowering the counter.
func (r *GormCounterRepository) Raise(ctx context.Context, value int) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError("counter", value, 0, "unbounded")
	}

	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&CounterDTO{ID: counterRowID}).Error
	if err != nil {
		return err
	}

	return db.Model(&CounterDTO{}).
		Where("id = ? AND next_sequence < ?", counterRowID, value).
		Update("next_sequence", value).Error
}
