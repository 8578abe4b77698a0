// Package quoterepo stores quote records with GORM. The full quote is kept as
// a JSON payload next to the columns used for lookups and filtering.
package quoterepo

import (
	"time"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/ports"

	"github.com/google/uuid"
)

// QuoteDTO is the quotes table row.
type QuoteDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	QuoteNo    string         `gorm:"size:32;not null;uniqueIndex"`
	OwnerID    string         `gorm:"size:64;index"`
	OwnerLabel string         `gorm:"size:255"`
	Status     string         `gorm:"size:16;index"`
	Payload    quote.RawQuote `gorm:"type:jsonb;serializer:json"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
}

func (QuoteDTO) TableName() string {
	return "quotes"
}

func fromRecord(r ports.QuoteRecord) (QuoteDTO, error) {
	id := uuid.New()
	if r.ID != "" {
		parsed, err := uuid.Parse(r.ID)
		if err != nil {
			return QuoteDTO{}, err
		}
		id = parsed
	}

	return QuoteDTO{
		ID:         id,
		QuoteNo:    r.QuoteNo,
		OwnerID:    r.OwnerID,
		OwnerLabel: r.OwnerLabel,
		Status:     r.Status,
		Payload:    r.Payload,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}, nil
}

func toRecord(dto QuoteDTO) ports.QuoteRecord {
	return ports.QuoteRecord{
		ID:         dto.ID.String(),
		QuoteNo:    dto.QuoteNo,
		OwnerID:    dto.OwnerID,
		OwnerLabel: dto.OwnerLabel,
		Status:     dto.Status,
		Payload:    dto.Payload,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
	}
}
