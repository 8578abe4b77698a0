package queries

import (
	"context"

	"quotation/internal/core/domain/model/quote"

	"gorm.io/gorm"
)

// GetQuoteSummaryQueryHandler reads the quotes table without going through
// the lifecycle store, so it never hydrates a session.
type GetQuoteSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetQuoteSummaryQueryHandler(db *gorm.DB) GetQuoteSummaryQueryHandler {
	return GetQuoteSummaryQueryHandler{db: db}
}

func (h GetQuoteSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetQuoteSummaryQuery,
) (GetQuoteSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteSummaryQueryResponse{}, err
	}

	response := GetQuoteSummaryQueryResponse{
		Counts: map[quote.Status]int{
			quote.Draft:     0,
			quote.Active:    0,
			quote.Converted: 0,
			quote.Expired:   0,
			quote.Voided:    0,
		},
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM quotes
		WHERE ? = '' OR owner_id = ?
		GROUP BY status
	`, query.OwnerID(), query.OwnerID()).Rows()
	if err != nil {
		return GetQuoteSummaryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var count int
		if err = rows.Scan(&name, &count); err != nil {
			return GetQuoteSummaryQueryResponse{}, err
		}

		status, parseErr := quote.ParseStatus(name)
		if parseErr != nil {
			status = quote.Unknown
		}
		response.Counts[status] += count
		response.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetQuoteSummaryQueryResponse{}, err
	}

	return response, nil
}
