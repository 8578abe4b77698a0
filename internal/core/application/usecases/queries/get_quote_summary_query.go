package queries

import (
	"errors"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/pkg/guard"
)

var ErrGetQuoteSummaryQueryIsNotConstructed = errors.New(
	"GetQuoteSummaryQuery must be created via NewGetQuoteSummaryQuery constructor",
)

// GetQuoteSummaryQuery counts stored quotes per status, straight from the
// database. An empty owner counts the quotes of every user.
//
// Example:
//
//	query := NewGetQuoteSummaryQuery(identity.UserID)
//	handler := NewGetQuoteSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to count quotes: %w", err)
//	}
//	fmt.Printf("%d active of %d\n", summary.Counts[quote.Active], summary.Total)
type GetQuoteSummaryQuery struct {
	ownerID string

	guard guard.ConstructorGuard
}

func NewGetQuoteSummaryQuery(ownerID string) GetQuoteSummaryQuery {
	return GetQuoteSummaryQuery{ownerID: ownerID, guard: guard.NewConstructorGuard()}
}

func (q GetQuoteSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteSummaryQueryIsNotConstructed)
}

func (q GetQuoteSummaryQuery) OwnerID() string {
	return q.ownerID
}

// GetQuoteSummaryQueryResponse holds one count per known status, zeros included.
// Rows whose status column is not a known status are counted as Unknown.
type GetQuoteSummaryQueryResponse struct {
	Counts map[quote.Status]int
	Total  int
}
