package queries

import (
	"errors"
	"strings"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/pkg/guard"
)

var ErrListQuotesQueryIsNotConstructed = errors.New(
	"ListQuotesQuery must be created via NewListQuotesQuery constructor",
)

// ListQuotesQuery returns the quotes visible to the caller, newest first.
// Search narrows the result by quote number, customer name or contact
// number, and by owner for administrators. Statuses narrows it further;
// an empty filter returns every quote.
//
// Example:
//
//	query, err := NewListQuotesQuery("asha", quote.Active, quote.Draft)
//	if err != nil {
//	    return err
//	}
//	quotes, err := handler.Handle(ctx, query)
type ListQuotesQuery struct {
	search   string
	statuses []quote.Status

	guard guard.ConstructorGuard
}

func NewListQuotesQuery(search string, statuses ...quote.Status) (ListQuotesQuery, error) {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListQuotesQuery{}, err
		}
	}
	return ListQuotesQuery{
		search:   strings.TrimSpace(search),
		statuses: append([]quote.Status{}, statuses...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListQuotesQuery) Validate() error {
	return q.guard.Validate(ErrListQuotesQueryIsNotConstructed)
}

func (q ListQuotesQuery) Search() string {
	return q.search
}

func (q ListQuotesQuery) Statuses() []quote.Status {
	return append([]quote.Status{}, q.statuses...)
}
