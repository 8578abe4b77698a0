package queries

import (
	"errors"
	"strings"

	"quotation/internal/pkg/errs"
	"quotation/internal/pkg/guard"
)

var ErrGetQuoteDocumentQueryIsNotConstructed = errors.New(
	"GetQuoteDocumentQuery must be created via NewGetQuoteDocumentQuery constructor",
)

// GetQuoteDocumentQuery builds the printable document of a stored quote.
type GetQuoteDocumentQuery struct {
	quoteNo string

	guard guard.ConstructorGuard
}

func NewGetQuoteDocumentQuery(quoteNo string) (GetQuoteDocumentQuery, error) {
	quoteNo = strings.TrimSpace(quoteNo)
	if quoteNo == "" {
		return GetQuoteDocumentQuery{}, errs.NewValueIsRequiredError("quoteNo")
	}
	return GetQuoteDocumentQuery{quoteNo: quoteNo, guard: guard.NewConstructorGuard()}, nil
}

func (q GetQuoteDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteDocumentQueryIsNotConstructed)
}

func (q GetQuoteDocumentQuery) QuoteNo() string {
	return q.quoteNo
}
