// Package ports defines the contracts between the quotation core and its
// infrastructure: storage, transactions and caller identity.
package ports

import (
	"context"
	"time"

	"quotation/internal/core/domain/model/quote"
)

// QuoteRecord is a stored quote row. Payload keeps the full quote in its raw
// shape; the other columns are denormalised for filtering.
type QuoteRecord struct {
	ID         string
	QuoteNo    string
	OwnerID    string
	OwnerLabel string
	Status     string
	Payload    quote.RawQuote
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// QuoteRecordUpdate is a partial change to a stored record. Nil fields are left as stored.
type QuoteRecordUpdate struct {
	Status     *string
	OwnerLabel *string
	Payload    *quote.RawQuote
}

// OwnerFilter restricts LoadAll to one owner. The zero value loads everything.
type OwnerFilter struct {
	OwnerID string
}

// All reports whether the filter is unrestricted.
func (f OwnerFilter) All() bool {
	return f.OwnerID == ""
}

// QuoteRepository persists quote records keyed by quote number.
type QuoteRepository interface {
	// LoadAll returns the visible records, newest first.
	LoadAll(ctx context.Context, filter OwnerFilter) ([]QuoteRecord, error)

	// FindByQuoteNo returns the record with quoteNo. Within a transaction the
	// row stays locked until commit where the database supports it.
	// It returns an errs.ObjectNotFoundError when no such record exists.
	FindByQuoteNo(ctx context.Context, quoteNo string) (QuoteRecord, error)

	// Upsert inserts the record or replaces the one with the same quote
	// number, returning the stored row with its assigned id and timestamps.
	// The owner of an existing row is never changed.
	Upsert(ctx context.Context, record QuoteRecord) (QuoteRecord, error)

	// Update applies a partial change to the record with quoteNo.
	// It returns an errs.ObjectNotFoundError when no such record exists.
	Update(ctx context.Context, quoteNo string, update QuoteRecordUpdate) (QuoteRecord, error)
}

// CounterRepository stores the next quote sequence so numbering survives restarts.
type CounterRepository interface {
	// Get returns the stored sequence, 0 when none was stored yet.
	Get(ctx context.Context) (int, error)

	// Raise stores max(stored, value).
	Raise(ctx context.Context, value int) error
}
