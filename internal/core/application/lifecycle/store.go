package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"quotation/internal/core/domain/model/access"
	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/domain/services"
	"quotation/internal/core/ports"
	"quotation/internal/pkg/errs"
)

// Store owns the quotes visible to one caller and the process-wide counter.
// Local state changes only after the backing store accepted the write.
//
// The mutex guards quotes and hydrated; it is never held across a storage call.
type Store struct {
	owner      access.Identity
	counter    *quote.Counter
	uowFactory ports.UnitOfWorkFactory
	migrator   *services.Migrator
	now        func() time.Time
	logger     *slog.Logger

	mu       sync.RWMutex
	quotes   []*quote.Quote
	hydrated bool
}

// Config carries the collaborators of a Store.
type Config struct {
	Counter    *quote.Counter
	UoWFactory ports.UnitOfWorkFactory
	Migrator   *services.Migrator
	Now        func() time.Time
	Logger     *slog.Logger
}

// NewStore creates an empty store acting for owner. Call Hydrate before use.
func NewStore(owner access.Identity, cfg Config) (*Store, error) {
	if owner.UserID == "" {
		return nil, errs.NewValueIsRequiredError("identity")
	}
	if cfg.UoWFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if cfg.Counter == nil {
		cfg.Counter = quote.NewCounter()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Migrator == nil {
		cfg.Migrator = services.NewMigrator(cfg.Now, cfg.Logger)
	}

	return &Store{
		owner:      owner,
		counter:    cfg.Counter,
		uowFactory: cfg.UoWFactory,
		migrator:   cfg.Migrator,
		now:        cfg.Now,
		logger:     cfg.Logger.With("component", "QuoteStore", "user_id", owner.UserID),
		quotes:     []*quote.Quote{},
	}, nil
}

// Owner is the identity the store acts for.
func (s *Store) Owner() access.Identity {
	return s.owner
}

// NextQuoteNumber issues the next Q-DXB-NNNNN number.
func (s *Store) NextQuoteNumber() string {
	return s.counter.Next()
}

// Hydrate reloads every visible record, migrates it and seeds the counter
// from the stored counter and the highest quote number seen.
// Admins see every record; other users only their own.
func (s *Store) Hydrate(ctx context.Context) error {
	filter := ports.OwnerFilter{OwnerID: s.owner.UserID}
	if s.owner.IsAdmin() {
		filter = ports.OwnerFilter{}
	}

	uow := s.uowFactory.Create()
	records, err := uow.QuoteRepository().LoadAll(ctx, filter)
	if err != nil {
		return fmt.Errorf("load quotes: %w", err)
	}
	stored, err := uow.CounterRepository().Get(ctx)
	if err != nil {
		return fmt.Errorf("load quote counter: %w", err)
	}

	raws := make([]quote.RawQuote, len(records))
	for i, record := range records {
		raws[i] = recordToRaw(record)
	}
	quotes := s.migrator.Migrate(raws)

	numbers := make([]string, len(quotes))
	for i, q := range quotes {
		numbers[i] = q.Number()
	}
	s.counter.Seed(quote.SeedValue(stored, numbers))

	s.mu.Lock()
	s.quotes = quotes
	s.hydrated = true
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "quotes hydrated", "count", len(quotes), "next_sequence", s.counter.Peek())
	return nil
}

// Hydrated reports whether Hydrate has completed at least once.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Quotes returns the known quotes, most recently written first.
func (s *Store) Quotes() []*quote.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.quotes)
}

// Find returns the quote with quoteNo.
func (s *Store) Find(quoteNo string) (*quote.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(quoteNo)
}

// NewDraft prices items and wraps them with form as a Draft quote. A number
// is issued when the form has none. The draft is not persisted.
func (s *Store) NewDraft(form quote.Form, items []quote.Item) (*quote.Quote, error) {
	if strings.TrimSpace(form.QuoteNo) == "" {
		form.QuoteNo = s.NextQuoteNumber()
	}
	if form.Date == "" || form.ValidUntil == "" {
		defaults := quote.DefaultForm(s.now())
		if form.Date == "" {
			form.Date = defaults.Date
		}
		if form.ValidUntil == "" {
			form.ValidUntil = defaults.ValidUntil
		}
	}
	if form.TransitTime == "" {
		form.TransitTime = services.TransitTime(form.ModeOfService)
	}

	priced, totals := services.Enrich(quote.NormalizeItems(items))
	return quote.NewQuote(form, priced, totals, quote.Draft)
}

// Persist upserts q under its quote number, optionally forcing its status,
// and raises the stored counter in the same transaction. A quote that is
// already stored keeps its owner and must follow the status lifecycle from
// its stored status. Non-admins cannot write a number owned by someone else.
func (s *Store) Persist(ctx context.Context, q *quote.Quote, override *quote.Status) (*quote.Quote, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	next := q
	if override != nil {
		overridden, err := q.WithStatus(*override)
		if err != nil {
			return nil, err
		}
		next = overridden
	}

	sequence := s.counter.Peek()
	if n, ok := quote.NumberSuffix(next.Number()); ok {
		sequence = max(sequence, n+1)
	}

	saved, err := s.write(ctx, next, sequence)
	if err != nil {
		s.logger.ErrorContext(ctx, "persist quote failed", "quote_no", next.Number(), "error", err)
		return nil, fmt.Errorf("persist quote %s: %w", next.Number(), err)
	}

	result, err := s.migrator.MigrateOne(recordToRaw(saved), 0)
	if err != nil {
		return nil, err
	}
	s.counter.Seed(sequence)
	s.replace(result)

	s.logger.InfoContext(ctx, "quote persisted", "quote_no", result.Number(), "status", result.Status().String())
	return result, nil
}

func (s *Store) write(ctx context.Context, next *quote.Quote, sequence int) (ports.QuoteRecord, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.QuoteRecord{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.QuoteRepository()
	owner := quote.Owner{ID: s.owner.UserID, Label: s.owner.Label()}
	meta := next.Meta()

	stored, err := repo.FindByQuoteNo(ctx, next.Number())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
	case err != nil:
		return ports.QuoteRecord{}, err
	default:
		if !s.canSee(stored) {
			return ports.QuoteRecord{}, errs.NewValueIsInvalidErrorWithCause(
				"quoteNo",
				fmt.Errorf("%s is already taken", next.Number()),
			)
		}
		current, err := s.migrator.MigrateOne(recordToRaw(stored), 0)
		if err != nil {
			return ports.QuoteRecord{}, err
		}
		if err = current.Status().CanTransitionTo(next.Status()); err != nil {
			return ports.QuoteRecord{}, err
		}
		owner = current.Owner()
		meta.RecordID = current.Meta().RecordID
	}
	next = next.WithStorage(owner, meta)

	record := ports.QuoteRecord{
		QuoteNo:    next.Number(),
		OwnerID:    owner.ID,
		OwnerLabel: owner.Label,
		Status:     next.Status().String(),
		Payload:    quote.ToRaw(next),
	}
	if !meta.RecordID.IsZero() {
		record.ID = meta.RecordID.String()
	}

	saved, err := repo.Upsert(ctx, record)
	if err != nil {
		return ports.QuoteRecord{}, err
	}
	if err = uow.CounterRepository().Raise(ctx, sequence); err != nil {
		return ports.QuoteRecord{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return ports.QuoteRecord{}, err
	}
	return saved, nil
}

// UpdateStatus merges u into the stored quote quoteNo. The stored version is
// re-read inside the write transaction, so a stale local copy never decides
// the transition. It returns (nil, nil) when the quote does not exist or
// belongs to another user.
func (s *Store) UpdateStatus(ctx context.Context, quoteNo string, u quote.Update) (*quote.Quote, error) {
	return s.UpdateChecked(ctx, quoteNo, u, nil)
}

// UpdateChecked is UpdateStatus with a final check on the merged quote.
// An error from check aborts the update before anything is written.
func (s *Store) UpdateChecked(
	ctx context.Context,
	quoteNo string,
	u quote.Update,
	check func(merged *quote.Quote) error,
) (*quote.Quote, error) {
	return s.modify(ctx, quoteNo, func(current *quote.Quote) (*quote.Quote, error) {
		merged, err := current.Apply(u)
		if err != nil {
			return nil, err
		}
		if check != nil {
			if err = check(merged); err != nil {
				return nil, err
			}
		}
		return merged, nil
	})
}

// modify loads quoteNo in a transaction, refreshes the local copy and writes
// whatever change returns. A nil result from change skips the write.
func (s *Store) modify(
	ctx context.Context,
	quoteNo string,
	change func(current *quote.Quote) (*quote.Quote, error),
) (*quote.Quote, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("update quote %s: %w", quoteNo, err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.QuoteRepository()
	stored, err := repo.FindByQuoteNo(ctx, quoteNo)
	if errors.Is(err, errs.ErrObjectNotFound) {
		if _, cached := s.Find(quoteNo); cached {
			s.remove(quoteNo)
			s.logger.WarnContext(ctx, "quote vanished from storage", "quote_no", quoteNo)
		}
		return nil, nil
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "load quote failed", "quote_no", quoteNo, "error", err)
		return nil, fmt.Errorf("update quote %s: %w", quoteNo, err)
	}
	if !s.canSee(stored) {
		return nil, nil
	}

	current, err := s.migrator.MigrateOne(recordToRaw(stored), 0)
	if err != nil {
		return nil, err
	}
	s.refresh(current)

	next, err := change(current)
	if err != nil || next == nil {
		return nil, err
	}

	status := next.Status().String()
	label := next.Owner().Label
	payload := quote.ToRaw(next)
	saved, err := repo.Update(ctx, quoteNo, ports.QuoteRecordUpdate{
		Status:     &status,
		OwnerLabel: &label,
		Payload:    &payload,
	})
	if err == nil {
		err = uow.Commit(ctx)
	}
	if err != nil {
		s.logger.ErrorContext(ctx, "update quote failed", "quote_no", quoteNo, "error", err)
		return nil, fmt.Errorf("update quote %s: %w", quoteNo, err)
	}

	result, err := s.migrator.MigrateOne(recordToRaw(saved), 0)
	if err != nil {
		return nil, err
	}
	s.replace(result)

	s.logger.InfoContext(ctx, "quote updated", "quote_no", quoteNo, "status", status)
	return result, nil
}

// Void marks quoteNo as Voided with reason. A blank reason is rejected before
// anything is written.
func (s *Store) Void(ctx context.Context, quoteNo, reason string) (*quote.Quote, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errs.NewValueIsRequiredErrorWithCause("reason", fmt.Errorf("voiding %s needs a reason", quoteNo))
	}

	status := quote.Voided
	return s.UpdateStatus(ctx, quoteNo, quote.Update{Status: &status, VoidReason: &reason})
}

// ExpireOverdue moves Active quotes whose validity ended before now to
// Expired and returns their numbers. It stops at the first storage failure.
func (s *Store) ExpireOverdue(ctx context.Context, now time.Time) ([]string, error) {
	var due []string
	for _, q := range s.Quotes() {
		if q.Status() == quote.Active && q.IsPastValidity(now) {
			due = append(due, q.Number())
		}
	}

	expired := make([]string, 0, len(due))
	status := quote.Expired
	for _, quoteNo := range due {
		q, err := s.modify(ctx, quoteNo, func(current *quote.Quote) (*quote.Quote, error) {
			if current.Status() != quote.Active || !current.IsPastValidity(now) {
				return nil, nil
			}
			return current.Apply(quote.Update{Status: &status})
		})
		if err != nil {
			return expired, err
		}
		if q != nil {
			expired = append(expired, quoteNo)
		}
	}
	return expired, nil
}

func (s *Store) find(quoteNo string) (*quote.Quote, bool) {
	for _, q := range s.quotes {
		if q.Number() == quoteNo {
			return q, true
		}
	}
	return nil, false
}

// replace puts q at the front, dropping any older copy.
func (s *Store) replace(q *quote.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	quotes := make([]*quote.Quote, 0, len(s.quotes)+1)
	quotes = append(quotes, q)
	for _, existing := range s.quotes {
		if existing.Number() != q.Number() {
			quotes = append(quotes, existing)
		}
	}
	s.quotes = quotes
}

// refresh swaps in q where an older copy is kept, without reordering.
func (s *Store) refresh(q *quote.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.quotes {
		if existing.Number() == q.Number() {
			s.quotes[i] = q
			return
		}
	}
}

// canSee reports whether the record is visible to the store owner.
func (s *Store) canSee(r ports.QuoteRecord) bool {
	return s.owner.IsAdmin() || r.OwnerID == s.owner.UserID
}

func (s *Store) remove(quoteNo string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotes = slices.DeleteFunc(slices.Clone(s.quotes), func(q *quote.Quote) bool {
		return q.Number() == quoteNo
	})
}

// recordToRaw overlays the row columns on the stored payload. Columns win
// for the key and storage-assigned values; the payload wins for quote content.
func recordToRaw(r ports.QuoteRecord) quote.RawQuote {
	raw := r.Payload
	if r.QuoteNo != "" {
		raw.QuoteNo = &r.QuoteNo
	}
	if raw.Status == nil && r.Status != "" {
		raw.Status = &r.Status
	}
	if r.ID != "" {
		raw.ID = &r.ID
	}
	if r.OwnerID != "" {
		raw.UserID = &r.OwnerID
	}
	if r.OwnerLabel != "" {
		raw.OwnerEmail = &r.OwnerLabel
	}
	if !r.CreatedAt.IsZero() {
		raw.CreatedAt = &r.CreatedAt
	}
	if !r.UpdatedAt.IsZero() {
		raw.UpdatedAt = &r.UpdatedAt
	}
	return raw
}
