package lifecycle_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/ports"
	"quotation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// memoryStorage is an in-memory backing store with transaction staging.
type memoryStorage struct {
	mu      sync.Mutex
	records map[string]ports.QuoteRecord
	counter int
	clock   time.Time
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{
		records: make(map[string]ports.QuoteRecord),
		clock:   time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (m *memoryStorage) seed(records ...ports.QuoteRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range records {
		m.clock = m.clock.Add(time.Second)
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = m.clock
		}
		m.records[r.QuoteNo] = r
	}
}

func (m *memoryStorage) Create() ports.UnitOfWork {
	return &memoryUoW{storage: m}
}

type memoryUoW struct {
	storage *memoryStorage
	staged  *memoryStorage
}

func (u *memoryUoW) Begin(context.Context) error {
	if u.staged != nil {
		return nil
	}
	u.storage.mu.Lock()
	defer u.storage.mu.Unlock()
	staged := &memoryStorage{records: make(map[string]ports.QuoteRecord), counter: u.storage.counter, clock: u.storage.clock}
	for k, v := range u.storage.records {
		staged.records[k] = v
	}
	u.staged = staged
	return nil
}

func (u *memoryUoW) Commit(context.Context) error {
	if u.staged == nil {
		return errors.New("no transaction")
	}
	u.storage.mu.Lock()
	defer u.storage.mu.Unlock()
	u.storage.records = u.staged.records
	u.storage.counter = u.staged.counter
	u.storage.clock = u.staged.clock
	u.staged = nil
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	if u.staged == nil {
		return errors.New("no transaction")
	}
	u.staged = nil
	return nil
}

func (u *memoryUoW) target() *memoryStorage {
	if u.staged != nil {
		return u.staged
	}
	return u.storage
}

func (u *memoryUoW) QuoteRepository() ports.QuoteRepository {
	return memoryQuotes{u.target()}
}

func (u *memoryUoW) CounterRepository() ports.CounterRepository {
	return memoryCounter{u.target()}
}

type memoryQuotes struct{ m *memoryStorage }

func (r memoryQuotes) LoadAll(_ context.Context, filter ports.OwnerFilter) ([]ports.QuoteRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []ports.QuoteRecord
	for _, rec := range r.m.records {
		if filter.All() || rec.OwnerID == filter.OwnerID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memoryQuotes) FindByQuoteNo(_ context.Context, quoteNo string) (ports.QuoteRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	rec, ok := r.m.records[quoteNo]
	if !ok {
		return ports.QuoteRecord{}, errs.NewObjectNotFoundError("quoteNo", quoteNo)
	}
	return rec, nil
}

func (r memoryQuotes) Upsert(_ context.Context, rec ports.QuoteRecord) (ports.QuoteRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.clock = r.m.clock.Add(time.Second)
	if existing, ok := r.m.records[rec.QuoteNo]; ok {
		rec.ID = existing.ID
		rec.OwnerID = existing.OwnerID
		rec.CreatedAt = existing.CreatedAt
	} else {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		rec.CreatedAt = r.m.clock
	}
	rec.UpdatedAt = r.m.clock
	r.m.records[rec.QuoteNo] = rec
	return rec, nil
}

func (r memoryQuotes) Update(_ context.Context, quoteNo string, u ports.QuoteRecordUpdate) (ports.QuoteRecord, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	rec, ok := r.m.records[quoteNo]
	if !ok {
		return ports.QuoteRecord{}, errs.NewObjectNotFoundError("quoteNo", quoteNo)
	}
	if u.Status != nil {
		rec.Status = *u.Status
	}
	if u.OwnerLabel != nil {
		rec.OwnerLabel = *u.OwnerLabel
	}
	if u.Payload != nil {
		rec.Payload = *u.Payload
	}
	r.m.clock = r.m.clock.Add(time.Second)
	rec.UpdatedAt = r.m.clock
	r.m.records[quoteNo] = rec
	return rec, nil
}

type memoryCounter struct{ m *memoryStorage }

func (c memoryCounter) Get(context.Context) (int, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return c.m.counter, nil
}

func (c memoryCounter) Raise(_ context.Context, value int) error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.m.counter = max(c.m.counter, value)
	return nil
}

// Mocks for the failure paths.

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) LoadAll(ctx context.Context, f ports.OwnerFilter) ([]ports.QuoteRecord, error) {
	args := m.Called(ctx, f)
	records, _ := args.Get(0).([]ports.QuoteRecord)
	return records, args.Error(1)
}

func (m *MockQuoteRepository) FindByQuoteNo(ctx context.Context, quoteNo string) (ports.QuoteRecord, error) {
	args := m.Called(ctx, quoteNo)
	return args.Get(0).(ports.QuoteRecord), args.Error(1)
}

func (m *MockQuoteRepository) Upsert(ctx context.Context, r ports.QuoteRecord) (ports.QuoteRecord, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(ports.QuoteRecord), args.Error(1)
}

func (m *MockQuoteRepository) Update(ctx context.Context, quoteNo string, u ports.QuoteRecordUpdate) (ports.QuoteRecord, error) {
	args := m.Called(ctx, quoteNo, u)
	return args.Get(0).(ports.QuoteRecord), args.Error(1)
}

type MockCounterRepository struct{ mock.Mock }

func (m *MockCounterRepository) Get(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCounterRepository) Raise(ctx context.Context, value int) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) QuoteRepository() ports.QuoteRepository {
	return m.Called().Get(0).(ports.QuoteRepository)
}

func (m *MockUoW) CounterRepository() ports.CounterRepository {
	return m.Called().Get(0).(ports.CounterRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}

func rawQuote(quoteNo, status string) quote.RawQuote {
	return quote.RawQuote{QuoteNo: &quoteNo, Status: &status}
}
