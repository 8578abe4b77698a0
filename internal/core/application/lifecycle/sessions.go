package lifecycle

import (
	"context"
	"fmt"
	"sync"

	"quotation/internal/core/domain/model/access"
	"quotation/internal/core/domain/model/quote"
	"quotation/internal/core/ports"
	"quotation/internal/pkg/errs"
)

// Sessions keeps one Store per caller. All stores share cfg.Counter, so
// quote numbers stay unique across users of the process.
type Sessions struct {
	identity ports.IdentityProvider
	cfg      Config

	mu     sync.Mutex
	stores map[sessionKey]*Store
}

type sessionKey struct {
	userID string
	role   access.Role
}

// NewSessions creates an empty registry.
func NewSessions(identity ports.IdentityProvider, cfg Config) (*Sessions, error) {
	if identity == nil {
		return nil, errs.NewValueIsRequiredError("identity")
	}
	if cfg.UoWFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if cfg.Counter == nil {
		cfg.Counter = quote.NewCounter()
	}
	return &Sessions{
		identity: identity,
		cfg:      cfg,
		stores:   make(map[sessionKey]*Store),
	}, nil
}

// StoreFor returns the hydrated store of the caller in ctx, creating and
// hydrating it on first use. A failed hydration is retried on the next call.
func (s *Sessions) StoreFor(ctx context.Context) (*Store, error) {
	id, err := s.identity.Current(ctx)
	if err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("identity", err)
	}

	store, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if !store.Hydrated() {
		if err = store.Hydrate(ctx); err != nil {
			return nil, fmt.Errorf("open quote store: %w", err)
		}
	}
	return store, nil
}

// Refresh reloads the caller's store from storage.
func (s *Sessions) Refresh(ctx context.Context) (*Store, error) {
	store, err := s.StoreFor(ctx)
	if err != nil {
		return nil, err
	}
	if err = store.Hydrate(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Sessions) lookup(id access.Identity) (*Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey{userID: id.UserID, role: id.Role}
	if store, ok := s.stores[key]; ok {
		return store, nil
	}

	store, err := NewStore(id, s.cfg)
	if err != nil {
		return nil, err
	}
	s.stores[key] = store
	return store, nil
}
