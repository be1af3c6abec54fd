package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"refrigeracao_os/internal/domain/pricing"
	"refrigeracao_os/internal/usecase/interfaces"
)

var ErrDraftExists = errors.New("draft already exists")

type draftEntry struct {
	draft     pricing.Draft
	expiresAt time.Time
}

// QuotationDraftStore keeps drafts in process memory. A draft expires ttl after
// its last write; expired drafts behave as missing and are dropped lazily and by
// Sweep.
//
// Drafts are copied on the way in and out, so callers never share a Quotation
// with the store.
type QuotationDraftStore struct {
	mu      sync.Mutex
	entries map[string]draftEntry
	ttl     time.Duration
	now     func() time.Time
}

var _ interfaces.IQuotationDraftStore = (*QuotationDraftStore)(nil)

func NewQuotationDraftStore(ttl time.Duration) *QuotationDraftStore {
	return &QuotationDraftStore{
		entries: make(map[string]draftEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *QuotationDraftStore) Create(_ context.Context, d pricing.Draft) (pricing.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.live(d.ID); ok {
		return pricing.Draft{}, ErrDraftExists
	}
	s.put(d)
	return d.Clone(), nil
}

func (s *QuotationDraftStore) Get(_ context.Context, id string) (pricing.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(id)
	if !ok {
		return pricing.Draft{}, nil
	}
	return e.draft.Clone(), nil
}

func (s *QuotationDraftStore) Update(_ context.Context, id string, fn func(d *pricing.Draft) error) (pricing.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(id)
	if !ok {
		return pricing.Draft{}, nil
	}

	next := e.draft.Clone()
	if err := fn(&next); err != nil {
		return pricing.Draft{}, err
	}
	s.put(next)
	return next.Clone(), nil
}

func (s *QuotationDraftStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// Sweep drops every expired draft and reports how many were removed.
func (s *QuotationDraftStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *QuotationDraftStore) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// live must be called with mu held.
func (s *QuotationDraftStore) live(id string) (draftEntry, bool) {
	e, ok := s.entries[id]
	if !ok {
		return draftEntry{}, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, id)
		return draftEntry{}, false
	}
	return e, true
}

func (s *QuotationDraftStore) put(d pricing.Draft) {
	s.entries[d.ID] = draftEntry{draft: d.Clone(), expiresAt: s.now().Add(s.ttl)}
}
