package cart

import (
	"context"
	"log"
	"sync"

	"github.com/nhutquangnguyen/beautipick-booking-sub001/internal/catalog"
)

// Store owns the canonical cart for one (merchant, session) pair. It is the
// only place cart invariants are enforced: every mutation applies a pure op
// to the current value and swaps the whole cart atomically, then re-persists.
//
// Persistence is best effort. A failed write is logged and the in-memory cart
// keeps the value the mutation produced; a failed write never corrupts state.
type Store struct {
	merchantID string
	sessionID  string
	repo       SnapshotRepository
	logger     *log.Logger

	mu   sync.Mutex
	cart Cart
}

func NewStore(merchantID, sessionID string, repo SnapshotRepository, logger *log.Logger) *Store {
	return &Store{
		merchantID: merchantID,
		sessionID:  sessionID,
		repo:       repo,
		logger:     logger,
	}
}

// Hydrate loads the persisted snapshot, if any. Corrupt or foreign payloads
// are discarded: the stored key is removed and the cart starts empty. Hydrate
// never returns an error for bad data, only for repository failures reading it.
func (s *Store) Hydrate(ctx context.Context) error {
	payload, err := s.repo.Load(ctx, s.merchantID, s.sessionID)
	if err != nil {
		return err
	}
	if payload == nil {
		return nil
	}

	entries, err := decodeSnapshot(payload)
	if err != nil {
		s.logger.Printf("discarding corrupt cart snapshot for merchant=%s session=%s: %v",
			s.merchantID, s.sessionID, err)
		if derr := s.repo.Delete(ctx, s.merchantID, s.sessionID); derr != nil {
			s.logger.Printf("delete corrupt cart snapshot: %v", derr)
		}
		return nil
	}

	s.mu.Lock()
	s.cart = FromEntries(entries)
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current entries.
func (s *Store) Snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Entries()
}

func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Store) IsServiceInCart(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.HasService(id)
}

func (s *Store) IsProductInCart(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.HasProduct(id)
}

func (s *Store) ProductQuantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ProductQuantity(id)
}

func (s *Store) AddService(ctx context.Context, svc catalog.Service) {
	s.apply(ctx, func(c Cart) Cart { return c.AddService(svc) })
}

func (s *Store) AddProduct(ctx context.Context, p catalog.Product) {
	s.apply(ctx, func(c Cart) Cart { return c.AddProduct(p) })
}

func (s *Store) SetProductQuantity(ctx context.Context, id string, qty int) {
	s.apply(ctx, func(c Cart) Cart { return c.SetProductQuantity(id, qty) })
}

func (s *Store) Remove(ctx context.Context, id string) {
	s.apply(ctx, func(c Cart) Cart { return c.Remove(id) })
}

func (s *Store) Clear(ctx context.Context) {
	s.apply(ctx, func(c Cart) Cart { return c.Clear() })
}

func (s *Store) apply(ctx context.Context, op func(Cart) Cart) {
	s.mu.Lock()
	s.cart = op(s.cart)
	cur := s.cart
	s.mu.Unlock()

	s.persist(ctx, cur)
}

// persist writes the snapshot, or deletes the key when the cart is empty so
// abandoned sessions don't accumulate empty rows.
func (s *Store) persist(ctx context.Context, c Cart) {
	if c.IsEmpty() {
		if err := s.repo.Delete(ctx, s.merchantID, s.sessionID); err != nil {
			s.logger.Printf("delete cart snapshot merchant=%s session=%s: %v", s.merchantID, s.sessionID, err)
		}
		return
	}

	payload, err := encodeSnapshot(c.Entries())
	if err != nil {
		s.logger.Printf("encode cart snapshot merchant=%s session=%s: %v", s.merchantID, s.sessionID, err)
		return
	}
	if err := s.repo.Save(ctx, s.merchantID, s.sessionID, payload); err != nil {
		s.logger.Printf("save cart snapshot merchant=%s session=%s: %v", s.merchantID, s.sessionID, err)
	}
}
