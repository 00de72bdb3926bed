package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/Tyyuu55/Crave-Now/internal/kvstore"
	"github.com/Tyyuu55/Crave-Now/internal/persist"
	"github.com/sirupsen/logrus"
)

// ErrPersist wraps write-through failures. The mutation itself has been
// applied in memory when this is returned.
var ErrPersist = errors.New("cart not persisted")

type state struct {
	Items Lines `json:"items"`
}

// Store is the process-wide cart. Mutators are serialized and each one
// replaces the whole mapping, then writes it through before returning.
type Store struct {
	mu      sync.Mutex
	lines   Lines
	storage *persist.Value[state]
	log     *logrus.Logger
}

// Open restores the cart from kv. Missing or unusable data yields an empty cart.
func Open(ctx context.Context, kv kvstore.Store, log *logrus.Logger) *Store {
	storage := persist.New(kv, persist.CartKey, 0, func() state { return state{} }, log)
	restored := storage.Load(ctx)

	log.WithField("lines", restored.Items.Len()).Info("cart restored")
	return &Store{
		lines:   restored.Items,
		storage: storage,
		log:     log,
	}
}

// AddItem puts one more of item in the cart. A new line takes its
// provenance from restaurant; an existing line keeps the one it has.
func (s *Store) AddItem(ctx context.Context, item domain.MenuItem, restaurant domain.RestaurantRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines.Get(item.ID)
	if ok {
		line.Quantity++
	} else {
		line = domain.NewCartLine(item, restaurant)
	}
	return s.commit(ctx, s.lines.put(line))
}

// Increment is a no-op for ids not in the cart.
func (s *Store) Increment(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines.Get(id)
	if !ok {
		return nil
	}
	line.Quantity++
	return s.commit(ctx, s.lines.put(line))
}

// Decrement removes the line when its quantity is 1. No-op for unknown ids.
func (s *Store) Decrement(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines.Get(id)
	if !ok {
		return nil
	}
	if line.Quantity <= 1 {
		return s.commit(ctx, s.lines.remove(id))
	}
	line.Quantity--
	return s.commit(ctx, s.lines.put(line))
}

func (s *Store) RemoveItem(ctx context.Context, id domain.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, s.lines.remove(id))
}

func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, Lines{})
}

// Lines returns the current mapping. The value is never mutated afterwards.
func (s *Store) Lines() Lines {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lines
}

func (s *Store) Snapshot() domain.CartSnapshot {
	return Totals(s.Lines())
}

// Quantity of id in the cart, 0 when absent.
func (s *Store) Quantity(id domain.ID) int {
	line, _ := s.Lines().Get(id)
	return line.Quantity
}

// commit swaps in next and writes it through. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next Lines) error {
	s.lines = next
	if err := s.storage.Save(ctx, state{Items: next}); err != nil {
		s.log.WithError(err).Error("cart write-through failed")
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
