package store

import (
	"context"
	"sync"

	"github.com/autoquote/backend/internal/domain"
)

// MemoryStore is a thread-safe, insertion-ordered session store for the
// working item list. Order matters: the stable tie-breaks in winner
// selection and tier resolution are defined by first-seen position.
type MemoryStore struct {
	mutex sync.RWMutex
	items []domain.QuoteItem
	index map[string]int
}

// NewMemoryStore creates an empty in-memory item store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{index: make(map[string]int)}
}

// List returns a copy of the item list in insertion order.
func (s *MemoryStore) List(ctx context.Context) ([]domain.QuoteItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]domain.QuoteItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Append adds items to the end of the session list. Ids must be unique
// across the session.
func (s *MemoryStore) Append(ctx context.Context, items []domain.QuoteItem) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, item := range items {
		if _, exists := s.index[item.ID]; exists {
			return domain.ErrDuplicateID
		}
	}
	for _, item := range items {
		s.index[item.ID] = len(s.items)
		s.items = append(s.items, item)
	}
	return nil
}

// Replace swaps the whole session list, keeping the order given.
func (s *MemoryStore) Replace(ctx context.Context, items []domain.QuoteItem) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	index := make(map[string]int, len(items))
	for i, item := range items {
		if _, exists := index[item.ID]; exists {
			return domain.ErrDuplicateID
		}
		index[item.ID] = i
	}

	s.items = make([]domain.QuoteItem, len(items))
	copy(s.items, items)
	s.index = index
	return nil
}

// Remove deletes one item by id.
func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	pos, exists := s.index[id]
	if !exists {
		return domain.ErrItemNotFound
	}

	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return nil
}

// Toggle flips the selected flag of one item and returns the new state.
func (s *MemoryStore) Toggle(ctx context.Context, id string) (domain.QuoteItem, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	pos, exists := s.index[id]
	if !exists {
		return domain.QuoteItem{}, domain.ErrItemNotFound
	}
	s.items[pos].Selected = !s.items[pos].Selected
	return s.items[pos], nil
}

// Clear drops every item in the session.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.items = nil
	s.index = make(map[string]int)
	return nil
}

// Size returns the current number of items (for debugging/monitoring).
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.items)
}
