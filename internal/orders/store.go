// =============================================================================
// EventAlytics - Current Document Store
// =============================================================================
//
// The store holds the one "current parsed document" slot shared between the
// input side (a new export replacing the data) and the presentation side.
// The slot is replaced wholesale, never mutated field by field, so a reader
// always observes one complete, consistent order collection.
//
// Replacement is last-write-wins by ticket: a caller takes a ticket before
// starting a parse and commits with it afterwards. A commit whose ticket is
// older than the last committed one is discarded, so a slow parse of an old
// input can never clobber the result of a newer one.
//
// =============================================================================

package orders

import (
	"sync"
)

// Store is the mutex-guarded current-document slot.
type Store struct {
	mu        sync.RWMutex
	orders    []Order
	committed uint64
	issued    uint64
}

// NewStore creates an empty store. Current returns an empty collection
// until the first commit.
func NewStore() *Store {
	return &Store{}
}

// Ticket reserves a replacement slot. Tickets are strictly increasing.
func (s *Store) Ticket() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Commit installs a new order collection for the given ticket. It reports
// whether the commit was applied; a commit loses only to a newer one.
func (s *Store) Commit(ticket uint64, orders []Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket <= s.committed {
		return false
	}
	s.committed = ticket
	s.orders = orders
	return true
}

// Replace installs a new order collection unconditionally, taking and
// committing a fresh ticket in one step.
func (s *Store) Replace(orders []Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.committed = s.issued
	s.orders = orders
}

// Current returns the current order collection. The returned slice is the
// committed snapshot; callers must not mutate it.
func (s *Store) Current() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders
}
