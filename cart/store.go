package cart

import (
	"sync"
	"time"
)

// Store hands out one Cart per session. Carts live for the process
// lifetime; idle ones are swept so abandoned sessions do not pile up.
type Store struct {
	mu      sync.RWMutex
	carts   map[string]*entry
	maxIdle time.Duration
}

type entry struct {
	cart     *Cart
	lastSeen time.Time
}

const defaultMaxIdle = 24 * time.Hour

func NewStore() *Store {
	return &Store{
		carts:   make(map[string]*entry),
		maxIdle: defaultMaxIdle,
	}
}

// Get returns the cart for the session, creating one on first use.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.RLock()
	e, ok := s.carts[sessionID]
	s.mu.RUnlock()
	if ok {
		s.mu.Lock()
		e.lastSeen = time.Now()
		s.mu.Unlock()
		return e.cart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// re-check, another request may have created it
	if e, ok := s.carts[sessionID]; ok {
		e.lastSeen = time.Now()
		return e.cart
	}
	e = &entry{cart: New(), lastSeen: time.Now()}
	s.carts[sessionID] = e
	return e.cart
}

// Drop removes a session's cart (used after logout).
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Sweep removes carts idle longer than maxIdle and returns how many went.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-s.maxIdle)
	for id, e := range s.carts {
		if e.lastSeen.Before(cutoff) {
			delete(s.carts, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on the given interval until stop is closed.
func (s *Store) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
