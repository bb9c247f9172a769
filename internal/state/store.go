package state

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/five82/christoffel/internal/menu"
)

// Snapshot represents the menu as it was at one point in time.
type Snapshot struct {
	Dishes      []menu.Dish
	Version     uint64 // increments on every mutation
	LastUpdated time.Time
}

// Len returns the number of dishes in the snapshot.
func (s Snapshot) Len() int {
	return len(s.Dishes)
}

var nopLogger = zap.NewNop().Sugar()

// Store holds the canonical, ordered menu. The zero value is an empty menu.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	logger   *zap.SugaredLogger
}

// NewStore returns a store seeded with a copy of seed.
func NewStore(seed []menu.Dish, logger *zap.SugaredLogger) *Store {
	return &Store{
		snapshot: Snapshot{Dishes: cloneDishes(seed), LastUpdated: time.Now()},
		logger:   logger,
	}
}

// Append adds d to the end of the menu and returns the new sequence.
func (s *Store) Append(d menu.Dish) []menu.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]menu.Dish, 0, len(s.snapshot.Dishes)+1)
	next = append(next, s.snapshot.Dishes...)
	next = append(next, d.Clone())
	s.replace(next)

	s.log().Infow("dish added", "id", d.ID, "name", d.Name, "price", d.Price, "intensity", d.Intensity, "count", len(next))
	return cloneDishes(next)
}

// RemoveAt drops the dish at index and returns the new sequence. An index
// outside the menu removes nothing.
func (s *Store) RemoveAt(index int) []menu.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.snapshot.Dishes) {
		return cloneDishes(s.snapshot.Dishes)
	}
	removed := s.snapshot.Dishes[index]
	s.replace(without(s.snapshot.Dishes, index))

	s.log().Infow("dish removed", "id", removed.ID, "name", removed.Name, "index", index, "count", len(s.snapshot.Dishes))
	return cloneDishes(s.snapshot.Dishes)
}

// Remove drops the dish with the given ID. It reports false when no dish
// has that ID.
func (s *Store) Remove(id string) ([]menu.Dish, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.snapshot.Dishes {
		if d.ID != id {
			continue
		}
		s.replace(without(s.snapshot.Dishes, i))
		s.log().Infow("dish removed", "id", d.ID, "name", d.Name, "index", i, "count", len(s.snapshot.Dishes))
		return cloneDishes(s.snapshot.Dishes), true
	}
	return cloneDishes(s.snapshot.Dishes), false
}

// Snapshot returns a copy of the current menu.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Dishes = cloneDishes(s.snapshot.Dishes)
	return snap
}

func (s *Store) log() *zap.SugaredLogger {
	if s.logger == nil {
		return nopLogger
	}
	return s.logger
}

// replace must be called with mu held.
func (s *Store) replace(dishes []menu.Dish) {
	s.snapshot.Dishes = dishes
	s.snapshot.Version++
	s.snapshot.LastUpdated = time.Now()
}

func without(dishes []menu.Dish, index int) []menu.Dish {
	next := make([]menu.Dish, 0, len(dishes)-1)
	next = append(next, dishes[:index]...)
	return append(next, dishes[index+1:]...)
}

func cloneDishes(dishes []menu.Dish) []menu.Dish {
	if len(dishes) == 0 {
		return nil
	}
	dup := make([]menu.Dish, len(dishes))
	for i, d := range dishes {
		dup[i] = d.Clone()
	}
	return dup
}
