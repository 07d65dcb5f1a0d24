package console

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/patrickmn/go-cache"

	"github.com/katalvlaran/ratinterp/matrix"
)

// DefaultNamePrefix is the prefix of automatically assigned names (p1, p2, …).
const DefaultNamePrefix = "p"

// Store maps names to coefficient vectors. Entries never expire.
//
// Vectors are copied on the way in and on the way out, so callers may keep
// mutating what they passed or received. Store is safe for concurrent use.
type Store struct {
	mu     sync.Mutex // serializes writers against compound operations
	items  *cache.Cache
	prefix string
	next   uint64 // counter behind the next automatic name
}

// NewStore returns an empty store whose automatic names start with prefix.
// An empty prefix falls back to DefaultNamePrefix.
func NewStore(prefix string) *Store {
	if prefix == "" {
		prefix = DefaultNamePrefix
	}

	return &Store{
		items:  cache.New(cache.NoExpiration, 0), // no janitor goroutine
		prefix: prefix,
		next:   1,
	}
}

// Set stores a copy of v under name, replacing any previous entry.
func (s *Store) Set(name string, v matrix.Vector) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items.Set(name, v.Clone(), cache.NoExpiration)
}

// Get returns a copy of the vector stored under name.
func (s *Store) Get(name string) (matrix.Vector, bool) {
	x, ok := s.items.Get(name)
	if !ok {
		return nil, false
	}

	return x.(matrix.Vector).Clone(), true
}

// Save stores a copy of v under the next free automatic name and returns it.
// Names already taken (e.g. by an explicit add) are skipped, never overwritten.
func (s *Store) Save(v matrix.Vector) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := v.Clone()
	for {
		name := s.prefix + strconv.FormatUint(s.next, 10)
		s.next++
		if s.items.Add(name, cp, cache.NoExpiration) == nil {
			return name
		}
	}
}

// Rename moves the entry old to name neu, replacing anything stored under neu.
// It returns the moved vector.
func (s *Store) Rename(old, neu string) (matrix.Vector, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	x, ok := s.items.Get(old)
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownName, old)
	}
	s.items.Delete(old)
	s.items.Set(neu, x, cache.NoExpiration)

	return x.(matrix.Vector).Clone(), nil
}

// Remove deletes name from the store.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items.Get(name); !ok {
		return fmt.Errorf("%w '%s'", ErrUnknownName, name)
	}
	s.items.Delete(name)

	return nil
}

// Names returns all stored names in ascending order.
func (s *Store) Names() []string {
	items := s.items.Items()
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of stored vectors.
func (s *Store) Len() int { return s.items.ItemCount() }
