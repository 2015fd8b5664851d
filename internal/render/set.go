package render

import (
	"slices"
	"sync"
)

// Set holds the pending directives. Duplicates (by Equal) are dropped and
// insertion order is kept, which is what breaks priority ties at render time.
// Every method is a single critical section.
type Set struct {
	mu    sync.Mutex
	items []Directive
}

func NewSet() *Set { return &Set{} }

func (s *Set) indexOf(d Directive) int {
	return slices.IndexFunc(s.items, d.Equal)
}

// Add inserts d unless an equal directive is present; it reports whether
// the set changed.
func (s *Set) Add(d Directive) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(d) >= 0 {
		return false
	}
	s.items = append(s.items, d)
	return true
}

// AddAll inserts every directive and returns how many were new.
func (s *Set) AddAll(ds ...Directive) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, d := range ds {
		if s.indexOf(d) < 0 {
			s.items = append(s.items, d)
			n++
		}
	}
	return n
}

// Clear empties the set and returns the number removed.
func (s *Set) Clear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.items)
	s.items = nil
	return n
}

func (s *Set) removeWhere(fn func(Directive) bool) int {
	n := len(s.items)
	s.items = slices.DeleteFunc(s.items, fn)
	return n - len(s.items)
}

// RemoveKind drops every directive of kind k.
func (s *Set) RemoveKind(k Kind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeWhere(func(d Directive) bool { return d.Kind == k })
}

// RemoveKindInOrder drops directives of kind k drawn in layer o.
func (s *Set) RemoveKindInOrder(k Kind, o Order) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeWhere(func(d Directive) bool { return d.Kind == k && d.Order == o })
}

// Replace swaps every directive of kind k in layer o for d, atomically.
// It reports whether the contents changed.
func (s *Set) Replace(k Kind, o Order, d Directive) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	match := func(x Directive) bool { return x.Kind == k && x.Order == o }
	var old []Directive
	for _, x := range s.items {
		if match(x) {
			old = append(old, x)
		}
	}
	if len(old) == 1 && old[0].Equal(d) {
		return false
	}
	s.removeWhere(match)
	if s.indexOf(d) < 0 {
		s.items = append(s.items, d)
	}
	return true
}

// RemoveAll drops each directive equal to one of ds.
func (s *Set) RemoveAll(ds ...Directive) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeWhere(func(x Directive) bool {
		return slices.IndexFunc(ds, x.Equal) >= 0
	})
}

// PurgeOneShot removes every directive flagged DestroyAfter.
func (s *Set) PurgeOneShot() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeWhere(func(d Directive) bool { return d.DestroyAfter })
}

// Snapshot returns a copy safe to read without the lock.
func (s *Set) Snapshot() []Directive {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
