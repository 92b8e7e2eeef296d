package HashSet

import (
	"github.com/nixill/collections/Sets"
)

// HashSet is an unordered set backed by a Go map. It trades the ordered
// queries of Trees.AVL for O(1) membership, and is the usual second
// operand for the tree's set-algebra operations.
// HashSet shouldn't be created directly using struct literal.
type HashSet[E comparable] struct {
	m map[E]struct{}
}

var _ Sets.Set[int] = (*HashSet[int])(nil)

// New HashSet with capacity for roughly size elements before growing.
func New[E comparable](size uint) *HashSet[E] {
	return &HashSet[E]{m: make(map[E]struct{}, size)}
}

// Of builds a HashSet holding the given elements; duplicates collapse.
func Of[E comparable](vs ...E) *HashSet[E] {
	u := New[E](uint(len(vs)))
	for _, v := range vs {
		u.m[v] = struct{}{}
	}
	return u
}

// Insert e. Returns false if e was already present.
func (u *HashSet[E]) Insert(e E) bool {
	if _, in := u.m[e]; in {
		return false
	}
	u.m[e] = struct{}{}
	return true
}

// Has e.
func (u *HashSet[E]) Has(e E) bool {
	_, in := u.m[e]
	return in
}

// Remove e. Returns false if e wasn't present.
func (u *HashSet[E]) Remove(e E) bool {
	if _, in := u.m[e]; !in {
		return false
	}
	delete(u.m, e)
	return true
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return uint(len(u.m))
}

// Range calls f on every element, in no particular order, until f
// returns false.
func (u *HashSet[E]) Range(f func(E) bool) {
	for e := range u.m {
		if !f(e) {
			return
		}
	}
}

// Items returns the elements as a slice, in no particular order.
func (u *HashSet[E]) Items() []E {
	all := make([]E, 0, len(u.m))
	for e := range u.m {
		all = append(all, e)
	}
	return all
}

// Clear removes every element, keeping the allocated capacity.
func (u *HashSet[E]) Clear() {
	clear(u.m)
}

// UnionWith inserts every element of o.
func (u *HashSet[E]) UnionWith(o Sets.Set[E]) {
	o.Range(func(e E) bool {
		u.m[e] = struct{}{}
		return true
	})
}

// IntersectWith drops every element not also in o.
func (u *HashSet[E]) IntersectWith(o Sets.Set[E]) {
	for e := range u.m {
		if !o.Has(e) {
			delete(u.m, e)
		}
	}
}

// ExceptWith drops every element that is in o.
func (u *HashSet[E]) ExceptWith(o Sets.Set[E]) {
	o.Range(func(e E) bool {
		delete(u.m, e)
		return true
	})
}
