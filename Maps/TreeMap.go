package Maps

import (
	"cmp"

	Collections "github.com/nixill/collections"
	"github.com/nixill/collections/Trees"
)

// TreeMap is a key-ordered map built on one Trees.AVL of entries with a
// key-only comparator, rather than on a second balancing implementation.
// Every navigation query is a single boundary search on the backing
// tree using a probe entry whose value part is the zero value; the
// comparator never looks at it.
// Like the backing tree, a TreeMap is not safe for concurrent mutation.
// TreeMap shouldn't be created directly using struct literal.
type TreeMap[K, V any] struct {
	t   *Trees.AVL[Entry[K, V]]
	cmp Collections.Comparator[K]
}

var _ Map[int, int] = (*TreeMap[int, int])(nil)

// New returns an empty TreeMap over the natural ordering of K.
func New[K cmp.Ordered, V any]() *TreeMap[K, V] {
	return NewFunc[K, V](Collections.Natural[K]())
}

// NewFunc returns an empty TreeMap with keys ordered by cmp. Panics if
// cmp is nil.
func NewFunc[K, V any](cmp Collections.Comparator[K]) *TreeMap[K, V] {
	if cmp == nil {
		panic("Maps: NewFunc called with a nil comparator")
	}
	return &TreeMap[K, V]{
		t: Trees.NewFunc[Entry[K, V]](func(a, b Entry[K, V]) int {
			return cmp(a.Key, b.Key)
		}),
		cmp: cmp,
	}
}

// probe wraps a key for querying the backing tree. The zero Value is
// never compared.
func (u *TreeMap[K, V]) probe(k K) Entry[K, V] {
	return Entry[K, V]{Key: k}
}

// Put the pair (k, v), overwriting the value of an existing k. The
// overwrite mutates the stored entry's value in place: the key, the only
// thing the comparator sees, is unchanged, so the ordering can't be
// disturbed and no Replace-style neighbor check is needed.
// Time: O(D).
func (u *TreeMap[K, V]) Put(k K, v V) {
	if p := u.t.Get(u.probe(k)); p != nil {
		p.Value = v
		return
	}
	u.t.Insert(Entry[K, V]{k, v})
}

// Add the pair (k, v) strictly: unlike Put, an existing k causes a
// DuplicateKeyError and no mutation.
// Time: O(D).
func (u *TreeMap[K, V]) Add(k K, v V) error {
	if !u.t.Insert(Entry[K, V]{k, v}) {
		return DuplicateKeyError[K]{k}
	}
	return nil
}

// Get the value stored under k.
// Time: O(D).
func (u *TreeMap[K, V]) Get(k K) (V, bool) {
	if p := u.t.Get(u.probe(k)); p != nil {
		return p.Value, true
	}
	return *new(V), false
}

// GetOrDefault returns the value stored under k, or def when k is
// absent.
func (u *TreeMap[K, V]) GetOrDefault(k K, def V) V {
	if v, in := u.Get(k); in {
		return v
	}
	return def
}

// HasKey reports whether k is present.
// Time: O(D).
func (u *TreeMap[K, V]) HasKey(k K) bool {
	return u.t.Has(u.probe(k))
}

// Remove the entry under k. Returns false if k wasn't present.
// Time: O(D).
func (u *TreeMap[K, V]) Remove(k K) bool {
	return u.t.Remove(u.probe(k))
}

// Size of the map.
// Time: O(1).
func (u *TreeMap[K, V]) Size() uint {
	return u.t.Size()
}

// Clear the map.
// Time: O(1).
func (u *TreeMap[K, V]) Clear() {
	u.t.Clear()
}

// Pairs [Map.Pairs].
func (u *TreeMap[K, V]) Pairs() func() (K, V, bool) {
	next := u.t.InOrder()
	return func() (K, V, bool) {
		e, ok := next()
		return e.Key, e.Value, ok
	}
}

// Entries returns the entries in ascending key order.
// Time: O(n).
func (u *TreeMap[K, V]) Entries() []Entry[K, V] {
	return u.t.Items()
}

// Keys returns the ordered read-through view of the map's keys.
func (u *TreeMap[K, V]) Keys() KeySet[K, V] {
	return KeySet[K, V]{u}
}

// LowestEntry returns the entry with the smallest key; panics with
// Trees.EmptyTreeError if the map is empty. TryLowestEntry is the
// non-panicking form.
func (u *TreeMap[K, V]) LowestEntry() Entry[K, V] {
	return u.t.Lowest()
}

// HighestEntry returns the entry with the greatest key; panics with
// Trees.EmptyTreeError if the map is empty.
func (u *TreeMap[K, V]) HighestEntry() Entry[K, V] {
	return u.t.Highest()
}

// TryLowestEntry returns the entry with the smallest key.
func (u *TreeMap[K, V]) TryLowestEntry() (Entry[K, V], bool) {
	return u.t.Minimum()
}

// TryHighestEntry returns the entry with the greatest key.
func (u *TreeMap[K, V]) TryHighestEntry() (Entry[K, V], bool) {
	return u.t.Maximum()
}

// LowestKey returns the smallest key; panics if the map is empty.
func (u *TreeMap[K, V]) LowestKey() K {
	return u.t.Lowest().Key
}

// HighestKey returns the greatest key; panics if the map is empty.
func (u *TreeMap[K, V]) HighestKey() K {
	return u.t.Highest().Key
}

// TryLowestKey returns the smallest key.
func (u *TreeMap[K, V]) TryLowestKey() (K, bool) {
	e, ok := u.t.Minimum()
	return e.Key, ok
}

// TryHighestKey returns the greatest key.
func (u *TreeMap[K, V]) TryHighestKey() (K, bool) {
	e, ok := u.t.Maximum()
	return e.Key, ok
}

// The navigation families below delegate to the backing tree's boundary
// search and differ only in which side of the triplet they read and
// whether an exact key hit qualifies.

// TryLowerEntry returns the entry with the greatest key strictly below k.
func (u *TreeMap[K, V]) TryLowerEntry(k K) (Entry[K, V], bool) {
	return u.t.TryLower(u.probe(k))
}

// TryFloorEntry returns the entry with the greatest key at or below k.
func (u *TreeMap[K, V]) TryFloorEntry(k K) (Entry[K, V], bool) {
	return u.t.TryFloor(u.probe(k))
}

// TryCeilingEntry returns the entry with the smallest key at or above k.
func (u *TreeMap[K, V]) TryCeilingEntry(k K) (Entry[K, V], bool) {
	return u.t.TryCeiling(u.probe(k))
}

// TryHigherEntry returns the entry with the smallest key strictly above k.
func (u *TreeMap[K, V]) TryHigherEntry(k K) (Entry[K, V], bool) {
	return u.t.TryHigher(u.probe(k))
}

// LowerEntry is TryLowerEntry for callers that know a qualifying entry
// exists; panics with a Trees error otherwise.
func (u *TreeMap[K, V]) LowerEntry(k K) Entry[K, V] {
	return u.t.Lower(u.probe(k))
}

// FloorEntry is TryFloorEntry for callers that know a qualifying entry
// exists; panics otherwise.
func (u *TreeMap[K, V]) FloorEntry(k K) Entry[K, V] {
	return u.t.Floor(u.probe(k))
}

// CeilingEntry is TryCeilingEntry for callers that know a qualifying
// entry exists; panics otherwise.
func (u *TreeMap[K, V]) CeilingEntry(k K) Entry[K, V] {
	return u.t.Ceiling(u.probe(k))
}

// HigherEntry is TryHigherEntry for callers that know a qualifying entry
// exists; panics otherwise.
func (u *TreeMap[K, V]) HigherEntry(k K) Entry[K, V] {
	return u.t.Higher(u.probe(k))
}

// TryLowerKey returns the greatest key strictly below k.
func (u *TreeMap[K, V]) TryLowerKey(k K) (K, bool) {
	e, ok := u.TryLowerEntry(k)
	return e.Key, ok
}

// TryFloorKey returns the greatest key at or below k.
func (u *TreeMap[K, V]) TryFloorKey(k K) (K, bool) {
	e, ok := u.TryFloorEntry(k)
	return e.Key, ok
}

// TryCeilingKey returns the smallest key at or above k.
func (u *TreeMap[K, V]) TryCeilingKey(k K) (K, bool) {
	e, ok := u.TryCeilingEntry(k)
	return e.Key, ok
}

// TryHigherKey returns the smallest key strictly above k.
func (u *TreeMap[K, V]) TryHigherKey(k K) (K, bool) {
	e, ok := u.TryHigherEntry(k)
	return e.Key, ok
}

// LowerKey is TryLowerKey's panicking form.
func (u *TreeMap[K, V]) LowerKey(k K) K {
	return u.LowerEntry(k).Key
}

// FloorKey is TryFloorKey's panicking form.
func (u *TreeMap[K, V]) FloorKey(k K) K {
	return u.FloorEntry(k).Key
}

// CeilingKey is TryCeilingKey's panicking form.
func (u *TreeMap[K, V]) CeilingKey(k K) K {
	return u.CeilingEntry(k).Key
}

// HigherKey is TryHigherKey's panicking form.
func (u *TreeMap[K, V]) HigherKey(k K) K {
	return u.HigherEntry(k).Key
}
