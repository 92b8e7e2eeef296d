package Maps

// KeySet is a read-through view of a TreeMap's keys as an ordered set.
// It holds no storage of its own; every call forwards to the backing
// map and projects entries to their keys, so it always reflects the
// map's current state and is only valid while the map exists. The view
// is read-only: mutate through the TreeMap.
type KeySet[K, V any] struct {
	m *TreeMap[K, V]
}

// Size of the backing map.
func (s KeySet[K, V]) Size() uint {
	return s.m.Size()
}

// Has reports whether k is a key of the backing map.
func (s KeySet[K, V]) Has(k K) bool {
	return s.m.HasKey(k)
}

// Range calls f on every key in ascending order until f returns false.
func (s KeySet[K, V]) Range(f func(K) bool) {
	s.m.t.Range(func(e Entry[K, V]) bool {
		return f(e.Key)
	})
}

// InOrder returns a closure iterating the keys in ascending order:
// k, valid = f(). The map must not be modified during the iteration.
func (s KeySet[K, V]) InOrder() func() (K, bool) {
	next := s.m.t.InOrder()
	return func() (K, bool) {
		e, ok := next()
		return e.Key, ok
	}
}

// Items returns the keys in ascending order.
func (s KeySet[K, V]) Items() []K {
	all := make([]K, 0, s.m.Size())
	s.Range(func(k K) bool {
		all = append(all, k)
		return true
	})
	return all
}

// Minimum key of the backing map.
func (s KeySet[K, V]) Minimum() (K, bool) {
	return s.m.TryLowestKey()
}

// Maximum key of the backing map.
func (s KeySet[K, V]) Maximum() (K, bool) {
	return s.m.TryHighestKey()
}

// Lowest is Minimum's panicking form.
func (s KeySet[K, V]) Lowest() K {
	return s.m.LowestKey()
}

// Highest is Maximum's panicking form.
func (s KeySet[K, V]) Highest() K {
	return s.m.HighestKey()
}

// TryLower returns the greatest key strictly below k.
func (s KeySet[K, V]) TryLower(k K) (K, bool) {
	return s.m.TryLowerKey(k)
}

// TryFloor returns the greatest key at or below k.
func (s KeySet[K, V]) TryFloor(k K) (K, bool) {
	return s.m.TryFloorKey(k)
}

// TryCeiling returns the smallest key at or above k.
func (s KeySet[K, V]) TryCeiling(k K) (K, bool) {
	return s.m.TryCeilingKey(k)
}

// TryHigher returns the smallest key strictly above k.
func (s KeySet[K, V]) TryHigher(k K) (K, bool) {
	return s.m.TryHigherKey(k)
}

// Lower is TryLower's panicking form.
func (s KeySet[K, V]) Lower(k K) K {
	return s.m.LowerKey(k)
}

// Floor is TryFloor's panicking form.
func (s KeySet[K, V]) Floor(k K) K {
	return s.m.FloorKey(k)
}

// Ceiling is TryCeiling's panicking form.
func (s KeySet[K, V]) Ceiling(k K) K {
	return s.m.CeilingKey(k)
}

// Higher is TryHigher's panicking form.
func (s KeySet[K, V]) Higher(k K) K {
	return s.m.HigherKey(k)
}
