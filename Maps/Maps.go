package Maps

import "fmt"

// Entry is one key-value pair of a TreeMap. The ordered machinery
// compares entries by key only; Value is carried along and never
// inspected by a comparator, which is what makes overwriting the value
// of an existing key safe without any rebalancing.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is the basic, non-navigational key-value surface.
// Put overwrites silently; Remove of an absent key returns false rather
// than failing.
type Map[K, V any] interface {
	Put(K, V)
	Get(K) (V, bool)
	HasKey(K) bool
	Remove(K) bool
	Size() uint
	//Pairs returns a closure acting like an iterator in ascending key
	//order: k, v, valid = f(). The map must not be modified during the
	//iteration.
	Pairs() func() (K, V, bool)
}

// DuplicateKeyError is returned by the strict Add when the key is
// already present.
type DuplicateKeyError[K any] struct {
	Key K
}

func (e DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("Maps: key %v is already present", e.Key)
}
