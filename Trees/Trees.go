package Trees

import "fmt"

// Sorted is an ordered collection of distinct elements. Receivers that
// have a bool as a second return value indicate whether the first return
// value is defined; for example, calling Minimum on an empty collection
// returns (x T, false), and x shouldn't be used.
// The Try* navigation queries follow the same convention. Their
// counterparts without the Try prefix (Lower, Floor, Ceiling, Higher,
// Lowest, Highest) instead panic with a typed error when no qualifying
// element exists; they are meant for callers that have already
// established the element exists, and the panics signal programmer
// errors, not data-dependent conditions.
type Sorted[T any] interface {
	//Insert v. Returns true if successful, false if an equal element
	//was already present (in which case nothing changes).
	Insert(v T) bool
	//Remove v. Returns true if successful, false if no equal element
	//was present.
	Remove(v T) bool
	//Has reports whether an element equal to v is present.
	Has(v T) bool
	//Size of the collection.
	Size() uint
	//Minimum element.
	Minimum() (T, bool)
	//Maximum element.
	Maximum() (T, bool)
	//TryLower returns the greatest element strictly less than v.
	TryLower(v T) (T, bool)
	//TryFloor returns the greatest element less than or equal to v.
	TryFloor(v T) (T, bool)
	//TryCeiling returns the smallest element greater than or equal to v.
	TryCeiling(v T) (T, bool)
	//TryHigher returns the smallest element strictly greater than v.
	TryHigher(v T) (T, bool)
	//InOrder returns a closure acting like an iterator over the
	//ascending order of the collection: val, valid = f(). val is
	//meaningful only while valid is true, and valid can't turn true
	//after it first became false. The collection must not be modified
	//during the iteration.
	InOrder() func() (T, bool)
}

// EmptyTreeError is the panic value of the non-Try queries (Lower,
// Floor, Ceiling, Higher, Lowest, Highest) when the tree is empty.
type EmptyTreeError struct {
	Op string
}

func (e EmptyTreeError) Error() string {
	return "Trees: " + e.Op + " called on an empty tree"
}

// NoNeighborError is the panic value of the non-Try navigation queries
// when the tree is non-empty but holds no qualifying element.
type NoNeighborError[T any] struct {
	Op    string
	Value T
}

func (e NoNeighborError[T]) Error() string {
	return fmt.Sprintf("Trees: %s(%v): no such element", e.Op, e.Value)
}

// OrderViolationError is the panic value of Replace when the
// replacement value wouldn't sort in the old value's position.
type OrderViolationError[T any] struct {
	Old, New T
}

func (e OrderViolationError[T]) Error() string {
	return fmt.Sprintf("Trees: replacing %v with %v would break the ordering", e.Old, e.New)
}

// UnsortedSliceError is the panic value of From and FromFunc when the
// given slice isn't in strictly ascending order.
type UnsortedSliceError[T any] struct {
	Prev, Next T
}

func (e UnsortedSliceError[T]) Error() string {
	return fmt.Sprintf("Trees: slice not strictly ascending: %v before %v", e.Prev, e.Next)
}
