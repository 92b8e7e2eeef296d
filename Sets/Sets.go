package Sets

// Set is the minimal surface shared by the set-like collections in this
// module. Insert and Remove report whether the set changed; inserting an
// element that's already present and removing one that isn't are normal
// outcomes, not errors.
// Range calls f on every element until f returns false. Implementations
// with a defined order (Trees.AVL) range in ascending order; others range
// in no particular order. The set must not be modified during a Range.
type Set[E any] interface {
	Insert(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Range(func(E) bool)
}
