package Collections

import "cmp"

// Comparator is a three-way comparison over T: negative when a<b, zero
// when a==b, positive when a>b. The ordered collections in this module
// treat Comparator(a,b)==0 as equality, so a Comparator may ignore
// parts of T (Maps orders key-value pairs by key only this way).
type Comparator[T any] func(a, b T) int

// Natural returns the Comparator for the standard Go ordering of T.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a Comparator with the opposite ordering of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}
