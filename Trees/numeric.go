package Trees

import (
	"golang.org/x/exp/constraints"
)

// Number is any element type the distance helpers below can subtract.
type Number interface {
	constraints.Integer | constraints.Float
}

// Closest returns the element nearest to v, measuring plain numeric
// distance; an exact hit wins, and a tie between the two neighbors goes
// to the lower one. These helpers are thin wrappers over one Around
// query and assume the tree uses the natural ordering.
// Time: O(D).
func Closest[T Number](u *AVL[T], v T) (T, bool) {
	a := u.Around(v)
	if a.hasEqual {
		return a.equal, true
	}
	switch {
	case !a.hasLesser:
		return a.greater, a.hasGreater
	case !a.hasGreater:
		return a.lesser, true
	case v-a.lesser <= a.greater-v:
		return a.lesser, true
	default:
		return a.greater, true
	}
}

// ClosestLower returns the nearest element at or below v.
// Time: O(D).
func ClosestLower[T Number](u *AVL[T], v T) (T, bool) {
	return u.TryFloor(v)
}

// ClosestHigher returns the nearest element at or above v.
// Time: O(D).
func ClosestHigher[T Number](u *AVL[T], v T) (T, bool) {
	return u.TryCeiling(v)
}
