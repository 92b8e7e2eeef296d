package Trees

import (
	"slices"

	"github.com/nixill/collections/Sets"
)

var _ Sets.Set[int] = (*AVL[int])(nil)

// The set-algebra mutators below all work the same way: enumerate,
// combine or filter into a plain slice, then rebuild a fresh tree from
// it. The operand is any Sets.Set, regardless of its iteration order.

// rebuild replaces the tree's contents with vs, which may be unsorted
// and contain duplicates.
func (u *AVL[T]) rebuild(vs []T) {
	slices.SortFunc(vs, u.cmp)
	vs = slices.CompactFunc(vs, func(a, b T) bool { return u.cmp(a, b) == 0 })
	u.root, _ = build(vs)
	u.sz = uint(len(vs))
}

// UnionWith adds every element of o to the tree.
// Time: O((n+m) log(n+m)).
func (u *AVL[T]) UnionWith(o Sets.Set[T]) {
	all := u.Items()
	o.Range(func(v T) bool {
		all = append(all, v)
		return true
	})
	u.rebuild(all)
}

// IntersectWith keeps only the elements also present in o.
// Time: O(n log n) plus n lookups in o.
func (u *AVL[T]) IntersectWith(o Sets.Set[T]) {
	keep := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		if o.Has(v) {
			keep = append(keep, v)
		}
		return true
	})
	u.rebuild(keep)
}

// ExceptWith removes every element present in o.
// Time: O(n log n) plus n lookups in o.
func (u *AVL[T]) ExceptWith(o Sets.Set[T]) {
	keep := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		if !o.Has(v) {
			keep = append(keep, v)
		}
		return true
	})
	u.rebuild(keep)
}

// SymmetricExceptWith keeps the elements present in exactly one of the
// tree and o.
// Time: O((n+m) log(n+m)) plus cross lookups.
func (u *AVL[T]) SymmetricExceptWith(o Sets.Set[T]) {
	keep := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		if !o.Has(v) {
			keep = append(keep, v)
		}
		return true
	})
	o.Range(func(v T) bool {
		if !u.Has(v) {
			keep = append(keep, v)
		}
		return true
	})
	u.rebuild(keep)
}

// IsSubsetOf reports whether every element of the tree is in o.
func (u *AVL[T]) IsSubsetOf(o Sets.Set[T]) bool {
	if u.sz > o.Size() {
		return false
	}
	all := true
	u.Range(func(v T) bool {
		all = o.Has(v)
		return all
	})
	return all
}

// IsSupersetOf reports whether every element of o is in the tree.
func (u *AVL[T]) IsSupersetOf(o Sets.Set[T]) bool {
	if o.Size() > u.sz {
		return false
	}
	all := true
	o.Range(func(v T) bool {
		all = u.Has(v)
		return all
	})
	return all
}

// IsProperSubsetOf reports whether the tree is a subset of o and o holds
// at least one extra element.
func (u *AVL[T]) IsProperSubsetOf(o Sets.Set[T]) bool {
	return u.sz < o.Size() && u.IsSubsetOf(o)
}

// IsProperSupersetOf reports whether the tree is a superset of o with at
// least one extra element.
func (u *AVL[T]) IsProperSupersetOf(o Sets.Set[T]) bool {
	return o.Size() < u.sz && u.IsSupersetOf(o)
}

// Overlaps reports whether the tree and o share at least one element.
func (u *AVL[T]) Overlaps(o Sets.Set[T]) bool {
	found := false
	u.Range(func(v T) bool {
		found = o.Has(v)
		return !found
	})
	return found
}

// SetEquals reports whether the tree and o hold exactly the same
// elements.
func (u *AVL[T]) SetEquals(o Sets.Set[T]) bool {
	return u.sz == o.Size() && u.IsSubsetOf(o)
}
