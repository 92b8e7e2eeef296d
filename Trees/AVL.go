package Trees

import (
	"cmp"

	Collections "github.com/nixill/collections"
)

// node in an AVL tree. b is the balance factor, height(r)-height(l); it
// is one of -1, 0, +1 whenever a public call is not in progress, and
// reaches ±2 only transiently between a child changing height and the
// rotation that corrects it. There is no parent pointer: every upward
// adjustment happens through the *node[T] child slot that a recursive
// call received by reference.
type node[T any] struct {
	v    T
	l, r *node[T]
	b    int8
}

// AVL is a self-balancing binary search tree holding no repeated
// elements, ordered by a comparator fixed at construction. Equality is
// comparator(a,b)==0, so a comparator may consider structurally
// different values equal for ordering purposes.
// The worst case height is 1.44*log2(n+2), so the height D of the tree
// is O(log n). A tree is not safe for concurrent mutation; read-only
// use from multiple goroutines is fine.
// AVL shouldn't be created directly using struct literal.
type AVL[T any] struct {
	root *node[T]
	cmp  Collections.Comparator[T]
	sz   uint
}

var _ Sorted[int] = (*AVL[int])(nil)

// New returns an empty AVL tree over the natural ordering of T.
func New[T cmp.Ordered]() *AVL[T] {
	return &AVL[T]{cmp: Collections.Natural[T]()}
}

// NewFunc returns an empty AVL tree ordered by cmp. Panics if cmp is
// nil: a tree without an ordering is unusable.
func NewFunc[T any](cmp Collections.Comparator[T]) *AVL[T] {
	if cmp == nil {
		panic("Trees: NewFunc called with a nil comparator")
	}
	return &AVL[T]{cmp: cmp}
}

// From builds an AVL tree from a slice sorted in strictly ascending
// natural order. This is faster than repeated Insert. Panics with
// UnsortedSliceError if the slice breaks that condition.
// Time: O(n).
func From[T cmp.Ordered](sli []T) *AVL[T] {
	return FromFunc(sli, Collections.Natural[T]())
}

// FromFunc is the comparator version of From.
func FromFunc[T any](sli []T, cmp Collections.Comparator[T]) *AVL[T] {
	if cmp == nil {
		panic("Trees: FromFunc called with a nil comparator")
	}
	for i := 1; i < len(sli); i++ {
		if cmp(sli[i-1], sli[i]) >= 0 {
			panic(UnsortedSliceError[T]{sli[i-1], sli[i]})
		}
	}
	u := &AVL[T]{cmp: cmp, sz: uint(len(sli))}
	u.root, _ = build(sli)
	return u
}

// build assembles a balanced subtree from a sorted slice and reports its
// height.
func build[T any](s []T) (*node[T], int) {
	if len(s) == 0 {
		return nil, 0
	}
	mid := len(s) >> 1
	l, hl := build(s[:mid])
	r, hr := build(s[mid+1:])
	return &node[T]{v: s[mid], l: l, r: r, b: int8(hr - hl)}, max(hl, hr) + 1
}

// Size of the tree.
// Time: O(1).
func (u *AVL[T]) Size() uint {
	return u.sz
}

// Clear the tree.
// Time: O(1).
func (u *AVL[T]) Clear() {
	u.root, u.sz = nil, 0
}

// rotateLeft promotes the right child of the node in slot cur to take
// its place; the node becomes the promoted child's left child, and the
// promoted child's former left subtree becomes the node's right subtree.
// Balance factors are the caller's responsibility: every rebalancing
// case knows the factors from the pre-rotation state and never remeasures
// subtree heights.
func rotateLeft[T any](cur **node[T]) {
	p := *cur
	p1 := p.r
	p.r = p1.l
	p1.l = p
	*cur = p1
}

// rotateRight is the mirror image of rotateLeft.
func rotateRight[T any](cur **node[T]) {
	p := *cur
	p1 := p.l
	p.l = p1.r
	p1.r = p
	*cur = p1
}

// rotateLeftRight resolves a left-heavy node whose left child is
// right-heavy: rotate the left child left, then the node right. The
// three balance factors afterwards depend only on the inner node's
// balance saved before the first rotation.
func rotateLeftRight[T any](cur **node[T]) {
	p := *cur
	p1 := p.l
	b := p1.r.b
	rotateLeft(&p.l)
	rotateRight(cur)
	if b == -1 {
		p.b = 1
	} else {
		p.b = 0
	}
	if b == 1 {
		p1.b = -1
	} else {
		p1.b = 0
	}
	(*cur).b = 0
}

// rotateRightLeft is the mirror image of rotateLeftRight.
func rotateRightLeft[T any](cur **node[T]) {
	p := *cur
	p1 := p.r
	b := p1.l.b
	rotateRight(&p.r)
	rotateLeft(cur)
	if b == 1 {
		p.b = -1
	} else {
		p.b = 0
	}
	if b == -1 {
		p1.b = 1
	} else {
		p1.b = 0
	}
	(*cur).b = 0
}

// Insert [Sorted.Insert]. Recursive.
// Time: O(D).
func (u *AVL[T]) Insert(v T) bool {
	added, _ := u.insert(&u.root, v)
	if added {
		u.sz++
	}
	return added
}

// insert v below the child slot cur. grew reports whether the subtree
// height increased; it turns false as soon as some ancestor's balance
// absorbs the growth or a rotation fires, since a rotation after insert
// always restores the old subtree height.
func (u *AVL[T]) insert(cur **node[T], v T) (added, grew bool) {
	p := *cur
	if p == nil {
		*cur = &node[T]{v: v}
		return true, true
	}
	switch c := u.cmp(v, p.v); {
	case c < 0:
		if added, grew = u.insert(&p.l, v); grew {
			switch p.b {
			case 1:
				p.b, grew = 0, false
			case 0:
				p.b = -1
			default: // left branch would reach height difference 2
				if p1 := p.l; p1.b == -1 {
					rotateRight(cur)
					p.b, p1.b = 0, 0
				} else {
					rotateLeftRight(cur)
				}
				grew = false
			}
		}
	case c > 0:
		if added, grew = u.insert(&p.r, v); grew {
			switch p.b {
			case -1:
				p.b, grew = 0, false
			case 0:
				p.b = 1
			default: // right branch would reach height difference 2
				if p1 := p.r; p1.b == 1 {
					rotateLeft(cur)
					p.b, p1.b = 0, 0
				} else {
					rotateRightLeft(cur)
				}
				grew = false
			}
		}
	}
	return
}

// balanceLeft restores the node in slot cur after its left branch shrank
// by one. Returns whether the subtree rooted at the slot shrank as well.
// Unlike the insert side, a rotation here doesn't always stop the shrink
// from propagating: when the right child's balance was exactly 0 the
// single rotation keeps the overall height, but in every other rebalance
// case the height comes down by one and the caller must keep unwinding.
func balanceLeft[T any](cur **node[T]) bool {
	p := *cur
	switch p.b {
	case -1:
		p.b = 0
		return true
	case 0:
		p.b = 1
		return false
	}
	// right branch is now 2 higher
	p1 := p.r
	if p1.b >= 0 {
		rotateLeft(cur)
		if p1.b == 0 {
			p.b, p1.b = 1, -1
			return false
		}
		p.b, p1.b = 0, 0
		return true
	}
	rotateRightLeft(cur)
	return true
}

// balanceRight is the mirror image of balanceLeft.
func balanceRight[T any](cur **node[T]) bool {
	p := *cur
	switch p.b {
	case 1:
		p.b = 0
		return true
	case 0:
		p.b = -1
		return false
	}
	// left branch is now 2 higher
	p1 := p.l
	if p1.b <= 0 {
		rotateRight(cur)
		if p1.b == 0 {
			p.b, p1.b = -1, 1
			return false
		}
		p.b, p1.b = 0, 0
		return true
	}
	rotateLeftRight(cur)
	return true
}

// Remove [Sorted.Remove]. Recursive.
// Time: O(D).
func (u *AVL[T]) Remove(v T) bool {
	removed, _ := u.remove(&u.root, v)
	if removed {
		u.sz--
	}
	return removed
}

// remove v below the child slot cur. shrunk reports whether the subtree
// height decreased.
func (u *AVL[T]) remove(cur **node[T], v T) (removed, shrunk bool) {
	p := *cur
	if p == nil {
		return false, false
	}
	switch c := u.cmp(v, p.v); {
	case c < 0:
		if removed, shrunk = u.remove(&p.l, v); shrunk {
			shrunk = balanceLeft(cur)
		}
	case c > 0:
		if removed, shrunk = u.remove(&p.r, v); shrunk {
			shrunk = balanceRight(cur)
		}
	default:
		removed = true
		if p.l == nil {
			*cur, shrunk = p.r, true
		} else if p.r == nil {
			*cur, shrunk = p.l, true
		} else {
			// two children: pull up the in-order successor's value and
			// unlink its old node, which has at most a right child.
			if p.v, shrunk = removeMin(&p.r); shrunk {
				shrunk = balanceRight(cur)
			}
		}
	}
	return
}

// removeMin unlinks the smallest node below the child slot cur, which
// must not be empty, returning its value and whether the subtree shrank.
func removeMin[T any](cur **node[T]) (T, bool) {
	p := *cur
	if p.l == nil {
		*cur = p.r
		return p.v, true
	}
	v, shrunk := removeMin(&p.l)
	if shrunk {
		shrunk = balanceLeft(cur)
	}
	return v, shrunk
}

// removeMax is the mirror image of removeMin.
func removeMax[T any](cur **node[T]) (T, bool) {
	p := *cur
	if p.r == nil {
		*cur = p.l
		return p.v, true
	}
	v, shrunk := removeMax(&p.r)
	if shrunk {
		shrunk = balanceRight(cur)
	}
	return v, shrunk
}

// RemoveMin deletes and returns the smallest element.
// Time: O(D).
func (u *AVL[T]) RemoveMin() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	v, _ := removeMin(&u.root)
	u.sz--
	return v, true
}

// RemoveMax deletes and returns the greatest element.
// Time: O(D).
func (u *AVL[T]) RemoveMax() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	v, _ := removeMax(&u.root)
	u.sz--
	return v, true
}

// Has [Sorted.Has].
// Time: O(D); Space: O(1).
func (u *AVL[T]) Has(v T) bool {
	return u.Get(v) != nil
}

// Get the pointer to the stored element that compares equal to v, or nil
// if there is none. The pointed-to value may be mutated only in ways the
// comparator is blind to (Maps overwrites a pair's value through this);
// changing how it sorts corrupts the tree; use Replace for that.
// Time: O(D); Space: O(1).
func (u *AVL[T]) Get(v T) *T {
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return &cur.v
		}
	}
	return nil
}

// Replace the stored element equal to old with new, in place and without
// rebalancing. new must sort strictly between old's current neighbors;
// if it wouldn't, Replace panics with OrderViolationError, since
// swapping it in would silently corrupt the tree. Returns false if old
// isn't present.
// Time: O(D).
func (u *AVL[T]) Replace(old, new T) bool {
	p := u.Get(old)
	if p == nil {
		return false
	}
	a := u.Around(old)
	if l, ok := a.Lesser(); ok && u.cmp(new, l) <= 0 {
		panic(OrderViolationError[T]{old, new})
	}
	if g, ok := a.Greater(); ok && u.cmp(new, g) >= 0 {
		panic(OrderViolationError[T]{old, new})
	}
	*p = new
	return true
}

// Minimum [Sorted.Minimum].
// Time: O(D); Space: O(1).
func (u *AVL[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	cur := u.root
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Sorted.Maximum].
// Time: O(D); Space: O(1).
func (u *AVL[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	cur := u.root
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// Lowest is Minimum for callers that know the tree isn't empty; panics
// with EmptyTreeError otherwise.
func (u *AVL[T]) Lowest() T {
	v, ok := u.Minimum()
	if !ok {
		panic(EmptyTreeError{"Lowest"})
	}
	return v
}

// Highest is Maximum for callers that know the tree isn't empty; panics
// with EmptyTreeError otherwise.
func (u *AVL[T]) Highest() T {
	v, ok := u.Maximum()
	if !ok {
		panic(EmptyTreeError{"Highest"})
	}
	return v
}

// InOrder [Sorted.InOrder].
// Time: f(): amortized O(1) per call; Space: O(D).
func (u *AVL[T]) InOrder() func() (T, bool) {
	var st []*node[T]
	for c := u.root; c != nil; c = c.l {
		st = append(st, c)
	}
	return func() (T, bool) {
		if len(st) == 0 {
			return *new(T), false
		}
		p := st[len(st)-1]
		st = st[:len(st)-1]
		for c := p.r; c != nil; c = c.l {
			st = append(st, c)
		}
		return p.v, true
	}
}

// Range calls f on every element in ascending order until f returns
// false. The tree must not be modified during the call.
// Time: O(n).
func (u *AVL[T]) Range(f func(T) bool) {
	var walk func(*node[T]) bool
	walk = func(p *node[T]) bool {
		if p == nil {
			return true
		}
		return walk(p.l) && f(p.v) && walk(p.r)
	}
	walk(u.root)
}

// Items returns the elements in ascending order.
// Time: O(n).
func (u *AVL[T]) Items() []T {
	all := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		all = append(all, v)
		return true
	})
	return all
}
