package Trees

// Triplet is the result of one boundary search around a query value: the
// greatest element strictly below it, the element equal to it, and the
// smallest element strictly above it, each of which may be absent. A
// Triplet holds copies of the matched values, not links into the tree,
// so it stays valid across later mutations (describing the tree as it
// was at query time).
type Triplet[T any] struct {
	lesser, equal, greater          T
	hasLesser, hasEqual, hasGreater bool
}

// Lesser returns the greatest element strictly below the query.
func (a Triplet[T]) Lesser() (T, bool) {
	return a.lesser, a.hasLesser
}

// Equal returns the element equal to the query.
func (a Triplet[T]) Equal() (T, bool) {
	return a.equal, a.hasEqual
}

// Greater returns the smallest element strictly above the query.
func (a Triplet[T]) Greater() (T, bool) {
	return a.greater, a.hasGreater
}

// Around performs the one boundary search every navigation query reads
// from: a single descent from the root, narrowing the lesser and greater
// candidates at each step. On an equal hit the predecessor and successor
// are found by walking straight down the hit node's subtrees (rightmost
// of the left child, leftmost of the right child), never back up.
// v itself need not be an element.
// Time: O(D); Space: O(1).
func (u *AVL[T]) Around(v T) Triplet[T] {
	var a Triplet[T]
	for cur := u.root; cur != nil; {
		c := u.cmp(v, cur.v)
		if c == 0 {
			a.equal, a.hasEqual = cur.v, true
			if p := cur.l; p != nil {
				for p.r != nil {
					p = p.r
				}
				a.lesser, a.hasLesser = p.v, true
			}
			if s := cur.r; s != nil {
				for s.l != nil {
					s = s.l
				}
				a.greater, a.hasGreater = s.v, true
			}
			break
		}
		if c < 0 {
			a.greater, a.hasGreater = cur.v, true
			cur = cur.l
		} else {
			a.lesser, a.hasLesser = cur.v, true
			cur = cur.r
		}
	}
	return a
}

// TryLower returns the greatest element strictly less than v.
// Time: O(D).
func (u *AVL[T]) TryLower(v T) (T, bool) {
	a := u.Around(v)
	return a.lesser, a.hasLesser
}

// TryFloor returns the greatest element less than or equal to v.
// Time: O(D).
func (u *AVL[T]) TryFloor(v T) (T, bool) {
	a := u.Around(v)
	if a.hasEqual {
		return a.equal, true
	}
	return a.lesser, a.hasLesser
}

// TryCeiling returns the smallest element greater than or equal to v.
// Time: O(D).
func (u *AVL[T]) TryCeiling(v T) (T, bool) {
	a := u.Around(v)
	if a.hasEqual {
		return a.equal, true
	}
	return a.greater, a.hasGreater
}

// TryHigher returns the smallest element strictly greater than v.
// Time: O(D).
func (u *AVL[T]) TryHigher(v T) (T, bool) {
	a := u.Around(v)
	return a.greater, a.hasGreater
}

// must converts a failed Try query into the panic the non-Try forms
// promise: EmptyTreeError when there was nothing to search,
// NoNeighborError when the tree simply holds no qualifying element.
func (u *AVL[T]) must(op string, v, r T, ok bool) T {
	if !ok {
		if u.root == nil {
			panic(EmptyTreeError{op})
		}
		panic(NoNeighborError[T]{op, v})
	}
	return r
}

// Lower is TryLower for callers that know a qualifying element exists;
// panics otherwise.
func (u *AVL[T]) Lower(v T) T {
	r, ok := u.TryLower(v)
	return u.must("Lower", v, r, ok)
}

// Floor is TryFloor for callers that know a qualifying element exists;
// panics otherwise.
func (u *AVL[T]) Floor(v T) T {
	r, ok := u.TryFloor(v)
	return u.must("Floor", v, r, ok)
}

// Ceiling is TryCeiling for callers that know a qualifying element
// exists; panics otherwise.
func (u *AVL[T]) Ceiling(v T) T {
	r, ok := u.TryCeiling(v)
	return u.must("Ceiling", v, r, ok)
}

// Higher is TryHigher for callers that know a qualifying element exists;
// panics otherwise.
func (u *AVL[T]) Higher(v T) T {
	r, ok := u.TryHigher(v)
	return u.must("Higher", v, r, ok)
}
