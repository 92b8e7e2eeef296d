package Trees

import (
	"math/rand"
	"slices"
	"testing"

	Collections "github.com/nixill/collections"
)

var rg = rand.New(rand.NewSource(0))

// verify recomputes every subtree height independently and fails the
// test if any stored balance factor disagrees or leaves {-1,0,1}, if the
// in-order traversal isn't strictly ascending, or if Size disagrees with
// a full enumeration.
func verify[T any](t *testing.T, u *AVL[T]) {
	t.Helper()
	var walk func(*node[T]) int
	walk = func(p *node[T]) int {
		if p == nil {
			return 0
		}
		hl, hr := walk(p.l), walk(p.r)
		if b := hr - hl; b != int(p.b) || b < -1 || b > 1 {
			t.Fatalf("node %v: stored balance %d, computed height difference %d", p.v, p.b, b)
		}
		return max(hl, hr) + 1
	}
	walk(u.root)
	n := uint(0)
	var prev T
	u.Range(func(v T) bool {
		if n > 0 && u.cmp(prev, v) >= 0 {
			t.Fatalf("in-order traversal not strictly ascending: %v before %v", prev, v)
		}
		prev, n = v, n+1
		return true
	})
	if n != u.sz {
		t.Fatalf("size is %d but enumeration yields %d elements", u.sz, n)
	}
}

// expectPanic fails the test unless f panics with a value of type E.
func expectPanic[E error](t *testing.T, f func()) {
	t.Helper()
	defer func() {
		switch r := recover().(type) {
		case nil:
			t.Fatalf("expected a %T panic, got none", *new(E))
		case E:
		default:
			t.Fatalf("panic value is %v (%T), want %T", r, r, *new(E))
		}
	}()
	f()
}

func TestAVL_InsertRotations(t *testing.T) {
	// one sequence per rebalancing case
	for name, seq := range map[string][]int{
		"LL": {3, 2, 1},
		"RR": {1, 2, 3},
		"LR": {3, 1, 2},
		"RL": {1, 3, 2},
	} {
		tree := New[int]()
		for _, v := range seq {
			if !tree.Insert(v) {
				t.Errorf("%s: failed to insert %d", name, v)
			}
			verify(t, tree)
		}
		if got := tree.Items(); !slices.Equal(got, []int{1, 2, 3}) {
			t.Errorf("%s: in-order is %v, want [1 2 3]", name, got)
		}
		if tree.root.v != 2 {
			t.Errorf("%s: root is %d, want 2 after rotation", name, tree.root.v)
		}
	}
}

func TestAVL_Insert(t *testing.T) {
	const n, valRange = 4096, 8192
	tree := New[int]()
	content := make(map[int]struct{})
	for i := 0; i < n; i++ {
		v := rg.Intn(valRange)
		_, in := content[v]
		if tree.Insert(v) == in {
			t.Fatalf("insert %d reported %v, oracle says %v", v, !in, in)
		}
		content[v] = struct{}{}
		if i%256 == 0 {
			verify(t, tree)
		}
	}
	verify(t, tree)
	if int(tree.Size()) != len(content) {
		t.Fatalf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for v := range content {
		if !tree.Has(v) {
			t.Fatalf("tree lost %d", v)
		}
	}
	for v := valRange; v < valRange+64; v++ {
		if tree.Has(v) {
			t.Fatalf("tree invented %d", v)
		}
	}
}

func TestAVL_InsertDuplicate(t *testing.T) {
	tree := New[int]()
	if !tree.Insert(7) || tree.Insert(7) {
		t.Fatalf("duplicate insert should fail exactly once")
	}
	if tree.Size() != 1 {
		t.Fatalf("size is %d after duplicate insert, want 1", tree.Size())
	}
	verify(t, tree)
}

func TestAVL_Remove(t *testing.T) {
	const n = 2048
	tree := New[int]()
	content := make(map[int]struct{})
	for _, v := range rg.Perm(n) {
		tree.Insert(v)
		content[v] = struct{}{}
	}
	for i, v := range rg.Perm(2 * n) { // half the values were never inserted
		_, in := content[v]
		if tree.Remove(v) != in {
			t.Fatalf("remove %d reported %v, oracle says %v", v, !in, in)
		}
		delete(content, v)
		if i%128 == 0 {
			verify(t, tree)
		}
	}
	verify(t, tree)
	if int(tree.Size()) != len(content) {
		t.Fatalf("tree size is %d, want %d", tree.Size(), len(content))
	}
}

// TestAVL_RemoveExhaustive drives every insert and delete rebalancing
// case, including the delete-side rotations where the child's balance is
// 0 and the shrink keeps propagating, by checking the balance invariant
// after every single operation on many small trees.
func TestAVL_RemoveExhaustive(t *testing.T) {
	for n := 1; n <= 64; n++ {
		tree := New[int]()
		for _, v := range rg.Perm(n) {
			tree.Insert(v)
			verify(t, tree)
		}
		for _, v := range rg.Perm(n) {
			if !tree.Remove(v) {
				t.Fatalf("n=%d: lost %d before removal", n, v)
			}
			verify(t, tree)
		}
		if tree.Size() != 0 {
			t.Fatalf("n=%d: size %d after removing everything", n, tree.Size())
		}
	}
}

func TestAVL_RemoveRebalance(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{30, 20, 40, 10, 25, 35, 50} {
		tree.Insert(v)
	}
	verify(t, tree)
	for _, v := range []int{50, 40} {
		if !tree.Remove(v) {
			t.Fatalf("failed to remove %d", v)
		}
		verify(t, tree)
	}
	if got := tree.Items(); !slices.Equal(got, []int{10, 20, 25, 30, 35}) {
		t.Fatalf("in-order is %v after removals", got)
	}
}

func TestAVL_RoundTrip(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{8, 4, 12, 2, 6, 10, 14} {
		tree.Insert(v)
	}
	before := tree.Items()
	if !tree.Insert(7) || !tree.Remove(7) {
		t.Fatalf("insert/remove round trip failed")
	}
	verify(t, tree)
	if got := tree.Items(); !slices.Equal(got, before) {
		t.Fatalf("in-order is %v after round trip, want %v", got, before)
	}
}

func TestAVL_RemoveMinMax(t *testing.T) {
	const n = 512
	tree := New[int]()
	for _, v := range rg.Perm(n) {
		tree.Insert(v)
	}
	for want := 0; want < n/2; want++ {
		v, ok := tree.RemoveMin()
		if !ok || v != want {
			t.Fatalf("RemoveMin gave (%d, %v), want (%d, true)", v, ok, want)
		}
		if want%32 == 0 {
			verify(t, tree)
		}
	}
	for want := n - 1; want >= n/2; want-- {
		v, ok := tree.RemoveMax()
		if !ok || v != want {
			t.Fatalf("RemoveMax gave (%d, %v), want (%d, true)", v, ok, want)
		}
		if want%32 == 0 {
			verify(t, tree)
		}
	}
	if _, ok := tree.RemoveMin(); ok {
		t.Fatalf("RemoveMin succeeded on an empty tree")
	}
	if _, ok := tree.RemoveMax(); ok {
		t.Fatalf("RemoveMax succeeded on an empty tree")
	}
}

func TestAVL_Replace(t *testing.T) {
	tree := From([]int{10, 20, 30})
	if !tree.Replace(20, 25) {
		t.Fatalf("Replace(20, 25) failed")
	}
	if got := tree.Items(); !slices.Equal(got, []int{10, 25, 30}) {
		t.Fatalf("in-order is %v after Replace", got)
	}
	verify(t, tree)
	if tree.Replace(40, 45) {
		t.Fatalf("Replace of an absent value succeeded")
	}
	expectPanic[OrderViolationError[int]](t, func() { tree.Replace(25, 5) })
	expectPanic[OrderViolationError[int]](t, func() { tree.Replace(10, 30) })
	if !tree.Replace(10, 5) { // no lower neighbor, still below 25
		t.Fatalf("Replace(10, 5) failed")
	}
	verify(t, tree)
}

func TestFrom(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100, 1000} {
		sli := make([]int, n)
		for i := range sli {
			sli[i] = 2 * i
		}
		tree := From(sli)
		verify(t, tree)
		if int(tree.Size()) != n {
			t.Fatalf("n=%d: size is %d", n, tree.Size())
		}
		if !slices.Equal(tree.Items(), sli) {
			t.Fatalf("n=%d: in-order differs from the input slice", n)
		}
	}
	expectPanic[UnsortedSliceError[int]](t, func() { From([]int{1, 3, 2}) })
	expectPanic[UnsortedSliceError[int]](t, func() { From([]int{1, 1}) })
}

func TestNewFunc_NilComparator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewFunc(nil) did not panic")
		}
	}()
	NewFunc[int](nil)
}

func TestAVL_ComparatorEquality(t *testing.T) {
	type entry struct {
		k int
		v string
	}
	tree := NewFunc[entry](func(a, b entry) int { return a.k - b.k })
	if !tree.Insert(entry{1, "a"}) || tree.Insert(entry{1, "b"}) {
		t.Fatalf("comparator equality should make {1 b} a duplicate")
	}
	if p := tree.Get(entry{1, "?"}); p == nil || p.v != "a" {
		t.Fatalf("Get by key-only equality gave %v", p)
	}
}

func TestAVL_InOrder(t *testing.T) {
	tree := New[int]()
	for _, v := range rg.Perm(200) {
		tree.Insert(v)
	}
	next := tree.InOrder()
	for want := 0; want < 200; want++ {
		v, ok := next()
		if !ok || v != want {
			t.Fatalf("iterator gave (%d, %v), want (%d, true)", v, ok, want)
		}
	}
	if _, ok := next(); ok {
		t.Fatalf("iterator did not exhaust")
	}
	if _, ok := New[int]().InOrder()(); ok {
		t.Fatalf("iterator over an empty tree yielded an element")
	}
}

func TestAVL_Clear(t *testing.T) {
	tree := From([]int{1, 2, 3})
	tree.Clear()
	if tree.Size() != 0 || tree.Has(2) {
		t.Fatalf("Clear left elements behind")
	}
	if !tree.Insert(2) {
		t.Fatalf("insert after Clear failed")
	}
	verify(t, tree)
}

func TestAVL_Reverse(t *testing.T) {
	tree := NewFunc(Collections.Reverse(Collections.Natural[int]()))
	for _, v := range []int{1, 2, 3} {
		tree.Insert(v)
	}
	if got := tree.Items(); !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatalf("reversed in-order is %v", got)
	}
	verify(t, tree)
}
