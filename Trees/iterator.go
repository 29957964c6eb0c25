package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// Iterator is a bidirectional cursor over a Tree in ascending key order.
// Iterators are plain values and compare with ==, so `it != u.End()` is the
// loop condition. Position is carried by node handle, not rank: a mutation
// elsewhere in the tree leaves an Iterator usable, removing the element it
// denotes does not.
// The zero Iterator and End aren't dereferenceable; Key and Value on them
// give the zero value and nil rather than panicking.
type Iterator[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	t   *Tree[K, V, S]
	cur S
}

// Valid is false at End and for the zero Iterator.
func (it Iterator[K, V, S]) Valid() bool {
	return it.t != nil && it.cur != 0
}

// Key of the current element.
func (it Iterator[K, V, S]) Key() K {
	if !it.Valid() {
		return *new(K)
	}
	return it.t.ks[it.cur-1]
}

// Value returns a pointer to the current element's value, with the same
// aliasing caveat as Tree.Get.
func (it Iterator[K, V, S]) Value() *V {
	if !it.Valid() {
		return nil
	}
	return &it.t.vs[it.cur-1]
}

// Next is the position of the following element in key order, End when it
// denotes the greatest element.
// Time: amortized O(1) over a full traversal; Space: O(1)
func (it Iterator[K, V, S]) Next() Iterator[K, V, S] {
	return Iterator[K, V, S]{it.t, it.t.succ(it.cur)}
}

// Prev is the position of the preceding element. From End it steps back to
// the greatest element, so a reverse traversal can start there.
// Time: amortized O(1) over a full traversal; Space: O(1)
func (it Iterator[K, V, S]) Prev() Iterator[K, V, S] {
	return Iterator[K, V, S]{it.t, it.t.pred(it.cur)}
}

// Begin [Map.Begin]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Begin() Iterator[K, V, S] {
	if r := u.root(); r != 0 {
		return Iterator[K, V, S]{u, u.leftmost(r)}
	}
	return u.End()
}

// End [Map.End]
// Time: O(1); Space: O(1)
func (u *Tree[K, V, S]) End() Iterator[K, V, S] {
	return Iterator[K, V, S]{u, 0}
}

// Last [Map.Last]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Last() Iterator[K, V, S] {
	if r := u.root(); r != 0 {
		return Iterator[K, V, S]{u, u.rightmost(r)}
	}
	return u.End()
}

// InOrder [Map.InOrder]. Unlike a threading traversal this one follows parent
// links, so the closure never writes to the tree; the tree still mustn't be
// structurally modified while the closure is in use.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *Tree[K, V, S]) InOrder() func() (K, *V, bool) {
	cur := S(0)
	if r := u.root(); r != 0 {
		cur = u.leftmost(r)
	}
	return func() (k K, v *V, ok bool) {
		if cur == 0 {
			return
		}
		k, v, ok = u.ks[cur-1], &u.vs[cur-1], true
		cur = u.succ(cur)
		return
	}
}

// ReverseOrder [Map.ReverseOrder], the descending counterpart of InOrder.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *Tree[K, V, S]) ReverseOrder() func() (K, *V, bool) {
	cur := S(0)
	if r := u.root(); r != 0 {
		cur = u.rightmost(r)
	}
	return func() (k K, v *V, ok bool) {
		if cur == 0 {
			return
		}
		k, v, ok = u.ks[cur-1], &u.vs[cur-1], true
		cur = u.pred(cur)
		return
	}
}
