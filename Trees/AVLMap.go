package Trees

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Tree is an AVL balanced binary search tree exposed as an ordered map with
// unique keys. Nodes live in an arena and are addressed by handles of type S,
// so parent links carry no ownership and rotations are plain index rewiring.
// T is the key type, V the value type; S must be wide enough for the largest
// size the tree will reach, with the same uint conversion caveat as the other
// trees in this module.
// A Tree is not safe for concurrent use; a mutation must exclude all other
// readers and writers of the same Tree.
type Tree[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	base[K, V, S]
}

// New returns an empty Tree with capacity hint preallocated.
func New[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *Tree[K, V, S] {
	return &Tree[K, V, S]{base[K, V, S]{ifs: make([]info[S], 1, hint+1), ks: make([]K, 0, hint), vs: make([]V, 0, hint)}}
}

// put binds k to v when k is absent, returning the handle holding k and
// whether a new node was made. An existing binding is left untouched.
func (u *Tree[K, V, S]) put(k K, v V) (S, bool) {
	cur, parent, left := u.locate(k)
	if cur != 0 {
		return cur, false
	}
	cur = u.alloc(k, v)
	u.ifs[cur].p = parent
	u.ifs[cur].h = 1
	if left {
		u.ifs[parent].l = cur
	} else {
		u.ifs[parent].r = cur
	}
	u.size++
	u.rebalance(parent)
	return cur, true
}

// Put [Map.Put].
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Put(k K, v V) (Iterator[K, V, S], bool) {
	i, fresh := u.put(k, v)
	return Iterator[K, V, S]{u, i}, fresh
}

// GetOrPut [Map.GetOrPut]. When k is absent it is bound to the zero value of
// V first. The returned pointer refers into the tree's storage; it mustn't be
// used after a later insertion, which may move the storage.
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) GetOrPut(k K) *V {
	i, _ := u.put(k, *new(V))
	return &u.vs[i-1]
}

// Get [Map.Get]. Same aliasing caveat as GetOrPut.
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Get(k K) *V {
	if i, _, _ := u.locate(k); i != 0 {
		return &u.vs[i-1]
	}
	return nil
}

// At [Map.At].
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) At(k K) (V, error) {
	if i, _, _ := u.locate(k); i != 0 {
		return u.vs[i-1], nil
	}
	return *new(V), &KeyNotFoundError{}
}

// Has [Map.Has]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Has(k K) bool {
	i, _, _ := u.locate(k)
	return i != 0
}

// Count [Map.Count]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Count(k K) uint {
	if u.Has(k) {
		return 1
	}
	return 0
}

// Find [Map.Find]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Find(k K) Iterator[K, V, S] {
	i, _, _ := u.locate(k)
	return Iterator[K, V, S]{u, i}
}

// Successor [Map.Successor]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Successor(k K) Iterator[K, V, S] {
	cur, best := u.root(), S(0)
	for cur != 0 {
		if k < u.ks[cur-1] {
			best = cur
			cur = u.ifs[cur].l
		} else {
			cur = u.ifs[cur].r
		}
	}
	return Iterator[K, V, S]{u, best}
}

// Predecessor [Map.Predecessor]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Predecessor(k K) Iterator[K, V, S] {
	cur, best := u.root(), S(0)
	for cur != 0 {
		if k > u.ks[cur-1] {
			best = cur
			cur = u.ifs[cur].r
		} else {
			cur = u.ifs[cur].l
		}
	}
	return Iterator[K, V, S]{u, best}
}

// del unlinks the internal node i. When i has two children the key/value of
// the in-order successor overwrite i's and the successor node, which has no
// left child, is unlinked in its place; this is the one spot where a node's
// key mutates. The unlinked node's only subtree is promoted into its slot and
// the walk back to the root rebalances from the unlinked node's old parent.
func (u *Tree[K, V, S]) del(i S) {
	if u.ifs[i].l != 0 && u.ifs[i].r != 0 {
		s := u.leftmost(u.ifs[i].r)
		u.ks[i-1], u.vs[i-1] = u.ks[s-1], u.vs[s-1]
		i = s
	}
	c := u.ifs[i].l
	if c == 0 {
		c = u.ifs[i].r
	}
	p := u.ifs[i].p
	if c != 0 {
		u.ifs[c].p = p
	}
	if u.ifs[p].l == i {
		u.ifs[p].l = c
	} else {
		u.ifs[p].r = c
	}
	u.addFree(i)
	u.size--
	u.rebalance(p)
}

// Del [Map.Del]
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Del(k K) bool {
	i, _, _ := u.locate(k)
	if i == 0 {
		return false
	}
	u.del(i)
	return true
}

// Erase [Map.Erase]. The successor position is re-resolved by key after the
// removal, so it is valid regardless of how restructuring moved nodes.
// Time: O(D); Space: O(1)
func (u *Tree[K, V, S]) Erase(it Iterator[K, V, S]) (Iterator[K, V, S], error) {
	if it.t != u || it.cur == 0 || uint(it.cur) >= uint(len(u.ifs)) {
		return u.End(), &KeyNotFoundError{}
	}
	k := u.ks[it.cur-1]
	if i, _, _ := u.locate(k); i != it.cur { // stale handle: freed or reused slot
		return u.End(), &KeyNotFoundError{}
	}
	u.del(it.cur)
	return u.Successor(k), nil
}

// Clone returns a deep copy sharing no storage with u; afterwards the two can
// be mutated independently without synchronization between them.
// Time: O(n); Space: O(n)
func (u *Tree[K, V, S]) Clone() *Tree[K, V, S] {
	return &Tree[K, V, S]{base[K, V, S]{u.free, u.size, slices.Clone(u.ifs), slices.Clone(u.ks), slices.Clone(u.vs)}}
}
