package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// A node in the Tree. Handles are indexes into the ifs arena; handle 0 is the
// shared sentinel: it stands in for every absent child, its l field holds the
// true root (so it is the parent the root gets rewired through), and it is the
// end position of iterations. The zero value is the sentinel itself.
type info[S constraints.Unsigned] struct {
	l, r, p, h S // l doubles as the next link while the node sits on the free list.
}

type base[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	free S // head of the linked list of free handles, threaded through info.l; 0 when none.
	size S
	ifs  []info[S] // ifs[0] is the sentinel. all handles index into ifs.
	ks   []K       // ks[i-1] corresponds to ifs[i]
	vs   []V       // same layout as ks
}

// root handle; 0 when the tree is empty.
func (u *base[K, V, S]) root() S {
	return u.ifs[0].l
}

// alloc a handle holding k/v, reusing freed slots before growing the arena.
func (u *base[K, V, S]) alloc(k K, v V) S {
	if i := u.free; i != 0 {
		u.free = u.ifs[i].l
		u.ifs[i] = info[S]{}
		u.ks[i-1], u.vs[i-1] = k, v
		return i
	}
	u.ifs = append(u.ifs, info[S]{})
	u.ks = append(u.ks, k)
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// addFree handle i once.
func (u *base[K, V, S]) addFree(i S) {
	u.ifs[i].l = u.free
	u.free = i
}

// locate walks from the true root comparing k at each node. A hit returns its
// handle; a miss returns cur==0 with parent/left identifying the child slot k
// would occupy.
func (u *base[K, V, S]) locate(k K) (cur, parent S, left bool) {
	parent, left = 0, true
	for cur = u.root(); cur != 0; {
		if k < u.ks[cur-1] {
			parent, left = cur, true
			cur = u.ifs[cur].l
		} else if k > u.ks[cur-1] {
			parent, left = cur, false
			cur = u.ifs[cur].r
		} else {
			return
		}
	}
	return
}

func (u *base[K, V, S]) leftmost(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[K, V, S]) rightmost(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// succ of handle i in key order: leftmost of the right subtree when there is
// one, otherwise the first ancestor reached through a left-child edge. Returns
// 0 when i holds the greatest key.
func (u *base[K, V, S]) succ(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	p := u.ifs[i].p
	for p != 0 && i == u.ifs[p].r {
		i, p = p, u.ifs[p].p
	}
	return p
}

// pred of handle i, symmetric to succ. From handle 0 it yields the greatest
// key, since the sentinel's l is the root; this is what lets the end position
// step back into the tree.
func (u *base[K, V, S]) pred(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.rightmost(l)
	}
	p := u.ifs[i].p
	for p != 0 && i == u.ifs[p].l {
		i, p = p, u.ifs[p].p
	}
	return p
}

// setHeight recomputes ifs[i].h from the children; the sentinel's 0 height
// makes leaves come out as 1.
func (u *base[K, V, S]) setHeight(i S) {
	u.ifs[i].h = max(u.ifs[u.ifs[i].l].h, u.ifs[u.ifs[i].r].h) + 1
}

// balanced is the AVL bound on the children of i. Written with two
// comparisons since S is unsigned.
func (u *base[K, V, S]) balanced(i S) bool {
	l, r := u.ifs[u.ifs[i].l].h, u.ifs[u.ifs[i].r].h
	return l <= r+1 && r <= l+1
}

// tallGrandchild selects the root of the taller subtree two levels below z,
// preferring the left child on equal heights and staying on the chosen side
// on equal heights one level further down. z must have height at least 2.
func (u *base[K, V, S]) tallGrandchild(z S) S {
	zl, zr := u.ifs[z].l, u.ifs[z].r
	if u.ifs[zl].h >= u.ifs[zr].h {
		if y := u.ifs[zl]; u.ifs[y.l].h >= u.ifs[y.r].h {
			return y.l
		} else {
			return y.r
		}
	}
	if y := u.ifs[zr]; u.ifs[y.r].h >= u.ifs[y.l].h {
		return y.r
	} else {
		return y.l
	}
}

// restructure performs the trinode restructuring around the tall grandchild x:
// x, its parent and its grandparent are relabeled in key order as a, b, c, b
// takes the grandparent's slot in b's great-grandparent, a and c become b's
// children, and the one subtree of b that dangles after the relabeling is
// reattached under a or c. Heights of the three nodes are recomputed bottom-up.
// Covers all four shapes (single/double, left/right). Returns b.
func (u *base[K, V, S]) restructure(x S) S {
	y := u.ifs[x].p
	z := u.ifs[y].p
	var a, b, c S
	switch {
	case u.ifs[z].r == y && u.ifs[y].r == x:
		a, b, c = z, y, x
	case u.ifs[z].l == y && u.ifs[y].l == x:
		a, b, c = x, y, z
	case u.ifs[z].r == y: // y.l == x
		a, b, c = z, x, y
	default: // z.l == y && y.r == x
		a, b, c = y, x, z
	}
	g := u.ifs[z].p
	if u.ifs[g].l == z {
		u.ifs[g].l = b
	} else {
		u.ifs[g].r = b
	}
	u.ifs[b].p = g
	u.ifs[a].p, u.ifs[c].p = b, b
	if m := u.ifs[b].l; m != a {
		u.ifs[a].r = m
		if m != 0 {
			u.ifs[m].p = a
		}
		u.ifs[b].l = a
	}
	if m := u.ifs[b].r; m != c {
		u.ifs[c].l = m
		if m != 0 {
			u.ifs[m].p = c
		}
		u.ifs[b].r = c
	}
	u.setHeight(a)
	u.setHeight(c)
	u.setHeight(b)
	return b
}

// rebalance walks from i through the true root, refreshing heights and
// restructuring wherever the AVL bound breaks. A deletion can break the bound
// at several points along the path, so the walk never stops early; the extra
// passes after an insertion only refresh heights.
func (u *base[K, V, S]) rebalance(i S) {
	for ; i != 0; i = u.ifs[i].p {
		u.setHeight(i)
		if !u.balanced(i) {
			i = u.restructure(u.tallGrandchild(i))
		}
	}
}

// Size of the tree.
func (u *base[K, V, S]) Size() uint {
	return uint(u.size)
}

// Empty is true when the tree holds no element.
func (u *base[K, V, S]) Empty() bool {
	return u.size == 0
}

// Clear the tree in O(1). Doesn't release the underlying arrays.
func (u *base[K, V, S]) Clear() {
	u.ifs = u.ifs[:1]
	u.ifs[0] = info[S]{}
	u.ks, u.vs = u.ks[:0], u.vs[:0]
	u.free, u.size = 0, 0
}

// Corrupt reports whether any stored height, the AVL balance bound, a parent
// link, the in-order key order, or the size counter is violated. A healthy
// tree always returns false.
func (u *base[K, V, S]) Corrupt() bool {
	n := S(0)
	var walk func(i, p S) bool
	walk = func(i, p S) bool {
		if i == 0 {
			return false
		}
		n++
		f := u.ifs[i]
		if f.p != p || f.h != max(u.ifs[f.l].h, u.ifs[f.r].h)+1 || !u.balanced(i) {
			return true
		}
		return walk(f.l, i) || walk(f.r, i)
	}
	if walk(u.root(), 0) || n != u.size {
		return true
	}
	if r := u.root(); r != 0 {
		for i, j := u.leftmost(r), S(0); ; i = j {
			if j = u.succ(i); j == 0 {
				break
			}
			if u.ks[j-1] <= u.ks[i-1] {
				return true
			}
		}
	}
	return false
}
