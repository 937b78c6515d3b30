package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// GapTree is a persistent binary search tree with no repeated values. It
// maintains balance through rotations by checking two gap bits per node
// instead of stored heights or sizes, so the per-node balance cost is two
// bits. T is the type of values it will hold.
// Every operation leaves its receiver untouched and returns a new tree that
// shares all unmodified subtrees with the old one; a modifying operation
// allocates O(D) fresh nodes along the access path. Old handles stay valid
// forever and any number of goroutines can use the same handle without
// synchronization.
// The worst case height D of a tree built by insertions only is less than
// 1.44*log2(n+2); once deletions mix in, D stays below 2*log2(n+1). On
// average D is close to log2(n).
// The zero value is the empty tree and is ready to use.
type GapTree[T constraints.Ordered] struct {
	root *gnode[T] //the root of the tree, nil when empty
	rank int       //the height of the tree; heights are never stored in nodes
}

// Make returns an empty GapTree. It exists for symmetry with MakeCustom;
// the zero value works just as well.
func Make[T constraints.Ordered]() GapTree[T] {
	return GapTree[T]{}
}

// From builds a GapTree from the given sorted slice recursively. This is
// faster than repeatedly calling Insert. The given slice must be sorted in
// ascending order and mustn't contain duplicate elements.
// If safe==true, this function will check the ordering first and panic with
// InvalidSliceError if it is broken. Otherwise, this function won't perform
// the check, and it is up to the user to ensure the conditions are met
// (otherwise the tree will be corrupt). It's suggested to set safe to false
// if the conditions are known to hold as this removes a redundant pass.
// Time: O(n)
func From[T constraints.Ordered](sli []T, safe bool) GapTree[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i-1] >= sli[i] {
				panic(InvalidSliceError[T]{sli[i-1], sli[i]})
			}
		}
	}
	t, h := fromSlice(sli)
	return GapTree[T]{t, h}
}

// fromSlice builds a balanced subtree from s, returning it with its height.
// Splitting at the middle keeps sibling sizes within one of each other, so
// sibling heights differ by at most one and a single gap bit always covers
// the difference.
func fromSlice[T any](s []T) (*gnode[T], int) {
	if len(s) == 0 {
		return nil, 0
	}
	mid := len(s) >> 1
	l, hl := fromSlice(s[:mid])
	r, hr := fromSlice(s[mid+1:])
	t := &gnode[T]{v: s[mid], l: l, r: r}
	h := hl + 1
	if hl > hr {
		t.rg = true
	} else if hr > hl {
		t.lg = true
		h = hr + 1
	}
	return t, h
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u GapTree[T]) Height() int {
	return u.rank
}

// IsLeaf [Tree.IsLeaf]
// Time: O(1); Space: O(1)
func (u GapTree[T]) IsLeaf() bool {
	return u.root == nil
}

// Break splits u into its left subtree, its root value, and its right
// subtree, all sharing structure with u. The returned trees carry their
// correct heights, recovered from u's height and the root's gap bits.
// Break panics when u is empty; call IsLeaf first if that can happen.
// Time: O(1); Space: O(1)
func (u GapTree[T]) Break() (GapTree[T], T, GapTree[T]) {
	if u.root == nil {
		panic("Trees: Break on a leaf")
	}
	hl, hr := u.rank-1, u.rank-1
	if u.root.lg {
		hl--
	}
	if u.root.rg {
		hr--
	}
	return GapTree[T]{u.root.l, hl}, u.root.v, GapTree[T]{u.root.r, hr}
}

// has reports whether v is in the subtree rooting at cur, iteratively.
func has[T any](cur *gnode[T], v T, cmp func(T, T) int) bool {
	for cur != nil {
		c := cmp(v, cur.v)
		if c == 0 {
			return true
		} else if c < 0 {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u GapTree[T]) Has(v T) bool {
	return has(u.root, v, cmp.Compare[T])
}

// insert the value v into the subtree rooting at cur recursively, returning
// the new subtree and how its height relates to cur's. iPresent means v was
// already there and the new subtree IS cur; above the deepest rotation or
// gap-filling fit every level reports iSameH and rebuilds with unchanged
// gap bits, so at most one rotation happens per insertion.
// Time: O(D)
func insert[T any](cur *gnode[T], v T, cmp func(T, T) int) (*gnode[T], ires) {
	if cur == nil {
		return &gnode[T]{v: v}, iHigher
	}
	c := cmp(v, cur.v)
	switch {
	case c == 0:
		return cur, iPresent
	case c < 0:
		nl, res := insert(cur.l, v, cmp)
		switch res {
		case iPresent:
			return cur, iPresent
		case iSameH:
			return &gnode[T]{v: cur.v, l: nl, r: cur.r, lg: cur.lg, rg: cur.rg}, iSameH
		}
		t, grew := leftGrown(nl, cur.v, cur.r, cur.lg, cur.rg)
		if grew {
			return t, iHigher
		}
		return t, iSameH
	default:
		nr, res := insert(cur.r, v, cmp)
		switch res {
		case iPresent:
			return cur, iPresent
		case iSameH:
			return &gnode[T]{v: cur.v, l: cur.l, r: nr, lg: cur.lg, rg: cur.rg}, iSameH
		}
		t, grew := rightGrown(cur.l, cur.v, nr, cur.lg, cur.rg)
		if grew {
			return t, iHigher
		}
		return t, iSameH
	}
}

// Insert returns a tree containing v along with all of u's elements, and
// whether v was actually added. When v is already present the returned tree
// is u itself, not a copy. Recursive; it is a wrapper for insert.
// Time: O(D)
func (u GapTree[T]) Insert(v T) (GapTree[T], bool) {
	t, res := insert(u.root, v, cmp.Compare[T])
	switch res {
	case iPresent:
		return u, false
	case iHigher:
		return GapTree[T]{t, u.rank + 1}, true
	default:
		return GapTree[T]{t, u.rank}, true
	}
}

// delmin removes the minimum of the non-nil subtree rooting at cur
// recursively, returning it with the new subtree. The node holding the
// minimum has a leaf left child, so cutting it out lowers that spot by
// exactly one; above it each level either absorbs the loss or passes
// dLowered up through leftShrunk.
// Time: O(D)
func delmin[T any](cur *gnode[T]) (T, *gnode[T], dres) {
	if cur.l == nil {
		return cur.v, cur.r, dLowered
	}
	v, nl, res := delmin(cur.l)
	if res == dSameH {
		return v, &gnode[T]{v: cur.v, l: nl, r: cur.r, lg: cur.lg, rg: cur.rg}, dSameH
	}
	t, res := leftShrunk(nl, cur.v, cur.r, cur.lg, cur.rg)
	return v, t, res
}

// delmax is the mirror image of delmin.
// Time: O(D)
func delmax[T any](cur *gnode[T]) (T, *gnode[T], dres) {
	if cur.r == nil {
		return cur.v, cur.l, dLowered
	}
	v, nr, res := delmax(cur.r)
	if res == dSameH {
		return v, &gnode[T]{v: cur.v, l: cur.l, r: nr, lg: cur.lg, rg: cur.rg}, dSameH
	}
	t, res := rightShrunk(cur.l, cur.v, nr, cur.lg, cur.rg)
	return v, t, res
}

// DelMin removes the smallest element of u, returning it, the remaining
// tree, and false when u was empty. Recursive; it is a wrapper for delmin.
// Time: O(D)
func (u GapTree[T]) DelMin() (T, GapTree[T], bool) {
	if u.root == nil {
		return *new(T), u, false
	}
	v, t, res := delmin(u.root)
	nr := u.rank
	if res == dLowered {
		nr--
	}
	return v, GapTree[T]{t, nr}, true
}

// DelMax removes the largest element of u, returning it, the remaining
// tree, and false when u was empty. Recursive; it is a wrapper for delmax.
// Time: O(D)
func (u GapTree[T]) DelMax() (T, GapTree[T], bool) {
	if u.root == nil {
		return *new(T), u, false
	}
	v, t, res := delmax(u.root)
	nr := u.rank
	if res == dLowered {
		nr--
	}
	return v, GapTree[T]{t, nr}, true
}

// collapse removes cur's own value from the subtree rooting at cur. With a
// leaf child the other child takes cur's place one level down. With two
// inner children the replacement comes from the side without a gap, so a
// gapped side is never shrunk further than it has to be; the left side wins
// ties.
func collapse[T any](cur *gnode[T]) (*gnode[T], dres) {
	if cur.l == nil {
		return cur.r, dLowered
	}
	if cur.r == nil {
		return cur.l, dLowered
	}
	if !cur.lg {
		k, nl, res := delmax(cur.l)
		if res == dSameH {
			return &gnode[T]{v: k, l: nl, r: cur.r, lg: cur.lg, rg: cur.rg}, dSameH
		}
		return leftShrunk(nl, k, cur.r, cur.lg, cur.rg)
	}
	k, nr, res := delmin(cur.r)
	if res == dSameH {
		return &gnode[T]{v: k, l: cur.l, r: nr, lg: cur.lg, rg: cur.rg}, dSameH
	}
	return rightShrunk(cur.l, k, nr, cur.lg, cur.rg)
}

// remove the value v from the subtree rooting at cur recursively, returning
// the new subtree, how its height relates to cur's, and whether v was found.
// When v is absent the returned subtree IS cur. A whole removal performs at
// most one rotation: every rotation inside leftShrunk/rightShrunk restores
// the old height and ends the propagation.
// Time: O(D)
func remove[T any](cur *gnode[T], v T, cmp func(T, T) int) (*gnode[T], dres, bool) {
	if cur == nil {
		return nil, dSameH, false
	}
	c := cmp(v, cur.v)
	switch {
	case c < 0:
		nl, res, found := remove(cur.l, v, cmp)
		if !found {
			return cur, dSameH, false
		}
		if res == dSameH {
			return &gnode[T]{v: cur.v, l: nl, r: cur.r, lg: cur.lg, rg: cur.rg}, dSameH, true
		}
		t, res := leftShrunk(nl, cur.v, cur.r, cur.lg, cur.rg)
		return t, res, true
	case c > 0:
		nr, res, found := remove(cur.r, v, cmp)
		if !found {
			return cur, dSameH, false
		}
		if res == dSameH {
			return &gnode[T]{v: cur.v, l: cur.l, r: nr, lg: cur.lg, rg: cur.rg}, dSameH, true
		}
		t, res := rightShrunk(cur.l, cur.v, nr, cur.lg, cur.rg)
		return t, res, true
	default:
		t, res := collapse(cur)
		return t, res, true
	}
}

// Delete returns a tree containing all of u's elements except v, and
// whether v was actually removed. When v is absent the returned tree is u
// itself, not a copy. Recursive; it is a wrapper for remove.
// Time: O(D)
func (u GapTree[T]) Delete(v T) (GapTree[T], bool) {
	t, res, found := remove(u.root, v, cmp.Compare[T])
	if !found {
		return u, false
	}
	nr := u.rank
	if res == dLowered {
		nr--
	}
	return GapTree[T]{t, nr}, true
}

// joinRight descends the right spine of l until the subtree there is at
// most one level taller than r, hangs a fresh node carrying d over that
// subtree and r, and re-absorbs the possible growth on the way back up with
// rightGrown, exactly as an insertion would. hl and hr are the heights of l
// and r; the spine heights are threaded down because nodes don't store
// them. Reports whether the result outgrew hl.
// Requires hl > hr+1 (so l is not nil).
// Time: O(hl-hr)
func joinRight[T any](l *gnode[T], hl int, d T, r *gnode[T], hr int) (*gnode[T], bool) {
	hc := hl - 1
	if l.rg {
		hc--
	}
	if hc > hr+1 {
		nr, grew := joinRight(l.r, hc, d, r, hr)
		if !grew {
			return &gnode[T]{v: l.v, l: l.l, r: nr, lg: l.lg, rg: l.rg}, false
		}
		return rightGrown(l.l, l.v, nr, l.lg, l.rg)
	}
	t := &gnode[T]{v: d, l: l.r, r: r}
	if hc == hr+1 {
		t.rg = true
	}
	return rightGrown(l.l, l.v, t, l.lg, l.rg)
}

// joinLeft is the mirror image of joinRight. Requires hr > hl+1.
// Time: O(hr-hl)
func joinLeft[T any](l *gnode[T], hl int, d T, r *gnode[T], hr int) (*gnode[T], bool) {
	hc := hr - 1
	if r.lg {
		hc--
	}
	if hc > hl+1 {
		nl, grew := joinLeft(l, hl, d, r.l, hc)
		if !grew {
			return &gnode[T]{v: r.v, l: nl, r: r.r, lg: r.lg, rg: r.rg}, false
		}
		return leftGrown(nl, r.v, r.r, r.lg, r.rg)
	}
	t := &gnode[T]{v: d, l: l, r: r.l}
	if hc == hl+1 {
		t.lg = true
	}
	return leftGrown(t, r.v, r.r, r.lg, r.rg)
}

// join builds one balanced tree out of l, the separator d and r, where
// every element of l is below d and every element of r above it. Heights
// within one of each other need a single fresh node; otherwise the shorter
// tree is worked into the taller one's facing spine. Returns the result
// with its height.
func join[T any](l *gnode[T], hl int, d T, r *gnode[T], hr int) (*gnode[T], int) {
	switch {
	case hl > hr+1:
		t, grew := joinRight(l, hl, d, r, hr)
		if grew {
			return t, hl + 1
		}
		return t, hl
	case hr > hl+1:
		t, grew := joinLeft(l, hl, d, r, hr)
		if grew {
			return t, hr + 1
		}
		return t, hr
	case hl == hr:
		return &gnode[T]{v: d, l: l, r: r}, hl + 1
	case hl > hr:
		return &gnode[T]{v: d, l: l, r: r, rg: true}, hl + 1
	default:
		return &gnode[T]{v: d, l: l, r: r, lg: true}, hr + 1
	}
}

// Join returns a tree holding all of u's elements, then d, then all of r's
// elements. Every element of u must be smaller than d and every element of
// r larger; Join doesn't check this (the result would be corrupt), use
// Corrupt in tests if in doubt. u and r are shared, not consumed.
// Time: O(|u.Height()-r.Height()|); Space: same
func (u GapTree[T]) Join(d T, r GapTree[T]) GapTree[T] {
	t, h := join(u.root, u.rank, d, r.root, r.rank)
	return GapTree[T]{t, h}
}

// inorder visits the subtree rooting at cur in ascending order until f
// returns false, reporting whether the walk ran to completion.
func inorder[T any](cur *gnode[T], f func(T) bool) bool {
	if cur == nil {
		return true
	}
	return inorder(cur.l, f) && f(cur.v) && inorder(cur.r, f)
}

// InOrder [Tree.InOrder]. Recursive; a Morris walk would be cheaper on
// memory but threads temporary pointers through the nodes, which would race
// with other readers of a shared subtree.
// Time: O(n); Space: O(D)
func (u GapTree[T]) InOrder(f func(T) bool) bool {
	return inorder(u.root, f)
}

// audit recomputes the height of the subtree rooting at cur from its gap
// bits, checking at every node that both sides agree on it and that a node
// over two leaves has height 1. Returns the height and whether the checks
// passed.
func audit[T any](cur *gnode[T]) (int, bool) {
	if cur == nil {
		return 0, true
	}
	hl, ok := audit(cur.l)
	if !ok {
		return 0, false
	}
	hr, ok := audit(cur.r)
	if !ok {
		return 0, false
	}
	h, rh := hl+1, hr+1
	if cur.lg {
		h++
	}
	if cur.rg {
		rh++
	}
	if h != rh {
		return 0, false
	}
	if cur.l == nil && cur.r == nil && h != 1 {
		return 0, false
	}
	return h, true
}

// ordered reports whether the subtree rooting at cur visits strictly
// ascending values under cmp.
func ordered[T any](cur *gnode[T], cmp func(T, T) int) bool {
	var prev *T
	return inorder(cur, func(v T) bool {
		if prev != nil && cmp(*prev, v) >= 0 {
			return false
		}
		x := v
		prev = &x
		return true
	})
}

// Corrupt [Tree.Corrupt]. Verifies that the gap bits are mutually
// consistent, that no inner node sits directly over two leaves with a
// claimed height above 1, that the recorded height matches the recomputed
// one, and that the values ascend strictly.
// Time: O(n); Space: O(D)
func (u GapTree[T]) Corrupt() bool {
	h, ok := audit(u.root)
	if !ok || h != u.rank {
		return true
	}
	return !ordered(u.root, cmp.Compare[T])
}
