package Trees

import "sync/atomic"

// A node in a GapTree.
// nil is the leaf sentinel: it holds no value and has height 0. Once a node
// is reachable from a tree handle that an operation has returned it is never
// written again; operations rebuild the access path and share every
// untouched subtree with the input tree(s).
//
// The two gap bits encode the height relation to each child: with the bit
// unset the node sits one level above that child, with it set two levels.
// Both bits set means both children sit two levels down; that slack is what
// lets deletions stop rebalancing early, and it is the only way this
// structure differs from an AVL tree. Two side conditions the bits can't
// express (leaves carry none) are enforced everywhere nodes are built: a
// node over two leaves has height 1, and a node over exactly one leaf has
// height 2.
type gnode[T any] struct {
	v      T
	l, r   *gnode[T]
	lg, rg bool
}

// gapee reports whether t is a leaf or its two gap bits differ. Rotating
// around a gapee subtree keeps the taller side's height; around a non-gapee
// one it may grow the result by one, which the caller must propagate.
func (t *gnode[T]) gapee() bool {
	return t == nil || t.lg != t.rg
}

// avlish reports whether at least one of the two gap bits is unset, i.e.
// whether a shrunk child can still be absorbed by gapping its side without
// lowering the node itself.
func avlish(lg, rg bool) bool {
	return !lg || !rg
}

// rots counts rotation invocations. Only test instrumentation reads it; the
// atomic keeps unrelated writers on independent trees from racing.
var rots atomic.Uint64

// ires describes how an insertion changed a subtree's height.
type ires uint8

const (
	iPresent ires = iota //value already there, subtree returned unchanged
	iSameH               //rebuilt at the same height
	iHigher              //rebuilt one level taller
)

// dres describes how a deletion changed a subtree's height.
type dres uint8

const (
	dSameH dres = iota
	dLowered
)

// rotateRight restructures tl, the separator d and tr into one tree, where
// tl is exactly two levels taller than tr. The result reuses tl's keys as
// roots and keeps tl's height, except when tl carries no gap at all: then
// the result is one level taller and the second return is true.
// Performs one or two node relinks exactly like an AVL single/double
// rotation, but here the new gap bits fall out of the case analysis instead
// of recomputed heights.
// Time: O(1); Space: O(1)
func rotateRight[T any](tl *gnode[T], d T, tr *gnode[T]) (*gnode[T], bool) {
	rots.Add(1)
	switch {
	case !tl.gapee(): //tl's subtrees are level: single rotation
		t := &gnode[T]{v: d, l: tl.r, r: tr}
		if tl.lg { //level two below: t lands level with tl.l
			return &gnode[T]{v: tl.v, l: tl.l, r: t, lg: true}, false
		}
		t.rg = true //level one below: t outgrows tl.l by one
		return &gnode[T]{v: tl.v, l: tl.l, r: t, lg: true}, true
	case tl.rg: //leans left: single rotation
		return &gnode[T]{v: tl.v, l: tl.l, r: &gnode[T]{v: d, l: tl.r, r: tr}}, false
	default: //leans right: double rotation through tl.r
		b := tl.r
		return &gnode[T]{
			v: b.v,
			l: &gnode[T]{v: tl.v, l: tl.l, r: b.l, rg: b.lg},
			r: &gnode[T]{v: d, l: b.r, r: tr, lg: b.rg},
		}, false
	}
}

// rotateLeft is the mirror image of rotateRight: tr is exactly two levels
// taller than tl.
// Time: O(1); Space: O(1)
func rotateLeft[T any](tl *gnode[T], d T, tr *gnode[T]) (*gnode[T], bool) {
	rots.Add(1)
	switch {
	case !tr.gapee():
		t := &gnode[T]{v: d, l: tl, r: tr.l}
		if tr.lg {
			return &gnode[T]{v: tr.v, l: t, r: tr.r, rg: true}, false
		}
		t.lg = true
		return &gnode[T]{v: tr.v, l: t, r: tr.r, rg: true}, true
	case tr.lg: //leans right: single rotation
		return &gnode[T]{v: tr.v, l: &gnode[T]{v: d, l: tl, r: tr.l}, r: tr.r}, false
	default: //leans left: double rotation through tr.l
		b := tr.l
		return &gnode[T]{
			v: b.v,
			l: &gnode[T]{v: d, l: tl, r: b.l, rg: b.lg},
			r: &gnode[T]{v: tr.v, l: b.r, r: tr.r, lg: b.rg},
		}, false
	}
}

// leftGrown rebuilds a node whose left child just grew one level into nl.
// lg and rg are the node's previous gap bits. Reports whether the rebuilt
// subtree is one level taller than the node was; when it isn't, no ancestor
// has any rebalancing left to do.
func leftGrown[T any](nl *gnode[T], d T, r *gnode[T], lg, rg bool) (*gnode[T], bool) {
	if lg { //the growth fills the left gap
		return &gnode[T]{v: d, l: nl, r: r, rg: rg}, false
	}
	if rg { //left is now two over right
		return rotateRight(nl, d, r)
	}
	return &gnode[T]{v: d, l: nl, r: r, rg: true}, true
}

// rightGrown is the mirror image of leftGrown.
func rightGrown[T any](l *gnode[T], d T, nr *gnode[T], lg, rg bool) (*gnode[T], bool) {
	if rg {
		return &gnode[T]{v: d, l: l, r: nr, lg: lg}, false
	}
	if lg {
		return rotateLeft(l, d, nr)
	}
	return &gnode[T]{v: d, l: l, r: nr, lg: true}, true
}

// leftShrunk rebuilds a node whose left child just shrank one level into
// nl. lg and rg are the node's previous gap bits. At most one rotation
// happens here, and a rotation always ends the rebalancing (dSameH): when
// the rotated pieces come out level the fresh root simply keeps the old
// height by gapping both sides. Only the two gap-lowering fixes report
// dLowered, so a whole deletion performs at most one rotation.
func leftShrunk[T any](nl *gnode[T], d T, r *gnode[T], lg, rg bool) (*gnode[T], dres) {
	if !lg { //absorb by gapping the left side
		if nl == nil && r == nil { //would claim height 2 over two leaves
			return &gnode[T]{v: d}, dLowered
		}
		return &gnode[T]{v: d, l: nl, r: r, lg: true, rg: rg}, dSameH
	}
	if !avlish(lg, rg) { //both sides gapped: lower the node itself
		return &gnode[T]{v: d, l: nl, r: r, lg: true}, dLowered
	}
	if r.lg && r.rg { //sibling has slack on both sides: strip it, no rotation
		return &gnode[T]{v: d, l: nl, r: &gnode[T]{v: r.v, l: r.l, r: r.r}, lg: true}, dLowered
	}
	t, grew := rotateLeft(nl, d, r)
	if !grew {
		t.lg, t.rg = true, true //t is fresh; re-gap it to keep the old height
	}
	return t, dSameH
}

// rightShrunk is the mirror image of leftShrunk.
func rightShrunk[T any](l *gnode[T], d T, nr *gnode[T], lg, rg bool) (*gnode[T], dres) {
	if !rg {
		if l == nil && nr == nil {
			return &gnode[T]{v: d}, dLowered
		}
		return &gnode[T]{v: d, l: l, r: nr, lg: lg, rg: true}, dSameH
	}
	if !avlish(lg, rg) {
		return &gnode[T]{v: d, l: l, r: nr, rg: true}, dLowered
	}
	if l.lg && l.rg {
		return &gnode[T]{v: d, l: &gnode[T]{v: l.v, l: l.l, r: l.r}, r: nr, rg: true}, dLowered
	}
	t, grew := rotateRight(l, d, nr)
	if !grew {
		t.lg, t.rg = true, true
	}
	return t, dSameH
}
