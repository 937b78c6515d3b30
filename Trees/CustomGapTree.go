package Trees

// CustomGapTree is a GapTree for element types without a built-in order.
// It carries a three-way comparison function cmp, where cmp(a,b) is
// negative when a orders before b, zero when they are equal, and positive
// otherwise. cmp must describe a total order.
// The comparator travels with every derived tree, so handles produced by
// the write operations keep comparing the same way. All persistence and
// performance properties of GapTree apply unchanged.
type CustomGapTree[T any] struct {
	root *gnode[T]
	rank int
	cmp  func(T, T) int
}

// MakeCustom returns an empty CustomGapTree ordering its elements by cmp.
// Unlike GapTree, the zero value is not usable: it has no comparator.
func MakeCustom[T any](cmp func(T, T) int) CustomGapTree[T] {
	return CustomGapTree[T]{cmp: cmp}
}

// FromCustom builds a CustomGapTree from a slice sorted strictly ascending
// under cmp, like From. If safe==true it validates the ordering and panics
// with InvalidSliceError on violation.
// Time: O(n)
func FromCustom[T any](sli []T, safe bool, cmp func(T, T) int) CustomGapTree[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if cmp(sli[i-1], sli[i]) >= 0 {
				panic(InvalidSliceError[T]{sli[i-1], sli[i]})
			}
		}
	}
	t, h := fromSlice(sli)
	return CustomGapTree[T]{t, h, cmp}
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u CustomGapTree[T]) Height() int {
	return u.rank
}

// IsLeaf [Tree.IsLeaf]
// Time: O(1); Space: O(1)
func (u CustomGapTree[T]) IsLeaf() bool {
	return u.root == nil
}

// Break splits u like GapTree.Break and panics when u is empty. Both
// returned trees keep u's comparator.
// Time: O(1); Space: O(1)
func (u CustomGapTree[T]) Break() (CustomGapTree[T], T, CustomGapTree[T]) {
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
	return CustomGapTree[T]{u.root.l, hl, u.cmp}, u.root.v, CustomGapTree[T]{u.root.r, hr, u.cmp}
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u CustomGapTree[T]) Has(v T) bool {
	return has(u.root, v, u.cmp)
}

// Insert returns a tree containing v along with all of u's elements, and
// whether v was actually added. Persistent like GapTree.Insert.
// Time: O(D)
func (u CustomGapTree[T]) Insert(v T) (CustomGapTree[T], bool) {
	t, res := insert(u.root, v, u.cmp)
	switch res {
	case iPresent:
		return u, false
	case iHigher:
		return CustomGapTree[T]{t, u.rank + 1, u.cmp}, true
	default:
		return CustomGapTree[T]{t, u.rank, u.cmp}, true
	}
}

// Delete returns a tree containing all of u's elements except v, and
// whether v was actually removed. Persistent like GapTree.Delete.
// Time: O(D)
func (u CustomGapTree[T]) Delete(v T) (CustomGapTree[T], bool) {
	t, res, found := remove(u.root, v, u.cmp)
	if !found {
		return u, false
	}
	nr := u.rank
	if res == dLowered {
		nr--
	}
	return CustomGapTree[T]{t, nr, u.cmp}, true
}

// DelMin removes the smallest element of u, returning it, the remaining
// tree, and false when u was empty.
// Time: O(D)
func (u CustomGapTree[T]) DelMin() (T, CustomGapTree[T], bool) {
	if u.root == nil {
		return *new(T), u, false
	}
	v, t, res := delmin(u.root)
	nr := u.rank
	if res == dLowered {
		nr--
	}
	return v, CustomGapTree[T]{t, nr, u.cmp}, true
}

// DelMax removes the largest element of u, returning it, the remaining
// tree, and false when u was empty.
// Time: O(D)
func (u CustomGapTree[T]) DelMax() (T, CustomGapTree[T], bool) {
	if u.root == nil {
		return *new(T), u, false
	}
	v, t, res := delmax(u.root)
	nr := u.rank
	if res == dLowered {
		nr--
	}
	return v, CustomGapTree[T]{t, nr, u.cmp}, true
}

// Join returns a tree holding all of u's elements, then d, then all of r's
// elements, ordered under u's comparator, which the result keeps. The same
// ordering precondition as GapTree.Join applies.
// Time: O(|u.Height()-r.Height()|); Space: same
func (u CustomGapTree[T]) Join(d T, r CustomGapTree[T]) CustomGapTree[T] {
	t, h := join(u.root, u.rank, d, r.root, r.rank)
	return CustomGapTree[T]{t, h, u.cmp}
}

// InOrder [Tree.InOrder]. Recursive, like GapTree.InOrder.
// Time: O(n); Space: O(D)
func (u CustomGapTree[T]) InOrder(f func(T) bool) bool {
	return inorder(u.root, f)
}

// Corrupt [Tree.Corrupt]. The ordering check runs under u's comparator.
// Time: O(n); Space: O(D)
func (u CustomGapTree[T]) Corrupt() bool {
	h, ok := audit(u.root)
	if !ok || h != u.rank {
		return true
	}
	return !ordered(u.root, u.cmp)
}
