package Trees

import "fmt"

// Tree is the read-only surface shared by the persistent trees in this
// package. The write operations (Insert, Delete, DelMin, DelMax, Join) are
// deliberately not part of it: each returns a new tree value and leaves the
// receiver intact, so their signatures mention the concrete type. A tree
// value is a small handle that can be copied freely; copies share structure
// and never interfere with each other. Because no operation ever modifies a
// node after it is linked into a returned tree, any number of goroutines may
// read (or derive new trees from) the same handle without synchronization.
type Tree[T any] interface {
	//Has reports whether element v is in the tree.
	Has(v T) bool
	//Height of the tree. A leaf (the empty tree) has height 0.
	Height() int
	//IsLeaf reports whether the tree is empty.
	IsLeaf() bool
	//InOrder visits elements in ascending order until f returns false,
	//reporting whether the walk ran to completion. Recursive.
	InOrder(f func(T) bool) bool
	//Corrupt returns whether the tree has corrupt structures, when the
	//value or balance data at some node violates the properties of that
	//specific implementation.
	Corrupt() bool
}

// InvalidSliceError is the panic value raised by From(sli, true) when sli
// isn't sorted strictly ascending. Prev and Cur are the offending neighbors.
type InvalidSliceError[T any] struct {
	Prev, Cur T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("Trees: slice not strictly ascending: %v is not before %v", e.Prev, e.Cur)
}
