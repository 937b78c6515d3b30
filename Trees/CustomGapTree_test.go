package Trees

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func descending(a, b int) int {
	return cmp.Compare(b, a)
}

func TestCustomGapTree_Reverse(t *testing.T) {
	tree := MakeCustom(descending)
	content := make(map[int]struct{})
	for range 10000 {
		b := rg.Intn(tAddValRange)
		tree, _ = tree.Insert(b)
		content[b] = struct{}{}
	}
	require.False(t, tree.Corrupt())
	var s []int
	tree.InOrder(func(v int) bool {
		s = append(s, v)
		return true
	})
	assert.Len(t, s, len(content))
	assert.True(t, slices.IsSortedFunc(s, descending), "walk is not descending")
	for k := range content {
		assert.True(t, tree.Has(k))
	}
	for k := range content {
		var removed bool
		tree, removed = tree.Delete(k)
		require.True(t, removed)
		break
	}
	assert.False(t, tree.Corrupt())
}

type account struct {
	id   uint64
	name string
}

func byID(a, b account) int {
	return cmp.Compare(a.id, b.id)
}

func TestCustomGapTree_Struct(t *testing.T) {
	tree := MakeCustom(byID)
	for _, a := range []account{{3, "c"}, {1, "a"}, {4, "d"}, {2, "b"}} {
		var added bool
		tree, added = tree.Insert(a)
		require.True(t, added)
	}
	require.False(t, tree.Corrupt())
	assert.True(t, tree.Has(account{id: 2}), "comparator should ignore the name field")
	_, added := tree.Insert(account{2, "other"})
	assert.False(t, added)

	var names []string
	tree.InOrder(func(a account) bool {
		names = append(names, a.name)
		return true
	})
	assert.Equal(t, []string{"a", "b", "c", "d"}, names)

	mn, nt, ok := tree.DelMin()
	require.True(t, ok)
	assert.Equal(t, uint64(1), mn.id)
	mx, nt, ok := nt.DelMax()
	require.True(t, ok)
	assert.Equal(t, uint64(4), mx.id)
	assert.False(t, nt.Corrupt())
	assert.Equal(t, 2, nt.Height())
}

func TestCustomGapTree_JoinBreak(t *testing.T) {
	l := FromCustom([]account{{1, "a"}, {2, "b"}, {3, "c"}}, true, byID)
	r := FromCustom([]account{{5, "e"}, {6, "f"}}, true, byID)
	j := l.Join(account{4, "d"}, r)
	require.False(t, j.Corrupt())

	jl, v, jr := j.Break()
	assert.False(t, jl.Corrupt())
	assert.False(t, jr.Corrupt())
	assert.True(t, jl.Height() < j.Height() && jr.Height() < j.Height())
	assert.False(t, j.Has(account{id: 0}))
	assert.True(t, j.Has(v))

	assert.Panics(t, func() { MakeCustom(byID).Break() })
	assert.PanicsWithValue(t, InvalidSliceError[account]{account{2, "b"}, account{1, "a"}}, func() {
		FromCustom([]account{{2, "b"}, {1, "a"}}, true, byID)
	})
}
