package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTree maps a formatted path to its child count.
type fakeTree map[string]int

func (f fakeTree) ChildCount(path []int) (int, bool) {
	n, ok := f[fmt.Sprint(path)]
	return n, ok
}

func newFakeTree() fakeTree {
	return fakeTree{
		"[]":      3,
		"[0]":     0,
		"[1]":     2,
		"[1 0]":   0,
		"[1 1]":   1,
		"[1 1 0]": 0,
		"[2]":     0,
	}
}

func TestNavigatorTransitions(t *testing.T) {
	tree := newFakeTree()
	var n Navigator
	assert.True(t, n.Closed())

	assert.ErrorIs(t, n.Descend(tree, 0), ErrClosed)
	assert.ErrorIs(t, n.OpenRoot(tree, 3), ErrOutOfRange)

	require.NoError(t, n.OpenRoot(tree, 1))
	assert.Equal(t, []int{1}, n.Path())

	require.NoError(t, n.Descend(tree, 1))
	require.NoError(t, n.Descend(tree, 0))
	assert.Equal(t, []int{1, 1, 0}, n.Path())
	assert.ErrorIs(t, n.Descend(tree, 0), ErrOutOfRange, "leaf has no children")
	assert.Equal(t, 3, n.Depth())

	n.Ascend()
	assert.Equal(t, []int{1, 1}, n.Path())
	n.Ascend()
	n.Ascend()
	assert.True(t, n.Closed())
	n.Ascend()
	assert.True(t, n.Closed())
}

func TestNavigatorRemovedTail(t *testing.T) {
	n := Navigator{path: []int{1, 1, 0}}
	n.Removed([]int{1, 1}, 0)
	assert.Equal(t, []int{1, 1}, n.Path(), "deleting the open node collapses exactly one level")
}

func TestNavigatorRemovedShiftsLaterSiblings(t *testing.T) {
	n := Navigator{path: []int{4, 2, 1}}
	n.Removed([]int{4}, 0)
	assert.Equal(t, []int{4, 1, 1}, n.Path())

	n.Removed([]int{4}, 3)
	assert.Equal(t, []int{4, 1, 1}, n.Path(), "later siblings do not affect the path")

	n.Removed(nil, 2)
	assert.Equal(t, []int{3, 1, 1}, n.Path())

	n.Removed([]int{9}, 0)
	assert.Equal(t, []int{3, 1, 1}, n.Path(), "other subtrees do not affect the path")
}

func TestNavigatorRemovedAncestor(t *testing.T) {
	n := Navigator{path: []int{2, 0, 1}}
	n.Removed([]int{2}, 0)
	assert.Equal(t, []int{2}, n.Path())

	n.Removed(nil, 2)
	assert.True(t, n.Closed())
}

func TestNavigatorSwapped(t *testing.T) {
	n := Navigator{path: []int{0, 3}}
	n.Swapped([]int{0}, 3)
	assert.Equal(t, []int{0, 4}, n.Path())
	n.Swapped([]int{0}, 3)
	assert.Equal(t, []int{0, 3}, n.Path())
	n.Swapped([]int{0}, 0)
	assert.Equal(t, []int{0, 3}, n.Path())
}

func TestNavigatorReconcile(t *testing.T) {
	tree := newFakeTree()
	n := Navigator{path: []int{1, 1, 0}}
	assert.False(t, n.Reconcile(tree))

	tree["[1 1]"] = 0
	delete(tree, "[1 1 0]")
	assert.True(t, n.Reconcile(tree))
	assert.Equal(t, []int{1, 1}, n.Path())

	tree["[]"] = 1
	assert.True(t, n.Reconcile(tree))
	assert.True(t, n.Closed())
}
