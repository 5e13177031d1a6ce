package editor

import (
	"errors"
	"slices"
)

var (
	// ErrOutOfRange is returned for an index past the end of a list.
	ErrOutOfRange = errors.New("index out of range")
	// ErrStalePath marks an edit path that addresses a removed node. The
	// navigator recovers from it by ascending; it never leaves the package.
	ErrStalePath = errors.New("edit path addresses a removed node")
	// ErrClosed is returned by operations that need an open edit session.
	ErrClosed = errors.New("no record is open for editing")
)

// Tree exposes the shape of an index-addressed forest. ChildCount reports
// how many children the node at path has; the empty path addresses the
// collection itself. ok is false when path does not address a node.
type Tree interface {
	ChildCount(path []int) (n int, ok bool)
}

// Navigator tracks which node of a tree is open for editing. The zero
// Navigator is closed. An open path starts with the index of a top-level
// record; every further element selects a child of the previous node.
type Navigator struct {
	path []int
}

// Closed reports whether no node is open.
func (n *Navigator) Closed() bool { return len(n.path) == 0 }

// Path returns a copy of the open path.
func (n *Navigator) Path() []int { return slices.Clone(n.path) }

// Depth is the length of the open path.
func (n *Navigator) Depth() int { return len(n.path) }

// OpenRoot opens top-level record i, replacing any open path.
func (n *Navigator) OpenRoot(t Tree, i int) error {
	count, _ := t.ChildCount(nil)
	if i < 0 || i >= count {
		return ErrOutOfRange
	}
	n.path = []int{i}
	return nil
}

// Descend opens child j of the current node.
func (n *Navigator) Descend(t Tree, j int) error {
	if n.Closed() {
		return ErrClosed
	}
	count, ok := t.ChildCount(n.path)
	if !ok {
		n.Reconcile(t)
		return ErrStalePath
	}
	if j < 0 || j >= count {
		return ErrOutOfRange
	}
	n.path = append(n.path, j)
	return nil
}

// Ascend closes the current node and returns to its parent. Ascending from
// a top-level record closes the navigator.
func (n *Navigator) Ascend() {
	if len(n.path) > 0 {
		n.path = n.path[:len(n.path)-1]
	}
	if len(n.path) == 0 {
		n.path = nil
	}
}

// Close drops the whole path.
func (n *Navigator) Close() { n.path = nil }

// Removed updates the path after child index was removed from the node at
// parent. When the removed child lies on the open path the path is cut back
// to parent; when it precedes the path's element at that depth, the element
// shifts down so the path keeps addressing the same node.
func (n *Navigator) Removed(parent []int, index int) {
	d := len(parent)
	if len(n.path) <= d || !slices.Equal(n.path[:d], parent) {
		return
	}
	switch k := n.path[d]; {
	case k == index:
		n.path = n.path[:d]
		if d == 0 {
			n.path = nil
		}
	case k > index:
		n.path[d]--
	}
}

// Swapped updates the path after children i and i+1 of the node at parent
// traded places.
func (n *Navigator) Swapped(parent []int, i int) {
	d := len(parent)
	if len(n.path) <= d || !slices.Equal(n.path[:d], parent) {
		return
	}
	switch n.path[d] {
	case i:
		n.path[d] = i + 1
	case i + 1:
		n.path[d] = i
	}
}

// Reconcile cuts the path back to its longest prefix that still addresses
// a node of t. It reports whether anything was cut.
func (n *Navigator) Reconcile(t Tree) bool {
	for d := range n.path {
		count, ok := t.ChildCount(n.path[:d])
		if !ok || n.path[d] < 0 || n.path[d] >= count {
			if d == 0 {
				n.path = nil
			} else {
				n.path = n.path[:d]
			}
			return true
		}
	}
	return false
}
