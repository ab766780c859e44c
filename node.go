package skipset

import (
	"cmp"
	randv2 "math/rand/v2"
)

// Node is a single element holder within a SkipSet. Level 0 is the densest
// chain; forward[i] is the next node at level i, or nil at the end of that
// chain. A node present at level i is present at every level below it.
//
// Only the owning container mutates a node. Callers receive read access
// (Value, Height, Next) so a Get result can be inspected and walked.
type Node[T cmp.Ordered] struct {
	value    T
	sentinel bool
	forward  []*Node[T]
}

func newNode[T cmp.Ordered](value T, height int) *Node[T] {
	return &Node[T]{
		value:   value,
		forward: make([]*Node[T], height),
	}
}

// newSentinel builds a head node: it carries no element and anchors every
// level of the list.
func newSentinel[T cmp.Ordered](height int) *Node[T] {
	var zero T
	n := newNode(zero, height)
	n.sentinel = true
	return n
}

// Value returns the stored element. The boolean is false only for the head
// sentinel, which holds no element.
func (n *Node[T]) Value() (T, bool) {
	return n.value, !n.sentinel
}

// Height returns the number of levels this node participates in.
func (n *Node[T]) Height() int {
	return len(n.forward)
}

// Next returns the forward reference at level, or nil when level lies outside
// [0, Height()). An out-of-range level is not an error.
func (n *Node[T]) Next(level int) *Node[T] {
	if level < 0 || level >= len(n.forward) {
		return nil
	}
	return n.forward[level]
}

// setNext overwrites the forward reference at level. Out-of-range levels are
// silently ignored.
func (n *Node[T]) setNext(level int, to *Node[T]) {
	if level < 0 || level >= len(n.forward) {
		return
	}
	n.forward[level] = to
}

// grow appends exactly one empty top level.
func (n *Node[T]) grow() {
	n.forward = append(n.forward, nil)
}

// maybeGrow grows with probability 1/2 and reports whether it did.
func (n *Node[T]) maybeGrow(src randv2.Source) bool {
	if randFloat(src) < 0.5 {
		return false
	}
	n.grow()
	return true
}

// trim removes every level above target so the height becomes exactly target.
// Calls with target < 0 or target >= Height() are no-ops.
func (n *Node[T]) trim(target int) {
	if target < 0 || target >= len(n.forward) {
		return
	}
	for i := len(n.forward); i > target; i-- {
		n.forward[i-1] = nil
	}
	n.forward = n.forward[:target]
}
