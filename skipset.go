// Package skipset provides an ordered set of comparable elements backed by a
// skip list. Search, insertion and deletion run in expected logarithmic time;
// balance is probabilistic, with the list-wide level count tracking
// ceil(log2(size)) as elements come and go.
//
// The container assumes a single logical writer: there is no internal locking
// and operations must not be interleaved by concurrent callers.
package skipset

import (
	"cmp"
	randv2 "math/rand/v2"
)

// SkipSet is a sorted sequence of unique elements. The zero value is not
// usable; construct one with New or NewWithHeight.
type SkipSet[T cmp.Ordered] struct {
	head      *Node[T]
	maxHeight int
	size      int

	// heightCap and fixedHeight record a caller-supplied bound from
	// NewWithHeight. A fixed-height set never grows past the cap and trims
	// by snapping straight down to the expected height.
	heightCap   int
	fixedHeight bool

	src randv2.Source

	// scratch join-point vector, reused across mutations. Safe under the
	// single-logical-writer contract.
	update []*Node[T]

	metrics Metrics
}

type options struct {
	src randv2.Source
}

// Option configures a SkipSet at construction.
type Option func(*options)

// WithRandSource injects the randomness source used for node height draws and
// grow coin flips. Tests pass a seeded or stubbed source to make structure
// deterministic.
func WithRandSource(src randv2.Source) Option {
	return func(o *options) { o.src = src }
}

// New returns an empty auto-sized set. The level count starts at one and
// follows ceil(log2(size)) as elements arrive.
func New[T cmp.Ordered](opts ...Option) *SkipSet[T] {
	return newSkipSet[T](1, false, opts)
}

// NewWithHeight returns an empty set whose level count starts at height and
// never exceeds it. Heights below one are clamped to one.
func NewWithHeight[T cmp.Ordered](height int, opts ...Option) *SkipSet[T] {
	return newSkipSet[T](height, true, opts)
}

func newSkipSet[T cmp.Ordered](height int, fixed bool, opts []Option) *SkipSet[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = defaultSource()
	}
	if height < 1 {
		height = 1
	}
	return &SkipSet[T]{
		head:        newSentinel[T](height),
		maxHeight:   height,
		heightCap:   height,
		fixedHeight: fixed,
		src:         o.src,
	}
}

// Len returns the number of elements in the set.
func (s *SkipSet[T]) Len() int {
	return s.size
}

// Height returns the number of levels the set currently maintains. It always
// equals the head sentinel's height.
func (s *SkipSet[T]) Height() int {
	return s.maxHeight
}

// Head returns the sentinel node every traversal starts from. It holds no
// element; Head().Next(0) is the smallest element in the set.
func (s *SkipSet[T]) Head() *Node[T] {
	return s.head
}

// Contains reports whether value is in the set.
func (s *SkipSet[T]) Contains(value T) bool {
	return s.search(value) != nil
}

// Get returns the node holding value, or nil when value is absent.
func (s *SkipSet[T]) Get(value T) *Node[T] {
	return s.search(value)
}

// Stats returns a snapshot of the set's operation counters.
func (s *SkipSet[T]) Stats() Metrics {
	return s.metrics
}
