package skipset

import "math"

// expectedHeight is the level count a set of n elements should run at:
// ceil(log2(n)), floored at one level for empty and single-element sets.
func expectedHeight(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n))))
}

// canGrow reports whether the set may add another level. A fixed-height set
// stops at its cap; an auto-sized one has no ceiling.
func (s *SkipSet[T]) canGrow() bool {
	return !s.fixedHeight || s.maxHeight < s.heightCap
}

// grow raises the list-wide level count by one. The head always joins the new
// top level; every node sitting at exactly the old max height flips a coin,
// and winners are chained into the new level in order during a single pass
// over the old top chain.
func (s *SkipSet[T]) grow() {
	oldTop := s.maxHeight - 1
	oldMax := s.maxHeight
	s.head.grow()

	prev := s.head
	for spot := s.head.Next(oldTop); spot != nil; spot = spot.Next(oldTop) {
		if spot.Height() == oldMax && spot.maybeGrow(s.src) {
			prev.setNext(oldMax, spot)
			prev = spot
		}
	}

	s.maxHeight++
	s.metrics.Grows++
}

// trim lowers the list-wide level count. A fixed-height set snaps straight
// down to the expected height; an auto-sized one sheds a single level per
// delete. Every node still reaching above the new height is cut down so no
// chain survives on a level the list no longer maintains.
func (s *SkipSet[T]) trim() {
	target := s.maxHeight - 1
	if expected := expectedHeight(s.size); s.fixedHeight && s.maxHeight > expected {
		target = expected
	}

	// target is also the index of the lowest level being removed; every
	// node taller than target is on that chain. Grab it before trimming
	// the head drops the entry point.
	spot := s.head.Next(target)
	s.head.trim(target)
	for spot != nil {
		next := spot.Next(target)
		spot.trim(target)
		spot = next
	}

	s.maxHeight = target
	s.metrics.Trims++
}
