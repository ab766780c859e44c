package skipset

// search is the top-down probe shared by Contains and Get: at each level,
// advance while the next value is below the target, drop a level otherwise.
// Meeting the target at any level ends the walk immediately.
func (s *SkipSet[T]) search(value T) *Node[T] {
	s.metrics.Searches++
	cur := s.head
	for level := s.maxHeight - 1; level >= 0; level-- {
		for {
			next := cur.Next(level)
			if next == nil {
				break
			}
			s.metrics.Comparisons++
			if next.value == value {
				return next
			}
			if next.value > value {
				break
			}
			cur = next
		}
	}
	return nil
}

// joinPoints runs the same descent as search but never exits early; it fills
// the scratch vector so that joinPoints(value)[level] is the rightmost node
// before value that still participates in level. The vector is indexed
// ascending by level, directly in collection order.
func (s *SkipSet[T]) joinPoints(value T) []*Node[T] {
	update := s.scratch()
	cur := s.head
	for level := s.maxHeight - 1; level >= 0; level-- {
		for {
			next := cur.Next(level)
			if next == nil {
				break
			}
			s.metrics.Comparisons++
			if next.value >= value {
				break
			}
			cur = next
		}
		update[level] = cur
	}
	return update
}

// scratch returns the reusable join-point buffer, cleared and sized to the
// current height.
func (s *SkipSet[T]) scratch() []*Node[T] {
	if cap(s.update) < s.maxHeight {
		s.update = make([]*Node[T], s.maxHeight)
	}
	s.update = s.update[:s.maxHeight]
	for i := range s.update {
		s.update[i] = nil
	}
	return s.update
}
