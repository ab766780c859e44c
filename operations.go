package skipset

// Insert adds value with a randomized height and reports whether the set
// changed. Inserting a value that is already present is a no-op returning
// false.
func (s *SkipSet[T]) Insert(value T) bool {
	return s.insert(value, randomHeight(s.src, s.maxHeight))
}

// InsertWithHeight adds value with a caller-chosen node height instead of a
// randomized one. The height is clamped to [1, Height()] so a data node can
// never outgrow the head sentinel.
func (s *SkipSet[T]) InsertWithHeight(value T, height int) bool {
	if height < 1 {
		height = 1
	}
	if height > s.maxHeight {
		height = s.maxHeight
	}
	return s.insert(value, height)
}

func (s *SkipSet[T]) insert(value T, height int) bool {
	update := s.joinPoints(value)
	if next := update[0].Next(0); next != nil && next.value == value {
		s.metrics.InsertsRejected++
		return false
	}

	node := newNode(value, height)
	// Lowest level first, and each forward target is read before its join
	// point is rewritten, so the new node can never end up linked to itself.
	for level := 0; level < height; level++ {
		node.setNext(level, update[level].Next(level))
		update[level].setNext(level, node)
	}

	s.size++
	s.metrics.Inserts++
	if expectedHeight(s.size) > s.maxHeight && s.canGrow() {
		s.grow()
	}
	return true
}

// Delete removes value and reports whether it was present. Deleting an absent
// value is a no-op returning false.
func (s *SkipSet[T]) Delete(value T) bool {
	update := s.joinPoints(value)
	target := update[0].Next(0)
	if target == nil || target.value != value {
		s.metrics.DeletesMissed++
		return false
	}

	// The join point at every level the target participates in points
	// directly at it; splice it out of each chain.
	for level := 0; level < target.Height(); level++ {
		update[level].setNext(level, target.Next(level))
	}

	s.size--
	s.metrics.Deletes++
	if expectedHeight(s.size) < s.maxHeight {
		s.trim()
	}
	return true
}
