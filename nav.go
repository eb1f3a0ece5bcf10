package ariatabs

// NextIndex computes the index reached by moving one step from current
// over a sequence of length elements.
//
// direction is +1 (next) or -1 (previous). When loop is true the
// result wraps: a step below 0 lands on length-1 and a step past the
// end lands on 0. When loop is false the result clamps to
// [0, length-1].
//
// NextIndex is pure and has no side effects. Callers hold the
// invariant that at least one element exists; a length of 0 returns 0.
func NextIndex(length, current, direction int, loop bool) int {
	if length <= 0 {
		return 0
	}
	next := current + direction
	if loop {
		if next < 0 {
			return length - 1
		}
		if next >= length {
			return 0
		}
		return next
	}
	if next < 0 {
		return 0
	}
	if next > length-1 {
		return length - 1
	}
	return next
}
