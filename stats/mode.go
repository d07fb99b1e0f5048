package stats

// Mode returns every value that occurs with the highest frequency.
//
// Values enter the result in the order they reach the running maximum count:
// a value tying the maximum is appended, a value exceeding it starts a new
// list. An empty slice yields an empty, non-nil result.
//
// Float NaN never equals itself, so each NaN is counted as a distinct value.
func Mode[T comparable](seq []T) []T {
	counts := make(map[T]int, len(seq))
	modes := make([]T, 0, 1)
	maxCount := 0

	for _, v := range seq {
		c := counts[v] + 1
		counts[v] = c

		switch {
		case c == maxCount:
			modes = append(modes, v)
		case c > maxCount:
			maxCount = c
			modes = append(modes[:0], v)
		}
	}

	return modes
}
