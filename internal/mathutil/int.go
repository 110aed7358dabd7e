package mathutil

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FloorDiv divides rounding toward negative infinity, so FloorDiv(-1, 16) is -1.
// b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}

// FloorMod returns the remainder matching FloorDiv; the result is always in [0, b).
func FloorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
