package todo

// Bounds returns the half-open index range [start, end) of a 1-based page
// over a list of n entries. Pages past the end (or below 1) yield an empty
// range rather than an error; callers are free to sit on such a page.
func Bounds(page, size, n int) (start, end int) {
	if size <= 0 || n <= 0 {
		return 0, 0
	}
	end = page * size
	start = end - size
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	return start, end
}

// PageSlice returns the entries displayed on the given 1-based page.
func PageSlice(list []Todo, page, size int) []Todo {
	start, end := Bounds(page, size, len(list))
	return list[start:end]
}

// HasPrev reports whether the "Previous" control is enabled.
func HasPrev(page int) bool {
	return page != 1
}

// HasNext reports whether the "Next" control is enabled. It is disabled once
// the last index of the current page reaches the list length.
func HasNext(page, size, n int) bool {
	return page*size < n
}

// PageCount returns the number of pages needed to show n entries (minimum 1).
func PageCount(size, n int) int {
	if size <= 0 || n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
