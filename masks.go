package main

// slab is a half-open range [start, end) of axis-0 indices updated by one
// worker. An empty slab has start == end.
type slab struct{ start, end int }

// empty reports whether the slab covers no planes.
func (s slab) empty() bool { return s.end <= s.start }

// decompose splits axis 0 of an n-cell volume into exactly workerCount
// contiguous slabs of width ceil(n/workerCount). The last non-empty slab may
// be narrower; when workerCount exceeds n the trailing slabs are empty.
func decompose(n, workerCount int) []slab {
	if workerCount < 1 {
		workerCount = 1
	}
	width := (n + workerCount - 1) / workerCount
	slabs := make([]slab, workerCount)
	for t := range slabs {
		start := min(t*width, n)
		end := min(start+width, n)
		slabs[t] = slab{start: start, end: end}
	}
	return slabs
}
