package main

// tensorIdx maps the coordinate (i, j, k) of an n×n×n volume onto its
// position in a flat row-major buffer; k varies fastest.
func tensorIdx(i, j, k, n int) int {
	return n*(n*i+j) + k
}

// mirroredNeighbors returns the lower and upper neighbour coordinates of c
// along one axis of length n. At either face the missing neighbour is
// replaced by the interior one, so the pair reads the same cell twice.
func mirroredNeighbors(c, n int) (lo, hi int) {
	lo, hi = c-1, c+1
	if c == 0 {
		lo = hi
	}
	if c == n-1 {
		hi = lo
	}
	// A single-cell axis has no interior neighbour; it mirrors itself.
	return clampCoord(lo, 0, n-1), clampCoord(hi, 0, n-1)
}

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
