package main

// poissonField stores the buffers required by the Jacobi relaxation: the
// read-only source term and the current/next solution buffers. curr and next
// are owned by the solver and exchanged after every sweep.
type poissonField struct {
	n      int
	source []float32
	curr   []float32
	next   []float32
}

// newPoissonField allocates zeroed solution buffers for an n×n×n volume.
// source must hold n³ values and is never written.
func newPoissonField(n int, source []float32) *poissonField {
	size := n * n * n
	return &poissonField{
		n:      n,
		source: source,
		curr:   make([]float32, size),
		next:   make([]float32, size),
	}
}

// readCurr returns the value in the current buffer at the given coordinates.
func (f *poissonField) readCurr(i, j, k int) float32 {
	return f.curr[tensorIdx(i, j, k, f.n)]
}

// swap exchanges the current and next buffers so the freshly written sweep
// becomes the current state.
func (f *poissonField) swap() {
	f.curr, f.next = f.next, f.curr
}

// sliceAt copies the axis-0 plane i of an n³ field into row-major rows.
func sliceAt(field []float32, n, i int) [][]float32 {
	rows := make([][]float32, n)
	for j := range rows {
		base := tensorIdx(i, j, 0, n)
		rows[j] = append([]float32(nil), field[base:base+n]...)
	}
	return rows
}
