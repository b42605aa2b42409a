package main

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldBits(field []float32) []uint32 {
	out := make([]uint32, len(field))
	for i, v := range field {
		out[i] = math.Float32bits(v)
	}
	return out
}

func TestSolveZeroIterationsReturnsZeros(t *testing.T) {
	t.Parallel()
	n := 5
	source := make([]float32, n*n*n)
	for i := range source {
		source[i] = float32(i%7) - 3
	}
	result := newPoissonSolver(n, source, 0, 3, 1).Solve()
	require.Len(t, result, n*n*n)
	for i, v := range result {
		assert.Zero(t, v, "index %d", i)
	}
}

func TestSolveSingleIterationPointSource(t *testing.T) {
	t.Parallel()
	n := 3
	s := newPoissonSolver(n, newPointSource(n), 1, 2, 1)
	result := s.Solve()

	require.Len(t, result, 27)
	assert.Equal(t, float32(-1)/6, s.field.readCurr(1, 1, 1))
	assert.InDelta(t, -0.16667, s.field.readCurr(1, 1, 1), 1e-5)
	for idx, v := range result {
		if idx == tensorIdx(1, 1, 1, n) {
			continue
		}
		assert.Zero(t, v, "index %d", idx)
	}
	// The corner mirrors (1,0,0), (0,1,0) and (0,0,1), all zero before the
	// first sweep.
	assert.Zero(t, s.field.readCurr(0, 0, 0))
}

func TestSolveSecondIterationMirrorsBoundary(t *testing.T) {
	t.Parallel()
	n := 3
	result := newPoissonSolver(n, newPointSource(n), 2, 1, 1).Solve()

	// Face centres see the centre twice through the mirrored neighbour.
	want := float32(-1) / 6 * 2 / 6
	for _, c := range [][3]int{{0, 1, 1}, {2, 1, 1}, {1, 0, 1}, {1, 2, 1}, {1, 1, 0}, {1, 1, 2}} {
		assert.InDelta(t, want, result[tensorIdx(c[0], c[1], c[2], n)], 1e-7, "cell %v", c)
	}
	assert.InDelta(t, -1.0/6, result[tensorIdx(1, 1, 1, n)], 1e-7)
	assert.Zero(t, result[tensorIdx(0, 0, 0, n)])
	assert.Zero(t, result[tensorIdx(0, 0, 1, n)])
}

func TestSolveScalesSourceByDeltaSquared(t *testing.T) {
	t.Parallel()
	n := 3
	result := newPoissonSolver(n, newPointSource(n), 1, 1, 2).Solve()
	assert.InDelta(t, -4.0/6, result[tensorIdx(1, 1, 1, n)], 1e-7)
}

func TestSolveIsIndependentOfWorkerCount(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 3, 7, 9} {
		source := newSphereSource(n, 1)
		source[0] = 0.25
		reference := newPoissonSolver(n, source, 25, 1, 0.5).Solve()
		for workers := 2; workers <= n+3; workers++ {
			got := newPoissonSolver(n, source, 25, workers, 0.5).Solve()
			if diff := cmp.Diff(fieldBits(reference), fieldBits(got)); diff != "" {
				t.Fatalf("n=%d workers=%d differs from serial solve (-want +got):\n%s", n, workers, diff)
			}
		}
	}
}

func TestSolveIsSymmetricUnderAxisPermutation(t *testing.T) {
	t.Parallel()
	n := 7
	result := newPoissonSolver(n, newPointSource(n), 40, 4, 1).Solve()
	at := func(i, j, k int) float64 { return float64(result[tensorIdx(i, j, k, n)]) }
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				v := at(i, j, k)
				assert.InDelta(t, v, at(j, i, k), 1e-6)
				assert.InDelta(t, v, at(k, j, i), 1e-6)
				assert.InDelta(t, v, at(i, k, j), 1e-6)
				assert.InDelta(t, v, at(j, k, i), 1e-6)
			}
		}
	}
}

func TestSolveIsTerminal(t *testing.T) {
	t.Parallel()
	n := 5
	s := newPoissonSolver(n, newPointSource(n), 3, 2, 1)
	first := append([]float32(nil), s.Solve()...)
	second := s.Solve()
	assert.Equal(t, first, second)
	assert.Equal(t, 2, s.Workers())
	assert.Nil(t, s.field.next)
}

func TestSolveDoesNotModifySource(t *testing.T) {
	t.Parallel()
	n := 5
	source := newSphereSource(n, 1)
	before := append([]float32(nil), source...)
	newPoissonSolver(n, source, 10, 3, 1).Solve()
	assert.Equal(t, before, source)
}

func TestSolveFieldCPUBackend(t *testing.T) {
	t.Parallel()
	cfg := runConfig{size: 3, iterations: 1, workers: 2, delta: 1}
	result, _, err := solveField(cfg, newPointSource(3))
	require.NoError(t, err)
	assert.Equal(t, float32(-1)/6, result[tensorIdx(1, 1, 1, 3)])
}
