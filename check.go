package main

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// checkWorkerCounts returns the worker counts a result is cross-checked
// against: a serial solve, the configured count, and one more worker than
// there are planes so some slabs are empty.
func checkWorkerCounts(cfg runConfig) []int {
	counts := []int{1}
	for _, c := range []int{cfg.workers, cfg.size + 1} {
		seen := false
		for _, prev := range counts {
			seen = seen || prev == c
		}
		if !seen {
			counts = append(counts, c)
		}
	}
	return counts
}

// verifyDeterminism re-solves the problem concurrently for every count from
// checkWorkerCounts and reports the first result that is not bit-identical
// to result.
func verifyDeterminism(cfg runConfig, source, result []float32) error {
	var g errgroup.Group
	for _, workers := range checkWorkerCounts(cfg) {
		workers := workers
		g.Go(func() error {
			s := newPoissonSolver(cfg.size, source, cfg.iterations, workers, float32(cfg.delta))
			if idx, ok := firstBitDifference(result, s.Solve()); !ok {
				return fmt.Errorf("result differs from %d-worker solve at index %d", workers, idx)
			}
			return nil
		})
	}
	return g.Wait()
}

// firstBitDifference compares two fields bit for bit. It returns the first
// differing index and false, or -1 and true when they are identical.
func firstBitDifference(a, b []float32) (int, bool) {
	if len(a) != len(b) {
		return min(len(a), len(b)), false
	}
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return i, false
		}
	}
	return -1, true
}
