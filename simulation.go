package main

import (
	"log"
	"time"
)

// poissonSolver relaxes the discrete Poisson equation ∇²u = -source on an
// n×n×n volume for a fixed number of Jacobi iterations. It is single use:
// after Solve returns the solver only reports its result.
type poissonSolver struct {
	field      *poissonField
	iterations int
	slabs      []slab
	delta2     float32

	done    bool
	elapsed time.Duration
}

// newPoissonSolver prepares a solve. n must be odd and workers positive;
// neither is checked here.
func newPoissonSolver(n int, source []float32, iterations, workers int, delta float32) *poissonSolver {
	return &poissonSolver{
		field:      newPoissonField(n, source),
		iterations: iterations,
		slabs:      decompose(n, workers),
		delta2:     delta * delta,
	}
}

// Solve runs every iteration and returns the final field. Later calls return
// the same result without iterating again.
func (s *poissonSolver) Solve() []float32 {
	if s.done {
		return s.field.curr
	}
	start := time.Now()
	if s.iterations > 0 {
		pool := newWorkerPool(s.field, s.slabs, s.delta2)
		for iter := 0; iter < s.iterations; iter++ {
			pool.sweep()
			s.field.swap()
		}
		pool.close()
	}
	s.elapsed = time.Since(start)
	s.done = true
	s.field.next = nil
	return s.field.curr
}

// Elapsed reports how long Solve spent iterating.
func (s *poissonSolver) Elapsed() time.Duration { return s.elapsed }

// Workers reports the number of slab workers the solve uses.
func (s *poissonSolver) Workers() int { return len(s.slabs) }

// solveField runs the configured backend and returns the result with the
// time spent solving.
func solveField(cfg runConfig, source []float32) ([]float32, time.Duration, error) {
	if cfg.useOpenCL {
		gpu, err := newOpenCLPoissonSolver(cfg.size, source, cfg.iterations, float32(cfg.delta))
		if err != nil {
			return nil, 0, err
		}
		defer gpu.Close()
		log.Printf("OpenCL solver enabled (device: %s)", gpu.DeviceName())
		start := time.Now()
		result, err := gpu.Solve()
		if err != nil {
			return nil, 0, err
		}
		return result, time.Since(start), nil
	}
	cpu := newPoissonSolver(cfg.size, source, cfg.iterations, cfg.workers, float32(cfg.delta))
	result := cpu.Solve()
	return result, cpu.Elapsed(), nil
}
