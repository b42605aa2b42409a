package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"runtime"
)

var (
	errEvenSize        = errors.New("n should be an odd number")
	errNonPositiveSize = errors.New("n should be a positive number")
)

// runConfig is the resolved command-line configuration handed to run.
type runConfig struct {
	// size is the edge length of the cubic volume.
	size int
	// iterations is the fixed number of Jacobi sweeps.
	iterations int
	// workers is the resolved number of slab workers, always >= 1 after
	// parseConfig.
	workers int
	// delta is the finite-difference step size scaling the source term.
	delta float64

	// sourceRadius widens the centre point source into a solid sphere.
	sourceRadius int

	debug      bool
	check      bool
	useOpenCL  bool
	view       bool
	plotPath   string
	dumpPath   string
	dumpFP16   bool
	cpuProfile string
}

// parseConfig reads command-line flags into a runConfig. The worker count
// falls back to defaultWorkerCount when -t is omitted or zero.
func parseConfig(args []string, output io.Writer) (runConfig, error) {
	var cfg runConfig
	fs := flag.NewFlagSet("poisson", flag.ContinueOnError)
	fs.SetOutput(output)

	// size sets the edge length of the volume; it must be odd so the centre
	// cell is well defined.
	fs.IntVar(&cfg.size, "n", defaultSize, "size of one edge of the volume (odd)")

	// iterations is the number of relaxation sweeps; there is no early stop.
	fs.IntVar(&cfg.iterations, "i", defaultIterations, "number of iterations")

	// workers overrides the slab worker count.
	fs.IntVar(&cfg.workers, "t", 0, "number of worker goroutines (0 = derive from host CPUs)")

	fs.Float64Var(&cfg.delta, "delta", defaultDelta, "finite-difference step size")
	fs.IntVar(&cfg.sourceRadius, "source-radius", 0, "radius of the spherical source around the centre (0 = single point)")

	// debug logs timing and field statistics to stderr.
	fs.BoolVar(&cfg.debug, "debug", false, "log solve duration and field statistics")

	fs.BoolVar(&cfg.check, "check", false, "verify the result is bit-identical to a single-worker solve")
	fs.BoolVar(&cfg.useOpenCL, "opencl", false, "run the solve on an OpenCL device (requires -tags opencl)")
	fs.BoolVar(&cfg.view, "view", false, "show the central slice in a window (requires -tags view)")
	fs.StringVar(&cfg.plotPath, "plot", "", "write a heat map of the central slice to this PNG file")
	fs.StringVar(&cfg.dumpPath, "dump", "", "write the full result field as raw little-endian floats to this file")
	fs.BoolVar(&cfg.dumpFP16, "dump-fp16", false, "store the -dump output as 16-bit floats")
	fs.StringVar(&cfg.cpuProfile, "cpuprofile", "", "write a CPU profile of the solve to this file")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.workers == 0 {
		cfg.workers = defaultWorkerCount(runtime.NumCPU())
	}
	return cfg, nil
}

// validate rejects configurations the solver must never be handed.
func (c runConfig) validate() error {
	if c.size <= 0 {
		return errNonPositiveSize
	}
	if c.size%2 == 0 {
		return errEvenSize
	}
	if c.iterations < 0 {
		return fmt.Errorf("iterations should not be negative (got %d)", c.iterations)
	}
	if c.workers < 1 {
		return fmt.Errorf("threads should be positive (got %d)", c.workers)
	}
	if math.IsNaN(c.delta) || math.IsInf(c.delta, 0) || c.delta <= 0 {
		return fmt.Errorf("delta should be a positive finite number (got %v)", c.delta)
	}
	if c.sourceRadius < 0 {
		return fmt.Errorf("source radius should not be negative (got %d)", c.sourceRadius)
	}
	if c.check && c.useOpenCL {
		return errors.New("-check compares CPU solves and cannot be combined with -opencl")
	}
	return nil
}
