// Command poisson approximates the 3D discrete Poisson equation on an odd
// n×n×n volume with Neumann (reflecting) boundaries, using a fixed number of
// Jacobi iterations split across worker goroutines, and prints the central
// cross-section of the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one solve and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v!\n", err)
		return 1
	}

	source := newSphereSource(cfg.size, cfg.sourceRadius)

	if cfg.cpuProfile != "" {
		stop, err := startCPUProfile(cfg.cpuProfile)
		if err != nil {
			logger.Printf("Error: %v", err)
			return 1
		}
		defer stop()
	}

	result, elapsed, err := solveField(cfg, source)
	if err != nil {
		logger.Printf("Error: %v", err)
		return 1
	}
	if cfg.debug {
		stats := summarize(result)
		logger.Printf("Duration: %d", elapsed.Microseconds())
		logger.Printf("Workers: %d, n: %d, iterations: %d, delta: %g", cfg.workers, cfg.size, cfg.iterations, cfg.delta)
		logger.Printf("Field: min=%.6g max=%.6g sum=%.6g norm=%.6g residual=%.6g",
			stats.Min, stats.Max, stats.Sum, stats.Norm, residual(result, source, cfg.size, float32(cfg.delta)))
	}
	if cfg.check {
		if err := verifyDeterminism(cfg, source, result); err != nil {
			logger.Printf("Error: determinism check failed: %v", err)
			return 1
		}
		logger.Printf("Determinism check passed for worker counts %v", checkWorkerCounts(cfg))
	}

	slice := sliceAt(result, cfg.size, cfg.size/2)
	if err := writeSlice(stdout, slice); err != nil {
		logger.Printf("Error: writing slice: %v", err)
		return 1
	}

	title := fmt.Sprintf("Poisson n=%d iterations=%d, slice i=%d", cfg.size, cfg.iterations, cfg.size/2)
	if cfg.plotPath != "" {
		if err := writePlot(cfg.plotPath, title, slice); err != nil {
			logger.Printf("Error: %v", err)
			return 1
		}
	}
	if cfg.dumpPath != "" {
		if err := writeDumpFile(cfg.dumpPath, result, cfg.dumpFP16); err != nil {
			logger.Printf("Error: %v", err)
			return 1
		}
	}
	if cfg.view {
		if err := showSlice(title, slice); err != nil {
			logger.Printf("Error: %v", err)
			return 1
		}
	}
	return 0
}
