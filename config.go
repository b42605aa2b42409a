package main

// Solver and output configuration defaults. Any of these can be overridden on
// the command line; see flags.go.
const (
	defaultSize         = 7
	defaultIterations   = 300
	defaultDelta        = 1.0
	reservedCPUs        = 3
	slicePrecision      = 5
	stencilPoints       = 6
	viewWindowScale     = 64
	viewMaxWindowPixels = 768
	plotSizeInches      = 5
	dumpFloat32Bytes    = 4
	dumpFloat16Bytes    = 2
)

// defaultWorkerCount derives a worker count from the host CPU count, leaving a
// few CPUs free for the rest of the system. It never returns less than one.
func defaultWorkerCount(cpus int) int {
	n := cpus - reservedCPUs
	if n < 1 {
		return 1
	}
	return n
}
