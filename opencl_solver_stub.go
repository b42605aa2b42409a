//go:build !opencl

package main

import "errors"

var errOpenCLUnavailable = errors.New("OpenCL support is not enabled; rebuild with -tags opencl")

type openCLPoissonSolver struct{}

func newOpenCLPoissonSolver(n int, _ []float32, _ int, _ float32) (*openCLPoissonSolver, error) {
	return nil, errOpenCLUnavailable
}

func (s *openCLPoissonSolver) Solve() ([]float32, error) { return nil, errOpenCLUnavailable }

func (s *openCLPoissonSolver) Close() {}

func (s *openCLPoissonSolver) DeviceName() string { return "" }
