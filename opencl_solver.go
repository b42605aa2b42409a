//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

type openCLPoissonSolver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	currBuf    *cl.MemObject
	nextBuf    *cl.MemObject
	sourceBuf  *cl.MemObject
	n          int
	iterations int
	source     []float32
	result     []float32
	deviceName string
	boundCurr  *cl.MemObject
	boundNext  *cl.MemObject
}

const poissonKernelSource = `int mirror_lo(int c, int n) {
    int lo = c == 0 ? c + 1 : c - 1;
    return clamp(lo, 0, n - 1);
}

int mirror_hi(int c, int n) {
    int hi = c == n - 1 ? c - 1 : c + 1;
    return clamp(hi, 0, n - 1);
}

__kernel void poisson_step(
    const int n,
    const float delta2,
    __global const float* curr,
    __global const float* source,
    __global float* next_buffer)
{
    int idx = get_global_id(0);
    if (idx >= n * n * n) {
        return;
    }
    int k = idx % n;
    int j = (idx / n) % n;
    int i = idx / (n * n);
    int row = idx - k;
    float v = 0.0f;
    v += curr[n * (n * mirror_lo(i, n) + j) + k] + curr[n * (n * mirror_hi(i, n) + j) + k];
    v += curr[n * (n * i + mirror_lo(j, n)) + k] + curr[n * (n * i + mirror_hi(j, n)) + k];
    v += curr[row + mirror_lo(k, n)] + curr[row + mirror_hi(k, n)];
    v -= delta2 * source[idx];
    v /= 6.0f;
    next_buffer[idx] = v;
}`

func newOpenCLPoissonSolver(n int, source []float32, iterations int, delta float32) (*openCLPoissonSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	s := &openCLPoissonSolver{
		n:          n,
		iterations: iterations,
		source:     source,
		deviceName: device.Name(),
	}
	if s.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	if s.queue, err = s.context.CreateCommandQueue(device, 0); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if s.program, err = s.context.CreateProgramWithSource([]string{poissonKernelSource}); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		s.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	if s.kernel, err = s.program.CreateKernel("poisson_step"); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	byteSize := n * n * n * int(unsafe.Sizeof(float32(0)))
	if s.currBuf, err = s.context.CreateEmptyBuffer(cl.MemReadWrite, byteSize); err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating current buffer: %w", err)
	}
	if s.nextBuf, err = s.context.CreateEmptyBuffer(cl.MemReadWrite, byteSize); err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating next buffer: %w", err)
	}
	if s.sourceBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, byteSize); err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating source buffer: %w", err)
	}

	if err := s.kernel.SetArgs(
		int32(n),
		delta*delta,
		s.currBuf,
		s.sourceBuf,
		s.nextBuf,
	); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	s.boundCurr, s.boundNext = s.currBuf, s.nextBuf
	return s, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

func (s *openCLPoissonSolver) bindBuffers() error {
	if s.boundCurr != s.currBuf {
		if err := s.kernel.SetArgBuffer(2, s.currBuf); err != nil {
			return err
		}
		s.boundCurr = s.currBuf
	}
	if s.boundNext != s.nextBuf {
		if err := s.kernel.SetArgBuffer(4, s.nextBuf); err != nil {
			return err
		}
		s.boundNext = s.nextBuf
	}
	return nil
}

// Solve uploads the source, runs every iteration on the device and reads
// the final field back once.
func (s *openCLPoissonSolver) Solve() ([]float32, error) {
	if s.result != nil {
		return s.result, nil
	}
	size := s.n * s.n * s.n
	if len(s.source) != size {
		return nil, fmt.Errorf("unexpected source length %d for n=%d", len(s.source), s.n)
	}
	zero := make([]float32, size)
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.currBuf, false, 0, zero, nil); err != nil {
		return nil, fmt.Errorf("clearing current buffer: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.sourceBuf, false, 0, s.source, nil); err != nil {
		return nil, fmt.Errorf("writing source buffer: %w", err)
	}
	global := []int{size}
	for iter := 0; iter < s.iterations; iter++ {
		if err := s.bindBuffers(); err != nil {
			return nil, fmt.Errorf("binding buffers: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, nil, nil); err != nil {
			return nil, fmt.Errorf("enqueueing kernel: %w", err)
		}
		s.currBuf, s.nextBuf = s.nextBuf, s.currBuf
	}
	result := make([]float32, size)
	if _, err := s.queue.EnqueueReadBufferFloat32(s.currBuf, true, 0, result, nil); err != nil {
		return nil, fmt.Errorf("reading current buffer: %w", err)
	}
	s.result = result
	return result, nil
}

func (s *openCLPoissonSolver) Close() {
	for _, buf := range []**cl.MemObject{&s.sourceBuf, &s.nextBuf, &s.currBuf} {
		if *buf != nil {
			(*buf).Release()
			*buf = nil
		}
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLPoissonSolver) DeviceName() string {
	return s.deviceName
}
