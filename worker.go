package main

import "sync"

// workerPool runs one goroutine per slab for the lifetime of a solve. Each
// call to sweep releases every worker for one Jacobi iteration and blocks
// until all of them have written their slab of the next buffer.
type workerPool struct {
	field  *poissonField
	slabs  []slab
	delta2 float32

	mu      sync.Mutex
	cond    *sync.Cond
	step    int
	pending int
	closed  bool
	wg      sync.WaitGroup
}

// newWorkerPool launches len(slabs) workers bound to field.
func newWorkerPool(field *poissonField, slabs []slab, delta2 float32) *workerPool {
	p := &workerPool{field: field, slabs: slabs, delta2: delta2}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(len(slabs))
	for i := range slabs {
		go p.workerLoop(i)
	}
	return p
}

// workerLoop executes the stencil update for the slab assigned to index.
func (p *workerPool) workerLoop(index int) {
	defer p.wg.Done()
	lastStep := 0
	p.mu.Lock()
	for {
		for p.step == lastStep && !p.closed {
			p.cond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		lastStep = p.step
		s := p.slabs[index]
		p.mu.Unlock()

		if !s.empty() {
			relaxSlab(p.field.curr, p.field.next, p.field.source, p.field.n, p.delta2, s)
		}

		p.mu.Lock()
		p.pending--
		if p.pending == 0 {
			p.cond.Broadcast()
		}
	}
}

// sweep runs one fork-join iteration. The caller swaps the field buffers
// afterwards; no worker touches the field until the next sweep.
func (p *workerPool) sweep() {
	p.mu.Lock()
	p.pending = len(p.slabs)
	p.step++
	p.cond.Broadcast()
	for p.pending > 0 {
		p.cond.Wait()
	}
	p.mu.Unlock()
}

// close stops all workers and waits for them to exit.
func (p *workerPool) close() {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()
	p.wg.Wait()
}

// relaxSlab writes the Jacobi update of every cell with axis-0 index in s
// into next, reading only curr and src. Missing neighbours at the faces are
// mirrored from the interior, so a face cell counts its inner neighbour
// twice. The operand order is fixed per cell, which keeps the result
// independent of how the volume is split.
func relaxSlab(curr, next, src []float32, n int, delta2 float32, s slab) {
	for i := s.start; i < s.end; i++ {
		im, ip := mirroredNeighbors(i, n)
		for j := 0; j < n; j++ {
			jm, jp := mirroredNeighbors(j, n)
			row := tensorIdx(i, j, 0, n)
			lowI := tensorIdx(im, j, 0, n)
			highI := tensorIdx(ip, j, 0, n)
			lowJ := tensorIdx(i, jm, 0, n)
			highJ := tensorIdx(i, jp, 0, n)
			for k := 0; k < n; k++ {
				km, kp := mirroredNeighbors(k, n)
				v := float32(0)
				v += curr[lowI+k] + curr[highI+k]
				v += curr[lowJ+k] + curr[highJ+k]
				v += curr[row+km] + curr[row+kp]
				v -= float32(delta2 * src[row+k])
				v /= stencilPoints
				next[row+k] = v
			}
		}
	}
}
