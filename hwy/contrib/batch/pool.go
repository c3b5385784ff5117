// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package batch

import (
	"runtime"
	"sync"

	"github.com/ajroetker/simd128/hwy"
)

// Pool is a persistent set of worker goroutines shared by batch calls.
// Workers are spawned once by NewPool and live until Close.
//
// A nil *Pool is valid and runs everything on the calling goroutine.
type Pool struct {
	numWorkers int
	workC      chan workItem

	// mu guards closed and the close of workC. ParallelFor holds it for
	// reading while it sends.
	mu     sync.RWMutex
	closed bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// NewPool starts a pool with numWorkers workers. If numWorkers <= 0 it uses
// GOMAXPROCS.
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	hwy.Logger().Debug("batch: pool started", "workers", numWorkers)
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Close stops the workers after pending work completes. It is safe to call
// more than once and concurrently with ParallelFor; calls that start after
// Close run sequentially.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.workC)
	hwy.Logger().Debug("batch: pool closed", "workers", p.numWorkers)
}

// ParallelFor calls fn over contiguous sub-ranges covering [0, n) and blocks
// until all calls return. Ranges shorter than minChunk are not split further.
//
// fn must not call ParallelFor on the same pool.
func (p *Pool) ParallelFor(n, minChunk int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	minChunk = max(minChunk, 1)
	if p == nil {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, (n+minChunk-1)/minChunk)
	if workers <= 1 {
		fn(0, n)
		return
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for i := range workers {
		start := i * chunkSize
		if start >= n {
			break
		}
		end := min(start+chunkSize, n)
		wg.Add(1)
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}
