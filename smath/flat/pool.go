// Copyright 2025 go-smath Authors
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

package flat

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-smath/smath"
)

// Pool runs per-vector work over large slices on a fixed set of
// goroutines. Create it once and reuse it; a nil *Pool runs everything on
// the calling goroutine.
//
//	pool := flat.NewPool(0)
//	defer pool.Close()
//	flat.Apply(pool, out, in, smath.Normalize[smath.Vec3P[float32], float32])
type Pool struct {
	workers   int
	work      chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// NewPool starts a pool of n workers, or GOMAXPROCS workers if n <= 0.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{workers: n, work: make(chan task, 2*n)}
	for range n {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	for t := range p.work {
		t.fn()
		t.done.Done()
	}
}

// Workers returns the number of worker goroutines, 1 for a nil pool.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close stops the workers after pending work finishes. It is safe to call
// more than once; later calls to ParallelFor run sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.work)
	})
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each. It returns when every chunk is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() {
		fn(0, n)
		return
	}
	workers := min(p.workers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.work <- task{fn: func() { fn(start, end) }, done: &wg}
	}
	wg.Wait()
}

// Apply stores f(src[i]) in dst[i] for every vector, spreading the work
// over pool. f must be safe to call concurrently.
func Apply[V smath.Vector[T], T smath.Element](pool *Pool, dst, src []V, f func(V) V) error {
	if err := sameLen("Apply", len(dst), len(src)); err != nil {
		return err
	}
	pool.ParallelFor(len(src), func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = f(src[i])
		}
	})
	return nil
}

// Reduce folds every vector into a partial result per chunk with f, then
// combines the partials in chunk order with merge. Every chunk starts from
// init, so init must be an identity of merge.
func Reduce[V smath.Vector[T], T smath.Element, R any](pool *Pool, vs []V, init R, f func(acc R, v V) R, merge func(a, b R) R) R {
	if len(vs) == 0 {
		return init
	}
	chunks := pool.Workers()
	if chunks > len(vs) {
		chunks = len(vs)
	}
	size := (len(vs) + chunks - 1) / chunks
	partials := make([]R, (len(vs)+size-1)/size)
	pool.ParallelFor(len(partials), func(start, end int) {
		for c := start; c < end; c++ {
			acc := init
			for _, v := range vs[c*size : min((c+1)*size, len(vs))] {
				acc = f(acc, v)
			}
			partials[c] = acc
		}
	})
	acc := partials[0]
	for _, part := range partials[1:] {
		acc = merge(acc, part)
	}
	return acc
}
