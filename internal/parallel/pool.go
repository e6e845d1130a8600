// Package parallel runs batches of independent tasks, such as the row bands
// of a bulk pixel conversion, on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines, each with its own queue. An idle
// worker steals from the other queues, so uneven bands still finish
// together.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// submit is held for reading while tasks are queued and for writing
	// while Close stops the pool, so no task is queued after done closes.
	submit sync.RWMutex
}

// NewWorkerPool starts a pool of the given size. If workers is 0 or
// negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case task := <-own:
			task()
			continue
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}

		select {
		case <-p.done:
			p.drain(own)
			return
		case task := <-own:
			task()
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *WorkerPool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll runs every task and returns when all have finished. On a
// closed pool the tasks run on the calling goroutine, so no work is lost.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 {
		return
	}
	p.submit.RLock()
	if !p.running.Load() {
		p.submit.RUnlock()
		for _, task := range tasks {
			task()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			task()
		}
	}
	p.submit.RUnlock()
	wg.Wait()
}

// Close stops the workers after the queued tasks have run. It is safe to
// call more than once.
func (p *WorkerPool) Close() {
	p.submit.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.submit.Unlock()
		return
	}
	close(p.done)
	p.submit.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool accepts work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}

// Span is the half-open range [Start, End).
type Span struct {
	Start, End int
}

// Split divides [0, n) into at most parts contiguous spans of nearly equal
// length. Leading spans take the remainder.
func Split(n, parts int) []Span {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))
	spans := make([]Span, 0, parts)
	size, rem := n/parts, n%parts
	start := 0
	for i := range parts {
		end := start + size
		if i < rem {
			end++
		}
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}
