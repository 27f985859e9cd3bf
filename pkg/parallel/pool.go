package parallel

import (
	"runtime"
	"sync"
)

// Pool manages a fixed set of persistent worker goroutines. It implements
// Executor, so a Scheduler can reuse workers across Run calls instead of
// spawning fresh goroutines each time.
type Pool struct {
	tasks      chan func()
	numWorkers int
	wg         sync.WaitGroup
}

// NewPool creates a pool with the specified number of workers. If
// numWorkers <= 0, it defaults to runtime.NumCPU().
func NewPool(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Pool{
		tasks:      make(chan func(), numWorkers),
		numWorkers: numWorkers,
	}
}

// Start begins all workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

// Stop gracefully shuts down the pool after all submitted functions have
// finished. Go must not be called after Stop.
func (p *Pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}

// Go submits fn for execution on one of the workers.
func (p *Pool) Go(fn func()) {
	p.tasks <- fn
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// run is the main worker loop.
func (p *Pool) run() {
	defer p.wg.Done()

	for fn := range p.tasks {
		fn()
	}
}
