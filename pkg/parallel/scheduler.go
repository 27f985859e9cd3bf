package parallel

import "sync"

// Task is the unit of work a Scheduler forks across divisions. Any extra
// inputs travel by closure capture; the task sees only its own division
// and must confine writes to the slice of the output domain that division
// implies (see Division.Span).
type Task func(div Division)

// Executor runs a function on some execution resource. The default
// executor spawns one fresh goroutine per call; a Pool can be injected to
// reuse a fixed set of workers without changing any call site.
type Executor interface {
	Go(fn func())
}

// goExecutor spawns one goroutine per submitted function.
type goExecutor struct{}

func (goExecutor) Go(fn func()) {
	go fn()
}

// Scheduler forks one logical task across a bounded number of concurrent
// execution units and joins before returning. Each Run call stands alone;
// no state persists between calls.
type Scheduler struct {
	maxWorkers int
	exec       Executor
}

// NewScheduler creates a scheduler that runs spawned divisions on fresh
// goroutines. A worker limit of zero is treated as one.
func NewScheduler(maxWorkers int) *Scheduler {
	return NewSchedulerOn(goExecutor{}, maxWorkers)
}

// NewSchedulerOn creates a scheduler that submits spawned divisions to the
// given executor. A worker limit of zero is treated as one.
func NewSchedulerOn(exec Executor, maxWorkers int) *Scheduler {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Scheduler{maxWorkers: maxWorkers, exec: exec}
}

// NumWorkers returns the number of divisions each Run call produces.
func (s *Scheduler) NumWorkers() int {
	return s.maxWorkers
}

// Run invokes task exactly once per division {i, W} for i in 0..W-1, where
// W is the worker limit. Divisions 0..W-2 are submitted to the executor;
// the last division runs on the calling goroutine, so the caller
// participates in the work instead of idling at the join. Run returns only
// after every division has completed: all of the task's writes happen
// before any code following the call. No ordering holds between divisions.
//
// There is no error channel and no cancellation: a panic in a spawned
// division crashes the process, and a division that hangs hangs the call.
func (s *Scheduler) Run(task Task) {
	var wg sync.WaitGroup

	for i := 0; i < s.maxWorkers-1; i++ {
		div := Division{Index: i, Count: s.maxWorkers}
		wg.Add(1)
		s.exec.Go(func() {
			defer wg.Done()
			task(div)
		})
	}

	task(Division{Index: s.maxWorkers - 1, Count: s.maxWorkers})

	wg.Wait()
}
