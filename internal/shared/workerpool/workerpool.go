package workerpool

import (
	"context"
	"errors"
	"sync"
)

var ErrPoolClosed = errors.New("worker pool is closed")

// Task is one unit of work. Fn must be safe to run concurrently with other tasks.
// ResultC is optional; when set it receives exactly one Result.
type Task struct {
	Index   int
	Fn      func(ctx context.Context) (any, error)
	ResultC chan<- Result
}

type Result struct {
	Index int
	Value any
	Err   error
}

type WorkerPool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
	mu     sync.RWMutex
	closed bool
}

// New starts workerCount workers reading from a queue of queueSize.
func New(workerCount int, queueSize int) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	wp.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		res, err := task.Fn(wp.ctx)
		if task.ResultC != nil {
			task.ResultC <- Result{Index: task.Index, Value: res, Err: err}
		}
	}
}

// Submit queues a task, blocking while the queue is full.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return ErrPoolClosed
	}
	select {
	case wp.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.ctx.Done():
		return ErrPoolClosed
	}
}

// Close stops accepting tasks, lets queued tasks finish and waits for the workers.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.tasks)
		wp.mu.Unlock()
		wp.wg.Wait()
		wp.cancel()
	})
}

// Map runs fns on a temporary pool of the given size and returns results in input order.
func Map(ctx context.Context, workers int, fns []func(ctx context.Context) (any, error)) []Result {
	results := make([]Result, len(fns))
	if len(fns) == 0 {
		return results
	}

	pool := New(workers, len(fns))
	resultC := make(chan Result, len(fns))

	submitted := 0
	for i, fn := range fns {
		i, fn := i, fn
		err := pool.Submit(ctx, Task{
			Index: i,
			Fn: func(_ context.Context) (any, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return fn(ctx)
			},
			ResultC: resultC,
		})
		if err != nil {
			results[i] = Result{Index: i, Err: err}
			continue
		}
		submitted++
	}
	pool.Close()

	for ; submitted > 0; submitted-- {
		r := <-resultC
		results[r.Index] = r
	}
	return results
}
