package gbxcart

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Job is an operation run by a Worker against its controller.
type Job func(ctx context.Context, c *Controller) error

type workItem struct {
	ctx    context.Context
	job    Job
	result chan error
}

// Worker runs jobs one at a time on a dedicated goroutine, so callers such
// as a UI event loop never block on the serial link.
type Worker struct {
	controller *Controller

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []workItem
	closed bool
	done   chan struct{}
}

// NewWorker starts a worker for c.
//
// Example:
//
//	w := gbxcart.NewWorker(ctrl)
//	defer w.Close()
//	err := <-w.Submit(ctx, func(ctx context.Context, c *gbxcart.Controller) error {
//	    return c.Open(ctx)
//	})
func NewWorker(c *Controller) *Worker {
	w := &Worker{
		controller: c,
		done:       make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// Submit queues job and returns a channel that receives its error.
// Jobs run in submission order. A job whose context is already done when
// it is dequeued is skipped with the context error.
func (w *Worker) Submit(ctx context.Context, job Job) <-chan error {
	result := make(chan error, 1)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		result <- ErrWorkerClosed
		return result
	}

	w.queue = append(w.queue, workItem{ctx: ctx, job: job, result: result})
	w.cond.Signal()
	return result
}

// Close stops accepting jobs, waits for queued jobs to finish and stops
// the worker goroutine.
func (w *Worker) Close() error {
	w.mu.Lock()
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()

	<-w.done
	return nil
}

func (w *Worker) run() {
	defer close(w.done)

	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.closed {
			w.cond.Wait()
		}
		if len(w.queue) == 0 {
			w.mu.Unlock()
			return
		}
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		if err := item.ctx.Err(); err != nil {
			item.result <- err
			continue
		}
		item.result <- w.exec(item)
	}
}

// exec runs one job; a panic is reported as the job's error.
func (w *Worker) exec(item workItem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("job panicked: %v", r)
		}
	}()
	return item.job(item.ctx, w.controller)
}
