package reconcile

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// WorkerPoolI fans independent settlement lookups out over a fixed set of
// workers.
type WorkerPoolI interface {
	Submit(ctx context.Context, task Task) error
	Close()
}

type Task func() error

type WorkerPool struct {
	tasks chan Task
	wg    sync.WaitGroup
	once  sync.Once
}

// NewWorkerPool starts size workers. Size comes from config so operators can
// match it to the processor's rate limits.
func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, size)}
	for i := 0; i < size; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("Settlement task failed", zap.Error(err))
		}
	}
}

// Submit blocks until a worker picks the task up or ctx is canceled.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close stops accepting tasks and waits for in-flight settlements to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() { close(wp.tasks) })
	wp.wg.Wait()
}
