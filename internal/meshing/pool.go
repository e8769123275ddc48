package meshing

import (
	"context"
	"sync"

	"quickscape/internal/noise"
)

// Job is a mesh build request. Each job must target its own output; the
// pool gives no ordering guarantees between jobs.
type Job struct {
	Key         int
	Grid        GridSpec
	Field       noise.Field
	HeightScale float64
	// Result channel - will be sent the result when done
	ResultChan chan Result
}

// Result contains the outcome of a Job.
type Result struct {
	Key  int
	Mesh *Mesh
	Err  error
}

// WorkerPool runs independent mesh builds on a fixed set of goroutines.
// Every single build still runs start to finish on one worker.
type WorkerPool struct {
	jobQueue chan Job
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewWorkerPool creates a pool and starts its workers.
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		jobQueue: make(chan Job, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := range workers {
		pool.wg.Add(1)
		go pool.worker(i)
	}
	return pool
}

// Submit queues a job without blocking.
// Returns false if the queue is full or the pool is shut down.
func (p *WorkerPool) Submit(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitBlocking queues a job, waiting for room. It returns false if ctx or
// the pool is done first.
func (p *WorkerPool) SubmitBlocking(ctx context.Context, job Job) bool {
	if p.ctx.Err() != nil || ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	case <-ctx.Done():
		return false
	case <-p.ctx.Done():
		return false
	}
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			mesh, err := Build(job.Grid, job.Field, job.HeightScale)
			select {
			case job.ResultChan <- Result{Key: job.Key, Mesh: mesh, Err: err}:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Queued jobs that
// have not started are dropped.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

// QueueLength returns the number of jobs waiting for a worker.
func (p *WorkerPool) QueueLength() int {
	return len(p.jobQueue)
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}
