package probe

import (
	"context"
	"sync"
)

// Shot is the outcome of a single probe request.
type Shot struct {
	Status int
	Err    error
}

// Pool fans shots out to a fixed number of workers and hands every
// outcome back on Results. Results closes once Close has been called
// and the queued shots have drained.
type Pool struct {
	tasks   chan func() Shot
	Results chan Shot
	wg      sync.WaitGroup
}

// NewPool starts size workers. backlog must cover the number of shots
// queued before Results is read, otherwise Add blocks.
func NewPool(size, backlog int) *Pool {
	p := &Pool{
		tasks:   make(chan func() Shot, backlog),
		Results: make(chan Shot, backlog),
	}
	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.Results <- task()
	}
}

func (p *Pool) Add(ctx context.Context, task func() Shot) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.tasks <- task:
		return nil
	}
}

// Close stops accepting shots and closes Results once the in-flight
// ones finish.
func (p *Pool) Close() {
	close(p.tasks)
	go func() {
		p.wg.Wait()
		close(p.Results)
	}()
}
