package worker

import "sync"

// Task is a unit of background work, such as a usage-counter update that
// should not block the request path.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines.
type Pool interface {
	Submit(Task)
	// Stop closes the queue and waits for in-flight tasks to finish.
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{tasks: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				if task != nil {
					task()
				}
			}
		}()
	}
	return p
}

type pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.tasks <- t
}

func (p *pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
