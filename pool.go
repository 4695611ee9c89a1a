package sig

import "sync"

// A runnerPool holds at most one idle [Runner]. Dispatch takes ownership of
// the idle runner, or starts a fresh one if the slot is empty; a runner
// puts itself back when its handler completes. The slot is a single cell
// rather than a free list: a second idle runner would only ever exist after
// simultaneous suspensions, and evicting the older one is harmless because
// an idle runner has no observable effect.
type runnerPool struct {
	mu      sync.Mutex
	idle    *Runner
	created int
}

// sharedPool serves every Emitter that was not given its own pool.
var sharedPool runnerPool

// dispatch runs f on a pooled or freshly started runner, returning when f
// has either completed or suspended.
func (p *runnerPool) dispatch(f func(*Runner)) {
	co := p.take()
	if co == nil {
		co = p.newRunner()
	}
	co.deliver(f)
}

func (p *runnerPool) take() *Runner {
	p.mu.Lock()
	co := p.idle
	p.idle = nil
	p.mu.Unlock()
	return co
}

// put publishes co as the idle runner. A runner already occupying the slot
// is shut down; its goroutine exits once its work channel closes.
func (p *runnerPool) put(co *Runner) {
	p.mu.Lock()
	old := p.idle
	p.idle = co
	p.mu.Unlock()
	if old != nil {
		close(old.work)
	}
}

func (p *runnerPool) newRunner() *Runner {
	p.mu.Lock()
	p.created++
	p.mu.Unlock()
	co := &Runner{
		pool:   p,
		work:   make(chan func(*Runner)),
		gate:   make(chan *paniccatcher),
		resume: make(chan struct{}),
	}
	go co.loop()
	return co
}
