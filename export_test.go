package sig

// RunnerPool exposes the internal pool type to tests.
type RunnerPool = runnerPool

// SetPool makes e dispatch through p instead of the shared pool, so tests
// can observe runner creation and reuse in isolation.
func SetPool[T any](e *Emitter[T], p *RunnerPool) {
	e.p = p
}

// Created reports how many runner goroutines p has ever started.
func (p *runnerPool) Created() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.created
}

// Idle reports whether p currently holds an idle runner.
func (p *runnerPool) Idle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idle != nil
}
