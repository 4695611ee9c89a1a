package sig

// A Runner is a reusable cooperative execution context, the unit that
// carries one handler invocation at a time.
//
// A Runner is backed by a goroutine parked on a delivery channel. While a
// handler is executing, exactly one other goroutine is blocked waiting for
// the Runner to give control back, either the [Emitter.Emit] call that
// dispatched the handler or a [Runner.Resume] caller. All control transfer
// is a channel rendezvous; a Runner never runs concurrently with the
// goroutine that is driving it.
type Runner struct {
	pool   *runnerPool
	work   chan func(*Runner)
	gate   chan *paniccatcher
	resume chan struct{}
}

// loop is the runner goroutine. It runs delivered handlers to completion
// forever; publishing itself back into the pool happens before the gate
// signal, so by the time the dispatching Emit regains control the runner is
// already available for the next dispatch.
func (co *Runner) loop() {
	for f := range co.work {
		if !co.run(f) {
			// The handler panicked or called runtime.Goexit. The failure
			// has already been handed over; retire co, a dead context
			// must never be reused.
			return
		}
		co.pool.put(co)
		co.gate <- nil
	}
}

// run executes f, reporting whether it returned normally. A failure is
// surfaced on the goroutine holding control from within the deferred
// function: a Goexit keeps unwinding past TryCatch, so the gate send must
// happen during unwinding or the controller would block forever.
func (co *Runner) run(f func(*Runner)) (ok bool) {
	var pc paniccatcher
	defer func() {
		if !ok {
			co.gate <- &pc
		}
	}()
	ok = pc.TryCatch(func() { f(co) })
	return ok
}

// deliver hands f to co and returns once f has completed or suspended.
func (co *Runner) deliver(f func(*Runner)) {
	co.work <- f
	co.wait()
}

// wait blocks until co gives control back, rethrowing any handler failure
// on the calling goroutine.
func (co *Runner) wait() {
	if pc := <-co.gate; pc != nil {
		pc.Rethrow()
	}
}

// Yield suspends the handler running on co. Control returns to the
// goroutine currently driving co: the dispatching [Emitter.Emit] call for
// the handler's first suspension, the [Runner.Resume] caller for later
// ones. Yield returns when co is resumed.
//
// Yield must only be called from within the handler that co is carrying.
func (co *Runner) Yield() {
	co.gate <- nil
	<-co.resume
}

// Resume transfers control into a suspended co and does not return until
// the handler suspends again or completes. If the handler is not yet at its
// suspension point, Resume waits for it to arrive there.
//
// Resume must only be called for a Runner whose handler suspends; resuming
// a Runner whose handler already completed deadlocks, like resuming a dead
// coroutine.
func (co *Runner) Resume() {
	co.resume <- struct{}{}
	co.wait()
}
