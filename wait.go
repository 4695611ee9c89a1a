package sig

// Wait blocks the calling goroutine until the next emission on e and
// returns the emitted value.
//
// Each concurrent Wait call holds its own one-shot subscription, so every
// caller awaiting the same emitter receives the next value exactly once.
// The subscription is removed before the value is delivered.
func (e *Emitter[T]) Wait() T {
	return <-e.next(nil)
}

// Await suspends co until the next emission on e and returns the emitted
// value. It is the in-handler counterpart of [Emitter.Wait]: the calling
// handler's runner is abandoned by the emit call that dispatched it and
// woken by the emission it is waiting for.
func (e *Emitter[T]) Await(co *Runner) T {
	var got T
	e.SubscribeOnce(func(_ *Runner, v T) {
		got = v
		co.Resume()
	})
	co.Yield()
	return got
}

// Once returns a channel on which the value of the next emission is
// delivered. The channel receives exactly one value and is then closed.
func (e *Emitter[T]) Once() <-chan T {
	return e.next(nil)
}

// Promisify returns a channel resolved with the first emitted value for
// which pred returns true. A nil pred matches any emission. The channel
// receives exactly one value and is then closed.
func (e *Emitter[T]) Promisify(pred func(T) bool) <-chan T {
	return e.next(pred)
}

// next registers a subscription that delivers the first matching emission
// on a buffered channel. It unsubscribes before delivering, so a waiter
// woken by the channel can immediately subscribe again without being
// re-invoked by the emission that woke it.
func (e *Emitter[T]) next(pred func(T) bool) <-chan T {
	ch := make(chan T, 1)
	var s *Subscription[T]
	fire := func(_ *Runner, v T) {
		if pred != nil && !pred(v) {
			return
		}
		s.Unsubscribe()
		ch <- v
		close(ch)
	}
	e.mu.Lock()
	s = &Subscription[T]{handler: fire, owner: e, next: e.head}
	e.head = s
	e.mu.Unlock()
	return ch
}
