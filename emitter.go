package sig

import "sync"

// A Handler is the function a subscriber registers with an [Emitter].
// It is invoked once per emission with the emitted value, running on
// the given [Runner], and may suspend by calling [Runner.Yield].
//
// The Runner belongs to the dispatch, not to the handler. It must not be
// retained after the handler returns; a Runner whose handler completed may
// immediately carry another handler.
type Handler[T any] func(co *Runner, v T)

// An Emitter is an ordered, synchronous publish/subscribe object.
//
// The zero Emitter is ready for use. [New] additionally registers the new
// Emitter with any given disposer registries, and [Wrap] builds one around
// an external [Source].
//
// Subscribers form an intrusive singly-linked list. Emission traverses the
// list without copying it; unsubscribing never breaks an in-flight
// traversal because unlinking leaves the removed node's next pointer
// intact.
type Emitter[T any] struct {
	mu    sync.Mutex
	head  *Subscription[T]
	proxy Token
	p     *runnerPool
}

// New creates an [Emitter] and registers it with each given [Registry].
func New[T any](in ...Registry) *Emitter[T] {
	e := new(Emitter[T])
	for _, r := range in {
		r.Register(e)
	}
	return e
}

func (e *Emitter[T]) pool() *runnerPool {
	if e.p != nil {
		return e.p
	}
	return &sharedPool
}

// Subscribe registers h and returns its [Subscription] handle.
//
// Emissions invoke the most recently subscribed handlers first.
// A handler subscribed during an emission is not invoked by that emission.
func (e *Emitter[T]) Subscribe(h Handler[T]) *Subscription[T] {
	if h == nil {
		panic("sig: nil Handler")
	}
	s := &Subscription[T]{handler: h, owner: e}
	e.mu.Lock()
	s.next = e.head
	e.head = s
	e.mu.Unlock()
	return s
}

// SubscribeOnce registers h for a single invocation.
// The subscription removes itself before h runs, so h can subscribe again
// without being re-invoked by the same emission.
func (e *Emitter[T]) SubscribeOnce(h Handler[T]) *Subscription[T] {
	if h == nil {
		panic("sig: nil Handler")
	}
	var s *Subscription[T]
	fire := func(co *Runner, v T) {
		s.Unsubscribe()
		h(co, v)
	}
	e.mu.Lock()
	s = &Subscription[T]{handler: fire, owner: e, next: e.head}
	e.head = s
	e.mu.Unlock()
	return s
}

// Emit invokes every live subscriber with v, most recently subscribed
// first, and returns once each handler has either completed or suspended.
//
// Handlers run one at a time: a handler's synchronous prefix, up to its
// first suspension point, finishes before the next handler is dispatched.
// Emitting with no subscribers does nothing. Emitting from within a handler
// is allowed; the nested emission takes its own snapshot of the list.
//
// Emit must not be called concurrently from multiple goroutines on the
// same Emitter.
func (e *Emitter[T]) Emit(v T) {
	p := e.pool()
	e.mu.Lock()
	s := e.head
	for s != nil {
		h, live := s.handler, !s.closed
		e.mu.Unlock()
		if live {
			p.dispatch(func(co *Runner) { h(co, v) })
		}
		// The next pointer is read only after the handler has run, so a
		// handler may unsubscribe itself or any later node and the
		// traversal still advances to the right place.
		e.mu.Lock()
		s = s.next
	}
	e.mu.Unlock()
}

// UnsubscribeAll drops every subscription at once.
//
// Existing [Subscription] handles are not marked closed: their Closed
// method keeps reporting false and a later Unsubscribe on one of them
// succeeds as a no-op unlink. An emission already in flight keeps
// delivering to the nodes it has reached; only the entry point is gone.
func (e *Emitter[T]) UnsubscribeAll() {
	e.mu.Lock()
	e.head = nil
	e.mu.Unlock()
}

// A Subscription is the caller-held handle to one registered [Handler].
type Subscription[T any] struct {
	closed  bool
	handler Handler[T]
	next    *Subscription[T]
	owner   *Emitter[T]
}

// Closed reports whether s has been unsubscribed.
func (s *Subscription[T]) Closed() bool {
	e := s.owner
	e.mu.Lock()
	defer e.mu.Unlock()
	return s.closed
}

// Unsubscribe removes s from its emitter. The handler is never invoked
// again, though an invocation already mid-dispatch is unaffected.
//
// Unsubscribe panics if called twice on the same Subscription.
func (s *Subscription[T]) Unsubscribe() {
	e := s.owner
	e.mu.Lock()
	defer e.mu.Unlock()
	if s.closed {
		panic("sig: subscription already unsubscribed")
	}
	s.closed = true
	e.unlink(s)
}

// unlink removes s from the list rooted at e.head. It deliberately leaves
// s.next untouched: an in-flight traversal positioned at s must still be
// able to advance to the nodes that followed it.
//
// Callers must hold e.mu.
func (e *Emitter[T]) unlink(s *Subscription[T]) {
	if e.head == s {
		e.head = s.next
		return
	}
	for p := e.head; p != nil; p = p.next {
		if p.next == s {
			p.next = s.next
			return
		}
	}
}
