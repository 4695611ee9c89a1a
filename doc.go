// Package sig implements a synchronous, ordered publish/subscribe primitive
// whose handlers run on pooled, reusable execution contexts and may suspend
// without blocking the emitter.
//
// An [Emitter] delivers each emitted value to its live subscribers, most
// recently subscribed first, before [Emitter.Emit] returns. A handler is
// dispatched on a [Runner], a goroutine-backed cooperative context. If the
// handler returns without suspending, the same Runner is reused for the next
// dispatch; only one Runner ever exists no matter how many synchronous
// handlers run over the emitter's lifetime. If the handler suspends by
// calling [Runner.Yield], control returns to Emit immediately and the Runner
// keeps running independently until the handler completes, at which point it
// makes itself available for reuse again.
//
// # Subscriptions
//
// [Emitter.Subscribe] returns a [Subscription] handle. Unsubscribing is safe
// at any time, including from within a handler during an emission: a handler
// may unsubscribe itself (the "run once" pattern, see
// [Emitter.SubscribeOnce]) or any other subscription without disturbing the
// ongoing delivery. Unsubscribing never affects a handler that is already
// mid-dispatch; it only prevents future invocations.
//
// # Suspension
//
// A handler suspends with [Runner.Yield] and is woken with [Runner.Resume].
// Control transfer is coroutine-style: Yield returns control to whichever
// call is currently driving the Runner (the dispatching Emit for the first
// suspension, the Resume caller for later ones), and Resume does not return
// until the handler suspends again or completes. There is no ordering
// guarantee among independently suspended handlers' resumptions.
//
// # Waiting
//
// [Emitter.Wait] blocks an ordinary goroutine until the next emission.
// [Emitter.Await] is its in-handler counterpart: it suspends the calling
// Runner instead of blocking. [Emitter.Once] and [Emitter.Promisify] return
// one-shot channels resolved by the first (matching) emission. All of these
// remove their internal subscription before delivering, so a woken waiter
// can immediately subscribe again without re-entrancy hazards.
//
// # Wrapping External Sources
//
// [Wrap] builds an Emitter that re-emits every value produced by an external
// [Source]. [Emitter.Dispose] releases the source subscription exactly once
// and clears the subscriber list; an Emitter can also be handed to a
// [Registry] for scoped disposal.
//
// # Concurrency Model
//
// The package assumes a single logical thread of control with cooperative
// suspension. Subscribing, unsubscribing and waiting are safe from any
// goroutine, but emissions must be serialized: Emit must not be called
// concurrently from multiple goroutines on the same Emitter. Emit itself
// never suspends and never blocks past the current handler's first
// suspension point.
//
// # Panic Propagation
//
// The emitter never swallows panics. A handler panic is rethrown, wrapped in
// an error value carrying the handler's stack trace, on the goroutine that
// currently holds control: the Emit caller for a handler that has not
// suspended, or the Resume caller for one that has. The Runner that carried
// the panicking handler is retired, never reused.
package sig
