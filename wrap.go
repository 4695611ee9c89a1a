package sig

// A Source is an external signal source an [Emitter] can wrap: anything
// that accepts a callback and hands back a [Token] for cancelling it.
type Source[T any] interface {
	Subscribe(func(T)) Token
}

// A Token is the handle a [Source] returns for one callback registration.
type Token interface {
	Unsubscribe()
}

// A Disposable is any value with a Dispose method. [Emitter] implements it.
type Disposable interface {
	Dispose()
}

// A Registry collects disposables for scoped teardown. [New] and [Wrap]
// accept registries so an emitter's lifetime can be bound to one.
type Registry interface {
	Register(Disposable)
}

// Wrap creates an [Emitter] that re-emits every value produced by src,
// and registers it with each given [Registry].
//
// The emitter owns exactly one subscription on src, released by
// [Emitter.Dispose].
func Wrap[T any](src Source[T], in ...Registry) *Emitter[T] {
	if src == nil {
		panic("sig: nil Source")
	}
	e := new(Emitter[T])
	e.proxy = src.Subscribe(e.Emit)
	for _, r := range in {
		r.Register(e)
	}
	return e
}

// Dispose releases the wrapped source subscription, if any, and drops all
// subscribers. The source is unsubscribed exactly once no matter how many
// times Dispose is called; for an emitter that wraps nothing, Dispose is
// equivalent to [Emitter.UnsubscribeAll].
func (e *Emitter[T]) Dispose() {
	e.mu.Lock()
	tok := e.proxy
	e.proxy = nil
	e.head = nil
	e.mu.Unlock()
	if tok != nil {
		tok.Unsubscribe()
	}
}
