package sig

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// A paniccatcher captures a failure recovered on a runner goroutine so it
// can be rethrown on the goroutine that currently holds control.
type paniccatcher struct {
	item   *panicitem
	goexit bool
}

type panicitem struct {
	value any
	stack []byte
}

// TryCatch calls f, reporting whether it returned normally. A panic is
// recovered and recorded along with its stack trace; runtime.Goexit is
// recorded as such.
func (pc *paniccatcher) TryCatch(f func()) (ok bool) {
	defer func() {
		if !ok {
			if v := recover(); v != nil {
				pc.item = &panicitem{v, debug.Stack()}
			} else {
				pc.goexit = true
			}
		}
	}()
	f()
	return true
}

// Rethrow replays the captured failure on the calling goroutine: a recorded
// panic panics again, wrapped in a *panicvalue; a recorded Goexit exits the
// calling goroutine.
func (pc *paniccatcher) Rethrow() {
	if pc.item != nil {
		panic(&panicvalue{item: *pc.item})
	}
	if pc.goexit {
		runtime.Goexit()
	}
}

// panicvalue is the error an [Emitter] panics with when a handler fails.
// It carries the handler's panic value and the stack trace of the runner
// goroutine at the point of failure.
type panicvalue struct {
	item panicitem
}

func (pv *panicvalue) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "handler panic: %v", pv.item.value)
	if pv.item.stack != nil {
		b.WriteString("\n\n")
		b.Write(pv.item.stack)
	}
	return b.String()
}

func (pv *panicvalue) Unwrap() error {
	if err, ok := pv.item.value.(error); ok {
		return err
	}
	return nil
}
