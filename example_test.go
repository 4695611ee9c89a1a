package sig_test

import (
	"fmt"

	"github.com/parkwork/sig"
)

func Example() {
	e := sig.New[string]()

	first := e.Subscribe(func(_ *sig.Runner, v string) {
		fmt.Println("subscriber:", v)
	})
	e.SubscribeOnce(func(_ *sig.Runner, v string) {
		fmt.Println("one-shot:", v)
	})

	// The most recently subscribed handler runs first.
	e.Emit("hello")
	e.Emit("world")

	first.Unsubscribe()
	e.Emit("nobody is listening")

	// Output:
	// one-shot: hello
	// subscriber: hello
	// subscriber: world
}

// This example demonstrates a handler that suspends. Emit returns as soon
// as the handler reaches its first suspension point; the handler finishes
// later, when something resumes its runner.
func Example_suspension() {
	e := sig.New[int]()

	parked := make(chan *sig.Runner, 1)
	e.Subscribe(func(co *sig.Runner, v int) {
		fmt.Println("handler: starting", v)
		parked <- co
		co.Yield()
		fmt.Println("handler: finished", v)
	})

	e.Emit(1)
	fmt.Println("emit returned")

	(<-parked).Resume()
	fmt.Println("resume returned")

	// Output:
	// handler: starting 1
	// emit returned
	// handler: finished 1
	// resume returned
}

func ExampleEmitter_Promisify() {
	e := sig.New[int]()

	even := e.Promisify(func(v int) bool { return v%2 == 0 })
	for _, v := range []int{1, 3, 4, 6} {
		e.Emit(v)
	}

	fmt.Println("first even value:", <-even)

	// Output:
	// first even value: 4
}
