package sig_test

import (
	"testing"

	"github.com/parkwork/sig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a minimal external signal source for tests.
type fakeSource struct {
	nextID int
	subs   map[int]func(int)
	unsubs int
}

func newFakeSource() *fakeSource {
	return &fakeSource{subs: make(map[int]func(int))}
}

func (s *fakeSource) Subscribe(f func(int)) sig.Token {
	s.nextID++
	s.subs[s.nextID] = f
	return &fakeToken{src: s, id: s.nextID}
}

func (s *fakeSource) fire(v int) {
	for _, f := range s.subs {
		f(v)
	}
}

type fakeToken struct {
	src *fakeSource
	id  int
}

func (tk *fakeToken) Unsubscribe() {
	delete(tk.src.subs, tk.id)
	tk.src.unsubs++
}

// fakeRegistry records everything registered with it.
type fakeRegistry struct {
	items []sig.Disposable
}

func (r *fakeRegistry) Register(d sig.Disposable) {
	r.items = append(r.items, d)
}

func (r *fakeRegistry) disposeAll() {
	for _, d := range r.items {
		d.Dispose()
	}
}

func TestWrapForwards(t *testing.T) {
	src := newFakeSource()
	e := sig.Wrap[int](src)

	var got []int
	e.Subscribe(func(_ *sig.Runner, v int) {
		got = append(got, v)
	})

	src.fire(5)
	src.fire(6)
	assert.Equal(t, []int{5, 6}, got)
}

func TestWrapDispose(t *testing.T) {
	src := newFakeSource()
	e := sig.Wrap[int](src)

	n := 0
	e.Subscribe(func(_ *sig.Runner, _ int) { n++ })

	src.fire(0)
	require.Equal(t, 1, n)

	e.Dispose()
	assert.Empty(t, src.subs, "the source must have no listeners left")
	assert.Equal(t, 1, src.unsubs)

	// Disposal also cleared the subscriber list.
	e.Emit(0)
	assert.Equal(t, 1, n)

	// Dispose is idempotent; the source is unsubscribed exactly once.
	e.Dispose()
	assert.Equal(t, 1, src.unsubs)
}

func TestDisposeWithoutSource(t *testing.T) {
	e := sig.New[int]()

	n := 0
	e.Subscribe(func(_ *sig.Runner, _ int) { n++ })

	e.Dispose()
	e.Emit(0)
	assert.Equal(t, 0, n)

	assert.NotPanics(t, e.UnsubscribeAll)
}

func TestNewRegistersWithRegistry(t *testing.T) {
	reg := new(fakeRegistry)
	e := sig.New[int](reg)
	require.Len(t, reg.items, 1)

	n := 0
	e.Subscribe(func(_ *sig.Runner, _ int) { n++ })

	reg.disposeAll()
	e.Emit(0)
	assert.Equal(t, 0, n)
}

func TestWrapRegistersWithRegistry(t *testing.T) {
	src := newFakeSource()
	reg := new(fakeRegistry)
	sig.Wrap[int](src, reg)
	require.Len(t, reg.items, 1)

	reg.disposeAll()
	assert.Empty(t, src.subs)
	assert.Equal(t, 1, src.unsubs)
}

func TestWrapNilSourcePanics(t *testing.T) {
	require.PanicsWithValue(t, "sig: nil Source", func() {
		sig.Wrap[int](nil)
	})
}
