package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeferredResolve(t *testing.T) {
	d := NewDeferred[int]()
	assert.False(t, d.IsDone())

	var got []int
	d.Done(func(v int) {
		got = append(got, v)
	})

	d.Resolve(7)
	assert.True(t, d.IsDone())
	assert.Equal(t, []int{7}, got)

	// late subscriber fires immediately, exactly once
	d.Done(func(v int) {
		got = append(got, v*10)
	})
	assert.Equal(t, []int{7, 70}, got)

	v, err := d.Get(time.Second)
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestDeferredReject(t *testing.T) {
	d := NewDeferred[string]()
	var failures []string
	var resolved bool
	d.Always(func(string) {
		resolved = true
	}, func(msg string) {
		failures = append(failures, msg)
	})

	d.Reject("ERR boom")
	assert.False(t, resolved)
	assert.Equal(t, []string{"ERR boom"}, failures)

	_, err := d.Get(time.Second)
	assert.EqualError(t, err, "ERR boom")
}

func TestDeferredSingleAssignment(t *testing.T) {
	d := NewDeferred[int]()
	fired := 0
	d.Done(func(int) {
		fired++
	})
	d.Resolve(1)
	d.Resolve(2)
	d.Reject("too late")

	assert.Equal(t, 1, fired)
	v, err := d.Get(time.Second)
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestDeferredCallbackOrder(t *testing.T) {
	d := NewDeferred[int]()
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		d.Done(func(int) {
			order = append(order, i)
		})
	}
	d.Resolve(0)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestDeferredCallbackPanicIsContained(t *testing.T) {
	d := NewDeferred[int]()
	var after bool
	d.Done(func(int) {
		panic("subscriber bug")
	})
	d.Done(func(int) {
		after = true
	})
	assert.NotPanics(t, func() {
		d.Resolve(1)
	})
	assert.True(t, after)
}

func TestPipe(t *testing.T) {
	outer := NewDeferred[int]()
	piped := Pipe(outer, func(v int) Promise[string] {
		inner := NewDeferred[string]()
		inner.Resolve("value-" + string(rune('0'+v)))
		return inner
	})

	outer.Resolve(7)
	got, err := piped.Get(time.Second)
	assert.NoError(t, err)
	assert.Equal(t, "value-7", got)
}

func TestPipeRejectionPropagates(t *testing.T) {
	outer := NewDeferred[int]()
	piped := Pipe(outer, func(v int) Promise[string] {
		t.Fatal("pipe must not run on rejection")
		return nil
	})
	outer.Reject("ERR upstream")
	_, err := piped.Get(time.Second)
	assert.EqualError(t, err, "ERR upstream")
}

func TestGatherResolvesInOrder(t *testing.T) {
	a := NewDeferred[int]()
	b := NewDeferred[int]()
	c := NewDeferred[int]()
	all := Gather[int](a, b, c)

	// resolution order must not affect result order
	c.Resolve(3)
	a.Resolve(1)
	b.Resolve(2)

	got, err := all.Get(time.Second)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

// Gather uses collect-all semantics: the aggregate settles only after every
// child has, and carries every error.
func TestGatherCollectsAllErrors(t *testing.T) {
	a := NewDeferred[int]()
	b := NewDeferred[int]()
	c := NewDeferred[int]()
	all := Gather[int](a, b, c)

	a.Reject("ERR first")
	assert.False(t, all.IsDone())
	b.Resolve(2)
	assert.False(t, all.IsDone())
	c.Reject("ERR second")

	_, err := all.Get(time.Second)
	assert.EqualError(t, err, "ERR first; ERR second")
}

func TestGatherEmpty(t *testing.T) {
	got, err := Gather[int]().Get(time.Second)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestAwaitAll(t *testing.T) {
	a := NewDeferred[int]()
	b := NewDeferred[int]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		a.Resolve(1)
		b.Resolve(2)
	}()
	assert.True(t, AwaitAll(time.Second, a, b))
}

func TestAwaitAllTimeout(t *testing.T) {
	a := NewDeferred[int]()
	b := NewDeferred[int]()
	a.Resolve(1)
	assert.False(t, AwaitAll(50*time.Millisecond, a, b))
}
