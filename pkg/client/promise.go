package client

import (
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Completion is the untyped face of a promise: something that can be waited
// on with a timeout.
type Completion interface {
	Wait(timeout time.Duration) bool
	IsDone() bool
}

// Promise is a single-assignment carrier for a future value or error.
// Subscribers fire at most once each, in registration order.
type Promise[T any] interface {
	Completion
	Done(cb func(T)) Promise[T]
	Fail(cb func(string)) Promise[T]
	Always(done func(T), fail func(string)) Promise[T]
	// Get blocks up to timeout. On elapse the underlying request is
	// cancelled client-side and ErrCmdTimeout is returned.
	Get(timeout time.Duration) (T, error)
}

// commandPromise adapts a Command into a typed Promise.
type commandPromise[T any] struct {
	cmd *Command
}

func promiseOf[T any](cmd *Command) Promise[T] {
	return &commandPromise[T]{cmd: cmd}
}

func (p *commandPromise[T]) Done(cb func(T)) Promise[T] {
	p.cmd.Done(func(v any) {
		cb(convert[T](v))
	})
	return p
}

func (p *commandPromise[T]) Fail(cb func(string)) Promise[T] {
	p.cmd.Fail(cb)
	return p
}

func (p *commandPromise[T]) Always(done func(T), fail func(string)) Promise[T] {
	p.Done(done)
	p.Fail(fail)
	return p
}

func (p *commandPromise[T]) Wait(timeout time.Duration) bool {
	return p.cmd.Wait(timeout)
}

func (p *commandPromise[T]) IsDone() bool {
	return p.cmd.IsDone()
}

func (p *commandPromise[T]) Get(timeout time.Duration) (T, error) {
	var zero T
	if !p.cmd.Wait(timeout) {
		p.cmd.Cancel()
		return zero, ErrCmdTimeout
	}
	out := p.cmd.Output()
	if out == nil {
		return zero, ErrCmdInterrupted
	}
	if out.HasError() {
		return zero, ServerError(out.Error())
	}
	return convert[T](out.Get()), nil
}

func convert[T any](v any) T {
	t, _ := v.(T)
	return t
}

// Deferred is a standalone promise resolved or rejected by its owner.
type Deferred[T any] struct {
	mu       sync.Mutex
	resolved bool
	rejected bool
	value    T
	err      string
	done     chan struct{}
	doneCbs  []func(T)
	failCbs  []func(string)
}

func NewDeferred[T any]() *Deferred[T] {
	return &Deferred[T]{done: make(chan struct{})}
}

// Resolve transitions to the resolved state; later transitions are ignored.
func (d *Deferred[T]) Resolve(v T) {
	d.mu.Lock()
	if d.resolved || d.rejected {
		d.mu.Unlock()
		return
	}
	d.resolved = true
	d.value = v
	cbs := d.doneCbs
	d.doneCbs = nil
	d.failCbs = nil
	close(d.done)
	d.mu.Unlock()
	for _, cb := range cbs {
		cb := cb
		invoke(func() { cb(v) })
	}
}

func (d *Deferred[T]) Reject(msg string) {
	d.mu.Lock()
	if d.resolved || d.rejected {
		d.mu.Unlock()
		return
	}
	d.rejected = true
	d.err = msg
	cbs := d.failCbs
	d.doneCbs = nil
	d.failCbs = nil
	close(d.done)
	d.mu.Unlock()
	for _, cb := range cbs {
		cb := cb
		invoke(func() { cb(msg) })
	}
}

func (d *Deferred[T]) Done(cb func(T)) Promise[T] {
	d.mu.Lock()
	if !d.resolved && !d.rejected {
		d.doneCbs = append(d.doneCbs, cb)
		d.mu.Unlock()
		return d
	}
	resolved, v := d.resolved, d.value
	d.mu.Unlock()
	if resolved {
		invoke(func() { cb(v) })
	}
	return d
}

func (d *Deferred[T]) Fail(cb func(string)) Promise[T] {
	d.mu.Lock()
	if !d.resolved && !d.rejected {
		d.failCbs = append(d.failCbs, cb)
		d.mu.Unlock()
		return d
	}
	rejected, msg := d.rejected, d.err
	d.mu.Unlock()
	if rejected {
		invoke(func() { cb(msg) })
	}
	return d
}

func (d *Deferred[T]) Always(done func(T), fail func(string)) Promise[T] {
	d.Done(done)
	d.Fail(fail)
	return d
}

func (d *Deferred[T]) Wait(timeout time.Duration) bool {
	if timeout <= 0 {
		select {
		case <-d.done:
			return true
		default:
			return false
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-d.done:
		return true
	case <-timer.C:
		return false
	}
}

func (d *Deferred[T]) IsDone() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.resolved || d.rejected
}

func (d *Deferred[T]) Get(timeout time.Duration) (T, error) {
	var zero T
	if !d.Wait(timeout) {
		return zero, ErrCmdTimeout
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.rejected {
		return zero, ServerError(d.err)
	}
	return d.value, nil
}

// Pipe composes sequentially: once p resolves, fn produces an inner promise
// whose resolution resolves the returned promise. Rejection of either stage
// rejects the result.
func Pipe[T, R any](p Promise[T], fn func(T) Promise[R]) Promise[R] {
	d := NewDeferred[R]()
	p.Done(func(v T) {
		inner := fn(v)
		if inner == nil {
			var zero R
			d.Resolve(zero)
			return
		}
		inner.Done(func(r R) {
			d.Resolve(r)
		}).Fail(func(msg string) {
			d.Reject(msg)
		})
	}).Fail(func(msg string) {
		d.Reject(msg)
	})
	return d
}

// Gather resolves with every child's value once all children settle, in
// argument order. Failures are collected: the aggregate rejects only after
// every child has settled, with the error strings joined.
func Gather[T any](promises ...Promise[T]) Promise[[]T] {
	d := NewDeferred[[]T]()
	n := len(promises)
	if n == 0 {
		d.Resolve([]T{})
		return d
	}
	var mu sync.Mutex
	results := make([]T, n)
	errs := make([]string, n)
	failed := false
	settled := 0
	settle := func() {
		mu.Lock()
		settled++
		last := settled == n
		fail := failed
		mu.Unlock()
		if !last {
			return
		}
		if fail {
			d.Reject(strings.Join(lo.Filter(errs, func(s string, _ int) bool {
				return s != ""
			}), "; "))
			return
		}
		d.Resolve(results)
	}
	for i, p := range promises {
		i := i
		p.Done(func(v T) {
			mu.Lock()
			results[i] = v
			mu.Unlock()
			settle()
		}).Fail(func(msg string) {
			mu.Lock()
			errs[i] = msg
			failed = true
			mu.Unlock()
			settle()
		})
	}
	return d
}

// AwaitAll waits for every completion, deducting elapsed time from one
// shared budget. Returns false as soon as the budget elapses.
func AwaitAll(timeout time.Duration, completions ...Completion) bool {
	deadline := time.Now().Add(timeout)
	for _, c := range completions {
		if !c.Wait(time.Until(deadline)) {
			return false
		}
	}
	return true
}
