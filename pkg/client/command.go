package client

import (
	"sync"
	"time"

	"github.com/pzhenzhou/elika-client/pkg/common"
	"github.com/pzhenzhou/elika-client/pkg/respio"
)

var logger = common.InitLogger().WithName("client")

// Command is one request and its eventual reply. The completion budget is 2
// for a request issued inside an active MULTI batch (queued-ack plus the real
// result decoded out of the EXEC reply) and 1 otherwise. A command is done
// once the budget reaches zero, exactly once.
type Command struct {
	Type CommandType

	args *respio.CommandArgs

	mu        sync.Mutex
	output    CommandOutput
	remaining int
	done      chan struct{}
	doneCbs   []func(any)
	failCbs   []func(string)
}

func NewCommand(t CommandType, output CommandOutput, args *respio.CommandArgs, inMulti bool) *Command {
	remaining := 1
	if inMulti {
		remaining = 2
	}
	return &Command{
		Type:      t,
		args:      args,
		output:    output,
		remaining: remaining,
		done:      make(chan struct{}),
	}
}

// Encode frames the request for the wire.
func (c *Command) Encode() []byte {
	return respio.EncodeRequest(c.Type.Bytes(), c.args)
}

func (c *Command) Output() CommandOutput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.output
}

// Sink is the decoder-facing side of the output; nil once cancelled, which
// tells the decoder to parse and drop the reply.
func (c *Command) Sink() respio.RespSink {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.output == nil {
		return nil
	}
	return c.output
}

// Complete decrements the budget; at zero the command is done and subscribers
// fire in registration order.
func (c *Command) Complete() {
	c.mu.Lock()
	if c.remaining == 0 {
		c.mu.Unlock()
		return
	}
	c.remaining--
	if c.remaining > 0 {
		c.mu.Unlock()
		return
	}
	out := c.output
	doneCbs := c.doneCbs
	failCbs := c.failCbs
	c.doneCbs = nil
	c.failCbs = nil
	close(c.done)
	c.mu.Unlock()

	if out == nil {
		return
	}
	if out.HasError() {
		fireFail(failCbs, out.Error())
	} else {
		fireDone(doneCbs, out.Get())
	}
}

// Cancel drops the command client-side. It only applies to a command still
// waiting for its final reply phase; the server keeps executing regardless.
func (c *Command) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining != 1 {
		return false
	}
	c.remaining = 0
	c.output = nil
	close(c.done)
	return true
}

func (c *Command) IsCancelled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining == 0 && c.output == nil
}

func (c *Command) IsDone() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining == 0
}

// Wait blocks until the command is done or the timeout elapses.
func (c *Command) Wait(timeout time.Duration) bool {
	if timeout <= 0 {
		select {
		case <-c.done:
			return true
		default:
			return false
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-c.done:
		return true
	case <-timer.C:
		return false
	}
}

// Done subscribes to the resolved value. A subscriber registered after
// completion fires immediately; every subscriber fires at most once.
func (c *Command) Done(cb func(any)) {
	c.mu.Lock()
	if c.remaining > 0 {
		c.doneCbs = append(c.doneCbs, cb)
		c.mu.Unlock()
		return
	}
	out := c.output
	c.mu.Unlock()
	if out != nil && !out.HasError() {
		fireDone([]func(any){cb}, out.Get())
	}
}

// Fail subscribes to the rejection; analogous firing rule to Done.
func (c *Command) Fail(cb func(string)) {
	c.mu.Lock()
	if c.remaining > 0 {
		c.failCbs = append(c.failCbs, cb)
		c.mu.Unlock()
		return
	}
	out := c.output
	c.mu.Unlock()
	if out != nil && out.HasError() {
		fireFail([]func(string){cb}, out.Error())
	}
}

func fireDone(cbs []func(any), v any) {
	for _, cb := range cbs {
		invoke(func() { cb(v) })
	}
}

func fireFail(cbs []func(string), msg string) {
	for _, cb := range cbs {
		invoke(func() { cb(msg) })
	}
}

// invoke shields the completion path from subscriber panics.
func invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Info("Command callback panicked", "panic", r)
		}
	}()
	fn()
}
