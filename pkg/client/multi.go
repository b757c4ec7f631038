package client

import (
	"sync"

	"github.com/samber/lo"
)

// MultiOutput aggregates a MULTI batch. Each command dispatched while the
// batch is active is attached as a child; the EXEC reply is one multi-bulk
// whose i-th element is the real result of the i-th child. As the decoder
// feeds that reply through this output, every element is routed into its
// child's own sink, and the child's completion fires the moment its element
// is fully consumed.
type MultiOutput struct {
	baseOutput
	mu   sync.Mutex
	cmds []*Command
	idx  int
	// countdown stack for a nested array inside the current element
	counts   []int64
	opened   bool
	nilReply bool
}

func NewMultiOutput() *MultiOutput {
	return &MultiOutput{}
}

// Add attaches a command dispatched inside the batch.
func (o *MultiOutput) Add(cmd *Command) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cmds = append(o.cmds, cmd)
}

// Cancel aborts the second completion phase of every attached command.
func (o *MultiOutput) Cancel() {
	o.mu.Lock()
	cmds := o.cmds
	o.mu.Unlock()
	for _, cmd := range cmds {
		cmd.Cancel()
	}
}

func (o *MultiOutput) current() *Command {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.idx >= len(o.cmds) {
		return nil
	}
	return o.cmds[o.idx]
}

func (o *MultiOutput) Set(b []byte) {
	if cmd := o.current(); cmd != nil {
		if sink := cmd.Sink(); sink != nil {
			sink.Set(b)
		}
	}
	o.closeToken()
}

func (o *MultiOutput) SetInt(v int64) {
	if cmd := o.current(); cmd != nil {
		if sink := cmd.Sink(); sink != nil {
			sink.SetInt(v)
		}
	}
	o.closeToken()
}

func (o *MultiOutput) SetErr(msg string) {
	if !o.opened {
		// EXEC itself was rejected
		o.baseOutput.SetErr(msg)
		return
	}
	if cmd := o.current(); cmd != nil {
		if sink := cmd.Sink(); sink != nil {
			sink.SetErr(msg)
		}
	}
	o.closeToken()
}

func (o *MultiOutput) Multi(n int64) {
	if !o.opened {
		o.opened = true
		if n == -1 {
			o.nilReply = true
		}
		return
	}
	if cmd := o.current(); cmd != nil {
		if sink := cmd.Sink(); sink != nil {
			sink.Multi(n)
		}
	}
	if n > 0 {
		o.counts = append(o.counts, n)
		return
	}
	o.closeToken()
}

// closeToken marks one decoded token consumed; when it closes the current
// element, the owning child completes.
func (o *MultiOutput) closeToken() {
	for len(o.counts) > 0 {
		top := len(o.counts) - 1
		o.counts[top]--
		if o.counts[top] > 0 {
			return
		}
		o.counts = o.counts[:top]
	}
	o.completeChild()
}

func (o *MultiOutput) completeChild() {
	o.mu.Lock()
	if o.idx >= len(o.cmds) {
		o.mu.Unlock()
		return
	}
	cmd := o.cmds[o.idx]
	o.idx++
	o.mu.Unlock()
	cmd.Complete()
}

// Complete ends the EXEC reply. A nil multi-bulk means the transaction was
// aborted server-side; the children never receive results.
func (o *MultiOutput) Complete() {
	if o.nilReply {
		o.Cancel()
	}
}

func (o *MultiOutput) Get() any {
	if o.nilReply {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return lo.Map(o.cmds, func(cmd *Command, _ int) any {
		out := cmd.Output()
		if out == nil {
			return nil
		}
		if out.HasError() {
			return ServerError(out.Error())
		}
		return out.Get()
	})
}
