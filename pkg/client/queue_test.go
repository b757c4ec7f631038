package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestCommand(t CommandType) *Command {
	return NewCommand(t, NewStatusOutput(), nil, false)
}

func TestPendingQueueFIFO(t *testing.T) {
	q := newPendingQueue(16)
	first := newTestCommand(CmdSet)
	second := newTestCommand(CmdGet)
	q.Put(first)
	q.Put(second)

	assert.Equal(t, 2, q.Len())
	assert.Same(t, first, q.PeekFront())
	assert.Same(t, first, q.PopFront())
	assert.Same(t, second, q.PopFront())
	assert.Nil(t, q.PopFront())
}

func TestPendingQueueDrainAll(t *testing.T) {
	q := newPendingQueue(16)
	cmds := []*Command{newTestCommand(CmdSet), newTestCommand(CmdGet), newTestCommand(CmdIncr)}
	for _, cmd := range cmds {
		q.Put(cmd)
	}
	drained := q.DrainAll()
	assert.Equal(t, cmds, drained)
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.DrainAll())
}

func TestPendingQueueBoundedPutBlocks(t *testing.T) {
	q := newPendingQueue(1)
	q.Put(newTestCommand(CmdSet))

	unblocked := make(chan struct{})
	go func() {
		q.Put(newTestCommand(CmdGet))
		close(unblocked)
	}()

	select {
	case <-unblocked:
		t.Fatal("Put should block while the queue is full")
	case <-time.After(20 * time.Millisecond):
	}

	q.PopFront()
	select {
	case <-unblocked:
	case <-time.After(time.Second):
		t.Fatal("Put should unblock after PopFront")
	}
}

func TestCommandBudget(t *testing.T) {
	cmd := NewCommand(CmdSet, NewStatusOutput(), nil, true)
	assert.False(t, cmd.IsDone())

	// queued ack
	cmd.Complete()
	assert.False(t, cmd.IsDone())

	// real result
	cmd.Complete()
	assert.True(t, cmd.IsDone())

	// a third decrement must not fire anything again
	cmd.Complete()
	assert.True(t, cmd.IsDone())
}

func TestCommandCancel(t *testing.T) {
	cmd := newTestCommand(CmdGet)
	assert.True(t, cmd.Cancel())
	assert.True(t, cmd.IsCancelled())
	assert.True(t, cmd.IsDone())
	assert.Nil(t, cmd.Sink())

	// cancelling twice is a no-op
	assert.False(t, cmd.Cancel())
}

func TestCommandCancelOnlySecondPhase(t *testing.T) {
	cmd := NewCommand(CmdSet, NewStatusOutput(), nil, true)
	// still waiting for the queued ack: not cancellable
	assert.False(t, cmd.Cancel())
	cmd.Complete()
	assert.True(t, cmd.Cancel())
}

func TestCommandCallbacksFireOnce(t *testing.T) {
	cmd := newTestCommand(CmdPing)
	var got []any
	cmd.Done(func(v any) {
		got = append(got, v)
	})
	cmd.Output().Set([]byte("PONG"))
	cmd.Complete()
	assert.Equal(t, []any{"PONG"}, got)

	cmd.Done(func(v any) {
		got = append(got, v)
	})
	assert.Equal(t, []any{"PONG", "PONG"}, got)
}
