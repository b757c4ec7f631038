package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func inTxCommand(t CommandType, out CommandOutput) *Command {
	cmd := NewCommand(t, out, nil, true)
	// the queued ack consumes the first budget unit
	cmd.Complete()
	return cmd
}

func TestMultiOutputRoutesElements(t *testing.T) {
	agg := NewMultiOutput()
	set := inTxCommand(CmdSet, NewStatusOutput())
	incr := inTxCommand(CmdIncr, NewIntegerOutput())
	agg.Add(set)
	agg.Add(incr)

	assert.False(t, set.IsDone())
	assert.False(t, incr.IsDone())

	// *2 +OK :2
	agg.Multi(2)
	agg.Set([]byte("OK"))
	assert.True(t, set.IsDone())
	assert.False(t, incr.IsDone())
	agg.SetInt(2)
	assert.True(t, incr.IsDone())
	agg.Complete()

	assert.Equal(t, "OK", set.Output().Get())
	assert.Equal(t, int64(2), incr.Output().Get())
	assert.Equal(t, []any{"OK", int64(2)}, agg.Get())
}

func TestMultiOutputNestedElement(t *testing.T) {
	agg := NewMultiOutput()
	lrange := inTxCommand(CmdLrange, NewValueListOutput[string, string](codec))
	incr := inTxCommand(CmdIncr, NewIntegerOutput())
	agg.Add(lrange)
	agg.Add(incr)

	// *2 ( *2 $a $b ) :7
	agg.Multi(2)
	agg.Multi(2)
	agg.Set([]byte("a"))
	assert.False(t, lrange.IsDone())
	agg.Set([]byte("b"))
	assert.True(t, lrange.IsDone())
	agg.SetInt(7)
	agg.Complete()

	assert.Equal(t, []string{"a", "b"}, lrange.Output().Get())
	assert.Equal(t, []any{[]string{"a", "b"}, int64(7)}, agg.Get())
}

func TestMultiOutputChildError(t *testing.T) {
	agg := NewMultiOutput()
	set := inTxCommand(CmdSet, NewStatusOutput())
	incr := inTxCommand(CmdIncr, NewIntegerOutput())
	agg.Add(set)
	agg.Add(incr)

	agg.Multi(2)
	agg.SetErr("ERR wrong type")
	agg.SetInt(3)
	agg.Complete()

	assert.True(t, set.IsDone())
	assert.True(t, set.Output().HasError())
	assert.Equal(t, int64(3), incr.Output().Get())

	results := agg.Get().([]any)
	assert.Equal(t, ServerError("ERR wrong type"), results[0])
	assert.Equal(t, int64(3), results[1])
}

func TestMultiOutputExecRejected(t *testing.T) {
	agg := NewMultiOutput()
	agg.SetErr("EXECABORT Transaction discarded")
	assert.True(t, agg.HasError())
	assert.Equal(t, "EXECABORT Transaction discarded", agg.Error())
}

// A nil EXEC reply means the transaction was aborted server-side; children
// never receive results.
func TestMultiOutputNilReply(t *testing.T) {
	agg := NewMultiOutput()
	set := inTxCommand(CmdSet, NewStatusOutput())
	agg.Add(set)

	agg.Multi(-1)
	agg.Complete()

	assert.Nil(t, agg.Get())
	assert.True(t, set.IsCancelled())
}

func TestMultiOutputCancel(t *testing.T) {
	agg := NewMultiOutput()
	set := inTxCommand(CmdSet, NewStatusOutput())
	incr := inTxCommand(CmdIncr, NewIntegerOutput())
	agg.Add(set)
	agg.Add(incr)

	agg.Cancel()
	assert.True(t, set.IsCancelled())
	assert.True(t, incr.IsCancelled())
}
