package client

import (
	"sync"
	"time"

	"github.com/pzhenzhou/elika-client/pkg/common"
	"github.com/pzhenzhou/elika-client/pkg/metrics"
	"github.com/pzhenzhou/elika-client/pkg/respio"
)

// AsyncConnection is an asynchronous thread-safe connection to one server.
// Multiple goroutines may share a connection provided they avoid blocking
// and transactional operations such as Blpop and Multi/Exec.
//
// A Watchdog monitors the connection and reconnects automatically until
// Close is called. All pending commands are (re)sent after a successful
// reconnect, preceded by synthetic AUTH/SELECT commands restoring the
// session state the peer lost.
type AsyncConnection[K comparable, V any] struct {
	mu       sync.Mutex
	queue    *pendingQueue
	codec    RedisCodec[K, V]
	channel  *Channel
	watchdog *Watchdog
	timeout  time.Duration
	multi    *MultiOutput
	password string
	db       int
	closed   bool

	scripts   *ScriptCache
	collector metrics.Collector
}

// Connect dials cfg.Addr and authenticates/selects per the config.
func Connect[K comparable, V any](cfg *common.ClientConfig, codec RedisCodec[K, V]) (*AsyncConnection[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	conn := newAsyncConnection(cfg, codec)
	conn.watchdog = NewWatchdog(cfg, conn, respio.NewRespDecoder(conn))
	if err := conn.watchdog.Start(); err != nil {
		return nil, err
	}
	conn.collector.IncrementActiveConnections()
	if cfg.Password != "" {
		if _, err := conn.Auth(cfg.Password); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	if cfg.DB != 0 {
		if _, err := conn.Select(cfg.DB); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

func newAsyncConnection[K comparable, V any](cfg *common.ClientConfig, codec RedisCodec[K, V]) *AsyncConnection[K, V] {
	collector := metrics.Noop()
	if cfg.Metrics.EnableMetrics {
		c, err := metrics.NewCollector(metrics.DefaultConfig(cfg.Metrics.ServiceName))
		if err != nil {
			logger.Error(err, "Failed to initialize metrics collector, metrics disabled")
		} else {
			collector = c
		}
	}
	return &AsyncConnection[K, V]{
		queue:     newPendingQueue(cfg.QueueSize),
		codec:     codec,
		timeout:   cfg.CmdTimeout,
		scripts:   NewScriptCache(),
		collector: collector,
	}
}

// SetTimeout changes the default timeout for synchronous waits.
func (c *AsyncConnection[K, V]) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = timeout
}

func (c *AsyncConnection[K, V]) Timeout() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeout
}

// CurrentSink implements respio.SinkSource: the decoder always drives the
// sink of the oldest pending request.
func (c *AsyncConnection[K, V]) CurrentSink() respio.RespSink {
	cmd := c.queue.PeekFront()
	if cmd == nil {
		return nil
	}
	return cmd.Sink()
}

// ReplyComplete implements respio.SinkSource: one full reply was decoded.
func (c *AsyncConnection[K, V]) ReplyComplete() {
	cmd := c.queue.PopFront()
	if cmd == nil {
		return
	}
	if out := cmd.Output(); out != nil {
		out.Complete()
		if out.HasError() {
			c.collector.IncrErrorCounter("server")
		}
	}
	cmd.Complete()
}

// channelActive replays the session onto a fresh channel: remembered AUTH,
// remembered SELECT, then every still-pending request in dispatch order.
func (c *AsyncConnection[K, V]) channelActive(ch *Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channel = ch
	c.collector.IncrReconnectCounter()

	tmp := make([]*Command, 0, c.queue.Len()+2)
	if c.password != "" {
		args := respio.NewCommandArgs().AddString(c.password)
		tmp = append(tmp, NewCommand(CmdAuth, NewStatusOutput(), args, false))
	}
	if c.db != 0 {
		args := respio.NewCommandArgs().AddInt(int64(c.db))
		tmp = append(tmp, NewCommand(CmdSelect, NewStatusOutput(), args, false))
	}
	tmp = append(tmp, c.queue.DrainAll()...)

	writable := true
	for _, cmd := range tmp {
		if cmd.IsCancelled() {
			continue
		}
		c.queue.requeue(cmd)
		if !writable {
			continue
		}
		if err := ch.WriteAndFlush(cmd.Encode()); err != nil {
			logger.Error(err, "Failed to replay command", "cmd", cmd.Type, "channel", ch.Id)
			// the channel is going down; what stayed queued replays next time
			writable = false
		}
	}
}

// channelInactive fails everything still pending iff the user closed the
// connection; otherwise the queue stays intact for the next channelActive.
func (c *AsyncConnection[K, V]) channelInactive() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channel = nil
	if !c.closed {
		return
	}
	for _, cmd := range c.queue.DrainAll() {
		if out := cmd.Output(); out != nil {
			out.SetErr("Connection closed")
		}
		for !cmd.IsDone() {
			cmd.Complete()
		}
	}
}

func (c *AsyncConnection[K, V]) dispatch(t CommandType, output CommandOutput, args *respio.CommandArgs) *Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dispatchLocked(t, output, args)
}

func (c *AsyncConnection[K, V]) dispatchLocked(t CommandType, output CommandOutput, args *respio.CommandArgs) *Command {
	if c.closed {
		cmd := NewCommand(t, output, args, false)
		output.SetErr(ErrClosed.Error())
		cmd.Complete()
		c.collector.IncrErrorCounter("closed")
		return cmd
	}
	inMulti := c.multi != nil
	cmd := NewCommand(t, output, args, inMulti)
	if inMulti {
		c.multi.Add(cmd)
	}
	c.queue.Put(cmd)
	if c.channel != nil {
		if err := c.channel.WriteAndFlush(cmd.Encode()); err != nil {
			// the read side observes the failure and drives the replay
			logger.Error(err, "Failed to write command", "cmd", t, "channel", c.channel.Id)
		}
	}
	c.collector.IncrCommandCounter(t.String())
	return cmd
}

// Auth authenticates synchronously; on "OK" the password is remembered for
// replay after reconnects.
func (c *AsyncConnection[K, V]) Auth(password string) (string, error) {
	args := respio.NewCommandArgs().AddString(password)
	cmd := c.dispatch(CmdAuth, NewStatusOutput(), args)
	status, err := promiseOf[string](cmd).Get(c.Timeout())
	if err != nil {
		return "", err
	}
	if status == "OK" {
		c.mu.Lock()
		c.password = password
		c.mu.Unlock()
	}
	return status, nil
}

// Select switches the logical database synchronously; on "OK" the database
// number is remembered for replay after reconnects.
func (c *AsyncConnection[K, V]) Select(db int) (string, error) {
	args := respio.NewCommandArgs().AddInt(int64(db))
	cmd := c.dispatch(CmdSelect, NewStatusOutput(), args)
	status, err := promiseOf[string](cmd).Get(c.Timeout())
	if err != nil {
		return "", err
	}
	if status == "OK" {
		c.mu.Lock()
		c.db = db
		c.mu.Unlock()
	}
	return status, nil
}

// Multi starts a transactional batch. Commands dispatched until Exec or
// Discard are attached to the batch and complete in two phases.
func (c *AsyncConnection[K, V]) Multi() Promise[string] {
	c.mu.Lock()
	defer c.mu.Unlock()
	cmd := c.dispatchLocked(CmdMulti, NewStatusOutput(), nil)
	if c.multi == nil {
		c.multi = NewMultiOutput()
	}
	return promiseOf[string](cmd)
}

// Exec dispatches the batch terminator; its reply carries every queued
// command's real result and resolves to the ordered result vector.
func (c *AsyncConnection[K, V]) Exec() Promise[[]any] {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.multi
	c.multi = nil
	if m == nil {
		m = NewMultiOutput()
	}
	cmd := c.dispatchLocked(CmdExec, m, nil)
	return promiseOf[[]any](cmd)
}

// Discard drops the active batch, cancelling the second completion phase of
// every attached command. Without an active batch it just dispatches DISCARD.
func (c *AsyncConnection[K, V]) Discard() Promise[string] {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.multi
	if m != nil {
		m.Cancel()
		c.multi = nil
	}
	cmd := c.dispatchLocked(CmdDiscard, NewStatusOutput(), nil)
	if m != nil {
		// the DISCARD reply follows every queued-ack, so commands whose ack
		// was still in flight above are cancellable once it arrives
		cmd.Done(func(any) { m.Cancel() })
		cmd.Fail(func(string) { m.Cancel() })
	}
	return promiseOf[string](cmd)
}

// AwaitAll waits for the given completions under the connection timeout.
func (c *AsyncConnection[K, V]) AwaitAll(completions ...Completion) bool {
	return AwaitAll(c.Timeout(), completions...)
}

// Digest returns the lowercase hex SHA-1 of the encoded value, as passed to
// EVALSHA.
func (c *AsyncConnection[K, V]) Digest(script V) string {
	return c.scripts.DigestFor(c.codec.EncodeValue(script))
}

// Close tears the connection down: reconnection stops, the channel closes
// and everything still pending fails with "Connection closed". Close is
// idempotent.
func (c *AsyncConnection[K, V]) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	ch := c.channel
	c.mu.Unlock()

	if c.watchdog != nil {
		c.watchdog.SetReconnect(false)
	}
	c.collector.DecrementActiveConnections()
	if ch != nil {
		_ = ch.Close()
	} else {
		c.channelInactive()
	}
	return nil
}
