package client

import (
	"bufio"
	"context"
	"net"
	"sync"
	"sync/atomic"

	"github.com/cenkalti/backoff/v5"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pzhenzhou/elika-client/pkg/common"
	"github.com/pzhenzhou/elika-client/pkg/respio"
)

// Channel is one live TCP connection. The connection core outlives any
// individual channel; queue, password and database state never live here.
type Channel struct {
	Id     string
	conn   net.Conn
	mu     sync.Mutex
	writer *bufio.Writer
}

func NewChannel(conn net.Conn) *Channel {
	return &Channel{
		Id:     shortuuid.New(),
		conn:   conn,
		writer: bufio.NewWriterSize(conn, respio.DefaultBufferSize),
	}
}

func (ch *Channel) WriteAndFlush(p []byte) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if _, err := ch.writer.Write(p); err != nil {
		return err
	}
	return ch.writer.Flush()
}

func (ch *Channel) Close() error {
	return ch.conn.Close()
}

func (ch *Channel) RemoteAddr() net.Addr {
	return ch.conn.RemoteAddr()
}

// channelHandler receives lifecycle events from the watchdog.
type channelHandler interface {
	channelActive(ch *Channel)
	channelInactive()
}

// Watchdog owns the channel lifecycle: it dials, hands live channels to its
// handler, pumps received bytes into the decoder on a single goroutine, and
// keeps reconnecting after transport failures until told to stop.
type Watchdog struct {
	cfg       *common.ClientConfig
	handler   channelHandler
	decoder   *respio.RespDecoder
	reconnect atomic.Bool
	ctx       context.Context
	cancel    context.CancelFunc
}

func NewWatchdog(cfg *common.ClientConfig, handler channelHandler, decoder *respio.RespDecoder) *Watchdog {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watchdog{
		cfg:     cfg,
		handler: handler,
		decoder: decoder,
		ctx:     ctx,
		cancel:  cancel,
	}
	w.reconnect.Store(true)
	return w
}

// Start dials the initial channel, retrying with the configured backoff.
func (w *Watchdog) Start() error {
	conn, err := backoff.Retry[net.Conn](w.ctx, func() (net.Conn, error) {
		return w.dial()
	}, w.retryOptions()...)
	if err != nil {
		logger.Error(err, "Watchdog failed to establish connection", "addr", w.cfg.Addr)
		return err
	}
	w.run(conn)
	return nil
}

func (w *Watchdog) dial() (net.Conn, error) {
	dialer := &net.Dialer{Timeout: w.cfg.DialTimeout}
	return dialer.Dial("tcp", w.cfg.Addr)
}

func (w *Watchdog) retryOptions() []backoff.RetryOption {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = w.cfg.Reconnect.InitialInterval
	expo.MaxInterval = w.cfg.Reconnect.MaxInterval
	// passed even when zero: backoff.Retry otherwise applies its own default
	// limit, and a zero limit means no limit
	return []backoff.RetryOption{
		backoff.WithBackOff(expo),
		backoff.WithMaxElapsedTime(w.cfg.Reconnect.MaxElapsedTime),
	}
}

func (w *Watchdog) run(conn net.Conn) {
	ch := NewChannel(conn)
	w.handler.channelActive(ch)
	go w.readLoop(ch)
}

// readLoop is the transport executor: all decoding happens here.
func (w *Watchdog) readLoop(ch *Channel) {
	buf := make([]byte, respio.DefaultBufferSize)
	for {
		n, err := ch.conn.Read(buf)
		if n > 0 {
			if feedErr := w.decoder.Feed(buf[:n]); feedErr != nil {
				logger.Error(feedErr, "Watchdog reply stream corrupt, dropping channel", "channel", ch.Id)
				_ = ch.Close()
				err = net.ErrClosed
			}
		}
		if err == nil {
			continue
		}
		// A reply cut off mid-frame belongs to a request that will be
		// replayed in full on the next channel.
		w.decoder.Reset()
		w.handler.channelInactive()
		if w.reconnect.Load() && common.IsConnUnavailable(err) {
			w.retryLoop()
		}
		return
	}
}

func (w *Watchdog) retryLoop() {
	conn, err := backoff.Retry[net.Conn](w.ctx, func() (net.Conn, error) {
		if !w.reconnect.Load() {
			return nil, backoff.Permanent(ErrClosed)
		}
		return w.dial()
	}, w.retryOptions()...)
	if err != nil {
		logger.Error(err, "Watchdog gave up reconnecting", "addr", w.cfg.Addr)
		return
	}
	w.run(conn)
}

// SetReconnect disabling reconnection also aborts any retry in progress.
func (w *Watchdog) SetReconnect(enable bool) {
	w.reconnect.Store(enable)
	if !enable {
		w.cancel()
	}
}
