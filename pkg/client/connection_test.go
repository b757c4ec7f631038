package client

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/pzhenzhou/elika-client/pkg/common"
	"github.com/pzhenzhou/elika-client/pkg/respio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = time.Second

// newTestConnection builds a connection core without a live transport; tests
// feed the decoder directly and attach channels by hand.
func newTestConnection() (*AsyncConnection[string, string], *respio.RespDecoder) {
	conn := newAsyncConnection(common.DefaultClientConfig(), StringCodec{})
	return conn, respio.NewRespDecoder(conn)
}

func encoded(t CommandType, args *respio.CommandArgs) string {
	return string(respio.EncodeRequest(t.Bytes(), args))
}

func TestDispatchSetGet(t *testing.T) {
	conn, decoder := newTestConnection()
	setP := conn.Set("foo", "bar")
	getP := conn.Get("foo")

	require.NoError(t, decoder.Feed([]byte("+OK\r\n$3\r\nbar\r\n")))

	status, err := setP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, "OK", status)

	value, err := getP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, "bar", value)
}

func TestDispatchIncr(t *testing.T) {
	conn, decoder := newTestConnection()
	incrP := conn.Incr("c")
	require.NoError(t, decoder.Feed([]byte(":42\r\n")))

	n, err := incrP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestDispatchEmptyList(t *testing.T) {
	conn, decoder := newTestConnection()
	lrangeP := conn.Lrange("k", 0, -1)
	require.NoError(t, decoder.Feed([]byte("*0\r\n")))

	list, err := lrangeP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, []string{}, list)
}

func TestDispatchHgetall(t *testing.T) {
	conn, decoder := newTestConnection()
	hgetallP := conn.Hgetall("h")
	require.NoError(t, decoder.Feed([]byte("*4\r\n$1\r\na\r\n$1\r\n1\r\n$1\r\nb\r\n$1\r\n2\r\n")))

	m, err := hgetallP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, m)
}

// FIFO binding: the i-th decoded reply binds to the i-th dispatched request.
func TestReplyBindingIsFIFO(t *testing.T) {
	conn, decoder := newTestConnection()
	first := conn.Get("a")
	second := conn.Get("b")
	third := conn.Incr("c")

	require.NoError(t, decoder.Feed([]byte("$1\r\nA\r\n")))
	assert.True(t, first.IsDone())
	assert.False(t, second.IsDone())

	require.NoError(t, decoder.Feed([]byte("$1\r\nB\r\n:3\r\n")))

	a, _ := first.Get(testTimeout)
	b, _ := second.Get(testTimeout)
	n, _ := third.Get(testTimeout)
	assert.Equal(t, "A", a)
	assert.Equal(t, "B", b)
	assert.Equal(t, int64(3), n)
}

func TestServerErrorRejectsOnlyAffectedRequest(t *testing.T) {
	conn, decoder := newTestConnection()
	bad := conn.Incr("k")
	good := conn.Get("k")

	require.NoError(t, decoder.Feed([]byte("-ERR value is not an integer\r\n$1\r\nv\r\n")))

	_, err := bad.Get(testTimeout)
	assert.EqualError(t, err, "ERR value is not an integer")

	v, err := good.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestTransactionTwoPhaseCompletion(t *testing.T) {
	conn, decoder := newTestConnection()

	multiP := conn.Multi()
	setP := conn.Set("x", "1")
	incrP := conn.Incr("x")

	require.NoError(t, decoder.Feed([]byte("+OK\r\n+QUEUED\r\n+QUEUED\r\n")))
	assert.True(t, multiP.IsDone())
	assert.False(t, setP.IsDone())
	assert.False(t, incrP.IsDone())

	execP := conn.Exec()
	require.NoError(t, decoder.Feed([]byte("*2\r\n+OK\r\n:2\r\n")))

	status, err := setP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, "OK", status)

	n, err := incrP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	results, err := execP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, []any{"OK", int64(2)}, results)
}

func TestDiscardCancelsBatch(t *testing.T) {
	conn, decoder := newTestConnection()

	multiP := conn.Multi()
	setP := conn.Set("x", "1")

	require.NoError(t, decoder.Feed([]byte("+OK\r\n+QUEUED\r\n")))
	assert.False(t, setP.IsDone())

	discardP := conn.Discard()
	require.NoError(t, decoder.Feed([]byte("+OK\r\n")))

	assert.True(t, setP.IsDone())
	status, err := discardP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, "OK", status)
	_ = multiP
}

// Discard with no active batch just dispatches DISCARD.
func TestDiscardWithoutMulti(t *testing.T) {
	conn, decoder := newTestConnection()
	discardP := conn.Discard()
	require.NoError(t, decoder.Feed([]byte("-ERR DISCARD without MULTI\r\n")))
	_, err := discardP.Get(testTimeout)
	assert.EqualError(t, err, "ERR DISCARD without MULTI")
}

func TestGetTimeoutCancelsRequest(t *testing.T) {
	conn, decoder := newTestConnection()
	getP := conn.Get("k")

	_, err := getP.Get(10 * time.Millisecond)
	assert.ErrorIs(t, err, ErrCmdTimeout)

	// the late reply is parsed and dropped; the queue stays in sync
	require.NoError(t, decoder.Feed([]byte("$1\r\nv\r\n")))
	assert.Equal(t, 0, conn.queue.Len())
}

func TestCloseFailsPending(t *testing.T) {
	conn, _ := newTestConnection()
	getP := conn.Get("k")

	require.NoError(t, conn.Close())
	_, err := getP.Get(testTimeout)
	assert.EqualError(t, err, "Connection closed")

	// close is idempotent
	assert.NoError(t, conn.Close())
}

func TestDispatchAfterClose(t *testing.T) {
	conn, _ := newTestConnection()
	require.NoError(t, conn.Close())

	_, err := conn.Ping().Get(testTimeout)
	assert.EqualError(t, err, ErrClosed.Error())
}

// channelActive replays remembered AUTH, remembered SELECT and the pending
// queue, in that order.
func TestChannelActiveReplaysSession(t *testing.T) {
	conn, _ := newTestConnection()
	conn.password = "secret"
	conn.db = 3
	getP := conn.Get("k")

	clientEnd, srvEnd := net.Pipe()
	defer clientEnd.Close()
	defer srvEnd.Close()
	go conn.channelActive(NewChannel(clientEnd))

	expected := encoded(CmdAuth, respio.NewCommandArgs().AddString("secret")) +
		encoded(CmdSelect, respio.NewCommandArgs().AddInt(3)) +
		encoded(CmdGet, respio.NewCommandArgs().AddString("k"))

	require.NoError(t, srvEnd.SetReadDeadline(time.Now().Add(testTimeout)))
	buf := make([]byte, len(expected))
	_, err := io.ReadFull(srvEnd, buf)
	require.NoError(t, err)
	assert.Equal(t, expected, string(buf))

	assert.False(t, getP.IsDone())
	assert.Equal(t, 3, conn.queue.Len())
}

// Replay after any number of disconnects preserves the set and order of
// unfinished requests.
func TestReplayPreservesOrderAcrossReconnects(t *testing.T) {
	conn, _ := newTestConnection()
	first := conn.Get("a")
	second := conn.Incr("b")

	expected := encoded(CmdGet, respio.NewCommandArgs().AddString("a")) +
		encoded(CmdIncr, respio.NewCommandArgs().AddString("b"))

	for cycle := 0; cycle < 3; cycle++ {
		clientEnd, srvEnd := net.Pipe()
		go conn.channelActive(NewChannel(clientEnd))

		require.NoError(t, srvEnd.SetReadDeadline(time.Now().Add(testTimeout)))
		buf := make([]byte, len(expected))
		_, err := io.ReadFull(srvEnd, buf)
		require.NoError(t, err, "cycle %d", cycle)
		assert.Equal(t, expected, string(buf), "cycle %d", cycle)

		conn.channelInactive()
		assert.Equal(t, 2, conn.queue.Len())
		_ = clientEnd.Close()
		_ = srvEnd.Close()
	}
	assert.False(t, first.IsDone())
	assert.False(t, second.IsDone())
}

func TestReplaySkipsCancelledRequests(t *testing.T) {
	conn, _ := newTestConnection()
	cancelled := conn.Get("a")
	kept := conn.Get("b")
	_, err := cancelled.Get(time.Millisecond)
	assert.ErrorIs(t, err, ErrCmdTimeout)

	clientEnd, srvEnd := net.Pipe()
	defer clientEnd.Close()
	defer srvEnd.Close()
	go conn.channelActive(NewChannel(clientEnd))

	expected := encoded(CmdGet, respio.NewCommandArgs().AddString("b"))
	require.NoError(t, srvEnd.SetReadDeadline(time.Now().Add(testTimeout)))
	buf := make([]byte, len(expected))
	_, readErr := io.ReadFull(srvEnd, buf)
	require.NoError(t, readErr)
	assert.Equal(t, expected, string(buf))
	assert.Equal(t, 1, conn.queue.Len())
	assert.False(t, kept.IsDone())
}

func TestDigest(t *testing.T) {
	conn, _ := newTestConnection()
	// well-known SHA-1 test vector
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", conn.Digest("abc"))
	// memoized lookups return the same digest
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", conn.Digest("abc"))
}

func TestEvalUnsupportedOutputType(t *testing.T) {
	conn, _ := newTestConnection()
	_, err := conn.Eval("return 1", ScriptOutputType(99), nil)
	assert.ErrorIs(t, err, ErrUnsupportedScriptOutput)
}

// Full stack: a real TCP round-trip against a scripted peer.
func TestConnectScriptedServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	requests := encoded(CmdPing, nil) +
		encoded(CmdSet, respio.NewCommandArgs().AddString("foo").AddString("bar")) +
		encoded(CmdGet, respio.NewCommandArgs().AddString("foo"))

	serverDone := make(chan error, 1)
	go func() {
		peer, acceptErr := ln.Accept()
		if acceptErr != nil {
			serverDone <- acceptErr
			return
		}
		defer peer.Close()
		buf := make([]byte, len(requests))
		if _, readErr := io.ReadFull(peer, buf); readErr != nil {
			serverDone <- readErr
			return
		}
		if string(buf) != requests {
			serverDone <- io.ErrUnexpectedEOF
			return
		}
		_, writeErr := peer.Write([]byte("+PONG\r\n+OK\r\n$3\r\nbar\r\n"))
		serverDone <- writeErr
	}()

	cfg := common.DefaultClientConfig()
	cfg.Addr = ln.Addr().String()
	conn, err := Connect[string, string](cfg, StringCodec{})
	require.NoError(t, err)
	defer conn.Close()

	pingP := conn.Ping()
	setP := conn.Set("foo", "bar")
	getP := conn.Get("foo")

	pong, err := pingP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, "PONG", pong)

	status, err := setP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, "OK", status)

	value, err := getP.Get(testTimeout)
	assert.NoError(t, err)
	assert.Equal(t, "bar", value)

	assert.NoError(t, <-serverDone)
}
