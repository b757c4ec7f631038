package respio

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/pzhenzhou/elika-client/pkg/common"
)

const (
	DefaultBufferSize = 8 * common.KB
	MaxBufferSize     = 512 * common.MB
)

var (
	ErrInvalidSyntax = errors.New("invalid RESP syntax")
	ErrTooLarge      = errors.New("value too large")
	ErrBadCRLFEnd    = errors.New("bad CRLF end")

	logger = common.InitLogger().WithName("resp")
)

// RespSink receives the decoded tokens of one reply. It is the decoder-facing
// half of a command output.
type RespSink interface {
	Set(b []byte)
	SetInt(v int64)
	Multi(n int64)
	SetErr(msg string)
}

// SinkSource yields the sink of the oldest pending request. ReplyComplete is
// called exactly once per fully decoded reply, after which the next reply is
// routed to whatever CurrentSink returns then.
type SinkSource interface {
	// CurrentSink may return nil (cancelled request); tokens of the reply
	// are then parsed and dropped.
	CurrentSink() RespSink
	ReplyComplete()
}

// RespDecoder is a resumable reply parser. Feed appends bytes and decodes as
// many complete frames as the buffer holds; a partially received frame leaves
// the cursor at the frame start so the next Feed resumes cleanly.
type RespDecoder struct {
	src SinkSource
	buf []byte
	pos int
	// remaining element counts of the open multi-bulk frames, outermost first
	stack []int64
}

func NewRespDecoder(src SinkSource) *RespDecoder {
	return &RespDecoder{
		src: src,
		buf: make([]byte, 0, DefaultBufferSize),
	}
}

// Buffered reports how many undecoded bytes are held.
func (d *RespDecoder) Buffered() int {
	return len(d.buf) - d.pos
}

// Reset drops buffered bytes and any open frames. Called when the channel
// dies mid-reply; the interrupted request is replayed in full elsewhere.
func (d *RespDecoder) Reset() {
	d.buf = d.buf[:0]
	d.pos = 0
	d.stack = d.stack[:0]
}

func (d *RespDecoder) Feed(p []byte) error {
	if len(d.buf)+len(p) > MaxBufferSize {
		return ErrTooLarge
	}
	d.buf = append(d.buf, p...)
	for {
		advanced, err := d.decodeFrame()
		if err != nil {
			return err
		}
		if !advanced {
			break
		}
	}
	d.compact()
	return nil
}

func (d *RespDecoder) compact() {
	if d.pos == 0 {
		return
	}
	n := copy(d.buf, d.buf[d.pos:])
	d.buf = d.buf[:n]
	d.pos = 0
}

// decodeFrame consumes one complete frame, or nothing at all when the buffer
// ends mid-frame.
func (d *RespDecoder) decodeFrame() (bool, error) {
	if d.pos >= len(d.buf) {
		return false, nil
	}
	mark := d.pos
	marker := d.buf[d.pos]
	line, next, ok, err := d.readLine(d.pos + 1)
	if err != nil {
		return false, err
	}
	if !ok {
		d.pos = mark
		return false, nil
	}
	sink := d.src.CurrentSink()

	switch marker {
	case RespStatus:
		d.pos = next
		if sink != nil {
			sink.Set(line)
		}
	case RespError:
		d.pos = next
		if sink != nil {
			sink.SetErr(string(line))
		}
	case RespInt:
		n, parseErr := parseInt(line)
		if parseErr != nil {
			return false, parseErr
		}
		d.pos = next
		if sink != nil {
			sink.SetInt(n)
		}
	case RespString:
		length, parseErr := parseInt(line)
		if parseErr != nil {
			return false, parseErr
		}
		if length == -1 {
			d.pos = next
			if sink != nil {
				sink.Multi(-1)
			}
			break
		}
		if length < 0 || length > MaxBufferSize {
			return false, ErrTooLarge
		}
		end := next + int(length) + len(CRLF)
		if end > len(d.buf) {
			d.pos = mark
			return false, nil
		}
		body := d.buf[next : next+int(length)]
		if d.buf[end-2] != '\r' || d.buf[end-1] != '\n' {
			return false, ErrBadCRLFEnd
		}
		d.pos = end
		if sink != nil {
			// The buffer is compacted in place, so hand the sink its own copy.
			sink.Set(bytes.Clone(body))
		}
	case RespArray:
		length, parseErr := parseInt(line)
		if parseErr != nil {
			return false, parseErr
		}
		d.pos = next
		if sink != nil {
			sink.Multi(length)
		}
		if length > 0 {
			// Elements follow; the frame closes when the countdown drains.
			d.stack = append(d.stack, length)
			return true, nil
		}
	default:
		logger.Info("RespDecoder invalid RESP type", "type", string(marker))
		return false, ErrInvalidSyntax
	}

	d.closeElement()
	return true, nil
}

// closeElement marks one element fully consumed: it decrements the innermost
// open multi-bulk, popping every frame it exhausts, and signals end-of-reply
// once no frame remains open.
func (d *RespDecoder) closeElement() {
	for len(d.stack) > 0 {
		top := len(d.stack) - 1
		d.stack[top]--
		if d.stack[top] > 0 {
			return
		}
		d.stack = d.stack[:top]
	}
	d.src.ReplyComplete()
}

// readLine scans for CRLF starting at from. ok is false when the line has not
// fully arrived yet.
func (d *RespDecoder) readLine(from int) (line []byte, next int, ok bool, err error) {
	if from > len(d.buf) {
		return nil, 0, false, nil
	}
	idx := bytes.IndexByte(d.buf[from:], '\n')
	if idx < 0 {
		return nil, 0, false, nil
	}
	end := from + idx
	if end == from || d.buf[end-1] != '\r' {
		return nil, 0, false, ErrBadCRLFEnd
	}
	return d.buf[from : end-1], end + 1, true, nil
}

func parseInt(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, ErrInvalidSyntax
	}
	if len(b) < 10 { // Fast path for small numbers
		var neg, i = false, 0
		switch b[0] {
		case '-':
			neg = true
			fallthrough
		case '+':
			i++
		}
		if len(b) != i {
			var n int64
			for ; i < len(b) && b[i] >= '0' && b[i] <= '9'; i++ {
				n = int64(b[i]-'0') + n*10
			}
			if len(b) == i {
				if neg {
					n = -n
				}
				return n, nil
			}
		}
	}
	return strconv.ParseInt(string(b), 10, 64)
}
