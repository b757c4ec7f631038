package respio

import (
	"bytes"
	"math"
	"strconv"
)

// CommandArgs accumulates the arguments of one request, already framed as
// bulk strings. The element count is tracked separately so the request header
// can be written without re-scanning the buffer.
type CommandArgs struct {
	buf   bytes.Buffer
	count int
}

func NewCommandArgs() *CommandArgs {
	return &CommandArgs{}
}

func (a *CommandArgs) Count() int {
	return a.count
}

// Buffer returns the wire form of all appended arguments.
func (a *CommandArgs) Buffer() []byte {
	return a.buf.Bytes()
}

// Add appends a raw byte slice as one bulk string.
func (a *CommandArgs) Add(b []byte) *CommandArgs {
	writeBulk(&a.buf, b)
	a.count++
	return a
}

func (a *CommandArgs) AddString(s string) *CommandArgs {
	return a.Add([]byte(s))
}

func (a *CommandArgs) AddInt(v int64) *CommandArgs {
	return a.Add(strconv.AppendInt(nil, v, 10))
}

func (a *CommandArgs) AddDouble(v float64) *CommandArgs {
	return a.AddString(FormatDouble(v))
}

// AddPair appends a key bulk string followed by a value bulk string.
func (a *CommandArgs) AddPair(key, value []byte) *CommandArgs {
	a.Add(key)
	a.Add(value)
	return a
}

// FormatDouble renders a float the way the wire protocol expects: infinities
// as +inf/-inf, NaN as nan, everything else in shortest round-trip form.
func FormatDouble(v float64) string {
	if math.IsInf(v, 1) {
		return "+inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// EncodeRequest frames a complete request: an array header for the command
// name plus every argument, each as a bulk string.
func EncodeRequest(name []byte, args *CommandArgs) []byte {
	argCount := 0
	var argBytes []byte
	if args != nil {
		argCount = args.Count()
		argBytes = args.Buffer()
	}
	var buf bytes.Buffer
	buf.Grow(16 + len(name) + len(argBytes))
	buf.WriteByte(RespArray)
	buf.WriteString(strconv.Itoa(1 + argCount))
	buf.WriteString(CRLF)
	writeBulk(&buf, name)
	buf.Write(argBytes)
	return buf.Bytes()
}

func writeBulk(buf *bytes.Buffer, b []byte) {
	buf.WriteByte(RespString)
	buf.WriteString(strconv.Itoa(len(b)))
	buf.WriteString(CRLF)
	buf.Write(b)
	buf.WriteString(CRLF)
}
