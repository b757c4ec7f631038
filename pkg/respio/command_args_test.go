package respio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeRequest(t *testing.T) {
	tests := []struct {
		name     string
		cmd      string
		args     *CommandArgs
		expected string
	}{
		{
			name:     "no args",
			cmd:      "PING",
			args:     nil,
			expected: "*1\r\n$4\r\nPING\r\n",
		},
		{
			name:     "key and value",
			cmd:      "SET",
			args:     NewCommandArgs().AddString("foo").AddString("bar"),
			expected: "*3\r\n$3\r\nSET\r\n$3\r\nfoo\r\n$3\r\nbar\r\n",
		},
		{
			name:     "integer argument",
			cmd:      "SELECT",
			args:     NewCommandArgs().AddInt(3),
			expected: "*2\r\n$6\r\nSELECT\r\n$1\r\n3\r\n",
		},
		{
			name:     "negative integer",
			cmd:      "LRANGE",
			args:     NewCommandArgs().AddString("k").AddInt(0).AddInt(-1),
			expected: "*4\r\n$6\r\nLRANGE\r\n$1\r\nk\r\n$1\r\n0\r\n$2\r\n-1\r\n",
		},
		{
			name:     "pair contributes two bulk strings",
			cmd:      "MSET",
			args:     NewCommandArgs().AddPair([]byte("a"), []byte("1")),
			expected: "*3\r\n$4\r\nMSET\r\n$1\r\na\r\n$1\r\n1\r\n",
		},
		{
			name:     "empty bulk string",
			cmd:      "SET",
			args:     NewCommandArgs().AddString("k").Add([]byte{}),
			expected: "*3\r\n$3\r\nSET\r\n$1\r\nk\r\n$0\r\n\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeRequest([]byte(tt.cmd), tt.args)
			assert.Equal(t, tt.expected, string(encoded))
		})
	}
}

func TestCommandArgsCount(t *testing.T) {
	args := NewCommandArgs().AddString("a").AddInt(1).AddDouble(2.5)
	assert.Equal(t, 3, args.Count())
	args.AddPair([]byte("k"), []byte("v"))
	assert.Equal(t, 5, args.Count())
}

func TestFormatDouble(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"positive infinity", math.Inf(1), "+inf"},
		{"negative infinity", math.Inf(-1), "-inf"},
		{"not a number", math.NaN(), "nan"},
		{"integral", 1, "1"},
		{"fraction", 1.5, "1.5"},
		{"shortest round trip", 0.1, "0.1"},
		{"negative", -42.25, "-42.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDouble(tt.input))
		})
	}
}
