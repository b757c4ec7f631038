package client

import (
	"github.com/pzhenzhou/elika-client/pkg/respio"
)

// commandArgs routes user keys and values through the codec into the wire
// level argument buffer.
type commandArgs[K comparable, V any] struct {
	inner *respio.CommandArgs
	codec RedisCodec[K, V]
}

func (c *AsyncConnection[K, V]) args() *commandArgs[K, V] {
	return &commandArgs[K, V]{inner: respio.NewCommandArgs(), codec: c.codec}
}

func (a *commandArgs[K, V]) Key(key K) *commandArgs[K, V] {
	a.inner.Add(a.codec.EncodeKey(key))
	return a
}

func (a *commandArgs[K, V]) Keys(keys ...K) *commandArgs[K, V] {
	for _, key := range keys {
		a.Key(key)
	}
	return a
}

func (a *commandArgs[K, V]) Value(value V) *commandArgs[K, V] {
	a.inner.Add(a.codec.EncodeValue(value))
	return a
}

func (a *commandArgs[K, V]) Values(values ...V) *commandArgs[K, V] {
	for _, value := range values {
		a.Value(value)
	}
	return a
}

func (a *commandArgs[K, V]) Str(s string) *commandArgs[K, V] {
	a.inner.AddString(s)
	return a
}

func (a *commandArgs[K, V]) Int(v int64) *commandArgs[K, V] {
	a.inner.AddInt(v)
	return a
}

func (a *commandArgs[K, V]) Double(v float64) *commandArgs[K, V] {
	a.inner.AddDouble(v)
	return a
}

func (a *commandArgs[K, V]) Bytes(b []byte) *commandArgs[K, V] {
	a.inner.Add(b)
	return a
}

func (a *commandArgs[K, V]) Keyword(kw Keyword) *commandArgs[K, V] {
	a.inner.Add(kw.Bytes())
	return a
}

// Map appends each entry as a key bulk string followed by a value bulk
// string.
func (a *commandArgs[K, V]) Map(m map[K]V) *commandArgs[K, V] {
	for k, v := range m {
		a.inner.AddPair(a.codec.EncodeKey(k), a.codec.EncodeValue(v))
	}
	return a
}
