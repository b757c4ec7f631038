package client

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pzhenzhou/elika-client/pkg/respio"
)

// CommandOutput assembles one typed reply from the tokens the decoder feeds
// it. Get is only meaningful after the decoder has signalled completion of
// the outermost frame.
type CommandOutput interface {
	respio.RespSink
	Complete()
	Get() any
	HasError() bool
	Error() string
}

// baseOutput supplies the error slot and no-op token handlers; concrete
// outputs override the tokens they consume.
type baseOutput struct {
	err    string
	hasErr bool
}

func (o *baseOutput) Set(b []byte)   {}
func (o *baseOutput) SetInt(v int64) {}
func (o *baseOutput) Multi(n int64)  {}
func (o *baseOutput) Complete()      {}

func (o *baseOutput) SetErr(msg string) {
	o.err = msg
	o.hasErr = true
}

func (o *baseOutput) HasError() bool {
	return o.hasErr
}

func (o *baseOutput) Error() string {
	return o.err
}

func parseDouble(b []byte) float64 {
	s := string(b)
	switch strings.ToLower(s) {
	case "inf", "+inf":
		return math.Inf(1)
	case "-inf":
		return math.Inf(-1)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// StatusOutput holds a simple status reply such as "OK".
type StatusOutput struct {
	baseOutput
	status string
}

func NewStatusOutput() *StatusOutput {
	return &StatusOutput{}
}

func (o *StatusOutput) Set(b []byte) {
	o.status = string(b)
}

func (o *StatusOutput) Get() any {
	return o.status
}

type IntegerOutput struct {
	baseOutput
	value int64
}

func NewIntegerOutput() *IntegerOutput {
	return &IntegerOutput{}
}

func (o *IntegerOutput) SetInt(v int64) {
	o.value = v
}

func (o *IntegerOutput) Get() any {
	return o.value
}

// BooleanOutput maps an integer reply to a bool: 1 is true, anything else
// (including a nil reply) is false.
type BooleanOutput struct {
	baseOutput
	value bool
}

func NewBooleanOutput() *BooleanOutput {
	return &BooleanOutput{}
}

func (o *BooleanOutput) SetInt(v int64) {
	o.value = v == 1
}

func (o *BooleanOutput) Multi(n int64) {
	if n == -1 {
		o.value = false
	}
}

func (o *BooleanOutput) Get() any {
	return o.value
}

type DoubleOutput struct {
	baseOutput
	value float64
}

func NewDoubleOutput() *DoubleOutput {
	return &DoubleOutput{}
}

func (o *DoubleOutput) Set(b []byte) {
	o.value = parseDouble(b)
}

func (o *DoubleOutput) Get() any {
	return o.value
}

// DateOutput converts an integer reply holding Unix seconds.
type DateOutput struct {
	baseOutput
	value time.Time
}

func NewDateOutput() *DateOutput {
	return &DateOutput{}
}

func (o *DateOutput) SetInt(v int64) {
	o.value = time.Unix(v, 0)
}

func (o *DateOutput) Get() any {
	return o.value
}

type ValueOutput[K comparable, V any] struct {
	baseOutput
	codec RedisCodec[K, V]
	value V
}

func NewValueOutput[K comparable, V any](codec RedisCodec[K, V]) *ValueOutput[K, V] {
	return &ValueOutput[K, V]{codec: codec}
}

func (o *ValueOutput[K, V]) Set(b []byte) {
	o.value = o.codec.DecodeValue(b)
}

func (o *ValueOutput[K, V]) Get() any {
	return o.value
}

type KeyOutput[K comparable, V any] struct {
	baseOutput
	codec RedisCodec[K, V]
	key   K
}

func NewKeyOutput[K comparable, V any](codec RedisCodec[K, V]) *KeyOutput[K, V] {
	return &KeyOutput[K, V]{codec: codec}
}

func (o *KeyOutput[K, V]) Set(b []byte) {
	o.key = o.codec.DecodeKey(b)
}

func (o *KeyOutput[K, V]) Get() any {
	return o.key
}

type ByteArrayOutput struct {
	baseOutput
	value []byte
}

func NewByteArrayOutput() *ByteArrayOutput {
	return &ByteArrayOutput{}
}

func (o *ByteArrayOutput) Set(b []byte) {
	o.value = b
}

func (o *ByteArrayOutput) Get() any {
	return o.value
}

// listOutput tracks whether the outer multi-bulk frame has been opened, so a
// later Multi(-1) can be recognized as a nil element rather than the reply
// header.
type listOutput struct {
	baseOutput
	opened bool
}

func (o *listOutput) openOrNil(n int64) bool {
	if !o.opened {
		o.opened = true
		return false
	}
	return n == -1
}

type ValueListOutput[K comparable, V any] struct {
	listOutput
	codec RedisCodec[K, V]
	list  []V
}

func NewValueListOutput[K comparable, V any](codec RedisCodec[K, V]) *ValueListOutput[K, V] {
	return &ValueListOutput[K, V]{codec: codec, list: []V{}}
}

func (o *ValueListOutput[K, V]) Set(b []byte) {
	o.list = append(o.list, o.codec.DecodeValue(b))
}

func (o *ValueListOutput[K, V]) Multi(n int64) {
	if o.openOrNil(n) {
		var zero V
		o.list = append(o.list, zero)
	}
}

func (o *ValueListOutput[K, V]) Get() any {
	return o.list
}

type KeyListOutput[K comparable, V any] struct {
	listOutput
	codec RedisCodec[K, V]
	list  []K
}

func NewKeyListOutput[K comparable, V any](codec RedisCodec[K, V]) *KeyListOutput[K, V] {
	return &KeyListOutput[K, V]{codec: codec, list: []K{}}
}

func (o *KeyListOutput[K, V]) Set(b []byte) {
	o.list = append(o.list, o.codec.DecodeKey(b))
}

func (o *KeyListOutput[K, V]) Get() any {
	return o.list
}

// ValueSetOutput collects members of a set reply. Member uniqueness is the
// server's contract; the order is whatever the server sent.
type ValueSetOutput[K comparable, V any] struct {
	listOutput
	codec RedisCodec[K, V]
	set   []V
}

func NewValueSetOutput[K comparable, V any](codec RedisCodec[K, V]) *ValueSetOutput[K, V] {
	return &ValueSetOutput[K, V]{codec: codec, set: []V{}}
}

func (o *ValueSetOutput[K, V]) Set(b []byte) {
	o.set = append(o.set, o.codec.DecodeValue(b))
}

func (o *ValueSetOutput[K, V]) Get() any {
	return o.set
}

type StringListOutput struct {
	listOutput
	list []string
}

func NewStringListOutput() *StringListOutput {
	return &StringListOutput{list: []string{}}
}

func (o *StringListOutput) Set(b []byte) {
	o.list = append(o.list, string(b))
}

func (o *StringListOutput) Get() any {
	return o.list
}

type BooleanListOutput struct {
	listOutput
	list []bool
}

func NewBooleanListOutput() *BooleanListOutput {
	return &BooleanListOutput{list: []bool{}}
}

func (o *BooleanListOutput) SetInt(v int64) {
	o.list = append(o.list, v == 1)
}

func (o *BooleanListOutput) Get() any {
	return o.list
}

// MapOutput pairs successive bulk replies into field/value entries.
type MapOutput[K comparable, V any] struct {
	listOutput
	codec      RedisCodec[K, V]
	m          map[K]V
	pendingKey *K
}

func NewMapOutput[K comparable, V any](codec RedisCodec[K, V]) *MapOutput[K, V] {
	return &MapOutput[K, V]{codec: codec, m: map[K]V{}}
}

func (o *MapOutput[K, V]) Set(b []byte) {
	if o.pendingKey == nil {
		k := o.codec.DecodeKey(b)
		o.pendingKey = &k
		return
	}
	o.m[*o.pendingKey] = o.codec.DecodeValue(b)
	o.pendingKey = nil
}

func (o *MapOutput[K, V]) Multi(n int64) {
	if o.openOrNil(n) && o.pendingKey != nil {
		var zero V
		o.m[*o.pendingKey] = zero
		o.pendingKey = nil
	}
}

func (o *MapOutput[K, V]) Get() any {
	return o.m
}

// ScoredValue is one member of a sorted-set reply with its score.
type ScoredValue[V any] struct {
	Value V
	Score float64
}

// ScoredValueListOutput consumes the flat value,score,value,score sequence
// produced by WITHSCORES queries.
type ScoredValueListOutput[K comparable, V any] struct {
	listOutput
	codec    RedisCodec[K, V]
	list     []ScoredValue[V]
	pending  *V
}

func NewScoredValueListOutput[K comparable, V any](codec RedisCodec[K, V]) *ScoredValueListOutput[K, V] {
	return &ScoredValueListOutput[K, V]{codec: codec, list: []ScoredValue[V]{}}
}

func (o *ScoredValueListOutput[K, V]) Set(b []byte) {
	if o.pending == nil {
		v := o.codec.DecodeValue(b)
		o.pending = &v
		return
	}
	o.list = append(o.list, ScoredValue[V]{Value: *o.pending, Score: parseDouble(b)})
	o.pending = nil
}

func (o *ScoredValueListOutput[K, V]) Get() any {
	return o.list
}

// KeyValue is the reply of the blocking pop commands.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

type KeyValueOutput[K comparable, V any] struct {
	baseOutput
	codec  RedisCodec[K, V]
	result *KeyValue[K, V]
	hasKey bool
}

func NewKeyValueOutput[K comparable, V any](codec RedisCodec[K, V]) *KeyValueOutput[K, V] {
	return &KeyValueOutput[K, V]{codec: codec}
}

func (o *KeyValueOutput[K, V]) Multi(n int64) {
	if n >= 0 && o.result == nil {
		o.result = &KeyValue[K, V]{}
	}
}

func (o *KeyValueOutput[K, V]) Set(b []byte) {
	if o.result == nil {
		o.result = &KeyValue[K, V]{}
	}
	if !o.hasKey {
		o.result.Key = o.codec.DecodeKey(b)
		o.hasKey = true
		return
	}
	o.result.Value = o.codec.DecodeValue(b)
}

func (o *KeyValueOutput[K, V]) Get() any {
	if o.result == nil {
		return nil
	}
	return *o.result
}

// NestedMultiOutput builds an arbitrary reply tree: bulk strings decode as
// values, integers stay int64, arrays become []any.
type NestedMultiOutput[K comparable, V any] struct {
	baseOutput
	codec RedisCodec[K, V]
	stack []*nestedFrame
}

type nestedFrame struct {
	remaining int64
	items     []any
}

func NewNestedMultiOutput[K comparable, V any](codec RedisCodec[K, V]) *NestedMultiOutput[K, V] {
	return &NestedMultiOutput[K, V]{
		codec: codec,
		// the synthetic root frame is unbounded
		stack: []*nestedFrame{{remaining: -1}},
	}
}

func (o *NestedMultiOutput[K, V]) Set(b []byte) {
	o.addItem(o.codec.DecodeValue(b))
}

func (o *NestedMultiOutput[K, V]) SetInt(v int64) {
	o.addItem(v)
}

func (o *NestedMultiOutput[K, V]) Multi(n int64) {
	switch {
	case n < 0:
		o.addItem(nil)
	case n == 0:
		o.addItem([]any{})
	default:
		o.stack = append(o.stack, &nestedFrame{remaining: n})
	}
}

func (o *NestedMultiOutput[K, V]) addItem(x any) {
	for {
		top := o.stack[len(o.stack)-1]
		top.items = append(top.items, x)
		if top.remaining < 0 || int64(len(top.items)) < top.remaining {
			return
		}
		// frame exhausted; it becomes one element of its parent
		o.stack = o.stack[:len(o.stack)-1]
		x = top.items
	}
}

func (o *NestedMultiOutput[K, V]) Get() any {
	items := o.stack[0].items
	if len(items) == 1 {
		if arr, ok := items[0].([]any); ok {
			return arr
		}
	}
	return items
}
