package client

import (
	"github.com/pzhenzhou/elika-client/pkg/respio"
)

// SortArgs collects the optional modifiers of SORT.
type SortArgs struct {
	by      string
	hasBy   bool
	offset  int64
	count   int64
	limited bool
	get     []string
	order   Keyword
	alpha   bool
}

func NewSortArgs() *SortArgs {
	return &SortArgs{}
}

func (s *SortArgs) By(pattern string) *SortArgs {
	s.by = pattern
	s.hasBy = true
	return s
}

func (s *SortArgs) Limit(offset, count int64) *SortArgs {
	s.offset = offset
	s.count = count
	s.limited = true
	return s
}

func (s *SortArgs) Get(pattern string) *SortArgs {
	s.get = append(s.get, pattern)
	return s
}

func (s *SortArgs) Asc() *SortArgs {
	s.order = KwAsc
	return s
}

func (s *SortArgs) Desc() *SortArgs {
	s.order = KwDesc
	return s
}

func (s *SortArgs) Alpha() *SortArgs {
	s.alpha = true
	return s
}

func (s *SortArgs) Build(args *respio.CommandArgs) {
	if s.hasBy {
		args.Add(KwBy.Bytes()).AddString(s.by)
	}
	if s.limited {
		args.Add(KwLimit.Bytes()).AddInt(s.offset).AddInt(s.count)
	}
	for _, pattern := range s.get {
		args.Add(KwGet.Bytes()).AddString(pattern)
	}
	if s.order != "" {
		args.Add(s.order.Bytes())
	}
	if s.alpha {
		args.Add(KwAlpha.Bytes())
	}
}

// ZStoreArgs collects the optional modifiers of ZINTERSTORE/ZUNIONSTORE.
type ZStoreArgs struct {
	weights   []float64
	aggregate Keyword
}

func NewZStoreArgs() *ZStoreArgs {
	return &ZStoreArgs{}
}

func (z *ZStoreArgs) Weights(weights ...float64) *ZStoreArgs {
	z.weights = weights
	return z
}

func (z *ZStoreArgs) Sum() *ZStoreArgs {
	z.aggregate = "SUM"
	return z
}

func (z *ZStoreArgs) Min() *ZStoreArgs {
	z.aggregate = "MIN"
	return z
}

func (z *ZStoreArgs) Max() *ZStoreArgs {
	z.aggregate = "MAX"
	return z
}

func (z *ZStoreArgs) Build(args *respio.CommandArgs) {
	if len(z.weights) > 0 {
		args.Add(KwWeights.Bytes())
		for _, w := range z.weights {
			args.AddDouble(w)
		}
	}
	if z.aggregate != "" {
		args.Add(KwAggregate.Bytes()).Add(z.aggregate.Bytes())
	}
}

// ScriptOutputType selects how an EVAL/EVALSHA reply is assembled. The
// enumeration is closed; anything else is rejected up front.
type ScriptOutputType int

const (
	ScriptOutputBoolean ScriptOutputType = iota
	ScriptOutputInteger
	ScriptOutputStatus
	ScriptOutputMulti
	ScriptOutputValue
)

func newScriptOutput[K comparable, V any](codec RedisCodec[K, V], t ScriptOutputType) (CommandOutput, error) {
	switch t {
	case ScriptOutputBoolean:
		return NewBooleanOutput(), nil
	case ScriptOutputInteger:
		return NewIntegerOutput(), nil
	case ScriptOutputStatus:
		return NewStatusOutput(), nil
	case ScriptOutputMulti:
		return NewNestedMultiOutput(codec), nil
	case ScriptOutputValue:
		return NewValueOutput(codec), nil
	default:
		return nil, ErrUnsupportedScriptOutput
	}
}
