package client

import (
	"time"

	"github.com/pzhenzhou/elika-client/pkg/respio"
)

// Typed dispatch helpers: every public entry assembles its argument vector,
// picks the output the command's reply shape dictates, and hands both to the
// dispatcher.

func (c *AsyncConnection[K, V]) dispatchArgs(t CommandType, out CommandOutput, args *commandArgs[K, V]) *Command {
	if args == nil {
		return c.dispatch(t, out, nil)
	}
	return c.dispatch(t, out, args.inner)
}

func (c *AsyncConnection[K, V]) statusCmd(t CommandType, args *commandArgs[K, V]) Promise[string] {
	return promiseOf[string](c.dispatchArgs(t, NewStatusOutput(), args))
}

func (c *AsyncConnection[K, V]) intCmd(t CommandType, args *commandArgs[K, V]) Promise[int64] {
	return promiseOf[int64](c.dispatchArgs(t, NewIntegerOutput(), args))
}

func (c *AsyncConnection[K, V]) boolCmd(t CommandType, args *commandArgs[K, V]) Promise[bool] {
	return promiseOf[bool](c.dispatchArgs(t, NewBooleanOutput(), args))
}

func (c *AsyncConnection[K, V]) doubleCmd(t CommandType, args *commandArgs[K, V]) Promise[float64] {
	return promiseOf[float64](c.dispatchArgs(t, NewDoubleOutput(), args))
}

func (c *AsyncConnection[K, V]) dateCmd(t CommandType, args *commandArgs[K, V]) Promise[time.Time] {
	return promiseOf[time.Time](c.dispatchArgs(t, NewDateOutput(), args))
}

func (c *AsyncConnection[K, V]) valueCmd(t CommandType, args *commandArgs[K, V]) Promise[V] {
	return promiseOf[V](c.dispatchArgs(t, NewValueOutput(c.codec), args))
}

func (c *AsyncConnection[K, V]) keyCmd(t CommandType, args *commandArgs[K, V]) Promise[K] {
	return promiseOf[K](c.dispatchArgs(t, NewKeyOutput(c.codec), args))
}

func (c *AsyncConnection[K, V]) valueListCmd(t CommandType, args *commandArgs[K, V]) Promise[[]V] {
	return promiseOf[[]V](c.dispatchArgs(t, NewValueListOutput(c.codec), args))
}

func (c *AsyncConnection[K, V]) keyListCmd(t CommandType, args *commandArgs[K, V]) Promise[[]K] {
	return promiseOf[[]K](c.dispatchArgs(t, NewKeyListOutput(c.codec), args))
}

func (c *AsyncConnection[K, V]) valueSetCmd(t CommandType, args *commandArgs[K, V]) Promise[[]V] {
	return promiseOf[[]V](c.dispatchArgs(t, NewValueSetOutput(c.codec), args))
}

func (c *AsyncConnection[K, V]) mapCmd(t CommandType, args *commandArgs[K, V]) Promise[map[K]V] {
	return promiseOf[map[K]V](c.dispatchArgs(t, NewMapOutput(c.codec), args))
}

func (c *AsyncConnection[K, V]) scoredListCmd(t CommandType, args *commandArgs[K, V]) Promise[[]ScoredValue[V]] {
	return promiseOf[[]ScoredValue[V]](c.dispatchArgs(t, NewScoredValueListOutput(c.codec), args))
}

func (c *AsyncConnection[K, V]) boolListCmd(t CommandType, args *commandArgs[K, V]) Promise[[]bool] {
	return promiseOf[[]bool](c.dispatchArgs(t, NewBooleanListOutput(), args))
}

func (c *AsyncConnection[K, V]) stringListCmd(t CommandType, args *commandArgs[K, V]) Promise[[]string] {
	return promiseOf[[]string](c.dispatchArgs(t, NewStringListOutput(), args))
}

func (c *AsyncConnection[K, V]) bytesCmd(t CommandType, args *commandArgs[K, V]) Promise[[]byte] {
	return promiseOf[[]byte](c.dispatchArgs(t, NewByteArrayOutput(), args))
}

func (c *AsyncConnection[K, V]) kvCmd(t CommandType, args *commandArgs[K, V]) Promise[KeyValue[K, V]] {
	return promiseOf[KeyValue[K, V]](c.dispatchArgs(t, NewKeyValueOutput(c.codec), args))
}

func (c *AsyncConnection[K, V]) nestedCmd(t CommandType, args *commandArgs[K, V]) Promise[[]any] {
	return promiseOf[[]any](c.dispatchArgs(t, NewNestedMultiOutput(c.codec), args))
}

// Strings

func (c *AsyncConnection[K, V]) Append(key K, value V) Promise[int64] {
	return c.intCmd(CmdAppend, c.args().Key(key).Value(value))
}

func (c *AsyncConnection[K, V]) Decr(key K) Promise[int64] {
	return c.intCmd(CmdDecr, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Decrby(key K, amount int64) Promise[int64] {
	return c.intCmd(CmdDecrby, c.args().Key(key).Int(amount))
}

func (c *AsyncConnection[K, V]) Get(key K) Promise[V] {
	return c.valueCmd(CmdGet, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Getrange(key K, start, end int64) Promise[V] {
	return c.valueCmd(CmdGetrange, c.args().Key(key).Int(start).Int(end))
}

func (c *AsyncConnection[K, V]) Getset(key K, value V) Promise[V] {
	return c.valueCmd(CmdGetset, c.args().Key(key).Value(value))
}

func (c *AsyncConnection[K, V]) Incr(key K) Promise[int64] {
	return c.intCmd(CmdIncr, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Incrby(key K, amount int64) Promise[int64] {
	return c.intCmd(CmdIncrby, c.args().Key(key).Int(amount))
}

func (c *AsyncConnection[K, V]) Incrbyfloat(key K, amount float64) Promise[float64] {
	return c.doubleCmd(CmdIncrbyfloat, c.args().Key(key).Double(amount))
}

func (c *AsyncConnection[K, V]) Mget(keys ...K) Promise[[]V] {
	return c.valueListCmd(CmdMget, c.args().Keys(keys...))
}

func (c *AsyncConnection[K, V]) Mset(m map[K]V) Promise[string] {
	return c.statusCmd(CmdMset, c.args().Map(m))
}

func (c *AsyncConnection[K, V]) Msetnx(m map[K]V) Promise[bool] {
	return c.boolCmd(CmdMsetnx, c.args().Map(m))
}

func (c *AsyncConnection[K, V]) Set(key K, value V) Promise[string] {
	return c.statusCmd(CmdSet, c.args().Key(key).Value(value))
}

func (c *AsyncConnection[K, V]) Setex(key K, seconds int64, value V) Promise[string] {
	return c.statusCmd(CmdSetex, c.args().Key(key).Int(seconds).Value(value))
}

func (c *AsyncConnection[K, V]) Setnx(key K, value V) Promise[bool] {
	return c.boolCmd(CmdSetnx, c.args().Key(key).Value(value))
}

func (c *AsyncConnection[K, V]) Setrange(key K, offset int64, value V) Promise[int64] {
	return c.intCmd(CmdSetrange, c.args().Key(key).Int(offset).Value(value))
}

func (c *AsyncConnection[K, V]) Strlen(key K) Promise[int64] {
	return c.intCmd(CmdStrlen, c.args().Key(key))
}

// Bits

func (c *AsyncConnection[K, V]) Bitcount(key K) Promise[int64] {
	return c.intCmd(CmdBitcount, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) BitcountRange(key K, start, end int64) Promise[int64] {
	return c.intCmd(CmdBitcount, c.args().Key(key).Int(start).Int(end))
}

func (c *AsyncConnection[K, V]) BitopAnd(destination K, keys ...K) Promise[int64] {
	return c.intCmd(CmdBitop, c.args().Keyword(KwAnd).Key(destination).Keys(keys...))
}

func (c *AsyncConnection[K, V]) BitopNot(destination, source K) Promise[int64] {
	return c.intCmd(CmdBitop, c.args().Keyword(KwNot).Key(destination).Key(source))
}

func (c *AsyncConnection[K, V]) BitopOr(destination K, keys ...K) Promise[int64] {
	return c.intCmd(CmdBitop, c.args().Keyword(KwOr).Key(destination).Keys(keys...))
}

func (c *AsyncConnection[K, V]) BitopXor(destination K, keys ...K) Promise[int64] {
	return c.intCmd(CmdBitop, c.args().Keyword(KwXor).Key(destination).Keys(keys...))
}

func (c *AsyncConnection[K, V]) Getbit(key K, offset int64) Promise[int64] {
	return c.intCmd(CmdGetbit, c.args().Key(key).Int(offset))
}

func (c *AsyncConnection[K, V]) Setbit(key K, offset int64, value int64) Promise[int64] {
	return c.intCmd(CmdSetbit, c.args().Key(key).Int(offset).Int(value))
}

// Keys and expiry

func (c *AsyncConnection[K, V]) Del(keys ...K) Promise[int64] {
	return c.intCmd(CmdDel, c.args().Keys(keys...))
}

func (c *AsyncConnection[K, V]) Dump(key K) Promise[[]byte] {
	return c.bytesCmd(CmdDump, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Exists(key K) Promise[bool] {
	return c.boolCmd(CmdExists, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Expire(key K, seconds int64) Promise[bool] {
	return c.boolCmd(CmdExpire, c.args().Key(key).Int(seconds))
}

func (c *AsyncConnection[K, V]) Expireat(key K, timestamp time.Time) Promise[bool] {
	return c.ExpireatUnix(key, timestamp.Unix())
}

func (c *AsyncConnection[K, V]) ExpireatUnix(key K, timestamp int64) Promise[bool] {
	return c.boolCmd(CmdExpireat, c.args().Key(key).Int(timestamp))
}

func (c *AsyncConnection[K, V]) Keys(pattern K) Promise[[]K] {
	return c.keyListCmd(CmdKeys, c.args().Key(pattern))
}

func (c *AsyncConnection[K, V]) Migrate(host string, port int, key K, db int, timeout int64) Promise[string] {
	return c.statusCmd(CmdMigrate,
		c.args().Str(host).Int(int64(port)).Key(key).Int(int64(db)).Int(timeout))
}

func (c *AsyncConnection[K, V]) Move(key K, db int) Promise[bool] {
	return c.boolCmd(CmdMove, c.args().Key(key).Int(int64(db)))
}

func (c *AsyncConnection[K, V]) ObjectEncoding(key K) Promise[string] {
	return c.statusCmd(CmdObject, c.args().Keyword(KwEncoding).Key(key))
}

func (c *AsyncConnection[K, V]) ObjectIdletime(key K) Promise[int64] {
	return c.intCmd(CmdObject, c.args().Keyword(KwIdletime).Key(key))
}

func (c *AsyncConnection[K, V]) ObjectRefcount(key K) Promise[int64] {
	return c.intCmd(CmdObject, c.args().Keyword(KwRefcount).Key(key))
}

func (c *AsyncConnection[K, V]) Persist(key K) Promise[bool] {
	return c.boolCmd(CmdPersist, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Pexpire(key K, milliseconds int64) Promise[bool] {
	return c.boolCmd(CmdPexpire, c.args().Key(key).Int(milliseconds))
}

func (c *AsyncConnection[K, V]) Pexpireat(key K, timestamp time.Time) Promise[bool] {
	return c.PexpireatUnix(key, timestamp.UnixMilli())
}

func (c *AsyncConnection[K, V]) PexpireatUnix(key K, timestamp int64) Promise[bool] {
	return c.boolCmd(CmdPexpireat, c.args().Key(key).Int(timestamp))
}

func (c *AsyncConnection[K, V]) Pttl(key K) Promise[int64] {
	return c.intCmd(CmdPttl, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Randomkey() Promise[V] {
	return c.valueCmd(CmdRandomkey, nil)
}

func (c *AsyncConnection[K, V]) Rename(key, newKey K) Promise[string] {
	return c.statusCmd(CmdRename, c.args().Key(key).Key(newKey))
}

func (c *AsyncConnection[K, V]) Renamenx(key, newKey K) Promise[bool] {
	return c.boolCmd(CmdRenamenx, c.args().Key(key).Key(newKey))
}

func (c *AsyncConnection[K, V]) Restore(key K, ttl int64, value []byte) Promise[string] {
	return c.statusCmd(CmdRestore, c.args().Key(key).Int(ttl).Bytes(value))
}

func (c *AsyncConnection[K, V]) Ttl(key K) Promise[int64] {
	return c.intCmd(CmdTtl, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Type(key K) Promise[string] {
	return c.statusCmd(CmdType, c.args().Key(key))
}

// Hashes

func (c *AsyncConnection[K, V]) Hdel(key K, fields ...K) Promise[int64] {
	return c.intCmd(CmdHdel, c.args().Key(key).Keys(fields...))
}

func (c *AsyncConnection[K, V]) Hexists(key, field K) Promise[bool] {
	return c.boolCmd(CmdHexists, c.args().Key(key).Key(field))
}

func (c *AsyncConnection[K, V]) Hget(key, field K) Promise[V] {
	return c.valueCmd(CmdHget, c.args().Key(key).Key(field))
}

func (c *AsyncConnection[K, V]) Hgetall(key K) Promise[map[K]V] {
	return c.mapCmd(CmdHgetall, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Hincrby(key, field K, amount int64) Promise[int64] {
	return c.intCmd(CmdHincrby, c.args().Key(key).Key(field).Int(amount))
}

func (c *AsyncConnection[K, V]) Hincrbyfloat(key, field K, amount float64) Promise[float64] {
	return c.doubleCmd(CmdHincrbyfloat, c.args().Key(key).Key(field).Double(amount))
}

func (c *AsyncConnection[K, V]) Hkeys(key K) Promise[[]K] {
	return c.keyListCmd(CmdHkeys, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Hlen(key K) Promise[int64] {
	return c.intCmd(CmdHlen, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Hmget(key K, fields ...K) Promise[[]V] {
	return c.valueListCmd(CmdHmget, c.args().Key(key).Keys(fields...))
}

func (c *AsyncConnection[K, V]) Hmset(key K, m map[K]V) Promise[string] {
	return c.statusCmd(CmdHmset, c.args().Key(key).Map(m))
}

func (c *AsyncConnection[K, V]) Hset(key, field K, value V) Promise[bool] {
	return c.boolCmd(CmdHset, c.args().Key(key).Key(field).Value(value))
}

func (c *AsyncConnection[K, V]) Hsetnx(key, field K, value V) Promise[bool] {
	return c.boolCmd(CmdHsetnx, c.args().Key(key).Key(field).Value(value))
}

func (c *AsyncConnection[K, V]) Hvals(key K) Promise[[]V] {
	return c.valueListCmd(CmdHvals, c.args().Key(key))
}

// Lists

func (c *AsyncConnection[K, V]) Blpop(timeout int64, keys ...K) Promise[KeyValue[K, V]] {
	return c.kvCmd(CmdBlpop, c.args().Keys(keys...).Int(timeout))
}

func (c *AsyncConnection[K, V]) Brpop(timeout int64, keys ...K) Promise[KeyValue[K, V]] {
	return c.kvCmd(CmdBrpop, c.args().Keys(keys...).Int(timeout))
}

func (c *AsyncConnection[K, V]) Brpoplpush(timeout int64, source, destination K) Promise[V] {
	return c.valueCmd(CmdBrpoplpush, c.args().Key(source).Key(destination).Int(timeout))
}

func (c *AsyncConnection[K, V]) Lindex(key K, index int64) Promise[V] {
	return c.valueCmd(CmdLindex, c.args().Key(key).Int(index))
}

func (c *AsyncConnection[K, V]) Linsert(key K, before bool, pivot, value V) Promise[int64] {
	where := KwAfter
	if before {
		where = KwBefore
	}
	return c.intCmd(CmdLinsert, c.args().Key(key).Keyword(where).Value(pivot).Value(value))
}

func (c *AsyncConnection[K, V]) Llen(key K) Promise[int64] {
	return c.intCmd(CmdLlen, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Lpop(key K) Promise[V] {
	return c.valueCmd(CmdLpop, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Lpush(key K, values ...V) Promise[int64] {
	return c.intCmd(CmdLpush, c.args().Key(key).Values(values...))
}

func (c *AsyncConnection[K, V]) Lpushx(key K, value V) Promise[int64] {
	return c.intCmd(CmdLpushx, c.args().Key(key).Value(value))
}

func (c *AsyncConnection[K, V]) Lrange(key K, start, stop int64) Promise[[]V] {
	return c.valueListCmd(CmdLrange, c.args().Key(key).Int(start).Int(stop))
}

func (c *AsyncConnection[K, V]) Lrem(key K, count int64, value V) Promise[int64] {
	return c.intCmd(CmdLrem, c.args().Key(key).Int(count).Value(value))
}

func (c *AsyncConnection[K, V]) Lset(key K, index int64, value V) Promise[string] {
	return c.statusCmd(CmdLset, c.args().Key(key).Int(index).Value(value))
}

func (c *AsyncConnection[K, V]) Ltrim(key K, start, stop int64) Promise[string] {
	return c.statusCmd(CmdLtrim, c.args().Key(key).Int(start).Int(stop))
}

func (c *AsyncConnection[K, V]) Rpop(key K) Promise[V] {
	return c.valueCmd(CmdRpop, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Rpoplpush(source, destination K) Promise[V] {
	return c.valueCmd(CmdRpoplpush, c.args().Key(source).Key(destination))
}

func (c *AsyncConnection[K, V]) Rpush(key K, values ...V) Promise[int64] {
	return c.intCmd(CmdRpush, c.args().Key(key).Values(values...))
}

func (c *AsyncConnection[K, V]) Rpushx(key K, value V) Promise[int64] {
	return c.intCmd(CmdRpushx, c.args().Key(key).Value(value))
}

// Sets

func (c *AsyncConnection[K, V]) Sadd(key K, members ...V) Promise[int64] {
	return c.intCmd(CmdSadd, c.args().Key(key).Values(members...))
}

func (c *AsyncConnection[K, V]) Scard(key K) Promise[int64] {
	return c.intCmd(CmdScard, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Sdiff(keys ...K) Promise[[]V] {
	return c.valueSetCmd(CmdSdiff, c.args().Keys(keys...))
}

func (c *AsyncConnection[K, V]) Sdiffstore(destination K, keys ...K) Promise[int64] {
	return c.intCmd(CmdSdiffstore, c.args().Key(destination).Keys(keys...))
}

func (c *AsyncConnection[K, V]) Sinter(keys ...K) Promise[[]V] {
	return c.valueSetCmd(CmdSinter, c.args().Keys(keys...))
}

func (c *AsyncConnection[K, V]) Sinterstore(destination K, keys ...K) Promise[int64] {
	return c.intCmd(CmdSinterstore, c.args().Key(destination).Keys(keys...))
}

func (c *AsyncConnection[K, V]) Sismember(key K, member V) Promise[bool] {
	return c.boolCmd(CmdSismember, c.args().Key(key).Value(member))
}

func (c *AsyncConnection[K, V]) Smembers(key K) Promise[[]V] {
	return c.valueSetCmd(CmdSmembers, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Smove(source, destination K, member V) Promise[bool] {
	return c.boolCmd(CmdSmove, c.args().Key(source).Key(destination).Value(member))
}

func (c *AsyncConnection[K, V]) Spop(key K) Promise[V] {
	return c.valueCmd(CmdSpop, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Srandmember(key K) Promise[V] {
	return c.valueCmd(CmdSrandmember, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) SrandmemberCount(key K, count int64) Promise[[]V] {
	return c.valueSetCmd(CmdSrandmember, c.args().Key(key).Int(count))
}

func (c *AsyncConnection[K, V]) Srem(key K, members ...V) Promise[int64] {
	return c.intCmd(CmdSrem, c.args().Key(key).Values(members...))
}

func (c *AsyncConnection[K, V]) Sunion(keys ...K) Promise[[]V] {
	return c.valueSetCmd(CmdSunion, c.args().Keys(keys...))
}

func (c *AsyncConnection[K, V]) Sunionstore(destination K, keys ...K) Promise[int64] {
	return c.intCmd(CmdSunionstore, c.args().Key(destination).Keys(keys...))
}

// Sorted sets

func (c *AsyncConnection[K, V]) Zadd(key K, score float64, member V) Promise[int64] {
	return c.intCmd(CmdZadd, c.args().Key(key).Double(score).Value(member))
}

func (c *AsyncConnection[K, V]) ZaddAll(key K, members ...ScoredValue[V]) Promise[int64] {
	args := c.args().Key(key)
	for _, m := range members {
		args.Double(m.Score).Value(m.Value)
	}
	return c.intCmd(CmdZadd, args)
}

func (c *AsyncConnection[K, V]) Zcard(key K) Promise[int64] {
	return c.intCmd(CmdZcard, c.args().Key(key))
}

func (c *AsyncConnection[K, V]) Zcount(key K, min, max float64) Promise[int64] {
	return c.ZcountRange(key, respio.FormatDouble(min), respio.FormatDouble(max))
}

func (c *AsyncConnection[K, V]) ZcountRange(key K, min, max string) Promise[int64] {
	return c.intCmd(CmdZcount, c.args().Key(key).Str(min).Str(max))
}

func (c *AsyncConnection[K, V]) Zincrby(key K, amount float64, member K) Promise[float64] {
	return c.doubleCmd(CmdZincrby, c.args().Key(key).Double(amount).Key(member))
}

func (c *AsyncConnection[K, V]) Zinterstore(destination K, storeArgs *ZStoreArgs, keys ...K) Promise[int64] {
	args := c.args().Key(destination).Int(int64(len(keys))).Keys(keys...)
	if storeArgs != nil {
		storeArgs.Build(args.inner)
	}
	return c.intCmd(CmdZinterstore, args)
}

func (c *AsyncConnection[K, V]) Zrange(key K, start, stop int64) Promise[[]V] {
	return c.valueListCmd(CmdZrange, c.args().Key(key).Int(start).Int(stop))
}

func (c *AsyncConnection[K, V]) ZrangeWithScores(key K, start, stop int64) Promise[[]ScoredValue[V]] {
	return c.scoredListCmd(CmdZrange,
		c.args().Key(key).Int(start).Int(stop).Keyword(KwWithscores))
}

func (c *AsyncConnection[K, V]) Zrangebyscore(key K, min, max string) Promise[[]V] {
	return c.valueListCmd(CmdZrangebyscore, c.args().Key(key).Str(min).Str(max))
}

func (c *AsyncConnection[K, V]) ZrangebyscoreWithScores(key K, min, max string) Promise[[]ScoredValue[V]] {
	return c.scoredListCmd(CmdZrangebyscore,
		c.args().Key(key).Str(min).Str(max).Keyword(KwWithscores))
}

func (c *AsyncConnection[K, V]) ZrangebyscoreLimit(key K, min, max string, offset, count int64) Promise[[]V] {
	return c.valueListCmd(CmdZrangebyscore,
		c.args().Key(key).Str(min).Str(max).Keyword(KwLimit).Int(offset).Int(count))
}

func (c *AsyncConnection[K, V]) Zrank(key K, member V) Promise[int64] {
	return c.intCmd(CmdZrank, c.args().Key(key).Value(member))
}

func (c *AsyncConnection[K, V]) Zrem(key K, members ...V) Promise[int64] {
	return c.intCmd(CmdZrem, c.args().Key(key).Values(members...))
}

func (c *AsyncConnection[K, V]) Zremrangebyrank(key K, start, stop int64) Promise[int64] {
	return c.intCmd(CmdZremrangebyrank, c.args().Key(key).Int(start).Int(stop))
}

func (c *AsyncConnection[K, V]) Zremrangebyscore(key K, min, max string) Promise[int64] {
	return c.intCmd(CmdZremrangebyscore, c.args().Key(key).Str(min).Str(max))
}

func (c *AsyncConnection[K, V]) Zrevrange(key K, start, stop int64) Promise[[]V] {
	return c.valueListCmd(CmdZrevrange, c.args().Key(key).Int(start).Int(stop))
}

func (c *AsyncConnection[K, V]) ZrevrangeWithScores(key K, start, stop int64) Promise[[]ScoredValue[V]] {
	return c.scoredListCmd(CmdZrevrange,
		c.args().Key(key).Int(start).Int(stop).Keyword(KwWithscores))
}

func (c *AsyncConnection[K, V]) Zrevrangebyscore(key K, max, min string) Promise[[]V] {
	return c.valueListCmd(CmdZrevrangebyscore, c.args().Key(key).Str(max).Str(min))
}

func (c *AsyncConnection[K, V]) ZrevrangebyscoreWithScores(key K, max, min string) Promise[[]ScoredValue[V]] {
	return c.scoredListCmd(CmdZrevrangebyscore,
		c.args().Key(key).Str(max).Str(min).Keyword(KwWithscores))
}

func (c *AsyncConnection[K, V]) Zrevrank(key K, member V) Promise[int64] {
	return c.intCmd(CmdZrevrank, c.args().Key(key).Value(member))
}

func (c *AsyncConnection[K, V]) Zscore(key K, member V) Promise[float64] {
	return c.doubleCmd(CmdZscore, c.args().Key(key).Value(member))
}

func (c *AsyncConnection[K, V]) Zunionstore(destination K, storeArgs *ZStoreArgs, keys ...K) Promise[int64] {
	args := c.args().Key(destination).Int(int64(len(keys))).Keys(keys...)
	if storeArgs != nil {
		storeArgs.Build(args.inner)
	}
	return c.intCmd(CmdZunionstore, args)
}

// Sorting

func (c *AsyncConnection[K, V]) Sort(key K, sortArgs *SortArgs) Promise[[]V] {
	args := c.args().Key(key)
	if sortArgs != nil {
		sortArgs.Build(args.inner)
	}
	return c.valueListCmd(CmdSort, args)
}

func (c *AsyncConnection[K, V]) SortStore(key K, sortArgs *SortArgs, destination K) Promise[int64] {
	args := c.args().Key(key)
	if sortArgs != nil {
		sortArgs.Build(args.inner)
	}
	args.Keyword(KwStore).Key(destination)
	return c.intCmd(CmdSort, args)
}

// Scripting

func (c *AsyncConnection[K, V]) Eval(script V, outputType ScriptOutputType, keys []K, values ...V) (Promise[any], error) {
	output, err := newScriptOutput(c.codec, outputType)
	if err != nil {
		return nil, err
	}
	args := c.args().Value(script).Int(int64(len(keys))).Keys(keys...).Values(values...)
	return promiseOf[any](c.dispatchArgs(CmdEval, output, args)), nil
}

func (c *AsyncConnection[K, V]) Evalsha(digest string, outputType ScriptOutputType, keys []K, values ...V) (Promise[any], error) {
	output, err := newScriptOutput(c.codec, outputType)
	if err != nil {
		return nil, err
	}
	args := c.args().Str(digest).Int(int64(len(keys))).Keys(keys...).Values(values...)
	return promiseOf[any](c.dispatchArgs(CmdEvalsha, output, args)), nil
}

func (c *AsyncConnection[K, V]) ScriptExists(digests ...string) Promise[[]bool] {
	args := c.args().Keyword(KwExists)
	for _, sha := range digests {
		args.Str(sha)
	}
	return c.boolListCmd(CmdScript, args)
}

func (c *AsyncConnection[K, V]) ScriptFlush() Promise[string] {
	return c.statusCmd(CmdScript, c.args().Keyword(KwFlush))
}

func (c *AsyncConnection[K, V]) ScriptKill() Promise[string] {
	return c.statusCmd(CmdScript, c.args().Keyword(KwKill))
}

func (c *AsyncConnection[K, V]) ScriptLoad(script V) Promise[string] {
	return c.statusCmd(CmdScript, c.args().Keyword(KwLoad).Value(script))
}

// Transactions

func (c *AsyncConnection[K, V]) Watch(keys ...K) Promise[string] {
	return c.statusCmd(CmdWatch, c.args().Keys(keys...))
}

func (c *AsyncConnection[K, V]) Unwatch() Promise[string] {
	return c.statusCmd(CmdUnwatch, nil)
}

// Server

func (c *AsyncConnection[K, V]) Bgrewriteaof() Promise[string] {
	return c.statusCmd(CmdBgrewriteaof, nil)
}

func (c *AsyncConnection[K, V]) Bgsave() Promise[string] {
	return c.statusCmd(CmdBgsave, nil)
}

func (c *AsyncConnection[K, V]) ClientGetname() Promise[K] {
	return c.keyCmd(CmdClient, c.args().Keyword(KwGetname))
}

func (c *AsyncConnection[K, V]) ClientSetname(name K) Promise[string] {
	return c.statusCmd(CmdClient, c.args().Keyword(KwSetname).Key(name))
}

func (c *AsyncConnection[K, V]) ClientKill(addr string) Promise[string] {
	return c.statusCmd(CmdClient, c.args().Keyword(KwKill).Str(addr))
}

func (c *AsyncConnection[K, V]) ClientList() Promise[string] {
	return c.statusCmd(CmdClient, c.args().Keyword(KwList))
}

func (c *AsyncConnection[K, V]) ConfigGet(parameter string) Promise[[]string] {
	return c.stringListCmd(CmdConfig, c.args().Keyword(KwGet).Str(parameter))
}

func (c *AsyncConnection[K, V]) ConfigResetstat() Promise[string] {
	return c.statusCmd(CmdConfig, c.args().Keyword(KwResetstat))
}

func (c *AsyncConnection[K, V]) ConfigSet(parameter, value string) Promise[string] {
	return c.statusCmd(CmdConfig, c.args().Keyword(KwSet).Str(parameter).Str(value))
}

func (c *AsyncConnection[K, V]) Dbsize() Promise[int64] {
	return c.intCmd(CmdDbsize, nil)
}

func (c *AsyncConnection[K, V]) DebugObject(key K) Promise[string] {
	return c.statusCmd(CmdDebug, c.args().Str("OBJECT").Key(key))
}

func (c *AsyncConnection[K, V]) Echo(msg V) Promise[V] {
	return c.valueCmd(CmdEcho, c.args().Value(msg))
}

func (c *AsyncConnection[K, V]) Flushall() Promise[string] {
	return c.statusCmd(CmdFlushall, nil)
}

func (c *AsyncConnection[K, V]) Flushdb() Promise[string] {
	return c.statusCmd(CmdFlushdb, nil)
}

func (c *AsyncConnection[K, V]) Info() Promise[string] {
	return c.statusCmd(CmdInfo, nil)
}

func (c *AsyncConnection[K, V]) InfoSection(section string) Promise[string] {
	return c.statusCmd(CmdInfo, c.args().Str(section))
}

func (c *AsyncConnection[K, V]) Lastsave() Promise[time.Time] {
	return c.dateCmd(CmdLastsave, nil)
}

func (c *AsyncConnection[K, V]) Ping() Promise[string] {
	return c.statusCmd(CmdPing, nil)
}

func (c *AsyncConnection[K, V]) Publish(channel K, message V) Promise[int64] {
	return c.intCmd(CmdPublish, c.args().Key(channel).Value(message))
}

func (c *AsyncConnection[K, V]) Quit() Promise[string] {
	return c.statusCmd(CmdQuit, nil)
}

func (c *AsyncConnection[K, V]) Save() Promise[string] {
	return c.statusCmd(CmdSave, nil)
}

func (c *AsyncConnection[K, V]) Shutdown(save bool) {
	kw := KwNosave
	if save {
		kw = KwSave
	}
	c.dispatchArgs(CmdShutdown, NewStatusOutput(), c.args().Keyword(kw))
}

func (c *AsyncConnection[K, V]) Slaveof(host string, port int) Promise[string] {
	return c.statusCmd(CmdSlaveof, c.args().Str(host).Int(int64(port)))
}

func (c *AsyncConnection[K, V]) SlaveofNoOne() Promise[string] {
	return c.statusCmd(CmdSlaveof, c.args().Keyword(KwNo).Keyword(KwOne))
}

func (c *AsyncConnection[K, V]) SlowlogGet() Promise[[]any] {
	return c.nestedCmd(CmdSlowlog, c.args().Keyword(KwGet))
}

func (c *AsyncConnection[K, V]) SlowlogGetCount(count int) Promise[[]any] {
	return c.nestedCmd(CmdSlowlog, c.args().Keyword(KwGet).Int(int64(count)))
}

func (c *AsyncConnection[K, V]) SlowlogLen() Promise[int64] {
	return c.intCmd(CmdSlowlog, c.args().Keyword(KwLen))
}

func (c *AsyncConnection[K, V]) SlowlogReset() Promise[string] {
	return c.statusCmd(CmdSlowlog, c.args().Keyword(KwReset))
}

func (c *AsyncConnection[K, V]) Sync() Promise[string] {
	return c.statusCmd(CmdSync, nil)
}
