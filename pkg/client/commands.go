package client

// CommandType identifies one request kind; its value is the canonical byte
// name sent on the wire.
type CommandType string

func (t CommandType) Bytes() []byte {
	return []byte(t)
}

func (t CommandType) String() string {
	return string(t)
}

const (
	CmdAppend           CommandType = "APPEND"
	CmdAuth             CommandType = "AUTH"
	CmdBgrewriteaof     CommandType = "BGREWRITEAOF"
	CmdBgsave           CommandType = "BGSAVE"
	CmdBitcount         CommandType = "BITCOUNT"
	CmdBitop            CommandType = "BITOP"
	CmdBlpop            CommandType = "BLPOP"
	CmdBrpop            CommandType = "BRPOP"
	CmdBrpoplpush       CommandType = "BRPOPLPUSH"
	CmdClient           CommandType = "CLIENT"
	CmdConfig           CommandType = "CONFIG"
	CmdDbsize           CommandType = "DBSIZE"
	CmdDebug            CommandType = "DEBUG"
	CmdDecr             CommandType = "DECR"
	CmdDecrby           CommandType = "DECRBY"
	CmdDel              CommandType = "DEL"
	CmdDiscard          CommandType = "DISCARD"
	CmdDump             CommandType = "DUMP"
	CmdEcho             CommandType = "ECHO"
	CmdEval             CommandType = "EVAL"
	CmdEvalsha          CommandType = "EVALSHA"
	CmdExec             CommandType = "EXEC"
	CmdExists           CommandType = "EXISTS"
	CmdExpire           CommandType = "EXPIRE"
	CmdExpireat         CommandType = "EXPIREAT"
	CmdFlushall         CommandType = "FLUSHALL"
	CmdFlushdb          CommandType = "FLUSHDB"
	CmdGet              CommandType = "GET"
	CmdGetbit           CommandType = "GETBIT"
	CmdGetrange         CommandType = "GETRANGE"
	CmdGetset           CommandType = "GETSET"
	CmdHdel             CommandType = "HDEL"
	CmdHexists          CommandType = "HEXISTS"
	CmdHget             CommandType = "HGET"
	CmdHgetall          CommandType = "HGETALL"
	CmdHincrby          CommandType = "HINCRBY"
	CmdHincrbyfloat     CommandType = "HINCRBYFLOAT"
	CmdHkeys            CommandType = "HKEYS"
	CmdHlen             CommandType = "HLEN"
	CmdHmget            CommandType = "HMGET"
	CmdHmset            CommandType = "HMSET"
	CmdHset             CommandType = "HSET"
	CmdHsetnx           CommandType = "HSETNX"
	CmdHvals            CommandType = "HVALS"
	CmdIncr             CommandType = "INCR"
	CmdIncrby           CommandType = "INCRBY"
	CmdIncrbyfloat      CommandType = "INCRBYFLOAT"
	CmdInfo             CommandType = "INFO"
	CmdKeys             CommandType = "KEYS"
	CmdLastsave         CommandType = "LASTSAVE"
	CmdLindex           CommandType = "LINDEX"
	CmdLinsert          CommandType = "LINSERT"
	CmdLlen             CommandType = "LLEN"
	CmdLpop             CommandType = "LPOP"
	CmdLpush            CommandType = "LPUSH"
	CmdLpushx           CommandType = "LPUSHX"
	CmdLrange           CommandType = "LRANGE"
	CmdLrem             CommandType = "LREM"
	CmdLset             CommandType = "LSET"
	CmdLtrim            CommandType = "LTRIM"
	CmdMget             CommandType = "MGET"
	CmdMigrate          CommandType = "MIGRATE"
	CmdMove             CommandType = "MOVE"
	CmdMset             CommandType = "MSET"
	CmdMsetnx           CommandType = "MSETNX"
	CmdMulti            CommandType = "MULTI"
	CmdObject           CommandType = "OBJECT"
	CmdPersist          CommandType = "PERSIST"
	CmdPexpire          CommandType = "PEXPIRE"
	CmdPexpireat        CommandType = "PEXPIREAT"
	CmdPing             CommandType = "PING"
	CmdPttl             CommandType = "PTTL"
	CmdPublish          CommandType = "PUBLISH"
	CmdQuit             CommandType = "QUIT"
	CmdRandomkey        CommandType = "RANDOMKEY"
	CmdRename           CommandType = "RENAME"
	CmdRenamenx         CommandType = "RENAMENX"
	CmdRestore          CommandType = "RESTORE"
	CmdRpop             CommandType = "RPOP"
	CmdRpoplpush        CommandType = "RPOPLPUSH"
	CmdRpush            CommandType = "RPUSH"
	CmdRpushx           CommandType = "RPUSHX"
	CmdSadd             CommandType = "SADD"
	CmdSave             CommandType = "SAVE"
	CmdScard            CommandType = "SCARD"
	CmdScript           CommandType = "SCRIPT"
	CmdSdiff            CommandType = "SDIFF"
	CmdSdiffstore       CommandType = "SDIFFSTORE"
	CmdSelect           CommandType = "SELECT"
	CmdSet              CommandType = "SET"
	CmdSetbit           CommandType = "SETBIT"
	CmdSetex            CommandType = "SETEX"
	CmdSetnx            CommandType = "SETNX"
	CmdSetrange         CommandType = "SETRANGE"
	CmdShutdown         CommandType = "SHUTDOWN"
	CmdSinter           CommandType = "SINTER"
	CmdSinterstore      CommandType = "SINTERSTORE"
	CmdSismember        CommandType = "SISMEMBER"
	CmdSlaveof          CommandType = "SLAVEOF"
	CmdSlowlog          CommandType = "SLOWLOG"
	CmdSmembers         CommandType = "SMEMBERS"
	CmdSmove            CommandType = "SMOVE"
	CmdSort             CommandType = "SORT"
	CmdSpop             CommandType = "SPOP"
	CmdSrandmember      CommandType = "SRANDMEMBER"
	CmdSrem             CommandType = "SREM"
	CmdStrlen           CommandType = "STRLEN"
	CmdSunion           CommandType = "SUNION"
	CmdSunionstore      CommandType = "SUNIONSTORE"
	CmdSync             CommandType = "SYNC"
	CmdTtl              CommandType = "TTL"
	CmdType             CommandType = "TYPE"
	CmdUnwatch          CommandType = "UNWATCH"
	CmdWatch            CommandType = "WATCH"
	CmdZadd             CommandType = "ZADD"
	CmdZcard            CommandType = "ZCARD"
	CmdZcount           CommandType = "ZCOUNT"
	CmdZincrby          CommandType = "ZINCRBY"
	CmdZinterstore      CommandType = "ZINTERSTORE"
	CmdZrange           CommandType = "ZRANGE"
	CmdZrangebyscore    CommandType = "ZRANGEBYSCORE"
	CmdZrank            CommandType = "ZRANK"
	CmdZrem             CommandType = "ZREM"
	CmdZremrangebyrank  CommandType = "ZREMRANGEBYRANK"
	CmdZremrangebyscore CommandType = "ZREMRANGEBYSCORE"
	CmdZrevrange        CommandType = "ZREVRANGE"
	CmdZrevrangebyscore CommandType = "ZREVRANGEBYSCORE"
	CmdZrevrank         CommandType = "ZREVRANK"
	CmdZscore           CommandType = "ZSCORE"
	CmdZunionstore      CommandType = "ZUNIONSTORE"
)

// Keyword is a protocol sub-command or modifier token.
type Keyword string

func (k Keyword) Bytes() []byte {
	return []byte(k)
}

const (
	KwAfter      Keyword = "AFTER"
	KwAggregate  Keyword = "AGGREGATE"
	KwAlpha      Keyword = "ALPHA"
	KwAnd        Keyword = "AND"
	KwAsc        Keyword = "ASC"
	KwBefore     Keyword = "BEFORE"
	KwBy         Keyword = "BY"
	KwDesc       Keyword = "DESC"
	KwEncoding   Keyword = "ENCODING"
	KwExists     Keyword = "EXISTS"
	KwFlush      Keyword = "FLUSH"
	KwGet        Keyword = "GET"
	KwGetname    Keyword = "GETNAME"
	KwIdletime   Keyword = "IDLETIME"
	KwKill       Keyword = "KILL"
	KwLen        Keyword = "LEN"
	KwLimit      Keyword = "LIMIT"
	KwList       Keyword = "LIST"
	KwLoad       Keyword = "LOAD"
	KwNo         Keyword = "NO"
	KwNosave     Keyword = "NOSAVE"
	KwNot        Keyword = "NOT"
	KwOne        Keyword = "ONE"
	KwOr         Keyword = "OR"
	KwRefcount   Keyword = "REFCOUNT"
	KwReset      Keyword = "RESET"
	KwResetstat  Keyword = "RESETSTAT"
	KwSave       Keyword = "SAVE"
	KwSet        Keyword = "SET"
	KwSetname    Keyword = "SETNAME"
	KwStore      Keyword = "STORE"
	KwWeights    Keyword = "WEIGHTS"
	KwWithscores Keyword = "WITHSCORES"
	KwXor        Keyword = "XOR"
)
