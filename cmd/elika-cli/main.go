package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pzhenzhou/elika-client/pkg/client"
	"github.com/pzhenzhou/elika-client/pkg/common"
)

var (
	logger    = common.InitLogger().WithName("main")
	clientCfg common.ClientConfig
)

func main() {
	ctx := kong.Parse(&clientCfg)
	if err := clientCfg.Validate(); err != nil {
		ctx.FatalIfErrorf(err)
	}
	logger.Info("ElikaClient", "Config", clientCfg)

	conn, err := client.Connect[string, string](&clientCfg, client.StringCodec{})
	if err != nil {
		logger.Error(err, "Failed to connect", "Addr", clientCfg.Addr)
		os.Exit(-1)
	}
	defer func() {
		_ = conn.Close()
	}()
	Smoke(conn)
}

// Smoke runs a short end-to-end sequence against the configured server and
// prints each result.
func Smoke(conn *client.AsyncConnection[string, string]) {
	timeout := clientCfg.CmdTimeout
	key := fmt.Sprintf("elika-cli:%d", time.Now().UnixNano())

	pong, err := conn.Ping().Get(timeout)
	report("PING", pong, err)

	status, err := conn.Set(key, "hello").Get(timeout)
	report("SET", status, err)

	value, err := conn.Get(key).Get(timeout)
	report("GET", value, err)

	counter, err := conn.Incr(key + ":counter").Get(timeout)
	report("INCR", counter, err)

	multi := conn.Multi()
	setP := conn.Set(key+":tx", "1")
	incrP := conn.Incr(key + ":tx:counter")
	execP := conn.Exec()
	if !conn.AwaitAll(multi, setP, incrP, execP) {
		logger.Info("Transaction timed out")
	} else {
		results, execErr := execP.Get(timeout)
		report("EXEC", results, execErr)
	}

	deleted, err := conn.Del(key, key+":counter", key+":tx", key+":tx:counter").Get(timeout)
	report("DEL", deleted, err)
}

func report(op string, result any, err error) {
	if err != nil {
		logger.Error(err, "Command failed", "Op", op)
		return
	}
	logger.Info("Command ok", "Op", op, "Result", result)
}
