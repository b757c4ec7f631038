package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type ReconnectConfig struct {
	InitialInterval time.Duration `help:"Initial reconnect backoff interval" name:"initial" default:"100ms"`
	MaxInterval     time.Duration `help:"Maximum reconnect backoff interval" name:"max-interval" default:"5s"`
	MaxElapsedTime  time.Duration `help:"Give up reconnecting after this much time. Zero means retry forever." name:"max-elapsed" default:"0"`
}

type MetricsConfig struct {
	EnableMetrics bool   `help:"Enable client metrics collection" name:"enable" default:"false"`
	ServiceName   string `help:"Service name used to namespace metrics" name:"service" default:"elika_client"`
}

type ClientConfig struct {
	Addr        string          `help:"Address of the server (e.g., 127.0.0.1:6379)" name:"addr" default:"127.0.0.1:6379"`
	Password    string          `help:"Password sent with AUTH before the first command" name:"password"`
	DB          int             `help:"Logical database selected after connecting" name:"db" default:"0"`
	CmdTimeout  time.Duration   `help:"Default timeout for synchronous command waits" name:"timeout" default:"5s"`
	DialTimeout time.Duration   `help:"Timeout for establishing the TCP connection" name:"dial-timeout" default:"3s"`
	QueueSize   int             `help:"Capacity of the pending request queue" name:"queue-size" default:"10240"`
	Reconnect   ReconnectConfig `embed:"" prefix:"reconnect."`
	Metrics     MetricsConfig   `embed:"" prefix:"metrics."`
}

func (c *ClientConfig) Endpoint() (string, int, error) {
	parts := strings.Split(c.Addr, ":")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("invalid server address: %s", c.Addr)
	}
	host := parts[0]
	port, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, fmt.Errorf("invalid server port: %s", parts[1])
	}
	return host, port, nil
}

func (c *ClientConfig) Validate() error {
	if _, _, err := c.Endpoint(); err != nil {
		return err
	}
	if c.DB < 0 {
		return fmt.Errorf("invalid database number: %d", c.DB)
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("invalid queue size: %d", c.QueueSize)
	}
	return nil
}

func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Addr:        "127.0.0.1:6379",
		DB:          0,
		CmdTimeout:  5 * time.Second,
		DialTimeout: 3 * time.Second,
		QueueSize:   10240,
		Reconnect: ReconnectConfig{
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
	}
}
