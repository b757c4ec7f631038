package metrics

import (
	"sync"
	"time"

	gometrics "github.com/hashicorp/go-metrics"
	"github.com/pzhenzhou/elika-client/pkg/common"
)

var (
	logger = common.InitLogger().WithName("client-metrics")

	instance      Collector
	collectorOnce sync.Once
)

// labelPool is a simple object pool for label slices to reduce allocations
type labelPool struct {
	pool sync.Pool
}

func newLabelPool() *labelPool {
	return &labelPool{
		pool: sync.Pool{
			New: func() interface{} {
				slice := make([]gometrics.Label, 0, 3)
				return &slice
			},
		},
	}
}

func (p *labelPool) get() []gometrics.Label {
	slicePtr := p.pool.Get().(*[]gometrics.Label)
	*slicePtr = (*slicePtr)[:0]
	return *slicePtr
}

func (p *labelPool) put(labels []gometrics.Label) {
	p.pool.Put(&labels)
}

// Collector records what the connection core is doing. All methods must be
// cheap enough to call on the dispatch and decode paths.
type Collector interface {
	// RecordCommandLatency dispatch-to-completion latency of one request
	RecordCommandLatency(command string, duration time.Duration)

	// IncrCommandCounter counts a dispatched request
	IncrCommandCounter(command string)

	// IncrErrorCounter counts an error by kind (server, timeout, closed, ...)
	IncrErrorCounter(errorType string)

	// IncrReconnectCounter counts a channel (re)activation
	IncrReconnectCounter()

	IncrementActiveConnections()
	DecrementActiveConnections()

	// Shutdown the metrics collector
	Shutdown()
}

// Config holds configuration for metrics
type Config struct {
	// Metrics prefix for namespacing
	ServiceName string

	// Time interval for in-memory metrics aggregation
	AggregationInterval time.Duration

	// Retention period for metrics
	RetentionPeriod time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName:         serviceName,
		AggregationInterval: 5 * time.Second,
		RetentionPeriod:     10 * time.Minute,
	}
}

// NewCollector creates the process-wide collector backed by the in-memory
// aggregating sink.
func NewCollector(config *Config) (Collector, error) {
	var initErr error
	collectorOnce.Do(func() {
		if config == nil {
			config = DefaultConfig("elika_client")
		}
		metricsConf := gometrics.DefaultConfig(config.ServiceName)
		inm := gometrics.NewInmemSink(config.AggregationInterval, config.RetentionPeriod)
		metricsImpl, err := gometrics.New(metricsConf, inm)
		if err != nil {
			initErr = err
			return
		}
		instance = &hashicorpCollector{
			metrics:            metricsImpl,
			inm:                inm,
			serviceName:        config.ServiceName,
			serviceLabel:       gometrics.Label{Name: "service", Value: config.ServiceName},
			commandLabelPrefix: "command",
			errorLabelPrefix:   "type",
			labelPool:          newLabelPool(),
		}
		logger.Info("Metrics collector initialized", "serviceName", config.ServiceName)
	})
	return instance, initErr
}

// Noop returns a collector that drops everything; used when metrics are
// disabled.
func Noop() Collector {
	return noopCollector{}
}

type noopCollector struct{}

func (noopCollector) RecordCommandLatency(string, time.Duration) {}
func (noopCollector) IncrCommandCounter(string)                  {}
func (noopCollector) IncrErrorCounter(string)                    {}
func (noopCollector) IncrReconnectCounter()                      {}
func (noopCollector) IncrementActiveConnections()                {}
func (noopCollector) DecrementActiveConnections()                {}
func (noopCollector) Shutdown()                                  {}

// hashicorpCollector implements Collector using hashicorp/go-metrics
type hashicorpCollector struct {
	metrics     *gometrics.Metrics
	inm         *gometrics.InmemSink
	serviceName string

	// Pre-created labels for better performance
	serviceLabel       gometrics.Label
	commandLabelPrefix string
	errorLabelPrefix   string

	labelPool *labelPool
}

func (h *hashicorpCollector) RecordCommandLatency(command string, duration time.Duration) {
	labels := h.labelPool.get()
	labels = append(labels, h.serviceLabel, gometrics.Label{Name: h.commandLabelPrefix, Value: command})

	h.metrics.AddSampleWithLabels([]string{"command", "latency"}, float32(duration.Microseconds()), labels)

	h.labelPool.put(labels)
}

func (h *hashicorpCollector) IncrCommandCounter(command string) {
	labels := h.labelPool.get()
	labels = append(labels, h.serviceLabel, gometrics.Label{Name: h.commandLabelPrefix, Value: command})

	h.metrics.IncrCounterWithLabels([]string{"command", "dispatched"}, 1, labels)

	h.labelPool.put(labels)
}

func (h *hashicorpCollector) IncrErrorCounter(errorType string) {
	labels := h.labelPool.get()
	labels = append(labels, h.serviceLabel, gometrics.Label{Name: h.errorLabelPrefix, Value: errorType})

	h.metrics.IncrCounterWithLabels([]string{"errors"}, 1, labels)

	h.labelPool.put(labels)
}

func (h *hashicorpCollector) IncrReconnectCounter() {
	labels := h.labelPool.get()
	labels = append(labels, h.serviceLabel)

	h.metrics.IncrCounterWithLabels([]string{"reconnects"}, 1, labels)

	h.labelPool.put(labels)
}

func (h *hashicorpCollector) IncrementActiveConnections() {
	h.metrics.IncrCounterWithLabels([]string{"connections", "active"}, 1,
		[]gometrics.Label{h.serviceLabel})
}

func (h *hashicorpCollector) DecrementActiveConnections() {
	h.metrics.IncrCounterWithLabels([]string{"connections", "active"}, -1,
		[]gometrics.Label{h.serviceLabel})
}

func (h *hashicorpCollector) Shutdown() {
	h.metrics.Shutdown()
}
