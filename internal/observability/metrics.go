package observability

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danmuck/ragwire/internal/protocol/wire"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ragwire",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ragwire",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	codecMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ragwire",
			Subsystem: "codec",
			Name:      "messages_total",
			Help:      "Messages encoded or decoded.",
		},
		[]string{"direction", "message", "result"},
	)
	codecBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ragwire",
			Subsystem: "codec",
			Name:      "message_bytes",
			Help:      "Encoded message size in bytes.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		},
		[]string{"direction", "message"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, codecMessages, codecBytes)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// CodecMetrics feeds codec activity into the process-wide collectors. It
// satisfies graphrag.Observer.
type CodecMetrics struct{}

func NewCodecMetrics() CodecMetrics {
	RegisterMetrics()
	return CodecMetrics{}
}

func (CodecMetrics) ObserveEncode(message string, size int) {
	codecMessages.WithLabelValues("encode", message, "ok").Inc()
	codecBytes.WithLabelValues("encode", message).Observe(float64(size))
}

func (CodecMetrics) ObserveDecode(message string, size int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	codecMessages.WithLabelValues("decode", message, result).Inc()
	codecBytes.WithLabelValues("decode", message).Observe(float64(size))
}

// ErrPoolNameTaken means another pool already reports under the label.
var ErrPoolNameTaken = errors.New("pool metrics name already bound to another pool")

type poolOwner struct {
	reg  prometheus.Registerer
	name string
}

var (
	poolOwnersMu sync.Mutex
	poolOwners   = map[poolOwner]*wire.Pool{}
)

// RegisterPoolMetrics exposes pool statistics under the given pool label.
// Values are sampled from pool.Stats at scrape time. Registering the same
// pool twice is a no-op; a different pool under a taken name gets
// ErrPoolNameTaken and stays unobserved.
func RegisterPoolMetrics(reg prometheus.Registerer, name string, pool *wire.Pool) error {
	poolOwnersMu.Lock()
	defer poolOwnersMu.Unlock()

	key := poolOwner{reg: reg, name: name}
	if owner, ok := poolOwners[key]; ok {
		if owner == pool {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrPoolNameTaken, name)
	}

	labels := prometheus.Labels{"pool": name}
	counter := func(metric, help string, read func(wire.PoolStats) uint64) prometheus.Collector {
		return prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace:   "ragwire",
			Subsystem:   "pool",
			Name:        metric,
			Help:        help,
			ConstLabels: labels,
		}, func() float64 { return float64(read(pool.Stats())) })
	}
	collectors := []prometheus.Collector{
		counter("hits_total", "Buffers served from the free list.", func(s wire.PoolStats) uint64 { return s.Hits }),
		counter("misses_total", "Buffers allocated because the free list was empty.", func(s wire.PoolStats) uint64 { return s.Misses }),
		counter("releases_total", "Buffers handed back to the pool.", func(s wire.PoolStats) uint64 { return s.Releases }),
		counter("dropped_total", "Released buffers discarded by the retention bounds.", func(s wire.PoolStats) uint64 { return s.Dropped }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace:   "ragwire",
			Subsystem:   "pool",
			Name:        "idle_buffers",
			Help:        "Buffers currently on the free list.",
			ConstLabels: labels,
		}, func() float64 { return float64(pool.Stats().Idle) }),
	}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				return fmt.Errorf("%w: %q", ErrPoolNameTaken, name)
			}
			return err
		}
	}
	poolOwners[key] = pool
	return nil
}
