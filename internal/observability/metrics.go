package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dsproto",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total admin HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dsproto",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Admin HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	packetsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dsproto",
			Subsystem: "packets",
			Name:      "sent_total",
			Help:      "Outbound protocol packets sent, by peer.",
		},
		[]string{"peer"},
	)
	packetsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dsproto",
			Subsystem: "packets",
			Name:      "received_total",
			Help:      "Inbound protocol packets successfully parsed, by peer.",
		},
		[]string{"peer"},
	)
	parseFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dsproto",
			Subsystem: "packets",
			Name:      "parse_failures_total",
			Help:      "Inbound packets that failed to parse, by peer.",
		},
		[]string{"peer"},
	)
	commsUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "dsproto",
			Subsystem: "comms",
			Name:      "up",
			Help:      "1 if the watchdog considers this peer's comms alive, else 0.",
		},
		[]string{"peer"},
	)
)

// RegisterMetrics registers every collector with the default Prometheus
// registry. Safe to call more than once.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, packetsSent, packetsReceived, parseFailures, commsUp)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordPacketSent increments the sent-packet counter for peer
// ("fms", "robot", "radio", "netconsole").
func RecordPacketSent(peer string) {
	RegisterMetrics()
	packetsSent.WithLabelValues(peer).Inc()
}

// RecordPacketReceived increments the successfully-parsed counter for peer.
func RecordPacketReceived(peer string) {
	RegisterMetrics()
	packetsReceived.WithLabelValues(peer).Inc()
}

// RecordParseFailure increments the parse-failure counter for peer.
func RecordParseFailure(peer string) {
	RegisterMetrics()
	parseFailures.WithLabelValues(peer).Inc()
}

// SetCommsUp sets the comms gauge for peer to 1 (up) or 0 (down).
func SetCommsUp(peer string, up bool) {
	RegisterMetrics()
	value := 0.0
	if up {
		value = 1.0
	}
	commsUp.WithLabelValues(peer).Set(value)
}
