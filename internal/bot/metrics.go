package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the bot transport collectors. Domain counters live in internal/metrics.
type Metrics struct {
	MessagesProcessed    prometheus.Counter
	CallbacksProcessed   prometheus.Counter
	ErrorsTotal          prometheus.Counter
	RateLimited          prometheus.Counter
	UpdateProcessingTime prometheus.Histogram
	FlowsCompleted       *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg; nil means the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		MessagesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "oficina_bot_messages_processed_total",
			Help: "Total number of text messages handled",
		}),
		CallbacksProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "oficina_bot_callbacks_processed_total",
			Help: "Total number of inline button presses handled",
		}),
		ErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "oficina_bot_errors_total",
			Help: "Total number of recovered handler panics",
		}),
		RateLimited: factory.NewCounter(prometheus.CounterOpts{
			Name: "oficina_bot_rate_limited_total",
			Help: "Updates dropped by the per-user rate limit",
		}),
		UpdateProcessingTime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "oficina_bot_update_processing_time_seconds",
			Help:    "Time spent processing updates",
			Buckets: prometheus.DefBuckets,
		}),
		FlowsCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "oficina_bot_flows_completed_total",
			Help: "Forms completed through the bot",
		}, []string{"flow"}),
	}
}

func (m *Metrics) flowCompleted(flow string) {
	if m == nil {
		return
	}
	m.FlowsCompleted.WithLabelValues(flow).Inc()
}
