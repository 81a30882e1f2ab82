package metrics

import (
	"strconv"
	"time"

	"station-reassignment-service/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector records batch reassignment metrics.
type PrometheusCollector struct {
	items        *prometheus.CounterVec
	itemLatency  prometheus.Histogram
	batches      *prometheus.CounterVec
	batchLatency prometheus.Histogram
	current      prometheus.Gauge
	total        prometheus.Gauge
}

// NewPrometheus registers the collectors on reg (prometheus.DefaultRegisterer if nil).
// namespace defaults to "station_reassignment".
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "station_reassignment"
	}

	p := &PrometheusCollector{
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "items_total",
			Help:      "Reassignment submissions by outcome.",
		}, []string{"outcome"}),
		itemLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "item_submit_seconds",
			Help:      "Latency of a single gateway submission.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "runs_total",
			Help:      "Batch runs by classification.",
		}, []string{"classification", "cancelled"}),
		batchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "run_seconds",
			Help:      "Duration of whole batch runs.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
		current: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "progress_current",
			Help:      "1-based index of the item in flight, 0 when idle.",
		}),
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "batch",
			Name:      "progress_total",
			Help:      "Item count of the active run, 0 when idle.",
		}),
	}

	reg.MustRegister(p.items, p.itemLatency, p.batches, p.batchLatency, p.current, p.total)
	return p
}

func (p *PrometheusCollector) RecordItem(succeeded bool, latency time.Duration) {
	outcome := "failed"
	if succeeded {
		outcome = "succeeded"
	}
	p.items.WithLabelValues(outcome).Inc()
	p.itemLatency.Observe(latency.Seconds())
}

func (p *PrometheusCollector) RecordBatch(classification domain.Classification, cancelled bool, duration time.Duration) {
	p.batches.WithLabelValues(string(classification), strconv.FormatBool(cancelled)).Inc()
	p.batchLatency.Observe(duration.Seconds())
}

func (p *PrometheusCollector) SetInFlight(current, total int) {
	p.current.Set(float64(current))
	p.total.Set(float64(total))
}
