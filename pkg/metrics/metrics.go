package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "probe_diagrams"

// Recorder counts generated diagrams on its own registry so that tests and
// repeated runs never collide on the global default registerer
type Recorder struct {
	registry  *prometheus.Registry
	generated *prometheus.CounterVec
	failed    *prometheus.CounterVec
	duration  prometheus.Histogram
}

// NewRecorder creates and registers the generation metrics
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "Number of diagram files written, by probe kind and format.",
		}, []string{"kind", "format"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failed_total",
			Help:      "Number of scenarios that could not be simulated or rendered.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_seconds",
			Help:      "Time spent simulating and rendering one scenario.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}),
	}
	r.registry.MustRegister(r.generated, r.failed, r.duration)
	return r
}

// ObserveGenerated records a written file and how long its scenario took
func (r *Recorder) ObserveGenerated(kind, format string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.generated.WithLabelValues(kind, format).Inc()
	r.duration.Observe(elapsed.Seconds())
}

// ObserveFailed records a scenario that produced no output
func (r *Recorder) ObserveFailed(kind string) {
	if r == nil {
		return
	}
	r.failed.WithLabelValues(kind).Inc()
}

// Registry exposes the private registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile dumps the metrics in the node exporter textfile format
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
