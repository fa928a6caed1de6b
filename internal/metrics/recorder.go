package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts pipeline activity on its own registry so several runs in
// one process do not share state.
type Recorder struct {
	registry  *prometheus.Registry
	generated *prometheus.CounterVec
	skipped   prometheus.Counter
	failed    prometheus.Counter
	points    prometheus.Counter
	duration  prometheus.Histogram
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spirals_generated_total",
			Help: "Spirals synthesized and written, by plot type.",
		}, []string{"plot_type"}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spirals_skipped_total",
			Help: "Spirals skipped because an artifact already existed.",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spirals_failed_total",
			Help: "Spirals that could not be synthesized or written.",
		}),
		points: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spirals_points_total",
			Help: "Points generated across all spirals.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "spirals_render_seconds",
			Help:    "Time to render and persist one spiral.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}
	r.registry.MustRegister(r.generated, r.skipped, r.failed, r.points, r.duration)
	return r
}

func (r *Recorder) Generated(plotType string, points int, elapsed time.Duration) {
	r.generated.WithLabelValues(plotType).Inc()
	r.points.Add(float64(points))
	r.duration.Observe(elapsed.Seconds())
}

func (r *Recorder) Skipped() { r.skipped.Inc() }
func (r *Recorder) Failed()  { r.failed.Inc() }

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the current values in the node exporter textfile
// format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
