package sweep

import (
	"github.com/prometheus/client_golang/prometheus"
	"sync"
)

var (
	sweepPrometheusMetrics sync.Once

	sweepRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hashsweep",
			Subsystem: "sweep",
			Name:      "runs_total",
			Help:      "Number of batch runs performed",
		},
		[]string{"technique", "distribution"},
	)
	sweepTruncatedRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hashsweep",
			Subsystem: "sweep",
			Name:      "truncated_runs_total",
			Help:      "Number of batch runs that stopped early because the table got full",
		},
		[]string{"technique", "distribution"},
	)
	sweepInserts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hashsweep",
			Subsystem: "sweep",
			Name:      "inserts_total",
			Help:      "Number of keys successfully inserted across all runs",
		},
		[]string{"technique", "distribution"},
	)
	sweepCollisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hashsweep",
			Subsystem: "sweep",
			Name:      "collisions_total",
			Help:      "Number of collisions across all runs",
		},
		[]string{"technique", "distribution"},
	)
	sweepProbes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hashsweep",
			Subsystem: "sweep",
			Name:      "probes_total",
			Help:      "Number of probe steps across all runs",
		},
		[]string{"technique", "distribution"},
	)
	sweepProbesPerInsert = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hashsweep",
			Subsystem: "sweep",
			Name:      "probes_per_insert",
			Help:      "Average number of probe steps per successful insert of a run",
			Buckets:   prometheus.ExponentialBuckets(0.125, 2.0, 10),
		},
		[]string{"technique", "distribution"},
	)
)

// registerMetrics - Registers the sweep metrics with the default registry once per process
func registerMetrics() {
	sweepPrometheusMetrics.Do(func() {
		prometheus.MustRegister(sweepRuns)
		prometheus.MustRegister(sweepTruncatedRuns)
		prometheus.MustRegister(sweepInserts)
		prometheus.MustRegister(sweepCollisions)
		prometheus.MustRegister(sweepProbes)
		prometheus.MustRegister(sweepProbesPerInsert)
	})
}

// observePoint - Adds the outcome of one run to the metrics
func observePoint(technique, distribution string, point Point) {
	sweepRuns.WithLabelValues(technique, distribution).Inc()
	if point.Truncated {
		sweepTruncatedRuns.WithLabelValues(technique, distribution).Inc()
	}
	sweepInserts.WithLabelValues(technique, distribution).Add(float64(point.Stats.TotalInserts))
	sweepCollisions.WithLabelValues(technique, distribution).Add(float64(point.Stats.TotalCollisions))
	sweepProbes.WithLabelValues(technique, distribution).Add(float64(point.Stats.TotalProbes))
	sweepProbesPerInsert.WithLabelValues(technique, distribution).Observe(point.AvgProbesPerInsert)
}
