// SPDX-License-Identifier: MIT

package spectral

import (
	"time"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Stage names used as the "stage" label of the duration histogram.
const (
	StageLaplacian = "laplacian"
	StageEigen     = "eigensolver"
	StageNormalize = "normalize"
	StageKMeans    = "kmeans"
)

// Metrics holds the pipeline collectors in a private registry.
type Metrics struct {
	StageDuration      *prometheus.HistogramVec
	MatVecs            prometheus.Counter
	Restarts           prometheus.Counter
	NonConvergence     prometheus.Counter
	DegenerateClusters prometheus.Counter
	Runs               *prometheus.CounterVec
	registry           *prometheus.Registry
}

// NewMetrics creates a Metrics instance with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		StageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "spectral_stage_duration_seconds",
			Help:    "Duration of each pipeline stage",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
		MatVecs: factory.NewCounter(prometheus.CounterOpts{
			Name: "spectral_eigensolver_matvecs_total",
			Help: "Total operator applications by the eigensolver",
		}),
		Restarts: factory.NewCounter(prometheus.CounterOpts{
			Name: "spectral_eigensolver_restarts_total",
			Help: "Total eigensolver restart cycles",
		}),
		NonConvergence: factory.NewCounter(prometheus.CounterOpts{
			Name: "spectral_eigensolver_nonconvergence_total",
			Help: "Total eigensolver runs that did not converge",
		}),
		DegenerateClusters: factory.NewCounter(prometheus.CounterOpts{
			Name: "spectral_degenerate_clusters_total",
			Help: "Total clusters that received no members",
		}),
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "spectral_runs_total",
			Help: "Pipeline runs by entry point and outcome",
		}, []string{"op", "outcome"}),
		registry: registry,
	}
}

// Registry returns the registry holding all collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// observeStage records the duration since start. Safe on a nil receiver.
func (m *Metrics) observeStage(stage string, start time.Time) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeSolver(res *eigen.Result) {
	if m == nil || res == nil {
		return
	}
	m.MatVecs.Add(float64(res.MatVecs))
	m.Restarts.Add(float64(res.Restarts))
}

func (m *Metrics) observeNonConvergence() {
	if m == nil {
		return
	}
	m.NonConvergence.Inc()
}

func (m *Metrics) observeDegenerate(n int) {
	if m == nil {
		return
	}
	m.DegenerateClusters.Add(float64(n))
}

func (m *Metrics) observeRun(op string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Runs.WithLabelValues(op, outcome).Inc()
}
