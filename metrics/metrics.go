// SPDX-License-Identifier: MIT
// Package metrics exposes solver and planner activity as Prometheus metrics.
//
// A Collector registers its metrics on the registry it is given (promauto.With),
// so tests and the CLI each own an isolated registry. It implements
// mis.Observer for search events and the isolation timing hooks.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/isolator/mis"
)

// Namespace prefixes every metric name.
const Namespace = "isolator"

// Collector holds the isolator metrics.
type Collector struct {
	// Reductions counts kernel rule applications, labeled by rule.
	Reductions *prometheus.CounterVec

	// Branches counts opened left branches, labeled by solver.
	Branches *prometheus.CounterVec

	// Nodes counts search-loop iterations, labeled by solver.
	Nodes *prometheus.CounterVec

	// ComponentSeconds measures the time spent on one connected component.
	// Buckets span sub-millisecond kernels to multi-second searches.
	ComponentSeconds prometheus.Histogram

	// Components tracks the component count of the last plan.
	Components prometheus.Gauge
}

// NewCollector creates the metrics and registers them on reg.
// It panics if reg already holds metrics of the same names.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		Reductions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "reductions_total",
				Help:      "Kernel rule applications",
			},
			[]string{"rule"},
		),
		Branches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "branches_total",
				Help:      "Branches opened by the search",
			},
			[]string{"solver"},
		),
		Nodes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "search_nodes_total",
				Help:      "Search-loop iterations",
			},
			[]string{"solver"},
		),
		ComponentSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "component_seconds",
				Help:      "Time spent solving one connected component",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
			},
		),
		Components: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      "components",
				Help:      "Connected components in the last planned graph",
			},
		),
	}
}

// OnReduction implements mis.Observer.
func (c *Collector) OnReduction(_ mis.Solver, r mis.Rule) {
	c.Reductions.WithLabelValues(r.String()).Inc()
}

// OnBranch implements mis.Observer.
func (c *Collector) OnBranch(s mis.Solver) {
	c.Branches.WithLabelValues(s.String()).Inc()
}

// OnNode implements mis.Observer.
func (c *Collector) OnNode(s mis.Solver) {
	c.Nodes.WithLabelValues(s.String()).Inc()
}

// ComponentSolved records the time spent on one component.
func (c *Collector) ComponentSolved(_ int, elapsed time.Duration) {
	c.ComponentSeconds.Observe(elapsed.Seconds())
}

// Planned records the number of components of a plan.
func (c *Collector) Planned(components int) {
	c.Components.Set(float64(components))
}

// WriteTextfile writes every metric gathered by g to path in the Prometheus
// text format, replacing the file atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
