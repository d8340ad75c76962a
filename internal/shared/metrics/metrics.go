package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-idioms/internal/shared/logger"
)

// Metrics holds all Prometheus metrics for a run.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Demo metrics
	demoRunsTotal *prometheus.CounterVec

	// Closure metrics
	closuresBuiltTotal      *prometheus.CounterVec
	closureInvocationsTotal *prometheus.CounterVec

	// Mapping metrics
	mappingBuildsTotal         *prometheus.CounterVec
	mappingEntries             *prometheus.GaugeVec
	mappingLengthMismatchTotal *prometheus.CounterVec

	logger *logger.Logger
}

// New creates a new metrics instance backed by its own registry
func New(logger *logger.Logger) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		logger:   logger.Named("metrics"),
	}

	factory := promauto.With(m.registry)
	m.initDemoMetrics(factory)
	m.initClosureMetrics(factory)
	m.initMappingMetrics(factory)

	m.logger.Debug("Metrics initialized")

	return m
}

func (m *Metrics) initDemoMetrics(factory promauto.Factory) {
	m.demoRunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_runs_total",
			Help: "Total number of demo runs",
		},
		[]string{"demo"},
	)
}

func (m *Metrics) initClosureMetrics(factory promauto.Factory) {
	m.closuresBuiltTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "closures_built_total",
			Help: "Total number of closures built",
		},
		[]string{"variant"},
	)

	m.closureInvocationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "closure_invocations_total",
			Help: "Total number of closure invocations",
		},
		[]string{"variant"},
	)
}

func (m *Metrics) initMappingMetrics(factory promauto.Factory) {
	m.mappingBuildsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapping_builds_total",
			Help: "Total number of mappings built",
		},
		[]string{"strategy"},
	)

	m.mappingEntries = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mapping_entries",
			Help: "Number of entries in the last mapping built",
		},
		[]string{"strategy"},
	)

	m.mappingLengthMismatchTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapping_length_mismatch_total",
			Help: "Total number of builds with unequal key and value lengths",
		},
		[]string{"policy"},
	)
}

// RecordDemoRun records a completed demo run
func (m *Metrics) RecordDemoRun(demo string) {
	if m == nil {
		return
	}
	m.demoRunsTotal.WithLabelValues(demo).Inc()
}

// RecordClosuresBuilt records the size of a built closure sequence
func (m *Metrics) RecordClosuresBuilt(variant string, n int) {
	if m == nil {
		return
	}
	m.closuresBuiltTotal.WithLabelValues(variant).Add(float64(n))
}

// RecordClosureInvocations records closure calls
func (m *Metrics) RecordClosureInvocations(variant string, n int) {
	if m == nil {
		return
	}
	m.closureInvocationsTotal.WithLabelValues(variant).Add(float64(n))
}

// RecordMappingBuild records a mapping built by a strategy
func (m *Metrics) RecordMappingBuild(strategy string, entries int) {
	if m == nil {
		return
	}
	m.mappingBuildsTotal.WithLabelValues(strategy).Inc()
	m.mappingEntries.WithLabelValues(strategy).Set(float64(entries))
}

// RecordLengthMismatch records unequal key and value lengths
func (m *Metrics) RecordLengthMismatch(policy string) {
	if m == nil {
		return
	}
	m.mappingLengthMismatchTotal.WithLabelValues(policy).Inc()
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteTextfile writes the registry in text exposition format
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
