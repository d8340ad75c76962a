package mapping

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"go-idioms/internal/shared/logger"
	"go-idioms/internal/shared/metrics"
)

// Demo runs the mapping construction demonstration
type Demo struct {
	keys    []string
	values  []int
	policy  Policy
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewDemo creates a demo over the given parallel slices
func NewDemo(keys []string, values []int, policy Policy, logger *logger.Logger, metrics *metrics.Metrics) *Demo {
	return &Demo{
		keys:    keys,
		values:  values,
		policy:  policy,
		logger:  logger.Named("mapping"),
		metrics: metrics,
	}
}

// Build runs all three strategies
func (d *Demo) Build() (Result[string, int], error) {
	if len(d.keys) != len(d.values) {
		d.metrics.RecordLengthMismatch(string(d.policy))
		d.logger.Warn("Keys and values differ in length",
			zap.Int("keys", len(d.keys)),
			zap.Int("values", len(d.values)),
			zap.String("policy", string(d.policy)))
	}

	result, err := Build(d.keys, d.values, d.policy)
	if err != nil {
		return result, err
	}

	d.metrics.RecordMappingBuild(StrategyAccumulate, len(result.Accumulated))
	d.metrics.RecordMappingBuild(StrategyFromPairs, len(result.FromPairs))
	d.metrics.RecordMappingBuild(StrategyProject, len(result.Projected))

	if !result.Equal() {
		return result, errors.New("mapping strategies disagree")
	}

	return result, nil
}

// Run prints the three maps, one per line: accumulated, from pairs, projected
func (d *Demo) Run(w io.Writer) error {
	result, err := d.Build()
	if err != nil {
		return fmt.Errorf("failed to build mappings: %w", err)
	}

	for _, m := range []map[string]int{result.Accumulated, result.FromPairs, result.Projected} {
		if _, err := fmt.Fprintln(w, m); err != nil {
			return fmt.Errorf("failed to write mapping demo output: %w", err)
		}
	}

	d.metrics.RecordDemoRun("mapping")
	d.logger.Debug("Mapping demo finished", zap.Int("entries", len(result.Accumulated)))

	return nil
}
