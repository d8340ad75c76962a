package closures

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"go-idioms/internal/shared/logger"
	"go-idioms/internal/shared/metrics"
)

// Demo runs the closure capture demonstration
type Demo struct {
	n       int
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewDemo creates a demo over the range [0, n)
func NewDemo(n int, logger *logger.Logger, metrics *metrics.Metrics) *Demo {
	return &Demo{
		n:       n,
		logger:  logger.Named("closures"),
		metrics: metrics,
	}
}

// Run builds the shared sequence and writes a single blank line.
// The functions are not called.
func (d *Demo) Run(w io.Writer) error {
	acts := Shared(d.n)
	d.metrics.RecordClosuresBuilt(VariantShared, len(acts))

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write closure demo output: %w", err)
	}

	d.metrics.RecordDemoRun("closures")
	d.logger.Debug("Closure demo finished", zap.Int("closures", len(acts)))

	return nil
}

// Check evaluates the named variant with x and writes one line per index
func (d *Demo) Check(w io.Writer, variant string, x float64) ([]float64, error) {
	acts, ok := Build(variant, d.n)
	if !ok {
		return nil, fmt.Errorf("unknown closure variant %q", variant)
	}
	d.metrics.RecordClosuresBuilt(variant, len(acts))

	results := Evaluate(acts, x)
	d.metrics.RecordClosureInvocations(variant, len(results))

	for i, r := range results {
		_, err := fmt.Fprintf(w, "%s acts[%d](%s) = %s\n", variant, i, formatFloat(x), formatFloat(r))
		if err != nil {
			return nil, fmt.Errorf("failed to write closure check output: %w", err)
		}
	}

	d.logger.Debug("Closure check finished",
		zap.String("variant", variant),
		zap.Float64("x", x),
		zap.Float64s("results", results))

	return results, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
