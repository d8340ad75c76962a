package bootstrap

import (
	"context"
	"fmt"
	"math"
	"time"

	"go-idioms/internal/pkg/closures"
	"go-idioms/internal/pkg/mapping"
	"go-idioms/internal/shared/logger"

	"go.uber.org/zap"
)

// HealthChecker defines interface for component health checks
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// ClosureHealthChecker verifies the capture behavior of each variant
type ClosureHealthChecker struct {
	container *Container
}

// NewClosureHealthChecker creates a new closure health checker
func NewClosureHealthChecker(container *Container) *ClosureHealthChecker {
	return &ClosureHealthChecker{container: container}
}

// Name returns the health checker name
func (h *ClosureHealthChecker) Name() string {
	return "closures"
}

// Check confirms shared functions see n-1 and snapshot functions see their index
func (h *ClosureHealthChecker) Check(ctx context.Context) error {
	n := h.container.Config.ClosureCount
	x := h.container.Config.ClosureExponent

	last := math.Pow(float64(n-1), x)
	for i, got := range closures.Evaluate(closures.Shared(n), x) {
		if got != last {
			return fmt.Errorf("shared acts[%d](%v) = %v, want %v", i, x, got, last)
		}
	}

	for i, got := range closures.Evaluate(closures.Snapshot(n), x) {
		if want := math.Pow(float64(i), x); got != want {
			return fmt.Errorf("snapshot acts[%d](%v) = %v, want %v", i, x, got, want)
		}
	}

	return nil
}

// MappingHealthChecker verifies the three strategies agree
type MappingHealthChecker struct {
	container *Container
}

// NewMappingHealthChecker creates a new mapping health checker
func NewMappingHealthChecker(container *Container) *MappingHealthChecker {
	return &MappingHealthChecker{container: container}
}

// Name returns the health checker name
func (h *MappingHealthChecker) Name() string {
	return "mapping"
}

// Check builds the configured mapping with every strategy
func (h *MappingHealthChecker) Check(ctx context.Context) error {
	cfg := h.container.Config
	result, err := mapping.Build(cfg.MappingKeys, cfg.MappingValues, mapping.Policy(cfg.LengthPolicy))
	if err != nil {
		return err
	}
	if !result.Equal() {
		return fmt.Errorf("mapping strategies disagree")
	}
	return nil
}

// CheckAll runs every checker and returns the first failure
func CheckAll(ctx context.Context, log *logger.Logger, checkers ...HealthChecker) error {
	for _, checker := range checkers {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		err := checker.Check(ctx)
		duration := time.Since(start)

		if err != nil {
			log.Error("Health check failed",
				zap.String("component", checker.Name()),
				zap.Duration("duration", duration),
				zap.Error(err))
			return fmt.Errorf("%s health check failed: %w", checker.Name(), err)
		}

		log.Debug("Health check passed",
			zap.String("component", checker.Name()),
			zap.Duration("duration", duration))
	}

	return nil
}
