package bootstrap

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-idioms/internal/app/config"
	"go-idioms/internal/pkg/closures"
	"go-idioms/internal/pkg/mapping"
	"go-idioms/internal/shared/logger"
	"go-idioms/internal/shared/metrics"
)

// Container holds all application dependencies
type Container struct {
	// Configuration and Infrastructure
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.Metrics
	RunID   string

	// Demos
	ClosureDemo *closures.Demo
	MappingDemo *mapping.Demo
}

// ContainerOptions defines configuration options for the container
type ContainerOptions struct {
	ConfigPath string
	// Config skips loading from ConfigPath when set
	Config *config.Config
	// Logger skips building a logger from the config when set
	Logger *logger.Logger
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts ContainerOptions) (*Container, error) {
	container := &Container{
		RunID: uuid.New().String(),
	}

	// Load configuration first
	cfg := opts.Config
	if cfg == nil {
		var err error
		cfg, err = config.LoadConfig(opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	container.Config = cfg

	// Initialize logger
	appLogger := opts.Logger
	if appLogger == nil {
		var err error
		appLogger, err = logger.New(logger.Options{
			Environment: cfg.Environment,
			Level:       cfg.LogLevel,
			Dir:         cfg.LogDir,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	container.Logger = appLogger.With(zap.String("run_id", container.RunID))

	// Initialize metrics (if enabled)
	if cfg.MetricsEnabled {
		container.Metrics = metrics.New(container.Logger)
	}

	container.ClosureDemo = closures.NewDemo(cfg.ClosureCount, container.Logger, container.Metrics)
	container.MappingDemo = mapping.NewDemo(
		cfg.MappingKeys,
		cfg.MappingValues,
		mapping.Policy(cfg.LengthPolicy),
		container.Logger,
		container.Metrics,
	)

	container.Logger.Debug("Container initialized",
		zap.String("environment", cfg.Environment),
		zap.Bool("metrics_enabled", cfg.MetricsEnabled))

	return container, nil
}

// Run executes the closure demo, any requested capture checks, then the mapping demo
func (c *Container) Run(ctx context.Context, w io.Writer) error {
	if err := c.ClosureDemo.Run(w); err != nil {
		return err
	}

	var checks []string
	if c.Config.RunsShared() {
		checks = append(checks, closures.VariantShared)
	}
	if c.Config.RunsSnapshot() {
		checks = append(checks, closures.VariantSnapshot)
	}
	for _, variant := range checks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := c.ClosureDemo.Check(w, variant, c.Config.ClosureExponent); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return c.MappingDemo.Run(w)
}

// Health runs the self checks
func (c *Container) Health(ctx context.Context) error {
	checkers := []HealthChecker{
		NewClosureHealthChecker(c),
		NewMappingHealthChecker(c),
	}
	return CheckAll(ctx, c.Logger, checkers...)
}

// Close flushes metrics and syncs the logger
func (c *Container) Close() error {
	var firstErr error

	if err := c.Metrics.WriteTextfile(c.Config.MetricsFile); err != nil {
		c.Logger.Error("Failed to write metrics file", zap.Error(err))
		firstErr = fmt.Errorf("failed to write metrics file: %w", err)
	}

	// Sync on a console writer can fail harmlessly
	_ = c.Logger.Sync()

	return firstErr
}
