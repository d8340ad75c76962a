package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-idioms/internal/app/config"
	"go-idioms/internal/pkg/mapping"
	"go-idioms/internal/shared/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:     "test",
		LogLevel:        "warn",
		ClosureCount:    5,
		ClosureExponent: 2,
		MappingKeys:     []string{"app", "script", "program"},
		MappingValues:   []int{1, 3, 5},
		LengthPolicy:    "truncate",
		MetricsEnabled:  true,
	}
}

func newTestContainer(t *testing.T, cfg *config.Config) *Container {
	t.Helper()
	c, err := NewContainer(ContainerOptions{Config: cfg, Logger: logger.NewNop()})
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	return c
}

func TestRunDefaultOutput(t *testing.T) {
	c := newTestContainer(t, testConfig())

	var buf bytes.Buffer
	if err := c.Run(context.Background(), &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := "\n" +
		"map[app:1 program:5 script:3]\n" +
		"map[app:1 program:5 script:3]\n" +
		"map[app:1 program:5 script:3]\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRunWithCaptureChecks(t *testing.T) {
	cfg := testConfig()
	cfg.CaptureCheck = config.CheckBoth
	c := newTestContainer(t, cfg)

	var buf bytes.Buffer
	if err := c.Run(context.Background(), &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := buf.String()
	for _, line := range []string{
		"shared acts[0](2) = 16",
		"shared acts[4](2) = 16",
		"snapshot acts[0](2) = 0",
		"snapshot acts[4](2) = 16",
	} {
		if !strings.Contains(out, line+"\n") {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestRunStrictMismatch(t *testing.T) {
	cfg := testConfig()
	cfg.MappingValues = []int{1, 3}
	cfg.LengthPolicy = "strict"
	c := newTestContainer(t, cfg)

	err := c.Run(context.Background(), &bytes.Buffer{})
	if !errors.Is(err, mapping.ErrLengthMismatch) {
		t.Errorf("Run error = %v, want ErrLengthMismatch", err)
	}
}

func TestRunCanceled(t *testing.T) {
	c := newTestContainer(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Run(ctx, &bytes.Buffer{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestHealth(t *testing.T) {
	c := newTestContainer(t, testConfig())
	if err := c.Health(context.Background()); err != nil {
		t.Errorf("Health: %v", err)
	}

	cfg := testConfig()
	cfg.MappingKeys = []string{"app"}
	cfg.LengthPolicy = "strict"
	core, logs := observer.New(zapcore.ErrorLevel)
	c, err := NewContainer(ContainerOptions{Config: cfg, Logger: &logger.Logger{Logger: zap.New(core)}})
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Health(context.Background()); !errors.Is(err, mapping.ErrLengthMismatch) {
		t.Errorf("Health error = %v, want ErrLengthMismatch", err)
	}
	if logs.FilterMessage("Health check failed").Len() != 1 {
		t.Errorf("expected one failure log entry, got %d", logs.Len())
	}
}

func TestCloseWritesMetrics(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsFile = filepath.Join(t.TempDir(), "demo.prom")
	c := newTestContainer(t, cfg)

	if err := c.Run(context.Background(), &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(cfg.MetricsFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`demo_runs_total{demo="closures"} 1`,
		`demo_runs_total{demo="mapping"} 1`,
		`closures_built_total{variant="shared"} 5`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics file missing %q:\n%s", want, data)
		}
	}
}

func TestRunIDIsSet(t *testing.T) {
	a := newTestContainer(t, testConfig())
	b := newTestContainer(t, testConfig())
	if a.RunID == "" || a.RunID == b.RunID {
		t.Errorf("run ids = %q, %q; want distinct non-empty", a.RunID, b.RunID)
	}
}
