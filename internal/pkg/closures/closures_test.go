package closures

import (
	"bytes"
	"strings"
	"testing"

	"go-idioms/internal/shared/logger"
)

func TestSharedSeesFinalValue(t *testing.T) {
	acts := Shared(5)
	if len(acts) != 5 {
		t.Fatalf("len = %d, want 5", len(acts))
	}

	for i, got := range Evaluate(acts, 2) {
		if got != 16 {
			t.Errorf("acts[%d](2) = %v, want 16", i, got)
		}
	}
}

func TestSnapshotSeesCreationValue(t *testing.T) {
	tests := []struct {
		name  string
		build func(int) Acts
	}{
		{"snapshot", Snapshot},
		{"per iteration", PerIteration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acts := tt.build(5)
			want := []float64{0, 1, 4, 9, 16}
			got := Evaluate(acts, 2)
			if len(got) != len(want) {
				t.Fatalf("len = %d, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("acts[%d](2) = %v, want %v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestEmptyAndNegativeRange(t *testing.T) {
	for _, n := range []int{0, -3} {
		for _, variant := range []string{VariantShared, VariantSnapshot, VariantPerIteration} {
			acts, ok := Build(variant, n)
			if !ok {
				t.Fatalf("Build(%q) not ok", variant)
			}
			if len(acts) != 0 {
				t.Errorf("Build(%q, %d) len = %d, want 0", variant, n, len(acts))
			}
		}
	}
}

func TestBuildUnknownVariant(t *testing.T) {
	if _, ok := Build("by_reference", 5); ok {
		t.Error("expected unknown variant to fail")
	}
}

func TestDemoRunWritesBlankLine(t *testing.T) {
	var buf bytes.Buffer
	d := NewDemo(5, logger.NewNop(), nil)

	if err := d.Run(&buf); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if buf.String() != "\n" {
		t.Errorf("output = %q, want a single blank line", buf.String())
	}
}

func TestDemoCheck(t *testing.T) {
	var buf bytes.Buffer
	d := NewDemo(5, logger.NewNop(), nil)

	results, err := d.Check(&buf, VariantShared, 2)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("results = %v", results)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if lines[0] != "shared acts[0](2) = 16" {
		t.Errorf("line 0 = %q", lines[0])
	}

	buf.Reset()
	if _, err := d.Check(&buf, VariantSnapshot, 2); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "snapshot acts[0](2) = 0\n") {
		t.Errorf("snapshot output = %q", buf.String())
	}

	if _, err := d.Check(&buf, "bogus", 2); err == nil {
		t.Error("expected error for unknown variant")
	}
}
