package qlight

import (
	"strings"
	"testing"
)

func TestVisualizerStandalone(t *testing.T) {
	v := NewVisualizer(2)
	v.AppendStandalone("H", 0)
	v.AppendStandalone("X", 1)
	got := v.String()
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "|H|") {
		t.Errorf("line 0 missing gate box: %q", lines[0])
	}
	if !strings.Contains(lines[1], "|X|") {
		t.Errorf("line 1 missing gate box: %q", lines[1])
	}
}

func TestVisualizerPacking(t *testing.T) {
	// Independent gates share a column; a second gate on the same wire
	// opens a new one.
	v := NewVisualizer(2)
	v.AppendStandalone("H", 0)
	v.AppendStandalone("X", 1)
	if len(v.columns) != 1 {
		t.Fatalf("independent gates use %d columns, want 1", len(v.columns))
	}
	v.AppendStandalone("Z", 0)
	if len(v.columns) != 2 {
		t.Fatalf("sequential gates use %d columns, want 2", len(v.columns))
	}
}

func TestVisualizerControlled(t *testing.T) {
	v := NewVisualizer(3)
	v.AppendControlled("X", []int{0}, 2)
	got := v.String()
	lines := strings.Split(got, "\n")
	if !strings.Contains(lines[0], "■") {
		t.Errorf("control wire missing dot: %q", lines[0])
	}
	if !strings.Contains(lines[1], "│") {
		t.Errorf("middle wire missing connector: %q", lines[1])
	}
	if !strings.Contains(lines[2], "|X|") {
		t.Errorf("target wire missing gate box: %q", lines[2])
	}
}

func TestVisualizerControlledBlocksSpan(t *testing.T) {
	// A controlled gate occupies every wire it crosses, so a later gate
	// on an in-between wire cannot share its column.
	v := NewVisualizer(3)
	v.AppendControlled("X", []int{0}, 2)
	v.AppendStandalone("H", 1)
	if len(v.columns) != 2 {
		t.Fatalf("got %d columns, want 2", len(v.columns))
	}
}

func TestVisualizerBarrier(t *testing.T) {
	v := NewVisualizer(2)
	v.AppendBarrier(nil)
	got := v.String()
	for i, line := range strings.Split(got, "\n") {
		if !strings.Contains(line, "░") {
			t.Errorf("line %d missing barrier: %q", i, line)
		}
	}
}

func TestVisualizerLabels(t *testing.T) {
	v := NewVisualizer(3)
	got := v.String()
	for _, want := range []string{"q_0 |0>", "q_1 |0>", "q_2 |0>"} {
		if !strings.Contains(got, want) {
			t.Errorf("diagram missing label %q:\n%s", want, got)
		}
	}
}
