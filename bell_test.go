package qlight

import (
	"math"
	"testing"
)

func TestBellCorrelate(t *testing.T) {
	b, err := NewBellCircuit(2)
	if err != nil {
		t.Fatalf("NewBellCircuit: %v", err)
	}
	if err := b.Correlate(0, 1); err != nil {
		t.Fatalf("Correlate: %v", err)
	}
	counts, err := b.Counts()
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("counts = %v, want two outcomes", counts)
	}
	if math.Abs(counts[0b00]-0.5) > tol || math.Abs(counts[0b11]-0.5) > tol {
		t.Errorf("counts = %v, want half mass on 00 and 11", counts)
	}
}

func TestBellCorrelatePair(t *testing.T) {
	b, err := NewBellCircuit(3)
	if err != nil {
		t.Fatalf("NewBellCircuit: %v", err)
	}
	if err := b.Correlate(1, 2); err != nil {
		t.Fatalf("Correlate: %v", err)
	}
	counts, err := b.Counts(1, 2)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if math.Abs(counts[0b00]-0.5) > tol || math.Abs(counts[0b11]-0.5) > tol {
		t.Errorf("counts = %v, want perfectly correlated outcomes", counts)
	}
}

func TestBellCorrelateOutOfRange(t *testing.T) {
	b, err := NewBellCircuit(2)
	if err != nil {
		t.Fatalf("NewBellCircuit: %v", err)
	}
	if err := b.Correlate(0, 2); err == nil {
		t.Error("expected error for qubit past the register")
	}
}
