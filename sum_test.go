package qlight

import (
	"errors"
	"fmt"
	"testing"
)

func TestSumCircuit(t *testing.T) {
	tests := []struct {
		a, b int
	}{
		{0, 0},
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 1},
		{3, 3},
		{2, 3},
		{3, 5},
		{7, 1},
		{6, 6},
		{15, 9},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d+%d", tt.a, tt.b), func(t *testing.T) {
			s, err := NewSumCircuit(tt.a, tt.b)
			if err != nil {
				t.Fatalf("NewSumCircuit: %v", err)
			}
			if got := s.Sum(); got != tt.a+tt.b {
				t.Errorf("Sum() = %d, want %d", got, tt.a+tt.b)
			}
		})
	}
}

func TestSumCircuitNegative(t *testing.T) {
	var posErr *PositiveValueError
	if _, err := NewSumCircuit(-1, 2); !errors.As(err, &posErr) {
		t.Errorf("expected PositiveValueError, got %v", err)
	}
	if _, err := NewSumCircuit(2, -3); !errors.As(err, &posErr) {
		t.Errorf("expected PositiveValueError, got %v", err)
	}
}
