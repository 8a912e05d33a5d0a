package qlight

import (
	"errors"
	"testing"
)

func TestHalfAdderSum(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 2},
	}
	for _, tt := range tests {
		h, err := NewHalfAdderCircuit(tt.a, tt.b)
		if err != nil {
			t.Fatalf("NewHalfAdderCircuit(%d, %d): %v", tt.a, tt.b, err)
		}
		if got := h.Sum(); got != tt.want {
			t.Errorf("Sum(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestHalfAdderInvalid(t *testing.T) {
	var bitErr *BitValueError
	if _, err := NewHalfAdderCircuit(2, 0); !errors.As(err, &bitErr) {
		t.Errorf("expected BitValueError, got %v", err)
	}
	if _, err := NewHalfAdderCircuit(0, -1); !errors.As(err, &bitErr) {
		t.Errorf("expected BitValueError, got %v", err)
	}
}
