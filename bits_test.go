package qlight

import (
	"errors"
	"reflect"
	"testing"
)

func TestEnumerateFixed(t *testing.T) {
	tests := []struct {
		name  string
		nBits int
		fixed []int
		want  []int
	}{
		{"msb fixed", 3, []int{0}, []int{0b100, 0b101, 0b110, 0b111}},
		{"lsb fixed", 3, []int{2}, []int{0b001, 0b011, 0b101, 0b111}},
		{"two fixed", 3, []int{0, 2}, []int{0b101, 0b111}},
		{"all fixed", 2, []int{0, 1}, []int{0b11}},
		{"none fixed", 2, nil, []int{0b00, 0b01, 0b10, 0b11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EnumerateFixed(tt.nBits, tt.fixed)
			if err != nil {
				t.Fatalf("EnumerateFixed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnumerateFixedRange(t *testing.T) {
	if _, err := EnumerateFixed(3, []int{3}); err == nil {
		t.Error("expected error for position past the register")
	}
	if _, err := EnumerateFixed(3, []int{-1}); err == nil {
		t.Error("expected error for negative position")
	}
}

func TestEnumerateFixedPairs(t *testing.T) {
	got, err := EnumerateFixedPairs(3, []int{0}, 1)
	if err != nil {
		t.Fatalf("EnumerateFixedPairs: %v", err)
	}
	want := []IndexPair{
		{Zero: 0b100, One: 0b110},
		{Zero: 0b101, One: 0b111},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEnumerateFixedPairsOverlap(t *testing.T) {
	_, err := EnumerateFixedPairs(3, []int{1}, 1)
	var overlapErr *OverlappingBitError
	if !errors.As(err, &overlapErr) {
		t.Fatalf("expected OverlappingBitError, got %v", err)
	}
	if overlapErr.Bit != 1 {
		t.Errorf("Bit = %d, want 1", overlapErr.Bit)
	}
}

func TestExtractBits(t *testing.T) {
	tests := []struct {
		name      string
		number    int
		positions []int
		want      int
	}{
		{"single high bit", 0b101, []int{0}, 1},
		{"single low bit", 0b101, []int{2}, 1},
		{"middle bit", 0b101, []int{1}, 0},
		{"reorder", 0b110, []int{2, 0}, 0b01},
		{"identity", 0b110, []int{0, 1, 2}, 0b110},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractBits(tt.number, tt.positions...); got != tt.want {
				t.Errorf("got %b, want %b", got, tt.want)
			}
		})
	}
}

func TestBitstringToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		start   int
		end     int
		want    int
		wantErr bool
	}{
		{"whole string", "1011", 0, -1, 0b1011, false},
		{"prefix", "1011", 0, 2, 0b10, false},
		{"suffix", "1011", 2, -1, 0b11, false},
		{"not binary", "10a1", 0, -1, 0, true},
		{"empty", "", 0, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BitstringToInt(tt.input, tt.start, tt.end)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("BitstringToInt: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %b, want %b", got, tt.want)
			}
		})
	}
}
