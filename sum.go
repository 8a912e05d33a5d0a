package qlight

import (
	"fmt"
	"strings"
)

// SumCircuit adds two non-negative integers with a ripple-carry
// construction over X-family gates only. The register lays out the bits
// of a, the bits of b, then a result region one bit wider than the longer
// operand.
type SumCircuit struct {
	*Circuit
	a    int
	b    int
	aLen int
	bLen int
	rLen int
}

// NewSumCircuit builds the adder. Each stage i, from the least
// significant bit upward, works on the result bit rIdx holding the
// carry-in and the next result bit cNext:
//
//	CCX(a_i, b_i, cNext)   carry out of a_i AND b_i
//	CCX(a_i, rIdx, cNext)  carry out of a_i AND carry-in
//	CCX(b_i, rIdx, cNext)  carry out of b_i AND carry-in
//	CX(a_i, rIdx)          fold a_i into the sum bit
//	CX(b_i, rIdx)          fold b_i into the sum bit
//
// The Toffolis must precede the CNOTs of the same stage so that rIdx
// still reads the carry-in when they fire. Stages past the end of an
// operand skip that operand's terms.
func NewSumCircuit(a, b int) (*SumCircuit, error) {
	if a < 0 {
		return nil, &PositiveValueError{Value: a}
	}
	if b < 0 {
		return nil, &PositiveValueError{Value: b}
	}
	aLen := bitLen1(a)
	bLen := bitLen1(b)
	rLen := max(aLen, bLen) + 1
	c, err := NewCircuit(aLen + bLen + rLen)
	if err != nil {
		return nil, err
	}
	s := &SumCircuit{Circuit: c, a: a, b: b, aLen: aLen, bLen: bLen, rLen: rLen}
	pattern := fmt.Sprintf("%0*b%0*b%s", aLen, a, bLen, b, strings.Repeat("0", rLen))
	if err := s.PreparePattern(pattern); err != nil {
		return nil, err
	}
	for i := 0; i < rLen-1; i++ {
		aIdx := aLen - i - 1
		bIdx := aLen + bLen - i - 1
		rIdx := aLen + bLen + rLen - i - 1
		cNext := rIdx - 1
		if aLen > i && bLen > i {
			if err := s.CCX(aIdx, bIdx, cNext); err != nil {
				return nil, err
			}
		}
		if aLen > i {
			if err := s.CCX(aIdx, rIdx, cNext); err != nil {
				return nil, err
			}
		}
		if bLen > i {
			if err := s.CCX(bIdx, rIdx, cNext); err != nil {
				return nil, err
			}
		}
		if aLen > i {
			if err := s.CX(aIdx, rIdx); err != nil {
				return nil, err
			}
		}
		if bLen > i {
			if err := s.CX(bIdx, rIdx); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// Sum runs the circuit and reads the result region back as an integer.
func (s *SumCircuit) Sum() int {
	s.Run()
	return s.certainIndex() & (1<<s.rLen - 1)
}
