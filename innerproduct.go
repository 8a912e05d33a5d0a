package qlight

import "fmt"

// BooleanInnerProductCircuit computes the GF(2) inner product of two bit
// vectors: the bitwise AND of the operands folded with XOR.
type BooleanInnerProductCircuit struct {
	*Circuit
	aLen int
	bLen int
}

// NewBooleanInnerProductCircuit lays out the binary representations of a
// and b followed by one ancilla qubit, and applies a Toffoli into the
// ancilla for every aligned bit position of the shorter operand.
func NewBooleanInnerProductCircuit(a, b int) (*BooleanInnerProductCircuit, error) {
	if a < 0 {
		return nil, &PositiveValueError{Value: a}
	}
	if b < 0 {
		return nil, &PositiveValueError{Value: b}
	}
	aLen := bitLen1(a)
	bLen := bitLen1(b)
	c, err := NewCircuit(aLen + bLen + 1)
	if err != nil {
		return nil, err
	}
	p := &BooleanInnerProductCircuit{Circuit: c, aLen: aLen, bLen: bLen}
	pattern := fmt.Sprintf("%0*b%0*b0", aLen, a, bLen, b)
	if err := p.PreparePattern(pattern); err != nil {
		return nil, err
	}
	rIdx := aLen + bLen
	for i, n := 0, min(aLen, bLen); i < n; i++ {
		aIdx := aLen - i - 1
		bIdx := aLen + bLen - i - 1
		if err := p.CCX(aIdx, bIdx, rIdx); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// InnerProduct runs the circuit and reads the final parity of the
// ancilla qubit.
func (p *BooleanInnerProductCircuit) InnerProduct() bool {
	p.Run()
	return p.certainIndex()&1 == 1
}
