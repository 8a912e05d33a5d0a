package qlight

import "fmt"

// HalfAdderCircuit sums two single bits, producing a sum bit and a carry
// bit. The sum is the XOR of the inputs and the carry their AND.
type HalfAdderCircuit struct {
	*Circuit
	a int
	b int
}

// NewHalfAdderCircuit builds the half adder for two bits. The register
// reads a, b, carry, sum.
func NewHalfAdderCircuit(a, b int) (*HalfAdderCircuit, error) {
	if a != 0 && a != 1 {
		return nil, &BitValueError{Value: a}
	}
	if b != 0 && b != 1 {
		return nil, &BitValueError{Value: b}
	}
	c, err := NewCircuit(4)
	if err != nil {
		return nil, err
	}
	h := &HalfAdderCircuit{Circuit: c, a: a, b: b}
	if err := h.PreparePattern(fmt.Sprintf("%d%d00", a, b)); err != nil {
		return nil, err
	}
	// sum = a xor b
	if err := h.CX(0, 3); err != nil {
		return nil, err
	}
	if err := h.CX(1, 3); err != nil {
		return nil, err
	}
	// carry = a and b
	if err := h.CCX(0, 1, 2); err != nil {
		return nil, err
	}
	return h, nil
}

// Sum runs the circuit and reads back the two-bit carry/sum value, which
// equals a + b.
func (h *HalfAdderCircuit) Sum() int {
	h.Run()
	return h.certainIndex() & 0b11
}
