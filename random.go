package qlight

// RandomCircuit puts every qubit through a Hadamard, producing an equal
// superposition over all 2^n basis states. Measuring such a register is a
// source of uniformly random n-bit values; this simulator only exposes
// the resulting distribution, not an actual collapse.
type RandomCircuit struct {
	*Circuit
}

// NewRandomCircuit returns the uniform-superposition circuit over n
// qubits.
func NewRandomCircuit(n int) (*RandomCircuit, error) {
	c, err := NewCircuit(n)
	if err != nil {
		return nil, err
	}
	qubits := make([]int, n)
	for i := range qubits {
		qubits[i] = i
	}
	if err := c.H(qubits...); err != nil {
		return nil, err
	}
	return &RandomCircuit{Circuit: c}, nil
}
