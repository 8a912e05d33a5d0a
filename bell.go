package qlight

// BellCircuit prepares maximally entangled qubit pairs. In a Bell state
// the measurement outcome of one qubit fully determines the outcome of
// the other.
type BellCircuit struct {
	*Circuit
}

// NewBellCircuit returns a Bell circuit over n qubits in the all-zero
// state.
func NewBellCircuit(n int) (*BellCircuit, error) {
	c, err := NewCircuit(n)
	if err != nil {
		return nil, err
	}
	return &BellCircuit{Circuit: c}, nil
}

// Correlate entangles two qubits: a Hadamard on the first followed by a
// CNOT from the first to the second.
func (b *BellCircuit) Correlate(q1, q2 int) error {
	if err := b.H(q1); err != nil {
		return err
	}
	return b.CX(q1, q2)
}
