package qlight

import "math"

// GateKind identifies one of the fixed single-qubit gates of the catalog.
type GateKind int

const (
	// GateI is the identity gate. It leaves a qubit unchanged.
	GateI GateKind = iota
	// GateX is the negation gate. It flips a qubit.
	GateX
	// GateH is the Hadamard gate. It puts a qubit into an equal
	// superposition of both basis states.
	GateH
	// GateZ is the phase-flip gate. It negates the amplitude of the 1
	// component of a qubit.
	GateZ
)

// Matrix returns the 2x2 matrix of the gate.
func (g GateKind) Matrix() Matrix {
	switch g {
	case GateX:
		return Matrix{{0, 1}, {1, 0}}
	case GateH:
		h := 1 / math.Sqrt2
		return Matrix{{h, h}, {h, -h}}
	case GateZ:
		return Matrix{{1, 0}, {0, -1}}
	default:
		return Matrix{{1, 0}, {0, 1}}
	}
}

// String returns the display label of the gate.
func (g GateKind) String() string {
	switch g {
	case GateX:
		return "X"
	case GateH:
		return "H"
	case GateZ:
		return "Z"
	default:
		return "I"
	}
}
