package qlight

import (
	"fmt"
	"math"
	"math/bits"
	"regexp"
	"sort"
	"strings"
)

var patternRegexp = regexp.MustCompile(`^[01h]+$`)

// GateOp records one applied operation for the diagram renderer and the
// QASM exporter. It has no effect on simulation.
type GateOp struct {
	Kind     GateKind
	Targets  []int
	Controls []int
	Barrier  bool
}

// Circuit is a dense-statevector quantum circuit. It owns the register
// width, the initial state vector, the ordered list of expanded gate
// operators, and the result of the last run. Gate-application calls only
// synthesize and append operators; nothing touches the state vector until
// Run folds it through the gate list.
//
// A Circuit is not safe for concurrent use; each instance owns its state
// exclusively.
type Circuit struct {
	n        int
	state    []float64
	identity Matrix
	gates    []Matrix
	ops      []GateOp
	result   []float64
	hasRun   bool
}

// NewCircuit returns a circuit of n qubits in the all-zero basis state.
func NewCircuit(n int) (*Circuit, error) {
	c := &Circuit{}
	if err := c.Reset(n); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCircuitFromBitstring returns a circuit whose width and initial state
// are given by a binary string: the state measures the string's value
// with probability 1.
func NewCircuitFromBitstring(s string) (*Circuit, error) {
	c := &Circuit{}
	if err := c.ResetBitstring(s); err != nil {
		return nil, err
	}
	return c, nil
}

// NewCircuitFromAmplitudes returns a circuit initialized with the given
// amplitude vector. The vector length must be a power of two and the
// vector is normalized to unit norm.
func NewCircuitFromAmplitudes(amps []float64) (*Circuit, error) {
	c := &Circuit{}
	if err := c.ResetAmplitudes(amps); err != nil {
		return nil, err
	}
	return c, nil
}

// resize atomically recomputes every width-dependent cached value and
// clears the gate list and the previous result.
func (c *Circuit) resize(n int) {
	c.n = n
	c.identity = Identity(1 << n)
	c.gates = nil
	c.ops = nil
	c.result = nil
	c.hasRun = false
}

// Reset re-initializes the circuit to n qubits in the all-zero basis
// state, discarding every appended gate and any previous result.
func (c *Circuit) Reset(n int) error {
	if n <= 0 {
		return &PositiveValueError{Value: n}
	}
	c.resize(n)
	state := make([]float64, 1<<n)
	state[0] = 1
	c.state = state
	return nil
}

// ResetBitstring re-initializes the circuit from a binary string, as in
// NewCircuitFromBitstring.
func (c *Circuit) ResetBitstring(s string) error {
	pos, err := BitstringToInt(s, 0, -1)
	if err != nil {
		return err
	}
	c.resize(len(s))
	state := make([]float64, 1<<len(s))
	state[pos] = 1
	c.state = state
	return nil
}

// ResetAmplitudes re-initializes the circuit from an amplitude vector, as
// in NewCircuitFromAmplitudes.
func (c *Circuit) ResetAmplitudes(amps []float64) error {
	length := len(amps)
	if length == 0 || length&(length-1) != 0 {
		return &PowerOfTwoLengthError{Length: length}
	}
	normalized, err := normalize(amps)
	if err != nil {
		return err
	}
	c.resize(bits.Len(uint(length)) - 1)
	c.state = normalized
	return nil
}

// PreparePattern resets the circuit to the all-zero state and appends the
// gates that produce the given pattern from it: an X gate where the
// pattern reads 1 and a Hadamard where it reads h.
func (c *Circuit) PreparePattern(pattern string) error {
	if !patternRegexp.MatchString(pattern) {
		return &PatternStringError{Input: pattern}
	}
	if len(pattern) != c.n {
		return &PatternLengthError{Length: len(pattern), Want: c.n}
	}
	c.resize(c.n)
	state := make([]float64, 1<<c.n)
	state[0] = 1
	c.state = state
	var xs, hs []int
	for i, digit := range pattern {
		switch digit {
		case '1':
			xs = append(xs, i)
		case 'h':
			hs = append(hs, i)
		}
	}
	if len(xs) > 0 {
		if err := c.X(xs...); err != nil {
			return err
		}
	}
	if len(hs) > 0 {
		if err := c.H(hs...); err != nil {
			return err
		}
	}
	return nil
}

// normalize scales the vector to unit norm. The zero vector has no
// normalization and is rejected.
func normalize(vector []float64) ([]float64, error) {
	var sum float64
	for _, v := range vector {
		sum += v * v
	}
	if sum == 0 {
		return nil, &ZeroVectorError{}
	}
	norm := math.Sqrt(sum)
	out := make([]float64, len(vector))
	if math.Abs(norm-1) < 1e-12 {
		copy(out, vector)
		return out, nil
	}
	for i, v := range vector {
		out[i] = v / norm
	}
	return out, nil
}

// N returns the number of qubits in the register.
func (c *Circuit) N() int { return c.n }

// State returns the initial state vector. The slice is owned by the
// circuit and must not be modified.
func (c *Circuit) State() []float64 { return c.state }

// Result returns the vector produced by the last Run, or the initial
// state when no run has happened yet.
func (c *Circuit) Result() []float64 {
	if !c.hasRun {
		return c.state
	}
	return c.result
}

// Ops returns the recorded gate operations in application order.
func (c *Circuit) Ops() []GateOp { return c.ops }

// checkQubits validates that every position is inside [0, n).
func (c *Circuit) checkQubits(qubits ...int) error {
	for _, q := range qubits {
		if q < 0 || q >= c.n {
			return &OutOfRangeError{Value: q, Limit: c.n}
		}
	}
	return nil
}

// ExpandGate tensor-expands a single-qubit gate across the register: the
// gate sits at each of the given positions and the identity everywhere
// else. The expansion is an explicit dense matrix, exponential in the
// register width by construction.
func (c *Circuit) ExpandGate(kind GateKind, positions ...int) (Matrix, error) {
	if err := c.checkQubits(positions...); err != nil {
		return nil, err
	}
	factors := make([]Matrix, c.n)
	identity := GateI.Matrix()
	for i := range factors {
		factors[i] = identity
	}
	gate := kind.Matrix()
	for _, p := range positions {
		factors[p] = gate
	}
	return TensorProduct(factors)
}

func (c *Circuit) apply(kind GateKind, qubits ...int) error {
	op, err := c.ExpandGate(kind, qubits...)
	if err != nil {
		return err
	}
	c.gates = append(c.gates, op)
	c.ops = append(c.ops, GateOp{Kind: kind, Targets: append([]int(nil), qubits...)})
	return nil
}

// X applies the negation gate to each of the given qubits.
func (c *Circuit) X(qubits ...int) error { return c.apply(GateX, qubits...) }

// H applies the Hadamard gate to each of the given qubits.
func (c *Circuit) H(qubits ...int) error { return c.apply(GateH, qubits...) }

// Z applies the phase-flip gate to each of the given qubits.
func (c *Circuit) Z(qubits ...int) error { return c.apply(GateZ, qubits...) }

// MCX applies a multi-controlled NOT: the target qubit flips exactly when
// every control qubit reads 1. The operator starts as the register
// identity and swaps one pair of rows per index pair produced by the
// fixed-bit iterator, yielding a permutation matrix equivalent to, but
// far cheaper to build than, a tensor expansion of the CNOT family.
func (c *Circuit) MCX(controls []int, target int) error {
	pairs, err := EnumerateFixedPairs(c.n, controls, target)
	if err != nil {
		return err
	}
	op := c.identity.Clone()
	for _, p := range pairs {
		op[p.Zero], op[p.One] = op[p.One], op[p.Zero]
	}
	c.gates = append(c.gates, op)
	c.ops = append(c.ops, GateOp{
		Kind:     GateX,
		Targets:  []int{target},
		Controls: append([]int(nil), controls...),
	})
	return nil
}

// CX applies a NOT to the target qubit controlled by one qubit.
func (c *Circuit) CX(control, target int) error {
	return c.MCX([]int{control}, target)
}

// CCX applies a Toffoli gate: a NOT on the target controlled by two
// qubits.
func (c *Circuit) CCX(control1, control2, target int) error {
	return c.MCX([]int{control1, control2}, target)
}

// Or stores the logical OR of two qubits in the target qubit. The
// CX-CX-CCX sequence reproduces the OR truth table over {0, 1}.
func (c *Circuit) Or(q1, q2, target int) error {
	if err := c.CX(q1, target); err != nil {
		return err
	}
	if err := c.CX(q2, target); err != nil {
		return err
	}
	return c.CCX(q1, q2, target)
}

// Swap exchanges two qubits with the usual three-CNOT construction.
func (c *Circuit) Swap(i, j int) error {
	if err := c.CX(i, j); err != nil {
		return err
	}
	if err := c.CX(j, i); err != nil {
		return err
	}
	return c.CX(i, j)
}

// Barrier records a visual separator across the given qubits, or across
// the whole register when none are given. It has no effect on simulation.
func (c *Circuit) Barrier(qubits ...int) error {
	if err := c.checkQubits(qubits...); err != nil {
		return err
	}
	c.ops = append(c.ops, GateOp{Barrier: true, Targets: append([]int(nil), qubits...)})
	return nil
}

// Run folds the initial state through every gate operator in order via
// row-vector × matrix multiplication and stores the outcome. It is a pure
// function of the initial state and the gate list, and recomputes from
// scratch on every call.
func (c *Circuit) Run() []float64 {
	result := c.state
	for _, gate := range c.gates {
		result = MulVec(result, gate)
	}
	c.result = result
	c.hasRun = true
	return result
}

// Counts runs the circuit and accumulates squared-amplitude probability
// mass per outcome. With no arguments the key is the full basis-state
// index. With measurement positions the key is the value read off those
// bits, and outcomes that reduce to the same key are summed, which
// marginalizes the distribution over the unread qubits. Only keys with
// positive probability appear in the map.
func (c *Circuit) Counts(msrPositions ...int) (map[int]float64, error) {
	if err := c.checkQubits(msrPositions...); err != nil {
		return nil, err
	}
	c.Run()
	counts := make(map[int]float64)
	for i, amp := range c.result {
		if amp == 0 {
			continue
		}
		key := i
		if len(msrPositions) > 0 {
			key = extractBitsWidth(i, c.n, msrPositions)
		}
		counts[key] += amp * amp
	}
	return counts, nil
}

// FormatCounts renders a counts map as one "bits - percent" line per
// outcome in ascending key order, with keys printed width binary digits
// wide.
func FormatCounts(counts map[int]float64, width int) string {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%0*b - %.2f%%\n", width, k, counts[k]*100)
	}
	return sb.String()
}

// certainIndex returns the basis state holding the largest probability
// mass after a run. For the purely classical permutation circuits built
// from X/CX/CCX gates this is the single deterministic outcome.
func (c *Circuit) certainIndex() int {
	idx := 0
	best := 0.0
	for i, amp := range c.result {
		if p := amp * amp; p > best {
			best, idx = p, i
		}
	}
	return idx
}
