package protocol

import (
	"math/rand"
	"sort"
	"strconv"

	"github.com/pkg/errors"

	"qlight"
)

// Qubit is a single transmitted qubit, held as its two real amplitudes.
type Qubit struct {
	Amp0 float64
	Amp1 float64
}

// Encode prepares a qubit carrying the given bit in the given basis. In
// the computational basis the qubit is the plain basis state; in the
// Hadamard basis it additionally passes through an H gate.
func Encode(bit int, basis Basis) (Qubit, error) {
	if bit != 0 && bit != 1 {
		return Qubit{}, errors.Errorf("bit must be 0 or 1, got %d", bit)
	}
	c, err := qlight.NewCircuitFromBitstring(strconv.Itoa(bit))
	if err != nil {
		return Qubit{}, errors.Wrap(err, "encode qubit")
	}
	if basis == BasisX {
		if err := c.H(0); err != nil {
			return Qubit{}, errors.Wrap(err, "encode qubit")
		}
	}
	res := c.Run()
	return Qubit{Amp0: res[0], Amp1: res[1]}, nil
}

// Measure reads the qubit in the given basis. Measuring in the Hadamard
// basis rotates the state back with an H gate first. The outcome is
// sampled from the resulting probability distribution with the given
// source of randomness.
func (q Qubit) Measure(basis Basis, rng *rand.Rand) (int, error) {
	c, err := qlight.NewCircuitFromAmplitudes([]float64{q.Amp0, q.Amp1})
	if err != nil {
		return 0, errors.Wrap(err, "measure qubit")
	}
	if basis == BasisX {
		if err := c.H(0); err != nil {
			return 0, errors.Wrap(err, "measure qubit")
		}
	}
	counts, err := c.Counts()
	if err != nil {
		return 0, errors.Wrap(err, "measure qubit")
	}
	return sample(counts, rng), nil
}

// sample draws one outcome from a probability distribution keyed by
// basis-state index.
func sample(counts map[int]float64, rng *rand.Rand) int {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	r := rng.Float64()
	acc := 0.0
	for _, k := range keys {
		acc += counts[k]
		if r < acc {
			return k
		}
	}
	return keys[len(keys)-1]
}
