package protocol

import (
	"math/rand"

	"github.com/pkg/errors"
)

// BB84 runs the Bennett-Brassard 1984 key distribution protocol between
// two agents, Alice and Bob.
//
// Alice draws random bits and random bases and sends Bob the bits
// encoded as qubits in those bases. Bob measures each qubit in a random
// basis of his own. The two then reveal their basis sequences over the
// classical channel and discard every position where the bases differ.
// Finally they compare the bits of a random subset of the surviving
// positions: an eavesdropper who measured the qubits in flight disturbs
// them, so any disagreement in the sample marks the key as compromised.
// The sampled bits are public and are dropped from the key.
type BB84 struct {
	*Protocol
	alice *Agent
	bob   *Agent
}

// Result is the outcome of a BB84 run.
type Result struct {
	// AliceKey and BobKey are the final keys after sifting and sample
	// removal. They agree unless the channel was disturbed.
	AliceKey []int
	BobKey   []int
	// SiftedLength is the number of positions where the bases matched.
	SiftedLength int
	// Compromised reports a disagreement in the sampled bits.
	Compromised bool
}

// NewBB84 returns a BB84 protocol whose agents draw their randomness
// from sources seeded with the given seed.
func NewBB84(seed int64) *BB84 {
	b := &BB84{
		Protocol: NewProtocol(),
		alice:    NewAgent("Alice", rand.New(rand.NewSource(seed))),
		bob:      NewAgent("Bob", rand.New(rand.NewSource(seed+1))),
	}
	b.AddAgent(b.alice, b.bob)
	return b
}

// Alice returns the sending agent.
func (b *BB84) Alice() *Agent { return b.alice }

// Bob returns the receiving agent.
func (b *BB84) Bob() *Agent { return b.bob }

// Run executes the protocol over n qubits and returns the outcome.
func (b *BB84) Run(n int) (*Result, error) {
	if n <= 0 {
		return nil, errors.Errorf("qubit count must be positive, got %d", n)
	}
	if err := b.Start(); err != nil {
		return nil, err
	}
	if err := b.alice.running(); err != nil {
		return nil, err
	}
	if err := b.bob.running(); err != nil {
		return nil, err
	}
	defer b.Stop()

	bobErr := make(chan error, 1)
	go func() { bobErr <- b.runBob(n) }()
	result, err := b.runAlice(n)
	if err != nil {
		return nil, err
	}
	if err := <-bobErr; err != nil {
		return nil, err
	}
	result.BobKey = b.bob.key
	return result, nil
}

// runAlice is Alice's half of the exchange.
func (b *BB84) runAlice(n int) (*Result, error) {
	alice := b.alice
	alice.drawBits(n)
	alice.drawBases(n)

	msg := NewMessage(alice.name, b.bob.name, KindQubits)
	msg.Qubits = make([]Qubit, n)
	for i := 0; i < n; i++ {
		q, err := Encode(alice.bits[i], alice.bases[i])
		if err != nil {
			return nil, err
		}
		msg.Qubits[i] = q
	}
	if err := b.Transmit(msg); err != nil {
		return nil, err
	}

	bobBases, err := alice.receive(KindBases)
	if err != nil {
		return nil, err
	}
	reply := NewMessage(alice.name, b.bob.name, KindBases)
	reply.Bases = alice.bases
	if err := b.Transmit(reply); err != nil {
		return nil, err
	}
	alice.sift(bobBases.Bases)
	sifted := len(alice.key)

	// Sample roughly half of the sifted positions for the check.
	var positions, bits []int
	for i, bit := range alice.key {
		if alice.rng.Intn(2) == 0 {
			positions = append(positions, i)
			bits = append(bits, bit)
		}
	}
	check := NewMessage(alice.name, b.bob.name, KindSample)
	check.Positions = positions
	check.Bits = bits
	if err := b.Transmit(check); err != nil {
		return nil, err
	}
	verdict, err := alice.receive(KindVerdict)
	if err != nil {
		return nil, err
	}
	alice.key = removeAt(alice.key, positions)
	return &Result{
		AliceKey:     alice.key,
		SiftedLength: sifted,
		Compromised:  !verdict.OK,
	}, nil
}

// runBob is Bob's half of the exchange.
func (b *BB84) runBob(n int) error {
	bob := b.bob
	qubits, err := bob.receive(KindQubits)
	if err != nil {
		return err
	}
	if len(qubits.Qubits) != n {
		return errors.Errorf("expected %d qubits, got %d", n, len(qubits.Qubits))
	}
	bob.drawBases(n)
	bob.bits = make([]int, n)
	for i, q := range qubits.Qubits {
		bit, err := q.Measure(bob.bases[i], bob.rng)
		if err != nil {
			return err
		}
		bob.bits[i] = bit
	}

	msg := NewMessage(bob.name, b.alice.name, KindBases)
	msg.Bases = bob.bases
	if err := b.Transmit(msg); err != nil {
		return err
	}
	aliceBases, err := bob.receive(KindBases)
	if err != nil {
		return err
	}
	bob.sift(aliceBases.Bases)

	check, err := bob.receive(KindSample)
	if err != nil {
		return err
	}
	ok := true
	for i, pos := range check.Positions {
		if pos < 0 || pos >= len(bob.key) {
			return errors.Errorf("sample position %d out of range", pos)
		}
		if bob.key[pos] != check.Bits[i] {
			ok = false
		}
	}
	verdict := NewMessage(bob.name, b.alice.name, KindVerdict)
	verdict.OK = ok
	if err := b.Transmit(verdict); err != nil {
		return err
	}
	bob.key = removeAt(bob.key, check.Positions)
	return nil
}

// removeAt returns key without the bits at the given ascending positions.
func removeAt(key []int, positions []int) []int {
	drop := make(map[int]bool, len(positions))
	for _, p := range positions {
		drop[p] = true
	}
	out := make([]int, 0, len(key)-len(positions))
	for i, bit := range key {
		if !drop[i] {
			out = append(out, bit)
		}
	}
	return out
}

// NewMeasureResend returns an intercept-resend eavesdropper: it measures
// every qubit in a random basis and re-encodes the outcome, destroying
// the original state whenever it guesses the basis wrong.
func NewMeasureResend(rng *rand.Rand) Interceptor {
	return func(q Qubit) (Qubit, error) {
		basis := Basis(rng.Intn(2))
		bit, err := q.Measure(basis, rng)
		if err != nil {
			return Qubit{}, err
		}
		return Encode(bit, basis)
	}
}
