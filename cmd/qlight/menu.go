package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"qlight"
	"qlight/protocol"
)

// demoResult is what a demo produces for the result view.
type demoResult struct {
	diagram string
	counts  string
	qasm    string
	note    string
}

// demo is one runnable entry of the picker.
type demo struct {
	name        string
	description string
	prompt      string
	placeholder string
	run         func(args []int) (*demoResult, error)
}

// demoMenu defines the demos available in the picker.
var demoMenu = []demo{
	{
		name:        "Bell pair",
		description: "Entangle two qubits into a Bell state",
		run:         runBell,
	},
	{
		name:        "Half adder",
		description: "Add two single bits",
		prompt:      "bits a b",
		placeholder: "1 1",
		run:         runHalfAdder,
	},
	{
		name:        "Ripple-carry sum",
		description: "Add two non-negative integers",
		prompt:      "operands a b",
		placeholder: "3 5",
		run:         runSum,
	},
	{
		name:        "Inner product",
		description: "GF(2) inner product of two bit vectors",
		prompt:      "operands a b",
		placeholder: "5 6",
		run:         runInnerProduct,
	},
	{
		name:        "Random register",
		description: "Uniform superposition over n qubits",
		prompt:      "qubit count n",
		placeholder: "3",
		run:         runRandom,
	},
	{
		name:        "BB84 key exchange",
		description: "Quantum key distribution between Alice and Bob",
		prompt:      "qubit count n, seed, intercept (0/1)",
		placeholder: "32 1 0",
		run:         runBB84,
	},
}

// parseArgs splits a whitespace-separated list of integers, requiring
// exactly want of them.
func parseArgs(input string, want int) ([]int, error) {
	fields := strings.Fields(input)
	if len(fields) != want {
		return nil, errors.Errorf("expected %d values, got %d", want, len(fields))
	}
	args := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "bad value %q", f)
		}
		args[i] = v
	}
	return args, nil
}

func circuitResult(c *qlight.Circuit, note string) (*demoResult, error) {
	counts, err := c.Counts()
	if err != nil {
		return nil, err
	}
	return &demoResult{
		diagram: c.Diagram(),
		counts:  qlight.FormatCounts(counts, c.N()),
		qasm:    c.ToQASM(),
		note:    note,
	}, nil
}

func runBell([]int) (*demoResult, error) {
	b, err := qlight.NewBellCircuit(2)
	if err != nil {
		return nil, err
	}
	if err := b.Correlate(0, 1); err != nil {
		return nil, err
	}
	return circuitResult(b.Circuit, "outcomes 00 and 11 each carry half the probability mass")
}

func runHalfAdder(args []int) (*demoResult, error) {
	h, err := qlight.NewHalfAdderCircuit(args[0], args[1])
	if err != nil {
		return nil, err
	}
	sum := h.Sum()
	return circuitResult(h.Circuit, fmt.Sprintf("%d + %d = %d", args[0], args[1], sum))
}

func runSum(args []int) (*demoResult, error) {
	s, err := qlight.NewSumCircuit(args[0], args[1])
	if err != nil {
		return nil, err
	}
	sum := s.Sum()
	return circuitResult(s.Circuit, fmt.Sprintf("%d + %d = %d", args[0], args[1], sum))
}

func runInnerProduct(args []int) (*demoResult, error) {
	p, err := qlight.NewBooleanInnerProductCircuit(args[0], args[1])
	if err != nil {
		return nil, err
	}
	odd := p.InnerProduct()
	return circuitResult(p.Circuit, fmt.Sprintf("<%b,%b> odd parity: %v", args[0], args[1], odd))
}

func runRandom(args []int) (*demoResult, error) {
	r, err := qlight.NewRandomCircuit(args[0])
	if err != nil {
		return nil, err
	}
	return circuitResult(r.Circuit, "every outcome is equally likely")
}

func runBB84(args []int) (*demoResult, error) {
	n, seed, intercept := args[0], int64(args[1]), args[2] != 0
	b := protocol.NewBB84(seed)
	// Both agents emit events from their own goroutines.
	var mu sync.Mutex
	var transcript strings.Builder
	b.OnEvent(func(e protocol.Event) {
		mu.Lock()
		defer mu.Unlock()
		if e.Message != nil {
			fmt.Fprintf(&transcript, "%s: %s\n", e.Name, e.Message)
			return
		}
		fmt.Fprintf(&transcript, "%s\n", e.Name)
	})
	if intercept {
		b.SetInterceptor(protocol.NewMeasureResend(newEveRand(seed)))
	}
	result, err := b.Run(n)
	if err != nil {
		return nil, err
	}
	note := fmt.Sprintf(
		"sifted %d of %d qubits, key length %d, compromised: %v\nAlice: %v\nBob:   %v",
		result.SiftedLength, n, len(result.AliceKey), result.Compromised,
		result.AliceKey, result.BobKey,
	)
	return &demoResult{diagram: transcript.String(), note: note}, nil
}

// newEveRand seeds the eavesdropper's randomness apart from the agents'.
func newEveRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed + 100))
}

// renderMenu renders the demo picker.
func (m Model) renderMenu() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("qlight demos"))
	sb.WriteString("\n\n")
	for i, d := range demoMenu {
		if i == m.menuIdx {
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf(" ▸ %-18s", d.name)))
			sb.WriteString(dimStyle.Render(d.description))
		} else {
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("   %-18s", d.name)))
			sb.WriteString(dimStyle.Render(d.description))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ⏎ Run  q Quit"))
	return menuBorderStyle.Render(sb.String())
}
