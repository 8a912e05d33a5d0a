package protocol

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// State tracks an agent through its lifecycle.
type State int

const (
	// StateIdle means the agent has not joined a protocol run yet.
	StateIdle State = iota
	// StateStarted means the agent joined a run but is not exchanging
	// messages yet.
	StateStarted
	// StateRunning means the agent is exchanging messages.
	StateRunning
	// StateStopped means the agent finished or aborted its run.
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarted:
		return "started"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Agent is one participant in a protocol run. Each agent owns an inbox
// that the protocol delivers messages to, a private source of
// randomness, and the key material it accumulates during the run.
type Agent struct {
	name  string
	state State
	inbox chan *Message
	rng   *rand.Rand

	bits  []int
	bases []Basis
	key   []int
}

// NewAgent returns an idle agent. The random source drives every choice
// the agent makes, so a seeded source gives reproducible runs.
func NewAgent(name string, rng *rand.Rand) *Agent {
	return &Agent{
		name:  name,
		state: StateIdle,
		inbox: make(chan *Message, 8),
		rng:   rng,
	}
}

// Name returns the agent's name.
func (a *Agent) Name() string { return a.name }

// State returns the agent's current lifecycle state.
func (a *Agent) State() State { return a.state }

// Key returns the key bits the agent holds after a completed run.
func (a *Agent) Key() []int { return a.key }

// start moves the agent from idle to started.
func (a *Agent) start() error {
	if a.state != StateIdle {
		return errors.Errorf("agent %s: cannot start from state %s", a.name, a.state)
	}
	a.state = StateStarted
	return nil
}

// running moves the agent from started to running.
func (a *Agent) running() error {
	if a.state != StateStarted {
		return errors.Errorf("agent %s: cannot run from state %s", a.name, a.state)
	}
	a.state = StateRunning
	return nil
}

// stop moves the agent to stopped from any active state.
func (a *Agent) stop() {
	a.state = StateStopped
}

// drawBits fills the agent's bit sequence with n random bits.
func (a *Agent) drawBits(n int) {
	a.bits = make([]int, n)
	for i := range a.bits {
		a.bits[i] = a.rng.Intn(2)
	}
}

// drawBases fills the agent's basis sequence with n random bases.
func (a *Agent) drawBases(n int) {
	a.bases = make([]Basis, n)
	for i := range a.bases {
		a.bases[i] = Basis(a.rng.Intn(2))
	}
}

// receive blocks until the next message arrives, checking that it is of
// the expected kind.
func (a *Agent) receive(kind Kind) (*Message, error) {
	msg, ok := <-a.inbox
	if !ok {
		return nil, errors.Errorf("agent %s: channel closed", a.name)
	}
	if msg.Kind != kind {
		return nil, errors.Errorf("agent %s: expected message kind %d, got %d", a.name, kind, msg.Kind)
	}
	return msg, nil
}

// sift keeps the bits at positions where both basis sequences agree and
// returns the kept positions.
func (a *Agent) sift(other []Basis) []int {
	var kept []int
	a.key = a.key[:0]
	for i, b := range a.bases {
		if b == other[i] {
			kept = append(kept, i)
			a.key = append(a.key, a.bits[i])
		}
	}
	return kept
}

// String implements fmt.Stringer.
func (a *Agent) String() string {
	return fmt.Sprintf("Agent[%s %s]", a.name, a.state)
}
