// Package protocol implements quantum key distribution protocols on top
// of the qlight simulator. Agents exchange messages over in-process
// channels; qubit payloads travel through a quantum channel that an
// eavesdropper may intercept.
package protocol

import (
	"fmt"

	"github.com/google/uuid"
)

// Basis is a measurement basis for a single qubit.
type Basis int

const (
	// BasisZ is the computational basis.
	BasisZ Basis = iota
	// BasisX is the Hadamard basis.
	BasisX
)

// String returns the conventional basis letter.
func (b Basis) String() string {
	if b == BasisX {
		return "X"
	}
	return "Z"
}

// Kind discriminates the payload of a Message.
type Kind int

const (
	// KindQubits carries encoded qubits over the quantum channel.
	KindQubits Kind = iota
	// KindBases carries a sequence of measurement bases.
	KindBases
	// KindSample carries key bits at sampled positions for the
	// eavesdropping check.
	KindSample
	// KindVerdict carries the receiver's comparison outcome.
	KindVerdict
)

// Message is one unit of communication between two agents. Exactly one
// payload field is set, according to Kind.
type Message struct {
	ID       uuid.UUID
	Sender   string
	Receiver string
	Kind     Kind

	Qubits    []Qubit
	Bases     []Basis
	Positions []int
	Bits      []int
	OK        bool
}

// NewMessage returns a message with a fresh random ID.
func NewMessage(sender, receiver string, kind Kind) *Message {
	return &Message{
		ID:       uuid.New(),
		Sender:   sender,
		Receiver: receiver,
		Kind:     kind,
	}
}

// String identifies the message without dumping its payload.
func (m *Message) String() string {
	return fmt.Sprintf("Message[%s from %s to %s]", m.ID, m.Sender, m.Receiver)
}
