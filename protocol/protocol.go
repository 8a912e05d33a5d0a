package protocol

import (
	"github.com/pkg/errors"
)

// Event names emitted during a protocol run.
const (
	EventStart              = "start"
	EventMessageSent        = "message_sent"
	EventMessageTransmitted = "message_transmitted"
	EventMessageReceived    = "message_received"
	EventStop               = "stop"
)

// Event is a protocol lifecycle notification. Message is nil for start
// and stop events.
type Event struct {
	Name    string
	Message *Message
}

// Observer receives protocol events as they happen.
type Observer func(Event)

// Interceptor taps the quantum channel. It sees every qubit in flight
// and returns the qubit that travels on, which lets an eavesdropper
// measure and re-encode the stream.
type Interceptor func(Qubit) (Qubit, error)

// Protocol connects agents and carries their messages. Qubit payloads
// pass through the interceptor when one is installed; classical payloads
// are delivered untouched.
type Protocol struct {
	agents      map[string]*Agent
	observers   []Observer
	interceptor Interceptor
}

// NewProtocol returns a protocol with no agents attached.
func NewProtocol() *Protocol {
	return &Protocol{agents: make(map[string]*Agent)}
}

// AddAgent attaches agents to the protocol.
func (p *Protocol) AddAgent(agents ...*Agent) {
	for _, a := range agents {
		p.agents[a.name] = a
	}
}

// OnEvent registers an observer for protocol events.
func (p *Protocol) OnEvent(o Observer) {
	p.observers = append(p.observers, o)
}

// SetInterceptor installs an eavesdropper on the quantum channel.
func (p *Protocol) SetInterceptor(i Interceptor) {
	p.interceptor = i
}

func (p *Protocol) emit(name string, msg *Message) {
	for _, o := range p.observers {
		o(Event{Name: name, Message: msg})
	}
}

// Start moves every agent from idle to started.
func (p *Protocol) Start() error {
	for _, a := range p.agents {
		if err := a.start(); err != nil {
			return err
		}
	}
	p.emit(EventStart, nil)
	return nil
}

// Stop moves every agent to stopped.
func (p *Protocol) Stop() {
	for _, a := range p.agents {
		a.stop()
	}
	p.emit(EventStop, nil)
}

// Transmit carries a message from its sender to its receiver's inbox.
// Qubit payloads pass through the interceptor mid-flight.
func (p *Protocol) Transmit(msg *Message) error {
	receiver, ok := p.agents[msg.Receiver]
	if !ok {
		return errors.Errorf("unknown receiver %q", msg.Receiver)
	}
	p.emit(EventMessageSent, msg)
	if msg.Kind == KindQubits && p.interceptor != nil {
		tapped := make([]Qubit, len(msg.Qubits))
		for i, q := range msg.Qubits {
			out, err := p.interceptor(q)
			if err != nil {
				return errors.Wrap(err, "interceptor")
			}
			tapped[i] = out
		}
		msg.Qubits = tapped
	}
	p.emit(EventMessageTransmitted, msg)
	receiver.inbox <- msg
	p.emit(EventMessageReceived, msg)
	return nil
}
