package mailbox

import (
	"time"

	"github.com/google/uuid"

	"github.com/atomind-ai/agency/atomspace"
)

// Message is a transient envelope carrying one atom payload between agents.
// It is created on send and consumed exactly once on receive; the payload
// reference it carries transfers to the receiver.
type Message struct {
	// ID is a UUID identifying this envelope.
	ID string

	// Sender is the ID of the sending agent.
	Sender uint64

	// Payload is the atom being delivered. The sender retained a reference
	// for the message; ownership of that reference passes to whoever
	// consumes the message.
	Payload *atomspace.Atom

	// Priority orders messages of equal age. Zero is the default; delivery
	// within a single inbox is strictly FIFO regardless of priority.
	Priority int

	// Timestamp records when the message was created.
	Timestamp time.Time
}

// New creates a message from sender carrying payload, with default priority
// and the current time.
func New(sender uint64, payload *atomspace.Atom) *Message {
	return &Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// Age returns the time elapsed since the message was created. Useful for
// detecting stale messages in slow consumers.
func (m *Message) Age() time.Duration {
	if m.Timestamp.IsZero() {
		return 0
	}
	return time.Since(m.Timestamp)
}
