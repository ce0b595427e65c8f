package agent

import (
	"github.com/atomind-ai/agency/atomspace"
	"github.com/atomind-ai/agency/mailbox"
)

// Send delivers an atom to another agent's inbox. The atom is retained for
// the message (the reference travels with it), the sender enters
// Communicating and counts the send, and the recipient counts the receipt.
//
// The sender's and recipient's locks are taken one after the other, never
// nested.
func (a *Agent) Send(to *Agent, atom *atomspace.Atom) error {
	if to == nil {
		return ErrNilAgent
	}
	if atom == nil {
		return ErrNilAtom
	}

	a.mu.Lock()
	if a.destroyed {
		a.mu.Unlock()
		return ErrDestroyed
	}
	a.state = StateCommunicating
	a.stats.MessagesSent++
	a.mu.Unlock()

	atom.Retain()
	to.inbox.Push(mailbox.New(a.id, atom))

	to.mu.Lock()
	to.stats.MessagesReceived++
	to.mu.Unlock()

	return nil
}

// Receive dequeues the oldest pending message and returns its atom payload.
// An empty inbox returns nil without error; callers distinguish "no
// message" by the nil handle. The message envelope is discarded and
// ownership of the payload reference passes to the caller, who must
// Release it when done.
func (a *Agent) Receive() *atomspace.Atom {
	msg := a.inbox.Pop()
	if msg == nil {
		return nil
	}
	return msg.Payload
}

// PendingMessages returns the number of messages waiting in the inbox.
func (a *Agent) PendingMessages() int {
	return a.inbox.Len()
}
