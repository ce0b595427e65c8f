// Package agent implements autonomous agents: entities that hold goals,
// beliefs, and learned knowledge as references into a shared atomspace,
// exchange atom payloads through per-agent FIFO inboxes, and execute simple
// action plans.
//
// An agent moves through a small state machine (Idle, Reasoning, Acting,
// Learning, Communicating, Blocked) where Idle is both the initial state and
// the resting state between cycles. Every operation is synchronous and
// bounded: nothing in this package blocks or waits.
//
// Agents are normally created and destroyed through an agency System, which
// assigns IDs and tracks registration.
package agent
