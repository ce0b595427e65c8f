package mailbox

import "sync"

// Inbox is a FIFO queue of messages with its own lock. Push and Pop are
// synchronous and non-blocking.
type Inbox struct {
	mu    sync.Mutex
	queue []*Message
}

// NewInbox returns an empty inbox.
func NewInbox() *Inbox {
	return &Inbox{}
}

// Push appends a message to the tail of the queue. Nil messages are ignored.
func (in *Inbox) Push(m *Message) {
	if m == nil {
		return
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	in.queue = append(in.queue, m)
}

// Pop removes and returns the oldest message, or nil if the inbox is empty.
// An empty inbox is a normal outcome, not an error.
func (in *Inbox) Pop() *Message {
	in.mu.Lock()
	defer in.mu.Unlock()

	if len(in.queue) == 0 {
		return nil
	}
	m := in.queue[0]
	in.queue[0] = nil
	in.queue = in.queue[1:]
	return m
}

// Len returns the number of pending messages.
func (in *Inbox) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.queue)
}
