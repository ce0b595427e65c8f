// Package mailbox implements the inter-agent messaging layer: a transient
// Message envelope carrying one atom payload, and a per-agent FIFO Inbox.
//
// Delivery is in-process and non-blocking. Pop on an empty inbox returns
// nil rather than waiting; there is no retry, timeout, or persistence.
package mailbox
