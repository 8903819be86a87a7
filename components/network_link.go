package components

import "github.com/google/uuid"

// Sender is the send half of an externally owned transport. Send must not
// block the frame; failures are reported, never retried by the caller.
type Sender interface {
	Send(payload string) error
}

// NetworkLink attaches a transport to an entity
type NetworkLink struct {
	Transport Sender
	// Session tags log lines for this link
	Session uuid.UUID
}

// NewNetworkLink wraps t with a fresh session id
func NewNetworkLink(t Sender) NetworkLink {
	return NetworkLink{Transport: t, Session: uuid.New()}
}
