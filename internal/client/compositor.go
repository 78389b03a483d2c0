package client

import "github.com/zsiec/prismclient/internal/inputfwd"

// Compositor is the out-of-scope presenter collaborator: surface
// creation, dmabuf import, viewport scaling, and local input event
// delivery, per spec.md §2/§12's "compositor" row and §4.9's poll set.
type Compositor interface {
	// FD returns the descriptor the event loop polls for readiness.
	FD() int

	// DispatchEvents drains whatever input events are currently pending
	// on the compositor's channel, feeding key/button/motion changes
	// into fwd. A focus-loss notification must call fwd.Handsoff.
	DispatchEvents(fwd *inputfwd.Forwarder) error
}
