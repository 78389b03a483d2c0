package client

import (
	"os"

	"github.com/zsiec/prismclient/internal/decoder"
	"github.com/zsiec/prismclient/internal/inputfwd"
)

// NullCompositor is the in-repo test double for the out-of-scope
// compositor collaborator (spec.md §1): its descriptor never becomes
// readable, so the event loop simply never services it, and
// DispatchEvents/Present are no-ops. It lets the client run headless
// until a real platform compositor is wired behind Compositor/Presenter.
type NullCompositor struct {
	idleR *os.File
	idleW *os.File
}

// NewNullCompositor creates a NullCompositor. Close releases the pipe it
// holds open for FD().
func NewNullCompositor() (*NullCompositor, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	return &NullCompositor{idleR: r, idleW: w}, nil
}

func (n *NullCompositor) FD() int { return int(n.idleR.Fd()) }

func (n *NullCompositor) DispatchEvents(fwd *inputfwd.Forwarder) error { return nil }

func (n *NullCompositor) SetPool(pool *decoder.Pool, width, height int) {}

func (n *NullCompositor) Present(out decoder.Output) error { return nil }

// Close releases the idle pipe.
func (n *NullCompositor) Close() error {
	n.idleW.Close()
	return n.idleR.Close()
}
