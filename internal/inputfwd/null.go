package inputfwd

// NullSink is the in-repo test double for the out-of-scope virtual-HID
// device node (spec.md §1): every report is accepted and discarded, and
// CreateDescriptor always succeeds, so Forwarder can be exercised (and
// the client can run with --no-input effectively disabled at the sink
// rather than the caller) without a real uhid character device.
type NullSink struct{}

func (NullSink) Write(p []byte) (int, error)              { return len(p), nil }
func (NullSink) Close() error                              { return nil }
func (NullSink) CreateDescriptor(desc UHIDDescriptor) error { return nil }
