package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/zsiec/prismclient/internal/inputfwd"
	"github.com/zsiec/prismclient/internal/protocol"
)

// pollIdx names the fixed slot each descriptor occupies in the poll set,
// grounded on spec.md §4.9's fixed service order: transport → compositor
// events → timer.
const (
	pollTransport = iota
	pollCompositor
	pollTimer
	pollWake
	pollSetSize
)

// Loop is the single-threaded poll-based event loop (C9): it owns the
// transport, the demuxer, the input forwarder, and (if input forwarding
// is enabled) the compositor. Everything except the audio ring's
// consumer side is single-owner on this goroutine.
type Loop struct {
	transport  Transport
	demux      *protocol.Demuxer
	compositor Compositor
	forwarder  *inputfwd.Forwarder

	heartbeatInterval time.Duration
	log               *slog.Logger

	timerFD int
}

// NewLoop assembles a Loop. compositor and forwarder may be nil when
// --no-input disables local input forwarding.
func NewLoop(transport Transport, demux *protocol.Demuxer, compositor Compositor, forwarder *inputfwd.Forwarder, log *slog.Logger) *Loop {
	return &Loop{
		transport:         transport,
		demux:             demux,
		compositor:        compositor,
		forwarder:         forwarder,
		heartbeatInterval: protocol.HeartbeatInterval,
		log:               log,
		timerFD:           -1,
	}
}

// Run polls the transport, the compositor's event channel, and a
// monotonic interval timer until ctx is cancelled or a service call
// fails. It returns nil on clean peer-closed shutdown or context
// cancellation, and a non-nil error for any other failure — per
// spec.md §4.9/§7, resources are released in reverse acquisition order
// via defer as Run unwinds.
func (l *Loop) Run(ctx context.Context) error {
	timerFD, err := unix.TimerfdCreate(unix.CLOCK_MONOTONIC, 0)
	if err != nil {
		return fmt.Errorf("client: timerfd_create: %w", err)
	}
	defer unix.Close(timerFD)
	l.timerFD = timerFD

	spec := itimerSpecFor(l.heartbeatInterval)
	if err := unix.TimerfdSettime(timerFD, 0, &spec, nil); err != nil {
		return fmt.Errorf("client: timerfd_settime: %w", err)
	}

	wakeR, wakeW, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("client: wake pipe: %w", err)
	}
	defer wakeR.Close()
	defer wakeW.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			wakeW.Write([]byte{0})
		case <-done:
		}
	}()

	pollFds := make([]unix.PollFd, pollSetSize)
	pollFds[pollTransport] = unix.PollFd{Fd: int32(l.transport.FD()), Events: unix.POLLIN}
	pollFds[pollTimer] = unix.PollFd{Fd: int32(timerFD), Events: unix.POLLIN}
	pollFds[pollWake] = unix.PollFd{Fd: int32(wakeR.Fd()), Events: unix.POLLIN}
	if l.compositor != nil {
		pollFds[pollCompositor] = unix.PollFd{Fd: int32(l.compositor.FD()), Events: unix.POLLIN}
	} else {
		pollFds[pollCompositor] = unix.PollFd{Fd: -1}
	}

	for {
		_, err := unix.Poll(pollFds, -1)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("client: poll: %w", err)
		}

		if pollFds[pollWake].Revents&unix.POLLIN != 0 {
			return nil
		}

		if pollFds[pollTransport].Revents&unix.POLLIN != 0 {
			if err := l.demux.OnReadable(l.transport); err != nil {
				if errors.Is(err, io.EOF) {
					l.log.Info("client: peer closed connection")
					return nil
				}
				return fmt.Errorf("client: transport: %w", err)
			}
		}

		if l.compositor != nil && pollFds[pollCompositor].Revents&unix.POLLIN != 0 {
			if err := l.compositor.DispatchEvents(l.forwarder); err != nil {
				return fmt.Errorf("client: compositor: %w", err)
			}
			if l.forwarder.Failed() {
				return fmt.Errorf("client: input forwarding failed")
			}
		}

		if pollFds[pollTimer].Revents&unix.POLLIN != 0 {
			if err := l.serviceTimer(); err != nil {
				return err
			}
		}
	}
}

// serviceTimer drains the timerfd's expiration count and emits one
// heartbeat record on the transport.
func (l *Loop) serviceTimer() error {
	var buf [8]byte
	if _, err := unix.Read(l.timerFD, buf[:]); err != nil {
		return fmt.Errorf("client: timerfd read: %w", err)
	}
	if err := protocol.EmitHeartbeat(l.transport, func() int64 { return time.Now().UnixMicro() }); err != nil {
		return fmt.Errorf("client: emit heartbeat: %w", err)
	}
	return nil
}

func itimerSpecFor(interval time.Duration) unix.ItimerSpec {
	ts := unix.NsecToTimespec(interval.Nanoseconds())
	return unix.ItimerSpec{Interval: ts, Value: ts}
}
