package client

import (
	"fmt"
	"io"
	"net"
)

// Transport is the demultiplexed byte stream collaborator: a single
// reliable, ordered connection to the capture server (spec.md §3).
type Transport interface {
	io.ReadWriteCloser
	FD() int
}

// tcpTransport wraps a *net.TCPConn, caching its raw file descriptor for
// the poll loop. The descriptor stays valid for the lifetime of the
// connection; net.TCPConn.Close still closes it normally.
type tcpTransport struct {
	conn *net.TCPConn
	fd   int
}

// DialTransport connects to addr ("host:port") and disables Nagle's
// algorithm, per spec.md §6's fixed choice of a plain TCP connection.
func DialTransport(addr string) (Transport, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("client: dial %s: %w", addr, err)
	}
	tcpConn := conn.(*net.TCPConn)
	if err := tcpConn.SetNoDelay(true); err != nil {
		tcpConn.Close()
		return nil, fmt.Errorf("client: set no-delay: %w", err)
	}

	raw, err := tcpConn.SyscallConn()
	if err != nil {
		tcpConn.Close()
		return nil, fmt.Errorf("client: syscall conn: %w", err)
	}
	var fd int
	var ctrlErr error
	if err := raw.Control(func(sysFd uintptr) {
		fd = int(sysFd)
	}); err != nil {
		ctrlErr = err
	}
	if ctrlErr != nil {
		tcpConn.Close()
		return nil, fmt.Errorf("client: raw conn control: %w", ctrlErr)
	}

	return &tcpTransport{conn: tcpConn, fd: fd}, nil
}

func (t *tcpTransport) Read(p []byte) (int, error)  { return t.conn.Read(p) }
func (t *tcpTransport) Write(p []byte) (int, error) { return t.conn.Write(p) }
func (t *tcpTransport) FD() int                     { return t.fd }
func (t *tcpTransport) Close() error                { return t.conn.Close() }
