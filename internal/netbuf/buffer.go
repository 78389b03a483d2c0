// Package netbuf implements a growable byte buffer fed by bounded reads
// from an io.Reader, with an in-place prefix-discard operation. It is the
// receive buffer the protocol demuxer accumulates framed records into.
package netbuf

import (
	"fmt"
	"io"
)

// minFreeSpace is the free-space threshold below which Buffer doubles its
// capacity before the next read.
const minFreeSpace = 4 * 1024

// initialCapacity is the capacity a zero-value Buffer grows to on first use.
const initialCapacity = 64 * 1024

// Buffer is an owned, contiguous region holding size logical bytes in the
// prefix buf[0:size]. Capacity doubles on demand; it never shrinks.
type Buffer struct {
	buf  []byte
	size int
}

// New creates an empty Buffer with the given initial capacity. A capacity
// of 0 uses a small default.
func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = initialCapacity
	}
	return &Buffer{buf: make([]byte, capacity)}
}

// Size returns the number of logical bytes currently held.
func (b *Buffer) Size() int {
	return b.size
}

// Bytes returns the logical prefix of the buffer. The returned slice is
// only valid until the next AppendFromReader or Discard call.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.size]
}

// AppendFromReader performs one bounded Read from r, growing the buffer
// first if free space has dropped below minFreeSpace. It returns the
// number of bytes appended and the error Read returned (io.EOF included).
func (b *Buffer) AppendFromReader(r io.Reader) (int, error) {
	if len(b.buf)-b.size < minFreeSpace {
		b.grow()
	}
	n, err := r.Read(b.buf[b.size:])
	b.size += n
	return n, err
}

// grow doubles the buffer's capacity, preserving its logical contents.
func (b *Buffer) grow() {
	newCap := len(b.buf) * 2
	if newCap == 0 {
		newCap = initialCapacity
	}
	grown := make([]byte, newCap)
	copy(grown, b.buf[:b.size])
	b.buf = grown
}

// Discard removes the first n logical bytes, shifting the remainder down
// to the front of the buffer. It panics if n exceeds Size, mirroring the
// source's assertion that a caller never discards more than it has
// accounted for.
func (b *Buffer) Discard(n int) {
	if n < 0 || n > b.size {
		panic(fmt.Sprintf("netbuf: discard %d exceeds size %d", n, b.size))
	}
	if n == 0 {
		return
	}
	copy(b.buf, b.buf[n:b.size])
	b.size -= n
}

// Reset drops all logical content without releasing capacity.
func (b *Buffer) Reset() {
	b.size = 0
}
