// Package protocol implements the client side of the transport framing
// described in spec.md §6: a single TCP connection carrying type-tagged
// records (misc/video/audio), demultiplexed into the bitstream parser,
// the audio ring, and a periodic heartbeat.
package protocol

import "encoding/binary"

// HeaderSize is the on-wire size of a record header, per spec.md §6:
// u8 type, u8 flags, u64 latency, u32 size.
const HeaderSize = 14

// RecordType tags the payload that follows a Header.
type RecordType uint8

const (
	RecordMisc  RecordType = 1
	RecordVideo RecordType = 2
	RecordAudio RecordType = 3
)

// FlagKeyframe marks a video record as a keyframe or an audio record as
// the initial configuration record.
const FlagKeyframe = 1 << 0

// Header is one parsed record header.
type Header struct {
	Type    RecordType
	Flags   uint8
	Latency uint64 // microseconds, server-side
	Size    uint32 // payload length in bytes
}

// Keyframe reports whether FlagKeyframe is set.
func (h Header) Keyframe() bool { return h.Flags&FlagKeyframe != 0 }

// ParseHeader decodes a Header from the first HeaderSize bytes of buf.
// buf must be at least HeaderSize bytes long.
func ParseHeader(buf []byte) Header {
	_ = buf[:HeaderSize] // bounds check hint
	return Header{
		Type:    RecordType(buf[0]),
		Flags:   buf[1],
		Latency: binary.LittleEndian.Uint64(buf[2:10]),
		Size:    binary.LittleEndian.Uint32(buf[10:14]),
	}
}

// HeartbeatSize is the on-wire size of the outbound heartbeat record:
// u32 type (0xFFFFFFFF sentinel) + u64 timestamp.
const HeartbeatSize = 12

// HeartbeatType is the sentinel value that marks the outbound heartbeat
// record and distinguishes it from the inbound header framing.
const HeartbeatType uint32 = 0xFFFFFFFF

// EncodeHeartbeat packs a heartbeat record carrying timestampMicros, the
// client's emission time in microseconds.
func EncodeHeartbeat(timestampMicros uint64) [HeartbeatSize]byte {
	var buf [HeartbeatSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], HeartbeatType)
	binary.LittleEndian.PutUint64(buf[4:12], timestampMicros)
	return buf
}
