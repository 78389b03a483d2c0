package protocol

import (
	"io"
	"time"
)

// HeartbeatInterval is the default period between outbound heartbeat
// records, per spec.md §4.7.
const HeartbeatInterval = 333 * time.Millisecond

// EmitHeartbeat writes one heartbeat record to w, stamped with now().
// The event loop passes wall-clock Unix microseconds
// (time.Now().UnixMicro()), the same clock the Demuxer reads; neither is
// a monotonic clock. The server is expected to echo it back as a misc
// record carrying the same timestamp, which handleMisc uses to compute
// the round trip.
func EmitHeartbeat(w io.Writer, now func() int64) error {
	buf := EncodeHeartbeat(uint64(now()))
	_, err := w.Write(buf[:])
	return err
}
