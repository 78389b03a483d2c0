package protocol

import "sync/atomic"

// vsyncBudgetMicros and bitrateLatencyFactor feed the estimated end-to-
// end latency formula in spec.md §4.7.
const (
	vsyncBudgetMicros    = 16_667 // one display refresh at 60 Hz
	bitrateLatencyFactor = 1_000_000.0 / 100.0
)

// Stats accumulates per-keyframe-window statistics for the --stats
// overlay. Fields are atomics so Snapshot can be read lock-free from any
// goroutine without touching the hot demux path, in the style of the
// teacher's pipeline forwarding counters. No code in this repository
// reads Snapshot; the event loop does not display the statistics.
type Stats struct {
	pingSumMicros atomic.Int64
	pingSamples   atomic.Int64

	videoBitstreamBytes atomic.Int64
	videoLatencySumMicros atomic.Int64
	videoFrameCount       atomic.Int64

	// Published once per keyframe window; read by the overlay.
	avgPingMicros     atomic.Int64
	mbpsX1000         atomic.Int64 // Mbps * 1000, avoids float atomics
	estLatencyMicros  atomic.Int64
}

// RecordPing folds one heartbeat round-trip sample into the rolling sum.
func (s *Stats) RecordPing(rttMicros int64) {
	s.pingSumMicros.Add(rttMicros)
	s.pingSamples.Add(1)
}

// AvgPingMicros returns the arithmetic mean of every recorded ping, or 0
// if none have been recorded yet.
func (s *Stats) AvgPingMicros() int64 {
	n := s.pingSamples.Load()
	if n == 0 {
		return 0
	}
	return s.pingSumMicros.Load() / n
}

// RecordVideoRecord folds one video record's size and server-reported
// latency into the current keyframe window's accumulators.
func (s *Stats) RecordVideoRecord(size, latencyMicros int64) {
	s.videoBitstreamBytes.Add(size)
	s.videoLatencySumMicros.Add(latencyMicros)
	s.videoFrameCount.Add(1)
}

// KeyframeWindow holds the computed statistics published at each
// keyframe, per spec.md §4.7's formula: estimated end-to-end latency =
// avg_frame_latency + ping + 2*vsync_budget + bitrate*1s/100Mbit.
type KeyframeWindow struct {
	AvgPingMicros    int64
	MbpsX1000        int64
	EstLatencyMicros int64
}

// PublishKeyframe computes and records a KeyframeWindow from the
// accumulated window, then resets the window accumulators. windowMicros
// is the wall-clock duration the accumulated bytes/latency span.
func (s *Stats) PublishKeyframe(windowMicros int64) KeyframeWindow {
	frames := s.videoFrameCount.Swap(0)
	bytes := s.videoBitstreamBytes.Swap(0)
	latSum := s.videoLatencySumMicros.Swap(0)

	var avgFrameLatency int64
	if frames > 0 {
		avgFrameLatency = latSum / frames
	}

	var mbps float64
	if windowMicros > 0 {
		mbps = float64(bytes) * 8 / float64(windowMicros)
	}

	ping := s.AvgPingMicros()
	estLatency := avgFrameLatency + ping + 2*vsyncBudgetMicros + int64(mbps*bitrateLatencyFactor)

	w := KeyframeWindow{
		AvgPingMicros:    ping,
		MbpsX1000:        int64(mbps * 1000),
		EstLatencyMicros: estLatency,
	}
	s.avgPingMicros.Store(w.AvgPingMicros)
	s.mbpsX1000.Store(w.MbpsX1000)
	s.estLatencyMicros.Store(w.EstLatencyMicros)
	return w
}

// Snapshot returns the most recently published keyframe window, readable
// lock-free from any goroutine.
func (s *Stats) Snapshot() KeyframeWindow {
	return KeyframeWindow{
		AvgPingMicros:    s.avgPingMicros.Load(),
		MbpsX1000:        s.mbpsX1000.Load(),
		EstLatencyMicros: s.estLatencyMicros.Load(),
	}
}
