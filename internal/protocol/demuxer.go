package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/zsiec/prismclient/internal/netbuf"
)

// VideoSink consumes an Annex-B byte span (one or more NAL units) pulled
// from a video record's payload — the bitstream parser plus decoder
// session collaborator, per spec.md §4.7's "payload is handed to the
// bitstream consumer".
type VideoSink interface {
	ConsumeAnnexB(data []byte) error
}

// AudioSink consumes the parsed audio configuration record and every PCM
// record that follows it — the audio ring's producer side.
type AudioSink interface {
	Configure(cfg AudioConfig) error
	Write(pcm []byte)
}

// Demuxer implements the drain loop from spec.md §4.7: append inbound
// bytes from the transport into a growable buffer, then dispatch
// complete records by type until less than one full record remains.
type Demuxer struct {
	buf   *netbuf.Buffer
	video VideoSink
	audio AudioSink
	log   *slog.Logger

	stats        *Stats
	statsEnabled bool

	audioConfigured  bool
	windowStartMicro int64

	now func() int64 // wall-clock Unix microseconds, not monotonic; overridden in tests
}

// Option configures a Demuxer at construction.
type Option func(*Demuxer)

// WithStats enables per-keyframe statistics collection and publication.
func WithStats(s *Stats) Option {
	return func(d *Demuxer) {
		d.stats = s
		d.statsEnabled = true
	}
}

// NewDemuxer creates a Demuxer dispatching video to video and audio to
// audio.
func NewDemuxer(video VideoSink, audio AudioSink, log *slog.Logger, opts ...Option) *Demuxer {
	d := &Demuxer{
		buf:   netbuf.New(64 * 1024),
		video: video,
		audio: audio,
		log:   log,
		now:   nowMicros,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.windowStartMicro = d.now()
	return d
}

func nowMicros() int64 { return time.Now().UnixMicro() }

// OnReadable appends whatever is currently available on r and drains as
// many complete records as are buffered. It returns io.EOF when the peer
// has closed the connection cleanly.
func (d *Demuxer) OnReadable(r io.Reader) error {
	n, err := d.buf.AppendFromReader(r)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("protocol: read transport: %w", err)
	}
	if n == 0 {
		return io.EOF
	}
	if drainErr := d.drain(); drainErr != nil {
		return drainErr
	}
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	return nil
}

func (d *Demuxer) drain() error {
	for d.buf.Size() >= HeaderSize {
		hdr := ParseHeader(d.buf.Bytes())
		total := HeaderSize + int(hdr.Size)
		if d.buf.Size() < total {
			return nil
		}
		payload := d.buf.Bytes()[HeaderSize:total]

		if err := d.dispatch(hdr, payload); err != nil {
			return err
		}
		d.buf.Discard(total)
	}
	return nil
}

func (d *Demuxer) dispatch(hdr Header, payload []byte) error {
	switch hdr.Type {
	case RecordMisc:
		return d.handleMisc(payload)
	case RecordVideo:
		return d.handleVideo(hdr, payload)
	case RecordAudio:
		return d.handleAudio(hdr, payload)
	default:
		d.log.Warn("protocol: unknown record type", "type", hdr.Type)
		return nil
	}
}

func (d *Demuxer) handleMisc(payload []byte) error {
	if len(payload) != 8 {
		return fmt.Errorf("protocol: misc record: payload len %d, want 8", len(payload))
	}
	sent := int64(binary.LittleEndian.Uint64(payload))
	if d.stats != nil {
		d.stats.RecordPing(d.now() - sent)
	}
	return nil
}

func (d *Demuxer) handleVideo(hdr Header, payload []byte) error {
	if d.statsEnabled {
		d.stats.RecordVideoRecord(int64(len(payload)), int64(hdr.Latency))
	}
	if err := d.video.ConsumeAnnexB(payload); err != nil {
		return fmt.Errorf("protocol: video record: %w", err)
	}
	if d.statsEnabled && hdr.Keyframe() {
		now := d.now()
		d.stats.PublishKeyframe(now - d.windowStartMicro)
		d.windowStartMicro = now
	}
	return nil
}

func (d *Demuxer) handleAudio(hdr Header, payload []byte) error {
	if hdr.Keyframe() && !d.audioConfigured {
		cfg, err := ParseAudioConfig(string(payload))
		if err != nil {
			return fmt.Errorf("protocol: audio config: %w", err)
		}
		if err := d.audio.Configure(cfg); err != nil {
			return fmt.Errorf("protocol: audio configure: %w", err)
		}
		d.audioConfigured = true
		return nil
	}
	d.audio.Write(payload)
	return nil
}
