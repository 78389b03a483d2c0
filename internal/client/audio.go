package client

import (
	"log/slog"

	"github.com/zsiec/prismclient/internal/audioring"
	"github.com/zsiec/prismclient/internal/protocol"
)

// AudioPipe implements protocol.AudioSink over an SPSC audioring.Ring:
// the demuxer's audio producer side feeding the realtime audio engine's
// callback-thread consumer (spec.md §4.3/§5).
type AudioPipe struct {
	ring *audioring.Ring
	cfg  protocol.AudioConfig
	log  *slog.Logger
}

// NewAudioPipe creates an AudioPipe backed by a ring of capacityBytes.
func NewAudioPipe(capacityBytes int, log *slog.Logger) *AudioPipe {
	return &AudioPipe{ring: audioring.New(capacityBytes), log: log}
}

// Configure implements protocol.AudioSink.
func (a *AudioPipe) Configure(cfg protocol.AudioConfig) error {
	a.cfg = cfg
	return nil
}

// Write implements protocol.AudioSink, pushing PCM into the ring. Any
// bytes the ring can't hold are dropped and logged non-fatally — the
// producer runs ahead of the consumer only transiently; sustained
// overrun means the consumer side has stalled and is an engine-level
// problem, not this pipe's to solve (spec.md §4.3).
func (a *AudioPipe) Write(pcm []byte) {
	n := a.ring.Write(pcm)
	if n < len(pcm) {
		a.log.Warn("audio ring overrun, dropping samples", "wrote", n, "want", len(pcm))
	}
}

// Ring returns the consumer-side ring for the audio engine callback.
func (a *AudioPipe) Ring() *audioring.Ring {
	return a.ring
}

// Config returns the most recently parsed audio configuration.
func (a *AudioPipe) Config() protocol.AudioConfig {
	return a.cfg
}
