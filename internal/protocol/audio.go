package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Channel is a positional channel-map enumeration value, matching the
// realtime audio engine's channel-position enum per spec.md §6. The
// exact integer values are this client's own stable assignment (the
// wire format carries channel *names*, not numbers); order follows the
// spec's listing.
type Channel int

const (
	ChannelFL Channel = iota
	ChannelFR
	ChannelFC
	ChannelLFE
	ChannelSL
	ChannelSR
	ChannelFLC
	ChannelFRC
	ChannelRC
	ChannelRL
	ChannelRR
	ChannelTC
	ChannelTFL
	ChannelTFC
	ChannelTFR
	ChannelTRL
	ChannelTRC
	ChannelTRR
	ChannelRLC
	ChannelRRC
	ChannelFLW
	ChannelFRW
	ChannelLFE2
	ChannelFLH
	ChannelFCH
	ChannelFRH
	ChannelTFLC
	ChannelTFRC
	ChannelTSL
	ChannelTSR
	ChannelLLFE
	ChannelRLFE
	ChannelBC
	ChannelBLC
	ChannelBRC
)

var channelNames = map[string]Channel{
	"FL": ChannelFL, "FR": ChannelFR, "FC": ChannelFC, "LFE": ChannelLFE,
	"SL": ChannelSL, "SR": ChannelSR, "FLC": ChannelFLC, "FRC": ChannelFRC,
	"RC": ChannelRC, "RL": ChannelRL, "RR": ChannelRR, "TC": ChannelTC,
	"TFL": ChannelTFL, "TFC": ChannelTFC, "TFR": ChannelTFR, "TRL": ChannelTRL,
	"TRC": ChannelTRC, "TRR": ChannelTRR, "RLC": ChannelRLC, "RRC": ChannelRRC,
	"FLW": ChannelFLW, "FRW": ChannelFRW, "LFE2": ChannelLFE2, "FLH": ChannelFLH,
	"FCH": ChannelFCH, "FRH": ChannelFRH, "TFLC": ChannelTFLC, "TFRC": ChannelTFRC,
	"TSL": ChannelTSL, "TSR": ChannelTSR, "LLFE": ChannelLLFE, "RLFE": ChannelRLFE,
	"BC": ChannelBC, "BLC": ChannelBLC, "BRC": ChannelBRC,
}

// AudioConfig is the parsed form of the first audio record's textual
// configuration payload, "<rate>:<channel1>,<channel2>,...".
type AudioConfig struct {
	SampleRate int
	Channels   []Channel
}

// ParseAudioConfig parses the configuration string carried by the first
// (keyframe-flagged) audio record. sampleRate must be 44100 or 48000 per
// spec.md §4.7; any other rate, or an unrecognised channel name, fails.
func ParseAudioConfig(s string) (AudioConfig, error) {
	rateStr, chanStr, ok := strings.Cut(s, ":")
	if !ok {
		return AudioConfig{}, fmt.Errorf("protocol: audio config %q: missing ':'", s)
	}

	rate, err := strconv.Atoi(rateStr)
	if err != nil {
		return AudioConfig{}, fmt.Errorf("protocol: audio config %q: bad rate: %w", s, err)
	}
	if rate != 44100 && rate != 48000 {
		return AudioConfig{}, fmt.Errorf("protocol: audio config %q: unsupported rate %d", s, rate)
	}

	names := strings.Split(chanStr, ",")
	channels := make([]Channel, 0, len(names))
	for _, name := range names {
		ch, ok := channelNames[name]
		if !ok {
			return AudioConfig{}, fmt.Errorf("protocol: audio config %q: unknown channel %q", s, name)
		}
		channels = append(channels, ch)
	}

	return AudioConfig{SampleRate: rate, Channels: channels}, nil
}

// BytesPerFrame returns the PCM frame size in bytes: 2 bytes per sample
// (signed 16-bit little-endian) times the channel count.
func (c AudioConfig) BytesPerFrame() int {
	return 2 * len(c.Channels)
}
