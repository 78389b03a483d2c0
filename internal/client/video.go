package client

import (
	"fmt"

	"github.com/zsiec/prismclient/internal/bitstream"
	"github.com/zsiec/prismclient/internal/decoder"
	"github.com/zsiec/prismclient/internal/hevc"
)

// Presenter receives a decoded picture's output surface for display —
// the zero-copy compositor path's consuming half (spec.md §4.6). The
// pool itself is handed over once, at session init, via SetPool.
type Presenter interface {
	SetPool(pool *decoder.Pool, width, height int)
	Present(out decoder.Output) error
}

// VideoPipe implements protocol.VideoSink. It scans each record's
// Annex-B span for NAL units, folds parameter sets into a hevc.ParamState,
// and drives a decoder.Session once parameters are ready and a slice
// header parses — the glue spec.md §4.7 describes as "payload is handed
// to the bitstream consumer (parser + decoder)".
type VideoPipe struct {
	params   hevc.ParamState
	session  *decoder.Session
	present  Presenter
	poolSent bool
}

// NewVideoPipe creates a VideoPipe driving session and forwarding decoded
// output to present.
func NewVideoPipe(session *decoder.Session, present Presenter) *VideoPipe {
	return &VideoPipe{session: session, present: present}
}

// ConsumeAnnexB implements protocol.VideoSink.
func (v *VideoPipe) ConsumeAnnexB(data []byte) error {
	scanner := bitstream.NewScanner(data)
	for {
		nal, ok := scanner.Next()
		if !ok {
			return nil
		}
		if err := v.consumeNAL(nal); err != nil {
			return err
		}
	}
}

func (v *VideoPipe) consumeNAL(nal bitstream.NALUnit) error {
	raw := nal.Bytes()
	if len(raw) < 2 {
		return nil
	}
	nalType := bitstream.HEVCNALType(raw[0])

	switch {
	case nalType == bitstream.HEVCNALSPS:
		if err := hevc.ParseSPS(&v.params, nal.Reader); err != nil {
			return fmt.Errorf("client: sps: %w", err)
		}
		return nil
	case nalType == bitstream.HEVCNALPPS:
		if err := hevc.ParsePPS(&v.params, nal.Reader); err != nil {
			return fmt.Errorf("client: pps: %w", err)
		}
		return nil
	case bitstream.IsSliceSegment(nalType):
		return v.consumeSlice(nalType, raw, nal.Reader)
	default:
		return nil // VPS, AUD, SEI, filler: nothing this decoder needs
	}
}

func (v *VideoPipe) consumeSlice(nalType byte, raw []byte, r *bitstream.Reader) error {
	if !v.params.Ready() {
		return nil // parameter sets not seen yet; drop slices until both an SPS and a PPS have been parsed
	}
	if err := hevc.ParseSliceHeader(&v.params, nalType, r); err != nil {
		return fmt.Errorf("client: slice header: %w", err)
	}

	if v.session.State() == decoder.StateUninitialised {
		if err := v.session.Init(v.params.SPS.Width, v.params.SPS.Height); err != nil {
			return fmt.Errorf("client: decoder init: %w", err)
		}
	}
	if !v.poolSent {
		v.present.SetPool(v.session.Pool(), v.params.SPS.Width, v.params.SPS.Height)
		v.poolSent = true
	}

	out, err := v.session.DecodePicture(nalType, &v.params.SPS, &v.params.Slice, raw)
	if err != nil {
		return fmt.Errorf("client: decode picture: %w", err)
	}
	if err := v.present.Present(out); err != nil {
		return fmt.Errorf("client: present: %w", err)
	}
	return nil
}
