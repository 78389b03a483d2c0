package hevc

import (
	"testing"

	"github.com/zsiec/prismclient/internal/bitstream"
)

func buildIDRSlice(payload []byte) []byte {
	w := &bitWriter{}
	w.writeBits(0, 1)  // forbidden_zero_bit
	w.writeBits(19, 6) // nal_unit_type = IDR_W_RADL
	w.writeBits(0, 6)
	w.writeBits(1, 3)

	w.writeFlag(true)  // first_slice_segment_in_pic_flag
	w.writeFlag(false) // no_output_of_prior_pics_flag
	w.writeUE(0)       // slice_pic_parameter_set_id
	w.writeUE(2)       // slice_type = I
	w.writeFlag(false) // slice_temporal_mvp_enabled_flag
	w.writeFlag(true)  // slice_sao_luma_flag
	w.writeFlag(true)  // slice_sao_chroma_flag
	w.writeSE(0)        // slice_qp_delta
	w.byteAlign()

	raw := w.bytes()
	return append(raw, payload...)
}

func parsedSPSPPS(t *testing.T) ParamState {
	t.Helper()
	var ps ParamState
	if err := ParseSPS(&ps, bitstream.NewReader(buildSPS(640, 480))); err != nil {
		t.Fatalf("ParseSPS: %v", err)
	}
	if err := ParsePPS(&ps, bitstream.NewReader(buildPPS())); err != nil {
		t.Fatalf("ParsePPS: %v", err)
	}
	return ps
}

func TestParseSliceHeaderIDR(t *testing.T) {
	t.Parallel()

	ps := parsedSPSPPS(t)
	payload := []byte{0xAB, 0xCD, 0xEF, 0x01}
	data := buildIDRSlice(payload)

	r := bitstream.NewReader(data)
	if err := ParseSliceHeader(&ps, bitstream.HEVCNALIDRWRadl, r); err != nil {
		t.Fatalf("ParseSliceHeader: %v", err)
	}

	h := ps.Slice
	if !h.FirstSliceSegmentInPic {
		t.Error("FirstSliceSegmentInPic = false, want true")
	}
	if h.SliceType != SliceTypeI {
		t.Errorf("SliceType = %v, want SliceTypeI", h.SliceType)
	}
	if h.NumRefIdxL0Active != ps.PPS.NumRefIdxL0DefaultActive {
		t.Errorf("NumRefIdxL0Active = %d, want PPS default %d", h.NumRefIdxL0Active, ps.PPS.NumRefIdxL0DefaultActive)
	}
	if h.CollocatedRefIdx != CollocatedRefIdxDefault {
		t.Errorf("CollocatedRefIdx = %#x, want %#x", h.CollocatedRefIdx, CollocatedRefIdxDefault)
	}
	if !h.CollocatedFromL0 {
		t.Error("CollocatedFromL0 = false, want true (default)")
	}

	// The parser stops at slice-data byte offset; everything from there on
	// is untouched slice payload, identical to what we appended.
	got := data[r.ByteOffset()+r.EPBCount():]
	if len(got) != len(payload) {
		t.Fatalf("remaining payload len = %d, want %d", len(got), len(payload))
	}
	for i := range payload {
		if got[i] != payload[i] {
			t.Errorf("payload[%d] = %#x, want %#x", i, got[i], payload[i])
		}
	}
	if h.SliceDataByteOffset != r.ByteOffset() {
		t.Errorf("SliceDataByteOffset = %d, want %d", h.SliceDataByteOffset, r.ByteOffset())
	}
}

func TestParseSliceHeaderRejectsNonFirstSegment(t *testing.T) {
	t.Parallel()

	ps := parsedSPSPPS(t)
	w := &bitWriter{}
	w.writeBits(0, 1)
	w.writeBits(19, 6)
	w.writeBits(0, 6)
	w.writeBits(1, 3)
	w.writeFlag(false) // first_slice_segment_in_pic_flag = 0, unsupported

	r := bitstream.NewReader(w.bytes())
	if err := ParseSliceHeader(&ps, bitstream.HEVCNALIDRWRadl, r); err == nil {
		t.Fatal("expected error for non-first slice segment")
	}
}
