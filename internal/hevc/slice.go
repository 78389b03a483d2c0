package hevc

import (
	"fmt"

	"github.com/zsiec/prismclient/internal/bitstream"
)

// parseSliceHeader reads the slice-segment-header subset this decoder
// supports. ps.PPS and ps.SPS must already hold the most recently parsed
// parameter sets; nalType selects the IRAP-specific fields.
func parseSliceHeader(h *SliceHeader, ps *ParamState, nalType byte, r *bitstream.Reader) {
	firstSliceSegment := r.MustReadFlag()
	assertEq("first_slice_segment_in_pic_flag", boolBit(firstSliceSegment), 1)
	h.FirstSliceSegmentInPic = true

	if bitstream.IsIRAP(nalType) {
		h.NoOutputOfPriorPics = r.MustReadFlag()
		assertEq("no_output_of_prior_pics_flag", boolBit(h.NoOutputOfPriorPics), 0)
	}

	r.MustReadUE() // slice_pic_parameter_set_id, matched by caller's dispatch

	sliceType := r.MustReadUE()
	switch sliceType {
	case 0: // B slice — out of scope
		panic(&bitstream.ReadError{Err: fmt.Errorf("B slices unsupported: %w", ErrUnsupportedStream)})
	case 1:
		h.SliceType = SliceTypeP
	case 2:
		h.SliceType = SliceTypeI
	default:
		panic(&bitstream.ReadError{Err: fmt.Errorf("slice_type %d out of range: %w", sliceType, ErrUnsupportedStream)})
	}

	isIDR := bitstream.IsIDR(nalType)
	if !isIDR {
		h.PicOrderCntLSB = int(r.MustReadBits(ps.SPS.Log2MaxPicOrderCntLSB))

		if r.MustReadFlag() { // short_term_ref_pic_set_sps_flag
			n := len(ps.SPS.ShortTermRefPicSets)
			bits := 0
			for (1 << uint(bits)) < n {
				bits++
			}
			idx := 0
			if bits > 0 {
				idx = int(r.MustReadBits(bits))
			}
			h.ShortTermRefPicSetSIdx = idx
			h.ShortTermRefPicSet = ps.SPS.ShortTermRefPicSets[idx]
		} else {
			h.ShortTermRefPicSetSIdx = -1
			h.ShortTermRefPicSet = parseShortTermRefPicSet(r, len(ps.SPS.ShortTermRefPicSets))
		}
	}

	h.TemporalMVPEnabled = r.MustReadFlag()

	h.SAOLuma = r.MustReadFlag()
	assertEq("slice_sao_luma_flag", boolBit(h.SAOLuma), 1)
	h.SAOChroma = r.MustReadFlag()
	assertEq("slice_sao_chroma_flag", boolBit(h.SAOChroma), 1)

	// Defaults apply unless the P-slice override path below rewrites
	// them — seeded from the PPS before the override flag is evaluated so
	// an absent override leaves the PPS defaults in force.
	h.NumRefIdxL0Active = ps.PPS.NumRefIdxL0DefaultActive
	h.NumRefIdxL1Active = ps.PPS.NumRefIdxL1DefaultActive
	h.CollocatedFromL0 = CollocatedFromL0Default
	h.CollocatedRefIdxDefault = CollocatedRefIdxDefault
	h.CollocatedRefIdx = CollocatedRefIdxDefault

	if h.SliceType == SliceTypeP {
		h.NumRefIdxActiveOverride = r.MustReadFlag()
		if h.NumRefIdxActiveOverride {
			h.NumRefIdxL0Active = int(r.MustReadUE()) + 1
		}

		h.CabacInitFlag = r.MustReadFlag()

		if h.TemporalMVPEnabled {
			h.CollocatedFromL0 = r.MustReadFlag()
			if h.CollocatedFromL0 {
				h.CollocatedRefIdx = int(r.MustReadUE())
			}
		}

		h.FiveMinusMaxNumMergeCand = int(r.MustReadUE())
	}

	h.SliceQPDelta = int(r.MustReadSE())

	if ps.PPS.DeblockingFilterOverrideEnabled {
		if r.MustReadFlag() { // deblocking_filter_override_flag
			h.DeblockingFilterDisabled = r.MustReadFlag()
		} else {
			h.DeblockingFilterDisabled = ps.PPS.PPSDeblockingFilterDisabled
		}
	} else {
		h.DeblockingFilterDisabled = ps.PPS.PPSDeblockingFilterDisabled
	}

	r.ByteAlign()
	// ByteOffset is already EPB-free (bitPos never counts elided bytes);
	// EPBCount is reported alongside so the accelerator, which indexes
	// into the raw NAL bytes, can add it back.
	h.SliceDataByteOffset = r.ByteOffset()
	h.EPBCount = r.EPBCount()
}

// ParseSliceHeader parses a slice-segment-header NAL unit (type 1 or 19,
// 2-byte header included) and installs the result into ps.Slice.
func ParseSliceHeader(ps *ParamState, nalType byte, r *bitstream.Reader) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("hevc: slice header: %w", bitstream.Recover(p))
		}
	}()
	r.MustReadBits(16) // nal_unit_header
	parseSliceHeader(&ps.Slice, ps, nalType, r)
	return nil
}
