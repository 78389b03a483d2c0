package hevc

import (
	"fmt"

	"github.com/zsiec/prismclient/internal/bitstream"
)

// parsePPS reads the restricted PPS subset this decoder supports: no
// dependent slice segments, no extra slice header bits, no cu_qp_delta,
// no chroma-qp offset lists, no weighted prediction, no tiles, no
// entropy-coding sync, no scaling lists, no reference-list modification,
// no slice-segment-header extension. Any of those being enabled fails
// the containing NAL unit.
func parsePPS(p *PPS, r *bitstream.Reader) {
	r.MustReadUE() // pps_pic_parameter_set_id
	r.MustReadUE() // pps_seq_parameter_set_id

	assertEq("dependent_slice_segments_enabled_flag", r.MustReadBits(1), 0)
	assertEq("output_flag_present_flag", r.MustReadBits(1), 0)
	assertEq("num_extra_slice_header_bits", r.MustReadBits(3), 0)
	r.MustReadFlag() // sign_data_hiding_enabled_flag
	r.MustReadFlag() // cabac_init_present_flag

	p.NumRefIdxL0DefaultActive = int(r.MustReadUE()) + 1
	p.NumRefIdxL1DefaultActive = int(r.MustReadUE()) + 1
	p.InitQPMinus26 = int(r.MustReadSE())

	assertEq("constrained_intra_pred_flag", r.MustReadBits(1), 0)
	assertEq("transform_skip_enabled_flag", r.MustReadBits(1), 0)

	p.CuQPDeltaEnabled = r.MustReadFlag()
	assertEq("cu_qp_delta_enabled_flag", boolBit(p.CuQPDeltaEnabled), 0)
	if p.CuQPDeltaEnabled {
		p.DiffCuQPDeltaDepth = int(r.MustReadUE())
	}

	p.CbQPOffset = int(r.MustReadSE())
	p.CrQPOffset = int(r.MustReadSE())

	assertEq("pps_slice_chroma_qp_offsets_present_flag", r.MustReadBits(1), 0)
	assertEq("weighted_pred_flag", r.MustReadBits(1), 0)
	assertEq("weighted_bipred_flag", r.MustReadBits(1), 0)
	assertEq("transquant_bypass_enabled_flag", r.MustReadBits(1), 0)
	assertEq("tiles_enabled_flag", r.MustReadBits(1), 0)
	assertEq("entropy_coding_sync_enabled_flag", r.MustReadBits(1), 0)

	r.MustReadFlag() // pps_loop_filter_across_slices_enabled_flag

	if r.MustReadFlag() { // deblocking_filter_control_present_flag
		p.DeblockingFilterOverrideEnabled = r.MustReadFlag()
		p.PPSDeblockingFilterDisabled = r.MustReadFlag()
		if !p.PPSDeblockingFilterDisabled {
			p.BetaOffsetDiv2 = int(r.MustReadSE())
			p.TcOffsetDiv2 = int(r.MustReadSE())
		}
	}

	assertEq("pps_scaling_list_data_present_flag", r.MustReadBits(1), 0)
	assertEq("lists_modification_present_flag", r.MustReadBits(1), 0)

	p.Log2ParallelMergeLevelMinus2 = int(r.MustReadUE())

	assertEq("slice_segment_header_extension_present_flag", r.MustReadBits(1), 0)

	if r.MustReadFlag() { // pps_extension_present_flag, must be absent
		panic(&bitstream.ReadError{Err: fmt.Errorf("pps_extension_present_flag set: %w", ErrUnsupportedStream)})
	}

	// Accelerator-contract constant: always asserted enabled regardless of
	// the (absent, since tiles are unsupported) tiles state.
	p.LoopFilterAcrossTilesEnabled = LoopFilterAcrossTilesEnabledDefault
}

// ParsePPS parses a complete PPS NAL unit (2-byte header included) and
// installs the result into ps.PPS.
func ParsePPS(ps *ParamState, r *bitstream.Reader) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("hevc: PPS: %w", bitstream.Recover(p))
		}
	}()
	r.MustReadBits(16) // nal_unit_header
	parsePPS(&ps.PPS, r)
	ps.havePPS = true
	return nil
}
