package hevc

import (
	"testing"

	"github.com/zsiec/prismclient/internal/bitstream"
)

func buildPPS() []byte {
	w := &bitWriter{}
	w.writeBits(0, 1)  // forbidden_zero_bit
	w.writeBits(34, 6) // nal_unit_type = PPS
	w.writeBits(0, 6)
	w.writeBits(1, 3)

	w.writeUE(0) // pps_pic_parameter_set_id
	w.writeUE(0) // pps_seq_parameter_set_id
	w.writeFlag(false) // dependent_slice_segments_enabled_flag
	w.writeFlag(false) // output_flag_present_flag
	w.writeBits(0, 3)  // num_extra_slice_header_bits
	w.writeFlag(false) // sign_data_hiding_enabled_flag
	w.writeFlag(false) // cabac_init_present_flag
	w.writeUE(0)       // num_ref_idx_l0_default_active_minus1 -> 1
	w.writeUE(0)       // num_ref_idx_l1_default_active_minus1 -> 1
	w.writeSE(0)       // init_qp_minus26
	w.writeFlag(false) // constrained_intra_pred_flag
	w.writeFlag(false) // transform_skip_enabled_flag
	w.writeFlag(false) // cu_qp_delta_enabled_flag
	w.writeSE(0)       // cb_qp_offset
	w.writeSE(0)       // cr_qp_offset
	w.writeFlag(false) // pps_slice_chroma_qp_offsets_present_flag
	w.writeFlag(false) // weighted_pred_flag
	w.writeFlag(false) // weighted_bipred_flag
	w.writeFlag(false) // transquant_bypass_enabled_flag
	w.writeFlag(false) // tiles_enabled_flag
	w.writeFlag(false) // entropy_coding_sync_enabled_flag
	w.writeFlag(true)  // pps_loop_filter_across_slices_enabled_flag
	w.writeFlag(true)  // deblocking_filter_control_present_flag
	w.writeFlag(false) // deblocking_filter_override_enabled_flag
	w.writeFlag(false) // pps_deblocking_filter_disabled_flag
	w.writeSE(0)       // beta_offset_div2
	w.writeSE(0)       // tc_offset_div2
	w.writeFlag(false) // pps_scaling_list_data_present_flag
	w.writeFlag(false) // lists_modification_present_flag
	w.writeUE(0)       // log2_parallel_merge_level_minus2
	w.writeFlag(false) // slice_segment_header_extension_present_flag
	w.writeFlag(false) // pps_extension_present_flag

	return w.bytes()
}

func TestParsePPS(t *testing.T) {
	t.Parallel()

	var ps ParamState
	r := bitstream.NewReader(buildPPS())
	if err := ParsePPS(&ps, r); err != nil {
		t.Fatalf("ParsePPS: %v", err)
	}
	if !ps.havePPS {
		t.Fatal("havePPS not set")
	}
	if ps.PPS.NumRefIdxL0DefaultActive != 1 || ps.PPS.NumRefIdxL1DefaultActive != 1 {
		t.Errorf("default ref counts = %d/%d, want 1/1", ps.PPS.NumRefIdxL0DefaultActive, ps.PPS.NumRefIdxL1DefaultActive)
	}
	if ps.PPS.CuQPDeltaEnabled {
		t.Error("CuQPDeltaEnabled = true, want false")
	}
	if !ps.PPS.LoopFilterAcrossTilesEnabled {
		t.Error("LoopFilterAcrossTilesEnabled = false, want true (accelerator-contract constant)")
	}
}

func TestParsePPSRejectsTiles(t *testing.T) {
	t.Parallel()

	w := &bitWriter{}
	w.writeBits(0, 1)
	w.writeBits(34, 6)
	w.writeBits(0, 6)
	w.writeBits(1, 3)
	w.writeUE(0)
	w.writeUE(0)
	w.writeFlag(false)
	w.writeFlag(false)
	w.writeBits(0, 3)
	w.writeFlag(false)
	w.writeFlag(false)
	w.writeUE(0)
	w.writeUE(0)
	w.writeSE(0)
	w.writeFlag(false)
	w.writeFlag(false)
	w.writeFlag(false)
	w.writeSE(0)
	w.writeSE(0)
	w.writeFlag(false)
	w.writeFlag(false)
	w.writeFlag(false)
	w.writeFlag(false)
	w.writeFlag(true) // tiles_enabled_flag = 1, unsupported

	var ps ParamState
	r := bitstream.NewReader(w.bytes())
	if err := ParsePPS(&ps, r); err == nil {
		t.Fatal("expected error for tiles_enabled_flag set")
	}
}
