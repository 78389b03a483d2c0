package hevc

import (
	"fmt"

	"github.com/zsiec/prismclient/internal/bitstream"
)

// Fixed profile/tier/level this subset supports: HEVC Main profile,
// main tier, level 4.0.
const (
	profileMain    = 1
	mainTierFlag   = 0
	levelIDC4p0    = 120
	vuiVideoFormat = 5
	vuiColourPrim  = 2
	vuiTransferChr = 2
	vuiMatrixCoefs = 6
	vuiMaxMVLog2   = 15
)

// parseSPS parses the body of a sequence parameter set NAL unit (the
// 2-byte header already consumed) into s. It panics a *bitstream.ReadError
// on any out-of-range read or fixed-field assertion failure; callers that
// want a plain error (internal/client's VideoPipe) get one back from the
// exported ParseSPS at the bottom of this file.
func parseSPS(s *SPS, r *bitstream.Reader) {
	assertEq("sps_video_parameter_set_id", r.MustReadBits(4), 0)
	maxSubLayersMinus1 := r.MustReadBits(3)
	assertEq("sps_max_sub_layers_minus1", maxSubLayersMinus1, 0)
	assertEq("sps_temporal_id_nesting_flag", r.MustReadBits(1), 1)

	parseProfileTierLevel(s, r, maxSubLayersMinus1)

	r.MustReadUE() // sps_seq_parameter_set_id, unused

	chromaFormatIDC := r.MustReadUE()
	assertEq("chroma_format_idc", chromaFormatIDC, ChromaFormat420)
	s.ChromaFormatIDC = int(chromaFormatIDC)

	width := int(r.MustReadUE())
	height := int(r.MustReadUE())
	s.Width, s.Height = width, height

	if r.MustReadFlag() { // conformance_window_flag
		// Offsets are coded in SubWidthC/SubHeightC units; chromaFormatIDC
		// is asserted 4:2:0 above, so both subsampling factors are 2.
		s.ConfWinLeftOffset = int(r.MustReadUE()) * 2
		s.ConfWinRightOffset = int(r.MustReadUE()) * 2
		s.ConfWinTopOffset = int(r.MustReadUE()) * 2
		s.ConfWinBottomOffset = int(r.MustReadUE()) * 2
	}

	s.BitDepthLuma = int(r.MustReadUE()) + 8
	s.BitDepthChroma = int(r.MustReadUE()) + 8
	s.Log2MaxPicOrderCntLSB = int(r.MustReadUE()) + 4

	subLayerOrderingInfoPresent := r.MustReadFlag()
	first := maxSubLayersMinus1
	if subLayerOrderingInfoPresent {
		first = 0
	}
	for i := first; i <= maxSubLayersMinus1; i++ {
		r.MustReadUE() // sps_max_dec_pic_buffering_minus1[i]
		r.MustReadUE() // sps_max_num_reorder_pics[i]
		r.MustReadUE() // sps_max_latency_increase_plus1[i]
	}

	s.Log2MinLumaCodingBlockSize = int(r.MustReadUE()) + 3
	s.Log2DiffMaxMinLumaCodingSize = int(r.MustReadUE())
	s.Log2MinTransformBlockSize = int(r.MustReadUE()) + 2
	s.Log2DiffMaxMinTransformSize = int(r.MustReadUE())
	r.MustReadUE() // max_transform_hierarchy_depth_inter
	s.MaxTransformHierarchyDepth = int(r.MustReadUE())

	assertEq("scaling_list_enabled_flag", r.MustReadBits(1), 0)
	r.MustReadFlag() // amp_enabled_flag, unconstrained by this subset

	s.SampleAdaptiveOffsetEnabled = r.MustReadFlag()
	assertEq("sample_adaptive_offset_enabled_flag", boolBit(s.SampleAdaptiveOffsetEnabled), 1)

	assertEq("pcm_enabled_flag", r.MustReadBits(1), 0)

	numShortTermRefPicSets := int(r.MustReadUE())
	s.ShortTermRefPicSets = make([]ShortTermRefPicSet, numShortTermRefPicSets)
	for i := 0; i < numShortTermRefPicSets; i++ {
		s.ShortTermRefPicSets[i] = parseShortTermRefPicSet(r, i)
	}

	assertEq("long_term_ref_pics_present_flag", r.MustReadBits(1), 0)

	s.TemporalMVPEnabled = r.MustReadFlag()
	s.StrongIntraSmoothing = r.MustReadFlag()

	assertEq("vui_parameters_present_flag", r.MustReadBits(1), 1)
	parseVUI(s, r)

	s.PCMSampleBitDepthLuma = PCMSampleBitDepth(s.BitDepthLuma)
	s.PCMSampleBitDepthChroma = PCMSampleBitDepth(s.BitDepthChroma)
	s.Log2MinPCMLumaCodingBlockSizeMinus3 = Log2MinPCMLumaCodingBlockSizeMinus3Sentinel
}

func parseProfileTierLevel(s *SPS, r *bitstream.Reader, maxSubLayersMinus1 uint32) {
	r.MustReadBits(2) // general_profile_space
	assertEq("general_tier_flag", r.MustReadBits(1), mainTierFlag)
	assertEq("general_profile_idc", r.MustReadBits(5), profileMain)
	hi := r.MustReadBits(16) // general_profile_compatibility_flags[31:16]
	lo := r.MustReadBits(16) // general_profile_compatibility_flags[15:0]
	s.profileCompatibilityFlags = hi<<16 | lo
	var cif uint64
	for i := 0; i < 6; i++ {
		cif = (cif << 8) | uint64(r.MustReadBits(8)) // general_constraint_indicator_flags
	}
	s.constraintIndicatorFlags = cif
	assertEq("general_level_idc", r.MustReadBits(8), levelIDC4p0)

	if maxSubLayersMinus1 == 0 {
		return
	}
	profilePresent := make([]bool, maxSubLayersMinus1)
	levelPresent := make([]bool, maxSubLayersMinus1)
	for i := range profilePresent {
		profilePresent[i] = r.MustReadFlag()
		levelPresent[i] = r.MustReadFlag()
	}
	for i := maxSubLayersMinus1; i < 8; i++ {
		r.MustReadBits(2) // reserved alignment bits
	}
	for i := range profilePresent {
		if profilePresent[i] {
			r.MustReadBits(32)
			r.MustReadBits(32)
			r.MustReadBits(24)
		}
		if levelPresent[i] {
			r.MustReadBits(8)
		}
	}
}

// parseShortTermRefPicSet parses a fixed-shape short_term_ref_pic_set():
// exactly one negative reference, zero positive references, used by the
// current picture. Any other shape fails the containing NAL unit.
func parseShortTermRefPicSet(r *bitstream.Reader, idx int) ShortTermRefPicSet {
	startBit := r.BitPos()
	if idx != 0 {
		assertEq("inter_ref_pic_set_prediction_flag", r.MustReadBits(1), 0)
	}
	assertEq("num_negative_pics", r.MustReadUE(), 1)
	assertEq("num_positive_pics", r.MustReadUE(), 0)

	r.MustReadUE() // delta_poc_s0_minus1[0]
	usedByCurrPicS0 := r.MustReadFlag()
	assertEq("used_by_curr_pic_s0_flag", boolBit(usedByCurrPicS0), 1)

	return ShortTermRefPicSet{
		DeltaPocS0:      0,
		UsedByCurrPicS0: true,
		BitLength:       r.BitPos() - startBit,
	}
}

func parseVUI(s *SPS, r *bitstream.Reader) {
	if r.MustReadFlag() { // aspect_ratio_info_present_flag
		idc := r.MustReadBits(8)
		if idc == 255 { // EXTENDED_SAR
			r.MustReadBits(16)
			r.MustReadBits(16)
		}
	}
	if r.MustReadFlag() { // overscan_info_present_flag
		r.MustReadFlag()
	}

	assertEq("video_signal_type_present_flag", r.MustReadBits(1), 1)
	s.VideoFormat = int(r.MustReadBits(3))
	assertEq("video_format", uint32(s.VideoFormat), vuiVideoFormat)
	r.MustReadFlag() // video_full_range_flag
	assertEq("colour_description_present_flag", r.MustReadBits(1), 1)
	s.ColourPrimaries = int(r.MustReadBits(8))
	assertEq("colour_primaries", uint32(s.ColourPrimaries), vuiColourPrim)
	s.TransferCharacteristics = int(r.MustReadBits(8))
	assertEq("transfer_characteristics", uint32(s.TransferCharacteristics), vuiTransferChr)
	s.MatrixCoeffs = int(r.MustReadBits(8))
	assertEq("matrix_coeffs", uint32(s.MatrixCoeffs), vuiMatrixCoefs)

	if r.MustReadFlag() { // chroma_loc_info_present_flag
		r.MustReadUE()
		r.MustReadUE()
	}
	r.MustReadFlag() // neutral_chroma_indication_flag
	r.MustReadFlag() // field_seq_flag
	r.MustReadFlag() // frame_field_info_present_flag

	if r.MustReadFlag() { // default_display_window_flag
		// Same SubWidthC/SubHeightC (=2, 4:2:0) unit scaling as the
		// conformance window offsets above.
		s.ConfWinLeftOffset += int(r.MustReadUE()) * 2
		s.ConfWinRightOffset += int(r.MustReadUE()) * 2
		s.ConfWinTopOffset += int(r.MustReadUE()) * 2
		s.ConfWinBottomOffset += int(r.MustReadUE()) * 2
	}

	assertEq("vui_timing_info_present_flag", r.MustReadBits(1), 0)

	assertEq("bitstream_restriction_flag", r.MustReadBits(1), 1)
	r.MustReadFlag() // tiles_fixed_structure_flag
	s.MotionVectorsOverPicBoundaries = r.MustReadFlag()
	assertEq("motion_vectors_over_pic_boundaries_flag", boolBit(s.MotionVectorsOverPicBoundaries), 1)
	s.RestrictedRefPicLists = r.MustReadFlag()
	assertEq("restricted_ref_pic_lists_flag", boolBit(s.RestrictedRefPicLists), 1)
	r.MustReadUE() // min_spatial_segmentation_idc
	r.MustReadUE() // max_bytes_per_pic_denom
	r.MustReadUE() // max_bits_per_min_cu_denom
	s.MaxMVLengthHorizontalLog2 = int(r.MustReadUE())
	assertEq("log2_max_mv_length_horizontal", uint32(s.MaxMVLengthHorizontalLog2), vuiMaxMVLog2)
	s.MaxMVLengthVerticalLog2 = int(r.MustReadUE())
	assertEq("log2_max_mv_length_vertical", uint32(s.MaxMVLengthVerticalLog2), vuiMaxMVLog2)
}

// ParseSPS parses a complete SPS NAL unit (2-byte header included) and
// installs the result into ps.SPS, recovering any parse-failure panic at
// this boundary and returning it as an error (see ErrUnsupportedStream for
// which failures wrap it).
func ParseSPS(ps *ParamState, r *bitstream.Reader) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("hevc: SPS: %w", bitstream.Recover(p))
		}
	}()
	r.MustReadBits(16) // nal_unit_header
	parseSPS(&ps.SPS, r)
	ps.haveSPS = true
	return nil
}

func assertEq(name string, got, want uint32) {
	if got != want {
		panic(&bitstream.ReadError{Err: fmt.Errorf("%s = %d, want %d: %w", name, got, want, ErrUnsupportedStream)})
	}
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
