// Package hevc implements a minimal HEVC SPS/PPS/slice-header parser
// covering the restricted Main-profile subset spec.md §4.4 requires. It
// consumes NAL units produced by internal/bitstream and updates a shared
// ParamState sufficient to populate a hardware accelerator's picture and
// slice parameter structures.
package hevc

import "errors"

// ErrUnsupportedStream is wrapped into the error ParseSPS, ParsePPS and
// ParseSliceHeader return when a fixed-field assertion fails (a value
// outside the supported subset). An out-of-range bit read is reported as
// bitstream.ErrOutOfRange instead and does not wrap ErrUnsupportedStream.
// Either way parsing of that NAL unit stops; the caller (internal/client's
// VideoPipe) returns the error, which ends the demuxer's session.
var ErrUnsupportedStream = errors.New("hevc: unsupported stream")

// ChromaFormat420 is the only chroma_format_idc this parser accepts.
const ChromaFormat420 = 1

// ShortTermRefPicSet describes one short_term_ref_pic_set() syntax
// structure. Only the single-negative-reference shape spec.md §4.4
// requires is populated; BitLength records how many bits the structure
// occupied so the accelerator can be told the RPS size when a slice header
// codes the RPS explicitly.
type ShortTermRefPicSet struct {
	DeltaPocS0      int32 // always 0 under the supported subset
	UsedByCurrPicS0 bool  // always true under the supported subset
	BitLength       int   // bits consumed parsing this RPS explicitly
}

// SPS holds the sequence parameter set fields needed to decode under the
// restricted profile, plus the accelerator-contract constants spec.md
// §4.4 calls out as "weird"/fixed.
type SPS struct {
	Width  int
	Height int

	ConfWinLeftOffset   int
	ConfWinRightOffset  int
	ConfWinTopOffset    int
	ConfWinBottomOffset int

	ChromaFormatIDC int
	BitDepthLuma    int
	BitDepthChroma  int

	Log2MaxPicOrderCntLSB int

	Log2MinLumaCodingBlockSize   int
	Log2DiffMaxMinLumaCodingSize int
	Log2MinTransformBlockSize    int
	Log2DiffMaxMinTransformSize  int
	MaxTransformHierarchyDepth   int

	SampleAdaptiveOffsetEnabled bool
	TemporalMVPEnabled          bool
	StrongIntraSmoothing        bool

	ShortTermRefPicSets []ShortTermRefPicSet

	// VUI (mandatory, fixed subset per spec.md §4.4).
	VideoFormat             int
	ColourPrimaries         int
	TransferCharacteristics int
	MatrixCoeffs            int
	MotionVectorsOverPicBoundaries bool
	RestrictedRefPicLists          bool
	MaxMVLengthHorizontalLog2      int
	MaxMVLengthVerticalLog2        int

	// Accelerator-contract constants, not present in the bitstream.
	PCMSampleBitDepthLuma      int
	PCMSampleBitDepthChroma    int
	Log2MinPCMLumaCodingBlockSizeMinus3 int

	// Retained only for CodecString(); not needed by the decoder itself.
	profileCompatibilityFlags uint32
	constraintIndicatorFlags  uint64
}

// CropRect returns the display crop rectangle in luma samples, derived
// from the SPS conformance window offsets (already adjusted for chroma
// subsampling by the parser).
func (s *SPS) CropRect() (x, y, w, h int) {
	return s.ConfWinLeftOffset, s.ConfWinTopOffset,
		s.Width - s.ConfWinLeftOffset - s.ConfWinRightOffset,
		s.Height - s.ConfWinTopOffset - s.ConfWinBottomOffset
}

// PPS holds the picture parameter set fields needed under the restricted
// profile.
type PPS struct {
	InitQPMinus26             int
	NumRefIdxL0DefaultActive  int
	NumRefIdxL1DefaultActive  int
	CuQPDeltaEnabled          bool // must be false
	DiffCuQPDeltaDepth        int
	CbQPOffset                int
	CrQPOffset                int
	DeblockingFilterOverrideEnabled bool
	PPSDeblockingFilterDisabled     bool
	BetaOffsetDiv2                  int
	TcOffsetDiv2                    int
	Log2ParallelMergeLevelMinus2    int

	// Accelerator-contract constants.
	LoopFilterAcrossTilesEnabled bool // always true
}

// SliceHeader holds the per-slice fields the accelerator needs, plus the
// slice-data byte offset and EPB count computed after parsing.
type SliceHeader struct {
	FirstSliceSegmentInPic bool
	NoOutputOfPriorPics    bool
	SliceType              SliceType
	PicOrderCntLSB         int

	ShortTermRefPicSetSIdx int // index into SPS.ShortTermRefPicSets, or -1 if explicit
	ShortTermRefPicSet     ShortTermRefPicSet

	TemporalMVPEnabled bool
	SAOLuma            bool
	SAOChroma          bool

	NumRefIdxActiveOverride bool
	NumRefIdxL0Active       int
	NumRefIdxL1Active       int
	CabacInitFlag           bool

	CollocatedFromL0 bool
	CollocatedRefIdx int

	FiveMinusMaxNumMergeCand int
	SliceQPDelta             int
	DeblockingFilterDisabled bool

	// Computed after byte alignment.
	SliceDataByteOffset int
	EPBCount            int

	// Accelerator-contract constants.
	CollocatedRefIdxDefault int // 0xff when not overridden
}

// SliceType mirrors HEVC's slice_type syntax element (B is out of scope
// per spec.md Non-goals: no B-frames).
type SliceType int

const (
	SliceTypeP SliceType = 1
	SliceTypeI SliceType = 2
)

// ParamState is the single mutable per-session record carrying the most
// recently parsed SPS, PPS, and slice parameters.
type ParamState struct {
	SPS   SPS
	PPS   PPS
	Slice SliceHeader

	haveSPS, havePPS bool
}

// Ready reports whether both an SPS and a PPS have been parsed, the point
// at which internal/decoder creates the accelerator config and surface
// pool (spec.md §4.5: "initialisation is deferred until the first PPS has
// been parsed").
func (p *ParamState) Ready() bool {
	return p.haveSPS && p.havePPS
}
