package hevc

// Accelerator-contract constants: fields the hardware video acceleration
// API requires in its parameter buffers that have no corresponding
// bitstream syntax element, or that this subset always forces to a fixed
// value. They are not derived from the stream; callers populate them
// verbatim into the accelerator picture/slice parameter structures.
const (
	// Log2MinPCMLumaCodingBlockSizeMinus3Sentinel marks "PCM not present"
	// to the accelerator; PCM is outside the supported subset.
	Log2MinPCMLumaCodingBlockSizeMinus3Sentinel = 253

	// LoopFilterAcrossTilesEnabledDefault is always asserted true: this
	// subset never enables tiles, so there is nothing to disagree about,
	// but the accelerator's picture parameter struct still wants the bit
	// set.
	LoopFilterAcrossTilesEnabledDefault = true

	// CollocatedFromL0Default is the slice-header default used when a
	// P-slice does not override it.
	CollocatedFromL0Default = true

	// CollocatedRefIdxDefault is the slice-header default used when a
	// P-slice does not override it — 0xff, the accelerator's "invalid
	// reference" sentinel.
	CollocatedRefIdxDefault = 0xff

	// RefPicListInvalid is the sentinel the session writes into every
	// unused reference-list / reference-frame entry before populating
	// the ones actually in use.
	RefPicListInvalid = 0xff
)

// PCMSampleBitDepth computes the accelerator's required PCM sample bit
// depth field from a full luma/chroma bit depth (8 + bit_depth_minus8),
// per the fixed formula (1 << (bit_depth_minus8 + 8)) - 1. PCM itself is
// never enabled in this subset, but the accelerator's config struct
// still requires a value.
func PCMSampleBitDepth(bitDepth int) int {
	return (1 << uint(bitDepth-8+8)) - 1
}
