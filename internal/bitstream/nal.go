package bitstream

// NALUnit is a bit Reader scoped to the byte span between two Annex-B
// start codes, exclusive of the start code itself.
type NALUnit struct {
	*Reader
}

// Scanner walks an Annex-B byte stream, producing one NALUnit per call to
// Next, grounded on the teacher's parseAnnexBGeneric start-code scan
// (demux/h264.go), generalized to yield lazily instead of collecting a
// slice up front.
type Scanner struct {
	data []byte
	pos  int // index of the next byte to search for a start code
}

// NewScanner creates a Scanner over an Annex-B byte stream using 4-byte
// (00 00 00 01) start codes, per spec.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// findStartCode returns the index of the next 00 00 00 01 start code at
// or after from, and the index of the first byte after it, or (-1, -1)
// if none remains.
func findStartCode(data []byte, from int) (scStart, dataStart int) {
	for i := from; i+4 <= len(data); i++ {
		if data[i] == 0 && data[i+1] == 0 && data[i+2] == 0 && data[i+3] == 1 {
			return i, i + 4
		}
	}
	return -1, -1
}

// Next scans forward for the next start code, then the one after it (or
// EOF), and returns a NALUnit spanning the bytes strictly between them.
// It reports false once no further start code is found.
func (s *Scanner) Next() (NALUnit, bool) {
	_, dataStart := findStartCode(s.data, s.pos)
	if dataStart < 0 {
		return NALUnit{}, false
	}

	nextSC, _ := findStartCode(s.data, dataStart)
	end := len(s.data)
	if nextSC >= 0 {
		end = nextSC
	}

	s.pos = end
	if dataStart >= end {
		// Zero-length NAL between adjacent start codes; keep scanning.
		return s.Next()
	}

	return NALUnit{Reader: NewReader(s.data[dataStart:end])}, true
}

// HEVCNALType extracts the 6-bit NAL-unit-type field from the first byte
// of an HEVC 2-byte NAL header: forbidden_zero_bit(1) | type(6) |
// layer_id_high(1).
func HEVCNALType(firstByte byte) byte {
	return (firstByte >> 1) & 0x3F
}

// HEVC NAL unit type constants (ITU-T H.265 Table 7-1), reused from the
// teacher's demux/h265.go.
const (
	HEVCNALTrailN     = 0
	HEVCNALTrailR     = 1
	HEVCNALBlaWLP     = 16
	HEVCNALBlaWRadl   = 17
	HEVCNALBlaNLP     = 18
	HEVCNALIDRWRadl   = 19
	HEVCNALIDRNLP     = 20
	HEVCNALCraNut     = 21
	HEVCNALVPS        = 32
	HEVCNALSPS        = 33
	HEVCNALPPS        = 34
	HEVCNALAUD        = 35
	HEVCNALFillerData = 38
	HEVCNALSEIPrefix  = 39
)

// IsIRAP reports whether nalType is an Intra Random Access Point unit
// (BLA, IDR, or CRA), the range used by the session to populate
// RapPicFlag/IntraPicFlag.
func IsIRAP(nalType byte) bool {
	return nalType >= HEVCNALBlaWLP && nalType <= HEVCNALCraNut
}

// IsIDR reports whether nalType is one of the two IDR NAL types.
func IsIDR(nalType byte) bool {
	return nalType == HEVCNALIDRWRadl || nalType == HEVCNALIDRNLP
}

// IsSliceSegment reports whether nalType is a coded slice segment this
// parser handles (types 1 and 19 per spec.md §4.4: TRAIL_R and
// IDR_W_RADL). Other VCL types are accepted by the demuxer dispatch but
// produce no state change, per spec.
func IsSliceSegment(nalType byte) bool {
	return nalType == HEVCNALTrailR || nalType == HEVCNALIDRWRadl
}
