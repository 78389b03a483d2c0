package hevc

import "github.com/zsiec/prismclient/internal/bitstream"

// NALType, IsKeyframe and the NAL* constants re-export
// internal/bitstream's NAL-unit-type helpers so internal/decoder can set
// its picture-type flags without importing bitstream directly.
var (
	NALType    = bitstream.HEVCNALType
	IsKeyframe = bitstream.IsIRAP
	IsIDR      = bitstream.IsIDR
)

const (
	NALTrailN     = bitstream.HEVCNALTrailN
	NALTrailR     = bitstream.HEVCNALTrailR
	NALBlaWLP     = bitstream.HEVCNALBlaWLP
	NALBlaWRadl   = bitstream.HEVCNALBlaWRadl
	NALBlaNLP     = bitstream.HEVCNALBlaNLP
	NALIDRWRadl   = bitstream.HEVCNALIDRWRadl
	NALIDRNLP     = bitstream.HEVCNALIDRNLP
	NALCraNut     = bitstream.HEVCNALCraNut
	NALVPS        = bitstream.HEVCNALVPS
	NALSPS        = bitstream.HEVCNALSPS
	NALPPS        = bitstream.HEVCNALPPS
	NALAUD        = bitstream.HEVCNALAUD
	NALFillerData = bitstream.HEVCNALFillerData
	NALSEIPrefix  = bitstream.HEVCNALSEIPrefix
)
