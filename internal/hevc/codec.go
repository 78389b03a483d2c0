package hevc

import (
	"fmt"
	"math/bits"
)

// CodecString returns the RFC 6381 codec parameter string
// ("hev1.1.6.L120.B0") for the stats overlay's human-readable codec line.
// Grounded on the teacher's demux.HEVCSPSInfo.CodecString, generalized to
// read from hevc.SPS; this subset's profile/tier/level are fixed (Main,
// main tier, level 4.0), but the constraint/compatibility flags still
// need to be threaded through for a faithful string.
func (s *SPS) CodecString() string {
	tier := "L"

	reversed := bits.Reverse32(s.profileCompatibilityFlags)

	var constraintBytes [6]byte
	for i := 0; i < 6; i++ {
		constraintBytes[i] = byte((s.constraintIndicatorFlags >> uint((5-i)*8)) & 0xFF)
	}
	lastNonZero := -1
	for i := 5; i >= 0; i-- {
		if constraintBytes[i] != 0 {
			lastNonZero = i
			break
		}
	}

	codec := fmt.Sprintf("hev1.%d.%X.%s%d", profileMain, reversed, tier, levelIDC4p0)
	for i := 0; i <= lastNonZero; i++ {
		codec += fmt.Sprintf(".%X", constraintBytes[i])
	}
	return codec
}
