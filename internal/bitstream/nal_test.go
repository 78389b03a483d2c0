package bitstream

import "testing"

func TestScannerSplitsOnStartCodes(t *testing.T) {
	t.Parallel()

	data := []byte{
		0x00, 0x00, 0x00, 0x01, 0x40, 0x01, 0xAA, 0xBB, // VPS (type 32)
		0x00, 0x00, 0x00, 0x01, 0x42, 0x01, 0xCC, 0xDD, // SPS (type 33)
		0x00, 0x00, 0x00, 0x01, 0x26, 0x01, 0xEE, // IDR_W_RADL (type 19)
	}

	s := NewScanner(data)

	var types []byte
	for {
		nal, ok := s.Next()
		if !ok {
			break
		}
		b, err := nal.ReadBits(8)
		if err != nil {
			t.Fatalf("ReadBits: %v", err)
		}
		types = append(types, HEVCNALType(byte(b)))
	}

	want := []byte{HEVCNALVPS, HEVCNALSPS, HEVCNALIDRWRadl}
	if len(types) != len(want) {
		t.Fatalf("got %d NAL units, want %d", len(types), len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("nal[%d] type = %d, want %d", i, types[i], want[i])
		}
	}
}

func TestScannerNoStartCode(t *testing.T) {
	t.Parallel()

	s := NewScanner([]byte{0x01, 0x02, 0x03})
	if _, ok := s.Next(); ok {
		t.Fatal("expected no NAL unit without a start code")
	}
}

func TestIsIRAPRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		nalType byte
		want    bool
	}{
		{"BLA_W_LP", HEVCNALBlaWLP, true},
		{"IDR_W_RADL", HEVCNALIDRWRadl, true},
		{"CRA", HEVCNALCraNut, true},
		{"TRAIL_N", HEVCNALTrailN, false},
		{"VPS", HEVCNALVPS, false},
	}
	for _, tt := range tests {
		if got := IsIRAP(tt.nalType); got != tt.want {
			t.Errorf("%s: IsIRAP(%d) = %v, want %v", tt.name, tt.nalType, got, tt.want)
		}
	}
}
