package bitstream

import (
	"math"
	"testing"
)

func TestReadBitsMatchesBitByBit(t *testing.T) {
	t.Parallel()

	data := []byte{0xA5, 0x3C, 0xFF, 0x00, 0x81, 0x7E}

	for n := 1; n <= 32 && n <= len(data)*8; n++ {
		chunk := NewReader(data)
		want, err := chunk.ReadBits(n)
		if err != nil {
			t.Fatalf("ReadBits(%d): %v", n, err)
		}

		bitwise := NewReader(data)
		var got uint32
		for i := 0; i < n; i++ {
			b, err := bitwise.ReadBits(1)
			if err != nil {
				t.Fatalf("bit-by-bit read %d: %v", i, err)
			}
			got = (got << 1) | b
		}

		if got != want {
			t.Errorf("n=%d: bit-by-bit=%#x, chunked=%#x", n, got, want)
		}
	}
}

func TestReadUERoundTrip(t *testing.T) {
	t.Parallel()

	for k := uint32(0); k < 1000; k++ {
		data := encodeUE(k)
		r := NewReader(data)
		got, err := r.ReadUE()
		if err != nil {
			t.Fatalf("k=%d: ReadUE: %v", k, err)
		}
		if got != k {
			t.Errorf("k=%d: ReadUE = %d", k, got)
		}
	}
}

func TestReadSERoundTrip(t *testing.T) {
	t.Parallel()

	for s := int32(-500); s <= 500; s++ {
		data := encodeSE(s)
		r := NewReader(data)
		got, err := r.ReadSE()
		if err != nil {
			t.Fatalf("s=%d: ReadSE: %v", s, err)
		}
		if got != s {
			t.Errorf("s=%d: ReadSE = %d", s, got)
		}
	}
}

func TestReadSECanonicalMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ue   uint32
		want int32
	}{
		{0, 0},
		{1, 1},
		{2, -1},
		{3, 2},
		{4, -2},
	}
	for _, tt := range tests {
		r := NewReader(encodeUE(tt.ue))
		got, err := r.ReadSE()
		if err != nil {
			t.Fatalf("ue=%d: %v", tt.ue, err)
		}
		if got != tt.want {
			t.Errorf("ue=%d: ReadSE = %d, want %d", tt.ue, got, tt.want)
		}
	}
}

func TestEPBElisionOnTriple(t *testing.T) {
	t.Parallel()

	// 00 00 03 41: the 0x03 following two zero bytes is elided, so the
	// third logical byte read is 0x41, and EPBCount records the skip.
	data := []byte{0x00, 0x00, 0x03, 0x41}
	r := NewReader(data)

	b0, err := r.ReadBits(8)
	if err != nil || b0 != 0x00 {
		t.Fatalf("byte0 = %#x, err=%v, want 0x00", b0, err)
	}
	b1, err := r.ReadBits(8)
	if err != nil || b1 != 0x00 {
		t.Fatalf("byte1 = %#x, err=%v, want 0x00", b1, err)
	}
	if r.EPBCount() != 0 {
		t.Fatalf("EPBCount before third byte = %d, want 0", r.EPBCount())
	}

	b2, err := r.ReadBits(8)
	if err != nil {
		t.Fatalf("byte2: %v", err)
	}
	if b2 != 0x41 {
		t.Errorf("byte2 = %#x, want 0x41 (0x03 should be elided)", b2)
	}
	if r.EPBCount() != 1 {
		t.Errorf("EPBCount = %d, want 1", r.EPBCount())
	}
	if r.Remaining() {
		t.Errorf("Remaining() = true, want false (all 4 raw bytes consumed)")
	}
}

func TestEPBElisionRequiresThreeBytes(t *testing.T) {
	t.Parallel()

	// A NAL body shorter than 3 bytes can never present a full 00 00 03
	// pattern, so no elision can occur regardless of content.
	data := []byte{0x00, 0x03}
	r := NewReader(data)
	v, err := r.ReadBits(16)
	if err != nil {
		t.Fatalf("ReadBits(16): %v", err)
	}
	if v != 0x0003 {
		t.Errorf("v = %#x, want 0x0003 (no elision possible)", v)
	}
	if r.EPBCount() != 0 {
		t.Errorf("EPBCount = %d, want 0", r.EPBCount())
	}
}

func TestReadPastEndFails(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{0xFF})
	if _, err := r.ReadBits(9); err == nil {
		t.Fatal("expected error reading past end")
	}
}

func TestMustReadPanicsReadError(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{})
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("expected panic")
		}
		if err := Recover(p); err == nil {
			t.Fatal("Recover returned nil error")
		}
	}()
	r.MustReadBits(1)
}

func TestByteAlign(t *testing.T) {
	t.Parallel()

	r := NewReader([]byte{0xFF, 0xFF})
	r.ReadBits(3)
	r.ByteAlign()
	if r.BitPos() != 8 {
		t.Fatalf("BitPos() = %d, want 8", r.BitPos())
	}
	r.ByteAlign()
	if r.BitPos() != 8 {
		t.Fatalf("ByteAlign on already-aligned position moved to %d", r.BitPos())
	}
}

// encodeUE produces the canonical Exp-Golomb encoding of k as a byte
// slice, used only to round-trip test ReadUE/ReadSE.
func encodeUE(k uint32) []byte {
	v := k + 1
	nbits := bitsLen(v)
	zeros := nbits - 1

	var bits []byte
	for i := 0; i < zeros; i++ {
		bits = append(bits, 0)
	}
	for i := nbits - 1; i >= 0; i-- {
		bits = append(bits, byte((v>>uint(i))&1))
	}
	return packBits(bits)
}

func encodeSE(s int32) []byte {
	var ue uint32
	if s <= 0 {
		ue = uint32(-2 * int64(s))
	} else {
		ue = uint32(2*int64(s) - 1)
	}
	return encodeUE(ue)
}

func bitsLen(v uint32) int {
	if v == 0 {
		return 1
	}
	return int(math.Floor(math.Log2(float64(v)))) + 1
}

func packBits(bits []byte) []byte {
	out := make([]byte, (len(bits)+7)/8+1) // extra padding byte so reads past the codeword don't fail
	for i, b := range bits {
		if b != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}
