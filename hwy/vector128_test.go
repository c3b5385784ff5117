package hwy

import (
	"testing"
)

func TestNewUint16x8ReadBack(t *testing.T) {
	cases := []Uint16x8Lanes{
		{0, 1, 2, 3, 4, 5, 6, 7},
		{0x0000, 0xFFFF, 0x7FFF, 0x8000, 0x8001, 0x1234, 0xFEDC, 0x00FF},
		{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{},
	}
	for _, want := range cases {
		v := NewUint16x8(want[0], want[1], want[2], want[3], want[4], want[5], want[6], want[7])
		got := v.Uint16Lanes()
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("NewUint16x8(%v): lane %d: got 0x%04x, want 0x%04x", want, i, got[i], want[i])
			}
			x, err := ExtractLaneUint16x8(v, i)
			if err != nil {
				t.Fatalf("ExtractLaneUint16x8(%d): %v", i, err)
			}
			if x != want[i] {
				t.Errorf("ExtractLaneUint16x8(%d): got 0x%04x, want 0x%04x", i, x, want[i])
			}
		}
	}
}

func TestVector128LittleEndianLayout(t *testing.T) {
	v := NewUint16x8(0x0201, 0x0403, 0x0605, 0x0807, 0x0a09, 0x0c0b, 0x0e0d, 0x100f)
	b := v.Bytes()
	for i := range b {
		if b[i] != byte(i+1) {
			t.Errorf("byte %d: got 0x%02x, want 0x%02x", i, b[i], i+1)
		}
	}

	lo, hi := v.Halves()
	if lo != 0x0807060504030201 {
		t.Errorf("low half: got 0x%016x", lo)
	}
	if hi != 0x100f0e0d0c0b0a09 {
		t.Errorf("high half: got 0x%016x", hi)
	}
	if got := Vector128FromHalves(lo, hi); got != v {
		t.Errorf("Vector128FromHalves: got %v, want %v", got, v)
	}
	if got := Vector128FromBytes(b); got != v {
		t.Errorf("Vector128FromBytes: got %v, want %v", got, v)
	}
	if got := Vector128FromSlice(b[:]); got != v {
		t.Errorf("Vector128FromSlice: got %v, want %v", got, v)
	}
}

func TestLaneViewRoundTrip(t *testing.T) {
	for _, v := range sampleVectors() {
		if got := FromUint16Lanes(v.Uint16Lanes()); got != v {
			t.Errorf("FromUint16Lanes(Uint16Lanes(%v)) = %v", v, got)
		}
	}
}

func TestVector128String(t *testing.T) {
	v := NewUint16x8(0, 1, 0x7FFF, 0x8000, 0xFFFF, 0x10, 0xABCD, 2)
	want := "u16x8(0x0000, 0x0001, 0x7fff, 0x8000, 0xffff, 0x0010, 0xabcd, 0x0002)"
	if got := v.String(); got != want {
		t.Errorf("String: got %q, want %q", got, want)
	}
}

func TestReplaceLane(t *testing.T) {
	v := NewUint16x8(0, 1, 2, 3, 4, 5, 6, 7)
	for i := range Uint16x8LaneCount {
		got, err := ReplaceLaneUint16x8(v, i, 0xBEEF)
		if err != nil {
			t.Fatalf("ReplaceLaneUint16x8(%d): %v", i, err)
		}
		lanes := got.Uint16Lanes()
		for j, x := range lanes {
			want := uint16(j)
			if j == i {
				want = 0xBEEF
			}
			if x != want {
				t.Errorf("ReplaceLaneUint16x8(%d): lane %d: got 0x%04x, want 0x%04x", i, j, x, want)
			}
		}
	}
	if v != NewUint16x8(0, 1, 2, 3, 4, 5, 6, 7) {
		t.Errorf("ReplaceLaneUint16x8 mutated its operand: %v", v)
	}
}
