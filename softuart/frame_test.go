package softuart

import "testing"

// recLine records the calls shiftOut makes.
type recLine struct {
	calls *[]string
	bits  *[]uint8
}

func (l recLine) write(bit uint8) {
	*l.calls = append(*l.calls, "write")
	*l.bits = append(*l.bits, bit)
}

func (l recLine) hold() { *l.calls = append(*l.calls, "hold") }

func TestFrameWord(t *testing.T) {
	tests := []struct {
		in   byte
		want uint16
	}{
		{0x00, 0x200},
		{0xFF, 0x3FE},
		{0x55, 0x2AA},
		{0x80, 0x300},
	}
	for _, tc := range tests {
		if got := frameWord(tc.in); got != tc.want {
			t.Fatalf("frameWord(%#02x)=%#03x; want %#03x", tc.in, got, tc.want)
		}
	}
}

func TestShiftOut_StartDataLSBFirstStop(t *testing.T) {
	var calls []string
	var bits []uint8
	shiftOut(recLine{&calls, &bits}, 0xA5)

	want := []uint8{0, 1, 0, 1, 0, 0, 1, 0, 1, 1}
	if len(bits) != len(want) {
		t.Fatalf("wrote %d bits; want %d", len(bits), len(want))
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Fatalf("bit %d = %d; want %d (all: %v)", i, bits[i], want[i], bits)
		}
	}
	if len(calls) != 2*frameBits {
		t.Fatalf("%d calls; want %d", len(calls), 2*frameBits)
	}
	for i, c := range calls {
		want := "write"
		if i%2 == 1 {
			want = "hold"
		}
		if c != want {
			t.Fatalf("call %d = %s; want %s", i, c, want)
		}
	}
}

func TestShiftOut_BitsAreZeroOrOne(t *testing.T) {
	for v := 0; v < 256; v++ {
		var calls []string
		var bits []uint8
		shiftOut(recLine{&calls, &bits}, byte(v))
		for i, b := range bits {
			if b > 1 {
				t.Fatalf("%#02x: bit %d = %d", v, i, b)
			}
		}
	}
}
