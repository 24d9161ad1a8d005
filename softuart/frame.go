// softuart/frame.go

package softuart

// Bit times per 8N1 frame: start, eight data bits, stop.
const frameBits = 10

// frameWord places c between a low start bit and a high stop bit so the frame
// can be shifted out LSB first.
func frameWord(c byte) uint16 {
	return 1<<(frameBits-1) | uint16(c)<<1
}

// txLine is the output half of a target: write drives TX to bit (0 or 1) and
// hold busy-waits for the rest of the bit period.
type txLine interface {
	write(bit uint8)
	hold()
}

// shiftOut emits one frame on l. The loop always runs frameBits times and
// does the same work for a 0 as for a 1, so the frame length depends only on
// the bit delay. The line is left high (stop/idle).
func shiftOut[L txLine](l L, c byte) {
	f := frameWord(c)
	for i := 0; i < frameBits; i++ {
		l.write(uint8(f) & 1)
		l.hold()
		f >>= 1
	}
}
