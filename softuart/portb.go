// softuart/portb.go

//go:build attiny85 || !tinygo

// Register-level implementation for parts with a single PORTB and one
// pin-change interrupt block (attiny25/45/85). The host build runs the same
// code against simulated registers.

package softuart

const (
	txMask = uint8(1) << (TXPin & 7)
	rxMask = uint8(1) << (RXPin & 7)
	rxBit  = uint8(RXPin & 7)
)

// UART is a bit-banged 8N1 port on PORTB.
//
// Ownership of the TX pin: WriteByte owns it for the length of one frame.
// In single-pin builds it is handed back to the external network (input, no
// pull-up) before WriteByte returns.
type UART struct {
	Buffer *RingBuffer // bytes decoded by the pin-change handler

	ddr   *register8
	port  *register8
	pin   *register8
	pcmsk *register8
	gimsk *register8
	gifr  *register8

	notify chan struct{} // coalesced RX readiness
	closed chan struct{}

	stats Stats
}

// Configure sets up the pins and, in rxirq builds, the pin-change interrupt.
// Call it once before the first WriteByte.
func (u *UART) Configure() {
	// RX is driven by the external network, never pulled up from here.
	u.ddr.ClearBits(rxMask)
	u.port.ClearBits(rxMask)

	if twoPin {
		// Level first so the pin never glitches low on becoming an output.
		u.port.SetBits(txMask)
		u.ddr.SetBits(txMask)
	}

	if rxInterrupt {
		u.pcmsk.SetBits(rxMask)
		u.gimsk.SetBits(pcie)
	}
}

// WriteByte sends c as one 8N1 frame. It blocks for ten bit periods plus a
// few cycles of setup and always returns nil.
func (u *UART) WriteByte(c byte) error {
	u.port.SetBits(txMask)
	if !twoPin {
		u.ddr.SetBits(txMask)
	}

	u.emit(c)

	if !twoPin {
		// Hand the line back to the resistor network.
		u.ddr.ClearBits(txMask)
		u.port.ClearBits(txMask)
	}
	u.dbgFrame()
	return nil
}

// emit shifts out one frame with interrupts disabled. The previous interrupt
// state is restored on return.
func (u *UART) emit(c byte) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	shiftOut(portLine{reg: u.port, lo: u.port.Get() &^ txMask}, c)

	if !twoPin && rxInterrupt {
		// Our own edges latched the pin-change flag.
		u.gifr.Set(pcif)
	}
}

// portLine writes the whole port from a precomputed image, so a 1 bit costs
// exactly the same instructions as a 0 bit.
type portLine struct {
	reg *register8
	lo  uint8 // port image with TX low
}

func (l portLine) write(bit uint8) { l.reg.Set(l.lo | txMask&-bit) }

func (l portLine) hold() { holdTx() }

// handlePinChange is the receive side. It runs in the pin-change ISR with
// interrupts disabled. A low RX level is the leading edge of a start bit:
// the byte is sampled mid-bit, LSB first, with the same busy-wait scheme as
// the transmitter. The stop bit is not checked.
func (u *UART) handlePinChange() {
	if u.pin.HasBits(rxMask) {
		// Rising edge, or the tail of one of our own frames.
		u.dbgSpurious()
		return
	}

	holdRxHalf()
	var c uint8
	for i := 0; i < 8; i++ {
		holdRx()
		c = c>>1 | (u.pin.Get()>>rxBit)<<7
	}

	// Into the stop bit, then drop the flag the data edges latched.
	holdRx()
	u.gifr.Set(pcif)

	ok := u.Buffer.Put(c)
	u.dbgRx(ok)
	u.wake()
}

// Close masks the RX pin-change source and unblocks waiters.
func (u *UART) Close() error {
	u.pcmsk.ClearBits(rxMask)
	u.release()
	return nil
}
