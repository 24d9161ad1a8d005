// softuart/rp2.go

//go:build rp2040 || rp2350

package softuart

import (
	"machine"
	"runtime/volatile"
	"time"

	"tinygo.org/x/drivers/delay"
)

const (
	// RXPin is the receive pin, and the only pin in single-pin builds.
	RXPin          = machine.GP1
	dedicatedTXPin = machine.GP0
)

// Constant durations so delay.Sleep inlines to its bare cycle loop.
const (
	bitPeriod  = time.Second / Baud
	halfPeriod = bitPeriod / 2
)

// UART is a bit-banged 8N1 port on RP2040/RP2350 GPIO. TX is driven through
// the SIO set/clear registers; timing comes from delay.Sleep, which counts
// core cycles.
type UART struct {
	Buffer *RingBuffer // bytes decoded by the pin-change handler

	tx, rx machine.Pin

	notify chan struct{} // coalesced RX readiness
	closed chan struct{}

	stats Stats
}

var (
	UART0  = &_UART0
	_UART0 = UART{
		Buffer: NewRingBuffer(),
		tx:     TXPin,
		rx:     RXPin,
		notify: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
)

// Configure sets up the pins and, in rxirq builds, the falling-edge interrupt
// on RX. Call it once before the first WriteByte.
func (u *UART) Configure() {
	u.rx.Configure(machine.PinConfig{Mode: machine.PinInput})

	if twoPin {
		u.tx.High()
		u.tx.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}

	if rxInterrupt {
		_ = u.rx.SetInterrupt(machine.PinFalling, func(machine.Pin) {
			u.handlePinChange()
		})
	}
}

// WriteByte sends c as one 8N1 frame. It blocks for ten bit periods plus a
// few cycles of setup and always returns nil.
func (u *UART) WriteByte(c byte) error {
	u.tx.High()
	if !twoPin {
		u.tx.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}

	set, mask := u.tx.PortMaskSet()
	clr, _ := u.tx.PortMaskClear()
	u.emit(sioLine{regs: [2]*uint32{clr, set}, mask: mask}, c)

	if !twoPin {
		// Hand the line back to the resistor network.
		u.tx.Configure(machine.PinConfig{Mode: machine.PinInput})
	}
	u.dbgFrame()
	return nil
}

// emit shifts out one frame with interrupts disabled. The previous interrupt
// state is restored on return.
func (u *UART) emit(l sioLine, c byte) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	shiftOut(l, c)
}

// sioLine picks the clear or set register by bit value, so both levels cost
// one indexed store.
type sioLine struct {
	regs [2]*uint32 // clear, set
	mask uint32
}

func (l sioLine) write(bit uint8) { volatile.StoreUint32(l.regs[bit&1], l.mask) }

func (l sioLine) hold() { delay.Sleep(bitPeriod) }

// handlePinChange is the receive side, called from the GPIO interrupt on a
// falling RX edge. The byte is sampled mid-bit, LSB first; the stop bit is
// not checked.
func (u *UART) handlePinChange() {
	if u.rx.Get() {
		// Latched during one of our own frames; the line is idle again.
		u.dbgSpurious()
		return
	}

	delay.Sleep(halfPeriod)
	var c uint8
	for i := 0; i < 8; i++ {
		delay.Sleep(bitPeriod)
		c >>= 1
		if u.rx.Get() {
			c |= 0x80
		}
	}
	delay.Sleep(bitPeriod)

	ok := u.Buffer.Put(c)
	u.dbgRx(ok)
	u.wake()
}

// Close disables the RX interrupt and unblocks waiters.
func (u *UART) Close() error {
	_ = u.rx.SetInterrupt(0, nil)
	u.release()
	return nil
}
