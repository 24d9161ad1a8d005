// softuart/timing.go

package softuart

import (
	"errors"
	"time"
)

// Cycle counts of the AVR shift loops outside the busy-wait itself. They
// come from the compiled instruction schedule of shiftOut and
// handlePinChange and must be re-derived whenever either loop changes.
const (
	// Port image OR, the PORTB store, the frame shift, the loop compare and
	// branch, and the ldi that loads the delay count.
	txLoopCycles = 7
	// PINB read, shift/or into the result and the loop branch.
	rxLoopCycles = 7
	// Interrupt response, vector jump and handler prologue up to the first
	// busy-wait of handlePinChange.
	rxEntryCycles = 20
)

// Each busy-wait count is three cycles: dec (1) + brne taken (2).
const cyclesPerCount = 3

var (
	ErrZeroBaud    = errors.New("softuart: baud rate is zero")
	ErrBaudTooHigh = errors.New("softuart: baud rate too high for clock")
	ErrBaudTooLow  = errors.New("softuart: baud rate too low for 8-bit delay")
)

// Timing is the busy-wait tuning for one clock/baud pair. The firmware derives
// the same numbers as constants at build time; Timing exists so tests and host
// tools can reason about a configuration.
type Timing struct {
	ClockHz uint32
	Baud    uint32

	TxDelay     uint8 // counts per transmitted bit
	RxDelay     uint8 // counts per received bit
	RxHalfDelay uint8 // counts from the start edge to the middle of the start bit
}

// NewTiming derives delay counts for the given CPU clock and baud rate.
func NewTiming(clockHz, baud uint32) (Timing, error) {
	if baud == 0 {
		return Timing{}, ErrZeroBaud
	}
	bit := int((clockHz + baud/2) / baud)
	tx := (bit - txLoopCycles + 1) / cyclesPerCount
	rx := (bit - rxLoopCycles + 1) / cyclesPerCount
	half := max((bit/2-rxEntryCycles+1)/cyclesPerCount, 1)
	switch {
	case tx < 1 || rx < 1:
		return Timing{}, ErrBaudTooHigh
	case tx > 255 || rx > 255:
		return Timing{}, ErrBaudTooLow
	}
	return Timing{
		ClockHz:     clockHz,
		Baud:        baud,
		TxDelay:     uint8(tx),
		RxDelay:     uint8(rx),
		RxHalfDelay: uint8(half),
	}, nil
}

// BitCycles is the length of one transmitted bit in CPU cycles.
func (t Timing) BitCycles() uint32 {
	return cyclesPerCount*uint32(t.TxDelay) + txLoopCycles
}

// RxBitCycles is the spacing of receive samples in CPU cycles.
func (t Timing) RxBitCycles() uint32 {
	return cyclesPerCount*uint32(t.RxDelay) + rxLoopCycles
}

// BitPeriod is BitCycles as wall time.
func (t Timing) BitPeriod() time.Duration {
	return time.Duration(uint64(t.BitCycles()) * uint64(time.Second) / uint64(t.ClockHz))
}

// TxError is the deviation of the transmitted bit period from the ideal one,
// in percent. Positive means the line runs slow.
func (t Timing) TxError() float64 {
	return relError(t.BitCycles(), t.ClockHz, t.Baud)
}

// RxError is the same measure for the receive sample spacing.
func (t Timing) RxError() float64 {
	return relError(t.RxBitCycles(), t.ClockHz, t.Baud)
}

func relError(cycles, clockHz, baud uint32) float64 {
	return float64(cycles)*float64(baud)/float64(clockHz)*100 - 100
}
