// softuart/attiny85.go

//go:build attiny85

package softuart

import (
	"device"
	"device/avr"
	"machine"
)

// Board wiring and clock. clockHz must match the fuse-selected system clock;
// the bit delays are derived from it at build time.
const (
	clockHz = 8_000_000

	// RXPin is the receive pin, and the only pin in single-pin builds.
	RXPin          = machine.PB3
	dedicatedTXPin = machine.PB4
)

const (
	pcie = avr.GIMSK_PCIE
	pcif = avr.GIFR_PCIF
)

var (
	UART0  = &_UART0
	_UART0 = UART{
		Buffer: NewRingBuffer(),
		ddr:    avr.DDRB,
		port:   avr.PORTB,
		pin:    avr.PINB,
		pcmsk:  avr.PCMSK,
		gimsk:  avr.GIMSK,
		gifr:   avr.GIFR,
		notify: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
)

// spin busy-waits exactly 3*n cycles: mov (1), then n × (dec 1 + brne 2)
// less one for the final branch that falls through.
//
//go:inline
func spin(n uint8) {
	device.AsmFull(`
		mov {}, {n}
	1:
		dec {}
		brne 1b
	`, map[string]interface{}{"n": n})
}

//go:inline
func holdTx() { spin(txDelay) }

//go:inline
func holdRx() { spin(rxDelay) }

//go:inline
func holdRxHalf() { spin(rxHalfDelay) }
