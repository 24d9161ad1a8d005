// softuart/attiny85_rxirq.go

//go:build attiny85 && softuart_rxirq

package softuart

import (
	"device/avr"
	"runtime/interrupt"
)

func init() {
	interrupt.New(avr.IRQ_PCINT0, func(interrupt.Interrupt) {
		UART0.handlePinChange()
	})
}
