//go:build softuart_rxirq

package softuart

// Incoming frames are decoded from the RX pin-change interrupt.
const rxInterrupt = true
