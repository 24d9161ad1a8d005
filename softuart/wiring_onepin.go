//go:build !softuart_twopin

package softuart

// Single-pin half-duplex wiring: TX and RX share RXPin through the external
// diode/transistor network.
const twoPin = false

const TXPin = RXPin
