//go:build !softuart_rxirq

package softuart

const rxInterrupt = false
