//go:build softuart_baud57600

package softuart

const Baud = 57600
