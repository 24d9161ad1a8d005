//go:build softuart_baud230400

package softuart

const Baud = 230400
