//go:build !softuart_baud57600 && !softuart_baud230400

package softuart

// Baud is the line rate the bit delays are derived for.
const Baud = 115200
