//go:build softuart_twopin

package softuart

const twoPin = true

// TXPin is a dedicated output, held high whenever no frame is being sent.
const TXPin = dedicatedTXPin
