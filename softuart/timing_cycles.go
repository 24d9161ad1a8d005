// softuart/timing_cycles.go

//go:build attiny85 || !tinygo

package softuart

// Build-time delay counts for clockHz and Baud. Same arithmetic as NewTiming.
const (
	bitCycles   = (clockHz + Baud/2) / Baud
	txDelay     = (bitCycles - txLoopCycles + 1) / cyclesPerCount
	rxDelay     = (bitCycles - rxLoopCycles + 1) / cyclesPerCount
	rxHalfDelay = max((bitCycles/2-rxEntryCycles+1)/cyclesPerCount, 1)
)

// A clock/baud pair whose delays do not fit the 8-bit loop counter fails to
// compile here.
var (
	_ [txDelay - 1]struct{}
	_ [255 - txDelay]struct{}
	_ [rxDelay - 1]struct{}
	_ [255 - rxDelay]struct{}
)
