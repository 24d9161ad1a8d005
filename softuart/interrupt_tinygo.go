//go:build tinygo

package softuart

import "runtime/interrupt"

type interruptState = interrupt.State

// disableInterrupts masks all interrupts and returns the previous state.
func disableInterrupts() interruptState {
	return interrupt.Disable()
}

// restoreInterrupts puts back the state returned by disableInterrupts.
func restoreInterrupts(state interruptState) {
	interrupt.Restore(state)
}
