// softuart/export.go

//go:build tinygo

package softuart

import (
	"machine"
	"runtime/volatile"
)

type Pin = machine.Pin

const NoPin = machine.NoPin

type register8 = volatile.Register8
