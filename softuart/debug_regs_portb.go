//go:build softuartdebug && (attiny85 || !tinygo)

package softuart

// Regs is a snapshot of the port and pin-change registers.
type Regs struct {
	DDR   uint8
	PORT  uint8
	PIN   uint8
	PCMSK uint8
	GIMSK uint8
	GIFR  uint8
}

func (u *UART) DebugRegs() Regs {
	return Regs{
		DDR:   u.ddr.Get(),
		PORT:  u.port.Get(),
		PIN:   u.pin.Get(),
		PCMSK: u.pcmsk.Get(),
		GIMSK: u.gimsk.Get(),
		GIFR:  u.gifr.Get(),
	}
}
