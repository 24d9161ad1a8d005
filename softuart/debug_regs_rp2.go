//go:build softuartdebug && (rp2040 || rp2350)

package softuart

// Regs is a snapshot of the line levels.
type Regs struct {
	TX bool
	RX bool
}

func (u *UART) DebugRegs() Regs {
	return Regs{TX: u.tx.Get(), RX: u.rx.Get()}
}
