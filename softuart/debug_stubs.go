//go:build !softuartdebug

package softuart

type Stats struct{}

func (u *UART) DebugReset()       {}
func (u *UART) DebugStats() Stats { return Stats{} }

type Regs struct{}

func (u *UART) DebugRegs() Regs { return Regs{} }

func (u *UART) dbgFrame()        {}
func (u *UART) dbgRx(bool)       {}
func (u *UART) dbgSpurious()     {}
func (u *UART) dbgNotify(bool)   {}
func (u *UART) dbgSpuriousWake() {}
