// softuart/host.go

//go:build !tinygo

package softuart

// Host shim: the attiny85 register model backed by plain memory and a cycle
// counter, so Configure, WriteByte and the receive handler run under go test.

type Pin uint8

const NoPin Pin = 0xff

// Same wiring and clock as the attiny85 board file.
const (
	clockHz = 8_000_000

	RXPin          Pin = 3
	dedicatedTXPin Pin = 4
)

// GIMSK.PCIE and GIFR.PCIF on attiny85.
const (
	pcie uint8 = 1 << 5
	pcif uint8 = 1 << 5
)

// register8 mirrors volatile.Register8. set and get, when present, replace
// plain memory access so the simulator can observe writes and drive reads.
type register8 struct {
	val uint8
	set func(r *register8, v uint8)
	get func(r *register8) uint8
}

func (r *register8) Get() uint8 {
	if r.get != nil {
		return r.get(r)
	}
	return r.val
}

func (r *register8) Set(v uint8) {
	if r.set != nil {
		r.set(r, v)
		return
	}
	r.val = v
}

func (r *register8) SetBits(v uint8)      { r.Set(r.Get() | v) }
func (r *register8) ClearBits(v uint8)    { r.Set(r.Get() &^ v) }
func (r *register8) HasBits(v uint8) bool { return r.Get()&v != 0 }

// Sample is one write to the simulated PORTB.
type Sample struct {
	Cycle uint64
	Port  uint8
	DDR   uint8
	IRQ   bool // global interrupt enable at the time of the write
}

type simulator struct {
	cycles  uint64
	irq     bool
	samples []Sample
	// line is the externally driven level of RXPin while it is an input.
	// nil means the network holds it idle high.
	line func(cycle uint64) bool

	ddr, port, pin, pcmsk, gimsk, gifr register8
}

var sim simulator

func init() { sim.reset() }

// reset powers the simulated part back on: registers zero, interrupts
// enabled, cycle counter and trace cleared.
func (s *simulator) reset() {
	*s = simulator{irq: true}
	s.port.set = func(r *register8, v uint8) {
		r.val = v
		s.samples = append(s.samples, Sample{Cycle: s.cycles, Port: v, DDR: s.ddr.val, IRQ: s.irq})
	}
	s.pin.get = func(*register8) uint8 {
		// Outputs read back their latch; RX reads the external line.
		v := s.port.val & s.ddr.val
		if s.ddr.val&rxMask == 0 && (s.line == nil || s.line(s.cycles)) {
			v |= rxMask
		}
		return v
	}
	s.gifr.set = func(r *register8, v uint8) {
		// Flags clear by writing one.
		r.val &^= v
	}
}

func holdTx()     { sim.cycles += cyclesPerCount*txDelay + txLoopCycles }
func holdRx()     { sim.cycles += cyclesPerCount*rxDelay + rxLoopCycles }
func holdRxHalf() { sim.cycles += cyclesPerCount*rxHalfDelay + rxEntryCycles }

type interruptState bool

func disableInterrupts() interruptState {
	s := interruptState(sim.irq)
	sim.irq = false
	return s
}

func restoreInterrupts(state interruptState) { sim.irq = bool(state) }

// Public instance to mirror the target build.
var (
	UART0  = &_UART0
	_UART0 = UART{
		Buffer: NewRingBuffer(),
		ddr:    &sim.ddr,
		port:   &sim.port,
		pin:    &sim.pin,
		pcmsk:  &sim.pcmsk,
		gimsk:  &sim.gimsk,
		gifr:   &sim.gifr,
		notify: make(chan struct{}, 1),
		closed: make(chan struct{}),
	}
)
