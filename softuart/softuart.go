// softuart/softuart.go

// Package softuart is a bit-banged 8N1 UART for TinyGo targets that have no
// hardware UART to spare. WriteByte shifts a frame out on a GPIO pin with
// interrupts disabled and returns once the stop bit is on the wire. Wiring
// (one shared pin or two dedicated pins), interrupt-driven receive and baud
// rate are fixed at build time:
//
//	-tags softuart_twopin       dedicated TX and RX pins (default: one shared pin)
//	-tags softuart_rxirq        decode incoming frames from the pin-change interrupt
//	-tags softuart_baud57600    57600 baud (default 115200)
//	-tags softuart_baud230400   230400 baud
//
// In single-pin builds the pin is only an output while a frame is being sent;
// the rest of the time it is an input without pull-up and the external
// diode/transistor network keeps the line idle high.
package softuart

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Flusher is implemented by types that can flush buffered output to the underlying device.
type Flusher interface{ Flush() error }

var ErrBufferEmpty = errors.New("softuart: buffer empty")

var (
	_ drivers.UART = (*UART)(nil)
	_ Flusher      = (*UART)(nil)
)

// Readable returns a coalesced notification for RX readiness. The pin-change
// handler sends on it after queueing a byte; callers must re-check state after
// waking.
func (u *UART) Readable() <-chan struct{} { return u.notify }

// TryRead copies up to len(p) buffered bytes into p. It never blocks.
func (u *UART) TryRead(p []byte) int {
	n := 0
	for n < len(p) {
		b, ok := u.Buffer.Get()
		if !ok {
			break
		}
		p[n] = b
		n++
	}
	return n
}

// Read implements io.Reader with machine.UART semantics: it returns whatever
// is buffered, possibly nothing, and never blocks. Use ReadBlocking to wait.
func (u *UART) Read(p []byte) (int, error) {
	return u.TryRead(p), nil
}

// ReadByte returns one received byte, or ErrBufferEmpty.
func (u *UART) ReadByte() (byte, error) {
	if b, ok := u.Buffer.Get(); ok {
		return b, nil
	}
	return 0, ErrBufferEmpty
}

// Buffered returns the number of received bytes waiting to be read.
func (u *UART) Buffered() int { return int(u.Buffer.Used()) }

// Receive queues one byte as if it had been decoded from the line.
func (u *UART) Receive(b byte) {
	ok := u.Buffer.Put(b)
	u.dbgRx(ok)
	u.wake()
}

// Write implements io.Writer. Each byte is sent with WriteByte, so Write
// returns after the last stop bit; nothing is queued.
func (u *UART) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := u.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Writev writes the provided buffers in sequence with the same behaviour as Write.
func (u *UART) Writev(bufs ...[]byte) (int, error) {
	sent := 0
	for _, p := range bufs {
		n, err := u.Write(p)
		sent += n
		if err != nil {
			return sent, err
		}
	}
	return sent, nil
}

// Flush returns immediately: WriteByte does not return until its frame has
// left the pin.
func (u *UART) Flush() error { return nil }

// wake does a non-blocking send on notify. Safe from ISR context.
func (u *UART) wake() {
	select {
	case u.notify <- struct{}{}:
		u.dbgNotify(true)
	default:
		u.dbgNotify(false)
	}
}

// release unblocks waiters after Close.
func (u *UART) release() {
	select {
	case <-u.closed:
	default:
		close(u.closed)
	}
}
