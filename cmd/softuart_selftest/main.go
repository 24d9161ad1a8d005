//go:build rp2040 || rp2350

// On-target checks of the transmit path: idle level, frame timing against
// the ideal bit period and data independence of the frame length. Results
// go to the USB console; the LED blinks three times on success and keeps
// blinking slowly on failure.
//
// Build with -tags softuart_twopin to check the dedicated TX pin; a
// single-pin build needs the external pull-up network fitted on RXPin.
package main

import (
	"time"

	"machine"

	"github.com/jangala-dev/tinygo-softuart/pattern"
	"github.com/jangala-dev/tinygo-softuart/softuart"
)

const (
	framesPerRun = 256
	// Allowed frame period error, in hundredths of a percent. Covers the
	// setup around each frame as well as the bit delay.
	maxErrX100 = 250
)

var u = softuart.UART0

func ledBlink(times int, on time.Duration) {
	for i := 0; i < times; i++ {
		machine.LED.High()
		time.Sleep(on)
		machine.LED.Low()
		time.Sleep(on)
	}
}

// timeFrames sends b framesPerRun times and returns the mean frame length.
func timeFrames(b byte) time.Duration {
	start := time.Now()
	for i := 0; i < framesPerRun; i++ {
		_ = u.WriteByte(b)
	}
	return time.Since(start) / framesPerRun
}

// errX100 is the deviation of got from want in hundredths of a percent.
func errX100(got, want time.Duration) int {
	return int((got - want) * 10000 / want)
}

func main() {
	// Give the monitor time to attach.
	time.Sleep(3 * time.Second)

	println("softuart self-test starting")
	println("baud =", softuart.Baud, "  tx =", int(softuart.TXPin), "  rx =", int(softuart.RXPin))

	machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	u.Configure()

	ideal := 10 * time.Second / softuart.Baud

	pass, fail := 0, 0
	defer func() {
		println("")
		println("Summary")
		println("  passed =", pass)
		println("  failed =", fail)
		if fail == 0 {
			ledBlink(3, 120*time.Millisecond)
		} else {
			for {
				ledBlink(1, 600*time.Millisecond)
				time.Sleep(800 * time.Millisecond)
			}
		}
	}()

	run := func(name string, f func() string) {
		println("")
		println("[Test]", name)
		if msg := f(); msg == "" {
			println("  PASS")
			pass++
		} else {
			println("  FAIL:", msg)
			fail++
		}
	}

	run("idle: line high after Configure", func() string {
		if !softuart.TXPin.Get() {
			return "line low"
		}
		return ""
	})

	run("timing: frame period within tolerance", func() string {
		got := timeFrames(0x55)
		e := errX100(got, ideal)
		println("  frame =", int(got/time.Nanosecond), "ns  ideal =", int(ideal/time.Nanosecond), "ns  err =", formatFixed2(e), "%")
		if e > maxErrX100 || e < -maxErrX100 {
			return "frame period out of tolerance"
		}
		return ""
	})

	run("timing: length independent of data", func() string {
		var lo, hi time.Duration
		for i, b := range []byte{0x00, 0xFF, 0x55, 0xAA, 0x01, 0x80} {
			d := timeFrames(b)
			if i == 0 || d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
		spread := errX100(hi, lo)
		println("  spread =", formatFixed2(spread), "%")
		// Interrupts between frames add noise to every run.
		if spread > 50 {
			return "frame length depends on data"
		}
		return ""
	})

	run("idle: line high after every walk value", func() string {
		b := pattern.Walk.First()
		for i := 0; i < 20; i++ {
			_ = u.WriteByte(b)
			if !softuart.TXPin.Get() {
				return "line low after " + hexByte(b)
			}
			b, _ = pattern.Walk.Next(b)
		}
		return ""
	})

	run("api: Write sends every byte", func() string {
		msg := []byte("softuart self-test\r\n")
		n, err := u.Write(msg)
		if err != nil || n != len(msg) {
			return "short write"
		}
		if err := u.Flush(); err != nil {
			return "flush failed"
		}
		return ""
	})

	println("")
	println("All tests completed")
}

// --- tiny helpers (no fmt) ---

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := false
	if n < 0 {
		neg = true
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + (n % 10))
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + itoa(n)
	}
	return itoa(n)
}

func formatFixed2(x int) string {
	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}
	whole := x / 100
	frac := x % 100
	return sign + itoa(whole) + "." + twoDigits(frac)
}

func hexByte(v byte) string {
	const hexdigits = "0123456789ABCDEF"
	return string([]byte{hexdigits[v>>4], hexdigits[v&0xF]})
}
