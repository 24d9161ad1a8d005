// Package pattern defines deterministic byte sequences for exercising a serial
// link end to end, and a Checker that verifies a received stream against one.
// It has no host dependencies so firmware can import it to generate the same
// sequences the host checks.
package pattern

import "errors"

// Sequence is a cyclic byte sequence in which every value occurs at most once
// per cycle, so any received byte identifies its position.
type Sequence interface {
	// First is the value a transmitter starts with.
	First() byte
	// Next returns the successor of prev, or false if prev is not part of
	// the sequence.
	Next(prev byte) (byte, bool)
}

var ErrUnknown = errors.New("pattern: unknown sequence")

// Sweep counts 0x00..0xFF and wraps, covering every byte value.
var Sweep Sequence = sweep{}

type sweep struct{}

func (sweep) First() byte                 { return 0 }
func (sweep) Next(prev byte) (byte, bool) { return prev + 1, true }

// Walk is the adversarial set: all-zero and all-one data, alternating bits,
// a single one walking up and a single zero walking up.
var Walk Sequence = table{
	0x00, 0xFF, 0x55, 0xAA,
	0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80,
	0xFE, 0xFD, 0xFB, 0xF7, 0xEF, 0xDF, 0xBF, 0x7F,
}

// table is a sequence given by its values; entries must be distinct.
type table []byte

func (t table) First() byte { return t[0] }

func (t table) Next(prev byte) (byte, bool) {
	for i, v := range t {
		if v == prev {
			return t[(i+1)%len(t)], true
		}
	}
	return 0, false
}

var byName = map[string]Sequence{
	"sweep": Sweep,
	"walk":  Walk,
}

// Names lists the sequences ByName accepts.
func Names() []string { return []string{"sweep", "walk"} }

// ByName returns the named sequence.
func ByName(name string) (Sequence, error) {
	if s, ok := byName[name]; ok {
		return s, nil
	}
	return nil, ErrUnknown
}

// Fill writes successive values of s into p, continuing after prev, and
// returns the last value written. Use s.First() with Fill(p[1:]) to start a
// stream.
func Fill(s Sequence, prev byte, p []byte) byte {
	for i := range p {
		next, ok := s.Next(prev)
		if !ok {
			next = s.First()
		}
		p[i] = next
		prev = next
	}
	return prev
}
