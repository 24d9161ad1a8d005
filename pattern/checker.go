package pattern

// ContextLen is how many received bytes a Mismatch carries, ending with the
// offending byte.
const ContextLen = 16

// Stats summarises a checked stream.
type Stats struct {
	Bytes   uint64 // bytes fed
	Skipped uint64 // bytes before the first lock
	Errors  uint64 // bytes after the first lock that did not fit the sequence
	Resyncs uint64 // times the checker locked on again after an error
}

// Mismatch is one received byte that broke the sequence while the checker
// was locked.
type Mismatch struct {
	Offset  uint64 // position in the stream, counting from zero
	Want    byte
	Got     byte
	Context []byte // last received bytes, Got included
}

// Checker follows a stream of bytes from a transmitter looping over a
// Sequence. It locks on to the first byte that belongs to the sequence; after
// a mismatch it re-locks on the received byte, so a single corrupted byte
// costs one error rather than the rest of the stream.
type Checker struct {
	seq Sequence

	acquired bool // locked at least once
	locked   bool
	want     byte

	recent [ContextLen]byte
	stats  Stats
}

// NewChecker returns a Checker for s, not yet locked.
func NewChecker(s Sequence) *Checker {
	return &Checker{seq: s}
}

// Stats returns the counters so far.
func (c *Checker) Stats() Stats { return c.stats }

// Locked reports whether the checker is following the sequence.
func (c *Checker) Locked() bool { return c.locked }

// Feed checks p and returns the mismatches it found, in order.
func (c *Checker) Feed(p []byte) []Mismatch {
	var out []Mismatch
	for _, b := range p {
		off := c.stats.Bytes
		c.stats.Bytes++
		c.remember(b)

		if c.locked {
			if b == c.want {
				c.want, _ = c.seq.Next(b)
				continue
			}
			c.stats.Errors++
			out = append(out, Mismatch{Offset: off, Want: c.want, Got: b, Context: c.context()})
		}

		next, ok := c.seq.Next(b)
		switch {
		case ok && c.acquired:
			c.stats.Resyncs++
		case !ok && c.acquired && !c.locked:
			// Still hunting after losing lock.
			c.stats.Errors++
		case !ok && !c.acquired:
			c.stats.Skipped++
		}
		c.locked, c.want = ok, next
		c.acquired = c.acquired || ok
	}
	return out
}

func (c *Checker) remember(b byte) {
	copy(c.recent[:], c.recent[1:])
	c.recent[ContextLen-1] = b
}

func (c *Checker) context() []byte {
	n := c.stats.Bytes
	if n > ContextLen {
		n = ContextLen
	}
	out := make([]byte, n)
	copy(out, c.recent[ContextLen-int(n):])
	return out
}
