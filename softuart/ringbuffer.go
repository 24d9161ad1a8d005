// softuart/ringbuffer.go

// Receive ring shared between the pin-change ISR (Put) and the foreground
// (Get). Same layout and publish order as TinyGo's machine.RingBuffer, sized
// for parts with a few hundred bytes of RAM.

package softuart

// Must divide 256 so the uint8 head/tail wrap stays consistent.
const bufferSize uint8 = 16

// RingBuffer is a single-producer single-consumer byte queue.
type RingBuffer struct {
	rxbuffer [bufferSize]register8
	head     register8
	tail     register8
}

// NewRingBuffer returns a new ring buffer.
func NewRingBuffer() *RingBuffer {
	return &RingBuffer{}
}

// Size returns the total capacity of the buffer in bytes.
func (rb *RingBuffer) Size() uint8 {
	return bufferSize
}

// Used returns how many bytes in buffer have been used.
func (rb *RingBuffer) Used() uint8 {
	return uint8(rb.head.Get() - rb.tail.Get())
}

// Put stores a byte in the buffer. If the buffer is already full, it returns false.
func (rb *RingBuffer) Put(val byte) bool {
	if rb.Used() == bufferSize {
		return false
	}
	h := rb.head.Get()
	rb.rxbuffer[(h+1)%bufferSize].Set(val) // 1) write data
	rb.head.Set(h + 1)                     // 2) publish
	return true
}

// Get returns a byte from the buffer. If the buffer is empty, it returns (0, false).
func (rb *RingBuffer) Get() (byte, bool) {
	if rb.Used() == 0 {
		return 0, false
	}
	t := rb.tail.Get()
	v := rb.rxbuffer[(t+1)%bufferSize].Get() // 1) read current element
	rb.tail.Set(t + 1)                       // 2) publish consumption
	return v, true
}

// Clear resets the head and tail pointers to zero.
func (rb *RingBuffer) Clear() {
	rb.head.Set(0)
	rb.tail.Set(0)
}
