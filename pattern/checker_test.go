package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func stream(s Sequence, from byte, n int) []byte {
	p := make([]byte, n)
	p[0] = from
	Fill(s, from, p[1:])
	return p
}

func TestChecker_CleanStream(t *testing.T) {
	c := NewChecker(Sweep)
	p := stream(Sweep, 0x10, 1000)

	// Split feeds must not matter.
	require.Empty(t, c.Feed(p[:7]))
	require.Empty(t, c.Feed(p[7:]))

	require.True(t, c.Locked())
	require.Equal(t, Stats{Bytes: 1000}, c.Stats())
}

func TestChecker_ResyncsAfterCorruptedByte(t *testing.T) {
	c := NewChecker(Sweep)
	p := stream(Sweep, 0x00, 64)
	p[40] ^= 0x08 // 0x28 -> 0x20

	mm := c.Feed(p)
	// The corrupted byte breaks the sequence, and so does its good successor,
	// which no longer follows the (re-locked) corrupted value.
	require.Len(t, mm, 2)
	require.Equal(t, uint64(40), mm[0].Offset)
	require.Equal(t, byte(0x28), mm[0].Want)
	require.Equal(t, byte(0x20), mm[0].Got)
	require.Equal(t, uint64(41), mm[1].Offset)
	require.Equal(t, byte(0x21), mm[1].Want)
	require.Equal(t, byte(0x29), mm[1].Got)

	st := c.Stats()
	require.Equal(t, uint64(64), st.Bytes)
	require.Equal(t, uint64(2), st.Errors)
	require.Equal(t, uint64(2), st.Resyncs)
	require.True(t, c.Locked())
}

func TestChecker_DroppedByte(t *testing.T) {
	c := NewChecker(Walk)
	p := stream(Walk, Walk.First(), 40)
	p = append(p[:10], p[11:]...)

	mm := c.Feed(p)
	require.Len(t, mm, 1)
	require.Equal(t, uint64(10), mm[0].Offset)
	require.Equal(t, uint64(1), c.Stats().Resyncs)
}

func TestChecker_SkipsGarbageBeforeLock(t *testing.T) {
	c := NewChecker(Walk)
	in := append([]byte{0x03, 0x06}, stream(Walk, 0x55, 10)...)

	require.Empty(t, c.Feed(in))
	st := c.Stats()
	require.Equal(t, uint64(2), st.Skipped)
	require.Zero(t, st.Errors)
}

func TestChecker_ForeignBytesAfterLockAreErrors(t *testing.T) {
	c := NewChecker(Walk)
	mm := c.Feed([]byte{0x00, 0xFF, 0x03, 0x06, 0x55, 0xAA})

	require.Len(t, mm, 1)
	require.Equal(t, byte(0x55), mm[0].Want)
	require.Equal(t, byte(0x03), mm[0].Got)
	st := c.Stats()
	require.Equal(t, uint64(2), st.Errors)
	require.Equal(t, uint64(1), st.Resyncs)
	require.True(t, c.Locked())
}

func TestChecker_MismatchContext(t *testing.T) {
	c := NewChecker(Sweep)
	p := stream(Sweep, 0x00, 40)
	p[30] = 0xEE

	mm := c.Feed(p)
	require.NotEmpty(t, mm)
	ctx := mm[0].Context
	require.Len(t, ctx, ContextLen)
	require.Equal(t, byte(0xEE), ctx[len(ctx)-1])
	require.Equal(t, byte(29), ctx[len(ctx)-2])

	// Short streams carry what they have.
	c = NewChecker(Sweep)
	mm = c.Feed([]byte{0x01, 0x05})
	require.Equal(t, []byte{0x01, 0x05}, mm[0].Context)
}
