package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/jangala-dev/tinygo-softuart/pattern"
)

const readChunk = 256

// run feeds everything read from r into c until ctx ends, limit bytes have
// been checked (zero means no limit) or r fails. A read that returns io.EOF
// is an adapter read timeout: the line was idle.
func run(ctx context.Context, r io.Reader, c *pattern.Checker, limit uint64) error {
	buf := make([]byte, readChunk)
	wasLocked := false
	for ctx.Err() == nil {
		want := len(buf)
		if limit > 0 {
			left := limit - c.Stats().Bytes
			if left == 0 {
				return nil
			}
			if left < uint64(want) {
				want = int(left)
			}
		}

		n, err := r.Read(buf[:want])
		if n > 0 {
			if glog.V(2) {
				glog.Infof("RX %s", hex.EncodeToString(buf[:n]))
			}
			for _, m := range c.Feed(buf[:n]) {
				glog.Warningf("mismatch at offset %d: want %02X got %02X, context %s",
					m.Offset, m.Want, m.Got, hex.EncodeToString(m.Context))
			}
			if c.Locked() != wasLocked {
				wasLocked = c.Locked()
				if wasLocked {
					glog.Infof("locked at offset %d", c.Stats().Bytes)
				} else {
					glog.Warningf("lost lock at offset %d", c.Stats().Bytes)
				}
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			glog.V(1).Info("idle")
		default:
			return fmt.Errorf("read: %w", err)
		}
	}
	return nil
}

// summary is the one-line result printed on exit.
func summary(st pattern.Stats) string {
	return fmt.Sprintf("bytes=%d skipped=%d errors=%d resyncs=%d",
		st.Bytes, st.Skipped, st.Errors, st.Resyncs)
}

// failed reports whether a run should exit non-zero.
func failed(st pattern.Stats, err error) bool {
	return err != nil || st.Errors > 0 || st.Bytes == st.Skipped
}
