// Command softuart-monitor checks the test pattern a softuart board sends
// against what arrives on a USB-serial adapter.
//
//	softuart-monitor -device /dev/ttyUSB0 -pattern walk -count 100000
//
// The board must run examples/pattern (or anything looping over the same
// sequence) at the same baud rate. Exit status is 1 on any mismatch or
// error, or when nothing in the sequence was received.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/jangala-dev/tinygo-softuart/internal/hostserial"
	"github.com/jangala-dev/tinygo-softuart/pattern"
)

var (
	cfg      = hostserial.DefaultConfig(os.Getenv("SOFTUART_DEVICE"))
	seqName  = "walk"
	count    uint64
	duration time.Duration
)

func init() {
	flag.StringVar(&cfg.Device, "device", cfg.Device, "Serial device; defaults to $SOFTUART_DEVICE.")
	flag.IntVar(&cfg.Baud, "baud", cfg.Baud, "Baud rate the firmware was built for.")
	flag.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "Adapter read timeout.")
	flag.StringVar(&seqName, "pattern", seqName, "Sequence to expect: "+strings.Join(pattern.Names(), ", ")+".")
	flag.Uint64Var(&count, "count", count, "Stop after this many bytes, 0 for no limit.")
	flag.DurationVar(&duration, "timeout", duration, "Stop after this long, 0 to run until interrupted.")
}

func main() {
	flag.Parse()
	defer glog.Flush()

	seq, err := pattern.ByName(seqName)
	if err != nil {
		glog.Exitf("%v: %q", err, seqName)
	}

	port, err := hostserial.Open(cfg)
	if err != nil {
		glog.Exit(err)
	}
	defer port.Close()

	// Drop whatever the adapter buffered before we started.
	if err := port.Flush(); err != nil {
		glog.Warningf("flush: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	glog.Infof("listening on %s at %d baud, pattern %s", cfg.Device, cfg.Baud, seqName)
	c := pattern.NewChecker(seq)
	err = run(ctx, port, c, count)

	st := c.Stats()
	if err != nil {
		glog.Errorf("%v", err)
	}
	glog.Infof("done: %s", summary(st))
	if failed(st, err) {
		glog.Flush()
		port.Close()
		os.Exit(1)
	}
}
