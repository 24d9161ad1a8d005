package softuart

import (
	"math"
	"testing"
	"time"
)

func TestNewTiming_KnownConfigurations(t *testing.T) {
	tests := []struct {
		name      string
		clock     uint32
		baud      uint32
		txDelay   uint8
		bitCycles uint32
		maxErr    float64 // percent
	}{
		{"8MHz 115200", 8_000_000, 115200, 21, 70, 1.0},
		{"8MHz 230400", 8_000_000, 230400, 9, 34, 2.5},
		{"8MHz 57600", 8_000_000, 57600, 44, 139, 0.5},
		{"16MHz 115200", 16_000_000, 115200, 44, 139, 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tm, err := NewTiming(tc.clock, tc.baud)
			if err != nil {
				t.Fatalf("NewTiming: %v", err)
			}
			if tm.TxDelay != tc.txDelay {
				t.Fatalf("TxDelay=%d; want %d", tm.TxDelay, tc.txDelay)
			}
			if tm.BitCycles() != tc.bitCycles {
				t.Fatalf("BitCycles=%d; want %d", tm.BitCycles(), tc.bitCycles)
			}
			if e := math.Abs(tm.TxError()); e > tc.maxErr {
				t.Fatalf("TxError=%.2f%%; want within %.1f%%", tm.TxError(), tc.maxErr)
			}
			if e := math.Abs(tm.RxError()); e > tc.maxErr {
				t.Fatalf("RxError=%.2f%%; want within %.1f%%", tm.RxError(), tc.maxErr)
			}
			if tm.RxHalfDelay < 1 {
				t.Fatal("RxHalfDelay must be at least one count")
			}
		})
	}
}

func TestNewTiming_Errors(t *testing.T) {
	tests := []struct {
		clock, baud uint32
		want        error
	}{
		{8_000_000, 0, ErrZeroBaud},
		{8_000_000, 2_000_000, ErrBaudTooHigh},
		{8_000_000, 9600, ErrBaudTooLow},
	}
	for _, tc := range tests {
		if _, err := NewTiming(tc.clock, tc.baud); err != tc.want {
			t.Fatalf("NewTiming(%d, %d): err=%v; want %v", tc.clock, tc.baud, err, tc.want)
		}
	}
}

func TestTiming_BitPeriod(t *testing.T) {
	tm, _ := NewTiming(8_000_000, 115200)
	if got := tm.BitPeriod(); got != 8750*time.Nanosecond {
		t.Fatalf("BitPeriod=%v; want 8.75µs", got)
	}
}

func TestBuildConstants_MatchNewTiming(t *testing.T) {
	tm, err := NewTiming(clockHz, Baud)
	if err != nil {
		t.Fatalf("NewTiming(clockHz, Baud): %v", err)
	}
	if tm.TxDelay != txDelay || tm.RxDelay != rxDelay || tm.RxHalfDelay != rxHalfDelay {
		t.Fatalf("NewTiming=%+v; constants tx=%d rx=%d half=%d", tm, txDelay, rxDelay, rxHalfDelay)
	}
}
