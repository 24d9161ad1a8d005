//go:build softuart_rxirq

package softuart

import "testing"

func TestConfigure_EnablesPinChangeInterrupt(t *testing.T) {
	u := newTestUART()
	u.Configure()

	if sim.pcmsk.val&rxMask == 0 {
		t.Fatalf("PCMSK=%#02x; RX not unmasked", sim.pcmsk.val)
	}
	if sim.gimsk.val&pcie == 0 {
		t.Fatalf("GIMSK=%#02x; PCIE not set", sim.gimsk.val)
	}
}

func TestWriteByte_DropsOwnPinChangeFlag(t *testing.T) {
	u := newTestUART()
	u.Configure()
	sim.gifr.val = pcif

	_ = u.WriteByte(0x55)

	flagged := sim.gifr.val&pcif != 0
	if !twoPin && flagged {
		t.Fatal("PCIF left set by our own frame on the shared pin")
	}
	if twoPin && !flagged {
		t.Fatal("PCIF cleared though TX and RX are separate pins")
	}
}

func TestClose_MasksPinChange(t *testing.T) {
	u := newTestUART()
	u.Configure()
	_ = u.Close()
	if sim.pcmsk.val&rxMask != 0 {
		t.Fatal("RX still unmasked after Close")
	}
}
