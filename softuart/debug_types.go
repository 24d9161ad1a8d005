//go:build softuartdebug

package softuart

import "sync/atomic"

// Stats holds counters since the last reset.
type Stats struct {
	// Transmit
	FramesSent uint32 // frames completed by WriteByte

	// Pin-change handler
	RxBytes       uint32 // bytes decoded and queued
	RxDrops       uint32 // bytes decoded while the ring was full
	SpuriousEdges uint32 // pin changes with RX already high
	NotifySent    uint32 // notify channel sends that succeeded
	NotifyDropped uint32 // notify channel sends that were coalesced

	// Blocking API behaviour
	SpuriousWakes uint32 // notify received but no data available
}

func (u *UART) DebugReset() {
	u.stats = Stats{}
}

func (u *UART) DebugStats() Stats {
	return Stats{
		FramesSent:    atomic.LoadUint32(&u.stats.FramesSent),
		RxBytes:       atomic.LoadUint32(&u.stats.RxBytes),
		RxDrops:       atomic.LoadUint32(&u.stats.RxDrops),
		SpuriousEdges: atomic.LoadUint32(&u.stats.SpuriousEdges),
		NotifySent:    atomic.LoadUint32(&u.stats.NotifySent),
		NotifyDropped: atomic.LoadUint32(&u.stats.NotifyDropped),
		SpuriousWakes: atomic.LoadUint32(&u.stats.SpuriousWakes),
	}
}
