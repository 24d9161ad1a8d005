//go:build softuartdebug

package softuart

import "sync/atomic"

func (u *UART) dbgFrame() {
	atomic.AddUint32(&u.stats.FramesSent, 1)
}

// Called from the pin-change handler with the Put() outcome.
func (u *UART) dbgRx(putOK bool) {
	if putOK {
		atomic.AddUint32(&u.stats.RxBytes, 1)
	} else {
		atomic.AddUint32(&u.stats.RxDrops, 1)
	}
}

func (u *UART) dbgSpurious() {
	atomic.AddUint32(&u.stats.SpuriousEdges, 1)
}

func (u *UART) dbgNotify(sent bool) {
	if sent {
		atomic.AddUint32(&u.stats.NotifySent, 1)
	} else {
		atomic.AddUint32(&u.stats.NotifyDropped, 1)
	}
}

func (u *UART) dbgSpuriousWake() {
	atomic.AddUint32(&u.stats.SpuriousWakes, 1)
}
