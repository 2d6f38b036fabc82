package render

import "log"

// Host is the platform loop that presents frames.
type Host interface {
	SetVsync(enabled bool)
	// Run blocks until the loop exits. Normal termination returns nil.
	Run() error
	// Started reports whether at least one frame was produced.
	Started() bool
}

// AcquirePresentation runs the host, preferring display-synced presentation
// when wantVsync is set. If the host fails before producing a frame with vsync
// enabled, it is started once more without vsync. It reports whether vsync was
// in effect for the final run.
func AcquirePresentation(h Host, wantVsync bool) (bool, error) {
	h.SetVsync(wantVsync)
	err := h.Run()
	if err == nil || !wantVsync || h.Started() {
		return wantVsync, err
	}
	log.Printf("[render] vsync presentation unavailable (%v), retrying without vsync", err)
	h.SetVsync(false)
	// A second run after a failed start is platform dependent; some ebiten
	// backends refuse it and the error is returned as is.
	return false, h.Run()
}
