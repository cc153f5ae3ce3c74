// Package timersvc schedules one-shot delayed callbacks per room and
// hands back a cancel handle. The round-end, inter-round, and game-end
// delays are the only scheduled operations in the system; each must be
// cancellable so a disconnect or a manual state transition can supersede
// a pending timer before it fires.
package timersvc

import "time"

// Handle cancels a previously scheduled callback. Cancel is idempotent
// and safe to call after the timer has already fired.
type Handle struct {
	timer *time.Timer
}

// Cancel stops the underlying timer. If the callback already fired, this
// is a no-op.
func (h *Handle) Cancel() {
	if h == nil || h.timer == nil {
		return
	}
	h.timer.Stop()
}

// Service schedules delayed callbacks. It holds no per-room state itself
// — callers keep the returned Handle wherever the terminal-transition
// discipline needs it (on the Game for the round-end timer, on the Room
// for the inter-round/game-end schedule) and call Cancel before
// scheduling a superseding timer.
type Service struct{}

// New returns a Service.
func New() *Service {
	return &Service{}
}

// After schedules fn to run once, after d, on its own goroutine. The
// caller is responsible for submitting fn's actual work back onto the
// owning room's serialized command queue rather than running it inline,
// so the "no two operations on the same room interleave" contract holds.
func (s *Service) After(d time.Duration, fn func()) *Handle {
	return &Handle{timer: time.AfterFunc(d, fn)}
}
