package timersvc

import (
	"testing"
	"time"
)

func TestAfterFiresOnce(t *testing.T) {
	s := New()
	fired := make(chan struct{}, 2)
	s.After(10*time.Millisecond, func() { fired <- struct{}{} })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the callback to fire")
	}

	select {
	case <-fired:
		t.Fatal("callback fired a second time")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCancelPreventsFiring(t *testing.T) {
	s := New()
	fired := make(chan struct{}, 1)
	h := s.After(50*time.Millisecond, func() { fired <- struct{}{} })
	h.Cancel()

	select {
	case <-fired:
		t.Fatal("cancelled callback should not fire")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestCancelAfterFireIsNoop(t *testing.T) {
	s := New()
	fired := make(chan struct{}, 1)
	h := s.After(5*time.Millisecond, func() { fired <- struct{}{} })

	<-fired
	h.Cancel() // must not panic
}

func TestNilHandleCancelIsNoop(t *testing.T) {
	var h *Handle
	h.Cancel() // must not panic
}
