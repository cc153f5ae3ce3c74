package timing

import (
	"sync"
	"testing"
)

func TestRealClockIsMonotonicNonDecreasing(t *testing.T) {
	c := RealClock{}
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Fatalf("second Now() (%v) went backwards from the first (%v)", b, a)
	}
}

func TestLockedRandIntnWithinBounds(t *testing.T) {
	r := NewLockedRand()
	for i := 0; i < 100; i++ {
		n := r.Intn(10)
		if n < 0 || n >= 10 {
			t.Fatalf("Intn(10) = %d, out of [0,10)", n)
		}
	}
}

func TestLockedRandConcurrentUseDoesNotRace(t *testing.T) {
	r := NewLockedRand()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Intn(100)
			s := make([]int, 10)
			r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		}()
	}
	wg.Wait()
}
