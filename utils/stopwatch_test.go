package utils

import (
	"math/rand"
	"testing"
	"time"
)

func near(d time.Duration, seconds float64) bool {
	diff := d.Seconds() - seconds
	return diff > -0.05 && diff < 0.05
}

func Test_Watch(t *testing.T) {
	watch := Watch{}

	watch.Start()
	time.Sleep(500 * time.Millisecond)
	dur := watch.Elapsed()
	if !near(dur, 0.5) {
		t.Error("seconds mismatch", dur.Seconds())
	}
	paused := watch.Pause()
	if !near(paused, 0.5) {
		t.Error("pause return mismatch", paused.Seconds())
	}
	time.Sleep(500 * time.Millisecond)
	dur2 := watch.Elapsed()
	if !near(dur2, 0.5) {
		t.Error("paused seconds mismatch", dur2.Seconds())
	}

	dur3 := watch.AbsoluteElapsed()
	if !near(dur3, 1) {
		t.Error("absolute seconds mismatch", dur3.Seconds())
	}
}

func Test_WatchDoublePausePanics(t *testing.T) {
	watch := Watch{}
	watch.Start()
	watch.Pause()
	defer func() {
		if recover() == nil {
			t.Error("second pause should panic")
		}
	}()
	watch.Pause()
}

func Test_Shuffle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	slice := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(slice, rng)

	seen := make([]bool, len(slice))
	for _, v := range slice {
		if seen[v] {
			t.Error("duplicate after shuffle", v)
		}
		seen[v] = true
	}
	if Sum(slice) != 45 {
		t.Error("shuffle lost elements", slice)
	}

	again := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	Shuffle(again, rand.New(rand.NewSource(7)))
	for i := range slice {
		if slice[i] != again[i] {
			t.Error("same seed should give same permutation", slice, again)
			break
		}
	}
}

func Test_MinMax(t *testing.T) {
	if Min(3, 2) != 2 || Max(3, 2) != 3 || Min(uint64(5), 9) != 5 {
		t.Error("min/max mismatch")
	}
}
