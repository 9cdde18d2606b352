package utils

import (
	"sync"
	"time"
)

// Watch is a stopwatch that can be paused once, freezing Elapsed while AbsoluteElapsed keeps running.
// Safe to read from other goroutines (e.g. a progress printer).
type Watch struct {
	mu        sync.RWMutex
	paused    bool
	pauseTime time.Time
	startTime time.Time
}

func (w *Watch) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.paused {
		panic("watch cant start because paused")
	}
	w.startTime = time.Now()
}

// Elapsed stops advancing once paused.
func (w *Watch) Elapsed() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.paused {
		return w.pauseTime.Sub(w.startTime)
	}
	return time.Since(w.startTime)
}

func (w *Watch) AbsoluteElapsed() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return time.Since(w.startTime)
}

func (w *Watch) Pause() time.Duration { // returns currently elapsed time
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.paused {
		panic("watch already paused")
	}
	w.pauseTime = time.Now()
	w.paused = true
	return w.pauseTime.Sub(w.startTime)
}
