package core

import (
	"time"
)

// NewFrameClock creates a clock that ticks once per frame
func NewFrameClock(cfg TimeConfiguration) *FrameClock {
	var interval time.Duration
	if cfg.FramesPerSecond <= 0 {
		interval = time.Nanosecond
	} else {
		interval = time.Second / (time.Duration)(cfg.FramesPerSecond)
	}

	return &FrameClock{
		fps:       cfg.FramesPerSecond,
		fpsTicker: time.NewTicker(interval),
		start:     time.Now(),
	}
}

// FrameClock paces frames and counts them
type FrameClock struct {
	fps       int
	fpsTicker *time.Ticker

	start  time.Time
	frames uint64
}

// Fps gets the set frames per second
func (fc *FrameClock) Fps() int {
	return fc.fps
}

// FpsTicker gets the initialized fps ticker
func (fc *FrameClock) FpsTicker() *time.Ticker {
	return fc.fpsTicker
}

// Frame records a rendered frame and returns the frame number
// and the time since the clock started
func (fc *FrameClock) Frame() (uint64, time.Duration) {
	fc.frames++
	return fc.frames, time.Since(fc.start)
}

// Stop stops the ticker
func (fc *FrameClock) Stop() {
	fc.fpsTicker.Stop()
}
