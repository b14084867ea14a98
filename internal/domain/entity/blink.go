package entity

import "time"

// Blinker toggles visibility every interval, driven by frame clock readings
type Blinker struct {
	interval time.Duration
	last     time.Time
	visible  bool
}

// NewBlinker creates a visible blinker whose first toggle is interval after now
func NewBlinker(interval time.Duration, now time.Time) *Blinker {
	return &Blinker{interval: interval, last: now, visible: true}
}

// Update toggles visibility when more than interval passed since the last toggle
func (b *Blinker) Update(now time.Time) {
	if now.Sub(b.last) > b.interval {
		b.visible = !b.visible
		b.last = now
	}
}

func (b *Blinker) Visible() bool {
	return b.visible
}
