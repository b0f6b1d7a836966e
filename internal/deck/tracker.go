package deck

import "time"

// Sample is a single pointer position reading
type Sample struct {
	X  float64
	Y  float64
	At time.Time
}

// Tracker turns a stream of pointer samples into a horizontal drag offset.
// Only the X delta from the start of the gesture is kept.
type Tracker struct {
	start  Sample
	last   Sample
	prev   Sample
	offset float64
	active bool
}

// NewTracker creates an idle tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin starts a new gesture at s
func (t *Tracker) Begin(s Sample) {
	t.start = s
	t.last = s
	t.prev = s
	t.offset = 0
	t.active = true
}

// Move records a sample and returns the current offset
func (t *Tracker) Move(s Sample) float64 {
	if !t.active {
		return 0
	}
	t.prev = t.last
	t.last = s
	t.offset = s.X - t.start.X
	return t.offset
}

// End finishes the gesture and returns the final offset together with the
// horizontal velocity in units per second. The tracker resets afterwards.
func (t *Tracker) End(s Sample) (offset, velocity float64) {
	if !t.active {
		return 0, 0
	}
	t.Move(s)
	offset = t.offset

	if dt := t.last.At.Sub(t.prev.At).Seconds(); dt > 0 {
		velocity = (t.last.X - t.prev.X) / dt
	}

	t.Reset()
	return offset, velocity
}

// Offset returns the offset of the gesture in progress
func (t *Tracker) Offset() float64 {
	return t.offset
}

// Active reports whether a gesture is in progress
func (t *Tracker) Active() bool {
	return t.active
}

// Reset drops the gesture in progress
func (t *Tracker) Reset() {
	t.offset = 0
	t.active = false
}
