package deck

import (
	"math"
	"sync"
	"time"
)

const (
	// DefaultTransition matches the card exit animation
	DefaultTransition = 200 * time.Millisecond
	// DefaultExitOffset is where an accepted or rejected card animates to
	DefaultExitOffset = 300.0
)

const exhausted = -1

// Option configures an Engine
type Option func(*options)

type options struct {
	mode       Mode
	threshold  float64
	transition time.Duration
	exitOffset float64
	now        func() time.Time
}

// WithMode selects terminating or looping advancement
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithThreshold sets the swipe threshold
func WithThreshold(t float64) Option {
	return func(o *options) { o.threshold = t }
}

// WithTransition sets how long the engine ignores input after a swipe
func WithTransition(d time.Duration) Option {
	return func(o *options) { o.transition = d }
}

// WithExitOffset sets the offset a dismissed card animates to
func WithExitOffset(x float64) Option {
	return func(o *options) { o.exitOffset = x }
}

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Engine owns a deck of items, the cursor into it and the gesture offset of
// the card on top. It is safe for concurrent use, although input is expected
// to arrive from a single interaction loop.
type Engine struct {
	mu sync.Mutex

	items      []Item
	mode       Mode
	classifier Classifier
	transition time.Duration
	exitOffset float64
	now        func() time.Time

	cursor   int
	laps     int
	offset   float64
	dragging bool

	settleAt   time.Time
	exitItem   Item
	exitTarget float64

	listeners map[int]Listener
	order     []int
	nextID    int
}

// New creates an engine over items. The slice is copied; item order is the
// display order.
func New(items []Item, opts ...Option) (*Engine, error) {
	o := options{
		mode:       Terminating,
		threshold:  DefaultThreshold,
		transition: DefaultTransition,
		exitOffset: DefaultExitOffset,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateOptions(&o, items); err != nil {
		return nil, err
	}

	e := &Engine{
		items:      append([]Item(nil), items...),
		mode:       o.mode,
		classifier: NewClassifier(o.threshold),
		transition: o.transition,
		exitOffset: o.exitOffset,
		now:        o.now,
		listeners:  make(map[int]Listener),
	}
	e.rewind()
	return e, nil
}

func validateOptions(o *options, items []Item) error {
	if o.mode != Terminating && o.mode != Looping {
		return configError("mode", o.mode, "unknown mode")
	}
	if math.IsNaN(o.threshold) || o.threshold <= 0 {
		return configError("threshold", o.threshold, "must be greater than 0")
	}
	if o.transition <= 0 {
		return configError("transition", o.transition, "must be greater than 0")
	}
	if math.IsNaN(o.exitOffset) || o.exitOffset <= 0 {
		return configError("exit_offset", o.exitOffset, "must be greater than 0")
	}
	if o.now == nil {
		return configError("clock", nil, "must not be nil")
	}
	if o.mode == Looping && len(items) == 0 {
		return configError("items", 0, "looping deck needs at least one item")
	}
	for i, item := range items {
		if item == nil {
			return configError("items", i, "nil item")
		}
	}
	return nil
}

// Subscribe registers l for deck events and returns a function that removes it
func (e *Engine) Subscribe(l Listener) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.listeners[id] = l
	e.order = append(e.order, id)

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, ok := e.listeners[id]; !ok {
			return
		}
		delete(e.listeners, id)
		for i, v := range e.order {
			if v == id {
				e.order = append(e.order[:i], e.order[i+1:]...)
				break
			}
		}
	}
}

// CurrentItem returns the item on top of the deck
func (e *Engine) CurrentItem() (Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursor == exhausted {
		return nil, false
	}
	return e.items[e.cursor], true
}

// Peek returns the item shown after the current one
func (e *Engine) Peek() (Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursor == exhausted {
		return nil, false
	}
	next := e.cursor + 1
	if next >= len(e.items) {
		if e.mode != Looping || len(e.items) < 2 {
			return nil, false
		}
		next = 0
	}
	return e.items[next], true
}

// IsExhausted reports whether a terminating deck has run out of items
func (e *Engine) IsExhausted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursor == exhausted
}

// Position returns the zero-based cursor, or Len() once exhausted
func (e *Engine) Position() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursor == exhausted {
		return len(e.items)
	}
	return e.cursor
}

// Len returns the number of items in the deck
func (e *Engine) Len() int {
	return len(e.items)
}

// Mode returns the advancement mode
func (e *Engine) Mode() Mode {
	return e.mode
}

// Threshold returns the classifier threshold
func (e *Engine) Threshold() float64 {
	return e.classifier.Threshold
}

// Transition returns the exit animation duration
func (e *Engine) Transition() time.Duration {
	return e.transition
}

// Laps returns how many times a looping deck wrapped around
func (e *Engine) Laps() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.laps
}

// Offset returns the offset the top card should be drawn at. While a
// dismissed card is animating out this is 0; see Exiting.
func (e *Engine) Offset() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.offset
}

// Dragging reports whether a gesture is in progress on the top card
func (e *Engine) Dragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dragging
}

// Transitioning reports whether the exit animation of the last swipe is
// still running
func (e *Engine) Transitioning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transitioningLocked()
}

// Exiting returns the card animating off screen and its target offset
func (e *Engine) Exiting() (Item, float64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.transitioningLocked() || e.exitItem == nil {
		return nil, 0, false
	}
	return e.exitItem, e.exitTarget, true
}

// OnGestureStart begins a drag on the top card. It returns false when the
// deck cannot take input right now.
func (e *Engine) OnGestureStart() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.acceptingLocked() {
		return false
	}
	e.dragging = true
	e.offset = 0
	return true
}

// OnGestureMove updates the drag offset of the top card
func (e *Engine) OnGestureMove(offset float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.acceptingLocked() {
		return false
	}
	e.dragging = true
	e.offset = offset
	return true
}

// OnGestureEnd classifies the released offset and applies the decision.
// Input dropped by the transition guard or an exhausted deck reports Cancel.
func (e *Engine) OnGestureEnd(offset float64) Decision {
	return e.release(offset, 0)
}

// OnGestureEndWithVelocity is OnGestureEnd for callers that track velocity
func (e *Engine) OnGestureEndWithVelocity(offset, velocity float64) Decision {
	return e.release(offset, velocity)
}

// OnKey applies a keyboard shortcut. Left and right synthesize a release at
// the threshold and share the gesture path; space requests the detail view.
func (e *Engine) OnKey(k Key) Decision {
	switch k {
	case KeyLeft:
		return e.release(e.classifier.OffsetFor(Reject), 0)
	case KeyRight:
		return e.release(e.classifier.OffsetFor(Accept), 0)
	case KeySpace:
		e.requestDetail()
	}
	return Cancel
}

// Advance applies a decision directly. It returns true when the cursor moved.
func (e *Engine) Advance(d Decision) bool {
	e.mu.Lock()
	if !e.acceptingLocked() {
		e.mu.Unlock()
		return false
	}
	events, moved := e.advanceLocked(d)
	listeners := e.listenersLocked()
	e.mu.Unlock()

	dispatch(listeners, events)
	return moved
}

// Reset rewinds the deck to the first item and clears the transition guard
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rewind()
}

func (e *Engine) release(offset, velocity float64) Decision {
	e.mu.Lock()
	if !e.acceptingLocked() {
		e.mu.Unlock()
		return Cancel
	}
	d := e.classifier.Classify(offset, velocity)
	events, _ := e.advanceLocked(d)
	listeners := e.listenersLocked()
	e.mu.Unlock()

	dispatch(listeners, events)
	return d
}

func (e *Engine) requestDetail() {
	e.mu.Lock()
	if e.cursor == exhausted {
		e.mu.Unlock()
		return
	}
	events := []event{{kind: eventDetail, item: e.items[e.cursor]}}
	listeners := e.listenersLocked()
	e.mu.Unlock()

	dispatch(listeners, events)
}

// advanceLocked applies d and returns the events to deliver once unlocked
func (e *Engine) advanceLocked(d Decision) ([]event, bool) {
	e.dragging = false
	e.offset = 0

	if !d.Advances() {
		return nil, false
	}

	item := e.items[e.cursor]
	events := make([]event, 0, 2)
	if d == Accept {
		events = append(events, event{kind: eventAccepted, item: item})
		e.exitTarget = e.exitOffset
	} else {
		events = append(events, event{kind: eventRejected, item: item})
		e.exitTarget = -e.exitOffset
	}
	e.exitItem = item
	e.settleAt = e.now().Add(e.transition)

	next := e.cursor + 1
	switch {
	case next < len(e.items):
		e.cursor = next
	case e.mode == Looping:
		e.cursor = 0
		e.laps++
	default:
		e.cursor = exhausted
		events = append(events, event{kind: eventExhausted})
	}
	return events, true
}

func (e *Engine) acceptingLocked() bool {
	return e.cursor != exhausted && !e.transitioningLocked()
}

func (e *Engine) transitioningLocked() bool {
	return !e.settleAt.IsZero() && e.now().Before(e.settleAt)
}

func (e *Engine) rewind() {
	e.cursor = 0
	if len(e.items) == 0 {
		e.cursor = exhausted
	}
	e.laps = 0
	e.offset = 0
	e.dragging = false
	e.settleAt = time.Time{}
	e.exitItem = nil
	e.exitTarget = 0
}

func (e *Engine) listenersLocked() []Listener {
	if len(e.listeners) == 0 {
		return nil
	}
	out := make([]Listener, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.listeners[id])
	}
	return out
}

func dispatch(listeners []Listener, events []event) {
	for _, ev := range events {
		for _, l := range listeners {
			ev.deliver(l)
		}
	}
}
