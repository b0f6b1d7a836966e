package monitor

import (
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Counter is a thread-safe monotonic counter
type Counter struct {
	value int64
	name  string
}

// NewCounter creates a new counter metric
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc increments the counter by 1
func (c *Counter) Inc() {
	atomic.AddInt64(&c.value, 1)
}

// Get returns the current counter value
func (c *Counter) Get() int64 {
	return atomic.LoadInt64(&c.value)
}

// Reset resets the counter to 0
func (c *Counter) Reset() {
	atomic.StoreInt64(&c.value, 0)
}

// Name returns the counter name
func (c *Counter) Name() string {
	return c.name
}

// Gauge holds a float64 that can be set at any time
type Gauge struct {
	bits uint64
	name string
}

// NewGauge creates a new gauge metric
func NewGauge(name string) *Gauge {
	return &Gauge{name: name}
}

// Set sets the gauge to value
func (g *Gauge) Set(value float64) {
	atomic.StoreUint64(&g.bits, math.Float64bits(value))
}

// Get returns the current gauge value
func (g *Gauge) Get() float64 {
	return math.Float64frombits(atomic.LoadUint64(&g.bits))
}

// Name returns the gauge name
func (g *Gauge) Name() string {
	return g.name
}

// TimerStats is a snapshot of a Timer
type TimerStats struct {
	Count int64         `json:"count"`
	Total time.Duration `json:"total_ns"`
	Min   time.Duration `json:"min_ns"`
	Max   time.Duration `json:"max_ns"`
	Avg   time.Duration `json:"avg_ns"`
}

// Timer aggregates duration measurements
type Timer struct {
	mu    sync.Mutex
	name  string
	stats TimerStats
}

// NewTimer creates a new timer metric
func NewTimer(name string) *Timer {
	return &Timer{name: name}
}

// Record adds one measurement. Negative durations are ignored.
func (t *Timer) Record(d time.Duration) {
	if d < 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stats.Count == 0 || d < t.stats.Min {
		t.stats.Min = d
	}
	if d > t.stats.Max {
		t.stats.Max = d
	}
	t.stats.Count++
	t.stats.Total += d
	t.stats.Avg = t.stats.Total / time.Duration(t.stats.Count)
}

// Stats returns the aggregated measurements
func (t *Timer) Stats() TimerStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Reset drops every measurement
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats = TimerStats{}
}

// Name returns the timer name
func (t *Timer) Name() string {
	return t.name
}
