package deck

import (
	"math"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultThreshold)

	tests := []struct {
		offset float64
		want   Decision
	}{
		{150, Accept},
		{100, Accept},
		{100.0001, Accept},
		{99.999, Cancel},
		{40, Cancel},
		{0, Cancel},
		{-40, Cancel},
		{-99.999, Cancel},
		{-100, Reject},
		{-150, Reject},
		{math.Inf(1), Accept},
		{math.Inf(-1), Reject},
		{math.NaN(), Cancel},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.offset, 0); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestClassifyIgnoresVelocity(t *testing.T) {
	c := NewClassifier(100)
	for _, v := range []float64{-5000, 0, 5000} {
		if got := c.Classify(50, v); got != Cancel {
			t.Errorf("Classify(50, %v) = %v, want cancel", v, got)
		}
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := NewClassifier(25)
	for i := 0; i < 100; i++ {
		offset := float64(i-50) * 1.5
		first := c.Classify(offset, 0)
		if again := c.Classify(offset, 0); again != first {
			t.Fatalf("Classify(%v) not stable: %v then %v", offset, first, again)
		}
	}
}

func TestOffsetForRoundTrips(t *testing.T) {
	c := NewClassifier(80)
	for _, d := range []Decision{Accept, Reject, Cancel} {
		if got := c.Classify(c.OffsetFor(d), 0); got != d {
			t.Errorf("Classify(OffsetFor(%v)) = %v", d, got)
		}
	}
}

func TestTracker(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker()

	if got := tr.Move(Sample{X: 50, At: start}); got != 0 {
		t.Errorf("Move before Begin = %v, want 0", got)
	}

	tr.Begin(Sample{X: 200, Y: 10, At: start})
	if !tr.Active() {
		t.Fatal("tracker should be active after Begin")
	}
	if got := tr.Move(Sample{X: 260, Y: 90, At: start.Add(50 * time.Millisecond)}); got != 60 {
		t.Errorf("Move offset = %v, want 60 (vertical ignored)", got)
	}
	if got := tr.Move(Sample{X: 150, Y: -40, At: start.Add(100 * time.Millisecond)}); got != -50 {
		t.Errorf("Move offset = %v, want -50", got)
	}

	offset, velocity := tr.End(Sample{X: 140, At: start.Add(200 * time.Millisecond)})
	if offset != -60 {
		t.Errorf("End offset = %v, want -60", offset)
	}
	if math.Abs(velocity-(-100)) > 1e-9 {
		t.Errorf("End velocity = %v, want -100", velocity)
	}
	if tr.Active() || tr.Offset() != 0 {
		t.Error("tracker should reset after End")
	}

	if o, v := tr.End(Sample{X: 999, At: start}); o != 0 || v != 0 {
		t.Errorf("End without Begin = (%v, %v), want zeros", o, v)
	}
}

func TestParseModeAndKey(t *testing.T) {
	modes := map[string]Mode{"": Terminating, "terminating": Terminating, "loop": Looping, "looping": Looping}
	for in, want := range modes {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("shuffle"); err == nil {
		t.Error("ParseMode(shuffle) should fail")
	}

	keys := map[string]Key{"ArrowLeft": KeyLeft, "right": KeyRight, " ": KeySpace, "Space": KeySpace}
	for in, want := range keys {
		got, err := ParseKey(in)
		if err != nil || got != want {
			t.Errorf("ParseKey(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseKey("up"); err == nil {
		t.Error("ParseKey(up) should fail")
	}
}
