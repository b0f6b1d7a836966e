package shortlist

import (
	"testing"
	"time"

	"github.com/yildizm/InternSwipe/internal/deck"
)

type profile struct {
	id    string
	name  string
	score float64
}

func (p profile) Key() string      { return p.id }
func (p profile) Headline() string { return p.name }
func (p profile) Match() float64   { return p.score }

func steppingClock() func() time.Time {
	t := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestShortlistWithEngine(t *testing.T) {
	items := []deck.Item{
		profile{"s1", "Aarav Singh", 0.92},
		profile{"s2", "Priya Patel", 0.88},
		profile{"s3", "Rohan Mehta", 0.85},
	}

	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	engine, err := deck.New(items, deck.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("deck.New() error = %v", err)
	}

	list := NewWithClock("employer", len(items), steppingClock())
	engine.Subscribe(list)

	for _, offset := range []float64{150, -150, 120} {
		engine.OnGestureEnd(offset)
		now = now.Add(deck.DefaultTransition)
	}
	engine.OnKey(deck.KeySpace)

	summary := list.Summary()
	if summary.Liked != 2 || summary.Passed != 1 {
		t.Errorf("liked=%d passed=%d, want 2 and 1", summary.Liked, summary.Passed)
	}
	if !summary.Exhausted {
		t.Error("summary should report the exhausted deck")
	}
	if summary.FinishedAt.IsZero() {
		t.Error("FinishedAt should be set once exhausted")
	}
	if summary.DetailViews != 0 {
		t.Errorf("space on an exhausted deck should not count, got %d", summary.DetailViews)
	}
	if len(summary.Shortlisted) != 2 || summary.Shortlisted[0].Key != "s1" || summary.Shortlisted[1].Key != "s3" {
		t.Errorf("shortlisted = %+v, want s1 then s3", summary.Shortlisted)
	}
	if summary.Shortlisted[0].Headline != "Aarav Singh" || summary.Shortlisted[0].Match != 0.92 {
		t.Errorf("entry should carry headline and match: %+v", summary.Shortlisted[0])
	}
	if !list.Contains("s3") || list.Contains("s2") {
		t.Error("Contains should follow accepted items only")
	}
	if summary.Reviewed() != 3 {
		t.Errorf("Reviewed() = %d, want 3", summary.Reviewed())
	}
	if rate := summary.LikeRate(); rate < 0.66 || rate > 0.67 {
		t.Errorf("LikeRate() = %v, want 2/3", rate)
	}
}

func TestShortlistDeduplicatesLoopingLikes(t *testing.T) {
	list := NewWithClock("student", 1, steppingClock())
	item := profile{"j1", "Intern", 0.5}

	list.ItemAccepted(item)
	list.ItemAccepted(item)
	list.DetailRequested(item)

	summary := list.Summary()
	if summary.Liked != 2 {
		t.Errorf("Liked = %d, want 2", summary.Liked)
	}
	if len(summary.Shortlisted) != 1 {
		t.Errorf("shortlisted should list j1 once, got %d", len(summary.Shortlisted))
	}
	if len(summary.Decisions) != 2 {
		t.Errorf("timeline should keep both decisions, got %d", len(summary.Decisions))
	}
	if summary.DetailViews != 1 {
		t.Errorf("DetailViews = %d, want 1", summary.DetailViews)
	}
	if !summary.Decisions[0].At.Before(summary.Decisions[1].At) {
		t.Error("decisions should be timestamped in order")
	}
}

func TestSummaryIsACopy(t *testing.T) {
	list := New("student", 2)
	list.ItemRejected(profile{id: "a"})

	summary := list.Summary()
	summary.Decisions[0].Key = "mutated"

	if list.Summary().Decisions[0].Key != "a" {
		t.Error("Summary() should not share storage with the shortlist")
	}
}

func TestSetDeckSizeKeepsHistory(t *testing.T) {
	list := New("student", 2)
	list.ItemAccepted(profile{id: "a"})
	list.DeckExhausted()
	list.SetDeckSize(5)

	summary := list.Summary()
	if summary.Reviewed() != 1 || summary.DeckSize != 5 {
		t.Errorf("SetDeckSize should keep decisions and update the size: %+v", summary)
	}
	if summary.Exhausted || !summary.FinishedAt.IsZero() {
		t.Errorf("SetDeckSize should reopen the session: %+v", summary)
	}
	if summary.PassDecided != 0 || summary.Remaining() != 5 {
		t.Errorf("SetDeckSize should start a fresh pass, decided=%d remaining=%d", summary.PassDecided, summary.Remaining())
	}

	list.ItemRejected(profile{id: "b"})
	if got := list.Summary().Remaining(); got != 4 {
		t.Errorf("Remaining() = %d, want 4", got)
	}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		name    string
		summary Summary
		want    int
	}{
		{"untouched", Summary{DeckSize: 3}, 3},
		{"partway", Summary{DeckSize: 3, PassDecided: 1}, 2},
		{"exhausted", Summary{DeckSize: 3, PassDecided: 3, Exhausted: true}, 0},
		{"looped past size", Summary{DeckSize: 2, PassDecided: 7}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.summary.Remaining(); got != tt.want {
				t.Errorf("Remaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLikeRateEmptySession(t *testing.T) {
	if rate := New("student", 2).Summary().LikeRate(); rate != 0 {
		t.Errorf("LikeRate() on empty session = %v, want 0", rate)
	}
}
