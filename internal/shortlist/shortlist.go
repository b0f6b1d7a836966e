package shortlist

import (
	"sync"
	"time"

	"github.com/yildizm/InternSwipe/internal/deck"
)

// Entry is one recorded decision
type Entry struct {
	Key      string    `json:"key"`
	Headline string    `json:"headline"`
	Decision string    `json:"decision"`
	Match    float64   `json:"match"`
	At       time.Time `json:"at"`
}

// Summary is a point-in-time copy of a browsing session
type Summary struct {
	Role        string    `json:"role"`
	DeckSize    int       `json:"deck_size"`
	Liked       int       `json:"liked"`
	Passed      int       `json:"passed"`
	DetailViews int       `json:"detail_views"`
	PassDecided int       `json:"pass_decided"`
	Exhausted   bool      `json:"exhausted"`
	Shortlisted []Entry   `json:"shortlisted"`
	Decisions   []Entry   `json:"decisions"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at,omitempty"`
}

// Reviewed returns the number of accept/reject decisions
func (s *Summary) Reviewed() int {
	return s.Liked + s.Passed
}

// Remaining returns how many items of the current pass are still undecided
func (s *Summary) Remaining() int {
	if s.Exhausted || s.PassDecided >= s.DeckSize {
		return 0
	}
	return s.DeckSize - s.PassDecided
}

// LikeRate returns the share of reviewed items that were liked
func (s *Summary) LikeRate() float64 {
	if s.Reviewed() == 0 {
		return 0
	}
	return float64(s.Liked) / float64(s.Reviewed())
}

type headliner interface {
	Headline() string
}

type matcher interface {
	Match() float64
}

// Shortlist accumulates deck decisions. Subscribe it to a deck.Engine.
type Shortlist struct {
	mu sync.RWMutex

	role      string
	deckSize  int
	now       func() time.Time
	started   time.Time
	finished  time.Time
	decisions []Entry
	liked     int
	passed    int
	details   int
	pass      int
	exhausted bool
}

// New creates an empty shortlist for a deck of the given size
func New(role string, deckSize int) *Shortlist {
	return NewWithClock(role, deckSize, time.Now)
}

// NewWithClock is New with an explicit clock
func NewWithClock(role string, deckSize int, now func() time.Time) *Shortlist {
	return &Shortlist{
		role:     role,
		deckSize: deckSize,
		now:      now,
		started:  now(),
	}
}

// ItemAccepted implements deck.Listener
func (s *Shortlist) ItemAccepted(item deck.Item) {
	s.record(item, deck.Accept)
}

// ItemRejected implements deck.Listener
func (s *Shortlist) ItemRejected(item deck.Item) {
	s.record(item, deck.Reject)
}

// DeckExhausted implements deck.Listener
func (s *Shortlist) DeckExhausted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exhausted = true
	s.finished = s.now()
}

// DetailRequested implements deck.Listener
func (s *Shortlist) DetailRequested(deck.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details++
}

// Contains reports whether key was liked at least once
func (s *Shortlist) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.decisions {
		if e.Key == key && e.Decision == deck.Accept.String() {
			return true
		}
	}
	return false
}

// Liked returns the number of accepted items
func (s *Shortlist) Liked() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liked
}

// Passed returns the number of rejected items
func (s *Shortlist) Passed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.passed
}

// Summary returns a copy of the session so far
func (s *Shortlist) Summary() *Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	decisions := make([]Entry, len(s.decisions))
	copy(decisions, s.decisions)

	// a looping deck can like the same item on every lap; list it once
	shortlisted := make([]Entry, 0, s.liked)
	seen := make(map[string]bool, s.liked)
	for _, e := range decisions {
		if e.Decision == deck.Accept.String() && !seen[e.Key] {
			seen[e.Key] = true
			shortlisted = append(shortlisted, e)
		}
	}

	return &Summary{
		Role:        s.role,
		DeckSize:    s.deckSize,
		Liked:       s.liked,
		Passed:      s.passed,
		DetailViews: s.details,
		PassDecided: s.pass,
		Exhausted:   s.exhausted,
		Shortlisted: shortlisted,
		Decisions:   decisions,
		StartedAt:   s.started,
		FinishedAt:  s.finished,
	}
}

// SetDeckSize starts a new pass over a deck of n items after a reload or
// reset. Recorded decisions are kept.
func (s *Shortlist) SetDeckSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deckSize = n
	s.pass = 0
	s.exhausted = false
	s.finished = time.Time{}
}

func (s *Shortlist) record(item deck.Item, d deck.Decision) {
	entry := Entry{
		Key:      item.Key(),
		Decision: d.String(),
	}
	if h, ok := item.(headliner); ok {
		entry.Headline = h.Headline()
	}
	if m, ok := item.(matcher); ok {
		entry.Match = m.Match()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry.At = s.now()
	s.decisions = append(s.decisions, entry)
	s.pass++
	if d == deck.Accept {
		s.liked++
	} else {
		s.passed++
	}
}
