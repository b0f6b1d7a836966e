package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/yildizm/InternSwipe/internal/deck"
	"github.com/yildizm/InternSwipe/internal/logger"
)

// Snapshot is a point-in-time view of session metrics
type Snapshot struct {
	Accepted    int64      `json:"accepted"`
	Rejected    int64      `json:"rejected"`
	DetailViews int64      `json:"detail_views"`
	Exhaustions int64      `json:"exhaustions"`
	Laps        float64    `json:"laps"`
	Dwell       TimerStats `json:"dwell"`
}

// Session collects browsing metrics. It implements deck.Listener and can be
// subscribed to several engines in turn, e.g. across deck reloads.
type Session struct {
	accepted    *Counter
	rejected    *Counter
	details     *Counter
	exhaustions *Counter
	laps        *Gauge
	dwell       *Timer

	mu       sync.Mutex
	now      func() time.Time
	lastSeen time.Time
	deckSize int
	baseLaps float64
	passDone int
}

// NewSession creates metrics for a deck of deckSize items
func NewSession(deckSize int, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		accepted:    NewCounter("decisions_accepted"),
		rejected:    NewCounter("decisions_rejected"),
		details:     NewCounter("detail_views"),
		exhaustions: NewCounter("deck_exhaustions"),
		laps:        NewGauge("laps"),
		dwell:       NewTimer("card_dwell"),
		now:         now,
		lastSeen:    now(),
		deckSize:    deckSize,
	}
}

// ItemAccepted implements deck.Listener
func (s *Session) ItemAccepted(deck.Item) {
	s.accepted.Inc()
	s.decided()
}

// ItemRejected implements deck.Listener
func (s *Session) ItemRejected(deck.Item) {
	s.rejected.Inc()
	s.decided()
}

// DeckExhausted implements deck.Listener
func (s *Session) DeckExhausted() {
	s.exhaustions.Inc()
}

// DetailRequested implements deck.Listener
func (s *Session) DetailRequested(deck.Item) {
	s.details.Inc()
}

// Restart begins a new pass over a deck of deckSize items. Counters and the
// laps completed so far are kept; the dwell clock starts over.
func (s *Session) Restart(deckSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseLaps = s.laps.Get()
	s.passDone = 0
	s.deckSize = deckSize
	s.lastSeen = s.now()
}

// decided records how long the card was on screen before the decision
func (s *Session) decided() {
	s.mu.Lock()
	now := s.now()
	dwell := now.Sub(s.lastSeen)
	s.lastSeen = now
	s.passDone++
	if s.deckSize > 0 {
		s.laps.Set(s.baseLaps + float64(s.passDone)/float64(s.deckSize))
	}
	s.mu.Unlock()

	s.dwell.Record(dwell)
}

// Snapshot returns the current metrics
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Accepted:    s.accepted.Get(),
		Rejected:    s.rejected.Get(),
		DetailViews: s.details.Get(),
		Exhaustions: s.exhaustions.Get(),
		Laps:        s.laps.Get(),
		Dwell:       s.dwell.Stats(),
	}
}

// Fields renders the snapshot as log fields
func (s Snapshot) Fields() []logger.Field {
	return []logger.Field{
		logger.F("accepted", s.Accepted),
		logger.F("rejected", s.Rejected),
		logger.F("details", s.DetailViews),
		logger.F("laps", fmt.Sprintf("%.2f", s.Laps)),
		logger.F("dwell_avg", s.Dwell.Avg),
		logger.F("dwell_max", s.Dwell.Max),
	}
}
