package deck

import "math"

// DefaultThreshold is the offset magnitude a drag must reach to count as a swipe
const DefaultThreshold = 100.0

// Classifier maps a released gesture to a Decision
type Classifier struct {
	Threshold float64
}

// NewClassifier creates a classifier with the given threshold
func NewClassifier(threshold float64) Classifier {
	return Classifier{Threshold: threshold}
}

// Classify returns Accept for offset >= T, Reject for offset <= -T and Cancel
// otherwise. Velocity is accepted for callers that track it but does not
// change the outcome.
func (c Classifier) Classify(offset, _ float64) Decision {
	switch {
	case math.IsNaN(offset):
		return Cancel
	case offset >= c.Threshold:
		return Accept
	case offset <= -c.Threshold:
		return Reject
	default:
		return Cancel
	}
}

// OffsetFor returns the synthetic release offset for a keyboard decision
func (c Classifier) OffsetFor(d Decision) float64 {
	switch d {
	case Accept:
		return c.Threshold
	case Reject:
		return -c.Threshold
	default:
		return 0
	}
}
