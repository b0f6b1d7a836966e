package formatter

import (
	"encoding/json"

	"github.com/yildizm/InternSwipe/internal/shortlist"
)

// jsonFormatter formats output as JSON
type jsonFormatter struct{}

// NewJSON creates a new JSON formatter
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(summary *shortlist.Summary) ([]byte, error) {
	output := &SessionOutput{
		Summary: &SummaryOutput{
			Role:        summary.Role,
			DeckSize:    summary.DeckSize,
			Liked:       summary.Liked,
			Passed:      summary.Passed,
			DetailViews: summary.DetailViews,
			LikeRate:    summary.LikeRate(),
			Exhausted:   summary.Exhausted,
			Duration:    formatDuration(summary),
		},
		Shortlisted:     nonNil(summary.Shortlisted),
		Decisions:       nonNil(summary.Decisions),
		Recommendations: generateRecommendations(summary),
	}

	return json.MarshalIndent(output, "", "  ")
}

// SessionOutput represents the JSON document
type SessionOutput struct {
	Summary         *SummaryOutput    `json:"summary"`
	Shortlisted     []shortlist.Entry `json:"shortlisted"`
	Decisions       []shortlist.Entry `json:"decisions"`
	Recommendations []string          `json:"recommendations"`
}

// SummaryOutput represents the summary section
type SummaryOutput struct {
	Role        string  `json:"role"`
	DeckSize    int     `json:"deck_size"`
	Liked       int     `json:"liked"`
	Passed      int     `json:"passed"`
	DetailViews int     `json:"detail_views"`
	LikeRate    float64 `json:"like_rate"`
	Exhausted   bool    `json:"exhausted"`
	Duration    string  `json:"duration"`
}

func nonNil(entries []shortlist.Entry) []shortlist.Entry {
	if entries == nil {
		return []shortlist.Entry{}
	}
	return entries
}
