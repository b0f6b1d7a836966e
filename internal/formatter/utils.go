package formatter

import (
	"fmt"
	"time"

	"github.com/yildizm/InternSwipe/internal/shortlist"
	"github.com/yildizm/go-termfmt"
)

// formatPercent formats a 0..1 fraction as a whole percentage
func formatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// formatDuration returns the session length or N/A while it is still open
func formatDuration(summary *shortlist.Summary) string {
	if summary.StartedAt.IsZero() || summary.FinishedAt.IsZero() {
		return "N/A"
	}
	return summary.FinishedAt.Sub(summary.StartedAt).Round(time.Second).String()
}

// createConfidenceBar creates ASCII match bar using go-termfmt
func createConfidenceBar(match float64) string {
	opts := termfmt.DefaultOptions()
	return termfmt.CreateConfidenceBar(match, opts)
}

// generateRecommendations generates next steps for the session
func generateRecommendations(summary *shortlist.Summary) []string {
	var recommendations []string

	if summary.Reviewed() == 0 {
		recommendations = append(recommendations, "Start swiping to build a shortlist")
	}

	if remaining := summary.Remaining(); remaining > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("%d item(s) left to review", remaining))
	}

	if len(summary.Shortlisted) > 0 {
		what := "applications"
		if summary.Role == "employer" {
			what = "interview invitations"
		}
		recommendations = append(recommendations,
			fmt.Sprintf("Follow up on %d shortlisted item(s) with %s", len(summary.Shortlisted), what))
	}

	if summary.Reviewed() > 0 && summary.Liked == 0 {
		recommendations = append(recommendations,
			"Nothing liked yet; try a broader deck or another role")
	}

	return recommendations
}
