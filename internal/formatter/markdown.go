package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/yildizm/InternSwipe/internal/shortlist"
)

// markdownFormatter formats output as Markdown
type markdownFormatter struct {
	now func() time.Time
}

// NewMarkdown creates a new Markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{now: time.Now}
}

func (f *markdownFormatter) Format(summary *shortlist.Summary) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# Swipe Session Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", f.now().Format("2006-01-02 15:04:05"))

	f.writeSummaryTable(&b, summary)
	f.writeShortlist(&b, summary.Shortlisted)
	if len(summary.Decisions) > 0 {
		f.writeTimeline(&b, summary.Decisions)
	}
	f.writeRecommendations(&b, summary)

	return []byte(b.String()), nil
}

// writeSummaryTable writes the session counters as a table
func (f *markdownFormatter) writeSummaryTable(b *strings.Builder, summary *shortlist.Summary) {
	b.WriteString("## Summary\n\n")

	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| Role | %s |\n", summary.Role)
	fmt.Fprintf(b, "| Deck Size | %d |\n", summary.DeckSize)
	fmt.Fprintf(b, "| Liked | %d (%s) |\n", summary.Liked, formatPercent(summary.LikeRate()))
	fmt.Fprintf(b, "| Passed | %d |\n", summary.Passed)
	fmt.Fprintf(b, "| Details Viewed | %d |\n", summary.DetailViews)
	fmt.Fprintf(b, "| Duration | %s |\n\n", formatDuration(summary))
}

// writeShortlist writes one section per liked item
func (f *markdownFormatter) writeShortlist(b *strings.Builder, entries []shortlist.Entry) {
	b.WriteString("## Shortlist\n\n")

	if len(entries) == 0 {
		b.WriteString("_No items liked._\n\n")
		return
	}

	for _, entry := range entries {
		title := entry.Headline
		if title == "" {
			title = entry.Key
		}
		fmt.Fprintf(b, "### %s\n", title)
		fmt.Fprintf(b, "**Match**: %s %s\n\n", createConfidenceBar(entry.Match), formatPercent(entry.Match))
	}
}

// writeTimeline writes every decision in order
func (f *markdownFormatter) writeTimeline(b *strings.Builder, decisions []shortlist.Entry) {
	b.WriteString("## Timeline\n\n")
	b.WriteString("```\n")
	for _, entry := range decisions {
		mark := "✗"
		if entry.Decision == "accept" {
			mark = "♥"
		}
		fmt.Fprintf(b, "%s %s %s\n", entry.At.Format("15:04:05"), mark, entry.Key)
	}
	b.WriteString("```\n\n")
}

// writeRecommendations writes next steps
func (f *markdownFormatter) writeRecommendations(b *strings.Builder, summary *shortlist.Summary) {
	b.WriteString("## Next Steps\n\n")

	for i, rec := range generateRecommendations(summary) {
		fmt.Fprintf(b, "%d. %s\n", i+1, rec)
	}

	b.WriteString("\n---\n")
	b.WriteString("*Report generated by InternSwipe*\n")
}
