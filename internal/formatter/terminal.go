package formatter

import (
	"fmt"
	"strings"

	"github.com/yildizm/InternSwipe/internal/shortlist"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = true
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(summary *shortlist.Summary) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	f.writeStatistics(&b, summary)
	f.writeShortlist(&b, summary.Shortlisted)
	f.writeRecommendations(&b, summary)

	return []byte(b.String()), nil
}

// writeHeader writes a header with box drawing
func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	header := "Swipe Session Summary"
	headerLen := len(header)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + header + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeStatistics writes session counters with tree-style formatting
func (f *terminalFormatter) writeStatistics(b *strings.Builder, summary *shortlist.Summary) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Statistics\n")

	status := "in progress"
	if summary.Exhausted {
		status = "all done"
	}

	items := []termfmt.TreeItem{
		{Label: "Role", Value: summary.Role},
		{Label: "Deck Size", Value: fmt.Sprintf("%d", summary.DeckSize)},
		{Label: "Liked", Value: fmt.Sprintf("%d (%s)", summary.Liked, formatPercent(summary.LikeRate()))},
		{Label: "Passed", Value: fmt.Sprintf("%d", summary.Passed)},
		{Label: "Details Viewed", Value: fmt.Sprintf("%d", summary.DetailViews)},
		{Label: "Status", Value: status},
		{Label: "Duration", Value: formatDuration(summary), Last: true},
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeShortlist writes liked items with a match bar each
func (f *terminalFormatter) writeShortlist(b *strings.Builder, entries []shortlist.Entry) {
	symbol := termfmt.GetEmoji("success", f.opts)
	if symbol == "" {
		symbol = "♥" // Fallback
	}
	b.WriteString(symbol + " Shortlist\n")

	if len(entries) == 0 {
		b.WriteString("└─ (empty)\n\n")
		return
	}

	items := make([]termfmt.TreeItem, 0, len(entries))
	for i, entry := range entries {
		label := entry.Headline
		if label == "" {
			label = entry.Key
		}
		bar := termfmt.CreateConfidenceBar(entry.Match, f.opts)

		items = append(items, termfmt.TreeItem{
			Label: label,
			Value: fmt.Sprintf("(%s match)", formatPercent(entry.Match)),
			Children: []termfmt.TreeItem{
				{Label: bar + " liked at " + entry.At.Format("15:04:05"), Value: ""},
			},
			Last: i == len(entries)-1,
		})
	}

	tree := termfmt.TreeViewWithOptions(items, f.opts)
	b.WriteString(tree + "\n\n")
}

// writeRecommendations writes next steps
func (f *terminalFormatter) writeRecommendations(b *strings.Builder, summary *shortlist.Summary) {
	symbol := termfmt.GetEmoji("recommendations", f.opts)
	b.WriteString(symbol + " Next Steps\n")

	for i, rec := range generateRecommendations(summary) {
		if i < 3 {
			b.WriteString("• " + rec + "\n")
		}
	}
}
