package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/InternSwipe/internal/catalog"
	"github.com/yildizm/InternSwipe/internal/deck"
	"github.com/yildizm/InternSwipe/internal/emoji"
)

// cardBody renders the fields of an item. full adds the long-form text
// shown in the detail view.
func cardBody(item deck.Item, s *Styles, full bool) string {
	switch v := item.(type) {
	case *catalog.Job:
		return jobBody(v, s, full)
	case *catalog.Student:
		return studentBody(v, s, full)
	default:
		return s.Header.Render(item.Key())
	}
}

func jobBody(j *catalog.Job, s *Styles, full bool) string {
	lines := []string{
		matchBadge(j.MatchPercentage, s),
		"",
		s.Header.Render(j.Title),
		s.Subheader.Render(j.Company),
		"",
	}

	facts := compact(
		fact("location", j.Location),
		fact("calendar", j.Duration),
		fact("money", j.Compensation),
	)
	if len(facts) > 0 {
		lines = append(lines, s.Body.Render(strings.Join(facts, "   ")), "")
	}

	if full && j.Description != "" {
		lines = append(lines, s.Body.Render(j.Description), "")
	}

	if len(j.Skills) > 0 {
		lines = append(lines, skillPills(j.Skills, s), "")
	}

	if j.MatchReason != "" {
		lines = append(lines, s.Info.Render(emoji.GetEmoji("sparkles")+" Why this matches: "+j.MatchReason))
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

func studentBody(st *catalog.Student, s *Styles, full bool) string {
	lines := []string{
		matchBadge(st.MatchScore, s),
		"",
		s.Header.Render(st.Name),
	}
	if st.Institute != "" {
		lines = append(lines, s.Subheader.Render(st.Institute))
	}
	if st.EducationLevel != "" {
		lines = append(lines, s.Muted.Render(emoji.GetEmoji("school")+" "+st.EducationLevel))
	}
	lines = append(lines, "")

	if len(st.Skills) > 0 {
		lines = append(lines, skillPills(st.Skills, s), "")
	}

	if st.Summary != "" && full {
		lines = append(lines, s.Body.Render(st.Summary))
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// previewLine is the one-line stand-in for the card underneath
func previewLine(item deck.Item, s *Styles) string {
	label := item.Key()
	if r, ok := item.(catalog.Record); ok {
		label = r.Headline()
	}
	return s.Preview.Render("Next: " + label)
}

func matchBadge(percent int, s *Styles) string {
	return s.Badge.Render(fmt.Sprintf("%d%% Match", percent))
}

func skillPills(skills []string, s *Styles) string {
	pills := make([]string, 0, len(skills))
	for _, skill := range skills {
		pills = append(pills, s.Skill.Render(skill))
	}
	return lipgloss.NewStyle().Width(cardWidth - 4).Render(strings.Join(pills, " "))
}

func fact(icon, value string) string {
	if value == "" {
		return ""
	}
	return emoji.GetEmoji(icon) + " " + value
}

func compact(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
