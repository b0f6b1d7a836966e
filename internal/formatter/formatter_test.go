package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yildizm/InternSwipe/internal/shortlist"
)

func sampleSummary() *shortlist.Summary {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	liked := shortlist.Entry{Key: "1", Headline: "Frontend Developer Intern at TechCorp", Decision: "accept", Match: 0.92, At: start.Add(time.Second)}
	passed := shortlist.Entry{Key: "2", Headline: "Data Science Intern at DataFlow", Decision: "reject", Match: 0.77, At: start.Add(2 * time.Second)}

	return &shortlist.Summary{
		Role:        "student",
		DeckSize:    3,
		Liked:       1,
		Passed:      1,
		DetailViews: 2,
		PassDecided: 2,
		Shortlisted: []shortlist.Entry{liked},
		Decisions:   []shortlist.Entry{liked, passed},
		StartedAt:   start,
	}
}

func TestNew(t *testing.T) {
	for _, name := range append(Formats, "md", "terminal", "") {
		if _, err := New(name, false); err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
	}
	if _, err := New("xml", false); err == nil {
		t.Error("New(xml) should fail")
	}
}

func TestTerminalFormat(t *testing.T) {
	out, err := NewTerminal(false).Format(sampleSummary())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"Swipe Session Summary",
		"Statistics",
		"Frontend Developer Intern at TechCorp",
		"(92% match)",
		"in progress",
		"1 item(s) left to review",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("terminal output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Data Science Intern") {
		t.Error("passed items should not appear in the shortlist")
	}
}

func TestTerminalFormatEmptyShortlist(t *testing.T) {
	summary := &shortlist.Summary{Role: "employer", DeckSize: 2}
	out, err := NewTerminal(false).Format(summary)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), "(empty)") {
		t.Errorf("expected empty shortlist marker, got:\n%s", out)
	}
	if !strings.Contains(string(out), "Start swiping") {
		t.Errorf("expected default next step, got:\n%s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	out, err := NewJSON().Format(sampleSummary())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var got SessionOutput
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Summary.Liked != 1 || got.Summary.LikeRate != 0.5 {
		t.Errorf("unexpected summary: %+v", got.Summary)
	}
	if len(got.Decisions) != 2 || got.Decisions[1].Decision != "reject" {
		t.Errorf("unexpected decisions: %+v", got.Decisions)
	}

	empty, err := NewJSON().Format(&shortlist.Summary{})
	if err != nil {
		t.Fatalf("Format(empty) error = %v", err)
	}
	if !bytes.Contains(empty, []byte(`"shortlisted": []`)) {
		t.Errorf("empty lists should encode as [], got %s", empty)
	}
}

func TestCSVFormat(t *testing.T) {
	out, err := NewCSV().Format(sampleSummary())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[1][1] != "1" || records[1][3] != "accept" || records[1][4] != "0.92" {
		t.Errorf("unexpected first row: %v", records[1])
	}
	if records[2][5] != "2025-03-01 09:00:02" {
		t.Errorf("unexpected timestamp: %s", records[2][5])
	}
}

func TestMarkdownFormat(t *testing.T) {
	f := &markdownFormatter{now: func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }}
	out, err := f.Format(sampleSummary())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"# Swipe Session Report",
		"Generated: 2025-03-01 10:00:00",
		"| Liked | 1 (50%) |",
		"### Frontend Developer Intern at TechCorp",
		"09:00:02 ✗ 2",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

type card string

func (c card) Key() string { return string(c) }

func TestRecommendationsFollowCurrentPass(t *testing.T) {
	list := shortlist.New("student", 3)
	for _, key := range []string{"a", "b", "c"} {
		list.ItemAccepted(card(key))
	}
	list.DeckExhausted()
	list.SetDeckSize(3)
	list.ItemAccepted(card("a"))

	recs := generateRecommendations(list.Summary())
	if len(recs) == 0 || recs[0] != "2 item(s) left to review" {
		t.Errorf("after a reset the hint should count the new pass, got %q", recs)
	}
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name    string
		summary *shortlist.Summary
		want    []string
	}{
		{
			name:    "nothing reviewed",
			summary: &shortlist.Summary{DeckSize: 2},
			want:    []string{"Start swiping to build a shortlist", "2 item(s) left to review"},
		},
		{
			name:    "empty deck",
			summary: &shortlist.Summary{Exhausted: true},
			want:    []string{"Start swiping to build a shortlist"},
		},
		{
			name:    "looping past the deck size",
			summary: &shortlist.Summary{DeckSize: 2, Passed: 5, PassDecided: 5},
			want:    []string{"Nothing liked yet; try a broader deck or another role"},
		},
		{
			name: "employer shortlist",
			summary: &shortlist.Summary{
				Role: "employer", DeckSize: 1, Liked: 1, PassDecided: 1, Exhausted: true,
				Shortlisted: []shortlist.Entry{{Key: "s1"}},
			},
			want: []string{"Follow up on 1 shortlisted item(s) with interview invitations"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateRecommendations(tt.summary)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("generateRecommendations() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeCSVString(t *testing.T) {
	long := strings.Repeat("a", 150)
	if got := escapeCSVString(long); len(got) != 100 || !strings.HasSuffix(got, "...") {
		t.Errorf("long strings should be truncated to 100, got %d", len(got))
	}
	if got := escapeCSVString("a\nb\rc"); got != "a b c" {
		t.Errorf("escapeCSVString() = %q", got)
	}
}
