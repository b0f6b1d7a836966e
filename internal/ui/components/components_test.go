package components

import (
	"strings"
	"testing"
)

func TestProgressBarRender(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		laps    int
		want    string
	}{
		{"start", 0, 3, 0, "0/3"},
		{"middle", 2, 4, 0, "2/4"},
		{"empty deck", 0, 0, 0, "0/0"},
		{"second lap", 1, 3, 1, "lap 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgressBar(10)
			p.SetProgress(tt.current, tt.total)
			p.SetLaps(tt.laps)
			if out := p.Render(); !strings.Contains(out, tt.want) {
				t.Errorf("Render() = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestProgressBarLabel(t *testing.T) {
	p := NewProgressBar(4)
	p.SetLabel("Jobs")
	p.SetProgress(1, 2)
	if out := p.Render(); !strings.HasPrefix(out, "Jobs ") {
		t.Errorf("label should prefix the bar, got %q", out)
	}
}

func TestStatsRow(t *testing.T) {
	out := StatsRow(
		NewStatsCard("Liked", "3").SetStatus("success").SetIcon("♥"),
		NewStatsCard("Passed", "1").SetStatus("error"),
	)
	for _, want := range []string{"Liked", "3", "Passed", "1", "♥"} {
		if !strings.Contains(out, want) {
			t.Errorf("StatsRow() missing %q:\n%s", want, out)
		}
	}
}
