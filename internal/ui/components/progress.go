package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar shows how far into the deck the user is
type ProgressBar struct {
	Width   int
	Current int
	Total   int
	Laps    int
	Label   string
}

// NewProgressBar creates a new progress bar
func NewProgressBar(width int) *ProgressBar {
	return &ProgressBar{Width: width}
}

// SetProgress updates the progress
func (p *ProgressBar) SetProgress(current, total int) {
	p.Current = current
	p.Total = total
}

// SetLaps records completed passes over a looping deck
func (p *ProgressBar) SetLaps(laps int) {
	p.Laps = laps
}

// SetLabel sets the progress label
func (p *ProgressBar) SetLabel(label string) {
	p.Label = label
}

// Render renders the progress bar
func (p *ProgressBar) Render() string {
	// Define styles locally to avoid import cycle
	progressStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

	percentage := 0.0
	if p.Total > 0 {
		percentage = float64(p.Current) / float64(p.Total)
	}
	if percentage > 1.0 {
		percentage = 1.0
	}

	filledWidth := int(float64(p.Width) * percentage)
	emptyWidth := p.Width - filledWidth

	filled := strings.Repeat("█", filledWidth)
	empty := strings.Repeat("░", emptyWidth)
	bar := progressStyle.Render(filled) + mutedStyle.Render(empty)

	statusText := fmt.Sprintf("%d/%d", p.Current, p.Total)
	if p.Laps > 0 {
		statusText += fmt.Sprintf(" • lap %d", p.Laps+1)
	}

	result := fmt.Sprintf("[%s] %s", bar, statusText)

	if p.Label != "" {
		result = p.Label + " " + result
	}

	return result
}
