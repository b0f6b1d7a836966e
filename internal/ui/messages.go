package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/InternSwipe/internal/deck"
)

// settledMsg fires once the transition after a decision has run out
type settledMsg time.Time

func settle(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return settledMsg(t)
	})
}

// deckReloadedMsg carries a freshly loaded deck or the error that stopped it
type deckReloadedMsg struct {
	items  []deck.Item
	source string
	err    error
}

// DeckReloaded builds the message a watcher sends with tea.Program.Send
func DeckReloaded(items []deck.Item, source string, err error) tea.Msg {
	return deckReloadedMsg{items: items, source: source, err: err}
}
