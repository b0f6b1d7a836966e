package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/InternSwipe/internal/catalog"
	"github.com/yildizm/InternSwipe/internal/deck"
	"github.com/yildizm/InternSwipe/internal/emoji"
	"github.com/yildizm/InternSwipe/internal/logger"
	"github.com/yildizm/InternSwipe/internal/monitor"
	"github.com/yildizm/InternSwipe/internal/shortlist"
	"github.com/yildizm/InternSwipe/internal/ui/components"
)

// Options configures a SwipeModel
type Options struct {
	Role catalog.Role

	// Engine options applied to the initial deck and every reloaded deck
	Engine []deck.Option

	// CellUnits is the offset distance of one terminal column
	CellUnits float64

	Shortlist *shortlist.Shortlist
	Metrics   *monitor.Session
	Logger    *logger.Logger
	Clock     func() time.Time

	// Listeners are subscribed to every engine the model builds
	Listeners []deck.Listener
}

// SwipeModel is the Bubble Tea model that drives one deck.Engine
type SwipeModel struct {
	width    int
	height   int
	ready    bool
	quitting bool

	engine      *deck.Engine
	engineOpts  []deck.Option
	tracker     *deck.Tracker
	list        *shortlist.Shortlist
	metrics     *monitor.Session
	listeners   []deck.Listener
	unsubscribe []func()

	role      catalog.Role
	cellUnits float64
	now       func() time.Time
	log       *logger.Logger
	styles    *Styles

	view   View
	detail deck.Item
	status string
}

// NewSwipeModel creates a model over items
func NewSwipeModel(items []deck.Item, opts Options) (*SwipeModel, error) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.CellUnits <= 0 {
		opts.CellUnits = 10
	}
	if opts.Shortlist == nil {
		opts.Shortlist = shortlist.NewWithClock(string(opts.Role), len(items), opts.Clock)
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewWithCallback("ui", func() bool { return false })
	}

	m := &SwipeModel{
		engineOpts: append(append([]deck.Option(nil), opts.Engine...), deck.WithClock(opts.Clock)),
		tracker:    deck.NewTracker(),
		list:       opts.Shortlist,
		metrics:    opts.Metrics,
		listeners:  opts.Listeners,
		role:       opts.Role,
		cellUnits:  opts.CellUnits,
		now:        opts.Clock,
		log:        opts.Logger,
		styles:     GetStyles(),
	}

	if err := m.load(items); err != nil {
		return nil, err
	}
	return m, nil
}

// load replaces the engine with one over items and resubscribes listeners
func (m *SwipeModel) load(items []deck.Item) error {
	engine, err := deck.New(items, m.engineOpts...)
	if err != nil {
		return err
	}

	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.engine = engine
	m.tracker.Reset()
	m.unsubscribe = []func(){
		engine.Subscribe(m.list),
		engine.Subscribe(deck.ListenerFuncs{
			OnAccepted:  m.onAccepted,
			OnRejected:  m.onRejected,
			OnExhausted: m.onExhausted,
			OnDetail:    m.onDetail,
		}),
	}
	if m.metrics != nil {
		m.unsubscribe = append(m.unsubscribe, engine.Subscribe(m.metrics))
	}
	for _, l := range m.listeners {
		m.unsubscribe = append(m.unsubscribe, engine.Subscribe(l))
	}

	m.view = ViewCard
	if engine.IsExhausted() {
		m.view = ViewDone
	}
	m.detail = nil
	return nil
}

// Engine exposes the deck being browsed
func (m *SwipeModel) Engine() *deck.Engine {
	return m.engine
}

// Shortlist returns the accumulated decisions
func (m *SwipeModel) Shortlist() *shortlist.Shortlist {
	return m.list
}

// CurrentView returns the view being shown
func (m *SwipeModel) CurrentView() View {
	return m.view
}

// Init initializes the swipe model
func (m *SwipeModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and input
func (m *SwipeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case settledMsg:
		// nothing to change; the redraw drops the exiting card
		return m, nil
	case deckReloadedMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

func (m *SwipeModel) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true
	return m, nil
}

func (m *SwipeModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		return m.handleEscape()
	case "?":
		return m.handleHelp()
	case "r":
		return m.handleReset()
	case "left", "h":
		return m.handleDecisionKey(deck.KeyLeft)
	case "right", "l":
		return m.handleDecisionKey(deck.KeyRight)
	case " ", "space":
		if m.view == ViewDetail {
			return m.handleEscape()
		}
		m.engine.OnKey(deck.KeySpace)
		return m, nil
	}
	return m, nil
}

func (m *SwipeModel) handleEscape() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewDetail, ViewHelp:
		m.view = m.restingView()
		m.detail = nil
	}
	return m, nil
}

func (m *SwipeModel) handleHelp() (tea.Model, tea.Cmd) {
	if m.view == ViewHelp {
		m.view = m.restingView()
	} else {
		m.view = ViewHelp
	}
	return m, nil
}

func (m *SwipeModel) handleReset() (tea.Model, tea.Cmd) {
	m.engine.Reset()
	m.tracker.Reset()
	m.startPass()
	m.view = m.restingView()
	m.detail = nil
	m.status = emoji.GetEmoji("reload") + " Deck reset"
	m.log.Info("deck reset")
	return m, nil
}

func (m *SwipeModel) handleDecisionKey(k deck.Key) (tea.Model, tea.Cmd) {
	if m.view == ViewHelp {
		return m, nil
	}
	if m.view == ViewDetail {
		m.view = ViewCard
		m.detail = nil
	}
	return m, m.afterDecision(m.engine.OnKey(k))
}

// handleMouse turns press, motion and release into one gesture
func (m *SwipeModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.view != ViewCard {
		return m, nil
	}

	sample := deck.Sample{
		X:  float64(msg.X) * m.cellUnits,
		Y:  float64(msg.Y) * m.cellUnits,
		At: m.now(),
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.engine.OnGestureStart() {
			m.tracker.Begin(sample)
		}
	case tea.MouseActionMotion:
		if m.tracker.Active() {
			if !m.engine.OnGestureMove(m.tracker.Move(sample)) {
				m.tracker.Reset()
			}
		}
	case tea.MouseActionRelease:
		if !m.tracker.Active() {
			return m, nil
		}
		offset, velocity := m.tracker.End(sample)
		m.log.DebugWithFields("gesture released", []logger.Field{
			logger.Offset(offset),
			logger.F("velocity", fmt.Sprintf("%.0f", velocity)),
		})
		return m, m.afterDecision(m.engine.OnGestureEndWithVelocity(offset, velocity))
	}
	return m, nil
}

// afterDecision schedules the redraw that ends the exit transition
func (m *SwipeModel) afterDecision(d deck.Decision) tea.Cmd {
	if !d.Advances() {
		return nil
	}
	return settle(m.engine.Transition())
}

func (m *SwipeModel) handleReload(msg deckReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = emoji.GetEmoji("warning") + " Reload failed: " + msg.err.Error()
		m.log.WarnWithFields("deck reload failed", []logger.Field{logger.F("source", msg.source), logger.Error(msg.err)})
		return m, nil
	}

	if err := m.load(msg.items); err != nil {
		m.status = emoji.GetEmoji("warning") + " Reload failed: " + err.Error()
		m.log.WarnWithFields("deck rejected", []logger.Field{logger.F("source", msg.source), logger.Error(err)})
		return m, nil
	}

	m.startPass()
	m.status = fmt.Sprintf("%s Reloaded %d item(s)", emoji.GetEmoji("reload"), len(msg.items))
	m.log.InfoWithFields("deck reloaded", []logger.Field{logger.F("source", msg.source), logger.Count(len(msg.items))})
	return m, nil
}

// startPass tells the accumulators a new pass over the engine's deck began
func (m *SwipeModel) startPass() {
	m.list.SetDeckSize(m.engine.Len())
	if m.metrics != nil {
		m.metrics.Restart(m.engine.Len())
	}
}

func (m *SwipeModel) onAccepted(item deck.Item) {
	m.status = m.styles.Accept.Render(emoji.GetEmoji("heart") + " Liked " + headline(item))
	m.log.DebugWithFields("decision", []logger.Field{logger.Item(item.Key()), logger.Decision(deck.Accept)})
}

func (m *SwipeModel) onRejected(item deck.Item) {
	m.status = m.styles.Reject.Render(emoji.GetEmoji("cross") + " Passed " + headline(item))
	m.log.DebugWithFields("decision", []logger.Field{logger.Item(item.Key()), logger.Decision(deck.Reject)})
}

func (m *SwipeModel) onExhausted() {
	m.view = ViewDone
	m.log.Info("deck exhausted")
}

func (m *SwipeModel) onDetail(item deck.Item) {
	m.detail = item
	m.view = ViewDetail
}

func (m *SwipeModel) restingView() View {
	if m.engine.IsExhausted() {
		return ViewDone
	}
	return ViewCard
}

// View renders the swipe model
func (m *SwipeModel) View() string {
	if !m.ready {
		return "Loading deck..."
	}

	if m.quitting {
		return m.renderGoodbyeScreen()
	}

	var content string
	switch m.view {
	case ViewDone:
		content = m.renderDoneView()
	case ViewDetail:
		content = m.renderDetailView()
	case ViewHelp:
		content = m.renderHelpView()
	default:
		content = m.renderCardView()
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *SwipeModel) renderGoodbyeScreen() string {
	goodbye := m.styles.Accept.Render(fmt.Sprintf("Thanks for using InternSwipe! %d item(s) shortlisted.", len(m.list.Summary().Shortlisted)))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, goodbye)
}

func (m *SwipeModel) renderHeader() string {
	what := "Internships"
	if m.role == catalog.RoleEmployer {
		what = "Candidates"
	}

	progress := components.NewProgressBar(20)
	progress.SetProgress(m.engine.Position(), m.engine.Len())
	progress.SetLaps(m.engine.Laps())

	return lipgloss.JoinVertical(
		lipgloss.Center,
		m.styles.Title.Render("InternSwipe • "+what),
		progress.Render(),
	)
}

func (m *SwipeModel) renderCardView() string {
	item, ok := m.engine.CurrentItem()
	if !ok {
		return m.renderDoneView()
	}

	offset := m.engine.Offset()
	threshold := m.engine.Threshold()

	cardStyle := m.styles.Card
	switch {
	case offset >= threshold:
		cardStyle = cardStyle.BorderForeground(m.styles.Theme.Accept)
	case offset <= -threshold:
		cardStyle = cardStyle.BorderForeground(m.styles.Theme.Reject)
	}
	if Opacity(offset) < 0.5 {
		cardStyle = cardStyle.Faint(true)
	}

	card := cardStyle.Render(cardBody(item, m.styles, false))
	card = m.shifted(card, Shift(offset, m.cellUnits))

	parts := []string{
		m.renderHeader(),
		"",
		m.renderIndicators(offset),
		card,
	}

	if next, ok := m.engine.Peek(); ok {
		parts = append(parts, previewLine(next, m.styles))
	}
	if exiting, target, ok := m.engine.Exiting(); ok {
		parts = append(parts, m.renderExiting(exiting, target))
	}

	parts = append(parts, "", m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// renderIndicators shows the reject and accept stamps scaled by offset
func (m *SwipeModel) renderIndicators(offset float64) string {
	reject := indicator(m.styles.Reject, emoji.GetEmoji("cross")+" NOPE", RejectIndicator(offset))
	accept := indicator(m.styles.Accept, "LIKE "+emoji.GetEmoji("heart"), AcceptIndicator(offset))

	tilt := ""
	if r := Rotation(offset); r != 0 {
		tilt = m.styles.Muted.Render(fmt.Sprintf("%+.0f°", r))
	}

	gap := strings.Repeat(" ", max(1, cardWidth-lipgloss.Width(reject)-lipgloss.Width(accept)-lipgloss.Width(tilt)))
	half := len(gap) / 2
	return reject + gap[:half] + tilt + gap[half:] + accept
}

func indicator(style lipgloss.Style, label string, strength float64) string {
	switch {
	case strength <= 0:
		return strings.Repeat(" ", lipgloss.Width(label))
	case strength < 1:
		return style.Faint(true).Render(label)
	default:
		return style.Render(label)
	}
}

func (m *SwipeModel) renderExiting(item deck.Item, target float64) string {
	style, mark := m.styles.Accept, emoji.GetEmoji("heart")
	if target < 0 {
		style, mark = m.styles.Reject, emoji.GetEmoji("cross")
	}
	return style.Faint(true).Render(mark + " " + headline(item))
}

// shifted pads a block sideways by cols columns
func (m *SwipeModel) shifted(block string, cols int) string {
	limit := max(0, (m.width-cardWidth)/2-2)
	cols = max(-limit, min(limit, cols))
	if cols == 0 {
		return block
	}
	if cols > 0 {
		return lipgloss.NewStyle().PaddingLeft(cols).Render(block)
	}
	return lipgloss.NewStyle().PaddingRight(-cols).Render(block)
}

func (m *SwipeModel) renderFooter() string {
	lines := []string{
		m.styles.Muted.Render("← / h pass • → / l like • space details • drag with the mouse"),
		m.styles.Muted.Render("r reset • ? help • q quit"),
	}
	if m.status != "" {
		lines = append([]string{m.status}, lines...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *SwipeModel) renderDetailView() string {
	if m.detail == nil {
		return m.renderCardView()
	}

	title := m.styles.Title.Render(emoji.GetEmoji("info") + " Details")
	body := m.styles.Panel.Render(cardBody(m.detail, m.styles, true))
	footer := m.styles.Muted.Render("← pass • → like • esc / space close")

	return lipgloss.JoinVertical(lipgloss.Center, title, body, "", footer)
}

func (m *SwipeModel) renderDoneView() string {
	summary := m.list.Summary()

	title := m.styles.Title.Render(emoji.GetEmoji("party") + " All done!")
	subtitle := m.styles.Body.Render("You've reviewed every card in this deck.")

	stats := components.StatsRow(
		components.NewStatsCard("Liked", fmt.Sprintf("%d", summary.Liked)).SetStatus("success").SetIcon(emoji.GetEmoji("heart")),
		components.NewStatsCard("Passed", fmt.Sprintf("%d", summary.Passed)).SetStatus("error").SetIcon(emoji.GetEmoji("cross")),
		components.NewStatsCard("Shortlist", fmt.Sprintf("%d", len(summary.Shortlisted))).SetStatus("info"),
	)

	parts := []string{title, subtitle, "", stats, ""}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, m.styles.Muted.Render("r start over • q quit"))

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (m *SwipeModel) renderHelpView() string {
	rows := [][2]string{
		{"→ / l", "like the current card"},
		{"← / h", "pass on the current card"},
		{"space", "open or close the detail view"},
		{"drag", "drag a card past the threshold to decide"},
		{"r", "start the deck over"},
		{"esc", "close the detail or help view"},
		{"q", "quit and print the session summary"},
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, m.styles.Title.Render(emoji.GetEmoji("help")+" Help"), "")
	for _, row := range rows {
		lines = append(lines, m.styles.Header.Render(fmt.Sprintf("%-8s", row[0]))+" "+m.styles.Body.Render(row[1]))
	}

	return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func headline(item deck.Item) string {
	if r, ok := item.(catalog.Record); ok {
		return r.Headline()
	}
	return item.Key()
}

// NewProgram wraps model in a program with mouse motion reporting enabled.
// Deck watchers deliver DeckReloaded messages through its Send method.
func NewProgram(model *SwipeModel, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(model, append([]tea.ProgramOption{tea.WithMouseCellMotion()}, opts...)...)
}
