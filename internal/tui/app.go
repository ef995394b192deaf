// internal/tui/app.go
//
// This is the main TUI (Terminal User Interface) for foyer.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: Your application state
// 2. Update: A function that updates state based on messages
// 3. View: A function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen
//
// The composer core stays UI-free; this layer translates key presses into
// composer mutations and appends the router's events to the feed.

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rowanvale/foyer/internal/composer"
	"github.com/rowanvale/foyer/internal/config"
	"github.com/rowanvale/foyer/internal/feed"
	"github.com/rowanvale/foyer/internal/oplog"
	"github.com/rowanvale/foyer/internal/pins"
)

const (
	noticeDuration = 2 * time.Second
	wideLayoutMin  = 100
)

// focusArea tracks whether keys drive the composer or the feed.
type focusArea int

const (
	focusComposer focusArea = iota
	focusFeed
)

// noticeExpiredMsg clears a transient notice. The sequence number makes
// the timer cancellable: a newer notice supersedes the pending clear.
type noticeExpiredMsg struct {
	seq int
}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithRouter overrides the submission router (fixed clock and ids in tests).
func WithRouter(router *composer.Router) AppOption {
	return func(a *App) {
		if router != nil {
			a.router = router
		}
	}
}

// WithEntries replaces the seeded feed contents.
func WithEntries(entries []feed.Entry) AppOption {
	return func(a *App) {
		a.feed = feed.New(entries...)
	}
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	cfg    *config.Config
	feed   *feed.Feed
	log    *oplog.Log
	pins   *pins.Store
	router *composer.Router

	// Composer core state, driven exclusively through composer.Apply.
	state composer.State

	input    textinput.Model
	feedView viewport.Model
	catalog  list.Model
	payment  list.Model
	people   peoplePicker
	picker   pickerKind
	focus    focusArea

	notice    string
	noticeSeq int
	statusMsg string

	feedSelection int
	feedOffsets   []int

	width  int
	height int
}

// NewApp assembles the application model from a loaded configuration.
func NewApp(cfg *config.Config, opts ...AppOption) (*App, error) {
	log, err := oplog.New(cfg.LogPath())
	if err != nil {
		return nil, fmt.Errorf("tui: open shift log: %w", err)
	}
	pinStore, err := pins.Load(cfg.PinsPath())
	if err != nil {
		return nil, fmt.Errorf("tui: load pins: %w", err)
	}

	var entries []feed.Entry
	if cfg.Project.SeedFeed {
		entries = feed.Seed(time.Now())
	}

	input := textinput.New()
	input.Placeholder = placeholderFor(composer.State{})
	input.Prompt = "› "
	input.Focus()

	app := &App{
		cfg:      cfg,
		feed:     feed.New(entries...),
		log:      log,
		pins:     pinStore,
		router:   composer.NewRouter(cfg.Operator()),
		input:    input,
		feedView: viewport.New(80, 20),
		catalog:  newCatalogMenu(cfg.Catalog()),
		payment:  newPaymentMenu(),
		people:   newPeoplePicker(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	log.Info("Shift opened · operator %s · %d entries", cfg.Operator().Name, app.feed.Len())
	return app, nil
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// apply routes a mutation through the composer reducer, logging rejected
// input and scheduling the notice clear when a switch occurred.
func (a *App) apply(m composer.Mutation) tea.Cmd {
	next, notice, err := composer.Apply(a.state, m)
	if err != nil {
		a.log.Warn("composer rejected input: %v", err)
		return nil
	}
	a.state = next
	a.input.Placeholder = placeholderFor(a.state)
	if notice != composer.NoticeNone {
		return a.showNotice(string(notice))
	}
	return nil
}

func (a *App) showNotice(text string) tea.Cmd {
	a.notice = text
	a.noticeSeq++
	seq := a.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()
		a.refreshFeed(false)
		return a, nil

	case noticeExpiredMsg:
		if msg.seq == a.noticeSeq {
			a.notice = ""
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.picker != pickerNone {
		return a.handlePickerKey(msg)
	}

	if key == "tab" {
		if a.focus == focusComposer {
			a.focus = focusFeed
			a.input.Blur()
		} else {
			a.focus = focusComposer
			a.input.Focus()
		}
		a.refreshFeed(false)
		return a, nil
	}

	if a.focus == focusFeed {
		return a.handleFeedKey(key)
	}
	return a.handleComposerKey(msg)
}

func (a *App) handleComposerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return a, a.submit()
	case "ctrl+p":
		a.picker = pickerPeople
		a.people.open()
		a.input.Blur()
		return a, textinput.Blink
	case "ctrl+o":
		a.picker = pickerCatalog
		a.input.Blur()
		return a, nil
	case "ctrl+b":
		if a.state.Action == composer.ActionPOS {
			a.picker = pickerPayment
			a.input.Blur()
		} else {
			a.statusMsg = "Payment applies to a POS sale — add an item first (ctrl+o)"
		}
		return a, nil
	case "ctrl+g":
		if a.state.Action == composer.ActionCheckIn {
			return a, a.apply(composer.SetAction{Action: composer.ActionNone})
		}
		return a, a.apply(composer.SetAction{Action: composer.ActionCheckIn})
	case "ctrl+t":
		return a, a.apply(composer.SetAssign{On: !a.state.Assign})
	case "backspace":
		if a.input.Value() == "" {
			return a, a.removeLastPill()
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != a.state.Text {
		a.state, _, _ = composer.Apply(a.state, composer.SetText{Text: a.input.Value()})
	}
	return a, cmd
}

// removeLastPill pops the last removable pill, the keyboard equivalent of
// tapping its ✕.
func (a *App) removeLastPill() tea.Cmd {
	pills := composer.Pills(a.state)
	for i := len(pills) - 1; i >= 0; i-- {
		if pills[i].Removable {
			return a.apply(pills[i].OnRemove)
		}
	}
	return nil
}

func (a *App) handleFeedKey(key string) (tea.Model, tea.Cmd) {
	entries := a.feed.Entries()
	switch key {
	case "q":
		return a, tea.Quit
	case "up", "k":
		if a.feedSelection > 0 {
			a.feedSelection--
		}
		a.refreshFeed(false)
		a.scrollToSelection()
	case "down", "j":
		if a.feedSelection < len(entries)-1 {
			a.feedSelection++
		}
		a.refreshFeed(false)
		a.scrollToSelection()
	case "g":
		a.feedSelection = max(0, len(entries)-1)
		a.refreshFeed(true)
	case "s":
		if a.feedSelection < len(entries) {
			id := entries[a.feedSelection].ID
			on := a.pins.ToggleStar(id)
			a.log.Info("Star %s → %v", id, on)
			a.refreshFeed(false)
		}
	case "p":
		if a.feedSelection < len(entries) {
			id := entries[a.feedSelection].ID
			on := a.pins.TogglePin(id)
			a.log.Info("Pin %s → %v", id, on)
			a.refreshFeed(false)
		}
	}
	return a, nil
}

func (a *App) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		a.closePicker()
		return a, nil
	}
	switch a.picker {
	case pickerPeople:
		return a.handlePeopleKey(msg)
	case pickerCatalog:
		if msg.String() == "enter" {
			if item, ok := a.catalog.SelectedItem().(catalogItem); ok {
				cmd := a.apply(composer.CartAdd{Item: item.item})
				a.log.Info("Cart add · %s", item.item.Name)
				return a, cmd
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.catalog, cmd = a.catalog.Update(msg)
		return a, cmd
	case pickerPayment:
		if msg.String() == "enter" {
			if item, ok := a.payment.SelectedItem().(paymentItem); ok {
				cmd := a.apply(composer.SetPayment{Payment: item.payment})
				a.closePicker()
				return a, cmd
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.payment, cmd = a.payment.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handlePeopleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	people := a.people.visible(a.feed.Entries())
	switch msg.String() {
	case "up":
		a.people.moveSelection(-1, len(people))
		return a, nil
	case "down":
		a.people.moveSelection(1, len(people))
		return a, nil
	case "enter":
		// Row tap: add and close.
		if a.people.selection < len(people) {
			cmd := a.apply(composer.AddRecipient{Person: people[a.people.selection]})
			a.closePicker()
			return a, cmd
		}
		a.closePicker()
		return a, nil
	case " ":
		// Checkbox tap: toggle without closing the menu.
		if a.people.selection < len(people) {
			return a, a.apply(composer.ToggleRecipient{Person: people[a.people.selection]})
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.people.search, cmd = a.people.search.Update(msg)
	a.people.selection = 0
	return a, cmd
}

func (a *App) closePicker() {
	if a.picker == pickerPeople {
		a.people.close()
	}
	a.picker = pickerNone
	a.input.Focus()
}

// submit resolves the composer state through the router. Blocked states
// no-op; the check-in guard surfaces its hint inline instead.
func (a *App) submit() tea.Cmd {
	if composer.CheckInBlocked(a.state) || !composer.CanSubmit(a.state) {
		return nil
	}
	next, entries, ok := a.router.Submit(a.state)
	if !ok {
		return nil
	}
	a.feed.Append(entries...)
	for _, entry := range entries {
		a.log.Info("Submitted %s · %s", entry.Type, entryHeadline(entry))
	}
	a.state = next
	a.input.SetValue("")
	a.input.Placeholder = placeholderFor(a.state)
	a.statusMsg = ""
	a.refreshFeed(true)
	return nil
}

func entryHeadline(entry feed.Entry) string {
	switch entry.Type {
	case feed.EntryConcierge, feed.EntryGuest:
		return entry.Message
	default:
		return entry.Title
	}
}

// resize adjusts the components in place; replacing the viewport would
// drop the current scroll position.
func (a *App) resize() {
	panelWidth := a.panelWidth()
	a.feedView.Width = max(20, panelWidth)
	a.feedView.Height = max(5, a.height-12)
	a.input.Width = max(20, panelWidth-4)
	a.catalog.SetSize(max(30, panelWidth-4), max(8, a.height-14))
	a.payment.SetSize(max(30, panelWidth-4), max(8, a.height-14))
	a.people.search.Width = max(20, panelWidth/2)
}

func (a *App) panelWidth() int {
	width := a.width
	if width <= 0 {
		width = 100
	}
	return width - 4
}

// refreshFeed re-renders the viewport content. With follow set the view
// sticks to the bottom, the resting position of a live feed.
func (a *App) refreshFeed(follow bool) {
	content, offsets := a.renderFeedContent(a.panelWidth() - 2)
	a.feedOffsets = offsets
	a.feedView.SetContent(content)
	if follow {
		a.feedView.GotoBottom()
		a.feedSelection = max(0, len(offsets)-1)
	}
}

func (a *App) scrollToSelection() {
	if a.feedSelection >= len(a.feedOffsets) {
		return
	}
	offset := a.feedOffsets[a.feedSelection]
	top := a.feedView.YOffset
	bottom := top + a.feedView.Height - 1
	if offset < top {
		a.feedView.SetYOffset(offset)
	} else if offset > bottom {
		a.feedView.SetYOffset(offset - a.feedView.Height + 2)
	}
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.panelWidth()

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("⬡ FOYER · " + a.cfg.Project.Venue)

	feedBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(max(20, width)).
		Render(a.feedView.View())

	sections := []string{header, feedBox}

	if a.picker != pickerNone {
		sections = append(sections, a.renderPicker(width))
	}
	sections = append(sections, a.renderComposer(width))
	if a.width >= wideLayoutMin {
		if logPanel := a.renderLogPanel(); logPanel != "" {
			sections = append(sections, logPanel)
		}
	}
	sections = append(sections, a.renderFooter())
	return strings.Join(sections, "\n")
}

func (a *App) renderPicker(width int) string {
	switch a.picker {
	case pickerPeople:
		people := a.people.visible(a.feed.Entries())
		return a.people.view(people, a.state, width/2)
	case pickerCatalog:
		return a.catalog.View()
	case pickerPayment:
		return a.payment.View()
	}
	return ""
}

func (a *App) renderComposer(width int) string {
	var rows []string

	if a.notice != "" {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111111")).
			Background(lipgloss.Color("#DDDDDD")).
			Padding(0, 1).
			Render(a.notice))
	}
	if summary, ok := composer.Summarize(a.state, a.router.Operator); ok {
		rows = append(rows, dimStyle.Render(summary))
	}
	if pillRow := renderPills(composer.Pills(a.state)); pillRow != "" {
		rows = append(rows, pillRow)
	}

	send := "  ↑ send"
	if composer.CanSubmit(a.state) && !composer.CheckInBlocked(a.state) {
		send = lipgloss.NewStyle().Foreground(accentColor).Bold(true).Render(send)
	} else {
		send = dimStyle.Render(send)
	}
	rows = append(rows, a.input.View()+send)

	if composer.CheckInBlocked(a.state) {
		rows = append(rows, dimStyle.Render("Select a guest or scan a QR"))
	}
	if a.state.Empty() && a.input.Value() == "" {
		rows = append(rows, dimStyle.Render("Try: "+strings.Join(suggestedPrompts, " · ")))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(max(20, width)).
		Render(strings.Join(rows, "\n"))
}

func (a *App) renderLogPanel() string {
	lines := a.log.Tail(6)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		Render("LOG · shift.log")
	body := dimStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Render(head + "\n" + body)
}

func (a *App) renderFooter() string {
	help := "Tab feed/composer · ^P people · ^O POS · ^B payment · ^G check-in · ^T assign · Enter send"
	if a.focus == focusFeed {
		help = "↑/↓ select · s star · p pin · g bottom · Tab composer · q quit"
	}
	parts := []string{help}
	if a.statusMsg != "" {
		parts = append(parts, a.statusMsg)
	}
	return dimStyle.MarginTop(1).Render(strings.Join(parts, "\n"))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
