// Package display provides the terminal UI using Bubble Tea.
//
// The screen has four controls stacked above a scrollable results
// viewport: a search box, a keyword selector, a letter bar, and a random
// button. Each control is bound to one query variant; firing it hands that
// query to the dispatcher, and the results viewport is refreshed from the
// TerminalBox once the dispatch reports back.
package display

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/cocktailbox/internal/domain"
	"github.com/hammamikhairi/cocktailbox/internal/engine"
	"github.com/hammamikhairi/cocktailbox/internal/keywords"
	"github.com/hammamikhairi/cocktailbox/internal/logger"
	"github.com/hammamikhairi/cocktailbox/internal/query"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle is muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Width(10)

	focusLabelStyle = labelStyle.
			Foreground(lipgloss.Color("#fde68a"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#27272a")).
			Background(lipgloss.Color("#bae6fd"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")).
			Padding(0, 1)

	focusButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#27272a")).
				Background(lipgloss.Color("#fde68a"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	// Card styles.
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	glassStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")).
			Italic(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Underline(true)

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))
)

// ── UI ───────────────────────────────────────────────────────────

// DispatchFunc runs one query and renders the result into the UI's
// TerminalBox.
type DispatchFunc func(ctx context.Context, q domain.Query) (engine.Result, error)

// UI owns the Bubble Tea program.
type UI struct {
	box      *TerminalBox
	surface  *engine.Surface
	dispatch DispatchFunc
	options  []keywords.Option
	log      *logger.Logger
}

// NewUI creates the display. surface must wrap box; dispatch renders onto
// it. Call Run to start.
func NewUI(box *TerminalBox, surface *engine.Surface, dispatch DispatchFunc, options []keywords.Option, log *logger.Logger) *UI {
	return &UI{
		box:      box,
		surface:  surface,
		dispatch: dispatch,
		options:  options,
		log:      log.Named("display"),
	}
}

// Run starts the Bubble Tea event loop. Blocks until quit. If initial is
// non-nil it is dispatched as soon as the program starts.
func (u *UI) Run(ctx context.Context, initial domain.Query) error {
	m := newModel(ctx, u.box, u.surface, u.dispatch, u.options)
	m.initial = initial

	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		u.log.Error("program exited: %v", err)
	}
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type focus int

const (
	focusSearch focus = iota
	focusKeywords
	focusLetters
	focusRandom
	focusCount
)

// resultMsg reports a finished dispatch.
type resultMsg struct {
	res engine.Result
	err error
}

const promptText = "search> "

type model struct {
	ctx      context.Context
	box      *TerminalBox
	surface  *engine.Surface
	dispatch DispatchFunc
	initial  domain.Query

	search    textinput.Model
	options   []keywords.Option
	optionIdx int
	letterIdx int
	focus     focus

	results  viewport.Model
	status   string
	failed   bool
	inflight int
	width    int
	height   int
}

func newModel(ctx context.Context, box *TerminalBox, surface *engine.Surface, dispatch DispatchFunc, options []keywords.Option) model {
	width := TermWidth()

	ti := textinput.New()
	// Plain-text prompt so the textinput width math stays correct.
	ti.Prompt = promptText
	ti.PromptStyle = promptStyle
	ti.Placeholder = "cocktail name, e.g. margarita"
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	ti.CharLimit = 100
	ti.Width = max(10, width-len(promptText)-1) // updated on WindowSizeMsg
	ti.Focus()

	return model{
		ctx:      ctx,
		box:      box,
		surface:  surface,
		dispatch: dispatch,
		search:   ti,
		options:  options,
		results:  viewport.New(width, 10),
		status:   "Tab switches controls · Enter fires · ctrl+r random · PgUp/PgDn scroll · Esc quits",
		width:    width,
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initial != nil {
		cmds = append(cmds, m.dispatchCmd(m.initial))
	}
	return tea.Batch(cmds...)
}

func (m model) dispatchCmd(q domain.Query) tea.Cmd {
	ctx, dispatch := m.ctx, m.dispatch
	return func() tea.Msg {
		res, err := dispatch(ctx, q)
		return resultMsg{res: res, err: err}
	}
}

// fire hands q to the dispatcher. Earlier dispatches are not cancelled;
// the engine drops their results if they land late.
func (m model) fire(q domain.Query) (tea.Model, tea.Cmd) {
	m.inflight++
	m.failed = false
	m.status = "Fetching " + q.String() + "…"
	return m, m.dispatchCmd(q)
}

func (m *model) setFocus(f focus) {
	m.focus = f
	if f == focusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if msg.Width > len(promptText)+1 {
			m.search.Width = msg.Width - len(promptText) - 1
		}
		m.results.Width = msg.Width
		m.results.Height = max(3, msg.Height-lipgloss.Height(m.header()))
		m.results.SetContent(m.cardsView())
		return m, nil

	case resultMsg:
		m.inflight--
		if engine.IsStale(msg.err) {
			return m, nil
		}
		if msg.err != nil {
			m.failed = true
			m.status = fmt.Sprintf("Request failed for %s, showing previous results", msg.res.Query)
			return m, nil
		}
		m.status = summary(msg.res)
		m.results.SetContent(m.cardsView())
		m.results.GotoTop()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+r":
		return m.fire(domain.RandomQuery{})
	case "pgup", "pgdown", "up", "down":
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	switch m.focus {
	case focusSearch:
		if msg.Type == tea.KeyEnter {
			return m.fire(domain.TextQuery{Text: m.search.Value()})
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd

	case focusKeywords:
		if len(m.options) == 0 {
			return m, nil
		}
		switch msg.String() {
		case "left":
			m.optionIdx = (m.optionIdx + len(m.options) - 1) % len(m.options)
		case "right":
			m.optionIdx = (m.optionIdx + 1) % len(m.options)
		case "enter":
			return m.fire(domain.TextQuery{Text: m.options[m.optionIdx].Value})
		}
		return m, nil

	case focusLetters:
		n := len([]rune(domain.Letters))
		switch msg.String() {
		case "left":
			m.letterIdx = (m.letterIdx + n - 1) % n
		case "right":
			m.letterIdx = (m.letterIdx + 1) % n
		case "enter":
			return m.fire(domain.LetterQuery{Letter: []rune(domain.Letters)[m.letterIdx]})
		default:
			if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
				return m, nil
			}
			lq, err := query.ParseLetter(string(msg.Runes))
			if err != nil {
				m.status = fmt.Sprintf("%q is not on the letter bar", string(msg.Runes))
				return m, nil
			}
			m.letterIdx = strings.IndexRune(domain.Letters, lq.Letter)
			return m.fire(lq)
		}
		return m, nil

	case focusRandom:
		switch msg.String() {
		case "enter", " ":
			return m.fire(domain.RandomQuery{})
		}
	}
	return m, nil
}

// cardsView renders the cards under the surface lock so a render in
// progress is never shown half built.
func (m model) cardsView() string {
	var out string
	m.surface.View(func() {
		out = m.box.View(m.width)
	})
	return out
}

func summary(res engine.Result) string {
	switch res.Count {
	case 0:
		return fmt.Sprintf("No cocktails found for %s", res.Query)
	case 1:
		return fmt.Sprintf("1 cocktail for %s", res.Query)
	default:
		return fmt.Sprintf("%d cocktails for %s", res.Count, res.Query)
	}
}

func (m model) View() string {
	return m.header() + "\n" + m.results.View()
}

func (m model) header() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cocktailbox"))
	b.WriteString("\n\n")

	b.WriteString(m.label("Search", focusSearch))
	b.WriteString(m.search.View())
	b.WriteByte('\n')

	b.WriteString(m.label("Keyword", focusKeywords))
	b.WriteString(m.keywordView())
	b.WriteByte('\n')

	b.WriteString(m.label("Letter", focusLetters))
	b.WriteString(m.letterView())
	b.WriteByte('\n')

	b.WriteString(m.label("", focusRandom))
	if m.focus == focusRandom {
		b.WriteString(focusButtonStyle.Render("Random Cocktail"))
	} else {
		b.WriteString(buttonStyle.Render("[Random Cocktail]"))
	}
	b.WriteByte('\n')

	status := m.status
	if m.inflight > 0 && !strings.HasPrefix(status, "Fetching") {
		status += " (loading)"
	}
	if m.failed {
		b.WriteString(urgentStyle.Render(status))
	} else {
		b.WriteString(secondaryStyle.Render(status))
	}
	b.WriteByte('\n')

	w := m.width
	if w <= 0 {
		w = 80
	}
	b.WriteString(sepStyle.Render(strings.Repeat("─", w)))
	return b.String()
}

func (m model) label(text string, f focus) string {
	if m.focus == f {
		return focusLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m model) keywordView() string {
	if len(m.options) == 0 {
		return secondaryStyle.Render("(no keywords)")
	}
	opt := m.options[m.optionIdx]
	cur := opt.Label
	if m.focus == focusKeywords {
		cur = selectedStyle.Render(" " + cur + " ")
	}
	return fmt.Sprintf("‹ %s ›  %s", cur,
		secondaryStyle.Render(fmt.Sprintf("%d/%d", m.optionIdx+1, len(m.options))))
}

func (m model) letterView() string {
	parts := make([]string, 0, len(domain.Letters))
	for i, r := range []rune(domain.Letters) {
		if i == m.letterIdx && m.focus == focusLetters {
			parts = append(parts, selectedStyle.Render(string(r)))
			continue
		}
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}
