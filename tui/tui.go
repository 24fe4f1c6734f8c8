package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/nathoo/taipan/engine"
	"github.com/nathoo/taipan/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can restyle when the terminal is resized.
type rawLine struct {
	text string
	kind lineKind
}

// lineMsg carries one narrative line from the engine goroutine.
type lineMsg struct {
	text string
}

// promptMsg announces that the engine is blocked waiting for input.
type promptMsg struct {
	text string
}

// pricesMsg asks the view to render the current trading screen.
type pricesMsg struct{}

// gameOverMsg carries the finished game's outcome.
type gameOverMsg struct {
	outcome engine.Outcome
}

// Model is the Bubble Tea model for the trading game TUI.
type Model struct {
	engine *engine.Engine
	bridge *bridge

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine

	width    int
	height   int
	ready    bool
	awaiting bool // engine is blocked on a prompt
	resume   bool // skip Setup, state came from a save
	outcome  *engine.Outcome
	quitting bool
}

// New creates a TUI model around an engine whose UI is the bridge.
func New(eng *engine.Engine, b *bridge, resume bool) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 64
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:  eng,
		bridge:  b,
		input:   ti,
		history: NewHistory(100),
		resume:  resume,
	}
}

// Run starts the Bubble Tea program and plays one game to completion.
// The engine runs in its own goroutine; all interaction crosses the
// bridge. Returns the outcome, or a zero outcome if the player bailed
// out of the UI before the game ended.
func Run(eng *engine.Engine, resume bool) (engine.Outcome, error) {
	b := newBridge()
	eng.UI = b

	m := New(eng, b, resume)
	p := tea.NewProgram(m, tea.WithAltScreen())
	b.prog = p

	final, err := p.Run()
	if err != nil {
		return engine.Outcome{}, err
	}
	if fm, ok := final.(Model); ok && fm.outcome != nil {
		return *fm.outcome, nil
	}
	return engine.Outcome{}, nil
}

// Init starts the cursor blink and the engine goroutine.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.runEngine())
}

// runEngine plays the whole game on the command goroutine. The engine
// blocks inside the bridge at every prompt, so this lives as long as
// the game does.
func (m Model) runEngine() tea.Cmd {
	eng, resume := m.engine, m.resume
	return func() tea.Msg {
		if !resume {
			eng.Setup()
		}
		return gameOverMsg{outcome: eng.Run()}
	}
}

// Update handles messages (key presses, window resize, engine output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refreshViewport()

	case lineMsg:
		m.appendLine(msg.text, classifyLine(msg.text))

	case promptMsg:
		m.appendLine(msg.text, kindPrompt)
		m.awaiting = true

	case pricesMsg:
		for _, line := range m.tradingScreen() {
			m.appendLine(line, kindNarrative)
		}

	case gameOverMsg:
		out := msg.outcome
		m.outcome = &out
		m.awaiting = false
		m.appendLine("", kindNarrative)
		m.appendLine(finalWords(out.Reason), kindSystem)
		m.appendLine(fmt.Sprintf("Net worth %s after %d months. Your score is %s.",
			humanize.Comma(int64(out.NetWorth)), out.Months,
			humanize.Comma(int64(out.Score))), kindSystem)
		m.appendLine("Press q to leave the China trade.", kindSystem)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if entry, ok := m.history.Prev(); ok {
				m.input.SetValue(entry)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			entry, _ := m.history.Next()
			m.input.SetValue(entry)
			m.input.CursorEnd()
			return m, nil

		default:
			if m.outcome != nil && msg.String() == "q" {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleEnter echoes the input line and hands it to the waiting engine.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.outcome != nil {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.awaiting {
		return m, nil
	}

	value := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	m.history.ResetCursor()
	if value != "" {
		m.history.Push(value)
	}
	m.appendLine("> "+value, kindInput)
	m.awaiting = false

	// The engine goroutine is blocked on the reply channel.
	reply := m.bridge.reply
	go func() { reply <- value }()
	return m, nil
}

func (m *Model) appendLine(text string, kind lineKind) {
	m.rawLines = append(m.rawLines, rawLine{text: text, kind: kind})
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	styled := make([]string, len(m.rawLines))
	for i, line := range m.rawLines {
		styled[i] = styleFor(line.kind).Render(line.text)
	}
	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// tradingScreen renders the in-port price, hold, and warehouse lines.
func (m Model) tradingScreen() []string {
	s := m.engine.State

	var prices, hold strings.Builder
	prices.WriteString("Prices: ")
	hold.WriteString("Hold:   ")
	for _, c := range types.Commodities {
		fmt.Fprintf(&prices, "%s %s  ", types.CommodityNames[c],
			humanize.Comma(int64(s.Prices[c])))
		fmt.Fprintf(&hold, "%s %d  ", types.CommodityNames[c], s.Inventory[c])
	}
	lines := []string{prices.String(), hold.String()}

	if s.Location == types.HomePort {
		var wh strings.Builder
		wh.WriteString("Ashore: ")
		for _, c := range types.Commodities {
			fmt.Fprintf(&wh, "%s %d  ", types.CommodityNames[c], s.Warehouse[c])
		}
		lines = append(lines, wh.String())
	}
	return lines
}

// finalWords narrates the ending.
func finalWords(reason types.EndReason) string {
	switch reason {
	case types.EndBankrupt:
		return "You are bankrupt, Taipan. Your creditors show no mercy."
	case types.EndShipLost:
		return "Your ship lies at the bottom of the South China Sea, Taipan."
	case types.EndRefusedBailout:
		return "Elder Brother Wu does not forgive, Taipan."
	case types.EndTimeUp:
		return "Your trading days are over, Taipan. Time has caught up with you."
	case types.EndRetired:
		return "You retire in splendor, Taipan. The China coast remembers your name."
	default:
		return "You leave the China trade, Taipan."
	}
}

// View renders viewport, status bar, and input line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}
