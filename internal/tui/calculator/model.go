// File: model.go
// Title: Calculator TUI Model
// Description: Main Bubbletea model for the full-screen PyCalc surface.
//              Wraps the calculation engine with a scrollback viewport,
//              a single-line expression input, input history navigation,
//              and the same meta-commands as the plain REPL.
// Author: Adithya Suresh
// Version: v0.1.0
// Created: 2025-03-13
// Modified: 2025-03-13
//
// Change History:
// - 2025-03-13 v0.1.0: Initial calculator TUI implementation

package calculator

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AdithyaSuresh01/project-name-pycalc/foundation/calc"
	pclog "github.com/AdithyaSuresh01/project-name-pycalc/foundation/core/log"
)

// maxInputHistory caps how many past inputs Up/Down can walk through
const maxInputHistory = 100

// entryKind classifies one scrollback entry
type entryKind int

const (
	entryResult entryKind = iota
	entryError
	entrySystem
)

// entry is one line pair in the scrollback
type entry struct {
	kind       entryKind
	expression string
	output     string
	timestamp  time.Time
}

// Config holds calculator TUI configuration
type Config struct {
	Engine *calc.Engine
	Logger *pclog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{}
}

// Model is the main Bubbletea model for the calculator
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	textinput textinput.Model
	viewport  viewport.Model

	// Calculator state
	engine  *calc.Engine
	logger  *pclog.Logger
	entries []entry

	// Input history
	inputHistory []string
	historyIndex int    // -1 = not navigating
	currentInput string // stash of the in-progress input while navigating
}

// New creates a new calculator model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter an expression, e.g. 1 + 2 * 3"
	ti.Prompt = IconPrompt
	ti.PromptStyle = LogoStyle
	ti.PlaceholderStyle = PlaceholderStyle
	ti.CharLimit = 4096
	ti.Focus()

	logger := cfg.Logger
	if logger == nil {
		logger = pclog.GetDefault()
	}
	logger = logger.WithField("component", "tui-calculator")

	engine := cfg.Engine
	if engine == nil {
		e, err := calc.New(calc.Options{Logger: logger})
		if err != nil {
			// calc.New only fails on an invalid parser setup, which a
			// default configuration cannot produce
			panic(fmt.Sprintf("calculator: engine init failed: %v", err))
		}
		engine = e
	}

	return Model{
		textinput:    ti,
		engine:       engine,
		logger:       logger,
		entries:      []entry{},
		historyIndex: -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.EnterAltScreen,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // title panel
		footerHeight := 6 // input + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.textinput.Width = msg.Width - 8
		m.updateViewportContent()
	}

	m.textinput, cmd = m.textinput.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlL:
		// Clear the scrollback only; history stays intact
		m.entries = []entry{}
		m.updateViewportContent()
		return m, nil

	case tea.KeyEnter:
		return m.handleSubmit()

	case tea.KeyUp:
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.textinput.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.textinput.SetValue(m.inputHistory[m.historyIndex])
			m.textinput.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.textinput.SetValue(m.inputHistory[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.textinput.SetValue(m.currentInput)
			}
			m.textinput.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.textinput, cmd = m.textinput.Update(msg)
	return m, cmd
}

// handleSubmit processes the current input line
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textinput.Value())
	if input == "" {
		return m, nil
	}

	// Append to input history, skipping consecutive duplicates
	if len(m.inputHistory) == 0 || m.inputHistory[len(m.inputHistory)-1] != input {
		m.inputHistory = append(m.inputHistory, input)
		if len(m.inputHistory) > maxInputHistory {
			m.inputHistory = m.inputHistory[len(m.inputHistory)-maxInputHistory:]
		}
	}
	m.historyIndex = -1
	m.currentInput = ""
	m.textinput.Reset()

	// Meta-commands, same contract as the plain REPL
	switch input {
	case "quit", "exit":
		return m, tea.Quit

	case "history":
		records := m.engine.History().All()
		if len(records) == 0 {
			m.appendSystem("(no history)")
		} else {
			var lines []string
			for _, rec := range records {
				lines = append(lines, calc.FormatRecord(rec))
			}
			m.appendSystem(strings.Join(lines, "\n"))
		}

	case "clear":
		m.engine.History().Clear()
		m.appendSystem("History cleared.")

	default:
		result, err := m.engine.EvaluateString(input)
		if err != nil {
			m.entries = append(m.entries, entry{
				kind:       entryError,
				expression: input,
				output:     err.Error(),
				timestamp:  time.Now(),
			})
		} else {
			m.entries = append(m.entries, entry{
				kind:       entryResult,
				expression: input,
				output:     result.Formatted,
				timestamp:  time.Now(),
			})
		}
	}

	m.updateViewportContent()
	m.viewport.GotoBottom()
	return m, nil
}

func (m *Model) appendSystem(text string) {
	m.entries = append(m.entries, entry{
		kind:      entrySystem,
		output:    text,
		timestamp: time.Now(),
	})
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading PyCalc..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(ScrollbackPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(FocusedInputStyle.Width(m.width - 2).Render(m.textinput.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render("interactive calculator"),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderStatusBar renders operator and history counters
func (m Model) renderStatusBar() string {
	symbols := m.engine.Registry().Symbols()
	var ops []string
	for _, s := range symbols {
		ops = append(ops, string(s))
	}

	leftPart := HelpDescStyle.Render("operators: ") +
		OperatorBadgeStyle.Render(strings.Join(ops, " "))
	rightPart := HelpDescStyle.Render(
		fmt.Sprintf("history: %d", m.engine.History().Len()))

	leftLen := lipgloss.Width(leftPart)
	rightLen := lipgloss.Width(rightPart)
	padding := m.width - leftLen - rightLen - 4
	if padding < 2 {
		padding = 2
	}

	content := leftPart + strings.Repeat(" ", padding) + rightPart
	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "evaluate"),
		RenderKeyHint("↑/↓", "input history"),
		RenderKeyHint("PgUp/PgDn", "scroll"),
		RenderKeyHint("Ctrl+L", "clear screen"),
		RenderKeyHint("Esc", "quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with current entries
func (m *Model) updateViewportContent() {
	var content strings.Builder

	for _, e := range m.entries {
		timeStr := e.timestamp.Format("15:04:05")

		switch e.kind {
		case entryResult:
			content.WriteString(ExpressionStyle.Render(IconPrompt+e.expression) +
				"  " + TimestampStyle.Render(timeStr))
			content.WriteString("\n")
			content.WriteString(ResultStyle.Render(IconResult + e.output))
			content.WriteString("\n\n")

		case entryError:
			content.WriteString(ExpressionStyle.Render(IconPrompt+e.expression) +
				"  " + TimestampStyle.Render(timeStr))
			content.WriteString("\n")
			content.WriteString(ErrorStyle.Render(IconError + "Error: " + e.output))
			content.WriteString("\n\n")

		case entrySystem:
			content.WriteString(SystemStyle.Render(IconInfo + e.output))
			content.WriteString("\n\n")
		}
	}

	m.viewport.SetContent(content.String())
}

// Run starts the calculator TUI and blocks until it exits
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
