// Package ui provides the optional terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/archduke-go/internal/repl"
)

// maxScrollback is the number of output lines kept on screen.
const maxScrollback = 200

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	ruleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	prompt string
	output io.Writer
}

// WithPrompt sets the input prompt.
func WithPrompt(prompt string) TUIOption {
	return func(c *tuiConfig) {
		c.prompt = prompt
	}
}

// WithOutput sets the terminal the TUI draws on. It defaults to stdout.
func WithOutput(w io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.output = w
	}
}

// RunTUI drives session from a full-screen terminal UI until bye, ctrl+c,
// or cancellation of ctx.
func RunTUI(ctx context.Context, session *repl.Session, opts ...TUIOption) error {
	c := &tuiConfig{
		prompt: repl.DefaultPrompt,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(c.output) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newTUIModel(session, c.prompt)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(c.output),
	)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

type entryKind int

const (
	entryOutput entryKind = iota
	entryEcho
	entryRule
)

type entry struct {
	kind entryKind
	text string
}

type tuiModel struct {
	session    *repl.Session
	prompt     string
	input      []rune
	scrollback []entry
	history    []string
	histPos    int
	height     int
	showHelp   bool
}

func newTUIModel(session *repl.Session, prompt string) *tuiModel {
	if prompt == "" {
		prompt = repl.DefaultPrompt
	}
	m := &tuiModel{session: session, prompt: prompt}
	m.appendOutput(repl.Greeting)
	return m
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeyCtrlU:
			m.input = nil
		case tea.KeyUp:
			m.recall(-1)
		case tea.KeyDown:
			m.recall(1)
		case tea.KeyF1:
			m.showHelp = !m.showHelp
		case tea.KeySpace:
			m.input = append(m.input, ' ')
		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
		}
	}
	return m, nil
}

// submit hands the input line to the session.
func (m *tuiModel) submit() tea.Cmd {
	line := string(m.input)
	m.input = nil
	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.histPos = len(m.history)

	m.push(entry{kind: entryEcho, text: m.prompt + line})
	m.appendOutput(m.session.Handle(line))
	if m.session.Done() {
		return tea.Quit
	}
	return nil
}

// recall moves through previously submitted lines.
func (m *tuiModel) recall(step int) {
	pos := m.histPos + step
	if pos < 0 || pos > len(m.history) {
		return
	}
	m.histPos = pos
	if pos == len(m.history) {
		m.input = nil
		return
	}
	m.input = []rune(m.history[pos])
}

func (m *tuiModel) appendOutput(lines []string) {
	if len(lines) == 0 {
		return
	}
	for _, line := range lines {
		m.push(entry{kind: entryOutput, text: line})
	}
	m.push(entry{kind: entryRule})
}

func (m *tuiModel) push(e entry) {
	m.scrollback = append(m.scrollback, e)
	if over := len(m.scrollback) - maxScrollback; over > 0 {
		m.scrollback = append(m.scrollback[:0:0], m.scrollback[over:]...)
	}
}

func (m *tuiModel) View() string {
	var b strings.Builder
	writeTitle(&b)
	writeStatus(&b, m.session)

	if m.showHelp {
		writeHelp(&b)
	} else {
		writeScrollback(&b, m.visible())
	}

	b.WriteString(promptStyle.Render(m.prompt))
	b.WriteString(string(m.input))
	b.WriteString("█\n")
	writeFooter(&b)
	return b.String()
}

// visible returns the scrollback entries that fit on screen.
func (m *tuiModel) visible() []entry {
	// title, status, prompt and footer take six lines
	if m.height <= 6 {
		return m.scrollback
	}
	room := m.height - 6
	if len(m.scrollback) <= room {
		return m.scrollback
	}
	return m.scrollback[len(m.scrollback)-room:]
}

func writeTitle(b *strings.Builder) {
	b.WriteString(titleStyle.Render("ArchDuke") + "\n\n")
}

func writeStatus(b *strings.Builder, s *repl.Session) {
	status := fmt.Sprintf("%d project(s)", s.Repository().Len())
	if p, ok := s.Managing(); ok {
		status = fmt.Sprintf("Managing: %s (%d members, %d tasks)", p.Description(), p.NumMembers(), p.NumTasks())
	}
	b.WriteString(statusStyle.Render(status) + "\n")
}

func writeScrollback(b *strings.Builder, entries []entry) {
	for _, e := range entries {
		switch e.kind {
		case entryEcho:
			b.WriteString(echoStyle.Render(e.text))
		case entryRule:
			b.WriteString(ruleStyle.Render(strings.Repeat("─", 40)))
		default:
			b.WriteString("  " + e.text)
		}
		b.WriteString("\n")
	}
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  enter        Run the command\n")
	b.WriteString("  up, down     Previous and next command\n")
	b.WriteString("  ctrl+u       Clear the input\n")
	b.WriteString("  F1           Toggle this help screen\n")
	b.WriteString("  ctrl+c       Quit\n\n")
	b.WriteString("Type help at the project menu for commands.\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(footerStyle.Render("F1 for help | bye or ctrl+c to quit") + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
