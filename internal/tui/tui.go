// Package tui runs a console session inside a bubbletea program: one key
// message per Update, the command output scrolling above the prompt.
package tui

import (
	"bytes"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/martinhoracek/TerraFirma/internal/console"
	"github.com/martinhoracek/TerraFirma/internal/editor"
)

const scrollback = 500

var (
	status  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pending = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	pane    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
)

// Model is the bubbletea model of the editor.
type Model struct {
	c     *console.Console
	out   *bytes.Buffer
	lines []string
	input string
	w, h  int
}

// New starts a console session. startup lines run before the first frame,
// typically a load command.
func New(opts console.Options, startup ...string) *Model {
	m := &Model{out: &bytes.Buffer{}, w: 100, h: 30}
	m.c = console.New(m.out, opts)
	for _, line := range startup {
		m.c.Exec(line)
	}
	m.flush()
	return m
}

// Console exposes the wrapped session.
func (m *Model) Console() *console.Console { return m.c }

// Run blocks until the user quits.
func (m *Model) Run() error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
	}
	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		line := m.input
		m.input = ""
		m.echo(line)
		m.c.Exec(line)
		m.flush()
		if m.c.Done() {
			return m, tea.Quit
		}
		return m, nil
	case "esc":
		if _, ok := m.c.Pending(); ok {
			m.echo("esc")
			m.c.Resolve(editor.Decline)
			m.flush()
		}
		m.input = ""
		return m, nil
	case "backspace", "ctrl+h":
		if len(m.input) > 0 {
			r := []rune(m.input)
			m.input = string(r[:len(r)-1])
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.input += string(msg.Runes)
	}
	return m, nil
}

// echo records the submitted line after its prompt.
func (m *Model) echo(line string) {
	m.lines = append(m.lines, m.c.Prompt()+line)
}

// flush moves console output into the scrollback.
func (m *Model) flush() {
	if m.out.Len() == 0 {
		return
	}
	text := strings.TrimRight(m.out.String(), "\n")
	m.out.Reset()
	m.lines = append(m.lines, strings.Split(text, "\n")...)
	if len(m.lines) > scrollback {
		m.lines = m.lines[len(m.lines)-scrollback:]
	}
}

// Lines returns the scrollback.
func (m *Model) Lines() []string { return m.lines }

// Input returns the line being typed.
func (m *Model) Input() string { return m.input }

func (m *Model) View() string {
	bodyRows := max(m.h-4, 1)
	lines := m.lines
	if len(lines) > bodyRows {
		lines = lines[len(lines)-bodyRows:]
	}
	body := pane.Width(max(m.w-4, 20)).Height(bodyRows).Render(strings.Join(lines, "\n"))

	prompt := status.Render(m.c.Prompt())
	if _, ok := m.c.Pending(); ok {
		prompt = pending.Render(m.c.Prompt())
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, prompt+m.input+"█")
}
