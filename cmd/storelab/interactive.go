package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	stateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historyLines = 12

type interactiveModel struct {
	session *session
	input   textinput.Model
	history []string
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "table new 2 4"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &interactiveModel{
		session: newSession(),
		input:   ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			out, err := m.session.exec(line)
			m.history = append(m.history, "> "+line)
			switch {
			case err != nil:
				m.history = append(m.history, errorStyle.Render(err.Error()))
			case out != "":
				for _, l := range strings.Split(out, "\n") {
					m.history = append(m.history, resultStyle.Render(l))
				}
			}
			if len(m.history) > historyLines {
				m.history = m.history[len(m.history)-historyLines:]
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("storelab"))
	b.WriteString(" live store inspector\n\n")

	for _, line := range m.session.stateLines() {
		b.WriteString(stateStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, line := range m.history {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter run • 'help' commands • esc quit"))

	return b.String()
}

func (s *session) stateLines() []string {
	return strings.Split(s.state(), "\n")
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
