package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a minimal prompt asking whether to overwrite the
// existing document.
type confirmModel struct {
	styles    styles
	input     textinput.Model
	path      string
	confirmed bool
	done      bool
}

func newConfirmModel(path string) *confirmModel {
	st := newStyles()
	ti := textinput.New()
	ti.Placeholder = "y/N"
	ti.Prompt = st.prompt.Render("► ")
	ti.CharLimit = 3
	ti.Focus()

	return &confirmModel{styles: st, input: ti, path: path}
}

func (m *confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			answer := strings.ToLower(strings.TrimSpace(m.input.Value()))
			m.confirmed = answer == "y" || answer == "yes"
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *confirmModel) View() string {
	if m.done {
		return ""
	}
	question := m.styles.warning.Render(fmt.Sprintf("Overwrite %s?", m.path))
	return fmt.Sprintf("%s\n%s\n", question, m.input.View())
}

// confirmOverwrite runs the interactive prompt and reports the answer.
// A non-interactive failure (no TTY) counts as "no".
func confirmOverwrite(path string) (bool, error) {
	program := tea.NewProgram(newConfirmModel(path))
	result, err := program.Run()
	if err != nil {
		return false, nil
	}
	m, ok := result.(*confirmModel)
	if !ok {
		return false, nil
	}
	return m.confirmed, nil
}
