package main

import (
	"fmt"
	"os"
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

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// promptModel asks for the mapping file path when it was not given on the
// command line. Enter accepts a path that exists; esc cancels.
type promptModel struct {
	input    textinput.Model
	errMsg   string
	path     string
	canceled bool
}

func newPromptModel() *promptModel {
	ti := textinput.New()
	ti.Placeholder = "path/to/mapping.txt"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &promptModel{input: ti}
}

func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit

		case "enter":
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				m.errMsg = "enter a path"
				return m, nil
			}
			info, err := os.Stat(path)
			switch {
			case err != nil:
				m.errMsg = fmt.Sprintf("cannot read %s: %v", path, err)
			case info.IsDir():
				m.errMsg = path + " is a directory"
			default:
				m.path = path
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *promptModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Record Converter"))
	b.WriteString("\n\nMapping file for double-byte fields:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter confirm • esc quit"))
	b.WriteString("\n")

	return b.String()
}

// promptMappingPath runs the interactive prompt. It returns an empty path
// when the user cancels.
func promptMappingPath() (string, error) {
	p := tea.NewProgram(newPromptModel())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m := final.(*promptModel)
	if m.canceled {
		return "", nil
	}
	return m.path, nil
}
