// Package tui is the interactive fallback surface: when the CLI is missing
// a name or timeline it asks for them with a small bubbletea program instead
// of failing. Everything else in lifecast is non-interactive.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Question is one prompt shown to the user. Fallback is substituted when
// the answer is empty; an empty Fallback leaves the empty answer to the
// caller to judge.
type Question struct {
	Label       string
	Placeholder string
	Fallback    string
}

// ErrAborted is reported when the user cancels the prompt (esc or ctrl+c).
var ErrAborted = fmt.Errorf("tui: prompt aborted")

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
)

type promptModel struct {
	questions []Question
	input     textinput.Model
	answers   []string
	current   int
	aborted   bool
}

func newPromptModel(questions []Question) promptModel {
	input := textinput.New()
	input.Placeholder = questions[0].Placeholder
	input.CharLimit = 120
	input.Width = 40
	input.Focus()
	return promptModel{questions: questions, input: input}
}

// Ask runs the prompt program and returns one trimmed answer per question.
func Ask(questions []Question) ([]string, error) {
	if len(questions) == 0 {
		return nil, nil
	}
	final, err := tea.NewProgram(newPromptModel(questions)).Run()
	if err != nil {
		return nil, fmt.Errorf("tui: run prompt: %w", err)
	}
	m, ok := final.(promptModel)
	if !ok {
		return nil, fmt.Errorf("tui: unexpected model %T", final)
	}
	if m.aborted {
		return nil, ErrAborted
	}
	return m.answers, nil
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			answer := strings.TrimSpace(m.input.Value())
			if answer == "" {
				answer = m.questions[m.current].Fallback
			}
			m.answers = append(m.answers, answer)
			m.current++
			if m.current >= len(m.questions) {
				return m, tea.Quit
			}
			m.input.SetValue("")
			m.input.Placeholder = m.questions[m.current].Placeholder
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.current >= len(m.questions) {
		return ""
	}
	question := m.questions[m.current]
	return lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(question.Label),
		m.input.View(),
		hintStyle.Render("Enter → confirm    Esc → cancel"),
	) + "\n"
}
