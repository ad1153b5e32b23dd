package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tekstikone/voikko"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2B5797")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2B5797"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Explore the engine in a terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("interactive mode needs a terminal")
			}
			p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

type opInfo struct {
	name   string
	prompt string
	run    func(v *voikko.Voikko, input string) (string, error)
}

type modelState int

const (
	stateSelectOp modelState = iota
	stateInput
	stateShowResult
)

type interactiveModel struct {
	err      error
	session  *voikko.Voikko
	input    textinput.Model
	result   string
	ops      []opInfo
	selected int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	return &interactiveModel{
		ops:   operations(),
		state: stateSelectOp,
	}
}

type sessionMsg struct {
	err     error
	session *voikko.Voikko
}

type resultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.openSession
}

func (m *interactiveModel) openSession() tea.Msg {
	v, err := openSession()
	if err != nil {
		return sessionMsg{err: err}
	}
	return sessionMsg{session: v}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.quit()

		case "q":
			if m.state != stateInput {
				return m.quit()
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(m.ops)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInput()
				m.state = stateInput

			case stateInput:
				return m, m.callOperation

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInput:
				m.state = stateSelectOp
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case sessionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.session = msg.session

	case resultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) quit() (tea.Model, tea.Cmd) {
	if m.session != nil {
		m.session.Close()
	}
	return m, tea.Quit
}

func (m *interactiveModel) prepareInput() {
	op := m.ops[m.selected]
	ti := textinput.New()
	ti.Placeholder = op.prompt
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) callOperation() tea.Msg {
	if m.session == nil {
		return resultMsg{err: fmt.Errorf("session not open")}
	}
	op := m.ops[m.selected]
	out, err := op.run(m.session, m.input.Value())
	if err != nil {
		return resultMsg{err: err}
	}
	return resultMsg{result: out}
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.session == nil {
		return "Opening session..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Voikko"))
	b.WriteString(" ")
	b.WriteString(m.session.Language())
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range m.ops {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + op.name))
			} else {
				b.WriteString(cursor + opStyle.Render(op.name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInput:
		op := m.ops[m.selected]
		b.WriteString(opStyle.Render(op.name))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • esc back"))

	case stateShowResult:
		op := m.ops[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func operations() []opInfo {
	return []opInfo{
		{
			name:   "Spell",
			prompt: "words to check",
			run: func(v *voikko.Voikko, input string) (string, error) {
				var b strings.Builder
				for _, word := range strings.Fields(input) {
					result, err := v.Spell(word)
					if err != nil {
						return "", err
					}
					fmt.Fprintf(&b, "%s: %s\n", word, result)
				}
				return b.String(), nil
			},
		},
		{
			name:   "Suggest",
			prompt: "misspelled word",
			run: func(v *voikko.Voikko, input string) (string, error) {
				suggestions, err := v.Suggest(strings.TrimSpace(input))
				if err != nil {
					return "", err
				}
				if len(suggestions) == 0 {
					return "(no suggestions)", nil
				}
				return strings.Join(suggestions, "\n"), nil
			},
		},
		{
			name:   "Hyphenate",
			prompt: "word to hyphenate",
			run: func(v *voikko.Voikko, input string) (string, error) {
				return v.Hyphenate(strings.TrimSpace(input), "-")
			},
		},
		{
			name:   "Analyze",
			prompt: "word to analyze",
			run: func(v *voikko.Voikko, input string) (string, error) {
				readings, err := v.Analyze(strings.TrimSpace(input))
				if err != nil {
					return "", err
				}
				if len(readings) == 0 {
					return "(no readings)", nil
				}
				var b strings.Builder
				for i, reading := range readings {
					fmt.Fprintf(&b, "reading %d:\n", i+1)
					keys := make([]string, 0, len(reading))
					for k := range reading {
						keys = append(keys, k)
					}
					sort.Strings(keys)
					for _, k := range keys {
						fmt.Fprintf(&b, "  %s = %s\n", k, reading[k])
					}
				}
				return b.String(), nil
			},
		},
		{
			name:   "Tokens",
			prompt: "text to tokenize",
			run: func(v *voikko.Voikko, input string) (string, error) {
				tokens, err := v.Tokens(input)
				if err != nil {
					return "", err
				}
				var b strings.Builder
				for _, tok := range tokens {
					fmt.Fprintf(&b, "%-12s %q\n", tok.Kind, tok.Text)
				}
				return b.String(), nil
			},
		},
		{
			name:   "Sentences",
			prompt: "text to segment",
			run: func(v *voikko.Voikko, input string) (string, error) {
				sentences, err := v.Sentences(input)
				if err != nil {
					return "", err
				}
				var b strings.Builder
				for _, s := range sentences {
					fmt.Fprintf(&b, "%-10s %q\n", s.NextStartType, s.Text)
				}
				return b.String(), nil
			},
		},
		{
			name:   "Grammar",
			prompt: "text to check",
			run: func(v *voikko.Voikko, input string) (string, error) {
				found, err := v.GrammarErrors(input, "en")
				if err != nil {
					return "", err
				}
				if len(found) == 0 {
					return "no grammar errors", nil
				}
				var b strings.Builder
				for _, ge := range found {
					fmt.Fprintf(&b, "chars %d-%d [code %d]: %s\n",
						ge.StartPos, ge.StartPos+ge.Length, ge.Code, ge.Description)
					if len(ge.Suggestions) > 0 {
						fmt.Fprintf(&b, "  suggest: %s\n", strings.Join(ge.Suggestions, ", "))
					}
				}
				return b.String(), nil
			},
		},
	}
}
