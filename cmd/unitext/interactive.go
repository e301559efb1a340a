package main

import (
	"fmt"
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

	opStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	operandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectOp modelState = iota
	stateInputOperands
	stateShowResult
)

type interactiveModel struct {
	err      error
	result   string
	settings settings
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState
}

type resultMsg struct {
	err    error
	result string
}

func newInteractiveModel(s settings) *interactiveModel {
	return &interactiveModel{settings: s, state: stateSelectOp}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputOperands {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectOp && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectOp && m.selected < len(operations)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectOp:
				m.prepareInputs()
				m.state = stateInputOperands
				return m, textinput.Blink

			case stateInputOperands:
				return m, m.execute

			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputOperands && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputOperands:
				m.state = stateSelectOp
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectOp
				m.result = ""
				m.err = nil
			}
		}

	case resultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputOperands {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	op := operations[m.selected]
	m.inputs = make([]textinput.Model, len(op.operands))
	for i, name := range op.operands {
		ti := textinput.New()
		ti.Prompt = name + ": "
		ti.Width = 40
		if op.variadic && i == len(op.operands)-1 {
			ti.Placeholder = "int:1 float:2.5 rune:x text"
		}
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

// operands collects the field values. The last field of a variadic
// operation holds space separated arguments.
func (m *interactiveModel) operands() []string {
	op := operations[m.selected]
	var args []string
	for i, input := range m.inputs {
		if op.variadic && i == len(m.inputs)-1 {
			args = append(args, strings.Fields(input.Value())...)
			continue
		}
		args = append(args, input.Value())
	}
	return args
}

func (m *interactiveModel) execute() tea.Msg {
	out, err := execute(m.settings, operations[m.selected].name, m.operands())
	return resultMsg{result: out, err: err}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("unitext"))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%s · %s", m.settings.encoding, m.settings.config.Platform))
	if m.settings.config.ASCIIOnly {
		b.WriteString(" · ascii")
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectOp:
		b.WriteString("Select an operation:\n\n")
		for i, op := range operations {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + m.formatOp(op)))
			} else {
				b.WriteString("  " + m.formatOp(op))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputOperands:
		op := operations[m.selected]
		b.WriteString(fmt.Sprintf("%s: %s\n\n", opStyle.Render(op.name), op.help))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter run • esc back"))

	case stateShowResult:
		op := operations[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", opStyle.Render(op.name)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(fmt.Sprintf("%q", m.result)))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatOp(op operation) string {
	operands := make([]string, len(op.operands))
	for i, name := range op.operands {
		if op.variadic && i == len(op.operands)-1 {
			name += "..."
		}
		operands[i] = operandStyle.Render(name)
	}
	return opStyle.Render(op.name) + "(" + strings.Join(operands, ", ") + ")"
}

func runInteractive(s settings) error {
	p := tea.NewProgram(newInteractiveModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
